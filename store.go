package khata

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Collection keys. Each key maps to an ordered sequence of records of one
// entity type, always read and rewritten wholesale.
const (
	KeyCustomers = "customers"
	KeyProducts  = "products"
	KeySales     = "sales"
	KeyPurchases = "purchases"
	KeyLedger    = "ledger_entries"
	KeyPayments  = "payments"
	KeyReceipts  = "receipts"
	KeySettings  = "settings"
)

// schemaVersion tags every persisted collection so that a future format
// change can be detected instead of silently misread.
const schemaVersion = 1

// Store is a key-value store with string keys. Each value is a whole
// collection in the JSONL record format produced by encodeRecords.
type Store interface {
	// Read returns the raw payload stored under key, or (nil, nil) when the
	// key has never been written.
	Read(key string) ([]byte, error)
	// Update runs fn against a write view of the store. Backends that support
	// it (SQLite) apply all puts atomically; the file backend applies them
	// sequentially and documents the partial-failure window.
	Update(fn func(w Putter) error) error
	Close() error
}

// Putter is the write half of a Store, only reachable inside Update.
type Putter interface {
	Put(key string, data []byte) error
}

// header is the schema tag written as the first line of every collection.
type header struct {
	Khata      int    `json:"khata"`
	Collection string `json:"collection"`
}

// encodeRecords encodes a collection as JSONL: a header line carrying the
// schema version and collection key, then one record per line, in order.
func encodeRecords[T any](key string, items []T) ([]byte, error) {
	var buf bytes.Buffer
	h, err := json.Marshal(header{Khata: schemaVersion, Collection: key})
	if err != nil {
		return nil, err
	}
	buf.Write(h)
	buf.WriteByte('\n')
	for _, item := range items {
		line, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("could not encode %q record: %w", key, err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// decodeRecords decodes a collection payload produced by encodeRecords.
// A nil payload decodes to an empty collection. Unknown schema versions and
// mismatched collection keys are rejected.
func decodeRecords[T any](key string, data []byte) ([]T, error) {
	if len(data) == 0 {
		return nil, nil
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("collection %q: missing header line", key)
	}
	var h header
	if err := json.Unmarshal(scanner.Bytes(), &h); err != nil {
		return nil, fmt.Errorf("collection %q: invalid header: %w", key, err)
	}
	if h.Khata != schemaVersion {
		return nil, fmt.Errorf("collection %q: unsupported schema version %d (want %d)", key, h.Khata, schemaVersion)
	}
	if h.Collection != key {
		return nil, fmt.Errorf("collection %q: header names collection %q", key, h.Collection)
	}

	var items []T
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var item T
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, fmt.Errorf("collection %q: could not decode record %q: %w", key, string(line), err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("collection %q: %w", key, err)
	}
	return items, nil
}
