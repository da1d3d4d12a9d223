package khata

import "time"

// EntryType classifies a ledger entry.
type EntryType string

const (
	EntrySale       EntryType = "sale"
	EntryPurchase   EntryType = "purchase"
	EntryPayment    EntryType = "payment"
	EntryReceipt    EntryType = "receipt"
	EntryAdjustment EntryType = "adjustment"
)

// LedgerEntry is one row of the flat, append-only transaction log. Balance is
// the running balance of the affected customer right after the entry, zero
// when no customer is involved. Entries are written once and never read back
// into balance computations.
type LedgerEntry struct {
	ID           string    `json:"id"`
	Date         Date      `json:"date"`
	Type         EntryType `json:"type"`
	Description  string    `json:"description"`
	Debit        Money     `json:"debit"`
	Credit       Money     `json:"credit"`
	Balance      Money     `json:"balance"`
	Reference    string    `json:"reference"` // sale/purchase/payment id
	CustomerID   string    `json:"customerId,omitempty"`
	CustomerName string    `json:"customerName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (e LedgerEntry) Key() string { return e.ID }
