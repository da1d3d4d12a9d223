package khata

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists collections in an embedded SQLite database, one row
// per collection key. All puts issued inside Update run in a single
// transaction, so the three writes a sale triggers commit or roll back
// together.
type SQLiteStore struct {
	db *sqlx.DB
}

const sqliteSchema = `CREATE TABLE IF NOT EXISTS collections (
    key  TEXT PRIMARY KEY,
    data BLOB NOT NULL
);`

// OpenSQLiteStore opens (creating if needed) a SQLite database file.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, StorageError{Op: "open", Err: err}
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, StorageError{Op: "open", Err: err}
	}
	return &SQLiteStore{db: db}, nil
}

// Read returns the payload stored under key, or (nil, nil) when the key has
// never been written.
func (s *SQLiteStore) Read(key string) ([]byte, error) {
	var data []byte
	err := s.db.Get(&data, `SELECT data FROM collections WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, StorageError{Op: "read", Key: key, Err: err}
	}
	return data, nil
}

// Update runs fn inside a transaction. Every put is applied atomically on
// commit; any error from fn rolls everything back.
func (s *SQLiteStore) Update(fn func(w Putter) error) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return StorageError{Op: "begin", Err: err}
	}
	if err := fn(sqlitePutter{tx: tx}); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return StorageError{Op: "commit", Err: err}
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

type sqlitePutter struct {
	tx *sqlx.Tx
}

func (p sqlitePutter) Put(key string, data []byte) error {
	_, err := p.tx.Exec(
		`INSERT INTO collections (key, data) VALUES (?, ?)
         ON CONFLICT(key) DO UPDATE SET data = excluded.data`, key, data)
	if err != nil {
		return StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}
