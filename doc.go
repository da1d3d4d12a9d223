// Package khata keeps the books of a small retail shop: customers and the
// credit they carry, a product catalog with stock levels, sales and purchases,
// and a flat append-only ledger of everything that happened. It is designed to
// be local-first and auditable, with the whole state readable from a handful
// of plain files.
//
// The core functionalities include:
//   - Bookkeeping rules: recording a sale computes its totals, grows the
//     customer's balance by the unpaid remainder, shrinks product stock by the
//     sold quantities, and appends a ledger entry, all in one store update.
//   - Customer credit: balances accumulate across sales and are settled by
//     recorded payments; overpayments stay on the account as credit.
//   - Ledger: a write-once transaction log used for statements and audits,
//     never read back into balance computations.
//   - Data persistence: collections are encoded as versioned JSONL and stored
//     either as one file per collection or in an embedded SQLite database.
//
// This package serves as the foundational logic for the `kh` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package khata
