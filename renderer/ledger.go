package renderer

import (
	"fmt"
	"io"

	"github.com/dawoodab/khata"
)

// Ledger renders ledger entries as a markdown table in append order.
func Ledger(w io.Writer, entries []khata.LedgerEntry) {
	fmt.Fprintf(w, "# Ledger (%d entries)\n\n", len(entries))
	if len(entries) == 0 {
		fmt.Fprintln(w, "The ledger is empty.")
		return
	}
	ledgerTable(w, entries)
}

// Statement renders one customer's ledger entries with the closing balance.
func Statement(w io.Writer, c khata.Customer, entries []khata.LedgerEntry) {
	fmt.Fprintf(w, "# Statement — %s\n\n", c.Name)
	if c.Phone != "" {
		fmt.Fprintf(w, "%s, %s\n\n", c.Phone, c.City)
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No activity on record.")
	} else {
		ledgerTable(w, entries)
	}
	fmt.Fprintf(w, "\nOutstanding balance: **%s**\n", c.CurrentBalance)
}

func ledgerTable(w io.Writer, entries []khata.LedgerEntry) {
	fmt.Fprintln(w, "| Date | Type | Description | Debit | Credit | Balance |")
	fmt.Fprintln(w, "|---|---|---|---:|---:|---:|")
	for _, e := range entries {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s |\n",
			e.Date, e.Type, e.Description, e.Debit.SignedString(), e.Credit.SignedString(), e.Balance)
	}
}
