package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dawoodab/khata"
	"github.com/google/subcommands"
)

// receiveCmd records money paid out to a supplier.
type receiveCmd struct {
	supplier  string
	amount    string
	method    string
	date      string
	reference string
	notes     string
}

func (*receiveCmd) Name() string     { return "receive" }
func (*receiveCmd) Synopsis() string { return "record a payment made to a supplier" }
func (*receiveCmd) Usage() string {
	return `kh receive -from <supplier> -n <amount> [-m cash|bank|cheque]

  Records money paid to a supplier and appends a receipt entry to the ledger.
`
}

func (c *receiveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.supplier, "from", "", "Supplier name (required).")
	f.StringVar(&c.amount, "n", "", "Amount paid (required).")
	f.StringVar(&c.method, "m", "cash", "Payment method: cash, bank or cheque.")
	f.StringVar(&c.date, "d", "", "Payment date, defaults to today.")
	f.StringVar(&c.reference, "ref", "", "Cheque number or transfer reference.")
	f.StringVar(&c.notes, "notes", "", "Free-text note.")
}

func (c *receiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, err := khata.ParseSettlementMethod(c.method)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	books, closer, err := openBooks()
	if err != nil {
		return fail(err)
	}
	defer closer()

	amount, err := khata.ParseMoney(c.amount, books.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	draft := khata.ReceiptDraft{
		Supplier:  c.supplier,
		Amount:    amount,
		Method:    method,
		Reference: c.reference,
		Notes:     c.notes,
	}
	if c.date != "" {
		if draft.Date, err = khata.ParseDate(c.date); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}

	receipt, err := books.RecordReceipt(draft)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Paid %s to %s\n", receipt.Amount, receipt.SupplierName)
	return subcommands.ExitSuccess
}
