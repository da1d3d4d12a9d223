package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dawoodab/khata"
	"github.com/google/subcommands"
)

// payCmd records money received from a customer against their balance.
type payCmd struct {
	customer  string
	amount    string
	method    string
	date      string
	reference string
	notes     string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment received from a customer" }
func (*payCmd) Usage() string {
	return `kh pay -c <customer-id> -n <amount> [-m cash|bank|cheque]

  Records a payment and settles it against the customer's balance. Overpaying
  leaves the customer in credit.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer id (required).")
	f.StringVar(&c.amount, "n", "", "Amount received (required).")
	f.StringVar(&c.method, "m", "cash", "Payment method: cash, bank or cheque.")
	f.StringVar(&c.date, "d", "", "Payment date, defaults to today.")
	f.StringVar(&c.reference, "ref", "", "Cheque number or transfer reference.")
	f.StringVar(&c.notes, "notes", "", "Free-text note.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	draft := khata.PaymentDraft{
		CustomerID: c.customer,
		Amount:     amount,
		Method:     method,
		Reference:  c.reference,
		Notes:      c.notes,
	}
	if c.date != "" {
		if draft.Date, err = khata.ParseDate(c.date); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}

	payment, err := books.RecordPayment(draft)
	if err != nil {
		return fail(err)
	}
	customer, _ := books.Customers.Get(payment.CustomerID)
	fmt.Printf("Received %s from %s, balance is now %s\n",
		payment.Amount, payment.CustomerName, customer.CurrentBalance)
	return subcommands.ExitSuccess
}
