package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dawoodab/khata"
	"github.com/google/subcommands"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	supplier string
	items    lineFlags
	paid     string
	method   string
	date     string
	due      string
	notes    string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase from a supplier" }
func (*buyCmd) Usage() string {
	return `kh buy -from <supplier> -item <product-id:qty:unit-price> [-item ...] [-paid <amount>]

  Records a purchase. Item lines may reference catalog products or name goods
  freely; stock is not moved, use 'kh stock' when the goods arrive.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.supplier, "from", "", "Supplier name (required).")
	f.Var(&c.items, "item", "Purchase line as product-id:qty:unit-price. Repeatable.")
	f.StringVar(&c.paid, "paid", "0", "Amount paid now.")
	f.StringVar(&c.method, "m", "cash", "Payment method: cash, bank or credit.")
	f.StringVar(&c.date, "d", "", "Purchase date, defaults to today.")
	f.StringVar(&c.due, "due", "", "Due date for the remainder.")
	f.StringVar(&c.notes, "notes", "", "Free-text note on the purchase.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, err := khata.ParseSaleMethod(c.method)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	books, closer, err := openBooks()
	if err != nil {
		return fail(err)
	}
	defer closer()

	paid, err := khata.ParseMoney(c.paid, books.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing paid amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	draft := khata.PurchaseDraft{
		Supplier: c.supplier,
		Items:    c.items.priceIn(books.Currency()),
		Paid:     paid,
		Method:   method,
		Notes:    c.notes,
	}
	if c.date != "" {
		if draft.Date, err = khata.ParseDate(c.date); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}
	if c.due != "" {
		if draft.Due, err = khata.ParseDate(c.due); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}

	purchase, err := books.CreatePurchase(draft)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded purchase %s from %s: total %s, remaining %s\n",
		purchase.ID, purchase.SupplierName, purchase.TotalAmount, purchase.RemainingAmount)
	return subcommands.ExitSuccess
}
