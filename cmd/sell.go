package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dawoodab/khata"
	"github.com/dawoodab/khata/renderer"
	"github.com/google/subcommands"
)

// lineFlags collects repeated -item flags of the form product-id:qty:unit-price.
type lineFlags []khata.LineDraft

func (l *lineFlags) String() string { return fmt.Sprintf("%d items", len(*l)) }

func (l *lineFlags) Set(s string) error {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return fmt.Errorf("invalid item %q (want product-id:qty:unit-price)", s)
	}
	qty, err := khata.ParseQuantity(parts[1])
	if err != nil {
		return fmt.Errorf("invalid quantity in %q: %w", s, err)
	}
	price, err := khata.ParseMoney(parts[2], "")
	if err != nil {
		return fmt.Errorf("invalid unit price in %q: %w", s, err)
	}
	*l = append(*l, khata.LineDraft{ProductID: parts[0], Quantity: qty, UnitPrice: price})
	return nil
}

// priceIn stamps the shop currency on prices parsed before the books were open.
func (l lineFlags) priceIn(currency string) []khata.LineDraft {
	out := make([]khata.LineDraft, len(l))
	for i, it := range l {
		out[i] = it
		out[i].UnitPrice = khata.M(0, currency).Add(it.UnitPrice)
	}
	return out
}

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	customer string
	items    lineFlags
	paid     string
	method   string
	date     string
	due      string
	notes    string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale to a customer" }
func (*sellCmd) Usage() string {
	return `kh sell -c <customer-id> -item <product-id:qty:unit-price> [-item ...] [-paid <amount>] [-m cash|bank|credit]

  Records a sale. The unpaid remainder goes on the customer's balance, sold
  quantities come off the stock, and the ledger gets a new entry.

Usage Examples:
# 3 meters at 100 each, 200 received on the spot.
$ kh sell -c 42f1... -item 9c0d...:3:100 -paid 200 -m cash
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer id (required).")
	f.Var(&c.items, "item", "Sale line as product-id:qty:unit-price. Repeatable.")
	f.StringVar(&c.paid, "paid", "0", "Amount received now.")
	f.StringVar(&c.method, "m", "cash", "Payment method: cash, bank or credit.")
	f.StringVar(&c.date, "d", "", "Sale date, defaults to today.")
	f.StringVar(&c.due, "due", "", "Due date for the remainder.")
	f.StringVar(&c.notes, "notes", "", "Free-text note on the sale.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	draft := khata.SaleDraft{
		CustomerID: c.customer,
		Items:      c.items.priceIn(books.Currency()),
		Paid:       paid,
		Method:     method,
		Notes:      c.notes,
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

	sale, err := books.CreateSale(draft)
	if err != nil {
		return fail(err)
	}

	var b strings.Builder
	renderer.Sale(&b, sale)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
