package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dawoodab/khata"
	"github.com/google/subcommands"
)

// stockCmd moves stock by hand, for incoming goods, shrinkage or corrections.
type stockCmd struct {
	delta string
	note  string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "adjust a product's stock by hand" }
func (*stockCmd) Usage() string {
	return `kh stock -n <qty> <product-id>

  Adds qty to the product's stock (negative to remove) and records an
  adjustment entry in the ledger.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.delta, "n", "", "Quantity to add, e.g. 40 or -2.5 (required).")
	f.StringVar(&c.note, "note", "", "Reason for the adjustment.")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one product id")
		return subcommands.ExitUsageError
	}
	delta, err := khata.ParseQuantity(c.delta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
		return subcommands.ExitUsageError
	}

	books, closer, err := openBooks()
	if err != nil {
		return fail(err)
	}
	defer closer()

	product, err := books.AdjustStock(f.Arg(0), delta, c.note)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Stock of %s is now %s %s\n", product.Name, product.StockQuantity, product.Unit)
	return subcommands.ExitSuccess
}
