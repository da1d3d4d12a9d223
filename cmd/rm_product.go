package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmProductCmd struct{}

func (*rmProductCmd) Name() string     { return "rm-product" }
func (*rmProductCmd) Synopsis() string { return "remove a product" }
func (*rmProductCmd) Usage() string {
	return `kh rm-product <product-id>

  Removes a product from the catalog. Past sales keep their snapshotted
  product names and prices.
`
}

func (*rmProductCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one product id")
		return subcommands.ExitUsageError
	}
	books, closer, err := openBooks()
	if err != nil {
		return fail(err)
	}
	defer closer()

	if err := books.RemoveProduct(f.Arg(0)); err != nil {
		return fail(err)
	}
	fmt.Println("Removed product", f.Arg(0))
	return subcommands.ExitSuccess
}
