package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmPurchaseCmd struct{}

func (*rmPurchaseCmd) Name() string     { return "rm-purchase" }
func (*rmPurchaseCmd) Synopsis() string { return "delete a purchase record" }
func (*rmPurchaseCmd) Usage() string {
	return `kh rm-purchase <purchase-id>

  Deletes a purchase record.
`
}

func (*rmPurchaseCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmPurchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one purchase id")
		return subcommands.ExitUsageError
	}
	books, closer, err := openBooks()
	if err != nil {
		return fail(err)
	}
	defer closer()

	if err := books.DeletePurchase(f.Arg(0)); err != nil {
		return fail(err)
	}
	fmt.Println("Deleted purchase", f.Arg(0))
	return subcommands.ExitSuccess
}
