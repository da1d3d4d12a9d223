package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmSaleCmd struct{}

func (*rmSaleCmd) Name() string     { return "rm-sale" }
func (*rmSaleCmd) Synopsis() string { return "delete a sale record" }
func (*rmSaleCmd) Usage() string {
	return `kh rm-sale <sale-id>

  Deletes a sale record. The customer balance, product stock and ledger
  entries the sale produced are left as they are.
`
}

func (*rmSaleCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one sale id")
		return subcommands.ExitUsageError
	}
	books, closer, err := openBooks()
	if err != nil {
		return fail(err)
	}
	defer closer()

	if err := books.DeleteSale(f.Arg(0)); err != nil {
		return fail(err)
	}
	fmt.Println("Deleted sale", f.Arg(0))
	return subcommands.ExitSuccess
}
