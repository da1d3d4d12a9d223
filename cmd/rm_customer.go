package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCustomerCmd struct{}

func (*rmCustomerCmd) Name() string     { return "rm-customer" }
func (*rmCustomerCmd) Synopsis() string { return "remove a customer" }
func (*rmCustomerCmd) Usage() string {
	return `kh rm-customer <customer-id>

  Removes a customer. Past sales and ledger entries keep the snapshotted
  customer name; nothing else is deleted.
`
}

func (*rmCustomerCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one customer id")
		return subcommands.ExitUsageError
	}
	books, closer, err := openBooks()
	if err != nil {
		return fail(err)
	}
	defer closer()

	if err := books.RemoveCustomer(f.Arg(0)); err != nil {
		return fail(err)
	}
	fmt.Println("Removed customer", f.Arg(0))
	return subcommands.ExitSuccess
}
