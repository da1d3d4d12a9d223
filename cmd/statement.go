package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dawoodab/khata/renderer"
	"github.com/google/subcommands"
)

type statementCmd struct{}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "display a customer's account statement" }
func (*statementCmd) Usage() string {
	return `kh statement <customer-id>

  Shows every ledger entry of one customer and their outstanding balance.
`
}

func (*statementCmd) SetFlags(f *flag.FlagSet) {}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one customer id")
		return subcommands.ExitUsageError
	}
	books, closer, err := openBooks()
	if err != nil {
		return fail(err)
	}
	defer closer()

	customer, entries, err := books.CustomerStatement(f.Arg(0))
	if err != nil {
		return fail(err)
	}

	var b strings.Builder
	renderer.Statement(&b, customer, entries)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
