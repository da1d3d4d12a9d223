package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/dawoodab/khata"
	"github.com/dawoodab/khata/renderer"
	"github.com/google/subcommands"
)

type customersCmd struct {
	search string
}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "list customers and their balances" }
func (*customersCmd) Usage() string {
	return `kh customers [-q <term>]

  Lists customers with their outstanding balances.
`
}

func (c *customersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "q", "", "Filter by name, phone or city substring.")
}

func (c *customersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, closer, err := openBooks()
	if err != nil {
		return fail(err)
	}
	defer closer()

	list := books.Customers.Select(khata.CustomerMatches(c.search))

	var b strings.Builder
	renderer.Customers(&b, list)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
