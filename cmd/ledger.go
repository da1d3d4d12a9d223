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

type ledgerCmd struct {
	period string
	start  string
	date   string
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "display the transaction ledger" }
func (*ledgerCmd) Usage() string {
	return `kh ledger [-p <period> | -s <start_date>] [-d <end_date>]

  Shows the append-only ledger: every sale, payment, receipt and stock
  adjustment in the order it was written.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "", "The end date for the range, defaults to today.")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.period, c.start, c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	books, closer, err := openBooks()
	if err != nil {
		return fail(err)
	}
	defer closer()

	entries := books.Ledger.Select(khata.EntryInRange(r))

	var b strings.Builder
	renderer.Ledger(&b, entries)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
