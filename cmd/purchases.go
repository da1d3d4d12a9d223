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

type purchasesCmd struct {
	period string
	start  string
	date   string
	search string
}

func (*purchasesCmd) Name() string     { return "purchases" }
func (*purchasesCmd) Synopsis() string { return "list purchases, newest first" }
func (*purchasesCmd) Usage() string {
	return `kh purchases [-p <period> | -s <start_date>] [-d <end_date>] [-q <term>]

  Lists purchases filtered by date range and supplier name.
`
}

func (c *purchasesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "", "The end date for the range, defaults to today.")
	f.StringVar(&c.search, "q", "", "Filter by supplier name substring.")
}

func (c *purchasesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	list := books.SortedPurchases(khata.PurchaseInRange(r), khata.PurchaseMatches(c.search))

	var b strings.Builder
	renderer.Purchases(&b, list)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
