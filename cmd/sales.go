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

type salesCmd struct {
	period string
	start  string
	date   string
	search string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list sales, newest first" }
func (*salesCmd) Usage() string {
	return `kh sales [-p <period> | -s <start_date>] [-d <end_date>] [-q <term>]

  Lists sales with their item lines, filtered by date range and search term.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "", "The end date for the range, defaults to today.")
	f.StringVar(&c.search, "q", "", "Filter by customer name or sale id substring.")
}

// parseRange resolves the shared -p/-s/-d date filtering flags. The zero
// Range means no date filter.
func parseRange(period, start, date string) (khata.Range, error) {
	if period == "" && start == "" && date == "" {
		return khata.Range{}, nil
	}
	endStr := date
	if endStr == "" {
		endStr = khata.Today().String()
	}
	end, err := khata.ParseDate(endStr)
	if err != nil {
		return khata.Range{}, err
	}
	if start != "" {
		from, err := khata.ParseDate(start)
		if err != nil {
			return khata.Range{}, err
		}
		return khata.NewRange(from, end), nil
	}
	if period == "" {
		period = "month"
	}
	p, err := khata.ParsePeriod(period)
	if err != nil {
		return khata.Range{}, err
	}
	return p.Range(end), nil
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	list := books.SortedSales(khata.SaleInRange(r), khata.SaleMatches(c.search))

	var b strings.Builder
	renderer.Sales(&b, list)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
