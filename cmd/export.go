package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a collection as CSV" }
func (*exportCmd) Usage() string {
	return `kh export [-o <file>] <collection>

  Writes one collection as CSV to stdout or to a file. Collections:
  customers, products, sales, purchases, ledger_entries.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Write to this file instead of stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one collection name")
		return subcommands.ExitUsageError
	}
	books, closer, err := openBooks()
	if err != nil {
		return fail(err)
	}
	defer closer()

	out := os.Stdout
	if c.outputFile != "" {
		out, err = os.Create(c.outputFile)
		if err != nil {
			return fail(err)
		}
		defer out.Close()
	}

	if err := books.ExportCSV(out, f.Arg(0)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
