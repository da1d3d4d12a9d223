package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/dawoodab/khata"
	"github.com/dawoodab/khata/renderer"
	"github.com/google/subcommands"
)

type productsCmd struct {
	search string
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list products and their stock" }
func (*productsCmd) Usage() string {
	return `kh products [-q <term>]

  Lists the product catalog with prices and stock levels.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "q", "", "Filter by name, category or material substring.")
}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, closer, err := openBooks()
	if err != nil {
		return fail(err)
	}
	defer closer()

	list := books.Products.Select(khata.ProductMatches(c.search))

	var b strings.Builder
	renderer.Products(&b, list)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
