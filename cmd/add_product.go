package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dawoodab/khata"
	"github.com/google/subcommands"
)

type addProductCmd struct {
	name     string
	category string
	color    string
	material string
	price    string
	cost     string
	stock    string
	unit     string
	desc     string
}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "add a product with its opening stock" }
func (*addProductCmd) Usage() string {
	return `kh add-product -name <name> -price <price> [-stock <qty>] [-unit <unit>]

  Adds an article to the product list.
`
}

func (c *addProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name (required).")
	f.StringVar(&c.category, "category", "", "Category, e.g. lawn, cotton, silk.")
	f.StringVar(&c.color, "color", "", "Color.")
	f.StringVar(&c.material, "material", "", "Material.")
	f.StringVar(&c.price, "price", "0", "Selling price per unit.")
	f.StringVar(&c.cost, "cost", "", "Cost price per unit.")
	f.StringVar(&c.stock, "stock", "0", "Opening stock quantity.")
	f.StringVar(&c.unit, "unit", "", "Unit of measure, defaults to meters.")
	f.StringVar(&c.desc, "desc", "", "Free-text description.")
}

func (c *addProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, closer, err := openBooks()
	if err != nil {
		return fail(err)
	}
	defer closer()

	price, err := khata.ParseMoney(c.price, books.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}
	stock, err := khata.ParseQuantity(c.stock)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing stock: %v\n", err)
		return subcommands.ExitUsageError
	}
	draft := khata.ProductDraft{
		Name:        c.name,
		Category:    c.category,
		Color:       c.color,
		Material:    c.material,
		Price:       price,
		Stock:       stock,
		Unit:        c.unit,
		Description: c.desc,
	}
	if c.cost != "" {
		cost, err := khata.ParseMoney(c.cost, books.Currency())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing cost price: %v\n", err)
			return subcommands.ExitUsageError
		}
		draft.CostPrice = cost
	}

	product, err := books.AddProduct(draft)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added product %s (%s)\n", product.Name, product.ID)
	return subcommands.ExitSuccess
}
