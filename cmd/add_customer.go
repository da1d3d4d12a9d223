package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dawoodab/khata"
	"github.com/google/subcommands"
)

// addCustomerCmd holds the flags for the 'add-customer' subcommand.
type addCustomerCmd struct {
	name    string
	phone   string
	address string
	city    string
	limit   string
}

func (*addCustomerCmd) Name() string     { return "add-customer" }
func (*addCustomerCmd) Synopsis() string { return "add a customer to the books" }
func (*addCustomerCmd) Usage() string {
	return `kh add-customer -name <name> [-phone <phone>] [-city <city>]

  Adds a customer with a zero opening balance.
`
}

func (c *addCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Customer name (required).")
	f.StringVar(&c.phone, "phone", "", "Phone number.")
	f.StringVar(&c.address, "address", "", "Street address.")
	f.StringVar(&c.city, "city", "", "City.")
	f.StringVar(&c.limit, "limit", "", "Credit limit, e.g. 50000.")
}

func (c *addCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, closer, err := openBooks()
	if err != nil {
		return fail(err)
	}
	defer closer()

	draft := khata.CustomerDraft{
		Name:    c.name,
		Phone:   c.phone,
		Address: c.address,
		City:    c.city,
	}
	if c.limit != "" {
		limit, err := khata.ParseMoney(c.limit, books.Currency())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing credit limit: %v\n", err)
			return subcommands.ExitUsageError
		}
		draft.CreditLimit = limit
	}

	customer, err := books.AddCustomer(draft)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added customer %s (%s)\n", customer.Name, customer.ID)
	return subcommands.ExitSuccess
}
