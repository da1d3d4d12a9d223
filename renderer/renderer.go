// Package renderer turns books data into markdown for terminal display.
package renderer

import (
	"fmt"
	"io"

	"github.com/dawoodab/khata"
)

// Customers renders the customer list as a markdown table.
func Customers(w io.Writer, list []khata.Customer) {
	fmt.Fprintf(w, "# Customers (%d)\n\n", len(list))
	if len(list) == 0 {
		fmt.Fprintln(w, "No customers yet. Add one with `kh add-customer`.")
		return
	}
	fmt.Fprintln(w, "| Name | Phone | City | Balance |")
	fmt.Fprintln(w, "|---|---|---|---:|")
	for _, c := range list {
		fmt.Fprintf(w, "| %s | %s | %s | %s |\n", c.Name, c.Phone, c.City, c.CurrentBalance)
	}
	fmt.Fprintln(w)
	for _, c := range list {
		fmt.Fprintf(w, "- %s: `%s`\n", c.Name, c.ID)
	}
}

// Products renders the product list as a markdown table.
func Products(w io.Writer, list []khata.Product) {
	fmt.Fprintf(w, "# Products (%d)\n\n", len(list))
	if len(list) == 0 {
		fmt.Fprintln(w, "No products yet. Add one with `kh add-product`.")
		return
	}
	fmt.Fprintln(w, "| Name | Category | Material | Price | Stock | Unit |")
	fmt.Fprintln(w, "|---|---|---|---:|---:|---|")
	for _, p := range list {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s |\n",
			p.Name, p.Category, p.Material, p.Price, p.StockQuantity, p.Unit)
	}
	fmt.Fprintln(w)
	for _, p := range list {
		fmt.Fprintf(w, "- %s: `%s`\n", p.Name, p.ID)
	}
}
