package renderer

import (
	"fmt"
	"io"

	"github.com/dawoodab/khata"
)

// Sales renders a list of sales, newest first, one section per sale.
func Sales(w io.Writer, list []khata.Sale) {
	fmt.Fprintf(w, "# Sales (%d)\n\n", len(list))
	if len(list) == 0 {
		fmt.Fprintln(w, "No sales recorded.")
		return
	}
	for _, s := range list {
		Sale(w, s)
	}
}

// Sale renders one sale with its item lines.
func Sale(w io.Writer, s khata.Sale) {
	fmt.Fprintf(w, "## %s — %s\n\n", s.SaleDate, s.CustomerName)
	fmt.Fprintf(w, "`%s` paid by %s\n\n", s.ID, s.PaymentMethod)
	fmt.Fprintln(w, "| Product | Qty | Unit | Price | Total |")
	fmt.Fprintln(w, "|---|---:|---|---:|---:|")
	for _, it := range s.Items {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
			it.ProductName, it.Quantity, it.Unit, it.UnitPrice, it.TotalPrice)
	}
	fmt.Fprintf(w, "\nTotal %s, paid %s, remaining %s.\n", s.TotalAmount, s.PaidAmount, s.RemainingAmount)
	if !s.DueDate.IsZero() {
		fmt.Fprintf(w, "Due by %s.\n", s.DueDate)
	}
	if s.Notes != "" {
		fmt.Fprintf(w, "> %s\n", s.Notes)
	}
	fmt.Fprintln(w)
}

// Purchases renders a list of purchases, newest first.
func Purchases(w io.Writer, list []khata.Purchase) {
	fmt.Fprintf(w, "# Purchases (%d)\n\n", len(list))
	if len(list) == 0 {
		fmt.Fprintln(w, "No purchases recorded.")
		return
	}
	for _, p := range list {
		fmt.Fprintf(w, "## %s — %s\n\n", p.PurchaseDate, p.SupplierName)
		fmt.Fprintf(w, "`%s` paid by %s\n\n", p.ID, p.PaymentMethod)
		fmt.Fprintln(w, "| Product | Qty | Price | Total |")
		fmt.Fprintln(w, "|---|---:|---:|---:|")
		for _, it := range p.Items {
			fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
				it.ProductName, it.Quantity, it.UnitPrice, it.TotalPrice)
		}
		fmt.Fprintf(w, "\nTotal %s, paid %s, remaining %s.\n\n", p.TotalAmount, p.PaidAmount, p.RemainingAmount)
	}
}
