package renderer

import (
	"fmt"
	"io"

	"github.com/dawoodab/khata"
)

// Summary renders the dashboard figures for a given date.
func Summary(w io.Writer, shop khata.Settings, on khata.Date, s khata.Stats) {
	fmt.Fprintf(w, "# %s — %s\n\n", shop.StoreName, on)
	fmt.Fprintln(w, "| | Total | This month |")
	fmt.Fprintln(w, "|---|---:|---:|")
	fmt.Fprintf(w, "| Sales | %s | %s |\n", s.TotalSales, s.MonthlySales)
	fmt.Fprintf(w, "| Purchases | %s | %s |\n", s.TotalPurchases, s.MonthlyPurchases)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- Receivable from customers: **%s**\n", s.TotalReceivables)
	fmt.Fprintf(w, "- Payable to suppliers: **%s**\n", s.TotalPayables)
	fmt.Fprintf(w, "- %d customers, %d products on the books.\n", s.TotalCustomers, s.TotalProducts)
}
