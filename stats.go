package khata

// Stats is the dashboard summary of the books.
type Stats struct {
	TotalSales       Money
	TotalPurchases   Money
	TotalCustomers   int
	TotalProducts    int
	TotalReceivables Money // sum of unpaid sale remainders
	TotalPayables    Money // sum of unpaid purchase remainders
	MonthlySales     Money
	MonthlyPurchases Money
}

// Stats computes the summary as of a date; the monthly figures cover the
// month containing it.
func (b *Books) Stats(on Date) Stats {
	cur := b.Currency()
	month := Monthly.Range(on)

	s := Stats{
		TotalSales:       M(0, cur),
		TotalPurchases:   M(0, cur),
		TotalCustomers:   b.Customers.Len(),
		TotalProducts:    b.Products.Len(),
		TotalReceivables: M(0, cur),
		TotalPayables:    M(0, cur),
		MonthlySales:     M(0, cur),
		MonthlyPurchases: M(0, cur),
	}
	for sale := range b.Sales.All() {
		s.TotalSales = s.TotalSales.Add(sale.TotalAmount)
		s.TotalReceivables = s.TotalReceivables.Add(sale.RemainingAmount)
		if month.Contains(sale.SaleDate) {
			s.MonthlySales = s.MonthlySales.Add(sale.TotalAmount)
		}
	}
	for purchase := range b.Purchases.All() {
		s.TotalPurchases = s.TotalPurchases.Add(purchase.TotalAmount)
		s.TotalPayables = s.TotalPayables.Add(purchase.RemainingAmount)
		if month.Contains(purchase.PurchaseDate) {
			s.MonthlyPurchases = s.MonthlyPurchases.Add(purchase.TotalAmount)
		}
	}
	return s
}
