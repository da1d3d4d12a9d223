package khata

import (
	"sort"
	"strings"
)

// Query-time helpers. Collections carry no defined sort order on write;
// consumers sort and filter at display time.

// SortedSales returns all sales, newest first.
func (b *Books) SortedSales(predicates ...func(Sale) bool) []Sale {
	sales := b.Sales.Select(predicates...)
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].CreatedAt.After(sales[j].CreatedAt)
	})
	return sales
}

// SortedPurchases returns all purchases, newest first.
func (b *Books) SortedPurchases(predicates ...func(Purchase) bool) []Purchase {
	purchases := b.Purchases.Select(predicates...)
	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].CreatedAt.After(purchases[j].CreatedAt)
	})
	return purchases
}

// SaleInRange filters sales by sale date.
func SaleInRange(r Range) func(Sale) bool {
	return func(s Sale) bool { return r.Contains(s.SaleDate) }
}

// SaleMatches filters sales by a case-insensitive substring of the customer
// name or the sale id.
func SaleMatches(term string) func(Sale) bool {
	term = strings.ToLower(term)
	return func(s Sale) bool {
		return term == "" ||
			strings.Contains(strings.ToLower(s.CustomerName), term) ||
			strings.Contains(strings.ToLower(s.ID), term)
	}
}

// PurchaseInRange filters purchases by purchase date.
func PurchaseInRange(r Range) func(Purchase) bool {
	return func(p Purchase) bool { return r.Contains(p.PurchaseDate) }
}

// PurchaseMatches filters purchases by supplier name substring.
func PurchaseMatches(term string) func(Purchase) bool {
	term = strings.ToLower(term)
	return func(p Purchase) bool {
		return term == "" || strings.Contains(strings.ToLower(p.SupplierName), term)
	}
}

// CustomerMatches filters customers by name, phone or city substring.
func CustomerMatches(term string) func(Customer) bool {
	term = strings.ToLower(term)
	return func(c Customer) bool {
		return term == "" ||
			strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(c.Phone, term) ||
			strings.Contains(strings.ToLower(c.City), term)
	}
}

// ProductMatches filters products by name, category or material substring.
func ProductMatches(term string) func(Product) bool {
	term = strings.ToLower(term)
	return func(p Product) bool {
		return term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Material), term)
	}
}

// EntryInRange filters ledger entries by date.
func EntryInRange(r Range) func(LedgerEntry) bool {
	return func(e LedgerEntry) bool { return r.Contains(e.Date) }
}

// CustomerStatement returns a customer's ledger entries in the order they
// were appended, after checking the customer exists.
func (b *Books) CustomerStatement(customerID string) (Customer, []LedgerEntry, error) {
	c, ok := b.Customers.Get(customerID)
	if !ok {
		return Customer{}, nil, NotFoundError{Entity: "customer", ID: customerID}
	}
	entries := b.Ledger.Select(func(e LedgerEntry) bool { return e.CustomerID == customerID })
	return c, entries, nil
}
