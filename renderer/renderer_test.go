package renderer

import (
	"strings"
	"testing"

	"github.com/dawoodab/khata"
)

func TestCustomersTable(t *testing.T) {
	var b strings.Builder
	Customers(&b, []khata.Customer{
		{ID: "c1", Name: "Khalid Traders", Phone: "0300 1234567", City: "Faisalabad", CurrentBalance: khata.M(1500, "PKR")},
	})
	out := b.String()

	for _, want := range []string{
		"# Customers (1)",
		"| Khalid Traders | 0300 1234567 | Faisalabad |",
		"`c1`",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCustomersEmpty(t *testing.T) {
	var b strings.Builder
	Customers(&b, nil)
	if !strings.Contains(b.String(), "No customers yet") {
		t.Errorf("output = %s", b.String())
	}
}

func TestSaleSection(t *testing.T) {
	var b strings.Builder
	Sale(&b, khata.Sale{
		ID:           "s1",
		CustomerName: "Khalid Traders",
		Items: []khata.SaleItem{
			{ProductName: "Lawn 2-piece", Quantity: khata.Q(3), Unit: "meters", UnitPrice: khata.M(100, "PKR"), TotalPrice: khata.M(300, "PKR")},
		},
		TotalAmount:     khata.M(300, "PKR"),
		PaidAmount:      khata.M(200, "PKR"),
		RemainingAmount: khata.M(100, "PKR"),
		PaymentMethod:   khata.PayCash,
		SaleDate:        khata.MustParseDate("2026-03-14"),
		Notes:           "evening delivery",
	})
	out := b.String()

	for _, want := range []string{
		"## 2026-03-14 — Khalid Traders",
		"| Lawn 2-piece | 3 | meters |",
		"paid by cash",
		"> evening delivery",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStatement(t *testing.T) {
	var b strings.Builder
	Statement(&b,
		khata.Customer{Name: "Khalid Traders", CurrentBalance: khata.M(100, "PKR")},
		[]khata.LedgerEntry{
			{Date: khata.MustParseDate("2026-03-14"), Type: khata.EntrySale, Description: "Sale to Khalid Traders",
				Debit: khata.M(300, "PKR"), Credit: khata.M(200, "PKR"), Balance: khata.M(100, "PKR")},
		})
	out := b.String()

	if !strings.Contains(out, "# Statement — Khalid Traders") {
		t.Errorf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "| 2026-03-14 | sale |") {
		t.Errorf("missing entry row:\n%s", out)
	}
	if !strings.Contains(out, "Outstanding balance") {
		t.Errorf("missing balance line:\n%s", out)
	}
}

func TestSummary(t *testing.T) {
	var b strings.Builder
	Summary(&b, khata.DefaultSettings(), khata.MustParseDate("2026-03-14"), khata.Stats{
		TotalSales:       khata.M(400, "PKR"),
		TotalPurchases:   khata.M(500, "PKR"),
		TotalReceivables: khata.M(100, "PKR"),
		TotalPayables:    khata.M(500, "PKR"),
		MonthlySales:     khata.M(300, "PKR"),
		MonthlyPurchases: khata.M(500, "PKR"),
		TotalCustomers:   1,
		TotalProducts:    2,
	})
	out := b.String()

	if !strings.Contains(out, "DAWOOD AB COLLECTIONS") {
		t.Errorf("missing store name:\n%s", out)
	}
	if !strings.Contains(out, "1 customers, 2 products") {
		t.Errorf("missing counts:\n%s", out)
	}
}
