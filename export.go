package khata

import (
	"encoding/csv"
	"fmt"
	"io"
)

// This file implements the CSV export format: one file per collection, one
// row per record, amounts as plain decimal strings in the shop currency.

// ExportCSV writes the named collection to w as CSV.
func (b *Books) ExportCSV(w io.Writer, key string) error {
	switch key {
	case KeyCustomers:
		return b.exportCustomers(w)
	case KeyProducts:
		return b.exportProducts(w)
	case KeySales:
		return b.exportSales(w)
	case KeyPurchases:
		return b.exportPurchases(w)
	case KeyLedger:
		return b.exportLedger(w)
	default:
		return fmt.Errorf("no CSV export for collection %q", key)
	}
}

func (b *Books) exportCustomers(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "name", "phone", "address", "city", "creditLimit", "currentBalance", "createdAt"})
	for c := range b.Customers.All() {
		cw.Write([]string{
			c.ID, c.Name, c.Phone, c.Address, c.City,
			c.CreditLimit.value.String(), c.CurrentBalance.value.String(),
			c.CreatedAt.Format(DateFormat),
		})
	}
	cw.Flush()
	return cw.Error()
}

func (b *Books) exportProducts(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "name", "category", "color", "material", "price", "costPrice", "stockQuantity", "unit"})
	for p := range b.Products.All() {
		cw.Write([]string{
			p.ID, p.Name, p.Category, p.Color, p.Material,
			p.Price.value.String(), p.CostPrice.value.String(),
			p.StockQuantity.String(), p.Unit,
		})
	}
	cw.Flush()
	return cw.Error()
}

// exportSales writes one row per sale line, so quantities and unit prices
// survive the flattening.
func (b *Books) exportSales(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"saleId", "saleDate", "customer", "product", "quantity", "unit", "unitPrice", "lineTotal", "saleTotal", "paid", "remaining", "method"})
	for s := range b.Sales.All() {
		for _, it := range s.Items {
			cw.Write([]string{
				s.ID, s.SaleDate.String(), s.CustomerName,
				it.ProductName, it.Quantity.String(), it.Unit,
				it.UnitPrice.value.String(), it.TotalPrice.value.String(),
				s.TotalAmount.value.String(), s.PaidAmount.value.String(),
				s.RemainingAmount.value.String(), string(s.PaymentMethod),
			})
		}
	}
	cw.Flush()
	return cw.Error()
}

func (b *Books) exportPurchases(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"purchaseId", "purchaseDate", "supplier", "product", "quantity", "unit", "unitPrice", "lineTotal", "purchaseTotal", "paid", "remaining", "method"})
	for p := range b.Purchases.All() {
		for _, it := range p.Items {
			cw.Write([]string{
				p.ID, p.PurchaseDate.String(), p.SupplierName,
				it.ProductName, it.Quantity.String(), it.Unit,
				it.UnitPrice.value.String(), it.TotalPrice.value.String(),
				p.TotalAmount.value.String(), p.PaidAmount.value.String(),
				p.RemainingAmount.value.String(), string(p.PaymentMethod),
			})
		}
	}
	cw.Flush()
	return cw.Error()
}

func (b *Books) exportLedger(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "date", "type", "description", "debit", "credit", "balance", "reference", "customer"})
	for e := range b.Ledger.All() {
		cw.Write([]string{
			e.ID, e.Date.String(), string(e.Type), e.Description,
			e.Debit.value.String(), e.Credit.value.String(), e.Balance.value.String(),
			e.Reference, e.CustomerName,
		})
	}
	cw.Flush()
	return cw.Error()
}
