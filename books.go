package khata

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Books holds every collection of the shop over one Store and implements the
// bookkeeping rules: how sales and purchases are created, how they move
// customer balances and product stock, and what gets appended to the ledger.
type Books struct {
	store Store

	Customers *Collection[Customer]
	Products  *Collection[Product]
	Sales     *Collection[Sale]
	Purchases *Collection[Purchase]
	Ledger    *Collection[LedgerEntry]
	Payments  *Collection[Payment]
	Receipts  *Collection[Receipt]

	settings *Collection[Settings]

	now func() time.Time // test hook
}

// OpenBooks loads every collection from the store. Missing collections start
// empty; missing settings fall back to DefaultSettings.
func OpenBooks(store Store) (*Books, error) {
	b := &Books{
		store:     store,
		Customers: newCollection[Customer](KeyCustomers),
		Products:  newCollection[Product](KeyProducts),
		Sales:     newCollection[Sale](KeySales),
		Purchases: newCollection[Purchase](KeyPurchases),
		Ledger:    newCollection[LedgerEntry](KeyLedger),
		Payments:  newCollection[Payment](KeyPayments),
		Receipts:  newCollection[Receipt](KeyReceipts),
		settings:  newCollection[Settings](KeySettings),
		now:       time.Now,
	}
	for key, load := range map[string]func([]byte) error{
		KeyCustomers: b.Customers.load,
		KeyProducts:  b.Products.load,
		KeySales:     b.Sales.load,
		KeyPurchases: b.Purchases.load,
		KeyLedger:    b.Ledger.load,
		KeyPayments:  b.Payments.load,
		KeyReceipts:  b.Receipts.load,
		KeySettings:  b.settings.load,
	} {
		data, err := store.Read(key)
		if err != nil {
			return nil, err
		}
		if err := load(data); err != nil {
			return nil, fmt.Errorf("could not load books: %w", err)
		}
	}
	if b.settings.Len() == 0 {
		b.settings.Upsert(DefaultSettings())
	}
	return b, nil
}

// Settings returns the shop settings.
func (b *Books) Settings() Settings {
	s, _ := b.settings.Get("settings")
	return s
}

// SaveSettings replaces the shop settings.
func (b *Books) SaveSettings(s Settings) error {
	b.settings.Upsert(s)
	return b.persist(KeySettings)
}

// Currency returns the shop currency code, e.g. "PKR".
func (b *Books) Currency() string { return b.Settings().Currency }

// newID returns a fresh opaque identifier.
func newID() string { return uuid.NewString() }

// persist rewrites the named collections wholesale in one store update.
// Whether that update is atomic across collections depends on the backend.
func (b *Books) persist(keys ...string) error {
	encoders := map[string]func() ([]byte, error){
		KeyCustomers: b.Customers.encode,
		KeyProducts:  b.Products.encode,
		KeySales:     b.Sales.encode,
		KeyPurchases: b.Purchases.encode,
		KeyLedger:    b.Ledger.encode,
		KeyPayments:  b.Payments.encode,
		KeyReceipts:  b.Receipts.encode,
		KeySettings:  b.settings.encode,
	}
	return b.store.Update(func(w Putter) error {
		for _, key := range keys {
			enc, ok := encoders[key]
			if !ok {
				return fmt.Errorf("unknown collection %q", key)
			}
			data, err := enc()
			if err != nil {
				return err
			}
			if err := w.Put(key, data); err != nil {
				return err
			}
		}
		return nil
	})
}

// LineDraft is one proposed item line of a sale or purchase.
type LineDraft struct {
	ProductID string
	Quantity  Quantity
	UnitPrice Money
}

// SaleDraft is a proposed sale, as entered on the sale form.
type SaleDraft struct {
	CustomerID string
	Items      []LineDraft
	Paid       Money
	Method     PaymentMethod
	Date       Date // defaults to today
	Due        Date
	Notes      string
}

// validate fails fast, before any entity is resolved or mutated.
func (d SaleDraft) validate() error {
	if d.CustomerID == "" {
		return ValidationError{Field: "customer", Reason: "a sale requires a customer"}
	}
	if len(d.Items) == 0 {
		return ValidationError{Field: "items", Reason: "a sale requires at least one item"}
	}
	return validateLines(d.Items, d.Paid, d.Method)
}

func validateLines(items []LineDraft, paid Money, method PaymentMethod) error {
	for i, it := range items {
		if it.ProductID == "" {
			return ValidationError{Field: "items", Reason: fmt.Sprintf("item %d has no product", i+1)}
		}
		if !it.Quantity.IsPositive() {
			return ValidationError{Field: "items", Reason: fmt.Sprintf("item %d quantity must be positive, got %s", i+1, it.Quantity)}
		}
		if it.UnitPrice.IsNegative() {
			return ValidationError{Field: "items", Reason: fmt.Sprintf("item %d unit price must not be negative, got %s", i+1, it.UnitPrice)}
		}
	}
	if paid.IsNegative() {
		return ValidationError{Field: "paidAmount", Reason: "paid amount must not be negative"}
	}
	switch method {
	case PayCash, PayBank, PayCredit:
	default:
		return ValidationError{Field: "paymentMethod", Reason: fmt.Sprintf("unknown payment method %q", method)}
	}
	return nil
}

// CreateSale records a sale and applies its side effects: the customer's
// balance grows by the remaining amount and each product's stock shrinks by
// the sold quantity. All writes go through one store update; on the SQLite
// backend they commit or roll back together. When the update fails, the
// in-memory collections keep the applied mutations and no longer match disk;
// callers should treat the books as unusable and reopen them.
//
// Product names and units are snapshotted onto the sale lines at creation
// time, so editing a product later never rewrites sale history.
func (b *Books) CreateSale(d SaleDraft) (Sale, error) {
	if err := d.validate(); err != nil {
		return Sale{}, err
	}

	customer, ok := b.Customers.Get(d.CustomerID)
	if !ok {
		return Sale{}, NotFoundError{Entity: "customer", ID: d.CustomerID}
	}

	// Resolve every product before touching anything, so a dangling
	// reference fails the whole sale without side effects.
	products := make([]Product, len(d.Items))
	for i, it := range d.Items {
		p, ok := b.Products.Get(it.ProductID)
		if !ok {
			return Sale{}, NotFoundError{Entity: "product", ID: it.ProductID}
		}
		products[i] = p
	}

	now := b.now()
	day := d.Date
	if day.IsZero() {
		day = DateOf(now)
	}

	total := M(0, b.Currency())
	items := make([]SaleItem, len(d.Items))
	for i, it := range d.Items {
		lineTotal := it.UnitPrice.Mul(it.Quantity)
		items[i] = SaleItem{
			ID:          newID(),
			ProductID:   it.ProductID,
			ProductName: products[i].Name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  lineTotal,
			Unit:        products[i].Unit,
		}
		total = total.Add(lineTotal)
	}
	remaining := total.Sub(d.Paid).OrZero()

	sale := Sale{
		ID:              newID(),
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		Items:           items,
		TotalAmount:     total,
		PaidAmount:      d.Paid,
		RemainingAmount: remaining,
		PaymentMethod:   d.Method,
		SaleDate:        day,
		DueDate:         d.Due,
		Notes:           d.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	b.Sales.Upsert(sale)

	customer.CurrentBalance = customer.CurrentBalance.Add(remaining)
	customer.UpdatedAt = now
	b.Customers.Upsert(customer)

	// Re-fetch per line: the same product may appear on several lines, and
	// each decrement must build on the previous one.
	for _, it := range d.Items {
		p, _ := b.Products.Get(it.ProductID)
		p.StockQuantity = p.StockQuantity.Sub(it.Quantity)
		p.UpdatedAt = now
		b.Products.Upsert(p)
	}

	b.Ledger.Upsert(LedgerEntry{
		ID:           newID(),
		Date:         day,
		Type:         EntrySale,
		Description:  fmt.Sprintf("Sale to %s", customer.Name),
		Debit:        total,
		Credit:       d.Paid,
		Balance:      customer.CurrentBalance,
		Reference:    sale.ID,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		CreatedAt:    now,
	})

	if err := b.persist(KeySales, KeyCustomers, KeyProducts, KeyLedger); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

// DeleteSale removes a sale by identity. It deliberately does NOT reverse the
// customer balance or product stock changes the sale caused; the books keep
// the asymmetry the shop has always lived with.
func (b *Books) DeleteSale(id string) error {
	if !b.Sales.Delete(id) {
		return NotFoundError{Entity: "sale", ID: id}
	}
	return b.persist(KeySales)
}

// PurchaseDraft is a proposed purchase from a supplier.
type PurchaseDraft struct {
	Supplier string
	Items    []LineDraft
	Paid     Money
	Method   PaymentMethod
	Date     Date
	Due      Date
	Notes    string
}

func (d PurchaseDraft) validate() error {
	if d.Supplier == "" {
		return ValidationError{Field: "supplier", Reason: "a purchase requires a supplier name"}
	}
	if len(d.Items) == 0 {
		return ValidationError{Field: "items", Reason: "a purchase requires at least one item"}
	}
	return validateLines(d.Items, d.Paid, d.Method)
}

// CreatePurchase records a purchase. Totals are computed exactly like a
// sale's, but no stock or balance side effect is applied: suppliers are free
// text and incoming stock is adjusted by hand.
func (b *Books) CreatePurchase(d PurchaseDraft) (Purchase, error) {
	if err := d.validate(); err != nil {
		return Purchase{}, err
	}

	now := b.now()
	day := d.Date
	if day.IsZero() {
		day = DateOf(now)
	}

	total := M(0, b.Currency())
	items := make([]PurchaseItem, len(d.Items))
	for i, it := range d.Items {
		// Product references on purchases are not resolved: lines may name
		// goods that are not in the product list yet.
		name, unit := it.ProductID, ""
		if p, ok := b.Products.Get(it.ProductID); ok {
			name, unit = p.Name, p.Unit
		}
		lineTotal := it.UnitPrice.Mul(it.Quantity)
		items[i] = PurchaseItem{
			ID:          newID(),
			ProductID:   it.ProductID,
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  lineTotal,
			Unit:        unit,
		}
		total = total.Add(lineTotal)
	}

	purchase := Purchase{
		ID:              newID(),
		SupplierName:    d.Supplier,
		Items:           items,
		TotalAmount:     total,
		PaidAmount:      d.Paid,
		RemainingAmount: total.Sub(d.Paid).OrZero(),
		PaymentMethod:   d.Method,
		PurchaseDate:    day,
		DueDate:         d.Due,
		Notes:           d.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	b.Purchases.Upsert(purchase)

	if err := b.persist(KeyPurchases); err != nil {
		return Purchase{}, err
	}
	return purchase, nil
}

// DeletePurchase removes a purchase by identity.
func (b *Books) DeletePurchase(id string) error {
	if !b.Purchases.Delete(id) {
		return NotFoundError{Entity: "purchase", ID: id}
	}
	return b.persist(KeyPurchases)
}

// PaymentDraft is money received from a customer.
type PaymentDraft struct {
	CustomerID string
	Amount     Money
	Method     PaymentMethod
	Date       Date
	Reference  string
	Notes      string
}

// RecordPayment stores a payment, settles it against the customer's balance,
// and appends a ledger entry. The balance may go negative when the customer
// overpays; that credit is theirs to spend.
func (b *Books) RecordPayment(d PaymentDraft) (Payment, error) {
	if d.CustomerID == "" {
		return Payment{}, ValidationError{Field: "customer", Reason: "a payment requires a customer"}
	}
	if !d.Amount.IsPositive() {
		return Payment{}, ValidationError{Field: "amount", Reason: "payment amount must be positive"}
	}
	switch d.Method {
	case PayCash, PayBank, PayCheque:
	default:
		return Payment{}, ValidationError{Field: "paymentMethod", Reason: fmt.Sprintf("unknown payment method %q", d.Method)}
	}

	customer, ok := b.Customers.Get(d.CustomerID)
	if !ok {
		return Payment{}, NotFoundError{Entity: "customer", ID: d.CustomerID}
	}

	now := b.now()
	day := d.Date
	if day.IsZero() {
		day = DateOf(now)
	}

	payment := Payment{
		ID:            newID(),
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Amount:        d.Amount,
		PaymentMethod: d.Method,
		PaymentDate:   day,
		Reference:     d.Reference,
		Notes:         d.Notes,
		CreatedAt:     now,
	}
	b.Payments.Upsert(payment)

	customer.CurrentBalance = customer.CurrentBalance.Sub(d.Amount)
	customer.UpdatedAt = now
	b.Customers.Upsert(customer)

	b.Ledger.Upsert(LedgerEntry{
		ID:           newID(),
		Date:         day,
		Type:         EntryPayment,
		Description:  fmt.Sprintf("Payment from %s", customer.Name),
		Credit:       d.Amount,
		Debit:        M(0, d.Amount.Currency()),
		Balance:      customer.CurrentBalance,
		Reference:    payment.ID,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		CreatedAt:    now,
	})

	if err := b.persist(KeyPayments, KeyCustomers, KeyLedger); err != nil {
		return Payment{}, err
	}
	return payment, nil
}

// ReceiptDraft is money paid out to a supplier.
type ReceiptDraft struct {
	Supplier  string
	Amount    Money
	Method    PaymentMethod
	Date      Date
	Reference string
	Notes     string
}

// RecordReceipt stores a supplier receipt and appends a ledger entry.
// Suppliers carry no balance, so nothing else moves.
func (b *Books) RecordReceipt(d ReceiptDraft) (Receipt, error) {
	if d.Supplier == "" {
		return Receipt{}, ValidationError{Field: "supplier", Reason: "a receipt requires a supplier name"}
	}
	if !d.Amount.IsPositive() {
		return Receipt{}, ValidationError{Field: "amount", Reason: "receipt amount must be positive"}
	}
	switch d.Method {
	case PayCash, PayBank, PayCheque:
	default:
		return Receipt{}, ValidationError{Field: "paymentMethod", Reason: fmt.Sprintf("unknown payment method %q", d.Method)}
	}

	now := b.now()
	day := d.Date
	if day.IsZero() {
		day = DateOf(now)
	}

	receipt := Receipt{
		ID:            newID(),
		SupplierName:  d.Supplier,
		Amount:        d.Amount,
		PaymentMethod: d.Method,
		PaymentDate:   day,
		Reference:     d.Reference,
		Notes:         d.Notes,
		CreatedAt:     now,
	}
	b.Receipts.Upsert(receipt)

	b.Ledger.Upsert(LedgerEntry{
		ID:          newID(),
		Date:        day,
		Type:        EntryReceipt,
		Description: fmt.Sprintf("Paid %s", d.Supplier),
		Debit:       d.Amount,
		Credit:      M(0, d.Amount.Currency()),
		Balance:     M(0, d.Amount.Currency()),
		Reference:   receipt.ID,
		CreatedAt:   now,
	})

	if err := b.persist(KeyReceipts, KeyLedger); err != nil {
		return Receipt{}, err
	}
	return receipt, nil
}
