package khata

import "time"

// Payment is money received from a customer, settling part of their balance.
// CustomerName is a snapshot taken at creation time.
type Payment struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customerId"`
	CustomerName  string        `json:"customerName"`
	Amount        Money         `json:"amount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentDate   Date          `json:"paymentDate"`
	Reference     string        `json:"reference,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func (p Payment) Key() string { return p.ID }

// Receipt is money paid out to a supplier. Suppliers are free text, so a
// receipt updates no balance; it is recorded and logged only.
type Receipt struct {
	ID            string        `json:"id"`
	SupplierName  string        `json:"supplierName"`
	Amount        Money         `json:"amount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentDate   Date          `json:"paymentDate"`
	Reference     string        `json:"reference,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func (r Receipt) Key() string { return r.ID }
