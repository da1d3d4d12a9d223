package khata

import (
	"fmt"
	"time"
)

// PaymentMethod is how a sale or a settlement was paid.
type PaymentMethod string

const (
	PayCash   PaymentMethod = "cash"
	PayBank   PaymentMethod = "bank"
	PayCredit PaymentMethod = "credit"
	PayCheque PaymentMethod = "cheque"
)

// ParseSaleMethod parses a payment method accepted on sales and purchases.
func ParseSaleMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PayCash, PayBank, PayCredit:
		return PaymentMethod(s), nil
	default:
		return "", fmt.Errorf("unknown payment method %q (want cash, bank or credit)", s)
	}
}

// ParseSettlementMethod parses a payment method accepted on payments and receipts.
func ParseSettlementMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PayCash, PayBank, PayCheque:
		return PaymentMethod(s), nil
	default:
		return "", fmt.Errorf("unknown payment method %q (want cash, bank or cheque)", s)
	}
}

// SaleItem is one line of a sale. ProductName and Unit are snapshots taken at
// creation time: editing the product later never rewrites historical sales.
type SaleItem struct {
	ID          string   `json:"id"`
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName"`
	Quantity    Quantity `json:"quantity"`
	UnitPrice   Money    `json:"unitPrice"`
	TotalPrice  Money    `json:"totalPrice"`
	Unit        string   `json:"unit"`
}

// Sale is a sale to a known customer. CustomerName is a snapshot of the
// customer's name at creation time.
type Sale struct {
	ID              string        `json:"id"`
	CustomerID      string        `json:"customerId"`
	CustomerName    string        `json:"customerName"`
	Items           []SaleItem    `json:"items"`
	TotalAmount     Money         `json:"totalAmount"`
	PaidAmount      Money         `json:"paidAmount"`
	RemainingAmount Money         `json:"remainingAmount"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	SaleDate        Date          `json:"saleDate"`
	DueDate         Date          `json:"dueDate,omitzero"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

func (s Sale) Key() string { return s.ID }
