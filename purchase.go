package khata

import "time"

// PurchaseItem is one line of a purchase. ProductName and Unit are snapshots,
// like on SaleItem.
type PurchaseItem struct {
	ID          string   `json:"id"`
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName"`
	Quantity    Quantity `json:"quantity"`
	UnitPrice   Money    `json:"unitPrice"`
	TotalPrice  Money    `json:"totalPrice"`
	Unit        string   `json:"unit"`
}

// Purchase mirrors Sale against a free-text supplier name. Creating a
// purchase computes totals only: it applies no stock or balance side effects.
type Purchase struct {
	ID              string         `json:"id"`
	SupplierName    string         `json:"supplierName"`
	Items           []PurchaseItem `json:"items"`
	TotalAmount     Money          `json:"totalAmount"`
	PaidAmount      Money          `json:"paidAmount"`
	RemainingAmount Money          `json:"remainingAmount"`
	PaymentMethod   PaymentMethod  `json:"paymentMethod"`
	PurchaseDate    Date           `json:"purchaseDate"`
	DueDate         Date           `json:"dueDate,omitzero"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (p Purchase) Key() string { return p.ID }
