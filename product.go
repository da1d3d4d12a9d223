package khata

import "time"

// Product is an item of stock, typically a fabric. StockQuantity is signed
// and carries no floor: selling more than is on hand drives it negative
// rather than failing the sale.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	Color         string    `json:"color,omitempty"`
	Material      string    `json:"material,omitempty"`
	Price         Money     `json:"price"`
	CostPrice     Money     `json:"costPrice"`
	StockQuantity Quantity  `json:"stockQuantity"`
	Unit          string    `json:"unit"` // meters, yards, ...
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p Product) Key() string { return p.ID }
