package khata

import "time"

// Customer is a buyer the shop extends credit to. CurrentBalance is the
// amount the customer still owes: it grows by the remaining amount of each
// sale and shrinks by recorded payments.
type Customer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city,omitempty"`
	CreditLimit    Money     `json:"creditLimit"`
	CurrentBalance Money     `json:"currentBalance"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (c Customer) Key() string { return c.ID }
