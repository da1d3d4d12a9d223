package khata

// CustomerDraft is a proposed customer record.
type CustomerDraft struct {
	Name        string
	Phone       string
	Address     string
	City        string
	CreditLimit Money
}

// AddCustomer creates a customer with a zero opening balance.
func (b *Books) AddCustomer(d CustomerDraft) (Customer, error) {
	if d.Name == "" {
		return Customer{}, ValidationError{Field: "name", Reason: "a customer requires a name"}
	}
	now := b.now()
	c := Customer{
		ID:             newID(),
		Name:           d.Name,
		Phone:          d.Phone,
		Address:        d.Address,
		City:           d.City,
		CreditLimit:    d.CreditLimit,
		CurrentBalance: M(0, b.Currency()),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	b.Customers.Upsert(c)
	if err := b.persist(KeyCustomers); err != nil {
		return Customer{}, err
	}
	return c, nil
}

// UpdateCustomer replaces an existing customer record. The balance field is
// owned by the engine and carried over unchanged.
func (b *Books) UpdateCustomer(c Customer) error {
	old, ok := b.Customers.Get(c.ID)
	if !ok {
		return NotFoundError{Entity: "customer", ID: c.ID}
	}
	c.CurrentBalance = old.CurrentBalance
	c.CreatedAt = old.CreatedAt
	c.UpdatedAt = b.now()
	b.Customers.Upsert(c)
	return b.persist(KeyCustomers)
}

// RemoveCustomer deletes a customer by identity. Sales and ledger entries
// referencing the customer are left untouched: there is no cascade and no
// foreign-key enforcement.
func (b *Books) RemoveCustomer(id string) error {
	if !b.Customers.Delete(id) {
		return NotFoundError{Entity: "customer", ID: id}
	}
	return b.persist(KeyCustomers)
}

// ProductDraft is a proposed product record.
type ProductDraft struct {
	Name        string
	Category    string
	Color       string
	Material    string
	Price       Money
	CostPrice   Money
	Stock       Quantity
	Unit        string
	Description string
}

// AddProduct creates a product with its opening stock.
func (b *Books) AddProduct(d ProductDraft) (Product, error) {
	if d.Name == "" {
		return Product{}, ValidationError{Field: "name", Reason: "a product requires a name"}
	}
	if d.Price.IsNegative() {
		return Product{}, ValidationError{Field: "price", Reason: "price must not be negative"}
	}
	unit := d.Unit
	if unit == "" {
		unit = "meters"
	}
	now := b.now()
	p := Product{
		ID:            newID(),
		Name:          d.Name,
		Category:      d.Category,
		Color:         d.Color,
		Material:      d.Material,
		Price:         d.Price,
		CostPrice:     d.CostPrice,
		StockQuantity: d.Stock,
		Unit:          unit,
		Description:   d.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	b.Products.Upsert(p)
	if err := b.persist(KeyProducts); err != nil {
		return Product{}, err
	}
	return p, nil
}

// UpdateProduct replaces an existing product record. Historical sale lines
// keep the snapshotted name and unit they were created with.
func (b *Books) UpdateProduct(p Product) error {
	old, ok := b.Products.Get(p.ID)
	if !ok {
		return NotFoundError{Entity: "product", ID: p.ID}
	}
	p.CreatedAt = old.CreatedAt
	p.UpdatedAt = b.now()
	b.Products.Upsert(p)
	return b.persist(KeyProducts)
}

// AdjustStock moves a product's stock by delta (positive for incoming goods)
// and appends an adjustment entry to the ledger.
func (b *Books) AdjustStock(id string, delta Quantity, note string) (Product, error) {
	p, ok := b.Products.Get(id)
	if !ok {
		return Product{}, NotFoundError{Entity: "product", ID: id}
	}
	now := b.now()
	p.StockQuantity = p.StockQuantity.Add(delta)
	p.UpdatedAt = now
	b.Products.Upsert(p)

	desc := note
	if desc == "" {
		desc = "Stock adjustment for " + p.Name
	}
	b.Ledger.Upsert(LedgerEntry{
		ID:          newID(),
		Date:        DateOf(now),
		Type:        EntryAdjustment,
		Description: desc,
		Debit:       M(0, b.Currency()),
		Credit:      M(0, b.Currency()),
		Balance:     M(0, b.Currency()),
		Reference:   p.ID,
		CreatedAt:   now,
	})

	if err := b.persist(KeyProducts, KeyLedger); err != nil {
		return Product{}, err
	}
	return p, nil
}

// RemoveProduct deletes a product by identity. Sales referencing it keep
// their snapshotted lines; no cascade.
func (b *Books) RemoveProduct(id string) error {
	if !b.Products.Delete(id) {
		return NotFoundError{Entity: "product", ID: id}
	}
	return b.persist(KeyProducts)
}
