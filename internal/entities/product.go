package entities

import "time"

// Product is referenced by order lines; its stock figure is mutated only by
// the stock ledger commit path and by explicit restocks.
type Product struct {
	ID          string
	Name        string
	Description string

	Price         Money
	StockQuantity int
	Active        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewProduct(id, name, description string, price Money, stockQuantity int) (Product, error) {
	if stockQuantity < 0 {
		return Product{}, ErrInvalidQuantity
	}
	now := time.Now().UTC()
	return Product{
		ID:            id,
		Name:          name,
		Description:   description,
		Price:         price,
		StockQuantity: stockQuantity,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (p *Product) InStock(quantity int) bool {
	return p.StockQuantity >= quantity
}
