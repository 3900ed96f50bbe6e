package domain

import "github.com/shopspring/decimal"

// Product categories used by the catalog and the cart suggestion rules
const (
	CategoryGroceries   = "Groceries"
	CategoryElectronics = "Electronics"
)

type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Rating   float64         `json:"rating"`
}
