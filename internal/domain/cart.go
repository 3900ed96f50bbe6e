package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one product entry in a cart. Name and price are snapshotted
// when the line is created so later catalog price changes do not alter the
// cart.
type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	AddedAt   time.Time       `json:"added_at"`
}

// Cart holds lines in insertion order. A cart never holds two lines for the
// same product id. Totals and counts are derived, never stored.
type Cart struct {
	Lines     []CartLine `json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartView is the derived read model served to the presentation layer.
type CartView struct {
	Lines       []CartLine      `json:"lines"`
	Total       decimal.Decimal `json:"total"`
	ItemCount   int             `json:"item_count"`
	Suggestions []string        `json:"suggestions"`
}
