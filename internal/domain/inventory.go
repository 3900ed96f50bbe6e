package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus tags an inventory record by its stock level
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLowStock   StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

// lowStockThreshold: below this level an item counts as running low
const lowStockThreshold = 4

// StatusForLevel derives the stock status tag from a stock level
func StatusForLevel(level int32) StockStatus {
	switch {
	case level == 0:
		return StockOutOfStock
	case level < lowStockThreshold:
		return StockLowStock
	default:
		return StockInStock
	}
}

// InventoryItem is a stocked product at one store location. Stock levels are
// owned by the inventory simulator, not by the commerce core.
type InventoryItem struct {
	ProductID   int64           `json:"product_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	StockLevel  int32           `json:"stock_level"`
	Location    string          `json:"location"`
	LastUpdated time.Time       `json:"last_updated"`
}

// Status derives the status tag from the current stock level
func (i InventoryItem) Status() StockStatus {
	return StatusForLevel(i.StockLevel)
}

// Product converts the inventory record to a catalog product for cart use
func (i InventoryItem) Product() Product {
	return Product{
		ID:       i.ProductID,
		Name:     i.Name,
		Category: i.Category,
		Price:    i.Price,
	}
}
