package http

import (
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Money is rendered with two decimal places at the edge; everything inside
// stays exact decimals.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type ProductDTO struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    string  `json:"price"`
	Rating   float64 `json:"rating,omitempty"`
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    money(p.Price),
		Rating:   p.Rating,
	}
}

func toProductDTOs(products []domain.Product) []ProductDTO {
	if len(products) == 0 {
		return nil
	}
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out
}

type MessageDTO struct {
	ID        string       `json:"id"`
	Sender    string       `json:"sender"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	Emotion   string       `json:"emotion,omitempty"`
	Products  []ProductDTO `json:"products,omitempty"`
}

func toMessageDTO(m domain.ChatMessage) MessageDTO {
	return MessageDTO{
		ID:        m.ID,
		Sender:    string(m.Sender),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		Emotion:   string(m.Emotion),
		Products:  toProductDTOs(m.Products),
	}
}

type CartLineDTO struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type CartViewDTO struct {
	Items       []CartLineDTO `json:"items"`
	Total       string        `json:"total"`
	ItemCount   int           `json:"item_count"`
	Suggestions []string      `json:"suggestions"`
}

func toCartViewDTO(v *domain.CartView) CartViewDTO {
	items := make([]CartLineDTO, 0, len(v.Lines))
	for _, line := range v.Lines {
		items = append(items, CartLineDTO{
			ProductID: line.ProductID,
			Name:      line.Name,
			Category:  line.Category,
			Price:     money(line.Price),
			Quantity:  line.Quantity,
			LineTotal: money(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))),
		})
	}

	suggestions := v.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return CartViewDTO{
		Items:       items,
		Total:       money(v.Total),
		ItemCount:   v.ItemCount,
		Suggestions: suggestions,
	}
}

type InventoryItemDTO struct {
	ProductID   int64     `json:"product_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       string    `json:"price"`
	StockLevel  int32     `json:"stock_level"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	LastUpdated time.Time `json:"last_updated"`
}

func toInventoryItemDTO(i domain.InventoryItem) InventoryItemDTO {
	return InventoryItemDTO{
		ProductID:   i.ProductID,
		Name:        i.Name,
		Category:    i.Category,
		Price:       money(i.Price),
		StockLevel:  i.StockLevel,
		Status:      string(i.Status()),
		Location:    i.Location,
		LastUpdated: i.LastUpdated,
	}
}

type ReceiptDTO struct {
	TransactionID string    `json:"transaction_id"`
	OrderNumber   string    `json:"order_number"`
	Amount        string    `json:"amount"`
	ProcessedAt   time.Time `json:"processed_at"`
}

func toReceiptDTO(r *domain.PaymentReceipt) *ReceiptDTO {
	if r == nil {
		return nil
	}
	return &ReceiptDTO{
		TransactionID: r.TransactionID,
		OrderNumber:   r.OrderNumber,
		Amount:        money(r.Amount),
		ProcessedAt:   r.ProcessedAt,
	}
}

type FlowDTO struct {
	State       string                  `json:"state"`
	OrderNumber string                  `json:"order_number,omitempty"`
	Details     *domain.CustomerDetails `json:"details,omitempty"`
	Receipt     *ReceiptDTO             `json:"receipt,omitempty"`
}
