package cart

import (
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Suggestion nudges, evaluated in fixed order. Each rule is independent and
// more than one may fire.
const (
	suggestionFreeShipping   = "Add $15 more for free shipping!"
	suggestionGroceries      = "Don't forget milk and bread - frequently bought together!"
	suggestionProtectionPlan = "Consider a protection plan for your electronics"
)

var (
	freeShippingFloor   = decimal.NewFromInt(35)
	freeShippingCeiling = decimal.NewFromInt(50)
)

// AddItem puts a product in the cart. Adding a product that already has a
// line increments its quantity; otherwise a new line is appended with the
// product's current name and price snapshotted. AddItem always succeeds.
func AddItem(c *domain.Cart, p domain.Product) {
	now := time.Now()
	c.UpdatedAt = now

	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}

	c.Lines = append(c.Lines, domain.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Quantity:  1,
		AddedAt:   now,
	})
}

// SetQuantity replaces a line's quantity in place, preserving its position.
// Quantity zero removes the line. Negative quantities are clamped to zero,
// which also removes the line. Returns false if no line exists for the id.
func SetQuantity(c *domain.Cart, productID int64, quantity int) bool {
	if quantity < 0 {
		quantity = 0
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}
		c.UpdatedAt = time.Now()
		if quantity == 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		} else {
			c.Lines[i].Quantity = quantity
		}
		return true
	}
	return false
}

// Clear empties the cart
func Clear(c *domain.Cart) {
	c.Lines = nil
	c.UpdatedAt = time.Now()
}

// Total sums price times quantity over all lines. Zero for an empty cart.
// Decimal arithmetic keeps cents exact; rounding to two places happens only
// at presentation time.
func Total(c *domain.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// ItemCount sums the quantities of all lines
func ItemCount(c *domain.Cart) int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Suggestions recomputes the upsell nudges from scratch on every call
func Suggestions(c *domain.Cart) []string {
	var out []string

	total := Total(c)
	if total.GreaterThan(freeShippingFloor) && total.LessThan(freeShippingCeiling) {
		out = append(out, suggestionFreeShipping)
	}

	if hasCategory(c, domain.CategoryGroceries) {
		out = append(out, suggestionGroceries)
	}

	if hasCategory(c, domain.CategoryElectronics) {
		out = append(out, suggestionProtectionPlan)
	}

	return out
}

func hasCategory(c *domain.Cart, category string) bool {
	for _, line := range c.Lines {
		if line.Category == category {
			return true
		}
	}
	return false
}

// BuildView derives the full presentation read model from cart contents
func BuildView(c *domain.Cart) *domain.CartView {
	lines := make([]domain.CartLine, len(c.Lines))
	copy(lines, c.Lines)

	return &domain.CartView{
		Lines:       lines,
		Total:       Total(c),
		ItemCount:   ItemCount(c),
		Suggestions: Suggestions(c),
	}
}
