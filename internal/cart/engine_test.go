package cart

import (
	"testing"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, name, category, price string) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString(price),
	}
}

func TestAddItem_NewLine(t *testing.T) {
	c := &domain.Cart{}

	AddItem(c, product(1, "Wonder Bread", domain.CategoryGroceries, "1.28"))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, int64(1), c.Lines[0].ProductID)
	assert.Equal(t, 1, c.Lines[0].Quantity)
	assert.Equal(t, "Wonder Bread", c.Lines[0].Name)
}

func TestAddItem_SameProductIncrementsQuantity(t *testing.T) {
	c := &domain.Cart{}
	dyson := product(7, "Dyson V15 Detect Vacuum", "Home", "749.99")

	AddItem(c, dyson)
	AddItem(c, dyson)

	require.Len(t, c.Lines, 1, "repeated product must not duplicate the line")
	assert.Equal(t, 2, c.Lines[0].Quantity)

	lineTotal := c.Lines[0].Price.Mul(decimal.NewFromInt(int64(c.Lines[0].Quantity)))
	assert.True(t, lineTotal.Equal(decimal.RequireFromString("1499.98")),
		"line total was %s", lineTotal)
}

func TestAddItem_SnapshotsPrice(t *testing.T) {
	c := &domain.Cart{}
	p := product(1, "Wonder Bread", domain.CategoryGroceries, "1.28")
	AddItem(c, p)

	// catalog price changes do not retroactively alter the cart
	p.Price = decimal.RequireFromString("2.00")
	assert.True(t, c.Lines[0].Price.Equal(decimal.RequireFromString("1.28")))
}

func TestSetQuantity_Replaces(t *testing.T) {
	c := &domain.Cart{}
	AddItem(c, product(1, "Milk", domain.CategoryGroceries, "3.18"))
	AddItem(c, product(2, "Bread", domain.CategoryGroceries, "1.28"))

	ok := SetQuantity(c, 1, 5)

	require.True(t, ok)
	assert.Equal(t, 5, c.Lines[0].Quantity)
	assert.Equal(t, int64(1), c.Lines[0].ProductID, "position preserved")
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	c := &domain.Cart{}
	AddItem(c, product(1, "Milk", domain.CategoryGroceries, "3.18"))
	AddItem(c, product(2, "Bread", domain.CategoryGroceries, "1.28"))

	ok := SetQuantity(c, 1, 0)

	require.True(t, ok)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, int64(2), c.Lines[0].ProductID)
}

func TestSetQuantity_NegativeClampsToZero(t *testing.T) {
	c := &domain.Cart{}
	AddItem(c, product(1, "Milk", domain.CategoryGroceries, "3.18"))

	ok := SetQuantity(c, 1, -3)

	require.True(t, ok)
	assert.Empty(t, c.Lines)
}

func TestSetQuantity_UnknownProduct(t *testing.T) {
	c := &domain.Cart{}
	AddItem(c, product(1, "Milk", domain.CategoryGroceries, "3.18"))

	ok := SetQuantity(c, 99, 0)

	assert.False(t, ok)
	assert.Len(t, c.Lines, 1, "cart unchanged for unknown id")
}

func TestTotal_EmptyCart(t *testing.T) {
	c := &domain.Cart{}
	assert.True(t, Total(c).IsZero())
}

func TestTotal_SumsPriceTimesQuantity(t *testing.T) {
	c := &domain.Cart{}
	AddItem(c, product(1, "Bananas", domain.CategoryGroceries, "2.48"))
	SetQuantity(c, 1, 2)
	AddItem(c, product(2, `Samsung 55" 4K Smart TV`, domain.CategoryElectronics, "398.00"))

	assert.True(t, Total(c).Equal(decimal.RequireFromString("402.96")),
		"total was %s", Total(c))
	assert.Equal(t, 3, ItemCount(c))
}

func TestSuggestions_FreeShippingOnly(t *testing.T) {
	c := &domain.Cart{}
	AddItem(c, product(1, "Throw Pillow", "Home", "40.00"))

	got := Suggestions(c)

	require.Len(t, got, 1)
	assert.Equal(t, suggestionFreeShipping, got[0])
}

func TestSuggestions_AboveCeilingNoShippingNudge(t *testing.T) {
	c := &domain.Cart{}
	AddItem(c, product(1, "Vacuum", "Home", "60.00"))

	assert.Empty(t, Suggestions(c))
}

func TestSuggestions_Boundaries(t *testing.T) {
	c := &domain.Cart{}
	AddItem(c, product(1, "Lamp", "Home", "35.00"))
	assert.Empty(t, Suggestions(c), "35 is not strictly greater than 35")

	SetQuantity(c, 1, 0)
	AddItem(c, product(2, "Rug", "Home", "50.00"))
	assert.Empty(t, Suggestions(c), "50 is not strictly less than 50")
}

func TestSuggestions_MultipleRulesFire(t *testing.T) {
	c := &domain.Cart{}
	AddItem(c, product(1, "Milk", domain.CategoryGroceries, "3.18"))
	AddItem(c, product(2, "Galaxy Buds", domain.CategoryElectronics, "42.00"))

	got := Suggestions(c)

	require.Len(t, got, 3)
	assert.Equal(t, suggestionFreeShipping, got[0])
	assert.Equal(t, suggestionGroceries, got[1])
	assert.Equal(t, suggestionProtectionPlan, got[2])
}

func TestBuildView(t *testing.T) {
	c := &domain.Cart{}
	AddItem(c, product(1, "Milk", domain.CategoryGroceries, "3.18"))
	SetQuantity(c, 1, 3)

	view := BuildView(c)

	assert.Len(t, view.Lines, 1)
	assert.Equal(t, 3, view.ItemCount)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("9.54")))
	assert.Equal(t, []string{suggestionGroceries}, view.Suggestions)

	// the view is a copy, mutating it must not touch the cart
	view.Lines[0].Quantity = 99
	assert.Equal(t, 3, c.Lines[0].Quantity)
}
