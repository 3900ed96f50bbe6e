package assistant

import (
	"strings"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Reply is a canned assistant response. Products, when present, are static
// showcase data attached to the reply, not a computed recommendation.
type Reply struct {
	Content  string
	Emotion  domain.Emotion
	Products []domain.Product
}

// Greeting is the first message of every chat session
const Greeting = "Hello! I'm your AI Personal Shopper. I'm here to help you find exactly what you need, suggest great deals, and make your shopping experience delightful. What can I help you find today?"

const (
	replyFrustrated = "I understand you're feeling frustrated, and I'm here to help make this easier for you. Let me find exactly what you need quickly. Can you tell me what specific product you're looking for?"
	replyRecommend  = "I'd love to give you personalized recommendations! Based on popular choices and great value, here are some items I think you'll love:"
	replyElectronic = "Great choice! Electronics are one of our strongest categories. Here are some top-rated electronics with excellent value:"
	replyGroceries  = "Perfect! Let me help you with fresh groceries and pantry essentials. Here are some popular items:"
	replyFallback   = "I'm here to help! I can assist you with finding products, checking prices, getting recommendations, or answering questions about our services. What would you like to explore?"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var recommendedProducts = []domain.Product{
	{ID: 1, Name: `Samsung 55" 4K Smart TV`, Price: price("2.48"), Category: "Groceries", Rating: 4.5},
	{ID: 2, Name: "iPhone 15 Pro", Price: price("11.97"), Category: "Household", Rating: 4.7},
	{ID: 3, Name: `Samsung 55" 4K Smart TV`, Price: price("398.00"), Category: "Electronics", Rating: 4.6},
}

var electronicsProducts = []domain.Product{
	{ID: 4, Name: "iPhone 15", Price: price("699.00"), Category: "Electronics", Rating: 4.8},
	{ID: 5, Name: "Samsung Galaxy Buds", Price: price("89.99"), Category: "Electronics", Rating: 4.4},
	{ID: 6, Name: "Nintendo Switch", Price: price("299.00"), Category: "Electronics", Rating: 4.9},
}

var groceriesProducts = []domain.Product{
	{ID: 7, Name: "Great Value Whole Milk", Price: price("3.18"), Category: "Groceries", Rating: 4.3},
	{ID: 8, Name: "Wonder Bread", Price: price("1.28"), Category: "Groceries", Rating: 4.1},
	{ID: 9, Name: "Fresh Strawberries", Price: price("4.98"), Category: "Groceries", Rating: 4.6},
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// Respond picks the canned reply for a customer message. Branches are
// evaluated in fixed priority order and the first match wins. The function is
// pure and synchronous; any typing delay is applied by the caller after the
// reply has been computed.
func Respond(text string, label domain.Emotion) Reply {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "frustrated") || label == domain.EmotionFrustrated:
		return Reply{Content: replyFrustrated, Emotion: domain.EmotionEmpathetic}

	case containsAny(lower, "recommend", "suggest"):
		return Reply{Content: replyRecommend, Emotion: domain.EmotionHelpful, Products: recommendedProducts}

	case containsAny(lower, "electronics", "tv", "phone"):
		return Reply{Content: replyElectronic, Emotion: domain.EmotionExcited, Products: electronicsProducts}

	case containsAny(lower, "groceries", "food"):
		return Reply{Content: replyGroceries, Emotion: domain.EmotionHelpful, Products: groceriesProducts}

	default:
		return Reply{Content: replyFallback, Emotion: domain.EmotionFriendly}
	}
}
