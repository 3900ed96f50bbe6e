package assistant

import (
	"testing"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/emotion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespond_FrustratedTextWins(t *testing.T) {
	reply := Respond("I'm frustrated, recommend something", domain.EmotionNeutral)

	assert.Equal(t, domain.EmotionEmpathetic, reply.Emotion)
	assert.Empty(t, reply.Products, "de-escalation reply carries no products")
}

func TestRespond_FrustratedEmotionWins(t *testing.T) {
	// emotion label alone triggers the branch, even without the keyword
	reply := Respond("this is taking forever, I'm so annoyed", domain.EmotionFrustrated)

	assert.Equal(t, domain.EmotionEmpathetic, reply.Emotion)
	assert.Empty(t, reply.Products)
}

func TestRespond_Recommend(t *testing.T) {
	label := emotion.Classify("recommend something")
	require.Equal(t, domain.EmotionNeutral, label, "recommend is not an emotion keyword")

	reply := Respond("recommend something", label)

	assert.Equal(t, domain.EmotionHelpful, reply.Emotion)
	require.Len(t, reply.Products, 3)
}

func TestRespond_Suggest(t *testing.T) {
	reply := Respond("can you suggest a gift?", domain.EmotionNeutral)

	assert.Equal(t, domain.EmotionHelpful, reply.Emotion)
	assert.Len(t, reply.Products, 3)
}

func TestRespond_Electronics(t *testing.T) {
	reply := Respond("show me a new TV", domain.EmotionNeutral)

	assert.Equal(t, domain.EmotionExcited, reply.Emotion)
	require.Len(t, reply.Products, 3)
	for _, p := range reply.Products {
		assert.Equal(t, domain.CategoryElectronics, p.Category)
	}
}

func TestRespond_Groceries(t *testing.T) {
	reply := Respond("I need food for the week", domain.EmotionNeutral)

	assert.Equal(t, domain.EmotionHelpful, reply.Emotion)
	require.Len(t, reply.Products, 3)
	assert.Equal(t, "Great Value Whole Milk", reply.Products[0].Name)
}

func TestRespond_Fallback(t *testing.T) {
	reply := Respond("hello there", domain.EmotionNeutral)

	assert.Equal(t, domain.EmotionFriendly, reply.Emotion)
	assert.Empty(t, reply.Products)
}

func TestRespond_PriorityOrder(t *testing.T) {
	// recommend outranks electronics when both keywords are present
	reply := Respond("recommend electronics", domain.EmotionNeutral)
	assert.Equal(t, domain.EmotionHelpful, reply.Emotion)
	assert.Equal(t, recommendedProducts, reply.Products)

	// electronics outranks groceries
	reply = Respond("tv or food?", domain.EmotionNeutral)
	assert.Equal(t, domain.EmotionExcited, reply.Emotion)
	assert.Equal(t, electronicsProducts, reply.Products)
}

func TestRespond_Deterministic(t *testing.T) {
	first := Respond("recommend something", domain.EmotionNeutral)
	second := Respond("recommend something", domain.EmotionNeutral)
	assert.Equal(t, first, second)
}
