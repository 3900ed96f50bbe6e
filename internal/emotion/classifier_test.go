package emotion

import (
	"testing"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Keywords(t *testing.T) {
	assert.Equal(t, domain.EmotionFrustrated, Classify("I am so frustrated"))
	assert.Equal(t, domain.EmotionExcited, Classify("this is amazing"))
	assert.Equal(t, domain.EmotionConfused, Classify("I don't understand this page"))
	assert.Equal(t, domain.EmotionSatisfied, Classify("that's exactly what I wanted"))
	assert.Equal(t, domain.EmotionDissatisfied, Classify("worst delivery ever"))
}

func TestClassify_Neutral(t *testing.T) {
	assert.Equal(t, domain.EmotionNeutral, Classify(""))
	assert.Equal(t, domain.EmotionNeutral, Classify("show me the weekly deals"))
	assert.Equal(t, domain.EmotionNeutral, Classify("recommend something"))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, domain.EmotionFrustrated, Classify("SO ANNOYED right now"))
	assert.Equal(t, domain.EmotionExcited, Classify("This Is AMAZING"))
}

func TestClassify_DeclarationOrderWins(t *testing.T) {
	// "angry" (frustrated) appears after "love" (excited) in the text, but
	// frustrated is checked first and must win.
	assert.Equal(t, domain.EmotionFrustrated, Classify("I love this store but today I am angry"))

	// confused beats satisfied for the same reason
	assert.Equal(t, domain.EmotionConfused, Classify("good product but I am confused"))
}

func TestClassify_SubstringMatch(t *testing.T) {
	// keyword match is substring, not whole word
	assert.Equal(t, domain.EmotionDissatisfied, Classify("this is badly packed"))
}

func TestClassify_Stable(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, domain.EmotionFrustrated, Classify("I am so frustrated"))
	}
}
