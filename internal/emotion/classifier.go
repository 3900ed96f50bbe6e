package emotion

import (
	"strings"

	"github.com/fjod/go_storefront/internal/domain"
)

// labelOrder is part of the contract: the first label whose keyword set
// matches wins, so frustrated is checked before confused, and so on.
var labelOrder = []domain.Emotion{
	domain.EmotionFrustrated,
	domain.EmotionConfused,
	domain.EmotionExcited,
	domain.EmotionSatisfied,
	domain.EmotionDissatisfied,
}

var keywords = map[domain.Emotion][]string{
	domain.EmotionFrustrated:   {"frustrated", "annoyed", "angry", "upset", "irritated", "mad"},
	domain.EmotionConfused:     {"confused", "lost", "unclear", "don't understand", "help me understand"},
	domain.EmotionExcited:      {"excited", "love", "amazing", "awesome", "great", "fantastic", "wonderful"},
	domain.EmotionSatisfied:    {"satisfied", "happy", "pleased", "good", "perfect", "exactly"},
	domain.EmotionDissatisfied: {"disappointed", "bad", "terrible", "awful", "hate", "worst"},
}

// Classify maps free text to an emotion label by case-insensitive substring
// matching. It always returns a label; text with no keyword is neutral.
func Classify(text string) domain.Emotion {
	lower := strings.ToLower(text)

	for _, label := range labelOrder {
		for _, keyword := range keywords[label] {
			if strings.Contains(lower, keyword) {
				return label
			}
		}
	}

	return domain.EmotionNeutral
}
