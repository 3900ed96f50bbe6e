package domain

import "time"

// Sender identifies who wrote a chat message
type Sender string

const (
	SenderCustomer  Sender = "customer"
	SenderAssistant Sender = "assistant"
)

// Emotion is a sentiment tag derived from keyword matching, not real
// sentiment analysis. Customer messages carry one of the classifier labels;
// assistant replies carry a tone from the second group.
type Emotion string

const (
	EmotionFrustrated   Emotion = "frustrated"
	EmotionConfused     Emotion = "confused"
	EmotionExcited      Emotion = "excited"
	EmotionSatisfied    Emotion = "satisfied"
	EmotionDissatisfied Emotion = "dissatisfied"
	EmotionNeutral      Emotion = "neutral"

	EmotionFriendly   Emotion = "friendly"
	EmotionEmpathetic Emotion = "empathetic"
	EmotionHelpful    Emotion = "helpful"
)

// ChatMessage is immutable once created; the message log is append-only.
type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Emotion   Emotion   `json:"emotion,omitempty"`
	Products  []Product `json:"products,omitempty"`
}
