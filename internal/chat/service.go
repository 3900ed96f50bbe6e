package chat

import (
	"sync"
	"time"

	"github.com/fjod/go_storefront/internal/assistant"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/emotion"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type pendingReply struct {
	reply assistant.Reply
	due   time.Time
}

// Service holds one session's chat log and simulates the assistant typing.
// Replies are delivered by a single worker in submission order, so even when
// a customer sends messages faster than the typing delay, the log never
// interleaves replies out of order.
type Service struct {
	log        zerolog.Logger
	replyDelay time.Duration

	mu       sync.RWMutex
	messages []domain.ChatMessage

	pending chan pendingReply
	wg      sync.WaitGroup
	once    sync.Once
}

func NewService(log zerolog.Logger, replyDelay time.Duration) *Service {
	s := &Service{
		log:        log,
		replyDelay: replyDelay,
		pending:    make(chan pendingReply, 64),
	}

	s.append(domain.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    domain.SenderAssistant,
		Content:   assistant.Greeting,
		CreatedAt: time.Now(),
		Emotion:   domain.EmotionFriendly,
	})

	s.wg.Add(1)
	go s.replyLoop()

	return s
}

// Submit records the customer message immediately and schedules the
// assistant reply for delivery after the typing delay. The returned message
// is the customer's own entry with its classified emotion.
func (s *Service) Submit(text string) domain.ChatMessage {
	label := emotion.Classify(text)

	msg := domain.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    domain.SenderCustomer,
		Content:   text,
		CreatedAt: time.Now(),
		Emotion:   label,
	}
	s.append(msg)

	s.log.Debug().
		Str("emotion", string(label)).
		Msg("customer message received")

	s.pending <- pendingReply{
		reply: assistant.Respond(text, label),
		due:   time.Now().Add(s.replyDelay),
	}

	return msg
}

// Messages returns a copy of the chat log, oldest first
func (s *Service) Messages() []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Close stops the reply worker after all pending replies are delivered
func (s *Service) Close() {
	s.once.Do(func() {
		close(s.pending)
	})
	s.wg.Wait()
}

func (s *Service) replyLoop() {
	defer s.wg.Done()

	for p := range s.pending {
		if wait := time.Until(p.due); wait > 0 {
			time.Sleep(wait)
		}

		s.append(domain.ChatMessage{
			ID:        uuid.New().String(),
			Sender:    domain.SenderAssistant,
			Content:   p.reply.Content,
			CreatedAt: time.Now(),
			Emotion:   p.reply.Emotion,
			Products:  p.reply.Products,
		})
	}
}

func (s *Service) append(msg domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}
