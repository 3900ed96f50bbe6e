package notify

import (
	"context"
	"sync"
	"time"
)

type Severity string

const (
	SeverityNormal Severity = "normal"
	SeverityError  Severity = "error"
)

// Event names emitted by the storefront core
const (
	EventAddedToCart       = "added_to_cart"
	EventOutOfStock        = "out_of_stock"
	EventPaymentSuccessful = "payment_successful"
)

// Event is a discrete named outcome with a human-readable message. Delivery
// and display belong to the consuming collaborator.
type Event struct {
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// MemorySink buffers events for the presentation layer to drain
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Publish(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	s.events = append(s.events, event)
	return nil
}

// Drain returns all buffered events and empties the buffer
func (s *MemorySink) Drain() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.events
	s.events = nil
	return out
}

// Fanout publishes to every sink; the first error is returned after all
// sinks were attempted.
type Fanout []Sink

func (f Fanout) Publish(ctx context.Context, event Event) error {
	var firstErr error
	for _, sink := range f {
		if err := sink.Publish(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
