package session

import (
	"sync"
	"time"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/chat"
	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/domain"
)

// Session is one shopper's full state: the chat log, the cart and the
// commerce flow that owns it. All access goes through Do, which holds the
// session lock; the contained types are not safe on their own.
type Session struct {
	ID string

	mu   sync.Mutex
	Chat *chat.Service
	Cart *domain.Cart
	Flow *checkout.Flow
}

// Do runs fn with the session locked
func (s *Session) Do(fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

// Factory builds the per-user state for a fresh session
type Factory func(userID string) *Session

// Store hands out sessions by user id, creating them on first use. It also
// produces cart snapshots for the cache layer.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	factory  Factory
}

func NewStore(factory Factory) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		factory:  factory,
	}
}

// Get returns the user's session, creating it on demand
func (s *Store) Get(userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess
	}

	sess := s.factory(userID)
	s.sessions[userID] = sess
	return sess
}

// Snapshot derives the cart view for a user under the session lock
func (s *Store) Snapshot(userID string) (*domain.CartView, error) {
	sess := s.Get(userID)

	var view *domain.CartView
	sess.Do(func(sess *Session) {
		view = cart.BuildView(sess.Cart)
	})
	return view, nil
}

// Close shuts down every session's chat worker and waits for them
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		sess.Chat.Close()
	}
}

// NewCart returns an empty cart stamped with the current time
func NewCart() *domain.Cart {
	now := time.Now()
	return &domain.Cart{CreatedAt: now, UpdatedAt: now}
}
