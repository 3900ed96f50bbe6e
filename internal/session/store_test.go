package session

import (
	"sync"
	"testing"
	"time"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/chat"
	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/notify"
	"github.com/fjod/go_storefront/internal/payment"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func testFactory() Factory {
	log := zerolog.Nop()
	sink := notify.NewMemorySink()
	charger := payment.NewProcessor(0)

	return func(userID string) *Session {
		c := NewCart()
		return &Session{
			ID:   userID,
			Chat: chat.NewService(log, time.Millisecond),
			Cart: c,
			Flow: checkout.NewFlow(log, charger, sink, c),
		}
	}
}

func TestGet_CreatesOnFirstUse(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewStore(testFactory())
	defer store.Close()

	sess := store.Get("user-1")
	require.NotNil(t, sess)
	assert.Equal(t, "user-1", sess.ID)
	assert.Equal(t, domain.StateBrowsing, sess.Flow.State())

	assert.Same(t, sess, store.Get("user-1"), "same session on repeat access")
	assert.NotSame(t, sess, store.Get("user-2"), "sessions are per user")
}

func TestGet_ConcurrentAccessYieldsOneSession(t *testing.T) {
	store := NewStore(testFactory())
	defer store.Close()

	var wg sync.WaitGroup
	sessions := make([]*Session, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i] = store.Get("user-1")
		}(i)
	}
	wg.Wait()

	for _, sess := range sessions {
		assert.Same(t, sessions[0], sess)
	}
}

func TestSnapshot_ReflectsCartContents(t *testing.T) {
	store := NewStore(testFactory())
	defer store.Close()

	sess := store.Get("user-1")
	sess.Do(func(s *Session) {
		cart.AddItem(s.Cart, domain.Product{
			ID:       1,
			Name:     "Great Value Organic Bananas",
			Category: domain.CategoryGroceries,
			Price:    decimal.RequireFromString("2.48"),
		})
	})

	view, err := store.Snapshot("user-1")

	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 1, view.ItemCount)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("2.48")))
}

func TestSnapshot_EmptySessionCreated(t *testing.T) {
	store := NewStore(testFactory())
	defer store.Close()

	view, err := store.Snapshot("fresh-user")

	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.True(t, view.Total.IsZero())
}

func TestClose_StopsChatWorkers(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewStore(testFactory())
	store.Get("a")
	store.Get("b")

	store.Close()
}
