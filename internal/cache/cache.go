package cache

import (
	"context"
	"errors"

	"github.com/fjod/go_storefront/internal/domain"
)

// ViewCache caches derived cart views per user. The session store stays the
// source of truth; a cache miss is never an error for callers.
type ViewCache interface {
	Get(ctx context.Context, userID string) (*domain.CartView, error)
	Set(ctx context.Context, userID string, view *domain.CartView) error
	Delete(ctx context.Context, userID string) error
}

var ErrCacheMiss = errors.New("cache miss")

// Nop disables caching; every Get is a miss
type Nop struct{}

func (Nop) Get(context.Context, string) (*domain.CartView, error) {
	return nil, ErrCacheMiss
}

func (Nop) Set(context.Context, string, *domain.CartView) error { return nil }

func (Nop) Delete(context.Context, string) error { return nil }
