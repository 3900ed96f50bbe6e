package cart

import (
	"context"
	"errors"
	"time"

	"github.com/fjod/go_storefront/internal/cache"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Snapshotter produces the current cart view for a user. The session store
// implements this; snapshots are taken under the session lock.
type Snapshotter interface {
	Snapshot(userID string) (*domain.CartView, error)
}

// Service serves cart views through the cache. Reads go through singleflight
// so concurrent misses for the same user build the view once.
type Service struct {
	source Snapshotter
	cache  cache.ViewCache
	log    zerolog.Logger
	sfg    singleflight.Group
}

func NewService(source Snapshotter, viewCache cache.ViewCache, log zerolog.Logger) *Service {
	return &Service{
		source: source,
		cache:  viewCache,
		log:    log,
	}
}

func (s *Service) View(ctx context.Context, userID string) (*domain.CartView, error) {
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {
		view, err := s.cache.Get(ctx, userID)
		if err == nil {
			return view, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("cache get error")
		}

		view, errSnap := s.source.Snapshot(userID)
		if errSnap != nil {
			return nil, errSnap
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), userID, view); errSet != nil {
				s.log.Warn().Err(errSet).Str("user_id", userID).Msg("cache set error")
			}
		}()

		return view, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.CartView), nil
}

// Invalidate drops the cached view after any cart mutation
func (s *Service) Invalidate(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("cache invalidate error")
	}
}
