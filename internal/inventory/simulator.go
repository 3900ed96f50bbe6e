package inventory

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Simulator drifts stock levels on a fixed interval so the inventory view
// looks alive without a real warehouse feed behind it.
type Simulator struct {
	log      zerolog.Logger
	store    *Store
	interval time.Duration
	stop     chan struct{}
	wg       sync.WaitGroup
}

func NewSimulator(log zerolog.Logger, store *Store, interval time.Duration) *Simulator {
	s := &Simulator{
		log:      log,
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
	}

	s.wg.Add(1)
	go s.run()

	return s
}

func (s *Simulator) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.store.Perturb()
			s.log.Debug().Msg("stock levels perturbed")
		case <-s.stop:
			return
		}
	}
}

// Close stops the simulation loop and waits for it to finish
func (s *Simulator) Close() error {
	close(s.stop)
	s.wg.Wait()
	return nil
}
