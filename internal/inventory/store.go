package inventory

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/shopspring/decimal"
)

var ErrItemNotFound = errors.New("inventory item not found")

const storeLocation = "Dallas, TX - Store #5021"

// Store keeps the live stock levels of a single store in memory. All reads
// return copies; the only mutation paths are Perturb and the simulator that
// drives it.
type Store struct {
	mu    sync.RWMutex
	ids   []int64 // display order
	items map[int64]domain.InventoryItem
}

func NewStore() *Store {
	s := &Store{items: make(map[int64]domain.InventoryItem)}
	for _, item := range seedItems() {
		s.ids = append(s.ids, item.ProductID)
		s.items[item.ProductID] = item
	}
	return s
}

// List returns all items in display order
func (s *Store) List() []domain.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.InventoryItem, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.items[id])
	}
	return out
}

// Get returns a single item by product id
func (s *Store) Get(productID int64) (domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[productID]
	if !ok {
		return domain.InventoryItem{}, ErrItemNotFound
	}
	return item, nil
}

// Perturb nudges every stock level by -1, 0 or +1 and refreshes the update
// timestamps. Levels never drop below zero.
func (s *Store) Perturb() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, item := range s.items {
		level := item.StockLevel + int32(rand.Intn(3)) - 1
		if level < 0 {
			level = 0
		}
		item.StockLevel = level
		item.LastUpdated = now
		s.items[id] = item
	}
}

func seedItems() []domain.InventoryItem {
	now := time.Now()
	price := decimal.RequireFromString

	return []domain.InventoryItem{
		{ProductID: 1, Name: `Samsung 55" 4K Smart TV`, Category: "Electronics", Price: price("398.00"), StockLevel: 12, Location: storeLocation, LastUpdated: now},
		{ProductID: 2, Name: "iPhone 15 Pro", Category: "Electronics", Price: price("999.00"), StockLevel: 3, Location: storeLocation, LastUpdated: now},
		{ProductID: 3, Name: "Nintendo Switch OLED", Category: "Gaming", Price: price("349.99"), StockLevel: 0, Location: storeLocation, LastUpdated: now},
		{ProductID: 4, Name: "MacBook Air M2", Category: "Electronics", Price: price("1199.00"), StockLevel: 8, Location: storeLocation, LastUpdated: now},
		{ProductID: 5, Name: "Sony WH-1000XM4 Headphones", Category: "Audio", Price: price("279.99"), StockLevel: 15, Location: storeLocation, LastUpdated: now},
		{ProductID: 6, Name: "Instant Pot Duo 7-in-1", Category: "Kitchen", Price: price("89.99"), StockLevel: 6, Location: storeLocation, LastUpdated: now},
		{ProductID: 7, Name: "Dyson V15 Detect Vacuum", Category: "Home", Price: price("749.99"), StockLevel: 2, Location: storeLocation, LastUpdated: now},
		{ProductID: 8, Name: "KitchenAid Stand Mixer", Category: "Kitchen", Price: price("379.99"), StockLevel: 4, Location: storeLocation, LastUpdated: now},
	}
}
