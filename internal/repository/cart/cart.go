package cart

import (
	"math"
	"sync"

	"github.com/grocito/grocito/internal/model"
)

// Store - in-memory cart storage keyed by user. The cart is working state
// for order placement, it is never the source of truth for anything, so it
// lives in memory and is injected wherever cart access is needed.
type Store struct {
	mu    sync.RWMutex
	carts map[int64][]model.CartItem
}

func New() *Store {
	return &Store{
		carts: make(map[int64][]model.CartItem),
	}
}

func (s *Store) Get(userID int64) model.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[userID]

	cart := model.Cart{Items: make([]model.CartItem, len(items))}
	copy(cart.Items, items)

	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	cart.Subtotal = math.Round(subtotal*100) / 100

	return cart
}

// SetItem - upserts an item by product id. Quantity <= 0 removes the item.
func (s *Store) SetItem(userID int64, item model.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]

	for i, existing := range items {
		if existing.ProductID == item.ProductID {
			if item.Quantity <= 0 {
				s.carts[userID] = append(items[:i], items[i+1:]...)
				return
			}
			items[i] = item
			return
		}
	}

	if item.Quantity > 0 {
		s.carts[userID] = append(items, item)
	}
}

func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
}
