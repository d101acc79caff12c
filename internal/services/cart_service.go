package services

import (
	"sync"

	"storefront/internal/models"
)

// CartService hands out per-user carts. Carts are scoped to the
// authenticated user so concurrent shoppers never see each other's items.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

// NewCartService creates a new CartService.
func NewCartService() *CartService {
	return &CartService{
		carts: make(map[string]*models.Cart),
	}
}

// Cart returns the cart owned by the given user, creating an empty one on
// first use.
func (s *CartService) Cart(userID string) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		cart = models.NewCart()
		s.carts[userID] = cart
	}
	return cart
}

// Drop discards the cart of the given user, if any.
func (s *CartService) Drop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}
