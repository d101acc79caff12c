package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/models"
	"storefront/internal/services"
)

func TestCartService_CartsAreScopedPerUser(t *testing.T) {
	carts := services.NewCartService()

	carts.Cart("alice").Add(testProduct("prod-a", "Product A", 10.00, models.CategoryPhysical), 2)

	// Bob's cart is independent of Alice's.
	assert.True(t, carts.Cart("bob").IsEmpty())
	assert.Equal(t, 1, carts.Cart("alice").Len())

	// Repeated lookups return the same cart instance.
	assert.Same(t, carts.Cart("alice"), carts.Cart("alice"))
}

func TestCartService_Drop(t *testing.T) {
	carts := services.NewCartService()
	carts.Cart("alice").Add(testProduct("prod-a", "Product A", 10.00, models.CategoryPhysical), 1)

	carts.Drop("alice")

	// A fresh, empty cart is handed out afterwards.
	assert.True(t, carts.Cart("alice").IsEmpty())
}
