package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductCategory determines how a product is fulfilled after checkout.
type ProductCategory string

const (
	CategoryPhysical     ProductCategory = "physical"
	CategoryDigital      ProductCategory = "digital"
	CategorySubscription ProductCategory = "subscription"
)

// ParseProductCategory maps a catalog type string to a ProductCategory.
func ParseProductCategory(s string) (ProductCategory, error) {
	switch ProductCategory(s) {
	case CategoryPhysical, CategoryDigital, CategorySubscription:
		return ProductCategory(s), nil
	default:
		return "", fmt.Errorf("unknown product category: %q", s)
	}
}

// Product represents a catalog entry. Products are loaded once at startup
// and never mutated afterwards, so they are safe to share across requests.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Category ProductCategory `json:"category"`
	Rating   int             `json:"rating"`
}

// Fulfillment returns the fulfillment message for the product, dispatched
// by category: physical goods ship, digital goods get a download link,
// subscriptions are activated.
func (p Product) Fulfillment() string {
	switch p.Category {
	case CategoryDigital:
		return fmt.Sprintf("Download link for '%s'.", p.Name)
	case CategorySubscription:
		return fmt.Sprintf("Subscription for '%s' activated.", p.Name)
	default:
		return fmt.Sprintf("Shipping '%s'.", p.Name)
	}
}
