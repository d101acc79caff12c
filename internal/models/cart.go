package models

import (
	"sync"

	"github.com/shopspring/decimal"
)

// CartLine is one (product, quantity) pairing within a cart.
// Quantity is always >= 1; a line whose quantity would drop to zero is
// removed from the cart instead.
type CartLine struct {
	Product  Product
	Quantity int
}

// CartItemView is the read-only projection of a cart line handed to
// handlers and the checkout engine.
type CartItemView struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Category  ProductCategory `json:"category"`
	Quantity  int             `json:"quantity"`
}

// Cart is a mutable collection of cart lines keyed by product id.
// A cart belongs to exactly one user; the mutex serializes mutations from
// concurrent requests of that same user.
type Cart struct {
	mu    sync.Mutex
	lines map[string]*CartLine
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{lines: make(map[string]*CartLine)}
}

// Add puts quantity units of the product into the cart, merging with an
// existing line for the same product id. Quantities below 1 are treated as 1.
func (c *Cart) Add(product Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[product.ID]; ok {
		line.Quantity += quantity
		return
	}
	c.lines[product.ID] = &CartLine{Product: product, Quantity: quantity}
}

// Remove deletes the line for the given product id. Removing an absent
// line is a no-op.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.lines, productID)
}

// Increase bumps the quantity of an existing line by one. No-op if the
// product is not in the cart.
func (c *Cart) Increase(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if line, ok := c.lines[productID]; ok {
		line.Quantity++
	}
}

// Decrease lowers the quantity of an existing line by one, deleting the
// line when it reaches zero. No-op if the product is not in the cart.
func (c *Cart) Decrease(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	line, ok := c.lines[productID]
	if !ok {
		return
	}
	line.Quantity--
	if line.Quantity <= 0 {
		delete(c.lines, productID)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[string]*CartLine)
}

// Total returns the sum of price*quantity over all lines; zero for an
// empty cart.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalLocked()
}

func (c *Cart) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Items returns a materialized view of the cart lines. Ordering is not
// guaranteed; consumers must not rely on it.
func (c *Cart) Items() []CartItemView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemsLocked()
}

func (c *Cart) itemsLocked() []CartItemView {
	items := make([]CartItemView, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, CartItemView{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			Image:     line.Product.Image,
			Category:  line.Product.Category,
			Quantity:  line.Quantity,
		})
	}
	return items
}

// Snapshot returns the cart's items and total under a single lock
// acquisition, so the checkout engine prices exactly the lines it copies.
func (c *Cart) Snapshot() ([]CartItemView, decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemsLocked(), c.totalLocked()
}

// Len returns the number of distinct lines in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}
