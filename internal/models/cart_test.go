package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront/internal/models"
)

func product(id, name string, price float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.NewFromFloat(price),
		Image:    name + ".jpg",
		Category: models.CategoryPhysical,
	}
}

func TestCart_AddMergesLines(t *testing.T) {
	cart := models.NewCart()
	laptop := product("prod-1", "Laptop", 1200.00)

	cart.Add(laptop, 1)
	cart.Add(laptop, 2)

	assert.Equal(t, 1, cart.Len())
	items := cart.Items()
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCart_AddClampsQuantityToOne(t *testing.T) {
	cart := models.NewCart()
	cart.Add(product("prod-1", "Laptop", 1200.00), 0)
	cart.Add(product("prod-2", "Mouse", 25.00), -5)

	for _, item := range cart.Items() {
		assert.Equal(t, 1, item.Quantity)
	}
}

func TestCart_TotalWorkedExample(t *testing.T) {
	cart := models.NewCart()
	cart.Add(product("prod-a", "Product A", 10.00), 2)
	cart.Add(product("prod-b", "Product B", 5.00), 1)

	assert.True(t, cart.Total().Equal(decimal.NewFromFloat(25.00)),
		"expected total 25.00, got %s", cart.Total())
}

func TestCart_TotalEmptyIsZero(t *testing.T) {
	cart := models.NewCart()
	assert.True(t, cart.Total().IsZero())
	assert.True(t, cart.IsEmpty())
}

func TestCart_DecreaseToZeroRemovesLine(t *testing.T) {
	cart := models.NewCart()
	cart.Add(product("prod-1", "Laptop", 1200.00), 1)

	cart.Decrease("prod-1")

	assert.Equal(t, 0, cart.Len())
	assert.True(t, cart.Total().IsZero())
}

func TestCart_DecreaseMissingProductIsNoOp(t *testing.T) {
	cart := models.NewCart()
	cart.Add(product("prod-1", "Laptop", 1200.00), 2)

	cart.Decrease("prod-99")

	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, cart.Items()[0].Quantity)
}

func TestCart_RemoveMissingProductIsNoOp(t *testing.T) {
	cart := models.NewCart()
	cart.Add(product("prod-1", "Laptop", 1200.00), 1)

	cart.Remove("prod-99")

	assert.Equal(t, 1, cart.Len())
}

func TestCart_IncreaseMissingProductIsNoOp(t *testing.T) {
	cart := models.NewCart()
	cart.Increase("prod-1")
	assert.True(t, cart.IsEmpty())
}

func TestCart_Clear(t *testing.T) {
	cart := models.NewCart()
	cart.Add(product("prod-1", "Laptop", 1200.00), 1)
	cart.Add(product("prod-2", "Mouse", 25.00), 3)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total().IsZero())
}

// TestCart_InvariantsUnderMutationSequence walks a mixed sequence of
// mutations and checks after every step that the total matches the sum of
// the remaining lines and no line has a non-positive quantity.
func TestCart_InvariantsUnderMutationSequence(t *testing.T) {
	cart := models.NewCart()
	a := product("prod-a", "Product A", 10.00)
	b := product("prod-b", "Product B", 5.00)

	steps := []func(){
		func() { cart.Add(a, 1) },
		func() { cart.Increase("prod-a") },
		func() { cart.Add(b, 3) },
		func() { cart.Decrease("prod-b") },
		func() { cart.Decrease("prod-b") },
		func() { cart.Decrease("prod-b") }, // removes the line
		func() { cart.Remove("prod-a") },
		func() { cart.Add(b, 2) },
		func() { cart.Decrease("prod-missing") },
	}

	for i, step := range steps {
		step()

		expected := decimal.Zero
		for _, item := range cart.Items() {
			assert.Greater(t, item.Quantity, 0, "step %d: line %s has non-positive quantity", i, item.ProductID)
			expected = expected.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		assert.True(t, cart.Total().Equal(expected), "step %d: total %s != sum of lines %s", i, cart.Total(), expected)
	}
}

func TestCart_SnapshotMatchesItemsAndTotal(t *testing.T) {
	cart := models.NewCart()
	cart.Add(product("prod-a", "Product A", 10.00), 2)
	cart.Add(product("prod-b", "Product B", 5.00), 1)

	items, total := cart.Snapshot()
	assert.Len(t, items, 2)
	assert.True(t, total.Equal(decimal.NewFromFloat(25.00)))
}
