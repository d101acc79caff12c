package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/models"
)

func TestProduct_FulfillmentByCategory(t *testing.T) {
	physical := models.Product{Name: "Keyboard", Category: models.CategoryPhysical}
	digital := models.Product{Name: "E-book", Category: models.CategoryDigital}
	subscription := models.Product{Name: "Streaming", Category: models.CategorySubscription}

	assert.Equal(t, "Shipping 'Keyboard'.", physical.Fulfillment())
	assert.Equal(t, "Download link for 'E-book'.", digital.Fulfillment())
	assert.Equal(t, "Subscription for 'Streaming' activated.", subscription.Fulfillment())
}

func TestParseProductCategory(t *testing.T) {
	for _, valid := range []string{"physical", "digital", "subscription"} {
		category, err := models.ParseProductCategory(valid)
		assert.NoError(t, err)
		assert.Equal(t, models.ProductCategory(valid), category)
	}

	_, err := models.ParseProductCategory("vaporware")
	assert.Error(t, err)
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []models.OrderStatus{
		models.StatusConfirmed, models.StatusProcessing, models.StatusShipped,
		models.StatusDelivered, models.StatusCancelled,
	} {
		assert.True(t, models.ValidOrderStatus(s))
	}

	assert.False(t, models.ValidOrderStatus("OnHold"))
	assert.False(t, models.ValidOrderStatus("confirmed"), "status values are case-sensitive")
	assert.False(t, models.ValidOrderStatus(""))
}
