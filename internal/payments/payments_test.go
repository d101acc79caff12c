package payments_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront/internal/payments"
)

func TestResolveKnownSelectors(t *testing.T) {
	amount := decimal.NewFromFloat(25.00)

	tests := []struct {
		selector     string
		label        string
		confirmation string
	}{
		{"card", "Credit Card", "Paid €25.00 with Credit Card."},
		{"paypal", "PayPal", "Paid €25.00 with PayPal."},
		{"bitcoin", "Bitcoin", "Paid €25.00 with Bitcoin."},
		{"banktransfer", "Bank Transfer", "Paid €25.00 by Bank Transfer."},
	}

	for _, tt := range tests {
		method, ok := payments.Resolve(tt.selector)
		assert.True(t, ok, "selector %s should resolve", tt.selector)
		assert.Equal(t, tt.label, method.Label)
		assert.Equal(t, tt.confirmation, method.Pay(amount))
	}
}

func TestResolveUnknownSelector(t *testing.T) {
	_, ok := payments.Resolve("cheque")
	assert.False(t, ok)

	_, ok = payments.Resolve("")
	assert.False(t, ok)
}

func TestSelectorsSorted(t *testing.T) {
	selectors := payments.Selectors()
	assert.Equal(t, []string{"banktransfer", "bitcoin", "card", "paypal"}, selectors)
}
