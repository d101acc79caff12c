package payments

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Method is a payment method stub: a display label plus a confirmation
// function. No real settlement happens; Pay always succeeds and returns a
// human-readable confirmation string.
type Method struct {
	Label   string
	confirm func(amount decimal.Decimal) string
}

// Pay charges the given amount and returns the confirmation string.
func (m Method) Pay(amount decimal.Decimal) string {
	return m.confirm(amount)
}

func confirmWith(format string) func(decimal.Decimal) string {
	return func(amount decimal.Decimal) string {
		return fmt.Sprintf(format, amount.StringFixed(2))
	}
}

// registry maps payment selectors to methods. It is built once and only
// ever read, so concurrent lookups are safe.
var registry = map[string]Method{
	"card":         {Label: "Credit Card", confirm: confirmWith("Paid €%s with Credit Card.")},
	"paypal":       {Label: "PayPal", confirm: confirmWith("Paid €%s with PayPal.")},
	"bitcoin":      {Label: "Bitcoin", confirm: confirmWith("Paid €%s with Bitcoin.")},
	"banktransfer": {Label: "Bank Transfer", confirm: confirmWith("Paid €%s by Bank Transfer.")},
}

// Resolve returns the payment method for the given selector.
func Resolve(selector string) (Method, bool) {
	m, ok := registry[selector]
	return m, ok
}

// Selectors returns the known payment selectors, sorted.
func Selectors() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
