package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeMixedCart(t *testing.T) {
	items := []Item{
		{ProductID: 1, Name: "Dress", Price: 10, Quantity: 2},
		{ProductID: 2, Name: "Gown", Price: 20, SalePrice: floatPtr(15), Quantity: 1},
	}

	s := DefaultPricing().Summarize(items)

	assert.Equal(t, 35.0, s.Subtotal)
	assert.Equal(t, 5.99, s.ShippingCost)
	assert.Equal(t, 40.99, s.Total)
	assert.Equal(t, 15.0, s.AmountToFreeShipping)
}

func TestSummarizeEmptyCart(t *testing.T) {
	s := DefaultPricing().Summarize(nil)

	assert.Equal(t, 0.0, s.Subtotal)
	assert.Equal(t, 5.99, s.ShippingCost)
	assert.Equal(t, 5.99, s.Total)
	assert.Equal(t, 50.0, s.AmountToFreeShipping)
}

func TestFreeShippingThresholdIsStrict(t *testing.T) {
	// Exactly at the threshold still pays shipping.
	atThreshold := []Item{{ProductID: 1, Name: "Dress", Price: 50.00, Quantity: 1}}
	s := DefaultPricing().Summarize(atThreshold)
	assert.Equal(t, 5.99, s.ShippingCost)
	assert.Equal(t, 0.0, s.AmountToFreeShipping)

	// One cent over qualifies.
	overThreshold := []Item{{ProductID: 1, Name: "Dress", Price: 50.01, Quantity: 1}}
	s = DefaultPricing().Summarize(overThreshold)
	assert.Equal(t, 0.0, s.ShippingCost)
	assert.Equal(t, 50.01, s.Total)
	assert.Equal(t, 0.0, s.AmountToFreeShipping)
}

func TestSummarizeUsesSalePrice(t *testing.T) {
	items := []Item{
		{ProductID: 3, Name: "Party Dress", Price: 34.99, SalePrice: floatPtr(29.99), Quantity: 2},
	}

	s := DefaultPricing().Summarize(items)

	assert.Equal(t, 59.98, s.Subtotal)
	assert.Equal(t, 0.0, s.ShippingCost)
	assert.Equal(t, 59.98, s.Total)
}

func TestSummarizeAvoidsFloatDrift(t *testing.T) {
	// 3 * 14.99 in raw float64 arithmetic is 44.969999...; the decimal
	// path must report exactly 44.97.
	items := []Item{{ProductID: 6, Name: "Bow Set", Price: 14.99, Quantity: 3}}

	s := DefaultPricing().Summarize(items)

	assert.Equal(t, 44.97, s.Subtotal)
	assert.Equal(t, 50.96, s.Total)
	assert.Equal(t, 5.03, s.AmountToFreeShipping)
}
