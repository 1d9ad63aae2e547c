package cart

import "github.com/shopspring/decimal"

// PricingConfig holds the shipping constants. Shipping is free only when
// the subtotal strictly exceeds the threshold.
type PricingConfig struct {
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
}

// DefaultPricing matches the storefront's configuration: free shipping
// over 50.00, otherwise a 5.99 flat fee.
func DefaultPricing() PricingConfig {
	return PricingConfig{
		FreeShippingThreshold: decimal.RequireFromString("50"),
		ShippingFee:           decimal.RequireFromString("5.99"),
	}
}

// Summary is the derived view of a cart's totals. It is computed fresh on
// every read; nothing invalidates it when the cart changes.
type Summary struct {
	Subtotal             float64 `json:"subtotal"`
	ShippingCost         float64 `json:"shippingCost"`
	Total                float64 `json:"total"`
	AmountToFreeShipping float64 `json:"amountToFreeShipping"`
}

// Summarize derives subtotal, shipping and total from the item sequence.
// AmountToFreeShipping is clamped at zero and only meaningful while
// shipping is still charged.
func (c PricingConfig) Summarize(items []Item) Summary {
	subtotal := decimal.Zero
	for _, item := range items {
		unit := decimal.NewFromFloat(item.EffectivePrice())
		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	shipping := c.ShippingFee
	remaining := decimal.Zero
	if subtotal.GreaterThan(c.FreeShippingThreshold) {
		shipping = decimal.Zero
	} else {
		remaining = c.FreeShippingThreshold.Sub(subtotal)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
	}

	return Summary{
		Subtotal:             subtotal.InexactFloat64(),
		ShippingCost:         shipping.InexactFloat64(),
		Total:                subtotal.Add(shipping).InexactFloat64(),
		AmountToFreeShipping: remaining.InexactFloat64(),
	}
}
