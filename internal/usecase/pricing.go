package usecase

import (
	"storefront/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PricingRules holds the checkout rates. Amounts are computed on decimals and
// rounded to cents before they reach the float64 entity fields.
type PricingRules struct {
	TaxRate               float64
	FreeShippingThreshold float64
	ShippingCost          float64
}

func DefaultPricingRules() PricingRules {
	return PricingRules{
		TaxRate:               0.08,
		FreeShippingThreshold: 100,
		ShippingCost:          9.99,
	}
}

// Totals are the cart-derived amounts before any gift card discount.
type Totals struct {
	Subtotal float64
	Shipping float64
	Tax      float64
}

func (p PricingRules) Totals(lines []entities.CartLine) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(decimal.NewFromFloat(l.Product.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	subtotal = subtotal.Round(2)

	shipping := decimal.NewFromFloat(p.ShippingCost)
	if subtotal.GreaterThanOrEqual(decimal.NewFromFloat(p.FreeShippingThreshold)) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(decimal.NewFromFloat(p.TaxRate)).Round(2)

	return Totals{
		Subtotal: subtotal.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
	}
}

// Gross is subtotal + shipping + tax.
func (t Totals) Gross() decimal.Decimal {
	return decimal.NewFromFloat(t.Subtotal).
		Add(decimal.NewFromFloat(t.Shipping)).
		Add(decimal.NewFromFloat(t.Tax))
}

// Total never goes below zero.
func (t Totals) Total(discount float64) float64 {
	total := t.Gross().Sub(decimal.NewFromFloat(discount))
	if total.IsNegative() {
		return 0
	}
	return total.Round(2).InexactFloat64()
}

// DiscountFor caps a gift card amount at the gross amount due.
func (t Totals) DiscountFor(cardAmount float64) float64 {
	return decimal.Min(decimal.NewFromFloat(cardAmount), t.Gross()).Round(2).InexactFloat64()
}

// LineTotal is Σ price × quantity, used for the purchase record.
func LineTotal(lines []entities.CartLine) float64 {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(decimal.NewFromFloat(l.Product.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum.Round(2).InexactFloat64()
}
