// Package money implements cents-precision currency arithmetic for the
// billing core. All amounts are integer minor units (cents); floats only
// appear transiently inside rounding helpers, never across package
// boundaries.
package money

import "math"

// GSTRatePercent is the flat Goods and Services Tax rate applied to the
// top-level financial summary. Per-line tax rates exist on line items
// but the document summary always uses this blended rate.
const GSTRatePercent = 10.0

type DiscountType string

const (
	DiscountAmount     DiscountType = "amount"
	DiscountPercentage DiscountType = "percentage"
)

// Discount is a document-level discount, either a fixed amount of cents
// or a percentage of the subtotal.
type Discount struct {
	Type         DiscountType
	ValueCents   int64
	ValuePercent float64
}

// Round converts a fractional cents value to whole cents, rounding half
// away from zero. This is the single rounding rule used everywhere in
// the billing core.
func Round(v float64) int64 {
	return int64(math.Round(v))
}

// ApplyDiscount subtracts the discount from subtotalCents. A fixed
// amount is subtracted as-is; no clamp is applied, so a negative result
// is valid and left to the caller.
func ApplyDiscount(subtotalCents int64, d Discount) int64 {
	switch d.Type {
	case DiscountAmount:
		return subtotalCents - d.ValueCents
	case DiscountPercentage:
		return subtotalCents - Round(float64(subtotalCents)*d.ValuePercent/100)
	default:
		return subtotalCents
	}
}

func AddShipping(amountCents, shippingCents int64) int64 {
	return amountCents + shippingCents
}

// ComputeTax returns the tax on baseCents at ratePercent, in cents.
func ComputeTax(baseCents int64, ratePercent float64) int64 {
	return Round(float64(baseCents) * ratePercent / 100)
}

// TaxableBase applies the fixed pipeline prefix: subtotal, then
// discount, then shipping. Tax is charged on this base, so shipping is
// taxed and the discount is not. The ordering must not change.
func TaxableBase(subtotalCents int64, d *Discount, shippingCents int64) int64 {
	base := subtotalCents
	if d != nil {
		base = ApplyDiscount(base, *d)
	}
	return AddShipping(base, shippingCents)
}

// Total runs the full pipeline: subtotal -> discount -> shipping ->
// tax on the discounted+shipped base -> base + tax.
func Total(subtotalCents int64, d *Discount, shippingCents int64, ratePercent float64) int64 {
	base := TaxableBase(subtotalCents, d, shippingCents)
	return base + ComputeTax(base, ratePercent)
}
