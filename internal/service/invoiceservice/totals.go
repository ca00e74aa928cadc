package invoiceservice

import (
	"errors"
	"fmt"

	"github.com/restoreassist/billing/internal/domain"
	"github.com/restoreassist/billing/pkg/money"
)

var ErrInvalidLineItem = errors.New("invalid line item")

// ComputeTotals aggregates line items into the document summary.
// Rounding happens per line (quantities may be fractional, e.g. 2.5
// hours of labour). Tax always uses the blended GST rate; the per-line
// tax rate fields are carried for display but never drive the summary.
// The pipeline order is fixed: subtotal -> discount -> shipping -> tax
// on the discounted+shipped base.
func ComputeTotals(items []domain.LineItem, discount *money.Discount, shippingCents int64) (domain.InvoiceTotals, error) {
	var subtotal int64
	for i, item := range items {
		if item.UnitPriceCents < 0 {
			return domain.InvoiceTotals{}, fmt.Errorf("%w: negative unit price at index %d", ErrInvalidLineItem, i)
		}
		if item.Quantity < 0 {
			return domain.InvoiceTotals{}, fmt.Errorf("%w: negative quantity at index %d", ErrInvalidLineItem, i)
		}
		subtotal += money.Round(item.Quantity * float64(item.UnitPriceCents))
	}

	discounted := subtotal
	if discount != nil {
		discounted = money.ApplyDiscount(subtotal, *discount)
	}

	base := money.AddShipping(discounted, shippingCents)
	tax := money.ComputeTax(base, money.GSTRatePercent)

	return domain.InvoiceTotals{
		SubtotalCents: subtotal,
		DiscountCents: subtotal - discounted,
		ShippingCents: shippingCents,
		TaxCents:      tax,
		TotalCents:    base + tax,
	}, nil
}
