// Package calc implements the invoice arithmetic engine. Every
// function is pure and total: defined for all real inputs, with the
// only clamp applied at the final total. No rounding happens here;
// display rounding belongs to the currency formatter.
package calc

import (
	"math"

	"invoiceflow/internal/domain"
)

// ItemSubtotal returns the line total for a quantity at a unit price.
func ItemSubtotal(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// Subtotal sums the stored subtotal of each item. An empty slice
// yields 0.
func Subtotal(items []domain.InvoiceItem) float64 {
	var sum float64
	for i := range items {
		sum += items[i].Subtotal
	}
	return sum
}

// TaxAmount returns the tax due on subtotal at the given percentage
// rate.
func TaxAmount(subtotal, taxRatePercent float64) float64 {
	return subtotal * taxRatePercent / 100
}

// DiscountAmount converts a discount specification into an absolute
// amount. Percentage discounts apply to subtotal; fixed discounts are
// taken verbatim.
func DiscountAmount(subtotal float64, typ domain.DiscountType, value float64) float64 {
	if typ == domain.DiscountPercentage {
		return subtotal * value / 100
	}
	return value
}

// Total combines the parts into the grand total, clamped at zero so an
// oversized discount can never produce a negative invoice.
func Total(subtotal, taxAmount, discountAmount float64) float64 {
	return math.Max(0, subtotal+taxAmount-discountAmount)
}

// Recalculate restores every derived-field invariant on inv in place:
// each item subtotal, the invoice subtotal, tax, discount, and total.
// Caller-supplied derived values are treated as stale caches.
func Recalculate(inv *domain.Invoice) {
	for i := range inv.Items {
		inv.Items[i].Subtotal = ItemSubtotal(inv.Items[i].Quantity, inv.Items[i].UnitPrice)
	}
	inv.Subtotal = Subtotal(inv.Items)
	inv.TaxAmount = TaxAmount(inv.Subtotal, inv.TaxRate)
	inv.DiscountAmount = DiscountAmount(inv.Subtotal, inv.DiscountType, inv.DiscountValue)
	inv.Total = Total(inv.Subtotal, inv.TaxAmount, inv.DiscountAmount)
}
