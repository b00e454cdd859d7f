package calc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DiscountedPrice returns original reduced by discountPercent, rounded to cents.
func DiscountedPrice(original, discountPercent decimal.Decimal) decimal.Decimal {
	if !discountPercent.IsPositive() {
		return original
	}
	return original.Sub(CalculateDiscount(original, discountPercent)).Round(2)
}

// CalculateDiscount is the amount taken off baseTotal, unrounded.
func CalculateDiscount(baseTotal, discountPercent decimal.Decimal) decimal.Decimal {
	return baseTotal.Mul(discountPercent).Div(hundred)
}
