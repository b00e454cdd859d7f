package calc

import (
	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/shopspring/decimal"
)

func CartTotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func CartItemCount(items []models.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
