package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"productId"`
	ProductName     string          `json:"productName"`
	ProductImage    string          `json:"productImage"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	SelectedVariant string          `json:"selectedVariant,omitempty"`
	AddedAt         time.Time       `json:"addedAt"`
}

func NewCartItemID(productID, variant string, at time.Time) string {
	if variant == "" {
		variant = "default"
	}
	return fmt.Sprintf("%s-%s-%d", productID, variant, at.UnixNano())
}

// SameLine reports whether two cart entries refer to the same product and variant.
func (ci CartItem) SameLine(productID, variant string) bool {
	return ci.ProductID == productID && ci.SelectedVariant == variant
}
