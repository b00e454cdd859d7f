package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID            string           `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name          string           `gorm:"size:255;not null" json:"name"`
	Slug          string           `gorm:"size:255;index" json:"slug"`
	Description   string           `gorm:"type:text" json:"description"`
	Price         decimal.Decimal  `gorm:"type:decimal(16,2);not null" json:"price"`
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(16,2)" json:"originalPrice,omitempty"`
	Discount      *decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount,omitempty"`
	Images        StringList       `gorm:"type:text" json:"images"`
	CategoryID    string           `gorm:"size:36;index" json:"category"`
	InStock       bool             `json:"inStock"`
	Stock         int              `gorm:"not null;default:0" json:"stockQuantity"`
	Features      StringList       `gorm:"type:text" json:"features"`
	Sizes         StringList       `gorm:"type:text" json:"sizes,omitempty"`
	CreatedAt     time.Time        `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// HasSizes reports whether a size must be picked before the product goes into the cart.
func (p *Product) HasSizes() bool {
	return len(p.Sizes) > 0
}

// ProductPatch carries the fields an admin edit touches; nil fields are left as they are.
type ProductPatch struct {
	Name          *string
	Slug          *string
	Description   *string
	Price         *decimal.Decimal
	OriginalPrice *decimal.Decimal
	Discount      *decimal.Decimal
	ClearDiscount bool
	Images        *StringList
	CategoryID    *string
	InStock       *bool
	Stock         *int
	Features      *StringList
	Sizes         *StringList
}

func (p ProductPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Slug != nil {
		cols["slug"] = *p.Slug
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.OriginalPrice != nil {
		cols["original_price"] = *p.OriginalPrice
	}
	if p.ClearDiscount {
		cols["discount"] = nil
	} else if p.Discount != nil {
		cols["discount"] = *p.Discount
	}
	if p.Images != nil {
		cols["images"] = *p.Images
	}
	if p.CategoryID != nil {
		cols["category_id"] = *p.CategoryID
	}
	if p.InStock != nil {
		cols["in_stock"] = *p.InStock
	}
	if p.Stock != nil {
		cols["stock"] = *p.Stock
	}
	if p.Features != nil {
		cols["features"] = *p.Features
	}
	if p.Sizes != nil {
		cols["sizes"] = *p.Sizes
	}
	return cols
}
