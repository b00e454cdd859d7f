package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Slug        string    `gorm:"size:100;index" json:"slug"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string    `gorm:"type:text" json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

type CategoryPatch struct {
	Name        *string
	Slug        *string
	Description *string
	ImageURL    *string
}

func (p CategoryPatch) Columns() map[string]interface{} {
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
	if p.ImageURL != nil {
		cols["image_url"] = *p.ImageURL
	}
	return cols
}
