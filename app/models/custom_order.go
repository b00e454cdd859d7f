package models

import "time"

type CustomOrderStatus string

const (
	CustomOrderPending    CustomOrderStatus = "pending"
	CustomOrderInProgress CustomOrderStatus = "in-progress"
	CustomOrderCompleted  CustomOrderStatus = "completed"
	CustomOrderCancelled  CustomOrderStatus = "cancelled"
)

const MaxReferenceImages = 3

func (s CustomOrderStatus) Valid() bool {
	switch s {
	case CustomOrderPending, CustomOrderInProgress, CustomOrderCompleted, CustomOrderCancelled:
		return true
	}
	return false
}

type CustomOrder struct {
	ID              string            `json:"id"`
	Category        string            `json:"category"`
	Description     string            `json:"description"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	ReferenceImages []string          `json:"referenceImages,omitempty"`
	Status          CustomOrderStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
}
