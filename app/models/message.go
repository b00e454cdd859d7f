package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusNone      OrderStatus = ""
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusSent      OrderStatus = "sent"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusReturned  OrderStatus = "returned"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusSent},
	OrderStatusSent:      {OrderStatusDelivered, OrderStatusReturned},
}

// CanTransition reports whether an order may move from s to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned:
		return true
	}
	return false
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusSent,
		OrderStatusDelivered, OrderStatusReturned, OrderStatusCancelled:
		return true
	}
	return false
}

// Message is either a plain contact message or, when OrderStatus is set, a customer order.
type Message struct {
	ID              string           `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name            string           `gorm:"size:255;not null" json:"name"`
	Email           string           `gorm:"size:100" json:"email"`
	Phone           string           `gorm:"size:20" json:"phone"`
	Body            string           `gorm:"type:text" json:"message"`
	Address         string           `gorm:"type:text" json:"address,omitempty"`
	ProductID       string           `gorm:"size:36;index" json:"productId,omitempty"`
	ProductName     string           `gorm:"size:255" json:"productName,omitempty"`
	Quantity        int              `json:"quantity,omitempty"`
	OrderPrice      *decimal.Decimal `gorm:"type:decimal(16,2)" json:"orderPrice,omitempty"`
	SelectedVariant string           `gorm:"size:100" json:"selectedVariant,omitempty"`
	OrderStatus     OrderStatus      `gorm:"size:20;index" json:"orderStatus,omitempty"`
	Read            bool             `gorm:"column:is_read" json:"read"`
	CreatedAt       time.Time        `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}

func (m *Message) IsOrder() bool {
	return m.OrderStatus != OrderStatusNone
}

type MessagePatch struct {
	OrderStatus *OrderStatus
	Read        *bool
}

func (p MessagePatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.OrderStatus != nil {
		cols["order_status"] = string(*p.OrderStatus)
	}
	if p.Read != nil {
		cols["is_read"] = *p.Read
	}
	return cols
}
