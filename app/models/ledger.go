package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ChargeCategory string

const (
	ChargeMachine   ChargeCategory = "Machine"
	ChargeMaterials ChargeCategory = "Materials"
	ChargeMarketing ChargeCategory = "Marketing"
	ChargeLogistics ChargeCategory = "Logistics"
	ChargeOther     ChargeCategory = "Other"
)

type RevenueSource string

const (
	RevenueFromOrder RevenueSource = "order"
	RevenueManual    RevenueSource = "manual"
)

type Charge struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Category  ChargeCategory  `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Investment struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Revenue struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Source      RevenueSource   `json:"source"`
	OrderID     string          `json:"orderId,omitempty"`
	ProductName string          `json:"productName,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
