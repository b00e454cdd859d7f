package services

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/Rakhulsr/figurine-shop/app/state"
	"github.com/Rakhulsr/figurine-shop/app/storage"
	"github.com/Rakhulsr/figurine-shop/app/utils/calc"
	"github.com/Rakhulsr/figurine-shop/app/utils/format"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const OrderRevenueCategory = "Order"

type ChargeInput struct {
	Title    string                `json:"title" validate:"required,max=255"`
	Category models.ChargeCategory `json:"category" validate:"required,oneof=Machine Materials Marketing Logistics Other"`
	Amount   decimal.Decimal       `json:"amount"`
	Date     time.Time             `json:"date"`
	Notes    string                `json:"notes"`
}

type InvestmentInput struct {
	Title  string          `json:"title" validate:"required,max=255"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Notes  string          `json:"notes"`
}

type RevenueInput struct {
	Category    string          `json:"category" validate:"required,max=100"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	ProductName string          `json:"productName"`
	Notes       string          `json:"notes"`
}

// LedgerService keeps charges, investments and revenues. They never leave this device.
type LedgerService struct {
	store    *state.Store
	local    storage.LocalStore
	validate *validator.Validate
	now      func() time.Time

	mu sync.Mutex
}

func NewLedgerService(store *state.Store, local storage.LocalStore) *LedgerService {
	return &LedgerService{
		store:    store,
		local:    local,
		validate: validator.New(),
		now:      time.Now,
	}
}

// LoadLocal reads the three ledgers from local storage into the state store.
func (s *LedgerService) LoadLocal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Dispatch(state.SetCharges{Charges: loadLocal[models.Charge](s.local, storage.KeyCharges)})
	s.store.Dispatch(state.SetInvestments{Investments: loadLocal[models.Investment](s.local, storage.KeyInvestments)})
	s.store.Dispatch(state.SetRevenues{Revenues: loadLocal[models.Revenue](s.local, storage.KeyRevenues)})
}

func positiveAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fieldError("amount", "amount must be greater than zero")
	}
	return nil
}

func (s *LedgerService) dateOrToday(d time.Time) time.Time {
	if d.IsZero() {
		return s.now()
	}
	return d
}

func (s *LedgerService) Charges() []models.Charge {
	return s.store.Snapshot().Charges
}

func (s *LedgerService) Investments() []models.Investment {
	return s.store.Snapshot().Investments
}

func (s *LedgerService) Revenues() []models.Revenue {
	return s.store.Snapshot().Revenues
}

func (s *LedgerService) AddCharge(in ChargeInput) (models.Charge, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return models.Charge{}, err
	}
	if err := positiveAmount(in.Amount); err != nil {
		return models.Charge{}, err
	}
	charge := models.Charge{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(in.Title),
		Category:  in.Category,
		Amount:    in.Amount,
		Date:      s.dateOrToday(in.Date),
		Notes:     in.Notes,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Dispatch(state.AddCharge{Charge: charge})
	s.persist(storage.KeyCharges, s.store.Snapshot().Charges)
	return charge, nil
}

func (s *LedgerService) DeleteCharge(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !containsID(s.store.Snapshot().Charges, id, func(c models.Charge) string { return c.ID }) {
		return fmt.Errorf("charge %s: %w", id, ErrNotFound)
	}
	s.store.Dispatch(state.DeleteCharge{ID: id})
	s.persist(storage.KeyCharges, s.store.Snapshot().Charges)
	return nil
}

func (s *LedgerService) AddInvestment(in InvestmentInput) (models.Investment, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return models.Investment{}, err
	}
	if err := positiveAmount(in.Amount); err != nil {
		return models.Investment{}, err
	}
	investment := models.Investment{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(in.Title),
		Amount:    in.Amount,
		Date:      s.dateOrToday(in.Date),
		Notes:     in.Notes,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Dispatch(state.AddInvestment{Investment: investment})
	s.persist(storage.KeyInvestments, s.store.Snapshot().Investments)
	return investment, nil
}

func (s *LedgerService) DeleteInvestment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !containsID(s.store.Snapshot().Investments, id, func(i models.Investment) string { return i.ID }) {
		return fmt.Errorf("investment %s: %w", id, ErrNotFound)
	}
	s.store.Dispatch(state.DeleteInvestment{ID: id})
	s.persist(storage.KeyInvestments, s.store.Snapshot().Investments)
	return nil
}

// AddRevenue records a manual revenue entry.
func (s *LedgerService) AddRevenue(in RevenueInput) (models.Revenue, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return models.Revenue{}, err
	}
	if err := positiveAmount(in.Amount); err != nil {
		return models.Revenue{}, err
	}
	revenue := models.Revenue{
		ID:          uuid.New().String(),
		Category:    strings.TrimSpace(in.Category),
		Amount:      in.Amount,
		Date:        s.dateOrToday(in.Date),
		Source:      models.RevenueManual,
		ProductName: in.ProductName,
		Notes:       in.Notes,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Dispatch(state.AddRevenue{Revenue: revenue})
	s.persist(storage.KeyRevenues, s.store.Snapshot().Revenues)
	return revenue, nil
}

func (s *LedgerService) DeleteRevenue(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !containsID(s.store.Snapshot().Revenues, id, func(r models.Revenue) string { return r.ID }) {
		return fmt.Errorf("revenue %s: %w", id, ErrNotFound)
	}
	s.store.Dispatch(state.DeleteRevenue{ID: id})
	s.persist(storage.KeyRevenues, s.store.Snapshot().Revenues)
	return nil
}

// RecordOrderRevenue books a confirmed order as revenue. It reports false when the order
// already has a linked revenue or carries no price.
func (s *LedgerService) RecordOrderRevenue(order models.Message) (models.Revenue, bool) {
	if order.OrderPrice == nil || order.OrderPrice.IsZero() {
		return models.Revenue{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.store.Snapshot().RevenueForOrder(order.ID); ok {
		return existing, false
	}
	now := s.now()
	revenue := models.Revenue{
		ID:          uuid.New().String(),
		Category:    OrderRevenueCategory,
		Amount:      *order.OrderPrice,
		Date:        now,
		Source:      models.RevenueFromOrder,
		OrderID:     order.ID,
		ProductName: order.ProductName,
		CreatedAt:   now,
	}
	s.store.Dispatch(state.AddRevenue{Revenue: revenue})
	s.persist(storage.KeyRevenues, s.store.Snapshot().Revenues)
	return revenue, true
}

func (s *LedgerService) RemoveOrderRevenue(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	revenue, ok := s.store.Snapshot().RevenueForOrder(orderID)
	if !ok {
		return false
	}
	s.store.Dispatch(state.DeleteRevenue{ID: revenue.ID})
	s.persist(storage.KeyRevenues, s.store.Snapshot().Revenues)
	return true
}

func (s *LedgerService) Summary(now time.Time) calc.FinancialSummary {
	snap := s.store.Snapshot()
	return calc.Summarize(snap.Revenues, snap.Charges, snap.Investments, now)
}

// Export writes one ledger as CSV. kind is charges, investments or revenues.
func (s *LedgerService) Export(kind string, w io.Writer) error {
	snap := s.store.Snapshot()
	switch kind {
	case storage.KeyCharges:
		return format.WriteChargesCSV(w, snap.Charges)
	case storage.KeyInvestments:
		return format.WriteInvestmentsCSV(w, snap.Investments)
	case storage.KeyRevenues:
		return format.WriteRevenuesCSV(w, snap.Revenues)
	}
	return fieldError("kind", "kind must be one of charges investments revenues")
}

func (s *LedgerService) persist(key string, value interface{}) {
	if err := s.local.Save(key, value); err != nil {
		log.Printf("LedgerService.persist: failed to save %s: %v", key, err)
	}
}

func containsID[T any](items []T, id string, idOf func(T) string) bool {
	for _, item := range items {
		if idOf(item) == id {
			return true
		}
	}
	return false
}
