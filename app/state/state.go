// Package state holds the application state container. Every change goes through Dispatch
// with one of the actions declared in actions.go; Reduce is the only place state changes.
package state

import (
	"sync"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/shopspring/decimal"
)

type PriceSort string

const (
	SortNewest    PriceSort = ""
	SortPriceAsc  PriceSort = "price_asc"
	SortPriceDesc PriceSort = "price_desc"
)

// Filters are the catalog filters picked in the storefront.
type Filters struct {
	CategoryID  string           `json:"category,omitempty"`
	Search      string           `json:"search,omitempty"`
	InStockOnly bool             `json:"inStockOnly,omitempty"`
	MaxPrice    *decimal.Decimal `json:"maxPrice,omitempty"`
	Sort        PriceSort        `json:"sort,omitempty"`
}

type Loading struct {
	Products   bool `json:"products"`
	Categories bool `json:"categories"`
	Messages   bool `json:"messages"`
}

type State struct {
	Products     []models.Product     `json:"products"`
	Categories   []models.Category    `json:"categories"`
	Messages     []models.Message     `json:"messages"`
	CustomOrders []models.CustomOrder `json:"customOrders"`
	Charges      []models.Charge      `json:"charges"`
	Investments  []models.Investment  `json:"investments"`
	Revenues     []models.Revenue     `json:"revenues"`
	Devices      map[string]Device    `json:"devices"`
	Loading      Loading              `json:"loading"`
}

// Device is the part of the state that belongs to one browser: its cart, admin session and
// catalog filters. Devices are keyed by the id kept in the visitor's device cookie.
type Device struct {
	Cart    []models.CartItem `json:"cart"`
	Session models.Session    `json:"session"`
	Filters Filters           `json:"filters"`
}

func (d Device) empty() bool {
	return len(d.Cart) == 0 && d.Session == (models.Session{}) && d.Filters == (Filters{})
}

func Initial() State {
	return State{
		Products:     []models.Product{},
		Categories:   []models.Category{},
		Messages:     []models.Message{},
		CustomOrders: []models.CustomOrder{},
		Charges:      []models.Charge{},
		Investments:  []models.Investment{},
		Revenues:     []models.Revenue{},
		Devices:      map[string]Device{},
		Loading:      Loading{Products: true, Categories: true, Messages: true},
	}
}

// Device returns the state of one browser; an unknown id yields an empty cart.
func (s State) Device(id string) Device {
	d := s.Devices[id]
	if d.Cart == nil {
		d.Cart = []models.CartItem{}
	}
	return d
}

func (s State) ProductByID(id string) (models.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s State) MessageByID(id string) (models.Message, bool) {
	for _, m := range s.Messages {
		if m.ID == id {
			return m, true
		}
	}
	return models.Message{}, false
}

func (s State) RevenueForOrder(orderID string) (models.Revenue, bool) {
	for _, r := range s.Revenues {
		if r.OrderID != "" && r.OrderID == orderID {
			return r, true
		}
	}
	return models.Revenue{}, false
}

type Dispatcher interface {
	Dispatch(action Action)
}

// Store owns the current State. Dispatch calls are serialized; readers get immutable snapshots.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: Initial()}
}

func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, action)
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
