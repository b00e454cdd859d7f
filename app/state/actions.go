package state

import "github.com/Rakhulsr/figurine-shop/app/models"

// Action is the closed set of state transitions.
type Action interface {
	action()
}

type SetProducts struct{ Products []models.Product }
type SetCategories struct{ Categories []models.Category }
type SetMessages struct{ Messages []models.Message }
type SetCustomOrders struct{ CustomOrders []models.CustomOrder }
type SetCharges struct{ Charges []models.Charge }
type SetInvestments struct{ Investments []models.Investment }
type SetRevenues struct{ Revenues []models.Revenue }

// Cart, session and filter actions apply to the device named by DeviceID only.

type SetCart struct {
	DeviceID string
	Items    []models.CartItem
}

// AddToCart merges into an existing line with the same product and variant.
type AddToCart struct {
	DeviceID string
	Item     models.CartItem
}

// UpdateCartQuantity removes the line when Quantity is zero or below.
type UpdateCartQuantity struct {
	DeviceID string
	ItemID   string
	Quantity int
}

type RemoveFromCart struct {
	DeviceID string
	ItemID   string
}

type ClearCart struct{ DeviceID string }

type AddCustomOrder struct{ CustomOrder models.CustomOrder }
type UpdateCustomOrderStatus struct {
	ID     string
	Status models.CustomOrderStatus
}

type AddCharge struct{ Charge models.Charge }
type DeleteCharge struct{ ID string }
type AddInvestment struct{ Investment models.Investment }
type DeleteInvestment struct{ ID string }
type AddRevenue struct{ Revenue models.Revenue }
type DeleteRevenue struct{ ID string }

type Login struct {
	DeviceID string
	Username string
}

type Logout struct{ DeviceID string }

type SetFilters struct {
	DeviceID string
	Filters  Filters
}

func (SetProducts) action()             {}
func (SetCategories) action()           {}
func (SetMessages) action()             {}
func (SetCustomOrders) action()         {}
func (SetCharges) action()              {}
func (SetInvestments) action()          {}
func (SetRevenues) action()             {}
func (SetCart) action()                 {}
func (AddToCart) action()               {}
func (UpdateCartQuantity) action()      {}
func (RemoveFromCart) action()          {}
func (ClearCart) action()               {}
func (AddCustomOrder) action()          {}
func (UpdateCustomOrderStatus) action() {}
func (AddCharge) action()               {}
func (DeleteCharge) action()            {}
func (AddInvestment) action()           {}
func (DeleteInvestment) action()        {}
func (AddRevenue) action()              {}
func (DeleteRevenue) action()           {}
func (Login) action()                   {}
func (Logout) action()                  {}
func (SetFilters) action()              {}
