package state

import (
	"log"

	"github.com/Rakhulsr/figurine-shop/app/models"
)

// Reduce applies action to s and returns the next snapshot. s is never modified.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetProducts:
		s.Products = orEmpty(a.Products)
		s.Loading.Products = false
	case SetCategories:
		s.Categories = orEmpty(a.Categories)
		s.Loading.Categories = false
	case SetMessages:
		s.Messages = orEmpty(a.Messages)
		s.Loading.Messages = false
	case SetCustomOrders:
		s.CustomOrders = orEmpty(a.CustomOrders)
	case SetCharges:
		s.Charges = orEmpty(a.Charges)
	case SetInvestments:
		s.Investments = orEmpty(a.Investments)
	case SetRevenues:
		s.Revenues = orEmpty(a.Revenues)
	case SetCart:
		s = withDevice(s, a.DeviceID, func(d Device) Device {
			d.Cart = orEmpty(a.Items)
			return d
		})

	case AddToCart:
		s = withDevice(s, a.DeviceID, func(d Device) Device {
			d.Cart = addToCart(d.Cart, a.Item)
			return d
		})
	case UpdateCartQuantity:
		s = withDevice(s, a.DeviceID, func(d Device) Device {
			d.Cart = updateCartQuantity(d.Cart, a.ItemID, a.Quantity)
			return d
		})
	case RemoveFromCart:
		s = withDevice(s, a.DeviceID, func(d Device) Device {
			d.Cart = removeWhere(d.Cart, func(ci models.CartItem) bool { return ci.ID == a.ItemID })
			return d
		})
	case ClearCart:
		s = withDevice(s, a.DeviceID, func(d Device) Device {
			d.Cart = []models.CartItem{}
			return d
		})

	case AddCustomOrder:
		s.CustomOrders = prepend(s.CustomOrders, a.CustomOrder)
	case UpdateCustomOrderStatus:
		next := make([]models.CustomOrder, len(s.CustomOrders))
		copy(next, s.CustomOrders)
		for i := range next {
			if next[i].ID == a.ID {
				next[i].Status = a.Status
			}
		}
		s.CustomOrders = next

	case AddCharge:
		s.Charges = prepend(s.Charges, a.Charge)
	case DeleteCharge:
		s.Charges = removeWhere(s.Charges, func(c models.Charge) bool { return c.ID == a.ID })
	case AddInvestment:
		s.Investments = prepend(s.Investments, a.Investment)
	case DeleteInvestment:
		s.Investments = removeWhere(s.Investments, func(i models.Investment) bool { return i.ID == a.ID })
	case AddRevenue:
		s.Revenues = prepend(s.Revenues, a.Revenue)
	case DeleteRevenue:
		s.Revenues = removeWhere(s.Revenues, func(r models.Revenue) bool { return r.ID == a.ID })

	case Login:
		s = withDevice(s, a.DeviceID, func(d Device) Device {
			d.Session = models.Session{Username: a.Username, IsAuthenticated: true}
			return d
		})
	case Logout:
		s = withDevice(s, a.DeviceID, func(d Device) Device {
			d.Session = models.Session{}
			return d
		})

	case SetFilters:
		s = withDevice(s, a.DeviceID, func(d Device) Device {
			d.Filters = a.Filters
			return d
		})

	default:
		log.Printf("Reduce: unknown action %T ignored", action)
	}
	return s
}

// withDevice copies the device map and stores the updated device. Devices left with nothing in
// them are dropped so anonymous visitors do not accumulate.
func withDevice(s State, id string, update func(Device) Device) State {
	next := make(map[string]Device, len(s.Devices)+1)
	for k, v := range s.Devices {
		next[k] = v
	}
	d := update(s.Device(id))
	if d.empty() {
		delete(next, id)
	} else {
		next[id] = d
	}
	s.Devices = next
	return s
}

func addToCart(cart []models.CartItem, item models.CartItem) []models.CartItem {
	next := make([]models.CartItem, len(cart), len(cart)+1)
	copy(next, cart)
	for i := range next {
		if next[i].SameLine(item.ProductID, item.SelectedVariant) {
			next[i].Quantity += item.Quantity
			return next
		}
	}
	return append(next, item)
}

func updateCartQuantity(cart []models.CartItem, itemID string, quantity int) []models.CartItem {
	if quantity <= 0 {
		return removeWhere(cart, func(ci models.CartItem) bool { return ci.ID == itemID })
	}
	next := make([]models.CartItem, len(cart))
	copy(next, cart)
	for i := range next {
		if next[i].ID == itemID {
			next[i].Quantity = quantity
		}
	}
	return next
}

func prepend[T any](items []T, item T) []T {
	next := make([]T, 0, len(items)+1)
	next = append(next, item)
	return append(next, items...)
}

func removeWhere[T any](items []T, match func(T) bool) []T {
	next := make([]T, 0, len(items))
	for _, it := range items {
		if !match(it) {
			next = append(next, it)
		}
	}
	return next
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
