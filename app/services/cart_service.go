package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/Rakhulsr/figurine-shop/app/repositories"
	"github.com/Rakhulsr/figurine-shop/app/state"
	"github.com/Rakhulsr/figurine-shop/app/storage"
	"github.com/Rakhulsr/figurine-shop/app/utils/calc"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type CartView struct {
	Items     []models.CartItem `json:"items"`
	Total     decimal.Decimal   `json:"total"`
	ItemCount int               `json:"itemCount"`
}

type AddToCartInput struct {
	ProductID       string `json:"productId" validate:"required"`
	SelectedVariant string `json:"selectedVariant"`
	Quantity        int    `json:"quantity" validate:"gte=0"`
}

type CheckoutInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,max=20"`
	Address string `json:"address" validate:"required"`
	Notes   string `json:"notes"`
}

type CartService struct {
	store       *state.Store
	local       storage.LocalStore
	messageRepo repositories.MessageRepositoryImpl
	validate    *validator.Validate
	now         func() time.Time

	mu     sync.Mutex
	loaded map[string]bool
}

func NewCartService(store *state.Store, local storage.LocalStore, messageRepo repositories.MessageRepositoryImpl) *CartService {
	return &CartService{
		store:       store,
		local:       local,
		messageRepo: messageRepo,
		validate:    validator.New(),
		now:         time.Now,
		loaded:      make(map[string]bool),
	}
}

// Cart returns the cart of one device, reading it from local storage the first time the device
// is seen by this process.
func (s *CartService) Cart(deviceID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(deviceID)
	return s.view(deviceID)
}

func (s *CartService) view(deviceID string) CartView {
	items := s.store.Snapshot().Device(deviceID).Cart
	return CartView{
		Items:     items,
		Total:     calc.CartTotal(items),
		ItemCount: calc.CartItemCount(items),
	}
}

// AddToCart puts a product line in the cart, merging with an existing line of the same variant.
func (s *CartService) AddToCart(deviceID string, in AddToCartInput) (CartView, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return CartView{}, err
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	product, ok := s.store.Snapshot().ProductByID(in.ProductID)
	if !ok {
		return CartView{}, fmt.Errorf("product %s: %w", in.ProductID, ErrNotFound)
	}
	if !product.InStock {
		return CartView{}, fieldError("productId", fmt.Sprintf("%s is out of stock", product.Name))
	}
	variant := strings.TrimSpace(in.SelectedVariant)
	if product.HasSizes() {
		if variant == "" {
			return CartView{}, fieldError("selectedVariant", "selectedVariant is required for this product")
		}
		if !hasSize(product.Sizes, variant) {
			return CartView{}, fieldError("selectedVariant", fmt.Sprintf("size %s is not available", variant))
		}
	}

	now := s.now()
	var image string
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	item := models.CartItem{
		ID:              models.NewCartItemID(product.ID, variant, now),
		ProductID:       product.ID,
		ProductName:     product.Name,
		ProductImage:    image,
		Price:           product.Price,
		Quantity:        in.Quantity,
		SelectedVariant: variant,
		AddedAt:         now,
	}
	return s.apply(deviceID, state.AddToCart{DeviceID: deviceID, Item: item}), nil
}

// UpdateQuantity sets a line's quantity; zero or less drops the line.
func (s *CartService) UpdateQuantity(deviceID, itemID string, quantity int) (CartView, error) {
	if !s.hasLine(deviceID, itemID) {
		return CartView{}, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	return s.apply(deviceID, state.UpdateCartQuantity{DeviceID: deviceID, ItemID: itemID, Quantity: quantity}), nil
}

func (s *CartService) Remove(deviceID, itemID string) (CartView, error) {
	if !s.hasLine(deviceID, itemID) {
		return CartView{}, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	return s.apply(deviceID, state.RemoveFromCart{DeviceID: deviceID, ItemID: itemID}), nil
}

func (s *CartService) Clear(deviceID string) CartView {
	return s.apply(deviceID, state.ClearCart{DeviceID: deviceID})
}

// Checkout turns every cart line into a pending order and empties the cart once all are stored.
func (s *CartService) Checkout(ctx context.Context, deviceID string, in CheckoutInput) ([]models.Message, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	items := s.Cart(deviceID).Items
	if len(items) == 0 {
		return nil, fieldError("cart", "cart is empty")
	}

	orders := make([]models.Message, 0, len(items))
	for _, item := range items {
		price := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		order := models.Message{
			Name:            strings.TrimSpace(in.Name),
			Email:           strings.TrimSpace(in.Email),
			Phone:           strings.TrimSpace(in.Phone),
			Address:         in.Address,
			Body:            in.Notes,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			Quantity:        item.Quantity,
			OrderPrice:      &price,
			SelectedVariant: item.SelectedVariant,
			OrderStatus:     models.OrderStatusPending,
		}
		if _, err := s.messageRepo.Add(ctx, &order); err != nil {
			log.Printf("CartService.Checkout: stored %d of %d orders before failing: %v", len(orders), len(items), err)
			return orders, err
		}
		orders = append(orders, order)
	}

	s.Clear(deviceID)
	return orders, nil
}

func (s *CartService) hasLine(deviceID, itemID string) bool {
	return containsID(s.Cart(deviceID).Items, itemID, func(ci models.CartItem) string { return ci.ID })
}

func (s *CartService) apply(deviceID string, action state.Action) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(deviceID)
	s.store.Dispatch(action)
	view := s.view(deviceID)
	if err := s.local.Save(storage.CartKey(deviceID), view.Items); err != nil {
		log.Printf("CartService.apply: failed to save cart of device %s: %v", deviceID, err)
	}
	return view
}

// ensureLoaded must be called with mu held.
func (s *CartService) ensureLoaded(deviceID string) {
	if s.loaded[deviceID] {
		return
	}
	s.store.Dispatch(state.SetCart{DeviceID: deviceID, Items: loadLocal[models.CartItem](s.local, storage.CartKey(deviceID))})
	s.loaded[deviceID] = true
}

func hasSize(sizes models.StringList, size string) bool {
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}
