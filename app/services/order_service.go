package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/Rakhulsr/figurine-shop/app/repositories"
	"github.com/Rakhulsr/figurine-shop/app/state"
	"github.com/Rakhulsr/figurine-shop/app/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=20"`
	Message string `json:"message" validate:"required"`
}

type CustomOrderInput struct {
	Category        string   `json:"category" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Name            string   `json:"name" validate:"required,max=255"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required,max=20"`
	ReferenceImages []string `json:"referenceImages" validate:"max=3,dive,required"`
}

// OrderService runs the admin order queue: contact messages, customer orders and custom orders.
type OrderService struct {
	store       *state.Store
	local       storage.LocalStore
	messageRepo repositories.MessageRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	ledger      *LedgerService
	notifier    OrderNotifier
	validate    *validator.Validate
	now         func() time.Time

	mu sync.Mutex
}

// NewOrderService builds the service; notifier may be nil when no mail server is configured.
func NewOrderService(
	store *state.Store,
	local storage.LocalStore,
	messageRepo repositories.MessageRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	ledger *LedgerService,
	notifier OrderNotifier,
) *OrderService {
	return &OrderService{
		store:       store,
		local:       local,
		messageRepo: messageRepo,
		productRepo: productRepo,
		ledger:      ledger,
		notifier:    notifier,
		validate:    validator.New(),
		now:         time.Now,
	}
}

func (s *OrderService) Messages() []models.Message {
	return s.store.Snapshot().Messages
}

func (s *OrderService) SendContact(ctx context.Context, in ContactInput) (*models.Message, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	msg := &models.Message{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
		Body:  in.Message,
	}
	if _, err := s.messageRepo.Add(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *OrderService) order(id string) (models.Message, error) {
	msg, ok := s.store.Snapshot().MessageByID(id)
	if !ok {
		return models.Message{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return msg, nil
}

// UpdateStatus moves an order along its lifecycle and applies the side effects of the
// transition: confirming books revenue, delivering takes the quantity out of stock.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, next models.OrderStatus) (models.Message, error) {
	order, err := s.order(id)
	if err != nil {
		return models.Message{}, err
	}
	if !next.Valid() {
		return models.Message{}, fieldError("orderStatus", fmt.Sprintf("unknown order status %q", next))
	}
	if !order.OrderStatus.CanTransition(next) {
		return models.Message{}, fmt.Errorf("%q to %q: %w", order.OrderStatus, next, ErrInvalidTransition)
	}

	if err := s.messageRepo.UpdateStatus(ctx, id, order.OrderStatus, next); err != nil {
		if errors.Is(err, repositories.ErrStatusChanged) {
			return models.Message{}, fmt.Errorf("%q to %q: %w", order.OrderStatus, next, ErrInvalidTransition)
		}
		return models.Message{}, err
	}
	order.OrderStatus = next

	switch next {
	case models.OrderStatusConfirmed:
		if _, created := s.ledger.RecordOrderRevenue(order); created {
			log.Printf("OrderService.UpdateStatus: booked revenue for order %s", id)
		}
	case models.OrderStatusDelivered:
		if err := s.takeFromStock(ctx, order); err != nil {
			log.Printf("OrderService.UpdateStatus: stock not updated for order %s: %v", id, err)
		}
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyOrderStatus(ctx, order); err != nil {
			log.Printf("OrderService.UpdateStatus: notification for order %s failed: %v", id, err)
		}
	}
	return order, nil
}

func (s *OrderService) takeFromStock(ctx context.Context, order models.Message) error {
	if order.ProductID == "" {
		return nil
	}
	product, err := s.productRepo.GetByID(ctx, order.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("product %s: %w", order.ProductID, ErrNotFound)
	}
	stock := product.Stock - order.Quantity
	if stock < 0 {
		stock = 0
	}
	inStock := stock > 0
	return s.productRepo.Update(ctx, product.ID, models.ProductPatch{Stock: &stock, InStock: &inStock})
}

func (s *OrderService) MarkRead(ctx context.Context, id string, read bool) error {
	if _, err := s.order(id); err != nil {
		return err
	}
	return s.messageRepo.Update(ctx, id, models.MessagePatch{Read: &read})
}

// DeleteOrder removes a message or order. A delivered order takes its booked revenue with it.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	order, err := s.order(id)
	if err != nil {
		return err
	}
	if err := s.messageRepo.Delete(ctx, id); err != nil {
		return err
	}
	if order.OrderStatus == models.OrderStatusDelivered {
		s.ledger.RemoveOrderRevenue(id)
	}
	return nil
}

func (s *OrderService) CustomOrders() []models.CustomOrder {
	return s.store.Snapshot().CustomOrders
}

// CreateCustomOrder keeps the request on this device and mirrors it as a pending order
// message so it shows up in the admin queue.
func (s *OrderService) CreateCustomOrder(ctx context.Context, in CustomOrderInput) (models.CustomOrder, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return models.CustomOrder{}, err
	}
	if len(in.ReferenceImages) > models.MaxReferenceImages {
		return models.CustomOrder{}, fieldError("referenceImages", "at most 3 reference images are allowed")
	}

	co := models.CustomOrder{
		ID:              uuid.New().String(),
		Category:        strings.TrimSpace(in.Category),
		Description:     in.Description,
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		ReferenceImages: in.ReferenceImages,
		Status:          models.CustomOrderPending,
		CreatedAt:       s.now(),
	}
	s.applyCustom(state.AddCustomOrder{CustomOrder: co})

	msg := &models.Message{
		Name:        co.Name,
		Email:       co.Email,
		Phone:       co.Phone,
		Body:        fmt.Sprintf("Custom order (%s): %s", co.Category, co.Description),
		ProductName: "Custom order: " + co.Category,
		Quantity:    1,
		OrderStatus: models.OrderStatusPending,
	}
	if _, err := s.messageRepo.Add(ctx, msg); err != nil {
		log.Printf("OrderService.CreateCustomOrder: custom order %s saved locally only: %v", co.ID, err)
	}
	return co, nil
}

func (s *OrderService) UpdateCustomOrderStatus(id string, status models.CustomOrderStatus) error {
	if !status.Valid() {
		return fieldError("status", fmt.Sprintf("unknown custom order status %q", status))
	}
	if !containsID(s.store.Snapshot().CustomOrders, id, func(co models.CustomOrder) string { return co.ID }) {
		return fmt.Errorf("custom order %s: %w", id, ErrNotFound)
	}
	s.applyCustom(state.UpdateCustomOrderStatus{ID: id, Status: status})
	return nil
}

func (s *OrderService) applyCustom(action state.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Dispatch(action)
	if err := s.local.Save(storage.KeyCustomOrders, s.store.Snapshot().CustomOrders); err != nil {
		log.Printf("OrderService.applyCustom: failed to save custom orders: %v", err)
	}
}
