package handlers

import (
	"net/http"

	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/unrolled/render"
)

// OrderHandler takes the storefront's contact messages and custom order requests.
type OrderHandler struct {
	render *render.Render
	orders *services.OrderService
}

func NewOrderHandler(r *render.Render, orders *services.OrderService) *OrderHandler {
	return &OrderHandler{render: r, orders: orders}
}

func (h *OrderHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var form services.ContactInput
	if err := DecodeJSON(r, &form); err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	msg, err := h.orders.SendContact(r.Context(), form)
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, msg)
}

func (h *OrderHandler) CreateCustomOrder(w http.ResponseWriter, r *http.Request) {
	var form services.CustomOrderInput
	if err := DecodeJSON(r, &form); err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	co, err := h.orders.CreateCustomOrder(r.Context(), form)
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, co)
}
