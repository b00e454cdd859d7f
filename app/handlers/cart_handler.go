package handlers

import (
	"net/http"

	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/Rakhulsr/figurine-shop/app/utils/sessions"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render       *render.Render
	cart         *services.CartService
	sessionStore sessions.SessionStore
}

func NewCartHandler(r *render.Render, cart *services.CartService, sessionStore sessions.SessionStore) *CartHandler {
	return &CartHandler{render: r, cart: cart, sessionStore: sessionStore}
}

type quantityForm struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	deviceID, err := h.sessionStore.GetDeviceID(w, r)
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, h.cart.Cart(deviceID))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var form services.AddToCartInput
	if err := DecodeJSON(r, &form); err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	deviceID, err := h.sessionStore.GetDeviceID(w, r)
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	view, err := h.cart.AddToCart(deviceID, form)
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, view)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var form quantityForm
	if err := DecodeJSON(r, &form); err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	deviceID, err := h.sessionStore.GetDeviceID(w, r)
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	view, err := h.cart.UpdateQuantity(deviceID, mux.Vars(r)["id"], form.Quantity)
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, view)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	deviceID, err := h.sessionStore.GetDeviceID(w, r)
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	view, err := h.cart.Remove(deviceID, mux.Vars(r)["id"])
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, view)
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var form services.CheckoutInput
	if err := DecodeJSON(r, &form); err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	deviceID, err := h.sessionStore.GetDeviceID(w, r)
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	orders, err := h.cart.Checkout(r.Context(), deviceID, form)
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, orders)
}
