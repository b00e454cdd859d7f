package admin

import (
	"net/http"

	"github.com/Rakhulsr/figurine-shop/app/handlers"
	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/gorilla/mux"
)

type orderStatusForm struct {
	Status models.OrderStatus `json:"status"`
}

type readForm struct {
	Read bool `json:"read"`
}

type customOrderStatusForm struct {
	Status models.CustomOrderStatus `json:"status"`
}

// ListOrders returns every message, plain contact messages and orders alike, newest first.
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.orders.Messages())
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var form orderStatusForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	order, err := h.orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], form.Status)
	if err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, order)
}

func (h *AdminHandler) MarkOrderRead(w http.ResponseWriter, r *http.Request) {
	form := readForm{Read: true}
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &form); err != nil {
			handlers.RespondError(h.render, w, r, err)
			return
		}
	}
	if err := h.orders.MarkRead(r.Context(), mux.Vars(r)["id"], form.Read); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.DeleteOrder(r.Context(), mux.Vars(r)["id"]); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListCustomOrders(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.orders.CustomOrders())
}

func (h *AdminHandler) UpdateCustomOrderStatus(w http.ResponseWriter, r *http.Request) {
	var form customOrderStatusForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	if err := h.orders.UpdateCustomOrderStatus(mux.Vars(r)["id"], form.Status); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
