package admin

import (
	"net/http"

	"github.com/Rakhulsr/figurine-shop/app/handlers"
	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/gorilla/mux"
)

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var form services.ProductInput
	if err := handlers.DecodeJSON(r, &form); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	product, err := h.catalog.AddProduct(r.Context(), form)
	if err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, product)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var form services.ProductInput
	if err := handlers.DecodeJSON(r, &form); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	id := mux.Vars(r)["id"]
	if err := h.catalog.UpdateProduct(r.Context(), id, form); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	product, err := h.catalog.ProductByID(id)
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.render.JSON(w, http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteProduct(r.Context(), mux.Vars(r)["id"]); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
