package admin

import (
	"net/http"

	"github.com/Rakhulsr/figurine-shop/app/handlers"
	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/gorilla/mux"
)

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var form services.CategoryInput
	if err := handlers.DecodeJSON(r, &form); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	category, err := h.catalog.AddCategory(r.Context(), form)
	if err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, category)
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var form services.CategoryInput
	if err := handlers.DecodeJSON(r, &form); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	if err := h.catalog.UpdateCategory(r.Context(), mux.Vars(r)["id"], form); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteCategory answers 409 while products still use the category.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteCategory(r.Context(), mux.Vars(r)["id"]); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
