package admin

import (
	"net/http"

	"github.com/Rakhulsr/figurine-shop/app/handlers"
	"github.com/Rakhulsr/figurine-shop/app/services"
)

// UpdateCredentials replaces the admin username and password.
func (h *AdminHandler) UpdateCredentials(w http.ResponseWriter, r *http.Request) {
	var form services.CredentialsInput
	if err := handlers.DecodeJSON(r, &form); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	if err := h.auth.SetCredentials(r.Context(), form); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
