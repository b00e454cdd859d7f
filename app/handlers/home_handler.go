package handlers

import (
	"net/http"

	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/gorilla/csrf"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render *render.Render
	sync   *services.SyncService
}

func NewHomeHandler(r *render.Render, sync *services.SyncService) *HomeHandler {
	return &HomeHandler{render: r, sync: sync}
}

// Status reports whether the shop is serving live remote data or the local copy.
func (h *HomeHandler) Status(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]string{"sync": string(h.sync.Mode())})
}

// CSRFToken hands the token clients must echo in the X-CSRF-Token header on writes.
func (h *HomeHandler) CSRFToken(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]string{"token": csrf.Token(r)})
}
