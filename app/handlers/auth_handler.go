package handlers

import (
	"log"
	"net/http"

	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/Rakhulsr/figurine-shop/app/utils/sessions"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render       *render.Render
	auth         *services.AuthService
	sessionStore sessions.SessionStore
}

func NewAuthHandler(r *render.Render, auth *services.AuthService, sessionStore sessions.SessionStore) *AuthHandler {
	return &AuthHandler{render: r, auth: auth, sessionStore: sessionStore}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form services.LoginInput
	if err := DecodeJSON(r, &form); err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	deviceID, err := h.sessionStore.GetDeviceID(w, r)
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	session, err := h.auth.Login(r.Context(), deviceID, form)
	if err != nil {
		log.Printf("Login: failed login for %q: %v", form.Username, err)
		RespondError(h.render, w, r, err)
		return
	}
	if err := h.sessionStore.SetAdmin(w, r, session.Username); err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, session)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if deviceID, err := h.sessionStore.GetDeviceID(w, r); err == nil {
		h.auth.Logout(deviceID)
	}
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("Logout: failed to clear session: %v", err)
	}
	w.WriteHeader(http.StatusNoContent)
}
