package middlewares

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/helpers"
	"github.com/Rakhulsr/figurine-shop/app/utils/sessions"
	"github.com/unrolled/render"
)

// AdminAuthMiddleware lets a request through only with a logged-in admin session and puts the
// admin username in the request context.
func AdminAuthMiddleware(sessionStore sessions.SessionStore, rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username := sessionStore.GetAdmin(r)
			if username == "" {
				log.Printf("AdminAuthMiddleware: rejected %s %s without admin session", r.Method, r.URL.Path)
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "admin login required"})
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyAdmin, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestTimeout bounds every remote call made while serving a request.
func RequestTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
