package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/unrolled/render"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// StatusFor maps service errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrCategoryInUse), errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrNoCredentials):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func RespondError(rnd *render.Render, w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	resp := ErrorResponse{Error: err.Error()}

	var verr *services.ValidationError
	if errors.As(err, &verr) {
		resp.Error = services.ErrValidation.Error()
		resp.Fields = verr.Fields
	}
	if status == http.StatusInternalServerError {
		log.Printf("RespondError: %s %s: %v", r.Method, r.URL.Path, err)
		resp.Error = "internal server error"
	}
	_ = rnd.JSON(w, status, resp)
}

// DecodeJSON reads a JSON body into dst. Malformed bodies are reported as validation errors.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &services.ValidationError{Fields: map[string]string{"body": "invalid JSON body: " + err.Error()}}
	}
	return nil
}
