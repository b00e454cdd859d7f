package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/Rakhulsr/figurine-shop/app/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		&services.ValidationError{Fields: map[string]string{"name": "name is required."}}: http.StatusBadRequest,
		fmt.Errorf("product p1: %w", services.ErrNotFound):                                http.StatusNotFound,
		fmt.Errorf("category c1: %w", services.ErrCategoryInUse):                          http.StatusConflict,
		fmt.Errorf("x: %w", services.ErrInvalidTransition):                                http.StatusConflict,
		services.ErrInvalidCredentials:                                                    http.StatusUnauthorized,
		services.ErrNoCredentials:                                                         http.StatusUnauthorized,
		errors.New("connection reset"):                                                    http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, StatusFor(err), err.Error())
	}
}

func TestFiltersFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products?category=c1&q=miku&in_stock=1&max_price=99.5&sort=price_desc", nil)
	f, err := FiltersFromQuery(req)
	require.NoError(t, err)

	assert.Equal(t, "c1", f.CategoryID)
	assert.Equal(t, "miku", f.Search)
	assert.True(t, f.InStockOnly)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, "99.5", f.MaxPrice.String())
	assert.Equal(t, state.SortPriceDesc, f.Sort)

	for _, bad := range []string{"in_stock=maybe", "max_price=cheap", "sort=alphabetical"} {
		_, err := FiltersFromQuery(httptest.NewRequest(http.MethodGet, "/api/products?"+bad, nil))
		assert.ErrorIs(t, err, services.ErrValidation, bad)
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"a","admin":true}`))
	var form services.ContactInput
	assert.ErrorIs(t, DecodeJSON(req, &form), services.ErrValidation)
}
