package handlers

import (
	"net/http"
	"strconv"

	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/Rakhulsr/figurine-shop/app/state"
	"github.com/Rakhulsr/figurine-shop/app/utils/sessions"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	render       *render.Render
	catalog      *services.CatalogService
	sessionStore sessions.SessionStore
}

func NewProductHandler(r *render.Render, catalog *services.CatalogService, sessionStore sessions.SessionStore) *ProductHandler {
	return &ProductHandler{render: r, catalog: catalog, sessionStore: sessionStore}
}

// FiltersFromQuery reads category, q, in_stock, max_price and sort.
func FiltersFromQuery(r *http.Request) (state.Filters, error) {
	q := r.URL.Query()
	f := state.Filters{
		CategoryID: q.Get("category"),
		Search:     q.Get("q"),
		Sort:       state.PriceSort(q.Get("sort")),
	}
	if raw := q.Get("in_stock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			return f, &services.ValidationError{Fields: map[string]string{"in_stock": "in_stock must be true or false"}}
		}
		f.InStockOnly = inStock
	}
	if raw := q.Get("max_price"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return f, &services.ValidationError{Fields: map[string]string{"max_price": "max_price must be a number"}}
		}
		f.MaxPrice = &maxPrice
	}
	switch f.Sort {
	case state.SortNewest, state.SortPriceAsc, state.SortPriceDesc:
	default:
		return f, &services.ValidationError{Fields: map[string]string{"sort": "sort must be price_asc or price_desc"}}
	}
	return f, nil
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filters, err := FiltersFromQuery(r)
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	deviceID, err := h.sessionStore.GetDeviceID(w, r)
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, h.catalog.Products(deviceID, filters))
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.ProductByID(mux.Vars(r)["id"])
	if err != nil {
		RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.catalog.Categories())
}
