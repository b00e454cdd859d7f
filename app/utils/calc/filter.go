package calc

import (
	"sort"
	"strings"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/Rakhulsr/figurine-shop/app/state"
)

// FilterProducts applies the storefront filters with a linear scan. The input order
// (newest first) is kept unless a price sort is requested.
func FilterProducts(products []models.Product, f state.Filters) []models.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case state.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case state.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	}
	return out
}
