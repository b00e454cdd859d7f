package admin

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/handlers"
	"github.com/Rakhulsr/figurine-shop/app/helpers"
	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/Rakhulsr/figurine-shop/app/utils/calc"
	"github.com/Rakhulsr/figurine-shop/app/utils/format"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render  *render.Render
	catalog *services.CatalogService
	orders  *services.OrderService
	ledger  *services.LedgerService
	auth    *services.AuthService
	now     func() time.Time
}

func NewAdminHandler(
	render *render.Render,
	catalog *services.CatalogService,
	orders *services.OrderService,
	ledger *services.LedgerService,
	auth *services.AuthService,
) *AdminHandler {
	return &AdminHandler{
		render:  render,
		catalog: catalog,
		orders:  orders,
		ledger:  ledger,
		auth:    auth,
		now:     time.Now,
	}
}

type DashboardData struct {
	Admin          string                `json:"admin"`
	ProductCount   int                   `json:"productCount"`
	UnreadMessages int                   `json:"unreadMessages"`
	PendingOrders  int                   `json:"pendingOrders"`
	Finance        calc.FinancialSummary `json:"finance"`
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	admin, _ := r.Context().Value(helpers.ContextKeyAdmin).(string)
	data := DashboardData{
		Admin:        admin,
		ProductCount: len(h.catalog.AllProducts()),
		Finance:      h.ledger.Summary(h.now()),
	}
	for _, m := range h.orders.Messages() {
		if !m.Read {
			data.UnreadMessages++
		}
		if m.OrderStatus == models.OrderStatusPending {
			data.PendingOrders++
		}
	}
	h.render.JSON(w, http.StatusOK, data)
}

func (h *AdminHandler) FinanceSummary(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.ledger.Summary(h.now()))
}

// ExportLedger streams one ledger as a CSV attachment.
func (h *AdminHandler) ExportLedger(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	switch kind {
	case "charges", "investments", "revenues":
	default:
		handlers.RespondError(h.render, w, r, &services.ValidationError{
			Fields: map[string]string{"kind": "kind must be one of charges investments revenues"},
		})
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.ExportFileName(kind, h.now())))
	if err := h.ledger.Export(kind, w); err != nil {
		handlers.RespondError(h.render, w, r, err)
	}
}
