package admin

import (
	"net/http"

	"github.com/Rakhulsr/figurine-shop/app/handlers"
	"github.com/Rakhulsr/figurine-shop/app/services"
	"github.com/gorilla/mux"
)

func (h *AdminHandler) ListCharges(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.ledger.Charges())
}

func (h *AdminHandler) AddCharge(w http.ResponseWriter, r *http.Request) {
	var form services.ChargeInput
	if err := handlers.DecodeJSON(r, &form); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	charge, err := h.ledger.AddCharge(form)
	if err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, charge)
}

func (h *AdminHandler) DeleteCharge(w http.ResponseWriter, r *http.Request) {
	h.noContentOr(w, r, h.ledger.DeleteCharge(mux.Vars(r)["id"]))
}

func (h *AdminHandler) ListInvestments(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.ledger.Investments())
}

func (h *AdminHandler) AddInvestment(w http.ResponseWriter, r *http.Request) {
	var form services.InvestmentInput
	if err := handlers.DecodeJSON(r, &form); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	investment, err := h.ledger.AddInvestment(form)
	if err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, investment)
}

func (h *AdminHandler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	h.noContentOr(w, r, h.ledger.DeleteInvestment(mux.Vars(r)["id"]))
}

func (h *AdminHandler) ListRevenues(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.ledger.Revenues())
}

func (h *AdminHandler) AddRevenue(w http.ResponseWriter, r *http.Request) {
	var form services.RevenueInput
	if err := handlers.DecodeJSON(r, &form); err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	revenue, err := h.ledger.AddRevenue(form)
	if err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, revenue)
}

func (h *AdminHandler) DeleteRevenue(w http.ResponseWriter, r *http.Request) {
	h.noContentOr(w, r, h.ledger.DeleteRevenue(mux.Vars(r)["id"]))
}

func (h *AdminHandler) noContentOr(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		handlers.RespondError(h.render, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
