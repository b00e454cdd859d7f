package calc

import (
	"time"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/shopspring/decimal"
)

const BreakdownMonths = 6

type MonthSummary struct {
	Month   time.Time       `json:"month"`
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
	Charges decimal.Decimal `json:"charges"`
	Profit  decimal.Decimal `json:"profit"`
}

type FinancialSummary struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalCharges     decimal.Decimal `json:"totalCharges"`
	TotalInvestments decimal.Decimal `json:"totalInvestments"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	Monthly          []MonthSummary  `json:"monthly"`
}

// Summarize computes ledger totals and the trailing six calendar months ending with now's
// month. Monthly profit is revenue minus charges; investments only count in NetProfit.
func Summarize(revenues []models.Revenue, charges []models.Charge, investments []models.Investment, now time.Time) FinancialSummary {
	s := FinancialSummary{
		TotalRevenue:     decimal.Zero,
		TotalCharges:     decimal.Zero,
		TotalInvestments: decimal.Zero,
	}
	for _, r := range revenues {
		s.TotalRevenue = s.TotalRevenue.Add(r.Amount)
	}
	for _, c := range charges {
		s.TotalCharges = s.TotalCharges.Add(c.Amount)
	}
	for _, i := range investments {
		s.TotalInvestments = s.TotalInvestments.Add(i.Amount)
	}
	s.NetProfit = s.TotalRevenue.Sub(s.TotalCharges).Sub(s.TotalInvestments)

	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for offset := BreakdownMonths - 1; offset >= 0; offset-- {
		start := currentMonth.AddDate(0, -offset, 0)
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

		month := MonthSummary{
			Month:   start,
			Label:   start.Format("Jan 2006"),
			Revenue: decimal.Zero,
			Charges: decimal.Zero,
		}
		for _, r := range revenues {
			if within(r.Date, start, end) {
				month.Revenue = month.Revenue.Add(r.Amount)
			}
		}
		for _, c := range charges {
			if within(c.Date, start, end) {
				month.Charges = month.Charges.Add(c.Amount)
			}
		}
		month.Profit = month.Revenue.Sub(month.Charges)
		s.Monthly = append(s.Monthly, month)
	}
	return s
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
