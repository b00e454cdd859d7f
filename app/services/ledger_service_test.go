package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/Rakhulsr/figurine-shop/app/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_AddDeleteAndPersist(t *testing.T) {
	env := newTestEnv(t)

	charge, err := env.ledger.AddCharge(ChargeInput{Title: "Resin", Category: models.ChargeMaterials, Amount: dec("40")})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, charge.Date)

	investment, err := env.ledger.AddInvestment(InvestmentInput{Title: "3D printer", Amount: dec("900"), Date: fixedNow.AddDate(0, -1, 0)})
	require.NoError(t, err)

	_, err = env.ledger.AddRevenue(RevenueInput{Category: "Market stall", Amount: dec("150")})
	require.NoError(t, err)

	var charges []models.Charge
	found, err := env.local.Load(storage.KeyCharges, &charges)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, charges, 1)
	assert.True(t, charges[0].Date.Equal(fixedNow))

	require.NoError(t, env.ledger.DeleteCharge(charge.ID))
	require.NoError(t, env.ledger.DeleteInvestment(investment.ID))
	assert.Empty(t, env.ledger.Charges())
	assert.Empty(t, env.ledger.Investments())
	assert.Len(t, env.ledger.Revenues(), 1)

	found, err = env.local.Load(storage.KeyCharges, &charges)
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, charges)

	assert.ErrorIs(t, env.ledger.DeleteCharge(charge.ID), ErrNotFound)
	assert.ErrorIs(t, env.ledger.DeleteRevenue("missing"), ErrNotFound)
}

func TestLedgerService_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ledger.AddCharge(ChargeInput{Title: "Tape", Category: "Snacks", Amount: dec("1")})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = env.ledger.AddCharge(ChargeInput{Title: "Tape", Category: models.ChargeOther, Amount: dec("-1")})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = env.ledger.AddInvestment(InvestmentInput{Amount: dec("10")})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = env.ledger.AddRevenue(RevenueInput{Category: "Fair"})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Empty(t, env.ledger.Charges())
}

func TestLedgerService_RecordOrderRevenueOnce(t *testing.T) {
	env := newTestEnv(t)
	price := dec("33.30")
	order := models.Message{ID: "o1", ProductName: "Kirby", OrderPrice: &price, OrderStatus: models.OrderStatusConfirmed}

	_, created := env.ledger.RecordOrderRevenue(order)
	assert.True(t, created)
	_, created = env.ledger.RecordOrderRevenue(order)
	assert.False(t, created)
	assert.Len(t, env.ledger.Revenues(), 1)

	free := models.Message{ID: "o2", OrderStatus: models.OrderStatusConfirmed}
	_, created = env.ledger.RecordOrderRevenue(free)
	assert.False(t, created)

	assert.True(t, env.ledger.RemoveOrderRevenue("o1"))
	assert.False(t, env.ledger.RemoveOrderRevenue("o1"))
}

func TestLedgerService_Summary(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ledger.AddRevenue(RevenueInput{Category: "Sales", Amount: dec("500"), Date: fixedNow})
	require.NoError(t, err)
	_, err = env.ledger.AddCharge(ChargeInput{Title: "Paint", Category: models.ChargeMaterials, Amount: dec("120"), Date: fixedNow})
	require.NoError(t, err)
	_, err = env.ledger.AddInvestment(InvestmentInput{Title: "Kiln", Amount: dec("200"), Date: fixedNow})
	require.NoError(t, err)

	summary := env.ledger.Summary(fixedNow)
	assert.True(t, summary.NetProfit.Equal(dec("180")), summary.NetProfit.String())
	require.Len(t, summary.Monthly, 6)
	current := summary.Monthly[len(summary.Monthly)-1]
	assert.True(t, current.Profit.Equal(dec("380")), current.Profit.String())
}

func TestLedgerService_Export(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.ledger.AddCharge(ChargeInput{
		Title: "Shipping boxes", Category: models.ChargeLogistics, Amount: dec("18.5"),
		Date: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.ledger.Export("charges", &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Shipping boxes")
	assert.Contains(t, lines[1], "18.50")

	assert.ErrorIs(t, env.ledger.Export("salaries", &buf), ErrValidation)
}
