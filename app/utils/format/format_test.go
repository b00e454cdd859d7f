package format

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	assert.Equal(t, "125.00", Amount(decimal.NewFromInt(125)))
	assert.Equal(t, "0.50", Amount(decimal.RequireFromString("0.5")))
}

func TestWriteChargesCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteChargesCSV(&buf, []models.Charge{{
		Title:    "Printer, resin",
		Category: models.ChargeMachine,
		Amount:   decimal.RequireFromString("199.9"),
		Date:     time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Title,Category,Amount,Notes", lines[0])
	assert.Equal(t, `2026-02-03,"Printer, resin",Machine,199.90,`, lines[1])
}

func TestWriteRevenuesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRevenuesCSV(&buf, []models.Revenue{{
		Category: "Order",
		Source:   models.RevenueFromOrder,
		OrderID:  "o1",
		Amount:   decimal.NewFromInt(250),
		Date:     time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
	}}))
	assert.Contains(t, buf.String(), "2026-10-01,Order,order,,o1,250.00")
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "charges_2026-10-19.csv", ExportFileName("charges", time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)))
}

func TestPrice(t *testing.T) {
	assert.Equal(t, "€1,250.00", Price(decimal.NewFromInt(1250)))
}
