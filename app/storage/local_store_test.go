package storage

import (
	"testing"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_MissingKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var charges []models.Charge
	found, err := s.Load(KeyCharges, &charges)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, charges)
}

func TestFileStore_RoundTripKeepsDates(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	date := time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)
	in := []models.Charge{{
		ID:        "c1",
		Title:     "Resin",
		Category:  models.ChargeMaterials,
		Amount:    decimal.RequireFromString("42.50"),
		Date:      date,
		CreatedAt: date,
	}}
	require.NoError(t, s.Save(KeyCharges, in))

	var out []models.Charge
	found, err := s.Load(KeyCharges, &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, out, 1)
	assert.True(t, out[0].Date.Equal(date))
	assert.True(t, out[0].Amount.Equal(decimal.RequireFromString("42.5")))
	assert.Equal(t, models.ChargeMaterials, out[0].Category)
}

func TestFileStore_OverwriteAndBadKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	key := CartKey("3f1c2b9e-7d4a-4e0b-9a51-2c8d6f0e1a77")
	require.NoError(t, s.Save(key, []models.CartItem{{ID: "a", Quantity: 1}}))
	require.NoError(t, s.Save(key, []models.CartItem{}))

	var cart []models.CartItem
	found, err := s.Load(key, &cart)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, cart)

	assert.Error(t, s.Save("../escape", 1))
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Save(KeyAdminCredentials, models.AdminCredentials{Username: "admin", PasswordHash: "h"}))

	var creds models.AdminCredentials
	found, err := s.Load(KeyAdminCredentials, &creds)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "admin", creds.Username)
}
