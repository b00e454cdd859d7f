package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/configs"
	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/Rakhulsr/figurine-shop/app/models/migrations"
	"github.com/Rakhulsr/figurine-shop/app/repositories"
	"github.com/Rakhulsr/figurine-shop/app/storage"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGenerateKeysCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "keys.env")
	var stdout bytes.Buffer

	app := NewApp(configs.ENV{}, &stdout)
	require.NoError(t, app.Run(context.Background(), []string{"figurine-shop", "generate-keys", "--out", out}))
	assert.Contains(t, stdout.String(), "APP_AUTH_KEY=")
	assert.Contains(t, stdout.String(), "APP_ENC_KEY=")
}

func TestExportLedgerCommand(t *testing.T) {
	dir := t.TempDir()
	local, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, local.Save(storage.KeyRevenues, []models.Revenue{{
		ID: "r1", Category: "Order", Amount: decimal.RequireFromString("99.9"),
		Date: time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC), Source: models.RevenueFromOrder,
		OrderID: "o1", ProductName: "Pochita",
	}}))

	var stdout bytes.Buffer
	app := NewApp(configs.ENV{LocalStoreDir: dir}, &stdout)
	require.NoError(t, app.Run(context.Background(), []string{"figurine-shop", "export-ledger", "--kind", "revenues"}))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2026-05-04,Order,order,Pochita,o1,99.90", lines[1])
}

func TestSetAdmin(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migrations.AutoMigrate(db))

	local := storage.NewMemoryStore()
	require.NoError(t, setAdmin(context.Background(), db, local, "owner", "long-enough"))

	creds, err := repositories.NewSettingsRepository(db).GetAdminCredentials(context.Background())
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "owner", creds.Username)

	var saved models.AdminCredentials
	found, err := local.Load(storage.KeyAdminCredentials, &saved)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, creds.PasswordHash, saved.PasswordHash)

	assert.Error(t, setAdmin(context.Background(), db, local, "owner", "short"))
}
