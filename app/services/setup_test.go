package services

import (
	"context"
	"testing"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/Rakhulsr/figurine-shop/app/models/migrations"
	"github.com/Rakhulsr/figurine-shop/app/repositories"
	"github.com/Rakhulsr/figurine-shop/app/state"
	"github.com/Rakhulsr/figurine-shop/app/storage"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	db           *gorm.DB
	store        *state.Store
	local        *storage.MemoryStore
	feed         *repositories.MemoryChangeFeed
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	messageRepo  repositories.MessageRepositoryImpl
	settingsRepo repositories.SettingsRepositoryImpl
	sync         *SyncService
	catalog      *CatalogService
	cart         *CartService
	ledger       *LedgerService
	orders       *OrderService
	auth         *AuthService
}

func openTestDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if migrate {
		require.NoError(t, migrations.AutoMigrate(db))
	}
	return db
}

// newTestEnv wires every service against an in-memory database and starts syncing.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		db:    openTestDB(t, true),
		store: state.NewStore(),
		local: storage.NewMemoryStore(),
		feed:  repositories.NewMemoryChangeFeed(),
	}
	env.productRepo = repositories.NewProductRepository(env.db, env.feed)
	env.categoryRepo = repositories.NewCategoryRepository(env.db, env.feed)
	env.messageRepo = repositories.NewMessageRepository(env.db, env.feed)
	env.settingsRepo = repositories.NewSettingsRepository(env.db)

	env.sync = NewSyncService(env.store, env.local, env.productRepo, env.categoryRepo, env.messageRepo)
	env.catalog = NewCatalogService(env.store, env.productRepo, env.categoryRepo)
	env.cart = NewCartService(env.store, env.local, env.messageRepo)
	env.cart.now = func() time.Time { return fixedNow }
	env.ledger = NewLedgerService(env.store, env.local)
	env.ledger.now = func() time.Time { return fixedNow }
	env.orders = NewOrderService(env.store, env.local, env.messageRepo, env.productRepo, env.ledger, nil)
	env.orders.now = func() time.Time { return fixedNow }
	env.auth = NewAuthService(env.store, env.local, env.settingsRepo)

	require.NoError(t, env.sync.Start(context.Background()))
	t.Cleanup(env.sync.Close)
	return env
}

func (env *testEnv) addCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category, err := env.catalog.AddCategory(context.Background(), CategoryInput{Name: name})
	require.NoError(t, err)
	return category
}

func (env *testEnv) addProduct(t *testing.T, name, price string, categoryID string, sizes ...string) *models.Product {
	t.Helper()
	product, err := env.catalog.AddProduct(context.Background(), ProductInput{
		Name:          name,
		OriginalPrice: decimal.RequireFromString(price),
		Images:        []string{"https://img.example/" + name + ".jpg"},
		CategoryID:    categoryID,
		InStock:       true,
		Stock:         5,
		Sizes:         sizes,
	})
	require.NoError(t, err)
	return product
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
