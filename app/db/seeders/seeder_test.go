package seeders

import (
	"context"
	"testing"

	"github.com/Rakhulsr/figurine-shop/app/models/migrations"
	"github.com/Rakhulsr/figurine-shop/app/repositories"
	"github.com/Rakhulsr/figurine-shop/app/utils/calc"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestDBSeed(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migrations.AutoMigrate(db))

	ctx := context.Background()
	categoryRepo := repositories.NewCategoryRepository(db, nil)
	productRepo := repositories.NewProductRepository(db, nil)

	require.NoError(t, DBSeed(ctx, categoryRepo, productRepo, 3, 4))

	categories := categoryRepo.GetAll(ctx)
	products := productRepo.GetAll(ctx)
	assert.Len(t, categories, 3)
	assert.Len(t, products, 12)

	for _, p := range products {
		assert.NotEmpty(t, p.Images)
		assert.NotEmpty(t, p.CategoryID)
		assert.Equal(t, p.Stock > 0, p.InStock)
		require.NotNil(t, p.OriginalPrice)
		if p.Discount != nil {
			assert.True(t, p.Price.Equal(calc.DiscountedPrice(*p.OriginalPrice, *p.Discount)), p.Name)
		} else {
			assert.True(t, p.Price.Equal(*p.OriginalPrice), p.Name)
		}
	}
}
