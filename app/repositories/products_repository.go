package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	Probe(ctx context.Context) error
	GetAll(ctx context.Context) []models.Product
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Add(ctx context.Context, product *models.Product) (string, error)
	Update(ctx context.Context, id string, patch models.ProductPatch) error
	Delete(ctx context.Context, id string) error
	Subscribe(ctx context.Context, cb func([]models.Product)) (func(), error)
}

type productRepository struct {
	db   *gorm.DB
	feed ChangeFeed
}

func NewProductRepository(db *gorm.DB, feed ChangeFeed) ProductRepositoryImpl {
	return &productRepository{db: db, feed: feed}
}

func (r *productRepository) list(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Probe(ctx context.Context) error {
	_, err := r.list(ctx)
	return err
}

func (r *productRepository) GetAll(ctx context.Context) []models.Product {
	products, err := r.list(ctx)
	if err != nil {
		log.Printf("ProductRepository.GetAll: failed to fetch products: %v", err)
		return []models.Product{}
	}
	return products
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Add(ctx context.Context, product *models.Product) (string, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return "", fmt.Errorf("failed to add product: %w", err)
	}
	publishChange(ctx, r.feed, CollectionProducts)
	return product.ID, nil
}

func (r *productRepository) Update(ctx context.Context, id string, patch models.ProductPatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return fmt.Errorf("failed to update product %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	publishChange(ctx, r.feed, CollectionProducts)
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	publishChange(ctx, r.feed, CollectionProducts)
	return nil
}

func (r *productRepository) Subscribe(ctx context.Context, cb func([]models.Product)) (func(), error) {
	return subscribe(ctx, r.feed, CollectionProducts, r.list, cb)
}
