package repositories

import (
	"context"
	"fmt"
	"log"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	GetAll(ctx context.Context) []models.Category
	Add(ctx context.Context, category *models.Category) (string, error)
	Update(ctx context.Context, id string, patch models.CategoryPatch) error
	Delete(ctx context.Context, id string) error
	Subscribe(ctx context.Context, cb func([]models.Category)) (func(), error)
}

type categoryRepository struct {
	db   *gorm.DB
	feed ChangeFeed
}

func NewCategoryRepository(db *gorm.DB, feed ChangeFeed) CategoryRepositoryImpl {
	return &categoryRepository{db: db, feed: feed}
}

func (r *categoryRepository) list(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) []models.Category {
	categories, err := r.list(ctx)
	if err != nil {
		log.Printf("CategoryRepository.GetAll: failed to fetch categories: %v", err)
		return []models.Category{}
	}
	return categories
}

func (r *categoryRepository) Add(ctx context.Context, category *models.Category) (string, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return "", fmt.Errorf("failed to add category: %w", err)
	}
	publishChange(ctx, r.feed, CollectionCategories)
	return category.ID, nil
}

func (r *categoryRepository) Update(ctx context.Context, id string, patch models.CategoryPatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return fmt.Errorf("failed to update category %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	publishChange(ctx, r.feed, CollectionCategories)
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	publishChange(ctx, r.feed, CollectionCategories)
	return nil
}

func (r *categoryRepository) Subscribe(ctx context.Context, cb func([]models.Category)) (func(), error) {
	return subscribe(ctx, r.feed, CollectionCategories, r.list, cb)
}
