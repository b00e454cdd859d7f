package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rakhulsr/figurine-shop/app/helpers"
	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/Rakhulsr/figurine-shop/app/repositories"
	"github.com/Rakhulsr/figurine-shop/app/state"
	"github.com/Rakhulsr/figurine-shop/app/utils/calc"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ProductInput struct {
	Name          string           `json:"name" validate:"required,max=255"`
	Description   string           `json:"description"`
	OriginalPrice decimal.Decimal  `json:"originalPrice"`
	Discount      *decimal.Decimal `json:"discount"`
	Images        []string         `json:"images" validate:"required,min=1,dive,required"`
	CategoryID    string           `json:"category" validate:"required"`
	InStock       bool             `json:"inStock"`
	Stock         int              `json:"stockQuantity" validate:"gte=0"`
	Features      []string         `json:"features"`
	Sizes         []string         `json:"sizes" validate:"dive,required"`
}

type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	ImageURL    string `json:"image" validate:"omitempty,url"`
}

type CatalogService struct {
	store        *state.Store
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	validate     *validator.Validate
}

func NewCatalogService(store *state.Store, productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl) *CatalogService {
	return &CatalogService{
		store:        store,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		validate:     validator.New(),
	}
}

// pricing returns the selling price and the discount to store, keeping the discount invariant.
func (in ProductInput) pricing() (decimal.Decimal, *decimal.Decimal, error) {
	if !in.OriginalPrice.IsPositive() {
		return decimal.Zero, nil, fieldError("originalPrice", "originalPrice must be greater than zero")
	}
	if in.Discount == nil || !in.Discount.IsPositive() {
		return in.OriginalPrice, nil, nil
	}
	if in.Discount.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return decimal.Zero, nil, fieldError("discount", "discount must be below 100")
	}
	discount := *in.Discount
	return calc.DiscountedPrice(in.OriginalPrice, discount), &discount, nil
}

func (s *CatalogService) checkProduct(in ProductInput) error {
	if err := validateStruct(s.validate, in); err != nil {
		return err
	}
	_, _, err := in.pricing()
	return err
}

// Products returns the catalog narrowed by f; f becomes the device's filter selection.
func (s *CatalogService) Products(deviceID string, f state.Filters) []models.Product {
	s.store.Dispatch(state.SetFilters{DeviceID: deviceID, Filters: f})
	return calc.FilterProducts(s.store.Snapshot().Products, f)
}

func (s *CatalogService) AllProducts() []models.Product {
	return s.store.Snapshot().Products
}

func (s *CatalogService) ProductByID(id string) (models.Product, error) {
	product, ok := s.store.Snapshot().ProductByID(id)
	if !ok {
		return models.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return product, nil
}

func (s *CatalogService) Categories() []models.Category {
	return s.store.Snapshot().Categories
}

func (s *CatalogService) AddProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := s.checkProduct(in); err != nil {
		return nil, err
	}
	price, discount, _ := in.pricing()
	original := in.OriginalPrice

	product := &models.Product{
		Name:          strings.TrimSpace(in.Name),
		Slug:          helpers.GenerateSlug(in.Name),
		Description:   in.Description,
		Price:         price,
		OriginalPrice: &original,
		Discount:      discount,
		Images:        models.StringList(in.Images),
		CategoryID:    in.CategoryID,
		InStock:       in.InStock,
		Stock:         in.Stock,
		Features:      models.StringList(in.Features),
		Sizes:         models.StringList(in.Sizes),
	}
	if _, err := s.productRepo.Add(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ProductInput) error {
	if err := s.checkProduct(in); err != nil {
		return err
	}
	price, discount, _ := in.pricing()

	name := strings.TrimSpace(in.Name)
	slug := helpers.GenerateSlug(in.Name)
	original := in.OriginalPrice
	images := models.StringList(in.Images)
	features := models.StringList(in.Features)
	sizes := models.StringList(in.Sizes)
	patch := models.ProductPatch{
		Name:          &name,
		Slug:          &slug,
		Description:   &in.Description,
		Price:         &price,
		OriginalPrice: &original,
		Discount:      discount,
		ClearDiscount: discount == nil,
		Images:        &images,
		CategoryID:    &in.CategoryID,
		InStock:       &in.InStock,
		Stock:         &in.Stock,
		Features:      &features,
		Sizes:         &sizes,
	}
	return s.productRepo.Update(ctx, id, patch)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *CatalogService) AddCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	category := &models.Category{
		Name:        strings.TrimSpace(in.Name),
		Slug:        helpers.GenerateSlug(in.Name),
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	if _, err := s.categoryRepo.Add(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, in CategoryInput) error {
	if err := validateStruct(s.validate, in); err != nil {
		return err
	}
	name := strings.TrimSpace(in.Name)
	slug := helpers.GenerateSlug(in.Name)
	patch := models.CategoryPatch{
		Name:        &name,
		Slug:        &slug,
		Description: &in.Description,
		ImageURL:    &in.ImageURL,
	}
	return s.categoryRepo.Update(ctx, id, patch)
}

// DeleteCategory refuses while any product in the current snapshot still points at the category.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	for _, p := range s.store.Snapshot().Products {
		if p.CategoryID == id {
			return fmt.Errorf("category %s: %w", id, ErrCategoryInUse)
		}
	}
	return s.categoryRepo.Delete(ctx, id)
}
