package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/Rakhulsr/figurine-shop/app/db/fakers"
	"github.com/Rakhulsr/figurine-shop/app/repositories"
)

// DBSeed adds a demo catalog through the repositories so running instances pick it up.
func DBSeed(ctx context.Context, categoryRepo repositories.CategoryRepositoryImpl, productRepo repositories.ProductRepositoryImpl, categories, productsPerCategory int) error {
	for i := 0; i < categories; i++ {
		category := fakers.CategoryFaker(i)
		if _, err := categoryRepo.Add(ctx, category); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Name, err)
		}
		for j := 0; j < productsPerCategory; j++ {
			product := fakers.ProductFaker(category)
			if _, err := productRepo.Add(ctx, product); err != nil {
				return fmt.Errorf("failed to seed product %q: %w", product.Name, err)
			}
		}
		log.Printf("DBSeed: seeded %s with %d products", category.Name, productsPerCategory)
	}
	return nil
}
