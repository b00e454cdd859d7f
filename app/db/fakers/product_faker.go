package fakers

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/Rakhulsr/figurine-shop/app/utils/calc"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

var (
	categoryNames = []string{"Scale Figures", "Nendoroids", "Busts", "Statues", "Model Kits", "Plushies"}
	sizeSets      = [][]string{nil, nil, {"S", "M", "L"}, {"1/7", "1/4"}}
	featurePool   = []string{"Hand painted", "Limited edition", "Includes base", "Interchangeable parts", "Certificate of authenticity"}
)

func CategoryFaker(i int) *models.Category {
	name := categoryNames[i%len(categoryNames)]
	if i >= len(categoryNames) {
		name = fmt.Sprintf("%s %d", name, i/len(categoryNames)+1)
	}
	return &models.Category{
		Name:        name,
		Slug:        slug.Make(name),
		Description: faker.Sentence(),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/600/400", slug.Make(name)),
	}
}

func ProductFaker(category *models.Category) *models.Product {
	name := strings.TrimSuffix(faker.Name(), ".") + " Figure"
	original := fakePrice()

	var discount *decimal.Decimal
	price := original
	if rand.Intn(3) == 0 {
		d := decimal.NewFromInt(int64(5 * (rand.Intn(6) + 1)))
		discount = &d
		price = calc.DiscountedPrice(original, d)
	}

	numImages := rand.Intn(3) + 1
	images := make(models.StringList, numImages)
	seed := uuid.NewString()[:8]
	for i := range images {
		images[i] = fmt.Sprintf("https://picsum.photos/seed/%s-%d/800/800", seed, i)
	}

	features := make(models.StringList, 0, 2)
	for _, idx := range rand.Perm(len(featurePool))[:2] {
		features = append(features, featurePool[idx])
	}

	stock := rand.Intn(20)
	return &models.Product{
		Name:          name,
		Slug:          slug.Make(name + "-" + seed[:6]),
		Description:   faker.Paragraph(),
		Price:         price,
		OriginalPrice: &original,
		Discount:      discount,
		Images:        images,
		CategoryID:    category.ID,
		InStock:       stock > 0,
		Stock:         stock,
		Features:      features,
		Sizes:         models.StringList(sizeSets[rand.Intn(len(sizeSets))]),
	}
}

func fakePrice() decimal.Decimal {
	return decimal.NewFromInt(int64(rand.Intn(49000) + 1000)).Div(decimal.NewFromInt(100))
}
