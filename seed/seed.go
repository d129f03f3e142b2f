// Package seed loads a small sample catalog for development environments.
package seed

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/merchkit/catalog/app/catalog"
	"github.com/merchkit/catalog/app/categories"
)

// Run inserts the sample categories and products through the services, so
// the same association and batching paths the application uses get
// exercised. Running it twice duplicates the data; slugs are not unique.
func Run(ctx context.Context, categorySvc *categories.CategoryService, productSvc *catalog.ProductService, log zerolog.Logger) error {
	cats, err := categorySvc.CreateMany(ctx, []categories.CategoryInput{
		{Name: "Electronics", Slug: "electronics"},
		{Name: "Sports", Slug: "sports"},
		{Name: "Wellness", Slug: "wellness"},
	})
	if err != nil {
		return err
	}
	log.Info().Int("count", len(cats)).Msg("seeded categories")

	products, err := productSvc.CreateMany(ctx, []catalog.ProductInput{
		{
			Name:        "Wireless Headphones",
			Slug:        "wireless-headphones",
			Description: "Premium over-ear wireless headphones with active noise cancellation and long battery life.",
			Price:       decimal.NewFromFloat(249.99),
			CategoryIDs: []uint{cats[0].ID},
		},
		{
			Name:        "Running Shoes",
			Slug:        "running-shoes",
			Description: "Lightweight and cushioned running shoes designed for comfort and high performance.",
			Price:       decimal.NewFromFloat(129.99),
			CategoryIDs: []uint{cats[1].ID},
		},
		{
			Name:        "Yoga Mat Premium",
			Slug:        "yoga-mat-premium",
			Description: "Extra-thick, non-slip yoga mat made from eco-friendly materials for ultimate comfort.",
			Price:       decimal.NewFromFloat(44.99),
			CategoryIDs: []uint{cats[1].ID, cats[2].ID},
		},
	})
	if err != nil {
		return err
	}
	log.Info().Int("count", len(products)).Msg("seeded products")

	return nil
}
