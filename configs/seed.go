package configs

import (
	"context"

	"storefront/entity"
	"storefront/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultItems is the starter catalog.
func DefaultItems() []entity.Item {
	return []entity.Item{
		{Name: "Round Widget", Price: decimal.RequireFromString("2.99"), Description: "A widget that is round"},
		{Name: "Square Widget", Price: decimal.RequireFromString("1.99"), Description: "A widget that is square"},
	}
}

// SeedItems inserts the starter catalog; existing names are left alone.
func SeedItems(ctx context.Context, seeder repository.CatalogSeeder, log *zap.Logger) error {
	items := DefaultItems()
	if err := seeder.SeedItems(ctx, items); err != nil {
		return err
	}
	log.Info("catalog seeded", zap.Int("items", len(items)))
	return nil
}
