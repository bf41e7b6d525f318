package services

import (
	"storefront/entity"

	"github.com/shopspring/decimal"
)

// ComputeTotal sums the price of every occurrence. Totals are always derived
// from the full sequence, never patched incrementally.
func ComputeTotal(items []entity.Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return total
}
