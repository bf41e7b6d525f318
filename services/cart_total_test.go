package services

import (
	"testing"

	"storefront/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	round := entity.Item{Price: dec("2.99")}
	square := entity.Item{Price: dec("1.99")}
	cent := entity.Item{Price: dec("0.01")}

	tests := []struct {
		name  string
		items []entity.Item
		want  decimal.Decimal
	}{
		{"empty", nil, decimal.Zero},
		{"single", []entity.Item{round}, dec("2.99")},
		{"repeated", []entity.Item{round, round, round}, dec("8.97")},
		{"mixed", []entity.Item{round, square, round}, dec("7.97")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(ComputeTotal(tt.items)), "got %s", ComputeTotal(tt.items))
		})
	}

	t.Run("no drift over many cents", func(t *testing.T) {
		items := make([]entity.Item, 1000)
		for i := range items {
			items[i] = cent
		}
		assert.Equal(t, "10.00", ComputeTotal(items).StringFixed(2))
	})
}
