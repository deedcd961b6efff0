package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		lines    []CartLine
		rate     string
		subtotal string
		tax      string
		total    int64
	}{
		{
			name:     "empty cart",
			rate:     "0.18",
			subtotal: "0",
			tax:      "0",
			total:    0,
		},
		{
			name:     "captured price wins",
			lines:    []CartLine{{ProductID: "p1", Quantity: 2, PriceAtAdd: 500, Product: &Product{Price: 900}}},
			rate:     "0.18",
			subtotal: "1000",
			tax:      "180",
			total:    1180,
		},
		{
			name:     "falls back to product price",
			lines:    []CartLine{{ProductID: "p1", Quantity: 1, Product: &Product{Price: 249.5}}},
			rate:     "0.18",
			subtotal: "249.5",
			tax:      "44.91",
			total:    294,
		},
		{
			name:     "half rounds up",
			lines:    []CartLine{{ProductID: "p1", Quantity: 1, PriceAtAdd: 12.5}},
			rate:     "0",
			subtotal: "12.5",
			tax:      "0",
			total:    13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.lines, decimal.RequireFromString(tt.rate))

			assert.True(t, decimal.RequireFromString(tt.subtotal).Equal(got.Subtotal), "subtotal %s", got.Subtotal)
			assert.True(t, decimal.RequireFromString(tt.tax).Equal(got.Tax), "tax %s", got.Tax)
			assert.Equal(t, tt.total, got.Total)
		})
	}
}

func TestSelectDefault(t *testing.T) {
	_, ok := SelectDefault(nil)
	assert.False(t, ok)

	addr, ok := SelectDefault([]Address{{ID: "A"}, {ID: "B"}})
	assert.True(t, ok)
	assert.Equal(t, "A", addr.ID)

	addr, _ = SelectDefault([]Address{{ID: "A"}, {ID: "B", IsDefault: true}})
	assert.Equal(t, "B", addr.ID)
}

func TestNewCartDropsEmptyLines(t *testing.T) {
	cart := NewCart([]CartLine{{ProductID: "p1", Quantity: 3}, {ProductID: "p2", Quantity: 0}})

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.ItemCount())
	assert.False(t, cart.IsEmpty())
}

func TestProductDiscountPercent(t *testing.T) {
	assert.Equal(t, 25, Product{Price: 750, OriginalPrice: 1000}.DiscountPercent())
	assert.Equal(t, 0, Product{Price: 750}.DiscountPercent())
}
