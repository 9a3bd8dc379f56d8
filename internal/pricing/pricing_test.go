package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabkit/barcut/internal/model"
)

func TestQuotePlan(t *testing.T) {
	// Two 6000mm bars of 1.39 kg/m SHS at 2.50/kg, 6 cuts at 0.50 each.
	plan := model.CutPlan{
		Bars: []model.Bar{
			{StockLength: 6000, Pieces: make([]model.PlacedPiece, 4)},
			{StockLength: 6000, Pieces: make([]model.PlacedPiece, 2)},
		},
	}

	q := QuotePlan(plan, 1.39, 2.50, 0.50)

	// 12m x 1.39 kg/m = 16.68 kg
	assert.True(t, q.MaterialKg.Equal(decimal.RequireFromString("16.68")), "MaterialKg = %s", q.MaterialKg)
	// 16.68 kg x 2.50 = 41.70
	assert.True(t, q.MaterialCost.Equal(decimal.RequireFromString("41.7")), "MaterialCost = %s", q.MaterialCost)
	assert.Equal(t, 6, q.CutCount)
	assert.True(t, q.CutCost.Equal(decimal.RequireFromString("3")), "CutCost = %s", q.CutCost)
	assert.True(t, q.Total.Equal(decimal.RequireFromString("44.7")), "Total = %s", q.Total)
}

func TestQuotePlanEmptyPlan(t *testing.T) {
	q := QuotePlan(model.CutPlan{}, 1.39, 2.50, 0.50)

	assert.True(t, q.MaterialKg.IsZero())
	assert.True(t, q.Total.IsZero())
	assert.Zero(t, q.CutCount)
}

func TestQuoteProfile(t *testing.T) {
	plan := model.CutPlan{
		Bars: []model.Bar{{StockLength: 6000, Pieces: make([]model.PlacedPiece, 1)}},
	}
	cat := model.DefaultCatalog()
	profile := cat.FindProfileByName("Flat 40x5")
	require.NotNil(t, profile)

	config := model.DefaultAppConfig()
	q := QuoteProfile(plan, *profile, config)

	// 6m x 1.57 kg/m = 9.42 kg x 2.50 = 23.55, plus one 0.50 cut
	assert.True(t, q.Total.Equal(decimal.RequireFromString("24.05")), "Total = %s", q.Total)
}
