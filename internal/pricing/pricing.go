// Package pricing turns a cutting plan into quotation money figures.
// All money math runs on decimals; floats only enter at the mm/kg
// measurement boundary and are rounded once, at the end.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/fabkit/barcut/internal/model"
)

// Quote holds the priced breakdown of one cutting plan for a single profile.
type Quote struct {
	MaterialKg   decimal.Decimal `json:"material_kg"`   // Mass of stock purchased
	MaterialCost decimal.Decimal `json:"material_cost"` // MaterialKg x price per kg
	CutCount     int             `json:"cut_count"`
	CutCost      decimal.Decimal `json:"cut_cost"` // CutCount x per-cut charge
	Total        decimal.Decimal `json:"total"`
}

// QuotePlan prices a plan. The material charge covers the full stock length
// consumed, not just the placed pieces: the shop buys whole bars, and the
// customer pays for the waste the job creates. kgPerMeter comes from the
// profile being cut, pricePerKg and cutCharge from shop configuration.
func QuotePlan(plan model.CutPlan, kgPerMeter, pricePerKg, cutCharge float64) Quote {
	meters := decimal.NewFromFloat(plan.TotalStockLength()).Div(decimal.NewFromInt(1000))
	kg := meters.Mul(decimal.NewFromFloat(kgPerMeter))
	materialCost := kg.Mul(decimal.NewFromFloat(pricePerKg))

	cuts := plan.TotalPieces()
	cutCost := decimal.NewFromInt(int64(cuts)).Mul(decimal.NewFromFloat(cutCharge))

	return Quote{
		MaterialKg:   kg.Round(3),
		MaterialCost: materialCost.Round(2),
		CutCount:     cuts,
		CutCost:      cutCost.Round(2),
		Total:        materialCost.Add(cutCost).Round(2),
	}
}

// QuoteProfile prices a plan using the profile's weight and the shop's
// configured rates.
func QuoteProfile(plan model.CutPlan, profile model.Profile, config model.AppConfig) Quote {
	return QuotePlan(plan, profile.KgPerMeter, config.PricePerKg, config.CutCharge)
}
