package model

import "math"

// PurchaseEstimate holds the results of a bar purchasing calculation.
type PurchaseEstimate struct {
	TotalCutLength  float64 `json:"total_cut_length"`  // Total length of all pieces incl. kerf allowance (mm)
	TotalCutMeters  float64 `json:"total_cut_meters"`  // Same in meters
	BarLength       float64 `json:"bar_length"`        // Length of one stock bar (mm)
	BarsNeededExact float64 `json:"bars_needed_exact"` // Exact fractional number of bars
	BarsNeededMin   int     `json:"bars_needed_min"`   // Minimum bars (ceiling of exact)
	BarsWithWaste   int     `json:"bars_with_waste"`   // Recommended bars including waste factor
	WastePercent    float64 `json:"waste_percent"`     // Waste factor applied (e.g., 10 for 10%)
	EstimatedCost   float64 `json:"estimated_cost"`    // Total cost if pricing available
	PricePerBar     float64 `json:"price_per_bar"`     // Price used for estimation
	Kerf            float64 `json:"kerf"`              // Kerf width used in calculation
}

// CalculatePurchaseEstimate computes how many stock bars to buy for a given
// cut list. It accounts for kerf loss per piece and an additional waste
// percentage factor on top of the theoretical minimum. This is a quick
// length-based estimate; the planner gives the exact bar count for the
// chosen stock lengths.
func CalculatePurchaseEstimate(reqs []PieceRequirement, barLength, kerf, wastePercent, pricePerBar float64) PurchaseEstimate {
	var totalCutLength float64
	for _, r := range reqs {
		totalCutLength += (r.Length + kerf) * float64(r.Quantity)
	}

	if barLength <= 0 {
		return PurchaseEstimate{
			TotalCutLength: totalCutLength,
			TotalCutMeters: totalCutLength / 1000.0,
			WastePercent:   wastePercent,
			Kerf:           kerf,
		}
	}

	exactBars := totalCutLength / barLength
	minBars := int(math.Ceil(exactBars))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	barsWithWaste := int(math.Ceil(exactBars * wasteFactor))
	if barsWithWaste < minBars {
		barsWithWaste = minBars
	}

	return PurchaseEstimate{
		TotalCutLength:  totalCutLength,
		TotalCutMeters:  totalCutLength / 1000.0,
		BarLength:       barLength,
		BarsNeededExact: exactBars,
		BarsNeededMin:   minBars,
		BarsWithWaste:   barsWithWaste,
		WastePercent:    wastePercent,
		EstimatedCost:   float64(barsWithWaste) * pricePerBar,
		PricePerBar:     pricePerBar,
		Kerf:            kerf,
	}
}
