package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut represents a usable remnant left at the tail of a bar after cutting.
type Offcut struct {
	ID          string  `json:"id"`
	BarIndex    int     `json:"bar_index"`    // Index of the source bar in the plan
	Length      float64 `json:"length"`       // Usable length (mm)
	StockLength float64 `json:"stock_length"` // Length of the bar it came from
	PricePerBar float64 `json:"price_per_bar"` // Inherited price proportional to length (0 if not set)
}

// ToStockOption converts an offcut into a stock option for reuse in a
// following planning run.
func (o Offcut) ToStockOption() StockOption {
	return StockOption(o.Length)
}

// MinOffcutLength is the minimum length (in mm) for a remnant to be
// considered a usable offcut. Remnants shorter than this are waste.
const MinOffcutLength = 300.0

// DetectOffcuts scans a plan for bar remnants long enough to be worth
// keeping. pricePerBar, when positive, is apportioned to each offcut by its
// share of the source bar length. Offcuts are returned largest first.
func DetectOffcuts(plan CutPlan, pricePerBar float64) []Offcut {
	var offcuts []Offcut
	for i, bar := range plan.Bars {
		if bar.Waste < MinOffcutLength {
			continue
		}
		oc := Offcut{
			ID:          uuid.New().String()[:8],
			BarIndex:    i,
			Length:      bar.Waste,
			StockLength: bar.StockLength,
		}
		if pricePerBar > 0 && bar.StockLength > 0 {
			oc.PricePerBar = (bar.Waste / bar.StockLength) * pricePerBar
		}
		offcuts = append(offcuts, oc)
	}

	sort.SliceStable(offcuts, func(i, j int) bool {
		return offcuts[i].Length > offcuts[j].Length
	})
	return offcuts
}

// TotalOffcutLength returns the total length of all offcuts in mm.
func TotalOffcutLength(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.Length
	}
	return total
}
