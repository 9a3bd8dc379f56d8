package model

import (
	"math"
	"testing"
)

func TestDetectOffcutsSkipsShortRemnants(t *testing.T) {
	plan := CutPlan{
		Bars: []Bar{
			{StockLength: 6000, Used: 5800, Waste: 200},
		},
	}
	offcuts := DetectOffcuts(plan, 0)
	if len(offcuts) != 0 {
		t.Errorf("expected no offcuts for a 200mm remnant, got %d", len(offcuts))
	}
}

func TestDetectOffcutsFindsUsableRemnant(t *testing.T) {
	plan := CutPlan{
		Bars: []Bar{
			{StockLength: 6000, Used: 4500, Waste: 1485},
			{StockLength: 6000, Used: 1500, Waste: 4495},
		},
	}
	offcuts := DetectOffcuts(plan, 0)
	if len(offcuts) != 2 {
		t.Fatalf("expected 2 offcuts, got %d", len(offcuts))
	}
	// Largest first
	if offcuts[0].Length != 4495 || offcuts[0].BarIndex != 1 {
		t.Errorf("expected largest offcut 4495 from bar 1, got %g from bar %d", offcuts[0].Length, offcuts[0].BarIndex)
	}
	if offcuts[1].Length != 1485 || offcuts[1].BarIndex != 0 {
		t.Errorf("expected offcut 1485 from bar 0, got %g from bar %d", offcuts[1].Length, offcuts[1].BarIndex)
	}
	if offcuts[0].ID == "" || offcuts[0].ID == offcuts[1].ID {
		t.Error("offcuts should get distinct non-empty IDs")
	}
}

func TestDetectOffcutsInheritsProportionalPrice(t *testing.T) {
	plan := CutPlan{
		Bars: []Bar{{StockLength: 6000, Used: 3000, Waste: 3000}},
	}
	offcuts := DetectOffcuts(plan, 40)
	if len(offcuts) != 1 {
		t.Fatalf("expected 1 offcut, got %d", len(offcuts))
	}
	if math.Abs(offcuts[0].PricePerBar-20) > 1e-9 {
		t.Errorf("expected inherited price 20, got %g", offcuts[0].PricePerBar)
	}
}

func TestOffcutToStockOption(t *testing.T) {
	o := Offcut{Length: 1485}
	if got := o.ToStockOption(); got != 1485 {
		t.Errorf("ToStockOption = %g, want 1485", float64(got))
	}
}

func TestTotalOffcutLength(t *testing.T) {
	offcuts := []Offcut{{Length: 1000}, {Length: 500}}
	if got := TotalOffcutLength(offcuts); got != 1500 {
		t.Errorf("TotalOffcutLength = %g, want 1500", got)
	}
}
