package model

import "testing"

func samplePlan() CutPlan {
	return CutPlan{
		Kerf: 5,
		Bars: []Bar{
			{
				StockLength: 6000,
				Pieces:      []PlacedPiece{{Length: 1500, Tag: "a"}, {Length: 1500, Tag: "a"}, {Length: 1500, Tag: "a"}},
				Used:        4500,
				KerfUsed:    15,
				Waste:       1485,
			},
			{
				StockLength: 6000,
				Pieces:      []PlacedPiece{{Length: 1500, Tag: "a"}},
				Used:        1500,
				KerfUsed:    5,
				Waste:       4495,
			},
		},
	}
}

func TestCutPlanTotals(t *testing.T) {
	p := samplePlan()

	if got := p.TotalBars(); got != 2 {
		t.Errorf("TotalBars = %d, want 2", got)
	}
	if got := p.TotalWaste(); got != 5980 {
		t.Errorf("TotalWaste = %g, want 5980", got)
	}
	if got := p.TotalUsed(); got != 6000 {
		t.Errorf("TotalUsed = %g, want 6000", got)
	}
	if got := p.TotalStockLength(); got != 12000 {
		t.Errorf("TotalStockLength = %g, want 12000", got)
	}
	if got := p.TotalPieces(); got != 4 {
		t.Errorf("TotalPieces = %d, want 4", got)
	}
}

func TestCutPlanWastePercent(t *testing.T) {
	p := samplePlan()
	want := 5980.0 / 12000.0 * 100.0
	if got := p.WastePercent(); got != want {
		t.Errorf("WastePercent = %g, want %g", got, want)
	}
}

func TestCutPlanWastePercentEmptyPlan(t *testing.T) {
	var p CutPlan
	if got := p.WastePercent(); got != 0 {
		t.Errorf("WastePercent of empty plan = %g, want 0", got)
	}
}

func TestBarEfficiency(t *testing.T) {
	b := Bar{StockLength: 6000, Used: 4500}
	if got := b.Efficiency(); got != 75 {
		t.Errorf("Efficiency = %g, want 75", got)
	}
	var zero Bar
	if got := zero.Efficiency(); got != 0 {
		t.Errorf("Efficiency of zero bar = %g, want 0", got)
	}
}

func TestBarCutCount(t *testing.T) {
	b := samplePlan().Bars[0]
	if got := b.CutCount(); got != 3 {
		t.Errorf("CutCount = %d, want 3", got)
	}
}

func TestValidateRequirements(t *testing.T) {
	cases := []struct {
		name    string
		reqs    []PieceRequirement
		wantErr bool
	}{
		{"valid", []PieceRequirement{{Length: 100, Quantity: 1}}, false},
		{"empty", nil, false},
		{"zero length", []PieceRequirement{{Length: 0, Quantity: 1}}, true},
		{"negative length", []PieceRequirement{{Length: -5, Quantity: 1}}, true},
		{"zero quantity", []PieceRequirement{{Length: 100, Quantity: 0}}, true},
		{"negative quantity", []PieceRequirement{{Length: 100, Quantity: -2}}, true},
	}
	for _, tc := range cases {
		err := ValidateRequirements(tc.reqs)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: ValidateRequirements err = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestTotalPieces(t *testing.T) {
	reqs := []PieceRequirement{
		{Length: 100, Quantity: 3},
		{Length: 200, Quantity: 2},
	}
	if got := TotalPieces(reqs); got != 5 {
		t.Errorf("TotalPieces = %d, want 5", got)
	}
}

func TestNormalizeStockOptions(t *testing.T) {
	out, err := NormalizeStockOptions([]StockOption{6000, 3000, 6000, 3000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0] != 3000 || out[1] != 6000 {
		t.Errorf("expected [3000 6000], got %v", out)
	}
}

func TestNormalizeStockOptionsEmptyUsesDefault(t *testing.T) {
	out, err := NormalizeStockOptions(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0] != DefaultStockLength {
		t.Errorf("expected default stock length, got %v", out)
	}
}

func TestNormalizeStockOptionsRejectsNonPositive(t *testing.T) {
	if _, err := NormalizeStockOptions([]StockOption{6000, 0}); err == nil {
		t.Error("expected error for zero stock length")
	}
}
