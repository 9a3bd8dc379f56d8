package model

// Bar is one stock bar with its placed pieces in placement (cutting) order.
// A bar is sealed by the planner once nothing more fits; Used, KerfUsed and
// Waste are fixed at that point.
type Bar struct {
	StockLength float64       `json:"stock_length"`
	Pieces      []PlacedPiece `json:"pieces"`
	Used        float64       `json:"used"`      // Sum of placed piece lengths (mm)
	KerfUsed    float64       `json:"kerf_used"` // Actual blade loss (mm); less than kerf x cuts when the last piece runs to the bar end
	Waste       float64       `json:"waste"`     // Unused trailing length (mm), never negative
}

// CutCount returns the number of cuts made in the bar, one per placed piece.
func (b Bar) CutCount() int {
	return len(b.Pieces)
}

// Efficiency returns the used percentage of the bar.
func (b Bar) Efficiency() float64 {
	if b.StockLength == 0 {
		return 0
	}
	return (b.Used / b.StockLength) * 100.0
}

// CutPlan holds the full planning result. Bars are in the order they were
// opened. Unplaceable lists every piece instance too long to fit any stock
// option; callers must surface these to the user rather than ignore them.
type CutPlan struct {
	Bars        []Bar         `json:"bars"`
	Unplaceable []PlacedPiece `json:"unplaceable,omitempty"`
	Kerf        float64       `json:"kerf"`
}

// TotalBars returns the number of stock bars used.
func (p CutPlan) TotalBars() int {
	return len(p.Bars)
}

// TotalWaste returns the summed waste length over all bars.
func (p CutPlan) TotalWaste() float64 {
	var total float64
	for _, b := range p.Bars {
		total += b.Waste
	}
	return total
}

// TotalUsed returns the summed placed piece lengths over all bars.
func (p CutPlan) TotalUsed() float64 {
	var total float64
	for _, b := range p.Bars {
		total += b.Used
	}
	return total
}

// TotalKerfUsed returns the summed blade loss over all bars.
func (p CutPlan) TotalKerfUsed() float64 {
	var total float64
	for _, b := range p.Bars {
		total += b.KerfUsed
	}
	return total
}

// TotalStockLength returns the summed stock length of all bars used.
func (p CutPlan) TotalStockLength() float64 {
	var total float64
	for _, b := range p.Bars {
		total += b.StockLength
	}
	return total
}

// TotalPieces returns the number of pieces placed across all bars.
func (p CutPlan) TotalPieces() int {
	total := 0
	for _, b := range p.Bars {
		total += len(b.Pieces)
	}
	return total
}

// WastePercent returns total waste as a percentage of all stock length
// consumed. Zero when no bars were used.
func (p CutPlan) WastePercent() float64 {
	stock := p.TotalStockLength()
	if stock == 0 {
		return 0
	}
	return (p.TotalWaste() / stock) * 100.0
}
