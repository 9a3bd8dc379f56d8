package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/fabkit/barcut/internal/model"
)

// LabelInfo holds the data encoded into each bar label's QR code.
type LabelInfo struct {
	BarIndex    int                 `json:"bar"`
	StockLength float64             `json:"stock_mm"`
	Pieces      []model.PlacedPiece `json:"pieces"`
	Waste       float64             `json:"waste_mm"`
}

// qrPixels is the side length of the generated label images.
const qrPixels = 256

// ExportLabels writes one QR code PNG per bar into dir, named bar-001.png,
// bar-002.png and so on. Each code encodes the bar's contents as JSON so a
// phone scan at the saw shows exactly what to cut from that bar. Returns
// the paths written.
func ExportLabels(dir string, plan model.CutPlan) ([]string, error) {
	if len(plan.Bars) == 0 {
		return nil, fmt.Errorf("no bars to generate labels for")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var paths []string
	for i, bar := range plan.Bars {
		info := LabelInfo{
			BarIndex:    i + 1,
			StockLength: bar.StockLength,
			Pieces:      bar.Pieces,
			Waste:       bar.Waste,
		}
		payload, err := json.Marshal(info)
		if err != nil {
			return paths, err
		}

		path := filepath.Join(dir, fmt.Sprintf("bar-%03d.png", i+1))
		if err := qrcode.WriteFile(string(payload), qrcode.Medium, qrPixels, path); err != nil {
			return paths, fmt.Errorf("bar %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
