package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"

	"github.com/fabkit/barcut/internal/model"
)

// Diagram layout constants (drawing units are mm, 1:1 with the stock).
const (
	barHeight  = 100.0 // drawn height of each bar
	barSpacing = 60.0  // vertical gap between bars
	textHeight = 30.0  // label text height
)

// ExportDXF draws the cutting plan as a CAD diagram: one horizontal bar per
// row, pieces as full-height dividers at their cut positions, kerf gaps
// included. Dimensions are 1:1 in mm so the drawing can be measured
// directly in any CAD viewer.
func ExportDXF(path string, plan model.CutPlan) error {
	if len(plan.Bars) == 0 {
		return fmt.Errorf("no bars to export")
	}

	d := dxf.NewDrawing()
	d.AddLayer("BARS", color.White, table.LT_CONTINUOUS, true)
	d.AddLayer("CUTS", color.Red, table.LT_CONTINUOUS, true)
	d.AddLayer("LABELS", color.Green, table.LT_CONTINUOUS, true)

	for i, bar := range plan.Bars {
		top := -float64(i) * (barHeight + barSpacing)
		bottom := top - barHeight

		// Bar outline
		d.ChangeLayer("BARS")
		d.Line(0, top, 0, bar.StockLength, top, 0)
		d.Line(0, bottom, 0, bar.StockLength, bottom, 0)
		d.Line(0, top, 0, 0, bottom, 0)
		d.Line(bar.StockLength, top, 0, bar.StockLength, bottom, 0)

		// Cut positions, advancing by piece length plus kerf
		d.ChangeLayer("CUTS")
		offset := 0.0
		for _, p := range bar.Pieces {
			offset += p.Length
			if offset < bar.StockLength {
				d.Line(offset, top, 0, offset, bottom, 0)
			}
			offset += plan.Kerf
		}

		// Piece labels centered in each segment
		d.ChangeLayer("LABELS")
		offset = 0.0
		for _, p := range bar.Pieces {
			label := fmt.Sprintf("%.0f", p.Length)
			if p.Tag != "" {
				label = fmt.Sprintf("%.0f %s", p.Length, p.Tag)
			}
			d.Text(label, offset+p.Length/4, bottom+barHeight/2, 0, textHeight)
			offset += p.Length + plan.Kerf
		}

		// Bar heading above the outline
		heading := fmt.Sprintf("Bar %d: %.0f mm, waste %.0f mm", i+1, bar.StockLength, bar.Waste)
		d.Text(heading, 0, top+textHeight/2, 0, textHeight)
	}

	return d.SaveAs(path)
}
