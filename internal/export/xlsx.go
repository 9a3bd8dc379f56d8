package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fabkit/barcut/internal/model"
)

// ExportXLSX writes a cutting plan to an Excel workbook with a per-piece
// "Bars" sheet and a per-bar "Summary" sheet.
func ExportXLSX(path string, plan model.CutPlan) error {
	if len(plan.Bars) == 0 {
		return fmt.Errorf("no bars to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const barsSheet = "Bars"
	// The default sheet becomes the detail sheet
	if err := f.SetSheetName(f.GetSheetName(0), barsSheet); err != nil {
		return err
	}

	header := []interface{}{"Bar", "Stock (mm)", "Piece", "Length (mm)", "Tag"}
	if err := f.SetSheetRow(barsSheet, "A1", &header); err != nil {
		return err
	}

	rowNum := 2
	for barIdx, bar := range plan.Bars {
		for pieceIdx, p := range bar.Pieces {
			row := []interface{}{barIdx + 1, bar.StockLength, pieceIdx + 1, p.Length, p.Tag}
			cell, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(barsSheet, cell, &row); err != nil {
				return err
			}
			rowNum++
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	summaryHeader := []interface{}{"Bar", "Stock (mm)", "Pieces", "Used (mm)", "Kerf (mm)", "Waste (mm)", "Efficiency %"}
	if err := f.SetSheetRow(summarySheet, "A1", &summaryHeader); err != nil {
		return err
	}
	for i, bar := range plan.Bars {
		row := []interface{}{i + 1, bar.StockLength, len(bar.Pieces), bar.Used, bar.KerfUsed, bar.Waste, bar.Efficiency()}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	totalsRow := len(plan.Bars) + 3
	totals := []interface{}{
		"Totals",
		plan.TotalStockLength(),
		plan.TotalPieces(),
		plan.TotalUsed(),
		plan.TotalKerfUsed(),
		plan.TotalWaste(),
		100.0 - plan.WastePercent(),
	}
	cell, err := excelize.CoordinatesToCellName(1, totalsRow)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(summarySheet, cell, &totals); err != nil {
		return err
	}

	if len(plan.Unplaceable) > 0 {
		const unplacedSheet = "Unplaceable"
		if _, err := f.NewSheet(unplacedSheet); err != nil {
			return err
		}
		uHeader := []interface{}{"Length (mm)", "Tag"}
		if err := f.SetSheetRow(unplacedSheet, "A1", &uHeader); err != nil {
			return err
		}
		for i, p := range plan.Unplaceable {
			row := []interface{}{p.Length, p.Tag}
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(unplacedSheet, cell, &row); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
