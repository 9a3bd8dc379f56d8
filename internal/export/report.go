// Package export renders cutting plans for the people who consume them:
// a text report for the quote, an XLSX workbook for the office, a DXF
// diagram for the shop floor, and QR labels for the cut bundles.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/fabkit/barcut/internal/engine"
	"github.com/fabkit/barcut/internal/model"
)

// WriteReport writes a human-readable cutting plan breakdown: one block per
// bar with its pieces in placement order, then totals and any unplaceable
// pieces. Pieces are listed in the order they were packed so the report
// reads left to right along the bar.
func WriteReport(w io.Writer, plan model.CutPlan) error {
	if len(plan.Bars) == 0 && len(plan.Unplaceable) == 0 {
		_, err := fmt.Fprintln(w, "Nothing to cut.")
		return err
	}

	for i, bar := range plan.Bars {
		if _, err := fmt.Fprintf(w, "Bar %d: %.0f mm stock, %d pieces\n", i+1, bar.StockLength, len(bar.Pieces)); err != nil {
			return err
		}
		for _, p := range bar.Pieces {
			tag := p.Tag
			if tag == "" {
				tag = "-"
			}
			if _, err := fmt.Fprintf(w, "  %8.1f mm  %s\n", p.Length, tag); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  used %.1f mm | kerf %.1f mm | waste %.1f mm (%.1f%% efficient)\n",
			bar.Used, bar.KerfUsed, bar.Waste, bar.Efficiency()); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nTotals: %d bars | %d pieces | waste %.1f mm (%.1f%%)\n",
		plan.TotalBars(), plan.TotalPieces(), plan.TotalWaste(), plan.WastePercent()); err != nil {
		return err
	}

	if len(plan.Unplaceable) > 0 {
		if _, err := fmt.Fprintf(w, "\nWARNING: %d piece(s) too long for any stock option:\n", len(plan.Unplaceable)); err != nil {
			return err
		}
		for _, p := range plan.Unplaceable {
			tag := p.Tag
			if tag == "" {
				tag = "-"
			}
			if _, err := fmt.Fprintf(w, "  %8.1f mm  %s\n", p.Length, tag); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteComparisonReport renders scenario statistics side by side. Scenario
// names longer than the column are truncated rather than breaking the
// alignment.
func WriteComparisonReport(w io.Writer, results []engine.ScenarioResult) error {
	if _, err := fmt.Fprintf(w, "%-24s %6s %6s %8s %9s\n", "Scenario", "Bars", "Cuts", "Waste%", "Unplaced"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 57)); err != nil {
		return err
	}
	for _, r := range results {
		name := r.Scenario.Name
		if len(name) > 24 {
			name = name[:21] + "..."
		}
		if _, err := fmt.Fprintf(w, "%-24s %6d %6d %8.1f %9d\n", name, r.BarsUsed, r.TotalCuts, r.WastePercent, r.Unplaced); err != nil {
			return err
		}
	}
	return nil
}
