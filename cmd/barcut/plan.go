package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fabkit/barcut/internal/engine"
	"github.com/fabkit/barcut/internal/export"
	"github.com/fabkit/barcut/internal/model"
	"github.com/fabkit/barcut/internal/pricing"
	"github.com/fabkit/barcut/internal/project"
)

var (
	planJobPath   string    // YAML job file
	planInputPath string    // CSV/XLSX cut list
	planStock     []float64 // Available stock lengths (mm)
	planKerf      float64   // Blade width per cut (mm)
	planPolicy    string    // Bar opening policy
	planProfile   string    // Catalog profile name for stock lengths and pricing
	planOffcuts   bool      // Report reusable remnants
	planQuote     bool      // Price the plan (requires --profile)
	planJSON      bool      // Machine-readable output
	planXLSXPath  string    // Write workbook export
	planDXFPath   string    // Write CAD diagram export
	planLabelsDir string    // Write QR label PNGs
)

// planOutput is the JSON shape emitted with --json.
type planOutput struct {
	Plan    model.CutPlan  `json:"plan"`
	Offcuts []model.Offcut `json:"offcuts,omitempty"`
	Quote   *pricing.Quote `json:"quote,omitempty"`
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Pack a cut list into stock bars and report the cutting plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			return err
		}

		reqs, job, err := loadRequirements(planJobPath, planInputPath)
		if err != nil {
			return err
		}

		// Settings resolution: config defaults, then job file, then flags.
		settings := model.DefaultSettings()
		config.ApplyToSettings(&settings)
		if job != nil {
			settings = job.Settings
		}
		if cmd.Flags().Changed("kerf") {
			settings.Kerf = planKerf
		}
		if cmd.Flags().Changed("policy") {
			settings.Policy = model.Policy(planPolicy)
		}

		// Stock resolution follows the same order. A profile overrides the
		// config defaults but not an explicit job or flag value.
		var profile *model.Profile
		stocks := config.StockOptions()
		if planProfile != "" {
			cat, _, err := project.LoadOrCreateCatalog()
			if err != nil {
				return err
			}
			profile = cat.FindProfileByName(planProfile)
			if profile == nil {
				return fmt.Errorf("profile %q not found in catalog", planProfile)
			}
			stocks = profile.StockOptions()
		}
		if job != nil && len(job.Stock) > 0 {
			stocks = job.StockOptions()
		}
		if cmd.Flags().Changed("stock") {
			stocks = toStockOptions(planStock)
		}

		planner := engine.New(settings)
		plan, err := planner.Plan(reqs, stocks)
		if err != nil {
			return err
		}
		logrus.Infof("Planned %d pieces onto %d bars", plan.TotalPieces(), plan.TotalBars())

		var offcuts []model.Offcut
		if planOffcuts {
			offcuts = model.DetectOffcuts(plan, 0)
		}

		var quote *pricing.Quote
		if planQuote {
			if profile == nil {
				return fmt.Errorf("--quote needs --profile to resolve kg/m")
			}
			q := pricing.QuoteProfile(plan, *profile, config)
			quote = &q
		}

		if planJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(planOutput{Plan: plan, Offcuts: offcuts, Quote: quote}); err != nil {
				return err
			}
		} else {
			if err := export.WriteReport(os.Stdout, plan); err != nil {
				return err
			}
			if len(offcuts) > 0 {
				fmt.Printf("\nReusable offcuts (>= %.0f mm):\n", model.MinOffcutLength)
				for _, o := range offcuts {
					fmt.Printf("  bar %d: %.1f mm\n", o.BarIndex+1, o.Length)
				}
			}
			if quote != nil {
				fmt.Printf("\nQuote: %s kg material = %s | %d cuts = %s | total %s\n",
					quote.MaterialKg, quote.MaterialCost, quote.CutCount, quote.CutCost, quote.Total)
			}
		}

		if planXLSXPath != "" {
			if err := export.ExportXLSX(planXLSXPath, plan); err != nil {
				return err
			}
			logrus.Infof("Wrote workbook %s", planXLSXPath)
		}
		if planDXFPath != "" {
			if err := export.ExportDXF(planDXFPath, plan); err != nil {
				return err
			}
			logrus.Infof("Wrote diagram %s", planDXFPath)
		}
		if planLabelsDir != "" {
			paths, err := export.ExportLabels(planLabelsDir, plan)
			if err != nil {
				return err
			}
			logrus.Infof("Wrote %d labels to %s", len(paths), planLabelsDir)
		}

		if planJobPath != "" {
			project.RememberJob(&config, planJobPath)
			if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
				logrus.Warnf("Could not update recent jobs: %v", err)
			}
		}

		return nil
	},
}

func init() {
	planCmd.Flags().StringVar(&planJobPath, "job", "", "YAML job file with pieces, stock and settings")
	planCmd.Flags().StringVar(&planInputPath, "input", "", "CSV or XLSX cut list to import")
	planCmd.Flags().Float64SliceVar(&planStock, "stock", nil, "Comma-separated stock lengths in mm (default from config/profile)")
	planCmd.Flags().Float64Var(&planKerf, "kerf", model.DefaultKerf, "Blade width lost per cut in mm")
	planCmd.Flags().StringVar(&planPolicy, "policy", string(model.PolicyLargestStock), "Bar opening policy (largest, smallest-fit)")
	planCmd.Flags().StringVar(&planProfile, "profile", "", "Catalog profile name (stock lengths and weight for quoting)")
	planCmd.Flags().BoolVar(&planOffcuts, "offcuts", false, "List reusable remnants left on bars")
	planCmd.Flags().BoolVar(&planQuote, "quote", false, "Price the plan using the profile and config rates")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Emit the plan as JSON instead of a text report")
	planCmd.Flags().StringVar(&planXLSXPath, "xlsx", "", "Write an Excel workbook of the plan to this path")
	planCmd.Flags().StringVar(&planDXFPath, "dxf", "", "Write a DXF cutting diagram to this path")
	planCmd.Flags().StringVar(&planLabelsDir, "labels", "", "Write per-bar QR label PNGs into this directory")

	rootCmd.AddCommand(planCmd)
}
