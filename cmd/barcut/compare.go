package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fabkit/barcut/internal/engine"
	"github.com/fabkit/barcut/internal/export"
	"github.com/fabkit/barcut/internal/model"
	"github.com/fabkit/barcut/internal/project"
)

var (
	compareJobPath   string
	compareInputPath string
	compareStock     []float64
	compareKerf      float64
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Plan the same cut list under alternative settings side by side",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			return err
		}

		reqs, job, err := loadRequirements(compareJobPath, compareInputPath)
		if err != nil {
			return err
		}

		settings := model.DefaultSettings()
		config.ApplyToSettings(&settings)
		if job != nil {
			settings = job.Settings
		}
		if cmd.Flags().Changed("kerf") {
			settings.Kerf = compareKerf
		}

		stocks := config.StockOptions()
		if job != nil && len(job.Stock) > 0 {
			stocks = job.StockOptions()
		}
		if cmd.Flags().Changed("stock") {
			stocks = toStockOptions(compareStock)
		}

		results, err := engine.CompareScenarios(engine.BuildDefaultScenarios(settings), reqs, stocks)
		if err != nil {
			return err
		}
		return export.WriteComparisonReport(os.Stdout, results)
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareJobPath, "job", "", "YAML job file with pieces, stock and settings")
	compareCmd.Flags().StringVar(&compareInputPath, "input", "", "CSV or XLSX cut list to import")
	compareCmd.Flags().Float64SliceVar(&compareStock, "stock", nil, "Comma-separated stock lengths in mm")
	compareCmd.Flags().Float64Var(&compareKerf, "kerf", model.DefaultKerf, "Blade width lost per cut in mm")

	rootCmd.AddCommand(compareCmd)
}
