package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fabkit/barcut/internal/model"
	"github.com/fabkit/barcut/internal/project"
)

var (
	estimateJobPath     string
	estimateInputPath   string
	estimateBarLength   float64
	estimateKerf        float64
	estimateWastePct    float64
	estimatePricePerBar float64
	estimateJSON        bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Quick length-based estimate of how many bars to buy",
	Long: `Estimate computes the number of stock bars to purchase from total cut
length alone, without running the packer. It adds a kerf allowance per piece
and a waste percentage on top of the theoretical minimum. Use plan for the
exact bar count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			return err
		}

		reqs, _, err := loadRequirements(estimateJobPath, estimateInputPath)
		if err != nil {
			return err
		}

		kerf := config.DefaultKerf
		if cmd.Flags().Changed("kerf") {
			kerf = estimateKerf
		}
		wastePct := config.WastePercent
		if cmd.Flags().Changed("waste-percent") {
			wastePct = estimateWastePct
		}

		est := model.CalculatePurchaseEstimate(reqs, estimateBarLength, kerf, wastePct, estimatePricePerBar)

		if estimateJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(est)
		}

		fmt.Printf("Total cut length: %.1f mm (%.2f m) incl. %.1f mm kerf per piece\n",
			est.TotalCutLength, est.TotalCutMeters, est.Kerf)
		fmt.Printf("Bars of %.0f mm: %.2f exact, %d minimum, %d with %.0f%% waste factor\n",
			est.BarLength, est.BarsNeededExact, est.BarsNeededMin, est.BarsWithWaste, est.WastePercent)
		if est.PricePerBar > 0 {
			fmt.Printf("Estimated cost: %.2f (%d bars at %.2f)\n",
				est.EstimatedCost, est.BarsWithWaste, est.PricePerBar)
		}
		return nil
	},
}

func init() {
	estimateCmd.Flags().StringVar(&estimateJobPath, "job", "", "YAML job file with pieces")
	estimateCmd.Flags().StringVar(&estimateInputPath, "input", "", "CSV or XLSX cut list to import")
	estimateCmd.Flags().Float64Var(&estimateBarLength, "bar-length", float64(model.DefaultStockLength), "Stock bar length in mm")
	estimateCmd.Flags().Float64Var(&estimateKerf, "kerf", model.DefaultKerf, "Blade width lost per cut in mm")
	estimateCmd.Flags().Float64Var(&estimateWastePct, "waste-percent", 10, "Extra bars factor on top of the minimum")
	estimateCmd.Flags().Float64Var(&estimatePricePerBar, "price-per-bar", 0, "Price of one bar for the cost estimate")
	estimateCmd.Flags().BoolVar(&estimateJSON, "json", false, "Emit the estimate as JSON")

	rootCmd.AddCommand(estimateCmd)
}
