package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fabkit/barcut/internal/model"
	"github.com/fabkit/barcut/internal/project"
)

var (
	addName       string
	addShape      string
	addKgPerMeter float64
	addStock      []float64
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the profile catalog (sections, weights, stock lengths)",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the profiles in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, path, err := project.LoadOrCreateCatalog()
		if err != nil {
			return err
		}
		logrus.Debugf("Catalog loaded from %s", path)

		fmt.Printf("%-10s %-22s %-8s %10s  %s\n", "ID", "Name", "Shape", "kg/m", "Stock (mm)")
		for _, p := range cat.Profiles {
			fmt.Printf("%-10s %-22s %-8s %10.3f  %v\n", p.ID, p.Name, p.Shape, p.KgPerMeter, p.StockLengths)
		}
		return nil
	},
}

var catalogAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a profile to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if addName == "" {
			return fmt.Errorf("--name is required")
		}
		if addKgPerMeter <= 0 {
			return fmt.Errorf("--kg-per-meter must be positive")
		}

		cat, path, err := project.LoadOrCreateCatalog()
		if err != nil {
			return err
		}
		if cat.FindProfileByName(addName) != nil {
			return fmt.Errorf("profile %q already exists", addName)
		}

		profile := model.NewProfile(addName, addShape, addKgPerMeter, addStock...)
		cat.Profiles = append(cat.Profiles, profile)
		if err := project.SaveCatalog(path, cat); err != nil {
			return err
		}
		fmt.Printf("Added %s (%s)\n", profile.Name, profile.ID)
		return nil
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge profiles from a JSON file into the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, path, err := project.LoadOrCreateCatalog()
		if err != nil {
			return err
		}
		before := len(cat.Profiles)

		merged, err := project.ImportCatalog(args[0], cat)
		if err != nil {
			return err
		}
		if err := project.SaveCatalog(path, merged); err != nil {
			return err
		}
		fmt.Printf("Imported %d profile(s)\n", len(merged.Profiles)-before)
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <profile-name> <file>",
	Short: "Export one profile to a JSON file for sharing",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := project.LoadOrCreateCatalog()
		if err != nil {
			return err
		}
		profile := cat.FindProfileByName(args[0])
		if profile == nil {
			return fmt.Errorf("profile %q not found in catalog", args[0])
		}
		return project.ExportProfile(args[1], *profile)
	},
}

func init() {
	catalogAddCmd.Flags().StringVar(&addName, "name", "", "Profile name, e.g. \"SHS 25x25x2\"")
	catalogAddCmd.Flags().StringVar(&addShape, "shape", "", "Section shape (SHS, flat, angle, tube, rebar)")
	catalogAddCmd.Flags().Float64Var(&addKgPerMeter, "kg-per-meter", 0, "Section weight in kg per meter")
	catalogAddCmd.Flags().Float64SliceVar(&addStock, "stock", nil, "Stock lengths the supplier sells, mm")

	catalogCmd.AddCommand(catalogListCmd, catalogAddCmd, catalogImportCmd, catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}
