package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fabkit/barcut/internal/importer"
	"github.com/fabkit/barcut/internal/model"
	"github.com/fabkit/barcut/internal/project"
)

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "barcut",
	Short: "1D cutting plan optimizer for metal fabrication quoting",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}

// loadRequirements resolves the cut list from either a job file or an
// import file. Exactly one of jobPath / inputPath may be set; the loaded
// job (if any) is returned so callers can pick up its stock and settings.
func loadRequirements(jobPath, inputPath string) ([]model.PieceRequirement, *model.Job, error) {
	switch {
	case jobPath != "" && inputPath != "":
		return nil, nil, fmt.Errorf("use either --job or --input, not both")

	case jobPath != "":
		job, err := project.LoadJob(jobPath)
		if err != nil {
			return nil, nil, err
		}
		logrus.Infof("Loaded job %q with %d piece requirements", job.Name, len(job.Pieces))
		return job.Pieces, &job, nil

	case inputPath != "":
		var result importer.ImportResult
		switch strings.ToLower(filepath.Ext(inputPath)) {
		case ".xlsx", ".xlsm":
			result = importer.ImportExcel(inputPath)
		default:
			result = importer.ImportCSV(inputPath)
		}
		for _, w := range result.Warnings {
			logrus.Warn(w)
		}
		for _, e := range result.Errors {
			logrus.Error(e)
		}
		if len(result.Requirements) == 0 {
			return nil, nil, fmt.Errorf("no usable rows in %s", inputPath)
		}
		logrus.Infof("Imported %d piece requirements from %s", len(result.Requirements), inputPath)
		return result.Requirements, nil, nil

	default:
		return nil, nil, fmt.Errorf("a cut list is required: pass --job or --input")
	}
}

// toStockOptions converts raw lengths from a CLI flag into planner stock
// options.
func toStockOptions(lengths []float64) []model.StockOption {
	opts := make([]model.StockOption, len(lengths))
	for i, l := range lengths {
		opts[i] = model.StockOption(l)
	}
	return opts
}
