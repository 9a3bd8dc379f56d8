package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabkit/barcut/internal/project"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import all application data as one JSON file",
}

var backupExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write config and catalog to a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			return err
		}
		cat, _, err := project.LoadOrCreateCatalog()
		if err != nil {
			return err
		}
		if err := project.ExportAllData(args[0], config, cat); err != nil {
			return err
		}
		fmt.Printf("Backup written to %s\n", args[0])
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore config and catalog from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := project.ImportAllData(args[0])
		if err != nil {
			return err
		}
		if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
			return err
		}
		if err := project.SaveCatalog(project.DefaultCatalogPath(), backup.Catalog); err != nil {
			return err
		}
		fmt.Printf("Restored backup from %s (created %s)\n", args[0], backup.CreatedAt)
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupExportCmd, backupImportCmd)
	rootCmd.AddCommand(backupCmd)
}
