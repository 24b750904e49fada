package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tracked applications as CSV",
	RunE:  runExport,
}

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file path (default: stdout)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := newStore(cfg.TrackingFile)

	if exportOut == "" {
		return store.ExportCSV(os.Stdout)
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := store.ExportCSV(f); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Exported applications to %s\n", exportOut)
	return nil
}
