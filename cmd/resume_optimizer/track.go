package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thevivhunter/resume-optimizer/internal/observability"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Manage tracked applications",
}

var trackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracked applications",
	RunE:  runTrackList,
}

var trackUpdateCmd = &cobra.Command{
	Use:   "update <application-id>",
	Short: "Update the status of a tracked application",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrackUpdate,
}

var trackSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show aggregate application statistics",
	RunE:  runTrackSummary,
}

var (
	trackStatus string
	trackNote   string
)

func init() {
	trackUpdateCmd.Flags().StringVarP(&trackStatus, "status", "s", "", "New status (applied, interview, offer, hired, rejected, withdrawn)")
	trackUpdateCmd.Flags().StringVar(&trackNote, "note", "", "Note to append with the status change")
	trackUpdateCmd.MarkFlagRequired("status")

	trackCmd.AddCommand(trackListCmd)
	trackCmd.AddCommand(trackUpdateCmd)
	trackCmd.AddCommand(trackSummaryCmd)
	rootCmd.AddCommand(trackCmd)
}

func runTrackList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	records, err := newStore(cfg.TrackingFile).List()
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintRecords(records)
	return nil
}

func runTrackUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rec, err := newStore(cfg.TrackingFile).UpdateStatus(args[0], trackStatus, trackNote)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Updated %s to %s\n", rec.ID, rec.Status)
	return nil
}

func runTrackSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	summary, err := newStore(cfg.TrackingFile).Summarize()
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintSummary(summary)
	return nil
}
