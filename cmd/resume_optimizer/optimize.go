package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thevivhunter/resume-optimizer/internal/analysis"
	"github.com/thevivhunter/resume-optimizer/internal/observability"
	"github.com/thevivhunter/resume-optimizer/internal/schemas"
	"github.com/thevivhunter/resume-optimizer/internal/tracker"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Analyze a posting and log the application",
	Long:  "Run the full analysis against a job posting, compare the score to the configured minimum, and record the application in the tracking file.",
	RunE:  runOptimize,
}

var (
	optimizeResume  string
	optimizeJobFile string
	optimizeJobURL  string
	optimizeTitle   string
	optimizeCompany string
	optimizeVersion string
	optimizeBrowser bool
	optimizeSave    bool
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeResume, "resume", "r", "", "Path to resume (.pdf, .docx, .txt, .md)")
	optimizeCmd.Flags().StringVarP(&optimizeJobFile, "job-file", "j", "", "Path to job posting text file")
	optimizeCmd.Flags().StringVarP(&optimizeJobURL, "url", "u", "", "URL to fetch job posting from")
	optimizeCmd.Flags().StringVar(&optimizeTitle, "title", "", "Job title for the tracking record")
	optimizeCmd.Flags().StringVar(&optimizeCompany, "company", "", "Company name for the tracking record")
	optimizeCmd.Flags().StringVar(&optimizeVersion, "resume-version", "", "Resume version label for the tracking record")
	optimizeCmd.Flags().BoolVar(&optimizeBrowser, "browser", false, "Use a headless browser for JavaScript-heavy postings")
	optimizeCmd.Flags().BoolVar(&optimizeSave, "save", false, "Save the report to the reports directory")

	rootCmd.AddCommand(optimizeCmd)
}

// newStore builds the tracking store with schema validation when the
// schema file can be located.
func newStore(path string) *tracker.Store {
	if validate := schemas.ApplicationsValidator(); validate != nil {
		return tracker.NewStore(path, tracker.WithValidator(validate))
	}
	return tracker.NewStore(path)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	if optimizeJobFile != "" && optimizeJobURL != "" {
		return fmt.Errorf("--job-file and --url are mutually exclusive; provide only one")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resumePath := optimizeResume
	if resumePath == "" {
		resumePath = cfg.ResumePath
	}
	if resumePath == "" {
		return fmt.Errorf("no resume provided; use --resume or set resume_path in config")
	}

	report, err := analysis.Run(cmd.Context(), analysis.Options{
		ResumePath:  resumePath,
		JobPath:     optimizeJobFile,
		JobURL:      optimizeJobURL,
		TopKeywords: cfg.TopKeywords,
		StopWords:   cfg.StopWordSet(),
		UseBrowser:  optimizeBrowser,
		Verbose:     verbose,
	})
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintReport(report)

	if report.Score < cfg.MinATSScore {
		fmt.Fprintf(os.Stdout, "Score %.1f is below the target of %.1f. Consider revising before applying.\n",
			report.Score, cfg.MinATSScore)
	} else {
		fmt.Fprintf(os.Stdout, "Score %.1f meets the target of %.1f.\n", report.Score, cfg.MinATSScore)
	}

	store := newStore(cfg.TrackingFile)
	rec, err := store.Append(tracker.Record{
		JobTitle:        optimizeTitle,
		Company:         optimizeCompany,
		JobURL:          optimizeJobURL,
		ATSScore:        report.Score,
		MissingKeywords: report.Missing,
		ResumeVersion:   optimizeVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to track application: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Application tracked: %s\n", rec.ID)

	if optimizeSave {
		path, err := analysis.SaveReport(report, cfg.ReportsDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Report saved to %s\n", path)
	}

	return nil
}
