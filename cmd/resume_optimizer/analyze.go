package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thevivhunter/resume-optimizer/internal/analysis"
	"github.com/thevivhunter/resume-optimizer/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job posting",
	Long:  "Extract keywords from a job posting (file or URL), score the resume by keyword overlap, and print suggestions.",
	RunE:  runAnalyze,
}

var (
	analyzeResume     string
	analyzeJobFile    string
	analyzeJobURL     string
	analyzeTop        int
	analyzeCategories bool
	analyzeBrowser    bool
	analyzeJSON       bool
	analyzeSave       bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume (.pdf, .docx, .txt, .md)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job-file", "j", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVarP(&analyzeJobURL, "url", "u", "", "URL to fetch job posting from")
	analyzeCmd.Flags().IntVarP(&analyzeTop, "top", "n", 0, "Number of job keywords to extract")
	analyzeCmd.Flags().BoolVar(&analyzeCategories, "categories", false, "Show keyword category breakdown")
	analyzeCmd.Flags().BoolVar(&analyzeBrowser, "browser", false, "Use a headless browser for JavaScript-heavy postings")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the full report as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Save the report to the reports directory")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeJobFile != "" && analyzeJobURL != "" {
		return fmt.Errorf("--job-file and --url are mutually exclusive; provide only one")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resumePath := analyzeResume
	if resumePath == "" {
		resumePath = cfg.ResumePath
	}
	if resumePath == "" {
		return fmt.Errorf("no resume provided; use --resume or set resume_path in config")
	}

	opts := analysis.Options{
		ResumePath:  resumePath,
		JobPath:     analyzeJobFile,
		JobURL:      analyzeJobURL,
		TopKeywords: cfg.TopKeywords,
		StopWords:   cfg.StopWordSet(),
		UseBrowser:  analyzeBrowser,
		Verbose:     verbose,
	}
	if analyzeTop > 0 {
		opts.TopKeywords = analyzeTop
	}
	if analyzeCategories {
		opts.Categories = cfg.Categories()
		opts.Blacklist = cfg.BlacklistSet()
	}

	report, err := analysis.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if analyzeJSON {
		out, err := report.ToJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, out)
	} else {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintReport(report)
		if analyzeCategories {
			printer.PrintCategories(report.Categories)
		}
	}

	if analyzeSave {
		path, err := analysis.SaveReport(report, cfg.ReportsDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Report saved to %s\n", path)
	}

	return nil
}
