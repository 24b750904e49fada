// Package analysis provides the high-level orchestration for comparing a
// resume against a job posting.
package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thevivhunter/resume-optimizer/internal/advice"
	"github.com/thevivhunter/resume-optimizer/internal/extraction"
	"github.com/thevivhunter/resume-optimizer/internal/ingestion"
	"github.com/thevivhunter/resume-optimizer/internal/keywords"
	"github.com/thevivhunter/resume-optimizer/internal/scoring"
)

// Options holds configuration for running an analysis.
type Options struct {
	ResumePath string
	JobPath    string
	JobURL     string

	TopKeywords int
	Categories  keywords.Categories
	Blacklist   map[string]bool
	StopWords   map[string]bool
	Rules       *advice.RuleSet

	UseBrowser bool
	Verbose    bool
}

// Report is the full output of a resume-versus-posting analysis.
type Report struct {
	Timestamp   time.Time           `json:"timestamp"`
	JobSource   string              `json:"job_source"`
	Score       float64             `json:"ats_score"`
	Present     []string            `json:"present_keywords"`
	Missing     []string            `json:"missing_keywords"`
	Keywords    []string            `json:"job_keywords"`
	Categories  map[string][]string `json:"keyword_categories,omitempty"`
	Suggestions []string            `json:"suggestions"`
}

// Run executes the full analysis: acquire both texts, extract keywords
// from the posting, score the resume against them, and generate
// suggestions. Resume and job text are fetched concurrently.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.ResumePath == "" {
		return nil, fmt.Errorf("resume path is required")
	}
	if opts.JobPath == "" && opts.JobURL == "" {
		return nil, fmt.Errorf("either a job file or a job URL is required")
	}

	var resumeText, jobText string
	jobSource := opts.JobPath
	if opts.JobURL != "" {
		jobSource = opts.JobURL
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		text, err := extraction.ResumeText(opts.ResumePath)
		if err != nil {
			return fmt.Errorf("reading resume failed: %w", err)
		}
		resumeText = text
		return nil
	})

	g.Go(func() error {
		var text string
		var err error
		if opts.JobURL != "" {
			text, _, err = ingestion.FromURL(gCtx, opts.JobURL, ingestion.URLOptions{
				UseBrowser: opts.UseBrowser,
				Verbose:    opts.Verbose,
			})
		} else {
			text, _, err = ingestion.FromFile(opts.JobPath)
		}
		if err != nil {
			return fmt.Errorf("reading job posting failed: %w", err)
		}
		jobText = text
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return analyze(resumeText, jobText, jobSource, opts), nil
}

// analyze runs the pure comparison over already-acquired texts.
func analyze(resumeText, jobText, jobSource string, opts Options) *Report {
	topN := opts.TopKeywords
	if topN <= 0 {
		topN = keywords.DefaultTopN
	}

	extractOpts := keywords.Options{TopN: topN, StopWords: opts.StopWords}
	jobKeywords := keywords.ExtractWithOptions(jobText, extractOpts)

	var byCategory map[string][]string
	if opts.Categories != nil {
		categorized := keywords.ExtractByCategoryWithOptions(jobText, opts.Categories, opts.Blacklist, extractOpts)
		byCategory = categorized.ByCategory
	}

	resume := scoring.NewDocument("resume", resumeText)
	result := scoring.Score(jobKeywords, resume)

	rules := advice.DefaultRuleSet()
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	suggestions := advice.Suggest(result.Score, result.Missing, rules)

	return &Report{
		Timestamp:   time.Now(),
		JobSource:   jobSource,
		Score:       result.Score,
		Present:     result.Present,
		Missing:     result.Missing,
		Keywords:    jobKeywords,
		Categories:  byCategory,
		Suggestions: suggestions,
	}
}

// Compare scores already-acquired resume and job texts without any I/O.
// Useful for tests and for callers that manage their own ingestion.
func Compare(resumeText, jobText string, opts Options) *Report {
	return analyze(resumeText, jobText, "", opts)
}

// SaveReport writes the report as indented JSON to a timestamped file
// under dir, creating the directory if needed. It returns the path of
// the written file.
func SaveReport(report *Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory failed: %w", err)
	}

	name := fmt.Sprintf("optimization_report_%s.json", report.Timestamp.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	data, err := marshalReport(report)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report failed: %w", err)
	}
	return path, nil
}
