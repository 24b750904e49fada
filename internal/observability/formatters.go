// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/thevivhunter/resume-optimizer/internal/analysis"
	"github.com/thevivhunter/resume-optimizer/internal/tracker"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// listPreview joins up to maxItemsToShow items and notes how many were omitted.
func listPreview(items []string) string {
	var sb strings.Builder
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	return sb.String()
}

// PrintReport outputs a human-readable summary of an analysis report.
func (p *Printer) PrintReport(report *analysis.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS Score: %.1f / 100\n", report.Score))
	sb.WriteString("\n")

	if len(report.Present) > 0 {
		sb.WriteString(fmt.Sprintf("Matched keywords (%d):\n", len(report.Present)))
		sb.WriteString(listPreview(report.Present))
		sb.WriteString("\n")
	}

	if len(report.Missing) > 0 {
		sb.WriteString(fmt.Sprintf("Missing keywords (%d):\n", len(report.Missing)))
		sb.WriteString(listPreview(report.Missing))
	} else {
		sb.WriteString("No missing keywords.\n")
	}

	p.printBox("ANALYSIS REPORT", strings.TrimSuffix(sb.String(), "\n"))

	if len(report.Suggestions) > 0 {
		var ss strings.Builder
		for i, suggestion := range report.Suggestions {
			ss.WriteString(suggestion)
			if i < len(report.Suggestions)-1 {
				ss.WriteString("\n")
			}
		}
		p.printBox("SUGGESTIONS", ss.String())
	}
}

// PrintCategories outputs the category breakdown of job keywords.
func (p *Printer) PrintCategories(byCategory map[string][]string) {
	if len(byCategory) == 0 {
		return
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		terms := byCategory[name]
		sb.WriteString(fmt.Sprintf("%s (%d):\n", name, len(terms)))
		joined := strings.Join(terms, ", ")
		if len(joined) > 50 {
			joined = joined[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", joined))
		if i < len(names)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("KEYWORD CATEGORIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecords outputs a table of tracked applications.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecords(records []tracker.Record) {
	if len(records) == 0 {
		fmt.Fprintln(p.out, "No applications tracked yet.")
		return
	}

	fmt.Fprintf(p.out, "%-28s %-24s %-20s %-8s %s\n", "ID", "COMPANY", "TITLE", "SCORE", "STATUS")
	fmt.Fprintln(p.out, strings.Repeat("─", 90))
	for _, rec := range records {
		company := truncate(rec.Company, 24)
		title := truncate(rec.JobTitle, 20)
		fmt.Fprintf(p.out, "%-28s %-24s %-20s %-8.1f %s\n", rec.ID, company, title, rec.ATSScore, rec.Status)
	}
}

// PrintSummary outputs aggregate application statistics.
func (p *Printer) PrintSummary(summary tracker.Summary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total applications: %d\n", summary.TotalApplications))
	sb.WriteString(fmt.Sprintf("Successful:         %d\n", summary.SuccessfulApplications))
	sb.WriteString(fmt.Sprintf("Success rate:       %.1f%%\n", summary.SuccessRate))

	if len(summary.StatusBreakdown) > 0 {
		sb.WriteString("\nBy status:\n")
		for _, status := range tracker.AllStatuses() {
			if n, ok := summary.StatusBreakdown[status]; ok {
				sb.WriteString(fmt.Sprintf("  %-12s %d\n", status, n))
			}
		}
	}

	p.printBox("APPLICATION SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
