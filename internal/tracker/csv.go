package tracker

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// csvHeader is the column order of CSV exports.
var csvHeader = []string{
	"id", "timestamp", "job_title", "company", "job_url",
	"ats_score", "status", "resume_version", "missing_keywords",
}

// ExportCSV writes every record to w as CSV, one row per application,
// with missing keywords joined into a single column.
func (s *Store) ExportCSV(w io.Writer) error {
	records, err := s.List()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.Timestamp,
			rec.JobTitle,
			rec.Company,
			rec.JobURL,
			strconv.FormatFloat(rec.ATSScore, 'f', 1, 64),
			string(rec.Status),
			rec.ResumeVersion,
			strings.Join(rec.MissingKeywords, ", "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", rec.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
