// Package tracker persists application history to a local JSON file
// with load-modify-save discipline and corruption recovery.
package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a job application.
type Status string

const (
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusHired     Status = "hired"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

// AllStatuses returns every recognized status in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusApplied, StatusInterview, StatusOffer, StatusHired, StatusRejected, StatusWithdrawn}
}

// ValidStatus reports whether s is a recognized application status.
func ValidStatus(s string) bool {
	switch Status(strings.ToLower(s)) {
	case StatusApplied, StatusInterview, StatusOffer, StatusHired, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// successStatuses counts toward the summary success rate.
var successStatuses = map[Status]bool{
	StatusInterview: true,
	StatusOffer:     true,
	StatusHired:     true,
}

// Note is a single append-only status note.
type Note struct {
	Timestamp string `json:"timestamp"`
	Note      string `json:"note"`
}

// Record is one logged scoring run / application. Records are created
// by Append and mutated only through UpdateStatus; nothing deletes them.
type Record struct {
	ID              string   `json:"id"`
	Timestamp       string   `json:"timestamp"`
	JobTitle        string   `json:"job_title"`
	Company         string   `json:"company"`
	JobURL          string   `json:"job_url"`
	ATSScore        float64  `json:"ats_score"`
	MissingKeywords []string `json:"missing_keywords"`
	ResumeVersion   string   `json:"resume_version"`
	Status          Status   `json:"status"`
	LastUpdated     string   `json:"last_updated,omitempty"`
	Notes           []Note   `json:"notes,omitempty"`
	FollowUpDate    string   `json:"follow_up_date,omitempty"`
}

// newRecordID builds a time-derived id. The uuid fragment keeps ids
// unique when two appends land within the same second.
func newRecordID(now time.Time) string {
	return fmt.Sprintf("app_%s_%s",
		now.Format("20060102_150405"),
		uuid.NewString()[:8])
}

// Summary aggregates the store by status.
type Summary struct {
	TotalApplications      int            `json:"total_applications"`
	SuccessfulApplications int            `json:"successful_applications"`
	// SuccessRate is (interview+offer+hired)/total as a percentage,
	// rounded to one decimal. Zero when the store is empty.
	SuccessRate     float64        `json:"success_rate"`
	StatusBreakdown map[Status]int `json:"status_breakdown"`
}
