package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrRecordNotFound is returned by UpdateStatus when no record has the
// requested id. The store is left unchanged; callers report and move on.
var ErrRecordNotFound = errors.New("application record not found")

// ErrInvalidStatus is returned when a status string is not one of the
// recognized application statuses.
var ErrInvalidStatus = errors.New("invalid application status")

// Store is a JSON-file application store. It holds only the file path;
// every operation re-reads the file, so concurrent processes at worst
// race on the whole file, never corrupt individual records.
type Store struct {
	path string

	// validate, when set, checks parsed file contents before they are
	// trusted; a failure is treated the same as unparseable JSON.
	validate func(data []byte) error

	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithValidator installs a content validator run after JSON parsing,
// typically schema validation of the tracking file.
func WithValidator(fn func(data []byte) error) Option {
	return func(s *Store) { s.validate = fn }
}

// withClock fixes the store's clock; used by tests.
func withClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a store backed by the JSON file at path. The file
// does not need to exist yet.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// fileData is the on-disk shape of the tracking file.
type fileData struct {
	Applications []Record `json:"applications"`
}

// load reads the tracking file. A missing or empty file means no
// records yet. An unreadable or malformed file is recoverable: the
// original is preserved under a .corrupt-<timestamp> name and the
// store starts fresh.
func (s *Store) load() (fileData, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return fileData{}, nil
	}
	if err != nil {
		return fileData{}, fmt.Errorf("failed to read tracking file %s: %w", s.path, err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return fileData{}, nil
	}

	var data fileData
	parseErr := json.Unmarshal(raw, &data)
	if parseErr == nil && s.validate != nil {
		parseErr = s.validate(raw)
	}
	if parseErr != nil {
		quarantine := fmt.Sprintf("%s.corrupt-%s", s.path, s.now().UTC().Format("20060102T150405"))
		if renameErr := os.Rename(s.path, quarantine); renameErr != nil {
			return fileData{}, fmt.Errorf("tracking file %s is corrupt (%v) and could not be preserved: %w",
				s.path, parseErr, renameErr)
		}
		log.Printf("tracking file %s was unreadable (%v); preserved as %s, starting fresh",
			s.path, parseErr, quarantine)
		return fileData{}, nil
	}

	return data, nil
}

// save writes data through a temp file in the destination directory and
// renames it into place, so a crash mid-write never clobbers existing
// records.
func (s *Store) save(data fileData) error {
	if data.Applications == nil {
		data.Applications = []Record{}
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tracking data: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create tracking directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp tracking file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write tracking data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp tracking file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace tracking file: %w", err)
	}
	return nil
}

// Append logs a new application. ID, timestamp and a default status of
// "applied" are filled in; the stored record is returned.
func (s *Store) Append(rec Record) (Record, error) {
	if rec.Status == "" {
		rec.Status = StatusApplied
	}
	if !ValidStatus(string(rec.Status)) {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidStatus, rec.Status)
	}
	// Statuses are stored lower-case regardless of input casing.
	rec.Status = Status(strings.ToLower(string(rec.Status)))
	if rec.MissingKeywords == nil {
		rec.MissingKeywords = []string{}
	}

	now := s.now()
	rec.ID = newRecordID(now)
	rec.Timestamp = now.Format(time.RFC3339)

	data, err := s.load()
	if err != nil {
		return Record{}, err
	}
	data.Applications = append(data.Applications, rec)
	if err := s.save(data); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// UpdateStatus sets the status of the record with the given id, and
// appends a timestamped note when note is non-empty. Returns
// ErrRecordNotFound (store untouched) for unknown ids.
func (s *Store) UpdateStatus(id, status, note string) (Record, error) {
	if !ValidStatus(status) {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	data, err := s.load()
	if err != nil {
		return Record{}, err
	}

	for i := range data.Applications {
		if data.Applications[i].ID != id {
			continue
		}
		rec := &data.Applications[i]
		rec.Status = Status(strings.ToLower(status))
		rec.LastUpdated = s.now().Format(time.RFC3339)
		if note != "" {
			rec.Notes = append(rec.Notes, Note{
				Timestamp: rec.LastUpdated,
				Note:      note,
			})
		}
		if err := s.save(data); err != nil {
			return Record{}, err
		}
		return *rec, nil
	}

	return Record{}, fmt.Errorf("%w: %q", ErrRecordNotFound, id)
}

// List returns all records in append order.
func (s *Store) List() ([]Record, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	if data.Applications == nil {
		return []Record{}, nil
	}
	return data.Applications, nil
}

// Summarize aggregates the store: counts by status and the share of
// applications that reached interview, offer or hired.
func (s *Store) Summarize() (Summary, error) {
	data, err := s.load()
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{StatusBreakdown: make(map[Status]int)}
	summary.TotalApplications = len(data.Applications)
	for _, rec := range data.Applications {
		summary.StatusBreakdown[rec.Status]++
		if successStatuses[rec.Status] {
			summary.SuccessfulApplications++
		}
	}
	if summary.TotalApplications > 0 {
		rate := float64(summary.SuccessfulApplications) / float64(summary.TotalApplications) * 100
		summary.SuccessRate = float64(int(rate*10+0.5)) / 10
	}
	return summary, nil
}
