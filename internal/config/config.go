// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/thevivhunter/resume-optimizer/internal/keywords"
)

// Defaults mirrored from the tool's original settings.
const (
	DefaultTrackingFile = "job_applications.json"
	DefaultReportsDir   = "reports"
	DefaultMinATSScore  = 70.0
	DefaultTopKeywords  = keywords.DefaultTopN
)

// Config is the tool configuration. Every field is optional; missing
// values fall back to defaults or CLI flags.
type Config struct {
	// Paths
	ResumePath   string `json:"resume_path,omitempty"`
	TrackingFile string `json:"tracking_file,omitempty"`
	ReportsDir   string `json:"reports_dir,omitempty"`

	// Analysis
	MinATSScore float64 `json:"min_ats_score,omitempty" validate:"gte=0,lte=100"`
	TopKeywords int     `json:"top_keywords,omitempty" validate:"gte=0"`

	// Domain tables. Empty means the built-in cybersecurity defaults.
	KeywordCategories map[string][]string `json:"keyword_categories,omitempty"`
	Blacklist         []string            `json:"blacklist,omitempty"`
	StopWords         []string            `json:"stop_words,omitempty"`

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"`
	Verbose    bool `json:"verbose,omitempty"`
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Unset variables
// leave fields empty for later merging.
func FromEnv() *Config {
	cfg := &Config{
		ResumePath:   os.Getenv("RESUME_PATH"),
		TrackingFile: os.Getenv("TRACKING_FILE"),
		ReportsDir:   os.Getenv("REPORTS_DIR"),
	}
	if v := os.Getenv("MIN_ATS_SCORE"); v != "" {
		if score, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MinATSScore = score
		}
	}
	if v := os.Getenv("TOP_KEYWORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TopKeywords = n
		}
	}
	return cfg
}

// Validate checks field ranges via struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// MergeWithDefaults fills empty fields of c from defaults, returning a
// new Config. Bool fields are not merged; CLI flags win for those.
// Zero means unset: an explicit MinATSScore or TopKeywords of 0 is
// replaced by the default, so a zero score target cannot be configured.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ResumePath == "" {
		result.ResumePath = defaults.ResumePath
	}
	if result.TrackingFile == "" {
		result.TrackingFile = defaults.TrackingFile
	}
	if result.ReportsDir == "" {
		result.ReportsDir = defaults.ReportsDir
	}
	if result.MinATSScore == 0 {
		result.MinATSScore = defaults.MinATSScore
	}
	if result.TopKeywords == 0 {
		result.TopKeywords = defaults.TopKeywords
	}
	if result.KeywordCategories == nil {
		result.KeywordCategories = defaults.KeywordCategories
	}
	if result.Blacklist == nil {
		result.Blacklist = defaults.Blacklist
	}
	if result.StopWords == nil {
		result.StopWords = defaults.StopWords
	}
	return result
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		TrackingFile: DefaultTrackingFile,
		ReportsDir:   DefaultReportsDir,
		MinATSScore:  DefaultMinATSScore,
		TopKeywords:  DefaultTopKeywords,
	}
}

// Categories returns the configured category table, or the built-in
// cybersecurity taxonomy when none is configured.
func (c *Config) Categories() keywords.Categories {
	if len(c.KeywordCategories) == 0 {
		return keywords.DefaultCategories()
	}
	return keywords.Categories(c.KeywordCategories)
}

// BlacklistSet returns the configured blacklist as a set, or the
// built-in default.
func (c *Config) BlacklistSet() map[string]bool {
	if len(c.Blacklist) == 0 {
		return keywords.DefaultBlacklist()
	}
	set := make(map[string]bool, len(c.Blacklist))
	for _, term := range c.Blacklist {
		set[term] = true
	}
	return set
}

// StopWordSet returns the configured stop-word override as a set, or
// nil to use the normalizer's default.
func (c *Config) StopWordSet() map[string]bool {
	if len(c.StopWords) == 0 {
		return nil
	}
	set := make(map[string]bool, len(c.StopWords))
	for _, w := range c.StopWords {
		set[w] = true
	}
	return set
}
