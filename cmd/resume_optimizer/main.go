// Package main provides the entry point for the resume optimizer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/thevivhunter/resume-optimizer/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "resume_optimizer",
	Short: "Resume keyword analysis and application tracking",
	Long:  "Resume Optimizer scores a resume against job postings by keyword overlap, suggests improvements, and tracks application history in a local JSON file.",
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig resolves configuration: file (if given), then environment,
// then built-in defaults.
func loadConfig() (config.Config, error) {
	base := config.FromEnv()
	if configPath != "" {
		fileCfg, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		merged := fileCfg.MergeWithDefaults(*base)
		base = &merged
	}
	cfg := base.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
