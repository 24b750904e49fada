package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thevivhunter/resume-optimizer/internal/config"
	"github.com/thevivhunter/resume-optimizer/internal/tracker"
)

func resetFlags(t *testing.T) {
	t.Helper()
	configPath = ""
	verbose = false
	analyzeResume = ""
	analyzeJobFile = ""
	analyzeJobURL = ""
	analyzeTop = 0
	analyzeCategories = false
	analyzeJSON = false
	analyzeSave = false
	optimizeResume = ""
	optimizeJobFile = ""
	optimizeJobURL = ""
	optimizeTitle = ""
	optimizeCompany = ""
	optimizeVersion = ""
	trackStatus = ""
	trackNote = ""
	exportOut = ""
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetFlags(t)

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultTrackingFile, cfg.TrackingFile)
	assert.Equal(t, config.DefaultMinATSScore, cfg.MinATSScore)
	assert.Equal(t, config.DefaultTopKeywords, cfg.TopKeywords)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	resetFlags(t)
	t.Setenv("TRACKING_FILE", "custom.json")
	t.Setenv("MIN_ATS_SCORE", "85")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "custom.json", cfg.TrackingFile)
	assert.Equal(t, 85.0, cfg.MinATSScore)
}

func TestLoadConfig_FileBeatsEnv(t *testing.T) {
	resetFlags(t)
	t.Setenv("TRACKING_FILE", "from_env.json")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tracking_file": "from_file.json"}`), 0o644))
	configPath = path

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from_file.json", cfg.TrackingFile)
}

func TestLoadConfig_InvalidConfigFile(t *testing.T) {
	resetFlags(t)
	configPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestRunAnalyze_MutuallyExclusiveSources(t *testing.T) {
	resetFlags(t)
	analyzeJobFile = "job.txt"
	analyzeJobURL = "https://example.com/job"

	err := runAnalyze(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestRunAnalyze_NoResume(t *testing.T) {
	resetFlags(t)
	analyzeJobFile = "job.txt"

	err := runAnalyze(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no resume provided")
}

func TestRunAnalyze_FromFiles(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	resumePath := filepath.Join(dir, "resume.txt")
	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("soc analyst with siem experience"), 0o644))
	require.NoError(t, os.WriteFile(jobPath, []byte("siem analyst incident response"), 0o644))

	analyzeResume = resumePath
	analyzeJobFile = jobPath
	analyzeCmd.SetContext(context.Background())

	err := runAnalyze(analyzeCmd, nil)
	assert.NoError(t, err)
}

func TestRunOptimize_TracksApplication(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	trackingFile := filepath.Join(dir, "apps.json")
	t.Setenv("TRACKING_FILE", trackingFile)

	resumePath := filepath.Join(dir, "resume.txt")
	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("soc analyst with siem experience"), 0o644))
	require.NoError(t, os.WriteFile(jobPath, []byte("siem analyst incident response"), 0o644))

	optimizeResume = resumePath
	optimizeJobFile = jobPath
	optimizeTitle = "SOC Analyst"
	optimizeCompany = "Acme"
	optimizeCmd.SetContext(context.Background())

	require.NoError(t, runOptimize(optimizeCmd, nil))

	records, err := tracker.NewStore(trackingFile).List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "SOC Analyst", records[0].JobTitle)
	assert.Equal(t, "Acme", records[0].Company)
	assert.Equal(t, tracker.StatusApplied, records[0].Status)
}

func TestRunTrackUpdate_AndList(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	trackingFile := filepath.Join(dir, "apps.json")
	t.Setenv("TRACKING_FILE", trackingFile)

	rec, err := tracker.NewStore(trackingFile).Append(tracker.Record{
		JobTitle: "Analyst",
		Company:  "Acme",
		ATSScore: 70,
	})
	require.NoError(t, err)

	trackStatus = "interview"
	trackNote = "Phone screen scheduled"
	require.NoError(t, runTrackUpdate(trackUpdateCmd, []string{rec.ID}))

	records, err := tracker.NewStore(trackingFile).List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, tracker.StatusInterview, records[0].Status)
	require.Len(t, records[0].Notes, 1)
	assert.Equal(t, "Phone screen scheduled", records[0].Notes[0].Note)

	require.NoError(t, runTrackList(trackListCmd, nil))
	require.NoError(t, runTrackSummary(trackSummaryCmd, nil))
}

func TestRunTrackUpdate_UnknownID(t *testing.T) {
	resetFlags(t)
	t.Setenv("TRACKING_FILE", filepath.Join(t.TempDir(), "apps.json"))

	trackStatus = "interview"
	err := runTrackUpdate(trackUpdateCmd, []string{"app_nope"})
	assert.ErrorIs(t, err, tracker.ErrRecordNotFound)
}

func TestRunExport_WritesFile(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	trackingFile := filepath.Join(dir, "apps.json")
	t.Setenv("TRACKING_FILE", trackingFile)

	_, err := tracker.NewStore(trackingFile).Append(tracker.Record{
		JobTitle: "Analyst",
		Company:  "Acme",
		ATSScore: 72.5,
	})
	require.NoError(t, err)

	exportOut = filepath.Join(dir, "export.csv")
	require.NoError(t, runExport(exportCmd, nil))

	data, err := os.ReadFile(exportOut)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "id,timestamp,job_title")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "72.5")
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"analyze", "optimize", "track", "export"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	resetFlags(t)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"definitely-not-a-command"})

	err := rootCmd.Execute()
	assert.Error(t, err)
}
