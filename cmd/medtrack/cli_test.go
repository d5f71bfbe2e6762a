package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_ImportThenReport(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DB_DSN", "")
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	dir := t.TempDir()
	db := filepath.Join(dir, "medtrack.db")
	file := filepath.Join(dir, "records.json")
	require.NoError(t, os.WriteFile(file, []byte(`[
		{"name":"A","date":"2024-03-01","time":"08:00","status":"On time"},
		{"name":"A","date":"2024-03-02","time":"08:00","status":"Missed"},
		{"name":"","date":"2024-03-03"}
	]`), 0o600))

	out, err := runCLI(t, "records", "import", file, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 records, skipped 1")

	out, err = runCLI(t, "report", "--db", db, "--year", "2024", "--month-index", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Adherence 50%")
	assert.Contains(t, out, "March 2024")
}

func TestCLI_ReportRejectsInvalidMonth(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := runCLI(t, "report", "--db", filepath.Join(t.TempDir(), "x.db"), "--year", "2024", "--month-index", "12")
	assert.Error(t, err)
}
