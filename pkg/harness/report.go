package harness

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CaseReport is the per-case entry of a RunReport. Result is the
// classification of the case's last iteration.
type CaseReport struct {
	Name   string     `json:"name"`
	Result CaseResult `json:"result"`
}

// SuiteReport aggregates one executed suite.
type SuiteReport struct {
	Name    string       `json:"name"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Skipped int          `json:"skipped"`
	Cases   []CaseReport `json:"cases"`
}

// RunReport is the machine-readable run result written next to the textual
// log when a report directory is configured.
type RunReport struct {
	Seed      string        `json:"seed"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
	Total     int           `json:"total"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped"`
	Suites    []SuiteReport `json:"suites"`
	Failures  []string      `json:"failures,omitempty"`
	ExitCode  int           `json:"exit_code"`
}

// writeRunReport saves the report as a timestamped JSON file in dir,
// creating the directory if needed. Returns the full path written.
func writeRunReport(dir string, report *RunReport) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	filename := fmt.Sprintf("runctl-report-%s.json", report.EndTime.Format("20060102-150405"))
	fullPath := filepath.Join(dir, filename)

	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if err := os.WriteFile(fullPath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return fullPath, nil
}
