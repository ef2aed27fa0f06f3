package config

// Config is the runctl configuration loaded from YAML. Zero/empty fields
// keep their defaults when layering.
type Config struct {
	// CaseTimeoutSeconds is the process-wide per-case execution ceiling.
	CaseTimeoutSeconds int `yaml:"caseTimeoutSeconds,omitempty"`
	// Iterations is how many times each case runs per invocation.
	Iterations int `yaml:"iterations,omitempty"`
	// ReportDir receives JSON run reports when set.
	ReportDir string `yaml:"reportDir,omitempty"`
	// NoColor disables ANSI styling of the run output.
	NoColor bool `yaml:"noColor,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel,omitempty"`
}
