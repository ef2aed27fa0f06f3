package config

import "runctl/pkg/harness"

// GetDefaultConfig returns the built-in configuration used before any user
// or project file is layered on top.
func GetDefaultConfig() Config {
	return Config{
		CaseTimeoutSeconds: harness.DefaultCaseTimeout,
		Iterations:         1,
		LogLevel:           "info",
	}
}
