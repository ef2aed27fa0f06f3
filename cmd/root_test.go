package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandHasExpectedSubcommands(t *testing.T) {
	expected := []string{"run", "list", "version", "self-update"}

	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range expected {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestSetVersion(t *testing.T) {
	prev := rootCmd.Version
	t.Cleanup(func() { rootCmd.Version = prev })

	SetVersion("1.2.3")
	require.Equal(t, "1.2.3", rootCmd.Version)
}
