package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		flagConfig = ""
		flagVerbose = false
	})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRunScenario(t *testing.T) {
	require.NoError(t, execute(t, "run", "pi", "--steps", "50", "--every", "25"))
	require.NoError(t, execute(t, "run", "roll", "--steps", "7", "--every", "0"))
}

func TestRunNeedsScenario(t *testing.T) {
	require.ErrorContains(t, execute(t, "run"), "scenario name or --config is required")
	require.ErrorContains(t, execute(t, "run", "nope"), `unknown scenario "nope"`)
	require.Error(t, execute(t, "run", "roll", "--steps=-1"))
}

func TestList(t *testing.T) {
	require.NoError(t, execute(t, "list"))
	require.Error(t, execute(t, "list", "extra"))
}

func TestRound3(t *testing.T) {
	require.Equal(t, 1.235, round3(1.23456))
	require.Equal(t, -0.5, round3(-0.5))
}
