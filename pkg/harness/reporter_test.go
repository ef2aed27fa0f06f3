package harness

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func plainReporter() (*Reporter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewReporter(out, false), out
}

func TestReporterStableFormats(t *testing.T) {
	tests := []struct {
		name string
		emit func(r *Reporter)
		want string
	}{
		{
			name: "run banner",
			emit: func(r *Reporter) { r.RunStarted("ABCD1234ABCD1234") },
			want: "::::: Test Run /w seed 'ABCD1234ABCD1234' started\n\n",
		},
		{
			name: "suite banner",
			emit: func(r *Reporter) { r.SuiteStarted(2, "fuzzer") },
			want: "===== Test Suite 2: 'fuzzer' started\n\n",
		},
		{
			name: "suite skipped",
			emit: func(r *Reporter) { r.SuiteSkipped(1, "execkey") },
			want: "===== Test Suite 1: 'execkey' skipped\n\n",
		},
		{
			name: "case banner",
			emit: func(r *Reporter) { r.CaseStarted(1, 3, "seed_generation") },
			want: "----- Test Case 1.3: 'seed_generation' started\n",
		},
		{
			name: "case skipped",
			emit: func(r *Reporter) { r.CaseSkipped(1, 2, "dormant") },
			want: "===== Test Case 1.2: 'dormant' skipped\n\n",
		},
		{
			name: "iteration",
			emit: func(r *Reporter) { r.Iteration(4, 987654321) },
			want: "Test Iteration 4: execKey 987654321\n",
		},
		{
			name: "final result",
			emit: func(r *Reporter) { r.FinalResult("Test", "passes", "Passed", lipgloss.Style{}) },
			want: ">>> Test 'passes': Passed\n\n",
		},
		{
			name: "summary",
			emit: func(r *Reporter) { r.Summary("Run", 3, 1, 2) },
			want: "Run Summary: Total=6 Passed=3 Failed=1 Skipped=2\n",
		},
		{
			name: "exit code",
			emit: func(r *Reporter) { r.ExitCode(1) },
			want: "Exit code: 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := plainReporter()
			tt.emit(r)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestReporterRepro(t *testing.T) {
	r, out := plainReporter()
	tc := &TestCase{Name: "always_fails"}

	r.Repro([]FailureRecord{
		{Case: tc, Seed: "SEED000000000000"},
		{Case: tc, Seed: "SEED000000000000"},
	})

	want := "Harness input to repro failures:\n" +
		" --seed SEED000000000000 --filter always_fails\n" +
		" --seed SEED000000000000 --filter always_fails\n"
	assert.Equal(t, want, out.String())
}

func TestReporterReproSilentWithoutFailures(t *testing.T) {
	r, out := plainReporter()
	r.Repro(nil)
	assert.Empty(t, out.String())
}

func TestReporterListingMarksDisabledCases(t *testing.T) {
	r, out := plainReporter()
	suites := []*TestSuite{
		{
			Name: "mixed",
			Cases: []*TestCase{
				{Name: "passes", Enabled: true},
				{Name: "dormant", Enabled: false},
			},
		},
	}

	r.Listing(suites)

	want := "Test suite: mixed\n" +
		"      test: passes\n" +
		"      test: dormant (disabled)\n"
	assert.Equal(t, want, out.String())
}

func TestReporterCaseRuntime(t *testing.T) {
	r, out := plainReporter()
	r.CaseRuntime(1, 1.26)
	assert.Equal(t, "Total Test runtime: 1.3 sec\n", out.String())

	out.Reset()
	r.CaseRuntime(4, 2.0)
	assert.Equal(t, "Runtime of 4 iterations: 2.0 sec\nAverage Test runtime: 0.50000 sec\n", out.String())
}

func TestReporterPercentEscapesInNames(t *testing.T) {
	// Names containing format verbs must pass through untouched.
	r, out := plainReporter()
	r.CaseStarted(1, 1, "weird%dname")
	assert.Contains(t, out.String(), "weird%dname")
}
