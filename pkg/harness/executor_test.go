package harness

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyFuzzer records Init calls so tests can prove the fuzzer was (or was
// not) touched.
type spyFuzzer struct {
	initKeys []uint64
	calls    int
}

func (s *spyFuzzer) Init(execKey uint64) {
	s.initKeys = append(s.initKeys, execKey)
	s.calls = 0
}
func (s *spyFuzzer) InvocationCount() int { return s.calls }
func (s *spyFuzzer) Uint64() uint64 {
	s.calls++
	return 1
}
func (s *spyFuzzer) IntRange(min, max int) int {
	s.calls++
	return min
}
func (s *spyFuzzer) ASCIIString(length int) string {
	s.calls++
	return ""
}

// spyTracker counts Reset calls on top of the real tracker.
type spyTracker struct {
	AssertTracker
	resets int
}

func (s *spyTracker) Reset() {
	s.resets++
	s.AssertTracker.Reset()
}

func newExecutorFixture() (*Runner, *spyTracker, *spyFuzzer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	tracker := &spyTracker{AssertTracker: NewAssertTracker()}
	fz := &spyFuzzer{}
	runner := NewRunner(Config{}, NewReporter(out, false), tracker, fz)
	return runner, tracker, fz, out
}

func passingCase(name string) *TestCase {
	return &TestCase{
		Name:    name,
		Enabled: true,
		Run: func(tc *CaseContext) CaseStatus {
			tc.Asserts.Assert(true, "holds")
			return StatusCompleted
		},
	}
}

func TestRunCaseClassification(t *testing.T) {
	tests := []struct {
		name   string
		body   func(tc *CaseContext) CaseStatus
		want   CaseResult
	}{
		{
			name: "completed with passing asserts",
			body: func(tc *CaseContext) CaseStatus {
				tc.Asserts.Assert(true, "holds")
				return StatusCompleted
			},
			want: ResultPassed,
		},
		{
			name: "completed with a failing assert",
			body: func(tc *CaseContext) CaseStatus {
				tc.Asserts.Assert(false, "does not hold")
				return StatusCompleted
			},
			want: ResultFailed,
		},
		{
			name: "completed without asserts",
			body: func(tc *CaseContext) CaseStatus {
				return StatusCompleted
			},
			want: ResultNoAsserts,
		},
		{
			name: "programmatic skip wins over failed asserts",
			body: func(tc *CaseContext) CaseStatus {
				tc.Asserts.Assert(false, "recorded but irrelevant")
				return StatusSkipped
			},
			want: ResultSkipped,
		},
		{
			name: "started without completion signal fails despite passing asserts",
			body: func(tc *CaseContext) CaseStatus {
				tc.Asserts.Assert(true, "holds")
				return StatusStarted
			},
			want: ResultFailed,
		},
		{
			name: "aborted fails despite passing asserts",
			body: func(tc *CaseContext) CaseStatus {
				tc.Asserts.Assert(true, "holds")
				return StatusAborted
			},
			want: ResultFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, _, _, _ := newExecutorFixture()
			suite := &TestSuite{Name: "suite"}
			tc := &TestCase{Name: "case", Enabled: true, Run: tt.body}

			result := runner.runCase(suite, tc, 1234, false)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestRunCaseDisabledGateHasNoSideEffects(t *testing.T) {
	runner, tracker, fz, out := newExecutorFixture()
	bodyRan := false
	suite := &TestSuite{Name: "suite"}
	tc := &TestCase{
		Name:    "disabled_case",
		Enabled: false,
		Run: func(tc *CaseContext) CaseStatus {
			bodyRan = true
			return StatusCompleted
		},
	}

	result := runner.runCase(suite, tc, 1234, false)

	assert.Equal(t, ResultSkipped, result)
	assert.False(t, bodyRan)
	assert.Empty(t, fz.initKeys, "fuzzer must not be touched")
	assert.Zero(t, tracker.resets, "tracker must not be touched")
	assert.Contains(t, out.String(), ">>> Test 'disabled_case': Skipped (Disabled)")
}

func TestRunCaseForceRunOverridesDisabled(t *testing.T) {
	runner, _, fz, _ := newExecutorFixture()
	bodyRan := false
	suite := &TestSuite{Name: "suite"}
	tc := &TestCase{
		Name:    "disabled_case",
		Enabled: false,
		Run: func(tc *CaseContext) CaseStatus {
			bodyRan = true
			tc.Asserts.Assert(true, "holds")
			return StatusCompleted
		},
	}

	result := runner.runCase(suite, tc, 1234, true)

	assert.Equal(t, ResultPassed, result)
	assert.True(t, bodyRan)
	require.Len(t, fz.initKeys, 1)
	assert.Equal(t, uint64(1234), fz.initKeys[0])
}

func TestRunCaseSetupFailureShortCircuits(t *testing.T) {
	runner, _, _, out := newExecutorFixture()
	bodyRan := false
	teardownRan := false
	suite := &TestSuite{
		Name: "suite",
		SetUp: func(tc *CaseContext) {
			tc.Asserts.Assert(false, "setup breaks")
		},
		TearDown: func(tc *CaseContext) {
			teardownRan = true
		},
	}

	tc := &TestCase{
		Name:    "case",
		Enabled: true,
		Run: func(tc *CaseContext) CaseStatus {
			bodyRan = true
			return StatusCompleted
		},
	}

	result := runner.runCase(suite, tc, 1234, false)

	assert.Equal(t, ResultSetupFailure, result)
	assert.False(t, bodyRan)
	assert.False(t, teardownRan, "teardown must not run after a setup failure")
	assert.Contains(t, out.String(), ">>> Suite Setup 'suite': Failed")
}

func TestRunCaseTearDownAlwaysRuns(t *testing.T) {
	for _, status := range []CaseStatus{StatusCompleted, StatusSkipped, StatusStarted, StatusAborted} {
		runner, _, _, _ := newExecutorFixture()
		teardownRan := false
		suite := &TestSuite{
			Name:     "suite",
			TearDown: func(tc *CaseContext) { teardownRan = true },
		}
		tc := &TestCase{
			Name:    "case",
			Enabled: true,
			Run: func(tc *CaseContext) CaseStatus {
				tc.Asserts.Assert(true, "holds")
				return status
			},
		}

		runner.runCase(suite, tc, 1, false)
		assert.True(t, teardownRan, "teardown must run for status %d", status)
	}
}

func TestRunCaseTearDownFailureDoesNotChangeClassification(t *testing.T) {
	runner, _, _, _ := newExecutorFixture()
	suite := &TestSuite{
		Name: "suite",
		TearDown: func(tc *CaseContext) {
			tc.Asserts.Assert(false, "teardown breaks")
		},
	}

	result := runner.runCase(suite, passingCase("case"), 1, false)
	assert.Equal(t, ResultPassed, result)
}

func TestRunCaseRunsUnguardedWhenArmFails(t *testing.T) {
	// NewRunner clamps non-positive timeouts, so a failing arm needs a
	// hand-built runner. The case must still execute and classify normally.
	out := &bytes.Buffer{}
	runner := &Runner{
		cfg:      Config{CaseTimeoutSeconds: -1},
		reporter: NewReporter(out, false),
		tracker:  NewAssertTracker(),
		fuzzer:   NewFuzzer(),
	}

	result := runner.runCase(&TestSuite{Name: "suite"}, passingCase("case"), 1, false)

	assert.Equal(t, ResultPassed, result)
	assert.Contains(t, out.String(), "Assert Summary: Total=1 Passed=1 Failed=0")
}

func TestRunCaseReportsFuzzerInvocations(t *testing.T) {
	runner, _, _, out := newExecutorFixture()
	suite := &TestSuite{Name: "suite"}
	tc := &TestCase{
		Name:    "case",
		Enabled: true,
		Run: func(tc *CaseContext) CaseStatus {
			tc.Fuzzer.Uint64()
			tc.Fuzzer.IntRange(0, 3)
			tc.Asserts.Assert(true, "holds")
			return StatusCompleted
		},
	}

	runner.runCase(suite, tc, 1, false)
	assert.Contains(t, out.String(), "Fuzzer invocations: 2")
}
