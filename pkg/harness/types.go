package harness

// CaseStatus is the raw outcome code returned by a test case body.
type CaseStatus int

const (
	// StatusStarted means the body returned without signalling completion.
	StatusStarted CaseStatus = iota
	// StatusCompleted means the body ran to completion.
	StatusCompleted
	// StatusSkipped means the body skipped itself programmatically.
	StatusSkipped
	// StatusAborted means the body bailed out early.
	StatusAborted
)

// CaseResult is the harness-level classification of one case execution.
type CaseResult string

const (
	// ResultPassed indicates the case completed with no failed assertions.
	ResultPassed CaseResult = "Passed"
	// ResultFailed indicates the case failed.
	ResultFailed CaseResult = "Failed"
	// ResultSkipped indicates the case was skipped.
	ResultSkipped CaseResult = "Skipped"
	// ResultNoAsserts indicates the case completed without recording a
	// single assertion; counted as a failure.
	ResultNoAsserts CaseResult = "No Asserts"
	// ResultSetupFailure indicates the suite SetUp hook failed before the
	// case body could run; counted as a failure.
	ResultSetupFailure CaseResult = "Setup Failure"
)

// Run exit codes. ExitNoTests doubles as the structural-failure sentinel.
const (
	ExitPassed       = 0
	ExitFailed       = 1
	ExitSetupFailure = 2
	ExitNoTests      = -1
)

// TestCase is a single named test unit. Cases are owned by the suite that
// declares them and are never mutated by the harness.
type TestCase struct {
	// Name identifies the case; must be non-empty and unique enough to be
	// usable as a filter.
	Name string
	// Description is an optional human-readable summary.
	Description string
	// Enabled gates execution; disabled cases are skipped unless forced by a
	// matching case filter.
	Enabled bool
	// Run is the case body. It must return StatusCompleted (or
	// StatusSkipped) explicitly; a bare StatusStarted counts as a failure.
	Run func(tc *CaseContext) CaseStatus
}

// TestSuite is a named, ordered group of test cases sharing optional
// SetUp/TearDown hooks. Declaration order is the execution and display order.
type TestSuite struct {
	Name     string
	Cases    []*TestCase
	SetUp    func(tc *CaseContext)
	TearDown func(tc *CaseContext)
}

// CaseContext is handed to SetUp, TearDown and the case body. It carries the
// collaborators a body may consume: the assertion tracker and the seeded
// fuzzer for this execution.
type CaseContext struct {
	Asserts AssertTracker
	Fuzzer  Fuzzer
	// ExecKey is the execution key this case run was seeded with.
	ExecKey uint64
}

// AssertTracker is the assertion-recording collaborator. The harness resets
// it before each case execution and consults its summary for classification.
type AssertTracker interface {
	// Reset clears all recorded assertion state.
	Reset()
	// Assert records one assertion outcome and returns the condition.
	Assert(condition bool, messageFmt string, args ...interface{}) bool
	// Result folds the recorded assertions into ResultPassed, ResultFailed,
	// or ResultNoAsserts.
	Result() CaseResult
	// Counts returns the number of passed and failed assertions recorded
	// since the last Reset.
	Counts() (passed, failed int)
}

// Fuzzer is the randomized-input collaborator. The harness itself only
// initializes it with the execution key and reads back its invocation
// counter; the generator methods are consumed by test bodies through the
// CaseContext.
type Fuzzer interface {
	// Init seeds the generator with an execution key, resetting the
	// invocation counter.
	Init(execKey uint64)
	// InvocationCount returns the number of generator calls since Init.
	InvocationCount() int
	// Uint64 returns the next 64-bit fuzz value.
	Uint64() uint64
	// IntRange returns a fuzz value in [min, max].
	IntRange(min, max int) int
	// ASCIIString returns a fuzzed printable ASCII string of the given length.
	ASCIIString(length int) string
}

// FailureRecord references one failing case execution together with the run
// seed needed to reproduce it.
type FailureRecord struct {
	Case *TestCase
	Seed string
}

// counters is a (passed, failed, skipped) triple kept per suite and per run.
type counters struct {
	passed  int
	failed  int
	skipped int
}

func (c *counters) add(result CaseResult) {
	switch result {
	case ResultPassed:
		c.passed++
	case ResultSkipped:
		c.skipped++
	default:
		// Failed, NoAsserts and SetupFailure all count as failures.
		c.failed++
	}
}

func (c *counters) total() int {
	return c.passed + c.failed + c.skipped
}
