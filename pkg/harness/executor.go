package harness

import (
	"runctl/pkg/logging"
)

// runCase executes one case once for one execution key and translates the
// raw outcome into a harness-level result.
//
// The execution protocol is: disabled gate, fuzzer init, tracker reset,
// watchdog arm, suite SetUp, case body, suite TearDown, watchdog disarm,
// classification. TearDown always runs when declared, whatever the body
// returned; its assertion failures are logged but never change the
// classification. The watchdog is disarmed on every return path, including
// the SetUp short-circuit.
func (r *Runner) runCase(suite *TestSuite, tc *TestCase, execKey uint64, force bool) CaseResult {
	if suite == nil || tc == nil || suite.Name == "" || tc.Name == "" {
		logging.Error("harness", nil, "Setup failure: suite or case reference invalid")
		return ResultSetupFailure
	}

	if !tc.Enabled && !force {
		r.reporter.FinalResult("Test", tc.Name, "Skipped (Disabled)", r.reporter.blue)
		return ResultSkipped
	}

	r.fuzzer.Init(execKey)
	r.tracker.Reset()

	// A failed arm means the case runs without a watchdog, not a failed run.
	timer, err := armWatchdog(r.cfg.CaseTimeoutSeconds, bailOut)
	if err != nil {
		logging.Warn("harness", "Failed to arm case watchdog: %v", err)
	}
	defer disarmWatchdog(timer)

	ctx := &CaseContext{
		Asserts: r.tracker,
		Fuzzer:  r.fuzzer,
		ExecKey: execKey,
	}

	if suite.SetUp != nil {
		suite.SetUp(ctx)
		if r.tracker.Result() == ResultFailed {
			r.reporter.FinalResult("Suite Setup", suite.Name, string(ResultFailed), r.reporter.red)
			return ResultSetupFailure
		}
	}

	status := tc.Run(ctx)

	// Snapshot the assertion verdict before TearDown can record more.
	assertResult := r.tracker.Result()
	assertPassed, assertFailed := r.tracker.Counts()

	if suite.TearDown != nil {
		suite.TearDown(ctx)
		if _, f := r.tracker.Counts(); f > assertFailed {
			logging.Warn("harness", "Suite '%s' teardown recorded %d failed assert(s); classification unchanged", suite.Name, f-assertFailed)
		}
	}

	disarmWatchdog(timer)

	var result CaseResult
	switch status {
	case StatusSkipped:
		result = ResultSkipped
	case StatusStarted, StatusAborted:
		// No explicit completion signal; treated as failure regardless of
		// the assertion state.
		result = ResultFailed
	default:
		result = assertResult
	}

	if count := r.fuzzer.InvocationCount(); count > 0 {
		r.reporter.FuzzerInvocations(count)
	}

	switch status {
	case StatusSkipped:
		r.reporter.FinalResult("Test", tc.Name, "Skipped (Programmatically)", r.reporter.blue)
	case StatusStarted:
		r.reporter.FinalResult("Test", tc.Name, "Failed (test started, but did not signal completion)", r.reporter.red)
	case StatusAborted:
		r.reporter.FinalResult("Test", tc.Name, "Failed (Aborted)", r.reporter.red)
	default:
		r.reporter.AssertSummary(assertPassed, assertFailed)
	}

	return result
}
