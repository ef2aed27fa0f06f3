package harness

import "runctl/pkg/logging"

// assertTracker is the default AssertTracker implementation. The harness is
// single-threaded, so no locking is needed.
type assertTracker struct {
	passedCount int
	failedCount int
}

// NewAssertTracker returns the default assertion tracker.
func NewAssertTracker() AssertTracker {
	return &assertTracker{}
}

func (a *assertTracker) Reset() {
	a.passedCount = 0
	a.failedCount = 0
}

// Assert records one assertion outcome. Failed assertions are logged
// immediately so the failing condition appears next to the case output.
func (a *assertTracker) Assert(condition bool, messageFmt string, args ...interface{}) bool {
	if condition {
		a.passedCount++
		logging.Debug("assert", "Assert Passed: "+messageFmt, args...)
	} else {
		a.failedCount++
		logging.Error("assert", nil, "Assert Failed: "+messageFmt, args...)
	}
	return condition
}

func (a *assertTracker) Result() CaseResult {
	if a.failedCount > 0 {
		return ResultFailed
	}
	if a.passedCount == 0 {
		return ResultNoAsserts
	}
	return ResultPassed
}

func (a *assertTracker) Counts() (passed, failed int) {
	return a.passedCount, a.failedCount
}
