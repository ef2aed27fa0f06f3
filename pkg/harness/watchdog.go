package harness

import (
	"fmt"
	"os"
	"time"

	"runctl/pkg/logging"
)

// DefaultCaseTimeout is the per-case execution ceiling in seconds.
const DefaultCaseTimeout = 3600

// timeoutExitCode is the process exit code used when the watchdog fires.
const timeoutExitCode = 3

// For mocking in tests
var exitProcess = os.Exit

// armWatchdog schedules a one-shot timer that invokes onTimeout after the
// given number of seconds. The returned timer handle is passed to
// disarmWatchdog on every normal exit path.
func armWatchdog(timeoutSeconds int, onTimeout func()) (*time.Timer, error) {
	if onTimeout == nil {
		return nil, fmt.Errorf("timeout callback must not be nil")
	}
	if timeoutSeconds <= 0 {
		return nil, fmt.Errorf("timeout must be bigger than zero, got %d", timeoutSeconds)
	}
	return time.AfterFunc(time.Duration(timeoutSeconds)*time.Second, onTimeout), nil
}

// disarmWatchdog cancels the timer. Safe to call with a nil handle or after
// the timer already fired.
func disarmWatchdog(timer *time.Timer) {
	if timer != nil {
		timer.Stop()
	}
}

// bailOut is the watchdog callback: the running case is presumed hung or in
// undefined state, so the process is terminated without unwinding. Counters
// and logs for the in-flight case are intentionally never finalized.
func bailOut() {
	logging.Error("harness", nil, "Case timeout expired. Aborting test run.")
	exitProcess(timeoutExitCode)
}
