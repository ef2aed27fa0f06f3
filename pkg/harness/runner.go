package harness

import (
	"os"
	"strings"
	"time"

	"runctl/pkg/logging"
)

// Config is the run configuration passed into the orchestrator at
// construction. The zero value is usable: seed and key are resolved per run,
// iterations clamp to 1 and the timeout falls back to DefaultCaseTimeout.
type Config struct {
	// Seed is the run seed; generated when empty.
	Seed string
	// ExecKey, when non-zero, is used verbatim for every iteration instead
	// of deriving per-iteration keys. Used for exact single-failure repro.
	ExecKey uint64
	// Filter selects a single suite or case by name (case-insensitive,
	// exact). Empty disables filtering.
	Filter string
	// Iterations is how many times each selected case runs; minimum 1.
	Iterations int
	// CaseTimeoutSeconds is the process-wide per-case execution ceiling.
	CaseTimeoutSeconds int
	// ReportDir, when non-empty, receives a JSON run report.
	ReportDir string
}

// Runner drives a full run over an ordered list of suites.
type Runner struct {
	cfg      Config
	reporter *Reporter
	tracker  AssertTracker
	fuzzer   Fuzzer
}

// NewRunner creates a runner. Nil collaborators fall back to the package
// defaults; reporter nil falls back to a colored stdout reporter.
func NewRunner(cfg Config, reporter *Reporter, tracker AssertTracker, fz Fuzzer) *Runner {
	if reporter == nil {
		reporter = NewReporter(os.Stdout, true)
	}
	if tracker == nil {
		tracker = NewAssertTracker()
	}
	if fz == nil {
		fz = NewFuzzer()
	}
	if cfg.CaseTimeoutSeconds <= 0 {
		cfg.CaseTimeoutSeconds = DefaultCaseTimeout
	}
	if cfg.Iterations < 1 {
		cfg.Iterations = 1
	}
	return &Runner{
		cfg:      cfg,
		reporter: reporter,
		tracker:  tracker,
		fuzzer:   fz,
	}
}

// RunSuites runs all suites with default collaborators and returns the run
// exit code.
func RunSuites(suites []*TestSuite, cfg Config) int {
	return NewRunner(cfg, nil, nil, nil).Run(suites)
}

// elapsedSeconds returns wall time since start, clamped at zero against
// clock measurement noise.
func elapsedSeconds(start time.Time) float64 {
	seconds := time.Since(start).Seconds()
	if seconds < 0 {
		return 0
	}
	return seconds
}

// Run executes every selected case of every selected suite for the
// configured number of iterations and returns the run exit code: 0 when all
// executed tests passed, 1 on any failure, 2 on setup failure or filter
// miss, ExitNoTests when there is nothing to run.
func (r *Runner) Run(suites []*TestSuite) int {
	// Resolve the run seed.
	seed := r.cfg.Seed
	if seed == "" {
		generated, err := GenerateRunSeed(RunSeedLength)
		if err != nil {
			logging.Error("harness", err, "Generating a random seed failed")
			return ExitSetupFailure
		}
		seed = generated
	}

	runStart := time.Now()
	r.reporter.RunStarted(seed)

	// Count all cases up front, ignoring enablement.
	totalCases := 0
	for _, suite := range suites {
		totalCases += len(suite.Cases)
	}
	if totalCases == 0 {
		logging.Error("harness", nil, "No tests to run?")
		return ExitNoTests
	}

	// Failure records grow dynamically: with iterations > 1 the same case
	// can be recorded once per failing iteration.
	failures := make([]FailureRecord, 0, totalCases)

	// Resolve the optional filter. Suites are walked in order, checking each
	// suite's name before its case names; the first match wins, so a case
	// match in an earlier suite takes precedence over a suite-name match in a
	// later one.
	var suiteFilterName, caseFilterName string
	if r.cfg.Filter != "" {
	filterScan:
		for _, suite := range suites {
			if strings.EqualFold(r.cfg.Filter, suite.Name) {
				suiteFilterName = suite.Name
				r.reporter.FilterSuite(suiteFilterName)
				break filterScan
			}
			for _, tc := range suite.Cases {
				if strings.EqualFold(r.cfg.Filter, tc.Name) {
					suiteFilterName = suite.Name
					caseFilterName = tc.Name
					r.reporter.FilterCase(caseFilterName, suiteFilterName)
					break filterScan
				}
			}
		}

		if suiteFilterName == "" {
			r.reporter.FilterMiss(r.cfg.Filter, suites)
			r.reporter.ExitCode(ExitSetupFailure)
			return ExitSetupFailure
		}
	}

	report := &RunReport{
		Seed:      seed,
		StartTime: runStart,
	}

	var runCounters counters

	for suiteIndex, suite := range suites {
		displaySuite := suiteIndex + 1

		if suiteFilterName != "" && !strings.EqualFold(suiteFilterName, suite.Name) {
			r.reporter.SuiteSkipped(displaySuite, suite.Name)
			continue
		}

		var suiteCounters counters
		suiteStart := time.Now()
		r.reporter.SuiteStarted(displaySuite, suite.Name)

		suiteReport := SuiteReport{Name: suite.Name}

		for caseIndex, tc := range suite.Cases {
			displayCase := caseIndex + 1

			if caseFilterName != "" && !strings.EqualFold(caseFilterName, tc.Name) {
				r.reporter.CaseSkipped(displaySuite, displayCase, tc.Name)
				continue
			}

			// A case filter forces execution of a disabled case so it can
			// be debugged without flipping the flag in code.
			forceRun := false
			if caseFilterName != "" && !tc.Enabled {
				r.reporter.ForcedRun()
				forceRun = true
			}

			caseStart := time.Now()
			r.reporter.CaseStarted(displaySuite, displayCase, tc.Name)
			if tc.Description != "" {
				r.reporter.CaseDescription(tc.Description)
			}

			var result CaseResult
			for iteration := 1; iteration <= r.cfg.Iterations; iteration++ {
				execKey := r.cfg.ExecKey
				if execKey == 0 {
					derived, err := DeriveExecKey(seed, suite.Name, tc.Name, iteration)
					if err != nil {
						logging.Error("harness", err, "Deriving execution key failed")
					}
					execKey = derived
				}

				r.reporter.Iteration(iteration, execKey)
				result = r.runCase(suite, tc, execKey, forceRun)

				suiteCounters.add(result)
				runCounters.add(result)

				if result == ResultFailed {
					failures = append(failures, FailureRecord{Case: tc, Seed: seed})
				}
			}

			r.reporter.CaseRuntime(r.cfg.Iterations, elapsedSeconds(caseStart))

			switch result {
			case ResultPassed:
				r.reporter.FinalResult("Test", tc.Name, string(ResultPassed), r.reporter.green)
			case ResultFailed:
				r.reporter.FinalResult("Test", tc.Name, string(ResultFailed), r.reporter.red)
			case ResultNoAsserts:
				r.reporter.FinalResult("Test", tc.Name, string(ResultNoAsserts), r.reporter.blue)
			}

			suiteReport.Cases = append(suiteReport.Cases, CaseReport{Name: tc.Name, Result: result})
		}

		r.reporter.SuiteRuntime(elapsedSeconds(suiteStart))
		r.reporter.Summary("Suite", suiteCounters.passed, suiteCounters.failed, suiteCounters.skipped)
		if suiteCounters.failed == 0 {
			r.reporter.FinalResult("Suite", suite.Name, string(ResultPassed), r.reporter.green)
		} else {
			r.reporter.FinalResult("Suite", suite.Name, string(ResultFailed), r.reporter.red)
		}

		suiteReport.Passed = suiteCounters.passed
		suiteReport.Failed = suiteCounters.failed
		suiteReport.Skipped = suiteCounters.skipped
		report.Suites = append(report.Suites, suiteReport)
	}

	r.reporter.RunRuntime(elapsedSeconds(runStart))
	r.reporter.Summary("Run", runCounters.passed, runCounters.failed, runCounters.skipped)

	exitCode := ExitPassed
	if runCounters.failed == 0 {
		r.reporter.FinalResult("Run /w seed", seed, string(ResultPassed), r.reporter.green)
	} else {
		exitCode = ExitFailed
		r.reporter.FinalResult("Run /w seed", seed, string(ResultFailed), r.reporter.red)
	}

	r.reporter.Repro(failures)

	if r.cfg.ReportDir != "" {
		report.EndTime = time.Now()
		report.Duration = report.EndTime.Sub(report.StartTime)
		report.Total = runCounters.total()
		report.Passed = runCounters.passed
		report.Failed = runCounters.failed
		report.Skipped = runCounters.skipped
		report.ExitCode = exitCode
		for _, rec := range failures {
			report.Failures = append(report.Failures, " --seed "+rec.Seed+" --filter "+rec.Case.Name)
		}
		if path, err := writeRunReport(r.cfg.ReportDir, report); err != nil {
			logging.Error("harness", err, "Failed to save run report")
		} else {
			logging.Info("harness", "Run report saved to %s", path)
		}
	}

	r.reporter.ExitCode(exitCode)
	return exitCode
}
