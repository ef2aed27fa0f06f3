package harness

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter writes the harness's log lines. The Summary, ">>> ..." final
// result and " --seed ... --filter ..." repro formats are a stable contract
// relied on by downstream log scraping; change them with care.
type Reporter struct {
	out io.Writer

	red    lipgloss.Style
	green  lipgloss.Style
	blue   lipgloss.Style
	yellow lipgloss.Style
}

// NewReporter creates a reporter writing to out. With color disabled all
// styles render as plain text, which is also what tests capture.
func NewReporter(out io.Writer, color bool) *Reporter {
	r := &Reporter{out: out}
	if color {
		r.red = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		r.green = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		r.blue = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
		r.yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	}
	return r
}

func (r *Reporter) logf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// RunStarted logs the run banner with the resolved seed.
func (r *Reporter) RunStarted(seed string) {
	r.logf("::::: Test Run /w seed '%s' started\n", seed)
}

// SuiteStarted logs the suite banner. index is 1-based display order.
func (r *Reporter) SuiteStarted(index int, name string) {
	r.logf("===== Test Suite %d: '%s' started\n", index, name)
}

// SuiteSkipped logs a suite skipped by an active suite filter.
func (r *Reporter) SuiteSkipped(index int, name string) {
	r.logf("===== Test Suite %d: '%s' %s\n", index, name, r.blue.Render("skipped"))
}

// CaseStarted logs the case banner. Indices are 1-based display order.
func (r *Reporter) CaseStarted(suiteIndex, caseIndex int, name string) {
	r.logf("%s", r.yellow.Render(fmt.Sprintf("----- Test Case %d.%d: '%s' started", suiteIndex, caseIndex, name)))
}

// CaseSkipped logs a case skipped by an active case filter.
func (r *Reporter) CaseSkipped(suiteIndex, caseIndex int, name string) {
	r.logf("===== Test Case %d.%d: '%s' %s\n", suiteIndex, caseIndex, name, r.blue.Render("skipped"))
}

// CaseDescription logs the optional case description.
func (r *Reporter) CaseDescription(description string) {
	r.logf("Test Description: '%s'", description)
}

// Iteration logs the iteration number and the execution key it runs with.
func (r *Reporter) Iteration(iteration int, execKey uint64) {
	r.logf("Test Iteration %d: execKey %d", iteration, execKey)
}

// ForcedRun notes that a disabled case executes because a case filter
// selected it.
func (r *Reporter) ForcedRun() {
	r.logf("Force run of disabled test since test filter was set")
}

// FuzzerInvocations reports generator usage of the finished case execution.
func (r *Reporter) FuzzerInvocations(count int) {
	r.logf("Fuzzer invocations: %d", count)
}

// AssertSummary reports the tracker counts of the finished case execution.
func (r *Reporter) AssertSummary(passed, failed int) {
	line := fmt.Sprintf("Assert Summary: Total=%d Passed=%d Failed=%d", passed+failed, passed, failed)
	if failed > 0 {
		line = r.red.Render(line)
	}
	r.logf("%s", line)
}

// FinalResult logs the ">>> Kind 'name': verdict" contract line for a test,
// suite or run.
func (r *Reporter) FinalResult(kind, name, verdict string, style lipgloss.Style) {
	r.logf("%s %s\n", r.yellow.Render(fmt.Sprintf(">>> %s '%s':", kind, name)), style.Render(verdict))
}

// Summary logs the "Kind Summary: Total=... Passed=... Failed=... Skipped=..."
// contract line. The failed field renders green when nothing failed.
func (r *Reporter) Summary(kind string, passed, failed, skipped int) {
	failedStyle := r.red
	if failed == 0 {
		failedStyle = r.green
	}
	r.logf("%s Summary: Total=%d %s %s %s",
		kind,
		passed+failed+skipped,
		r.green.Render(fmt.Sprintf("Passed=%d", passed)),
		failedStyle.Render(fmt.Sprintf("Failed=%d", failed)),
		r.blue.Render(fmt.Sprintf("Skipped=%d", skipped)))
}

// CaseRuntime logs wall time of one case across its iterations.
func (r *Reporter) CaseRuntime(iterations int, seconds float64) {
	if iterations > 1 {
		r.logf("Runtime of %d iterations: %.1f sec", iterations, seconds)
		r.logf("Average Test runtime: %.5f sec", seconds/float64(iterations))
	} else {
		r.logf("Total Test runtime: %.1f sec", seconds)
	}
}

// SuiteRuntime logs wall time of one suite.
func (r *Reporter) SuiteRuntime(seconds float64) {
	r.logf("Total Suite runtime: %.1f sec", seconds)
}

// RunRuntime logs wall time of the whole run.
func (r *Reporter) RunRuntime(seconds float64) {
	r.logf("Total Run runtime: %.1f sec", seconds)
}

// FilterSuite notes an active suite filter.
func (r *Reporter) FilterSuite(suiteName string) {
	r.logf("Filtering: running only suite '%s'", suiteName)
}

// FilterCase notes an active case filter.
func (r *Reporter) FilterCase(caseName, suiteName string) {
	r.logf("Filtering: running only test '%s' in suite '%s'", caseName, suiteName)
}

// FilterMiss reports a filter that matched nothing, followed by the full
// suite/case directory so the caller can see what is available.
func (r *Reporter) FilterMiss(filter string, suites []*TestSuite) {
	r.logf("%s", r.red.Render(fmt.Sprintf("Filter '%s' did not match any test suite/case.", filter)))
	r.Listing(suites)
}

// Listing prints the suite/case directory.
func (r *Reporter) Listing(suites []*TestSuite) {
	for _, suite := range suites {
		r.logf("Test suite: %s", suite.Name)
		for _, tc := range suite.Cases {
			disabled := ""
			if !tc.Enabled {
				disabled = " (disabled)"
			}
			r.logf("      test: %s%s", tc.Name, disabled)
		}
	}
}

// Repro prints one reproduction line per recorded failure. Re-invoking the
// harness with that seed and filter replays the failing case exactly.
func (r *Reporter) Repro(records []FailureRecord) {
	if len(records) == 0 {
		return
	}
	r.logf("Harness input to repro failures:")
	for _, rec := range records {
		r.logf("%s", r.red.Render(fmt.Sprintf(" --seed %s --filter %s", rec.Seed, rec.Case.Name)))
	}
}

// ExitCode logs the run exit status.
func (r *Reporter) ExitCode(code int) {
	r.logf("Exit code: %d", code)
}
