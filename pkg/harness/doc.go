// Package harness implements a deterministic test-execution engine.
//
// A run executes an ordered list of test suites; each suite is an ordered
// list of test cases sharing optional SetUp/TearDown hooks. Every enabled
// case runs once per iteration, seeded with a 64-bit execution key derived
// from the run seed, the suite name, the case name, and the iteration
// number. The same seed therefore always replays the same inputs, which is
// what makes a recorded failure reproducible:
//
//	runctl run --seed 5S8LXWC2P1R0T9QD --filter case_name
//
// # Execution model
//
// Execution is strictly sequential: suites, cases, and iterations run one at
// a time. The only asynchronous element is the per-case watchdog timer,
// which terminates the process outright when a case exceeds the configured
// ceiling. A hung case is treated like a crash; there is no partial-result
// salvage path.
//
// # Filtering
//
// A filter string is matched case-insensitively and exactly, walking the
// suites in order and checking each suite's name before its case names; the
// first match wins, so a case match in an earlier suite takes precedence over
// a suite-name match in a later one. A suite match restricts the run to that
// suite; a case match restricts the run to that single case and forces it to
// execute even when it is disabled, so disabled cases can be debugged ad hoc.
//
// # Results
//
// Counters are kept per suite and per run as (passed, failed, skipped)
// triples; a case that records no assertions and reports no explicit skip is
// counted as failed. The run exit code is 0 when nothing failed, 1 on any
// failure, 2 on setup failures (including a filter that matches nothing),
// and -1 when there are no tests at all.
package harness
