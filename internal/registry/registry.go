// Package registry keeps the process-global list of test suites the runctl
// binary ships. Suites register themselves from init functions; the CLI
// reads them back in registration order.
package registry

import (
	"fmt"
	"sync"

	"runctl/pkg/harness"
)

var (
	mu     sync.Mutex
	suites []*harness.TestSuite
	byName = map[string]struct{}{}
)

// Register adds a suite. Registration order is execution and display order.
// Duplicate suite names panic: they would make name filters ambiguous, and
// registration happens at init time where a panic is an immediate build
// problem rather than a runtime surprise.
func Register(suite *harness.TestSuite) {
	if suite == nil || suite.Name == "" {
		panic("registry: suite must be non-nil and named")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, exists := byName[suite.Name]; exists {
		panic(fmt.Sprintf("registry: duplicate suite name %q", suite.Name))
	}
	byName[suite.Name] = struct{}{}
	suites = append(suites, suite)
}

// Suites returns the registered suites in registration order.
func Suites() []*harness.TestSuite {
	mu.Lock()
	defer mu.Unlock()
	out := make([]*harness.TestSuite, len(suites))
	copy(out, suites)
	return out
}
