// Package selftest declares the built-in suites the runctl binary ships.
// They validate the harness's own reproducibility guarantees and give every
// CLI path (filters, iterations, disabled cases) something real to run.
package selftest

import (
	"runctl/internal/registry"
	"runctl/pkg/harness"
	"runctl/pkg/logging"
)

func init() {
	registry.Register(keySuite)
	registry.Register(fuzzerSuite)
}

var keySuite = &harness.TestSuite{
	Name: "execkey",
	Cases: []*harness.TestCase{
		{
			Name:        "execkey_determinism",
			Description: "Identical derivation inputs yield an identical non-zero key",
			Enabled:     true,
			Run:         runKeyDeterminism,
		},
		{
			Name:        "execkey_sensitivity",
			Description: "Changing any derivation field changes the key",
			Enabled:     true,
			Run:         runKeySensitivity,
		},
		{
			Name:        "seed_generation",
			Description: "Run seeds are uppercase alphanumeric and of the requested length",
			Enabled:     true,
			Run:         runSeedGeneration,
		},
		{
			Name:        "key_stress",
			Description: "Derives a large batch of keys; disabled by default, run via --filter key_stress",
			Enabled:     false,
			Run:         runKeyStress,
		},
	},
}

func runKeyDeterminism(tc *harness.CaseContext) harness.CaseStatus {
	first, err := harness.DeriveExecKey("SELFTESTSEED0000", "execkey", "execkey_determinism", 1)
	if !tc.Asserts.Assert(err == nil, "first derivation succeeds: %v", err) {
		return harness.StatusCompleted
	}
	second, err := harness.DeriveExecKey("SELFTESTSEED0000", "execkey", "execkey_determinism", 1)
	tc.Asserts.Assert(err == nil, "second derivation succeeds: %v", err)
	tc.Asserts.Assert(first == second, "derived keys match: %d vs %d", first, second)
	tc.Asserts.Assert(first != 0, "derived key is non-zero")
	return harness.StatusCompleted
}

func runKeySensitivity(tc *harness.CaseContext) harness.CaseStatus {
	base, _ := harness.DeriveExecKey("SELFTESTSEED0000", "suite", "case", 1)
	otherSeed, _ := harness.DeriveExecKey("SELFTESTSEED0001", "suite", "case", 1)
	otherSuite, _ := harness.DeriveExecKey("SELFTESTSEED0000", "suite2", "case", 1)
	otherCase, _ := harness.DeriveExecKey("SELFTESTSEED0000", "suite", "case2", 1)
	otherIter, _ := harness.DeriveExecKey("SELFTESTSEED0000", "suite", "case", 2)

	tc.Asserts.Assert(base != otherSeed, "seed change alters key")
	tc.Asserts.Assert(base != otherSuite, "suite change alters key")
	tc.Asserts.Assert(base != otherCase, "case change alters key")
	tc.Asserts.Assert(base != otherIter, "iteration change alters key")
	return harness.StatusCompleted
}

func runSeedGeneration(tc *harness.CaseContext) harness.CaseStatus {
	seed, err := harness.GenerateRunSeed(harness.RunSeedLength)
	if !tc.Asserts.Assert(err == nil, "seed generation succeeds: %v", err) {
		return harness.StatusCompleted
	}
	tc.Asserts.Assert(len(seed) == harness.RunSeedLength, "seed has length %d, got %d", harness.RunSeedLength, len(seed))
	for i := 0; i < len(seed); i++ {
		ch := seed[i]
		if !tc.Asserts.Assert((ch >= '0' && ch <= '9') || (ch >= 'A' && ch <= 'Z'), "seed byte %d is alphanumeric, got %q", i, ch) {
			break
		}
	}
	_, err = harness.GenerateRunSeed(0)
	tc.Asserts.Assert(err != nil, "zero-length seed is rejected")
	return harness.StatusCompleted
}

func runKeyStress(tc *harness.CaseContext) harness.CaseStatus {
	seen := make(map[uint64]int, 4096)
	collisions := 0
	for i := 1; i <= 4096; i++ {
		key, err := harness.DeriveExecKey("SELFTESTSEED0000", "execkey", "key_stress", i)
		if err != nil {
			tc.Asserts.Assert(false, "derivation %d failed: %v", i, err)
			return harness.StatusAborted
		}
		if prev, dup := seen[key]; dup {
			logging.Warn("selftest", "key collision between iterations %d and %d", prev, i)
			collisions++
		}
		seen[key] = i
	}
	tc.Asserts.Assert(collisions == 0, "no key collisions across 4096 iterations, got %d", collisions)
	return harness.StatusCompleted
}

var fuzzerSuite = &harness.TestSuite{
	Name: "fuzzer",
	SetUp: func(tc *harness.CaseContext) {
		logging.Debug("selftest", "fuzzer suite setup, execKey %d", tc.ExecKey)
	},
	TearDown: func(tc *harness.CaseContext) {
		logging.Debug("selftest", "fuzzer suite teardown")
	},
	Cases: []*harness.TestCase{
		{
			Name:        "fuzzer_determinism",
			Description: "Two fuzzers seeded with the same key produce the same sequence",
			Enabled:     true,
			Run:         runFuzzerDeterminism,
		},
		{
			Name:        "fuzzer_ranges",
			Description: "Fuzzed values stay inside the requested bounds",
			Enabled:     true,
			Run:         runFuzzerRanges,
		},
		{
			Name:        "fuzzer_counter",
			Description: "The invocation counter tracks every generator call",
			Enabled:     true,
			Run:         runFuzzerCounter,
		},
	},
}

func runFuzzerDeterminism(tc *harness.CaseContext) harness.CaseStatus {
	a := harness.NewFuzzer()
	b := harness.NewFuzzer()
	a.Init(tc.ExecKey)
	b.Init(tc.ExecKey)
	for i := 0; i < 32; i++ {
		av, bv := a.Uint64(), b.Uint64()
		if !tc.Asserts.Assert(av == bv, "value %d matches: %d vs %d", i, av, bv) {
			return harness.StatusCompleted
		}
	}
	return harness.StatusCompleted
}

func runFuzzerRanges(tc *harness.CaseContext) harness.CaseStatus {
	for i := 0; i < 64; i++ {
		v := tc.Fuzzer.IntRange(-10, 10)
		if !tc.Asserts.Assert(v >= -10 && v <= 10, "IntRange value in bounds, got %d", v) {
			return harness.StatusCompleted
		}
	}
	s := tc.Fuzzer.ASCIIString(24)
	tc.Asserts.Assert(len(s) == 24, "ASCIIString has requested length, got %d", len(s))
	for i := 0; i < len(s); i++ {
		if !tc.Asserts.Assert(s[i] >= ' ' && s[i] <= '~', "string byte %d is printable, got %q", i, s[i]) {
			break
		}
	}
	return harness.StatusCompleted
}

func runFuzzerCounter(tc *harness.CaseContext) harness.CaseStatus {
	f := harness.NewFuzzer()
	f.Init(tc.ExecKey)
	tc.Asserts.Assert(f.InvocationCount() == 0, "counter starts at zero")
	f.Uint64()
	f.IntRange(0, 5)
	f.ASCIIString(8)
	tc.Asserts.Assert(f.InvocationCount() == 3, "counter counts every call, got %d", f.InvocationCount())
	f.Init(tc.ExecKey)
	tc.Asserts.Assert(f.InvocationCount() == 0, "Init resets the counter, got %d", f.InvocationCount())
	return harness.StatusCompleted
}
