package harness

import "math/rand"

// fuzzer is the default Fuzzer implementation: a deterministic PRNG seeded
// with the execution key. Two executions with the same key observe the same
// value sequence, which is what makes fuzzed failures replayable.
type fuzzer struct {
	rng         *rand.Rand
	invocations int
}

// NewFuzzer returns the default execution-key seeded fuzzer.
func NewFuzzer() Fuzzer {
	f := &fuzzer{}
	f.Init(0)
	return f
}

func (f *fuzzer) Init(execKey uint64) {
	f.rng = rand.New(rand.NewSource(int64(execKey)))
	f.invocations = 0
}

func (f *fuzzer) InvocationCount() int {
	return f.invocations
}

// Uint64 returns the next 64-bit fuzz value.
func (f *fuzzer) Uint64() uint64 {
	f.invocations++
	return f.rng.Uint64()
}

// IntRange returns a fuzz value in [min, max]. min and max are swapped when
// given out of order.
func (f *fuzzer) IntRange(min, max int) int {
	if min > max {
		min, max = max, min
	}
	f.invocations++
	return min + f.rng.Intn(max-min+1)
}

// ASCIIString returns a fuzzed printable ASCII string of the given length.
func (f *fuzzer) ASCIIString(length int) string {
	if length <= 0 {
		return ""
	}
	f.invocations++
	b := make([]byte, length)
	for i := range b {
		b[i] = byte(' ' + f.rng.Intn('~'-' '+1))
	}
	return string(b)
}
