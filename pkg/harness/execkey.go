package harness

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"strconv"
)

// DeriveExecKey deterministically combines the run seed, suite name, case
// name and iteration number into a 64-bit execution key. Identical inputs
// always yield an identical key, which is the property exact failure
// reproduction via --seed + --filter relies on.
//
// The four fields are concatenated without separators (seed, suite, case,
// decimal iteration) and hashed with MD5; the key is the first 8 digest
// bytes read little-endian. The separator-less format is kept for
// compatibility with seeds recorded by earlier harnesses; since suite and
// case names are harness-controlled identifiers the theoretical collision
// between e.g. ("AB","C") and ("A","BC") is accepted.
//
// The zero key is reserved as an error sentinel and is never returned for
// valid input.
func DeriveExecKey(runSeed, suiteName, caseName string, iteration int) (uint64, error) {
	if runSeed == "" {
		return 0, fmt.Errorf("run seed must be non-empty")
	}
	if suiteName == "" {
		return 0, fmt.Errorf("suite name must be non-empty")
	}
	if caseName == "" {
		return 0, fmt.Errorf("case name must be non-empty")
	}
	if iteration < 1 {
		return 0, fmt.Errorf("iteration must be >=1, got %d", iteration)
	}

	buf := make([]byte, 0, len(runSeed)+len(suiteName)+len(caseName)+20)
	buf = append(buf, runSeed...)
	buf = append(buf, suiteName...)
	buf = append(buf, caseName...)
	buf = strconv.AppendInt(buf, int64(iteration), 10)

	digest := md5.Sum(buf)
	key := binary.LittleEndian.Uint64(digest[:8])
	if key == 0 {
		// Astronomically unlikely, but 0 must stay reserved as the sentinel.
		key = binary.LittleEndian.Uint64(digest[8:])
	}
	return key, nil
}
