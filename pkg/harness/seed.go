package harness

import (
	"fmt"
	"math/rand"
	"time"
)

// seedAlphabet is the character set run seeds are drawn from. Seeds must be
// easy to read back over chat or a bug tracker, so it is uppercase
// alphanumerics only.
const seedAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RunSeedLength is the length of generated run seeds.
const RunSeedLength = 16

// GenerateRunSeed produces a run seed of exactly length alphanumeric
// characters (0-9A-Z). The seed string itself does not need to be
// reproducible, only the keys derived from it, so the generator is a plain
// clock-seeded PRNG rather than a CSPRNG.
func GenerateRunSeed(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("run seed length must be >0, got %d", length)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	seed := make([]byte, length)
	for i := range seed {
		seed[i] = seedAlphabet[rng.Intn(len(seedAlphabet))]
	}
	return string(seed), nil
}
