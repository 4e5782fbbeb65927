package mtest

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand/v2"
	"testing"
)

// RandomLeavesForTest returns n distinct-looking leaf strings of
// pseudorandom hex data, derived from a seed based on the test name.
func RandomLeavesForTest(t *testing.T, n int) []string {
	// A sha256 sum is exactly the chacha8 seed size,
	// and it accepts test names of any length.
	seed := sha256.Sum256([]byte(t.Name()))
	chacha := rand.NewChaCha8(seed)

	leaves := make([]string, n)
	raw := make([]byte, 12)
	for i := range leaves {
		if _, err := chacha.Read(raw); err != nil {
			panic(err)
		}

		leaves[i] = hex.EncodeToString(raw)
	}

	return leaves
}
