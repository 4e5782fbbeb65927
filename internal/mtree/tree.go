package mtree

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/Autoparallel/murky/mhash"
)

// NumLevels returns the number of levels [BuildLevels] produces
// for n leaves: 1 + ceil(log2 n).
func NumLevels(n int) int {
	if n <= 0 {
		panic(fmt.Errorf(
			"BUG: level count requires a positive leaf count (got %d)", n,
		))
	}

	return 1 + bits.Len(uint(n-1))
}

// BuildLevels hashes the given leaves with h and reduces them pairwise
// until a single root digest remains.
//
// The returned hierarchy is ordered root-first:
// index 0 is the root level of length 1,
// and the final index is the leaf-hash level,
// aligned one-to-one with the input leaves.
//
// The caller is responsible for rejecting an empty leaf list;
// BuildLevels panics if it receives one.
func BuildLevels(h mhash.Hasher, leaves []string) [][]mhash.Digest {
	n := len(leaves)
	if n == 0 {
		panic(fmt.Errorf("BUG: BuildLevels requires at least one leaf"))
	}

	levels := make([][]mhash.Digest, 0, NumLevels(n))

	// Every node in the tree lives in one backing allocation;
	// the per-level slices are views into it.
	mem := make([]mhash.Digest, totalNodes(n))

	level := mem[:n:n]
	for i, leaf := range leaves {
		level[i] = h.Sum([]byte(leaf))
	}
	levels = append(levels, level)
	used := n

	// Scratch buffer for the concatenated pair fed to each parent hash.
	buf := make([]byte, 0, 2*mhash.DigestSize)

	for len(level) > 1 {
		parents := (len(level) + 1) / 2
		next := mem[used : used : used+parents]

		for i := 0; i+1 < len(level); i += 2 {
			next = append(next, combine(h, buf, level[i], level[i+1]))
		}
		if len(level)%2 == 1 {
			// Unpaired trailing digest: pair it with itself.
			last := level[len(level)-1]
			next = append(next, combine(h, buf, last, last))
		}

		used += parents
		levels = append(levels, next)
		level = next
	}

	slices.Reverse(levels)
	return levels
}

// combine produces the parent digest of the pair (a, b):
// the hash of the two raw digests concatenated left to right,
// with no domain-separation prefix or length field.
func combine(h mhash.Hasher, buf []byte, a, b mhash.Digest) mhash.Digest {
	buf = append(buf[:0], a[:]...)
	buf = append(buf, b[:]...)
	return h.Sum(buf)
}

// totalNodes returns the node count across all levels for n leaves,
// under ceil-halving: n + ceil(n/2) + ... + 1.
func totalNodes(n int) int {
	total := 1
	for w := n; w > 1; w = (w + 1) / 2 {
		total += w
	}
	return total
}
