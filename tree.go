package murky

import (
	"fmt"

	"github.com/Autoparallel/murky/internal/mtree"
	"github.com/Autoparallel/murky/mhash"
	"github.com/Autoparallel/murky/mhash/mkeccak"
)

// Tree is a binary Merkle hash tree over an ordered list of string leaves.
//
// A Tree is immutable once built:
// it owns its own copy of the leaves and every digest level,
// so it is safe to share across goroutines without synchronization.
//
// Create an instance with [NewTree].
type Tree struct {
	leaves []string

	// All digest levels, root-first:
	// levels[0] is the root level of length 1,
	// levels[len(levels)-1] is the leaf-hash level,
	// aligned one-to-one with leaves.
	levels [][]mhash.Digest
}

// NewTree hashes the given leaves and builds every level above them,
// up to the single root digest.
//
// The leaf order is significant and preserved:
// reordering leaves generally produces a different root,
// because parents hash the concatenation of their children left to right.
// Duplicate and empty-string leaves are valid.
//
// The input slice is copied,
// so the caller may reuse it after NewTree returns.
//
// NewTree returns [ErrNoLeaves] if leaves is empty.
func NewTree(leaves []string) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}

	owned := make([]string, len(leaves))
	copy(owned, leaves)

	return &Tree{
		leaves: owned,
		levels: mtree.BuildLevels(mkeccak.Hasher{}, owned),
	}, nil
}

// RootHash returns the tree's root digest,
// which commits to the value and position of every leaf.
func (t *Tree) RootHash() mhash.Digest {
	return t.levels[0][0]
}

// Leaves returns the leaves in their original order.
// The caller must not modify the returned slice.
func (t *Tree) Leaves() []string {
	return t.leaves
}

// NumLevels returns how many levels the tree stores.
// A tree over n leaves has 1 + ceil(log2 n) levels.
func (t *Tree) NumLevels() int {
	return len(t.levels)
}

// Level returns the digests at storage index i:
// index 0 is the root level,
// and index NumLevels()-1 is the leaf-hash level.
// The caller must not modify the returned slice.
func (t *Tree) Level(i int) []mhash.Digest {
	if i < 0 || i >= len(t.levels) {
		panic(fmt.Errorf(
			"BUG: level index %d out of range [0, %d)", i, len(t.levels),
		))
	}

	return t.levels[i]
}

// Levels returns every stored level, root-first.
// The caller must not modify the returned slices.
func (t *Tree) Levels() [][]mhash.Digest {
	return t.levels
}
