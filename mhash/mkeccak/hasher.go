package mkeccak

import (
	"golang.org/x/crypto/sha3"

	"github.com/Autoparallel/murky/mhash"
)

// Hasher is the fixed [mhash.Hasher] used for every digest in a tree:
// Keccak-256, the 256-bit Keccak permutation with the original
// pre-standardization padding (the construction Ethereum calls keccak256,
// distinct from NIST SHA3-256).
//
// The algorithm is deliberately not configurable.
// Changing it changes every digest a tree produces.
type Hasher struct{}

func (Hasher) Sum(data []byte) mhash.Digest {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(data)

	var d mhash.Digest
	h.Sum(d[:0])
	return d
}
