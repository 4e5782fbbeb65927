package mhash

import "encoding/hex"

// DigestSize is the width in bytes of every [Digest].
const DigestSize = 32

// Digest is one fixed-width hash output.
// It is a plain value: compare with ==, copy by assignment.
// The raw bytes of two digests, concatenated left to right,
// are exactly the input for the parent digest above them.
type Digest [DigestSize]byte

// String returns the digest as 64 lowercase hexadecimal characters.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Hasher is the single-purpose interface isolating the digest function
// from the tree construction code that consumes it.
// Production code always uses the one fixed implementation
// in the mkeccak subpackage;
// the seam exists so tests can substitute deterministic stub hashes.
//
// Sum must be a pure function of data,
// and must be safe to call concurrently.
type Hasher interface {
	Sum(data []byte) Digest
}
