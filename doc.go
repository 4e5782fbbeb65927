// Package murky builds binary Merkle hash trees
// over ordered lists of string leaves.
//
// A [Tree] commits to both the values and the order of its leaves.
// Construction hashes every leaf, then repeatedly hashes adjacent
// digest pairs, pairing an unpaired trailing digest with itself,
// until a single root digest remains.
// Every intermediate level is retained for inspection,
// stored root-first.
//
// Each digest is Keccak-256 (the mhash/mkeccak package);
// the hash is fixed, so identical leaf sequences always produce
// identical hierarchies and roots.
package murky
