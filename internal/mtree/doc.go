// Package mtree contains the internal core of the Merkle tree:
// the level-by-level pairwise reduction.
//
// The tree is binary and built strictly bottom-up.
// Leaves are hashed in their given order to form the widest level,
// and each level above is formed by hashing consecutive pairs left to right.
// A level of odd width has its trailing node paired with itself
// ("duplicate and pair"), so a level of width n always reduces to
// exactly ceil(n/2) parents and no node is ever dropped or re-paired.
// Every produced level is retained,
// and the finished hierarchy is stored root-first.
package mtree
