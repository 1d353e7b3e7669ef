// Package shuffle implements the deterministic, salt-seeded in-place
// permutation that drives every pseudo-random decision in the hashid codec.
//
// 🚀 What is a consistent shuffle?
//
//	A Fisher–Yates variant whose swap targets are derived from a seed
//	character sequence instead of a random source. Identical seed and
//	identical initial contents always yield identical output, which is
//	what lets a decoder replay the exact permutations an encoder made.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hashid/shuffle"
//
//	alphabet := []rune("abcdef")
//	shuffle.Consistent(alphabet, []rune("salt"), 4)
//	// alphabet is now permuted; the same call reproduces the same order
//
// The seed length is an explicit parameter, decoupled from len(seed):
// callers may seed from a larger scratch buffer while only a logical
// prefix participates. See Consistent for the exact contract.
//
// Complexity: O(len(s)) time, O(1) extra memory.
package shuffle
