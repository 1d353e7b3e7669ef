// Package hashid converts sequences of non-negative integers into short,
// reversible, obfuscated alphanumeric strings, and back.
//
// 🚀 What is hashid?
//
//	A deterministic codec for systems that hand out sequential identifiers
//	but want to present non-guessable, non-sequential tokens externally,
//	without maintaining a lookup table:
//	  • Encode([]int / []int64) → short alphanumeric hash
//	  • Decode(hash) → the exact original numbers
//	  • salt-parameterized: the same numbers yield different hashes per salt
//	  • optional minimum output length with deterministic padding
//	  • hex convenience wrappers for MongoDB-style object IDs
//
// ✨ Why choose hashid?
//
//   - Obfuscation, not secrecy: this is NOT a cryptographic scheme
//   - Deterministic: identical configuration and input always produce
//     identical output, across calls and across instances
//   - Self-validating: decoding re-encodes and compares, so tampered or
//     foreign-salt hashes come back empty instead of silently wrong
//   - Thread-safe: a single *HashID serves unlimited concurrent calls
//
// Under the hood, two packages:
//
//	.        — the public codec: alphabet derivation, encode/decode pipelines
//	shuffle/ — the deterministic, salt-seeded in-place permutation primitive
//
// Quick example:
//
//	h, err := hashid.New(hashid.WithSalt("this is my salt"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	s := h.Encode(1, 2, 3)        // "laHquq"
//	nums, _ := h.Decode(s)        // [1 2 3]
//
// See example_test.go for runnable examples and the package documentation
// on New for the alphabet derivation invariants.
package hashid
