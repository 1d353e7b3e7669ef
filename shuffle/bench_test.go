package shuffle_test

import (
	"testing"

	"github.com/katalvlaran/hashid/shuffle"
)

// benchmarkConsistent shuffles a sequence of length n with the given seed,
// restoring the sequence between iterations so every run permutes the same
// starting state.
func benchmarkConsistent(b *testing.B, n int) {
	orig := make([]rune, n)
	for i := range orig {
		orig[i] = rune('!' + i%90)
	}
	s := make([]rune, n)
	seed := []rune("a fairly ordinary salt value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(s, orig)
		shuffle.Consistent(s, seed, len(seed))
	}
}

// BenchmarkConsistent_Alphabet shuffles a typical 44-character working alphabet.
func BenchmarkConsistent_Alphabet(b *testing.B) {
	benchmarkConsistent(b, 44)
}

// BenchmarkConsistent_Large shuffles a 1024-character sequence, the codec's
// worst case under the output length cap.
func BenchmarkConsistent_Large(b *testing.B) {
	benchmarkConsistent(b, 1024)
}
