package shuffle

// Consistent permutes s in place, deterministically, using seed as the
// entropy source.
//
// Algorithm Outline:
//  1. Walk i from len(s)−1 down to 1.
//  2. Maintain a cyclic seed cursor v (wrapping modulo seedLen) and a
//     running accumulator p of the seed codes consumed so far.
//  3. Each step: n = int(seed[v]); p += n; j = (n + v + p) mod i;
//     swap s[i] and s[j]; advance v.
//
// seedLen is the logical seed length and bounds the cursor; it may be
// smaller than len(seed) when only a prefix of a scratch buffer holds
// seed data. The pair (seed contents, seedLen) fully determines the
// permutation, so both sides of a reversible codec must agree on it.
//
// A seedLen of zero (or negative) leaves s untouched.
func Consistent(s, seed []rune, seedLen int) {
	if seedLen <= 0 {
		return
	}
	for i, v, p := len(s)-1, 0, 0; i > 0; i-- {
		v %= seedLen
		n := int(seed[v])
		p += n
		j := (n + v + p) % i
		s[i], s[j] = s[j], s[i]
		v++
	}
}
