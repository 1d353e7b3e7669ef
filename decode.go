package hashid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hashid/shuffle"
)

// Decode recovers the numbers behind hash as ints.
//
// Malformed, tampered or foreign-configuration input yields a nil slice
// and a nil error, the sentinel failure contract shared with Encode.
// The only error condition is a recovered value outside the signed 32-bit
// range, reported as ErrOverflow; use DecodeInt64 for the full range.
func (h *HashID) Decode(hash string) ([]int, error) {
	wide := h.DecodeInt64(hash)
	if wide == nil {
		return nil, nil
	}
	out := make([]int, len(wide))
	for i, n := range wide {
		if n > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d", ErrOverflow, n)
		}
		out[i] = int(n)
	}
	return out, nil
}

// DecodeInt64 recovers the numbers behind hash as int64s, or nil when the
// input does not authenticate.
//
// Pipeline Outline:
//  1. Split on guard characters, dropping empty fragments; with 2 or 3
//     fragments the payload is fragment 1 (guards were present), otherwise
//     fragment 0.
//  2. The payload's first character is the lottery; the rest splits on
//     separator characters into one token per encoded number.
//  3. Replay the encoder's seed buffer (lottery + salt + alphabet tail)
//     and per-token shuffle, then fold each token's digits back into a
//     number. Unknown characters fold through as index -1; they are not
//     rejected here.
//  4. Authenticate by re-encoding the recovered numbers: anything short of
//     an exact match with the original input returns nil. This round trip
//     is the codec's only integrity mechanism; it is what catches the
//     -1 folds, tampering and cross-salt input alike.
func (h *HashID) DecodeInt64(hash string) []int64 {
	if hash == "" {
		return nil
	}

	frags := splitRunes([]rune(hash), h.guards)
	if len(frags) == 0 {
		return nil
	}
	payload := frags[0]
	if len(frags) == 2 || len(frags) == 3 {
		payload = frags[1]
	}
	if len(payload) == 0 {
		return nil
	}

	lottery := payload[0]
	tokens := splitRunes(payload[1:], h.seps)

	length := len(h.alphabet)
	saltLen := len(h.salt)

	sc := acquireScratch(length)
	defer releaseScratch(sc)

	alphabet := sc.alphabet
	copy(alphabet, h.alphabet)

	seed := sc.seed
	seed[0] = lottery
	copy(seed[1:], h.salt)

	numbers := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		if length-(1+saltLen) > 0 {
			copy(seed[1+saltLen:], alphabet)
		}
		shuffle.Consistent(alphabet, seed, length)
		numbers = append(numbers, foldDigits(token, alphabet))
	}

	if h.EncodeInt64(numbers...) != hash {
		return nil
	}
	return numbers
}

// foldDigits contracts a digit token back into a number. A character
// missing from the alphabet folds through as -1; the resulting bogus value
// is rejected by the round-trip check in DecodeInt64, not here.
func foldDigits(token, alphabet []rune) int64 {
	radix := int64(len(alphabet))
	var n int64
	for _, r := range token {
		n = n*radix + int64(runeIndex(alphabet, r))
	}
	return n
}

// splitRunes splits input on any of the delimiter characters, discarding
// empty fragments.
func splitRunes(input, delims []rune) [][]rune {
	var out [][]rune
	start := 0
	for i, r := range input {
		if runeIndex(delims, r) >= 0 {
			if i > start {
				out = append(out, input[start:i])
			}
			start = i + 1
		}
	}
	if start < len(input) {
		out = append(out, input[start:])
	}
	return out
}
