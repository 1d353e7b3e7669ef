package hashid

import (
	"math"

	"github.com/katalvlaran/hashid/shuffle"
)

// derivedAlphabet is the composite output of alphabet derivation: three
// pairwise-disjoint character classes, immutable once returned.
//
//   - alphabet — the digits of the base-N numeric encoding
//   - seps     — delimiters between per-number digit groups
//   - guards   — optional brackets around the hash when padding applies
type derivedAlphabet struct {
	alphabet []rune
	seps     []rune
	guards   []rune
}

// deriveAlphabet carves the working alphabet, separator and guard sets out
// of the raw configuration. Runs once, at construction.
//
// Derivation Outline:
//  1. Deduplicate the alphabet, keeping first occurrences; fewer than 16
//     distinct characters is ErrAlphabetTooSmall.
//  2. Intersect seps with the alphabet, removing each matched character
//     from the alphabet; fewer than 10 alphabet characters left is
//     ErrAlphabetAfterSeps.
//  3. Shuffle seps by the salt, then resize seps to ceil(len(alphabet)/3.5)
//     (minimum 2 when that computes to 1): borrow from the alphabet front
//     when short, truncate when long.
//  4. Shuffle the alphabet by the salt.
//  5. Carve ceil(len(alphabet)/12) guards off the front of the alphabet
//     (off seps instead when the alphabet has shrunk below 3).
//
// The three outputs stay disjoint throughout, which is what lets the
// decoder split unambiguously on guard and separator characters.
func deriveAlphabet(alphabetSrc, sepsSrc string, salt []rune) (derivedAlphabet, error) {
	seen := make(map[rune]struct{}, len(alphabetSrc))
	alphabet := make([]rune, 0, len(alphabetSrc))
	for _, r := range alphabetSrc {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		alphabet = append(alphabet, r)
	}
	if len(alphabet) < minAlphabetLength {
		return derivedAlphabet{}, ErrAlphabetTooSmall
	}

	// Intersect: a sep survives only if present in the alphabet, and claims
	// its alphabet slot when it does.
	seps := make([]rune, 0, len(sepsSrc))
	for _, r := range sepsSrc {
		if i := runeIndex(alphabet, r); i >= 0 {
			seps = append(seps, r)
			alphabet = append(alphabet[:i], alphabet[i+1:]...)
		}
	}
	if len(alphabet) < minAlphabetAfterSeps {
		return derivedAlphabet{}, ErrAlphabetAfterSeps
	}

	shuffle.Consistent(seps, salt, len(salt))

	target := int(math.Ceil(float64(len(alphabet)) / sepDiv))
	if target == 1 {
		target = 2
	}
	if target > len(seps) {
		diff := target - len(seps)
		seps = append(seps, alphabet[:diff]...)
		alphabet = alphabet[diff:]
	} else {
		seps = seps[:target]
	}

	shuffle.Consistent(alphabet, salt, len(salt))

	guardCount := int(math.Ceil(float64(len(alphabet)) / guardDiv))
	var guards []rune
	if len(alphabet) < 3 {
		guards = seps[:guardCount]
		seps = seps[guardCount:]
	} else {
		guards = alphabet[:guardCount]
		alphabet = alphabet[guardCount:]
	}

	return derivedAlphabet{alphabet: alphabet, seps: seps, guards: guards}, nil
}

// runeIndex returns the position of r in s, or -1 when absent.
func runeIndex(s []rune, r rune) int {
	for i, c := range s {
		if c == r {
			return i
		}
	}
	return -1
}
