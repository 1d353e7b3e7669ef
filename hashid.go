package hashid

import (
	"math"
	"strings"
)

// HashID encodes sequences of non-negative integers into obfuscated
// alphanumeric strings and decodes them back.
//
// All fields are fixed at construction; a single instance is safe for
// concurrent use without external locking. Every mutable artifact of an
// encode or decode call (working alphabet copy, seed buffer, digit buffer,
// output buffer) is call-scoped.
type HashID struct {
	alphabet []rune
	seps     []rune
	guards   []rune
	salt     []rune

	minLength int

	// maxTokenLen is the digit count of math.MaxInt64 in the working base,
	// used to size output buffers up front.
	maxTokenLen int
}

// New constructs a HashID from DefaultOptions overlaid with opts.
//
// Errors (all fatal, matched with errors.Is):
//   - ErrBlankAlphabet / ErrBlankSeps — empty or whitespace-only source set
//   - ErrMinLengthRange              — WithMinLength outside [0, 1024]
//   - ErrAlphabetTooSmall            — fewer than 16 distinct characters
//   - ErrAlphabetAfterSeps           — fewer than 10 characters survive
//     separator removal
//
// Example:
//
//	h, err := hashid.New(
//		hashid.WithSalt("this is my salt"),
//		hashid.WithMinLength(8),
//	)
func New(opts ...Option) (*HashID, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if strings.TrimSpace(o.Alphabet) == "" {
		return nil, ErrBlankAlphabet
	}
	if strings.TrimSpace(o.Seps) == "" {
		return nil, ErrBlankSeps
	}
	if o.MinLength < 0 || o.MinLength > MaxMinLength {
		return nil, ErrMinLengthRange
	}

	salt := []rune(strings.TrimSpace(o.Salt))
	d, err := deriveAlphabet(o.Alphabet, o.Seps, salt)
	if err != nil {
		return nil, err
	}

	h := &HashID{
		alphabet:  d.alphabet,
		seps:      d.seps,
		guards:    d.guards,
		salt:      salt,
		minLength: o.MinLength,
	}
	h.maxTokenLen = digitCount(math.MaxInt64, len(h.alphabet))

	return h, nil
}

// digitCount returns how many base-radix digits value occupies.
func digitCount(value int64, radix int) int {
	n := 0
	for v := value; v > 0; v /= int64(radix) {
		n++
	}
	if n == 0 {
		n = 1
	}
	return n
}
