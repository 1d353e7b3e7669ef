package hashid

import "github.com/katalvlaran/hashid/shuffle"

// Encode hashes numbers into a single obfuscated string.
//
// The empty call and any negative number are caller errors signaled by an
// empty string, never by an error value. A legal call always emits at
// least the lottery character, so "" is unambiguous.
//
// Decode with the same configuration to recover the numbers.
func (h *HashID) Encode(numbers ...int) string {
	wide := make([]int64, len(numbers))
	for i, n := range numbers {
		wide[i] = int64(n)
	}
	return h.EncodeInt64(wide...)
}

// EncodeInt64 hashes 64-bit numbers into a single obfuscated string.
// Same contract as Encode.
func (h *HashID) EncodeInt64(numbers ...int64) string {
	if len(numbers) == 0 {
		return ""
	}
	for _, n := range numbers {
		if n < 0 {
			return ""
		}
	}
	return string(h.assemble(numbers))
}

// assemble is the encode pipeline.
//
// Pipeline Outline:
//  1. checksum = Σ numbers[i] mod (i+100); lottery = alphabet[checksum mod N].
//  2. Seed buffer: [lottery, salt..., current alphabet...] truncated to the
//     alphabet length; the alphabet tail is refreshed before every number.
//  3. Per number: shuffle the working alphabet by the seed buffer, expand
//     the number into base-N digits, pick a separator from the number, the
//     token's lead character and the position.
//  4. Pad with guards, then with half-alphabet slabs, up to minLength.
//
// The shuffle seed length is always the alphabet length, not the salt
// length: the permutation deliberately consumes the refreshed alphabet
// tail of the buffer, and every emitted hash depends on that.
func (h *HashID) assemble(numbers []int64) []rune {
	length := len(h.alphabet)
	saltLen := len(h.salt)

	var checksum int64
	for i, n := range numbers {
		checksum += n % int64(i+100)
	}

	sc := acquireScratch(length)
	defer releaseScratch(sc)

	alphabet := sc.alphabet
	copy(alphabet, h.alphabet)

	lottery := alphabet[checksum%int64(length)]

	capacity := len(numbers) * (h.maxTokenLen + 1)
	if capacity < h.minLength {
		capacity = h.minLength
	}
	out := make([]rune, 0, capacity)
	out = append(out, lottery)

	seed := sc.seed
	seed[0] = lottery
	copy(seed[1:], h.salt)

	for i, n := range numbers {
		if length-(1+saltLen) > 0 {
			copy(seed[1+saltLen:], alphabet)
		}
		shuffle.Consistent(alphabet, seed, length)

		sc.digits = appendDigits(sc.digits[:0], n, alphabet)
		out = append(out, sc.digits...)

		if i+1 < len(numbers) {
			rem := n % (int64(sc.digits[0]) + int64(i))
			out = append(out, h.seps[rem%int64(len(h.seps))])
		}
	}

	if len(out) < h.minLength {
		gi := (checksum + int64(out[0])) % int64(len(h.guards))
		out = append(out, 0)
		copy(out[1:], out)
		out[0] = h.guards[gi]

		if len(out) < h.minLength {
			gi = (checksum + int64(out[2])) % int64(len(h.guards))
			out = append(out, h.guards[gi])
		}
	}

	half := length / 2
	for len(out) < h.minLength {
		copy(seed, alphabet)
		shuffle.Consistent(alphabet, seed, length)

		grown := make([]rune, 0, len(out)+length)
		grown = append(grown, alphabet[half:]...)
		grown = append(grown, out...)
		grown = append(grown, alphabet[:half]...)
		out = grown

		if excess := len(out) - h.minLength; excess > 0 {
			out = out[excess/2 : excess/2+h.minLength]
		}
	}

	return out
}

// appendDigits expands value into base-len(alphabet) digits, emitted
// least-significant first and then reversed in place so the most
// significant digit leads. Zero still emits one digit.
func appendDigits(buf []rune, value int64, alphabet []rune) []rune {
	radix := int64(len(alphabet))
	for {
		buf = append(buf, alphabet[value%radix])
		value /= radix
		if value == 0 {
			break
		}
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return buf
}
