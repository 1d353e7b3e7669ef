package hashid

import (
	"strconv"
	"strings"
)

// hexChunkLen is how many hex digits feed one encoded number. With the
// sentinel "1" prefix a chunk parses to at most 52 bits, comfortably
// inside int64.
const hexChunkLen = 12

// EncodeHex hashes a hexadecimal string (no "0x" prefix, either case).
//
// The input is split into chunks of up to 12 digits and each chunk is
// parsed base-16 behind a leading "1" digit, preserving significant
// leading zeros; the resulting numbers route through EncodeInt64.
// Empty or non-hex input returns "".
func (h *HashID) EncodeHex(hex string) string {
	if hex == "" {
		return ""
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return ""
		}
	}

	numbers := make([]int64, 0, (len(hex)+hexChunkLen-1)/hexChunkLen)
	for start := 0; start < len(hex); start += hexChunkLen {
		end := start + hexChunkLen
		if end > len(hex) {
			end = len(hex)
		}
		n, err := strconv.ParseInt("1"+hex[start:end], 16, 64)
		if err != nil {
			return ""
		}
		numbers = append(numbers, n)
	}

	return h.EncodeInt64(numbers...)
}

// DecodeHex recovers the hexadecimal string behind hash, normalized to
// uppercase, or "" when the input does not authenticate.
//
// Each recovered number renders as uppercase hex with its first digit
// dropped, undoing the sentinel "1" prefix EncodeHex added.
func (h *HashID) DecodeHex(hash string) string {
	numbers := h.DecodeInt64(hash)
	if len(numbers) == 0 {
		return ""
	}

	var b strings.Builder
	for _, n := range numbers {
		chunk := strings.ToUpper(strconv.FormatInt(n, 16))
		b.WriteString(chunk[1:])
	}
	return b.String()
}

// isHexDigit reports whether c is an ASCII hexadecimal digit.
func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
