// errors.go — sentinel errors for the hashid package.
//
// Error policy:
//   - Construction failures are fatal and return one of the sentinels below.
//   - Runtime encode/decode failures are sentinel VALUES, not errors: an
//     empty string (encode) or empty slice (decode). Zero can never encode
//     to "" (a legal call always emits at least the lottery character), so
//     an empty result is unambiguous.
//   - Decode to the 32-bit surface is the single exception: a recovered
//     value outside the int32 range surfaces ErrOverflow.
//   - Callers branch with errors.Is; messages are stable but not contract.

package hashid

import "errors"

// ErrBlankAlphabet indicates the alphabet option is empty or whitespace-only.
var ErrBlankAlphabet = errors.New("hashid: alphabet must not be blank")

// ErrBlankSeps indicates the separator option is empty or whitespace-only.
var ErrBlankSeps = errors.New("hashid: seps must not be blank")

// ErrMinLengthRange indicates the minimum hash length is outside [0, 1024].
var ErrMinLengthRange = errors.New("hashid: min length out of range [0, 1024]")

// ErrAlphabetTooSmall indicates fewer than 16 distinct alphabet characters.
var ErrAlphabetTooSmall = errors.New("hashid: alphabet must contain at least 16 unique characters")

// ErrAlphabetAfterSeps indicates fewer than 10 alphabet characters remain
// once the separator set has been carved out.
var ErrAlphabetAfterSeps = errors.New("hashid: fewer than 10 alphabet characters remain after separator removal")

// ErrOverflow indicates a decoded value exceeds the signed 32-bit range.
// Returned only by Decode; use DecodeInt64 for the full 64-bit range.
var ErrOverflow = errors.New("hashid: decoded value exceeds the 32-bit signed range")
