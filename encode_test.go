package hashid_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/hashid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNew builds a codec or fails the test.
func mustNew(t *testing.T, opts ...hashid.Option) *hashid.HashID {
	t.Helper()
	h, err := hashid.New(opts...)
	require.NoError(t, err, "construction must succeed")
	return h
}

// TestEncode_GoldenVectors pins the salted encoding against the published
// reference vectors.
func TestEncode_GoldenVectors(t *testing.T) {
	h := mustNew(t, hashid.WithSalt("this is my salt"))

	tests := []struct {
		name    string
		numbers []int64
		want    string
	}{
		{"single", []int64{12345}, "NkK9"},
		{"triple", []int64{1, 2, 3}, "laHquq"},
		{"mixed magnitudes", []int64{683, 94108, 123, 5}, "aBMswoO2UB3Sj"},
		{"zero", []int64{0}, "5x"},
		{"max int64", []int64{math.MaxInt64}, "jvNx4BjM5KYjv"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, h.EncodeInt64(tc.numbers...))
		})
	}
}

// TestEncode_DefaultSalt pins the unsalted encoding.
func TestEncode_DefaultSalt(t *testing.T) {
	h := mustNew(t)

	assert.Equal(t, "o2fXhV", h.Encode(1, 2, 3))
	assert.Equal(t, "9x", h.Encode(42))
	assert.Equal(t, "GMXNSRJD", h.Encode(12345, 67890))
}

// TestEncode_Rejection verifies the sentinel empty string for the empty
// call and for any negative number.
func TestEncode_Rejection(t *testing.T) {
	h := mustNew(t, hashid.WithSalt("this is my salt"))

	assert.Empty(t, h.Encode(), "empty input must yield an empty string")
	assert.Empty(t, h.Encode(-1), "a negative number must yield an empty string")
	assert.Empty(t, h.Encode(1, 2, -3), "one negative among valid numbers still rejects the call")
	assert.Empty(t, h.EncodeInt64(math.MinInt64), "int64 minimum must be rejected")
}

// TestEncode_Deterministic verifies identical output across calls and
// across independently constructed instances.
func TestEncode_Deterministic(t *testing.T) {
	a := mustNew(t, hashid.WithSalt("determinism"), hashid.WithMinLength(16))
	b := mustNew(t, hashid.WithSalt("determinism"), hashid.WithMinLength(16))

	numbers := []int64{7, 99, 100000, 0, 83}
	first := a.EncodeInt64(numbers...)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, a.EncodeInt64(numbers...), "repeat calls must agree")
		assert.Equal(t, first, b.EncodeInt64(numbers...), "sibling instances must agree")
	}
}

// TestEncode_MinLength verifies the padding guarantees: guard-only padding,
// the half-alphabet padding loop with exact trimming, and that padding
// never disturbs the decoded value.
func TestEncode_MinLength(t *testing.T) {
	t.Run("guard padding", func(t *testing.T) {
		h := mustNew(t, hashid.WithSalt("this is my salt"), hashid.WithMinLength(8))
		s := h.Encode(1)
		assert.Equal(t, "gB0NV05e", s, "reference vector for guard-level padding")
		assert.Len(t, s, 8)
	})

	t.Run("alphabet padding loop", func(t *testing.T) {
		h := mustNew(t, hashid.WithSalt("this is my salt"), hashid.WithMinLength(30))
		s := h.Encode(1)
		assert.Equal(t, "jyQ3p9aJEDngB0NV05ev1WwPNxZq64", s, "reference vector for slab-level padding")
		assert.Len(t, s, 30, "padding must hit the minimum length exactly")

		back, err := h.Decode(s)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, back, "padding must not disturb the payload")
	})

	t.Run("longer payload", func(t *testing.T) {
		h := mustNew(t, hashid.WithSalt("this is my salt"), hashid.WithMinLength(30))
		s := h.Encode(4140, 21147, 115975, 678570, 4213597, 35141770)
		assert.Equal(t, "NNkOIq24HlnJ7TJxZpt17yM8ugomM3", s)
		assert.Len(t, s, 30)
	})

	t.Run("length floor across inputs", func(t *testing.T) {
		h := mustNew(t, hashid.WithSalt("floor"), hashid.WithMinLength(25))
		for _, numbers := range [][]int64{{0}, {1}, {42}, {1, 2, 3}, {math.MaxInt64, math.MaxInt64}} {
			s := h.EncodeInt64(numbers...)
			assert.GreaterOrEqual(t, len(s), 25, "every output must satisfy the minimum length")

			back := h.DecodeInt64(s)
			assert.Equal(t, numbers, back, "padded output must round-trip")
		}
	})

	t.Run("zero min length is unpadded", func(t *testing.T) {
		h := mustNew(t, hashid.WithSalt("this is my salt"))
		assert.Equal(t, "NkK9", h.Encode(12345), "no padding without a minimum length")
	})
}

// TestEncode_RoundTrip sweeps assorted sequences through encode/decode and
// expects exact reproduction.
func TestEncode_RoundTrip(t *testing.T) {
	h := mustNew(t, hashid.WithSalt("round and round"))

	cases := [][]int64{
		{0},
		{1},
		{0, 0, 0},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		{math.MaxInt32},
		{math.MaxInt64},
		{math.MaxInt64, 0, math.MaxInt64},
		{99, 25},
		{1337, 42, 7},
	}
	for _, numbers := range cases {
		s := h.EncodeInt64(numbers...)
		require.NotEmpty(t, s, "encoding %v must produce output", numbers)
		assert.Equal(t, numbers, h.DecodeInt64(s), "decode must invert encode for %v", numbers)
	}
}

// TestEncode_LongSalt verifies salts longer than the working alphabet:
// the shuffle seed buffer truncates the salt, and round trips still hold.
func TestEncode_LongSalt(t *testing.T) {
	h := mustNew(t, hashid.WithSalt(strings.Repeat("x", 100)))
	s := h.Encode(1, 2, 3)
	assert.Equal(t, "JlCjFD", s, "long-salt golden vector")
	assert.Equal(t, []int64{1, 2, 3}, h.DecodeInt64(s))

	h = mustNew(t, hashid.WithSalt(strings.Repeat("abc", 40)), hashid.WithMinLength(10))
	s = h.Encode(99)
	assert.Equal(t, "brK4jjo4ja", s, "long-salt padded golden vector")
	assert.Equal(t, []int64{99}, h.DecodeInt64(s))
}

// TestEncode_SaltChangesOutput verifies that different salts produce
// different hashes for the same numbers.
func TestEncode_SaltChangesOutput(t *testing.T) {
	a := mustNew(t, hashid.WithSalt("salt one"))
	b := mustNew(t, hashid.WithSalt("salt two"))

	assert.NotEqual(t, a.Encode(1, 2, 3), b.Encode(1, 2, 3), "salts must perturb the output")
}
