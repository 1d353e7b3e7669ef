package hashid

// Defaults and derivation ratios. The alphabet and separator defaults match
// the canonical hashids character sets, so default-configured instances are
// wire-compatible with the reference implementations.
const (
	// DefaultAlphabet is the 62-character mixed-case alphanumeric alphabet
	// used when WithAlphabet is not supplied.
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

	// DefaultSeps is the default separator candidate set, a 14-character
	// subset of DefaultAlphabet chosen to keep curse words out of hashes.
	DefaultSeps = "cfhistuCFHISTU"

	// MaxMinLength caps WithMinLength; it bounds worst-case padding work.
	MaxMinLength = 1024

	minAlphabetLength    = 16
	minAlphabetAfterSeps = 10
	sepDiv               = 3.5
	guardDiv             = 12.0
)

// Options holds the raw construction parameters for a HashID.
// Prefer DefaultOptions plus the WithX functional options; New validates
// the resolved set and derives the immutable alphabet/seps/guards from it.
type Options struct {
	// Salt perturbs every permutation. Surrounding whitespace is trimmed.
	// An empty salt is legal and yields the unsalted canonical encoding.
	Salt string

	// MinLength pads hashes up to this length; 0 disables padding.
	// Valid range is [0, MaxMinLength].
	MinLength int

	// Alphabet is the source character set; it must contain at least 16
	// distinct characters.
	Alphabet string

	// Seps is the separator candidate set; only characters also present in
	// Alphabet participate.
	Seps string
}

// DefaultOptions returns the canonical configuration: empty salt, no
// minimum length, DefaultAlphabet and DefaultSeps.
func DefaultOptions() Options {
	return Options{
		Salt:      "",
		MinLength: 0,
		Alphabet:  DefaultAlphabet,
		Seps:      DefaultSeps,
	}
}

// Option configures a HashID at construction time.
type Option func(*Options)

// WithSalt sets the salt that parameterizes every shuffle.
func WithSalt(salt string) Option {
	return func(o *Options) { o.Salt = salt }
}

// WithMinLength pads encoded output up to n characters.
// New rejects values outside [0, MaxMinLength] with ErrMinLengthRange.
func WithMinLength(n int) Option {
	return func(o *Options) { o.MinLength = n }
}

// WithAlphabet replaces the source alphabet.
func WithAlphabet(alphabet string) Option {
	return func(o *Options) { o.Alphabet = alphabet }
}

// WithSeps replaces the separator candidate set.
func WithSeps(seps string) Option {
	return func(o *Options) { o.Seps = seps }
}
