package gpm

// Config carries every parameter of one derivation.
//
// The engine derives a password for any strings, including empty ones; the
// numeric fields and the class flags are what Validate checks. DefaultConfig
// fills the standard values.
type Config struct {
	// MasterKey is the secret every password is derived from. It never
	// leaves the process; audit output and events show only a fingerprint.
	MasterKey string `audit:"secret"`

	// Target identifies the login destination (URL, IP, service name).
	// Equivalent spellings are normalized before use, see Normalize.
	Target string

	// Login identifies the account at the target (username, email).
	Login string `audit:"identifier"`

	// Length is the number of characters in the derived password.
	Length int

	// Nonce offsets the entropy stream, so one login can hold several
	// passwords under the same master key.
	Nonce int

	// Character classes composing the output vocabulary.
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool

	// ContextWidth is the number of stream values backing one password
	// character.
	ContextWidth int

	// EmbeddingWidth is the width of one embedding vector.
	EmbeddingWidth int
}

// Default dimensions of a derivation.
const (
	DefaultLength         = 16
	DefaultNonce          = 1
	DefaultContextWidth   = 8
	DefaultEmbeddingWidth = 128
)

// DefaultConfig returns a Config for the given login with every other field
// at its default: 16 characters, nonce 1, letters and digits without symbols.
func DefaultConfig(masterKey, target, login string) Config {
	return Config{
		MasterKey:      masterKey,
		Target:         target,
		Login:          login,
		Length:         DefaultLength,
		Nonce:          DefaultNonce,
		Lower:          true,
		Upper:          true,
		Digits:         true,
		ContextWidth:   DefaultContextWidth,
		EmbeddingWidth: DefaultEmbeddingWidth,
	}
}

// Charsets returns the character classes selected by the composition flags.
func (c Config) Charsets() []Charset {
	var sets []Charset
	if c.Lower {
		sets = append(sets, CharsetLower)
	}
	if c.Upper {
		sets = append(sets, CharsetUpper)
	}
	if c.Digits {
		sets = append(sets, CharsetDigits)
	}
	if c.Symbols {
		sets = append(sets, CharsetSymbols)
	}
	return sets
}

// Validate checks the configuration in a single pass, before any derivation
// work happens.
func (c Config) Validate() error {
	if c.Length < 1 {
		return newConfigError(ErrInvalidLength, "Length", "")
	}
	if c.ContextWidth < 1 {
		return newConfigError(ErrInvalidContext, "ContextWidth", "")
	}
	if c.EmbeddingWidth < 1 {
		return newConfigError(ErrInvalidEmbedding, "EmbeddingWidth", "")
	}
	if len(c.Charsets()) == 0 {
		return newConfigError(ErrEmptyVocabulary, "Charsets", "")
	}
	return nil
}
