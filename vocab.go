package gpm

import "sort"

// Charset represents a class of characters available for password composition.
type Charset string

const (
	// CharsetLower selects the lowercase letters a-z.
	CharsetLower Charset = "lower"

	// CharsetUpper selects the uppercase letters A-Z.
	CharsetUpper Charset = "upper"

	// CharsetDigits selects the digits 0-9.
	CharsetDigits Charset = "digits"

	// CharsetSymbols selects the ASCII symbols between '!' and '/',
	// except the two quote characters.
	CharsetSymbols Charset = "symbols"
)

// validCharsets contains all valid charsets for composition validation.
var validCharsets = map[Charset]bool{
	CharsetLower:   true,
	CharsetUpper:   true,
	CharsetDigits:  true,
	CharsetSymbols: true,
}

// IsValidCharset returns true if the charset is a known character class.
func IsValidCharset(cs Charset) bool {
	return validCharsets[cs]
}

// builtinCharsets returns the characters of each class.
func builtinCharsets() map[Charset]string {
	return map[Charset]string{
		CharsetLower:   "abcdefghijklmnopqrstuvwxyz",
		CharsetUpper:   "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		CharsetDigits:  "0123456789",
		CharsetSymbols: "!#$%&()*+,-./",
	}
}

// asciiSize is the size of the input vocabulary.
const asciiSize = 128

// InputVocabulary returns the fixed vocabulary the inputs are encoded over:
// all 128 ASCII code points, in code-point order. Unlike the output
// vocabulary the order is identity, not a sort of selected content.
func InputVocabulary() []rune {
	vocabulary := make([]rune, asciiSize)
	for i := range vocabulary {
		vocabulary[i] = rune(i)
	}
	return vocabulary
}

// ComposeOutput builds the vocabulary passwords are drawn from: the union of
// the requested character classes, deduplicated and sorted ascending by code
// point. At least one known class must contribute a character.
func ComposeOutput(sets ...Charset) ([]rune, error) {
	classes := builtinCharsets()
	seen := make(map[rune]bool)
	var vocabulary []rune

	for _, cs := range sets {
		if !IsValidCharset(cs) {
			return nil, newConfigError(ErrUnknownCharset, "", string(cs))
		}
		for _, r := range classes[cs] {
			if !seen[r] {
				seen[r] = true
				vocabulary = append(vocabulary, r)
			}
		}
	}

	if len(vocabulary) == 0 {
		return nil, newConfigError(ErrEmptyVocabulary, "", "")
	}

	sort.Slice(vocabulary, func(i, j int) bool { return vocabulary[i] < vocabulary[j] })
	return vocabulary, nil
}
