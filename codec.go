package gpm

// Codec provides bidirectional character/index mapping over a vocabulary.
//
// Both directions are total: characters outside the vocabulary encode to
// index 0, and indices outside the vocabulary decode to its first character.
// For every character actually in the vocabulary, Decode(Encode(c)) == c.
type Codec struct {
	indexes map[rune]int
	runes   []rune
}

// NewCodec builds a codec over a vocabulary.
// The vocabulary must not be empty.
func NewCodec(vocabulary []rune) *Codec {
	c := &Codec{
		indexes: make(map[rune]int, len(vocabulary)),
		runes:   append([]rune(nil), vocabulary...),
	}
	for i, r := range c.runes {
		if _, ok := c.indexes[r]; !ok {
			c.indexes[r] = i
		}
	}
	return c
}

// Encode returns the vocabulary position of r, or 0 when r is not in the
// vocabulary.
func (c *Codec) Encode(r rune) int {
	if i, ok := c.indexes[r]; ok {
		return i
	}
	return 0
}

// Decode returns the character at position i, or the first character of the
// vocabulary when i is out of range.
func (c *Codec) Decode(i int) rune {
	if i < 0 || i >= len(c.runes) {
		return c.runes[0]
	}
	return c.runes[i]
}

// EncodeString maps every character of s to its vocabulary position.
func (c *Codec) EncodeString(s string) []int {
	indexes := make([]int, 0, len(s))
	for _, r := range s {
		indexes = append(indexes, c.Encode(r))
	}
	return indexes
}

// Size returns the number of characters in the vocabulary.
func (c *Codec) Size() int {
	return len(c.runes)
}
