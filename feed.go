package gpm

// Feed is a deterministic integer stream folding an accumulator over the
// cyclic repetition of its source.
//
// Each step consumes the next source element and emits
// (accumulator + element + nonce) mod modulus. The accumulator carries
// forward, so the value at position k depends on every element up to k and a
// repeated input fragment does not repeat in the output.
type Feed struct {
	source  []int
	nonce   int
	modulus int

	acc int
	pos int
}

// NewFeed creates a feed over source with the given nonce and modulus.
// The source must not be empty and the modulus must be positive.
func NewFeed(source []int, nonce, modulus int) (*Feed, error) {
	if len(source) == 0 {
		return nil, newConfigError(ErrEmptySource, "", "")
	}
	if modulus < 1 {
		return nil, newConfigError(ErrInvalidModulus, "", "")
	}
	return &Feed{
		source:  append([]int(nil), source...),
		nonce:   nonce,
		modulus: modulus,
	}, nil
}

// Next emits the next value of the stream, always in [0, modulus).
func (f *Feed) Next() int {
	element := f.source[f.pos%len(f.source)]
	f.pos++
	f.acc = mod(f.acc+element+f.nonce, f.modulus)
	return f.acc
}

// Take emits the next n values of the stream.
func (f *Feed) Take(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = f.Next()
	}
	return values
}

// Reset rewinds the stream to position zero.
// A reset feed replays the exact same sequence.
func (f *Feed) Reset() {
	f.acc = 0
	f.pos = 0
}

// mod reduces v into [0, m), unlike the native remainder which keeps the
// sign of v.
func mod(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}
