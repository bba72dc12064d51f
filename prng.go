package gpm

import "math"

// The weight matrices are defined as the output of the MT19937 generator
// below combined with the Box-Muller transform, for a given seed. Pinning
// the generator keeps derived passwords identical across platforms and
// releases; it does not track any third-party generator.

const (
	mtStateSize = 624
	mtShift     = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
	mtTemperB   = 0x9d2c5680
	mtTemperC   = 0xefc60000
	mtInitMult  = 1812433253
)

// mersenneTwister is a 32-bit MT19937 generator.
type mersenneTwister struct {
	state [mtStateSize]uint32
	index int
}

// newMersenneTwister creates a generator initialized with the given seed.
func newMersenneTwister(seed uint32) *mersenneTwister {
	m := &mersenneTwister{index: mtStateSize}
	m.state[0] = seed
	for i := 1; i < mtStateSize; i++ {
		m.state[i] = mtInitMult*(m.state[i-1]^(m.state[i-1]>>30)) + uint32(i)
	}
	return m
}

// Uint32 generates the next tempered 32-bit value.
func (m *mersenneTwister) Uint32() uint32 {
	if m.index >= mtStateSize {
		m.twist()
	}

	y := m.state[m.index]
	m.index++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & mtTemperB
	y ^= (y << 15) & mtTemperC
	y ^= y >> 18

	return y
}

// twist regenerates the whole state block.
func (m *mersenneTwister) twist() {
	for i := 0; i < mtStateSize; i++ {
		y := (m.state[i] & mtUpperMask) | (m.state[(i+1)%mtStateSize] & mtLowerMask)
		next := m.state[(i+mtShift)%mtStateSize] ^ (y >> 1)
		if y&1 == 1 {
			next ^= mtMatrixA
		}
		m.state[i] = next
	}
	m.index = 0
}

// Float64 generates a uniform value in [0, 1) with 53-bit precision,
// built from two 32-bit draws.
func (m *mersenneTwister) Float64() float64 {
	a := m.Uint32() >> 5
	b := m.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// normalSource draws standard normal values from a seeded Mersenne Twister
// via the Box-Muller transform. Draws come in pairs; the second value of a
// pair is served before the generator advances again, so the draw order is
// fixed for a given seed.
type normalSource struct {
	mt       *mersenneTwister
	spare    float64
	hasSpare bool
}

// newNormalSource creates a normal source initialized with the given seed.
func newNormalSource(seed uint32) *normalSource {
	return &normalSource{mt: newMersenneTwister(seed)}
}

// NormFloat64 returns the next standard normal value.
func (n *normalSource) NormFloat64() float64 {
	if n.hasSpare {
		n.hasSpare = false
		return n.spare
	}

	u := n.mt.Float64()
	for u == 0 {
		u = n.mt.Float64()
	}
	v := n.mt.Float64()

	r := math.Sqrt(-2 * math.Log(u))
	n.spare = r * math.Sin(2*math.Pi*v)
	n.hasSpare = true
	return r * math.Cos(2*math.Pi*v)
}
