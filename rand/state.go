// SPDX-License-Identifier: GPL-2.0-or-later

package rand

// mt19937 state-expansion multiplier
const seedMul = 0x6C078965

// State is the full internal state of the stream, the four words of
// Marsaglia's Xorshift128. It is a plain value: copy it to snapshot a
// stream, assign it back to rewind one. The json tags give the wire
// layout used for persistence.
type State struct {
	S0 uint32 `json:"s0"`
	S1 uint32 `json:"s1"`
	S2 uint32 `json:"s2"`
	S3 uint32 `json:"s3"`
}

// InitState expands a 32bit seed into the four state words using the
// Mersenne Twister initialization recurrence. Every seed yields a valid
// stream, including 0.
func InitState(seed uint32) State {
	s0 := seed
	s1 := s0*seedMul + 1
	s2 := s1*seedMul + 1
	s3 := s2*seedMul + 1
	return State{s0, s1, s2, s3}
}

// Uint32 advances the state by one Xorshift128 step and returns the new
// last word. Every derived value consumes a fixed number of these
// steps, so callers that interleave draws on a shared State change the
// sequence for everyone.
func (s *State) Uint32() uint32 {
	t := s.S0 ^ (s.S0 << 11)
	u := s.S3 ^ (s.S3 >> 19)
	s.S0, s.S1, s.S2 = s.S1, s.S2, s.S3
	s.S3 = u ^ (t ^ (t >> 8))
	return s.S3
}

// Float32 maps the next step onto [0,1]. Both endpoints are reachable:
// the divisor is 2^23-1, not 2^23. Keep it that way, the inclusive
// upper bound is relied upon by the derived distributions.
func (s *State) Float32() float32 {
	return float32(s.Uint32()&0x7FFFFF) / float32(0x7FFFFF)
}
