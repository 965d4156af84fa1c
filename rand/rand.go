// SPDX-License-Identifier: GPL-2.0-or-later

// Package rand reproduces the Unity engine's seeded random number
// generator bit for bit, including its derived distributions. Given the
// same seed it emits the same sequence as the engine, which makes it
// usable for replay verification and cross-platform parity checks.
package rand

import (
	"time"

	"unityrand/math"
)

// Generator is one random stream. It owns its State exclusively;
// independent sequences want independent Generators, there is no
// built-in locking.
type Generator struct {
	state State
}

// New returns a Generator seeded from the wall clock, truncated to
// seconds. The resulting sequence is valid but not reproducible, use
// NewSeeded when the output has to match.
func New() *Generator {
	return NewSeeded(int32(time.Now().Unix()))
}

// NewSeeded returns a Generator with a fully deterministic stream.
func NewSeeded(seed int32) *Generator {
	g := &Generator{}
	g.InitState(seed)
	return g
}

// InitState re-seeds the generator, discarding the current stream.
func (g *Generator) InitState(seed int32) {
	g.state = InitState(uint32(seed))
}

// State returns a copy of the internal state, e.g. for persistence.
func (g *Generator) State() State {
	return g.state
}

// SetState replaces the internal state with a previously captured one.
// The generator continues the stream exactly where the copy left off.
func (g *Generator) SetState(s State) {
	g.state = s
}

// Range returns a random int in [min,max). Swapped bounds are swapped
// back. An empty range returns min without consuming a draw, otherwise
// exactly one draw is reduced modulo the range width.
func (g *Generator) Range(min, max int32) int32 {
	if min > max {
		min, max = max, min
	}
	diff := uint32(max - min)
	if diff == 0 {
		return min
	}
	return min + int32(g.state.Uint32()%diff)
}

// RangeFloat returns a random float in [min,max], both ends included.
func (g *Generator) RangeFloat(min, max float32) float32 {
	return math.Precision(g.rangeFloat(min, max), 7)
}

// Value returns a random float in [0,1], both ends included.
func (g *Generator) Value() float32 {
	return math.Precision(g.state.Float32(), 7)
}

// rangeFloat consumes one draw. max is weighted by 1-f and min by f,
// the reversed lerp the engine uses. The ordering of the two products
// is load-bearing, changing it moves the low mantissa bits.
func (g *Generator) rangeFloat(min, max float32) float32 {
	f := g.state.Float32()
	return (1-f)*max + f*min
}
