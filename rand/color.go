// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	"github.com/chewxy/math32"

	"unityrand/math"
)

// Color is an RGBA color with float32 channels. Channels may exceed 1
// when produced with the hdr flag set.
type Color struct {
	R, G, B, A float32
}

// Color returns a random color with full hue, saturation and value
// ranges and alpha fixed at 1.
func (g *Generator) Color() Color {
	return g.ColorHSVA(0, 1, 0, 1, 0, 1, 1, 1)
}

// ColorH returns a random color with the hue restricted to
// [hueMin,hueMax].
func (g *Generator) ColorH(hueMin, hueMax float32) Color {
	return g.ColorHSVA(hueMin, hueMax, 0, 1, 0, 1, 1, 1)
}

// ColorHS returns a random color with restricted hue and saturation.
func (g *Generator) ColorHS(hueMin, hueMax, satMin, satMax float32) Color {
	return g.ColorHSVA(hueMin, hueMax, satMin, satMax, 0, 1, 1, 1)
}

// ColorHSV returns a random color with restricted hue, saturation and
// value.
func (g *Generator) ColorHSV(hueMin, hueMax, satMin, satMax, valMin, valMax float32) Color {
	return g.ColorHSVA(hueMin, hueMax, satMin, satMax, valMin, valMax, 1, 1)
}

// ColorHSVA returns a random color with every channel restricted. One
// draw per channel: hue, saturation and value are consumed before the
// HSV conversion, alpha after it. The conversion runs with hdr set, so
// value ranges above 1 pass through unclamped.
func (g *Generator) ColorHSVA(hueMin, hueMax, satMin, satMax, valMin, valMax, alphaMin, alphaMax float32) Color {
	hue := math.Lerp(hueMin, hueMax, g.state.Float32())
	sat := math.Lerp(satMin, satMax, g.state.Float32())
	val := math.Lerp(valMin, valMax, g.state.Float32())

	c := HSVToRGB(hue, sat, val, true)
	a := math.Lerp(alphaMin, alphaMax, g.state.Float32())

	return Color{
		R: math.Precision(c.R, 7),
		G: math.Precision(c.G, 7),
		B: math.Precision(c.B, 7),
		A: math.Precision(a, 7),
	}
}

// HSVToRGB converts hue, saturation and value to an RGB color with
// alpha 1. With hdr set the channels are not clamped to [0,1].
//
// The sector selection below mirrors the engine's switch verbatim,
// including the +1 offset, the duplicate formulas for the first and
// last sectors and the unreachable fallback. Sector boundaries round
// differently under any "simplified" version, so this stays as is.
func HSVToRGB(h, s, v float32, hdr bool) Color {
	if s == 0 {
		return Color{v, v, v, 1}
	}
	if v == 0 {
		return Color{0, 0, 0, 1}
	}

	num := h * 6
	sector := math32.Floor(num)
	frac := num - sector

	p := v * (1 - s)
	q := v * (1 - s*frac)
	t := v * (1 - s*(1-frac))

	var c Color
	switch sector + 1 {
	case 0:
		c = Color{v, p, q, 1}
	case 1:
		c = Color{v, t, p, 1}
	case 2:
		c = Color{q, v, p, 1}
	case 3:
		c = Color{p, v, t, 1}
	case 4:
		c = Color{p, q, v, 1}
	case 5:
		c = Color{t, p, v, 1}
	case 6:
		c = Color{v, p, q, 1}
	case 7:
		c = Color{v, t, p, 1}
	default:
		c = Color{0, 0, 0, 1}
	}

	if !hdr {
		c.R = math.Clamp(0, c.R, 1)
		c.G = math.Clamp(0, c.G, 1)
		c.B = math.Clamp(0, c.B, 1)
	}
	return c
}
