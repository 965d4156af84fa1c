package math

import (
	gmath "math"

	"github.com/chewxy/math32"
)

const (
	Pi  = gmath.Pi
	Tau = 2 * gmath.Pi
)

// Precision rounds x to a count of significant digits, not decimal
// places. The scale factor and the rounding step run in double
// precision: a pure float32 version shows glitches near power-of-ten
// boundaries, e.g. 12300 at 2 digits comes out as 11999.999 instead of
// 12000. The magnitude estimate stays in float32 to match the engine.
func Precision(x float32, digits int32) float32 {
	if x == 0 || digits == 0 {
		return 0
	}
	shift := digits - int32(math32.Ceil(math32.Log10(math32.Abs(x))))
	factor := gmath.Pow(10, float64(shift))
	return float32(gmath.Round(float64(x)*factor) / factor)
}

// Lerp interpolates between a and b. t is clamped to [0,1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*Clamp(0, t, 1)
}
