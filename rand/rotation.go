// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	"github.com/chewxy/math32"

	"unityrand/math"
)

// Quaternion is a rotation as plain x, y, z, w components.
type Quaternion struct {
	X, Y, Z, W float32
}

// Rotation returns a random rotation: four draws over [-1,1] divided by
// their magnitude. Negating the magnitude instead of the components
// when w < 0 keeps w non-negative after the division. The distribution
// is not uniform over rotation space, see RotationUniform.
//
// If all four draws are exactly zero the division produces NaNs. The
// engine does not guard that measure-zero case and neither do we.
func (g *Generator) Rotation() Quaternion {
	x := g.rangeFloat(-1, 1)
	y := g.rangeFloat(-1, 1)
	z := g.rangeFloat(-1, 1)
	w := g.rangeFloat(-1, 1)

	mag := math32.Sqrt(x*x + y*y + z*z + w*w)
	if w < 0 {
		mag = -mag
	}

	return Quaternion{
		X: math.Precision(x/mag, 7),
		Y: math.Precision(y/mag, 7),
		Z: math.Precision(z/mag, 7),
		W: math.Precision(w/mag, 7),
	}
}

// RotationUniform returns a random rotation drawn uniformly over
// rotation space via the Hopf fibration. Three draws. Slower than
// Rotation but distributed evenly.
func (g *Generator) RotationUniform() Quaternion {
	u1 := g.rangeFloat(0, 1)
	u2 := g.rangeFloat(0, math.Tau)
	u3 := g.rangeFloat(0, math.Tau)

	s := math32.Sqrt(u1)
	inv := math32.Sqrt(1 - u1)

	x := inv * math32.Sin(u2)
	y := inv * math32.Cos(u2)
	z := s * math32.Sin(u3)
	w := s * math32.Cos(u3)

	if w < 0 {
		x, y, z, w = -x, -y, -z, -w
	}

	return Quaternion{
		X: math.Precision(x, 7),
		Y: math.Precision(y, 7),
		Z: math.Precision(z, 7),
		W: math.Precision(w, 7),
	}
}
