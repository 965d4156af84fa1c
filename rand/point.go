// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	"github.com/chewxy/math32"

	"unityrand/math"
	"unityrand/math/vec"
)

// InsideUnitCircle returns a random point inside or on the circle with
// radius 1. The rim is part of the probability space because the radius
// draw includes 1.
func (g *Generator) InsideUnitCircle() vec.Vec2 {
	theta := g.rangeFloat(0, math.Tau)
	radius := math32.Sqrt(g.rangeFloat(0, 1))

	return vec.Vec2{
		X: math.Precision(radius*math32.Cos(theta), 7),
		Y: math.Precision(radius*math32.Sin(theta), 7),
	}
}

// OnUnitSphere returns a random point on the surface of the sphere with
// radius 1.
func (g *Generator) OnUnitSphere() vec.Vec3 {
	v := g.onUnitSphere()

	return vec.Vec3{
		X: math.Precision(v.X, 7),
		Y: math.Precision(v.Y, 7),
		Z: math.Precision(v.Z, 7),
	}
}

// InsideUnitSphere returns a random point inside or on the sphere with
// radius 1. The surface is part of the probability space because the
// radius draw includes 1.
func (g *Generator) InsideUnitSphere() vec.Vec3 {
	v := g.onUnitSphere()
	dist := math32.Pow(g.state.Float32(), 1.0/3.0)

	return vec.Vec3{
		X: math.Precision(v.X*dist, 7),
		Y: math.Precision(v.Y*dist, 7),
		Z: math.Precision(v.Z*dist, 7),
	}
}

// onUnitSphere samples the surface point without the final rounding,
// InsideUnitSphere still has to scale the coordinates. z first, then
// the azimuth, two draws total.
func (g *Generator) onUnitSphere() vec.Vec3 {
	dist := g.rangeFloat(-1, 1)
	rad := g.rangeFloat(0, math.Tau)
	radiusXY := math32.Sqrt(1 - dist*dist)

	return vec.Vec3{
		X: math32.Cos(rad) * radiusXY,
		Y: math32.Sin(rad) * radiusXY,
		Z: dist,
	}
}
