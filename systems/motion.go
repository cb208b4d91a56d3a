// Package systems contains the per-tick transforms of the game and the
// ECS systems that apply them to the world.
package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/asteroids/components"
)

const twoPi = 2 * math.Pi

// NormalizeHeading wraps a heading to [0, 2π).
func NormalizeHeading(h float64) float64 {
	h = math.Mod(h, twoPi)
	if h < 0 {
		h += twoPi
	}
	// math.Mod of a tiny negative can round back up to 2π
	if h >= twoPi {
		h = 0
	}
	return h
}

// angleDelta returns the shortest signed rotation from a to b, in (-π, π].
func angleDelta(a, b float64) float64 {
	d := math.Mod(b-a, twoPi)
	if d > math.Pi {
		d -= twoPi
	} else if d <= -math.Pi {
		d += twoPi
	}
	return d
}

// Rotate turns dir by delta radians (positive is counter-clockwise).
func Rotate(dir *components.Direction, delta float64) {
	dir.Angle = NormalizeHeading(dir.Angle + delta)
}

// RotateLeft turns dir counter-clockwise by one step.
func RotateLeft(dir *components.Direction, step float64) {
	Rotate(dir, step)
}

// RotateRight turns dir clockwise by one step.
func RotateRight(dir *components.Direction, step float64) {
	Rotate(dir, -step)
}

// Heading returns the unit vector for an angle.
func Heading(angle float64) r2.Vec {
	return r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Accelerate adds amount along the heading to vel, then clamps to maxSpeed.
func Accelerate(vel *components.Velocity, heading, amount, maxSpeed float64) {
	v := r2.Add(r2.Vec(*vel), r2.Scale(amount, Heading(heading)))
	*vel = components.Velocity(v)
	ClampSpeed(vel, maxSpeed)
}

// ClampSpeed rescales vel so its magnitude does not exceed maxSpeed.
// The direction is preserved.
func ClampSpeed(vel *components.Velocity, maxSpeed float64) {
	v := r2.Vec(*vel)
	if r2.Norm2(v) <= maxSpeed*maxSpeed {
		return
	}
	*vel = components.Velocity(r2.Scale(maxSpeed/r2.Norm(v), v))
}

// Speed returns the magnitude of vel.
func Speed(vel components.Velocity) float64 {
	return r2.Norm(r2.Vec(vel))
}

// BrakeTurn turns dir by at most step toward the retrograde direction
// (opposite the velocity), so a following thrust slows the entity down.
// A stationary entity is left unchanged.
func BrakeTurn(dir *components.Direction, vel components.Velocity, step float64) {
	if vel.X == 0 && vel.Y == 0 {
		return
	}
	retrograde := NormalizeHeading(math.Atan2(-vel.Y, -vel.X))
	d := angleDelta(dir.Angle, retrograde)
	if math.Abs(d) <= step {
		dir.Angle = retrograde
		return
	}
	Rotate(dir, math.Copysign(step, d))
}

// Integrate advances pos by vel scaled by the per-tick step scale.
func Integrate(pos *components.Position, vel components.Velocity, scale float64) {
	pos.X += vel.X * scale
	pos.Y += vel.Y * scale
}
