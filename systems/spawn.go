package systems

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/asteroids/components"
)

// CenteredCoordinate maps a uniform draw u in [0, 1) to a coordinate in
// [-extent/2, extent/2). Draws at or past the midpoint are shifted back by
// the full extent rather than rejected.
func CenteredCoordinate(u, extent float64) float64 {
	v := u * extent
	if v >= extent/2 {
		v -= extent
	}
	return v
}

// RandomPosition returns a uniformly random position inside the window.
func RandomPosition(rng *rand.Rand, b Bounds) components.Position {
	return components.Position{
		X: CenteredCoordinate(rng.Float64(), b.Width),
		Y: CenteredCoordinate(rng.Float64(), b.Height),
	}
}

// RandomLaunch returns a random heading in [0, 2π) and a velocity along it
// with speed in [0, maxSpeed).
func RandomLaunch(rng *rand.Rand, maxSpeed float64) (float64, components.Velocity) {
	heading := rng.Float64() * twoPi
	speed := rng.Float64() * maxSpeed
	return heading, components.Velocity(r2.Scale(speed, Heading(heading)))
}

// MuzzleVelocity returns the velocity of a projectile fired along heading at
// speed by a shooter moving at shooter. The projectile inherits the shooter's
// momentum.
func MuzzleVelocity(heading, speed float64, shooter components.Velocity) components.Velocity {
	v := r2.Add(r2.Scale(speed, Heading(heading)), r2.Vec(shooter))
	return components.Velocity(v)
}
