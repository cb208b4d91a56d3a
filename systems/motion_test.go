package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/asteroids/components"
)

const turnStep = 0.03

func TestNormalizeHeading(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"inside range", 1.5, 1.5},
		{"exactly 2pi", twoPi, 0},
		{"just negative", -0.01, twoPi - 0.01},
		{"several turns", 5*twoPi + 0.25, 0.25},
		{"several negative turns", -3*twoPi - 0.25, twoPi - 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeHeading(tt.in)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, twoPi)
		})
	}
}

func TestRotateLeftThenRightRestoresHeading(t *testing.T) {
	for _, angle := range []float64{0, 0.01, math.Pi / 2, math.Pi, twoPi - 0.01, twoPi - turnStep/2} {
		dir := components.Direction{Angle: angle}
		RotateLeft(&dir, turnStep)
		RotateRight(&dir, turnStep)

		// Compare on the circle: 0 and 2π-ε are neighbors
		assert.InDelta(t, 0, angleDelta(angle, dir.Angle), 1e-9, "heading %v", angle)
	}
}

func TestRotateKeepsAngleInRange(t *testing.T) {
	dir := components.Direction{Angle: 0}
	for i := 0; i < 1000; i++ {
		RotateRight(&dir, turnStep)
		require.GreaterOrEqual(t, dir.Angle, 0.0)
		require.Less(t, dir.Angle, twoPi)
	}
	for i := 0; i < 3000; i++ {
		RotateLeft(&dir, turnStep)
		require.GreaterOrEqual(t, dir.Angle, 0.0)
		require.Less(t, dir.Angle, twoPi)
	}
}

func TestAccelerateFromRestAlongHeading(t *testing.T) {
	vel := components.Velocity{}
	Accelerate(&vel, math.Pi/2, 1, 100)

	assert.InDelta(t, 0, vel.X, 1e-12)
	assert.InDelta(t, 1, vel.Y, 1e-12)
}

func TestAccelerateNeverExceedsMaxSpeed(t *testing.T) {
	const maxSpeed = 100.0
	rng := rand.New(rand.NewSource(7))

	vel := components.Velocity{}
	for i := 0; i < 5000; i++ {
		heading := rng.Float64() * twoPi
		if i%3 != 0 {
			heading = 0.7 // mostly push one way so the clamp engages
		}
		Accelerate(&vel, heading, 1, maxSpeed)
		require.LessOrEqual(t, Speed(vel), maxSpeed+1e-9, "iteration %d", i)
	}
	assert.InDelta(t, maxSpeed, Speed(vel), 1.0)
}

func TestClampSpeedIsVectorClamp(t *testing.T) {
	vel := components.Velocity{X: 300, Y: 400}
	ClampSpeed(&vel, 100)

	// Direction preserved, magnitude reduced (not a per-component clamp)
	assert.InDelta(t, 60, vel.X, 1e-9)
	assert.InDelta(t, 80, vel.Y, 1e-9)

	slow := components.Velocity{X: 3, Y: 4}
	ClampSpeed(&slow, 100)
	assert.Equal(t, components.Velocity{X: 3, Y: 4}, slow)
}

func TestBrakeTurn(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		vel   components.Velocity
		want  float64
	}{
		{"stationary is unchanged", 1.0, components.Velocity{}, 1.0},
		{"vertical velocity has no division hazard", math.Pi / 2, components.Velocity{X: 0, Y: 10}, math.Pi/2 + turnStep},
		{"already retrograde", math.Pi, components.Velocity{X: 5, Y: 0}, math.Pi},
		{"snaps when within a step", math.Pi - 0.01, components.Velocity{X: 5, Y: 0}, math.Pi},
		{"turns clockwise when shorter", 0.5, components.Velocity{X: 0, Y: 5}, 0.5 - turnStep + twoPi},
		{"turns counter-clockwise when shorter", 0.5, components.Velocity{X: 0, Y: -5}, 0.5 + turnStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := components.Direction{Angle: tt.angle}
			BrakeTurn(&dir, tt.vel, turnStep)
			assert.InDelta(t, 0, angleDelta(NormalizeHeading(tt.want), dir.Angle), 1e-9)
			assert.False(t, math.IsNaN(dir.Angle))
		})
	}
}

func TestBrakeTurnConvergesToRetrograde(t *testing.T) {
	vel := components.Velocity{X: 10, Y: 10}
	dir := components.Direction{Angle: math.Pi / 4} // prograde

	for i := 0; i < 200; i++ {
		BrakeTurn(&dir, vel, turnStep)
	}
	assert.InDelta(t, 5*math.Pi/4, dir.Angle, 1e-9)
}

func TestIntegrateScenario(t *testing.T) {
	const stepScale = 0.05

	pos := components.Position{}
	vel := components.Velocity{}
	dir := components.Direction{Angle: math.Pi / 2}

	Accelerate(&vel, dir.Angle, 1, 100)
	Integrate(&pos, vel, stepScale)

	assert.InDelta(t, 0, pos.X, 1e-12)
	assert.InDelta(t, stepScale, pos.Y, 1e-12)
}
