package systems

import (
	"github.com/pthm-cable/asteroids/components"
	"github.com/pthm-cable/asteroids/input"
)

// Tuning holds the per-tick steps used by the control mapper.
type Tuning struct {
	TurnStep   float64 // Radians per tick
	ThrustStep float64 // Velocity added per tick of thrust
	MaxSpeed   float64
}

// ApplyControls maps one tick of controls onto a ship's heading and velocity.
// Left/right/brake turn first, so thrust uses the updated heading.
func ApplyControls(c input.Controls, dir *components.Direction, vel *components.Velocity, t Tuning) {
	if c.Left {
		RotateLeft(dir, t.TurnStep)
	}
	if c.Right {
		RotateRight(dir, t.TurnStep)
	}
	if c.Brake {
		BrakeTurn(dir, *vel, t.TurnStep)
	}
	if c.Thrust {
		Accelerate(vel, dir.Angle, t.ThrustStep, t.MaxSpeed)
	}
}
