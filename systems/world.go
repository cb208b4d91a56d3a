package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/asteroids/components"
	"github.com/pthm-cable/asteroids/input"
)

// ControlSystem applies player controls to human-controlled entities.
type ControlSystem struct {
	filter *ecs.Filter3[components.Velocity, components.Direction, components.Human]
	tuning Tuning
}

// NewControlSystem creates a new control system.
func NewControlSystem(w *ecs.World, tuning Tuning) *ControlSystem {
	return &ControlSystem{
		filter: ecs.NewFilter3[components.Velocity, components.Direction, components.Human](w),
		tuning: tuning,
	}
}

// Update runs the control system.
func (s *ControlSystem) Update(c input.Controls) {
	query := s.filter.Query()
	for query.Next() {
		vel, dir, _ := query.Get()
		ApplyControls(c, dir, vel, s.tuning)
	}
}

// MovementSystem integrates positions from velocities.
type MovementSystem struct {
	filter *ecs.Filter2[components.Position, components.Velocity]
	scale  float64
}

// NewMovementSystem creates a new movement system.
// scale is the position change per unit of velocity per tick.
func NewMovementSystem(w *ecs.World, scale float64) *MovementSystem {
	return &MovementSystem{
		filter: ecs.NewFilter2[components.Position, components.Velocity](w),
		scale:  scale,
	}
}

// Update runs the movement system.
func (s *MovementSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		pos, vel := query.Get()
		Integrate(pos, *vel, s.scale)
	}
}

// WrapSystem keeps every positioned entity inside the playfield.
type WrapSystem struct {
	filter *ecs.Filter1[components.Position]
	bounds Bounds
}

// NewWrapSystem creates a new wrap system.
func NewWrapSystem(w *ecs.World, bounds Bounds) *WrapSystem {
	return &WrapSystem{
		filter: ecs.NewFilter1[components.Position](w),
		bounds: bounds,
	}
}

// Update runs the wrap system and returns how many entities wrapped.
func (s *WrapSystem) Update() int {
	wrapped := 0
	query := s.filter.Query()
	for query.Next() {
		if s.bounds.Wrap(query.Get()) {
			wrapped++
		}
	}
	return wrapped
}

// LifetimeSystem advances lifetime timers.
type LifetimeSystem struct {
	filter  *ecs.Filter1[components.Lifetime]
	expired []ecs.Entity
}

// NewLifetimeSystem creates a new lifetime system.
func NewLifetimeSystem(w *ecs.World) *LifetimeSystem {
	return &LifetimeSystem{
		filter: ecs.NewFilter1[components.Lifetime](w),
	}
}

// Update advances every timer by dt and returns the entities whose timers
// have expired. The slice is reused between calls; the caller removes the
// entities after Update returns.
func (s *LifetimeSystem) Update(dt float64) []ecs.Entity {
	s.expired = s.expired[:0]
	query := s.filter.Query()
	for query.Next() {
		if AdvanceLifetime(query.Get(), dt) {
			s.expired = append(s.expired, query.Entity())
		}
	}
	return s.expired
}

// Shot is a projectile requested by WeaponSystem.
type Shot struct {
	Shooter  ecs.Entity
	Position components.Position
	Velocity components.Velocity
}

// WeaponSystem turns fire input into shots from armed, human-controlled entities.
type WeaponSystem struct {
	filter   *ecs.Filter5[components.Position, components.Velocity, components.Direction, components.Weapon, components.Human]
	speed    float64
	cooldown float64
	shots    []Shot
}

// NewWeaponSystem creates a new weapon system.
// speed is the muzzle speed; cooldown is the delay between shots in seconds.
func NewWeaponSystem(w *ecs.World, speed, cooldown float64) *WeaponSystem {
	return &WeaponSystem{
		filter:   ecs.NewFilter5[components.Position, components.Velocity, components.Direction, components.Weapon, components.Human](w),
		speed:    speed,
		cooldown: cooldown,
	}
}

// Update counts down weapon cooldowns and returns the shots fired this tick.
// The slice is reused between calls; the caller spawns the shots after Update returns.
func (s *WeaponSystem) Update(c input.Controls, dt float64) []Shot {
	s.shots = s.shots[:0]
	query := s.filter.Query()
	for query.Next() {
		pos, vel, dir, weapon, _ := query.Get()

		if weapon.Cooldown > 0 {
			weapon.Cooldown = max(weapon.Cooldown-dt, 0)
		}
		if !c.Fire || weapon.Cooldown > 0 {
			continue
		}
		weapon.Cooldown = s.cooldown

		s.shots = append(s.shots, Shot{
			Shooter:  query.Entity(),
			Position: *pos,
			Velocity: MuzzleVelocity(dir.Angle, s.speed, *vel),
		})
	}
	return s.shots
}
