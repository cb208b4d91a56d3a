// Package components defines ECS components for the game.
// Components are plain data; behavior lives in the systems package.
package components

// Health is an integer hit-point counter.
// Nothing decrements it yet: there is no collision system.
type Health struct {
	Value int `inspect:"bar,max:10"`
}

// Human tags the player-controlled entity.
type Human struct{}

// Damage is the amount a projectile would deal on hit.
type Damage struct {
	Amount int `inspect:"label"`
}

// Weapon holds the fire cooldown of an armed entity.
type Weapon struct {
	Cooldown float64 `inspect:"label,fmt:%.2fs"` // Seconds until the next shot is allowed
}

// Lifetime is a one-shot countdown that expires a transient entity.
type Lifetime struct {
	Duration float64 `inspect:"label,fmt:%.2fs"`
	Elapsed  float64 `inspect:"bar,max:0.5"`
	Expired  bool
}

// Remaining returns the seconds left before the lifetime expires.
func (l *Lifetime) Remaining() float64 {
	if l.Expired || l.Elapsed >= l.Duration {
		return 0
	}
	return l.Duration - l.Elapsed
}
