// Package input turns key state into per-tick control snapshots.
package input

// Controls is the read-only input snapshot for one tick.
type Controls struct {
	Left   bool // Rotate counter-clockwise
	Right  bool // Rotate clockwise
	Thrust bool // Accelerate along the heading
	Brake  bool // Turn toward the retrograde direction
	Fire   bool // Spawn a laser
}

// Any reports whether any control is active.
func (c Controls) Any() bool {
	return c.Left || c.Right || c.Thrust || c.Brake || c.Fire
}

// Source produces the controls for a tick.
type Source interface {
	Poll(tick int32) Controls
}

// Idle is a Source that never presses anything.
type Idle struct{}

// Poll implements Source.
func (Idle) Poll(int32) Controls { return Controls{} }

// Fixed is a Source that returns the same controls every tick.
type Fixed Controls

// Poll implements Source.
func (f Fixed) Poll(int32) Controls { return Controls(f) }
