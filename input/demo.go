package input

// Demo is a deterministic autopilot for headless runs.
// It cycles through thrusting, turning and coasting, and fires on a fixed interval.
type Demo struct {
	ThrustTicks int32 // Ticks of thrust at the start of each cycle
	TurnTicks   int32 // Ticks of left turn after thrusting
	CoastTicks  int32 // Ticks of coasting (with brake turn) after turning
	FireEvery   int32 // Fire on every Nth tick (0 = never)
}

// NewDemo returns a Demo with a cycle of about four seconds at 60 ticks per second.
func NewDemo() *Demo {
	return &Demo{
		ThrustTicks: 90,
		TurnTicks:   60,
		CoastTicks:  90,
		FireEvery:   10,
	}
}

// Poll implements Source.
func (d *Demo) Poll(tick int32) Controls {
	var c Controls

	cycle := d.ThrustTicks + d.TurnTicks + d.CoastTicks
	if cycle > 0 {
		phase := tick % cycle
		switch {
		case phase < d.ThrustTicks:
			c.Thrust = true
		case phase < d.ThrustTicks+d.TurnTicks:
			c.Left = true
		default:
			c.Brake = true
		}
	}

	if d.FireEvery > 0 && tick%d.FireEvery == 0 {
		c.Fire = true
	}
	return c
}
