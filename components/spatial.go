package components

// Position is an entity's simulation-space location.
// The origin is the window center and y points up.
type Position struct {
	X float64 `inspect:"label,fmt:%.1f"`
	Y float64 `inspect:"label,fmt:%.1f"`
}

// Velocity is an entity's velocity in simulation units.
type Velocity struct {
	X float64 `inspect:"label,fmt:%.2f"`
	Y float64 `inspect:"label,fmt:%.2f"`
}

// Direction is an entity's heading in radians, kept in [0, 2π).
type Direction struct {
	Angle float64 `inspect:"angle"`
}
