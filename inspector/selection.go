package inspector

import "github.com/mlange-42/ark/ecs"

// Candidate is a selectable entity with a hit circle in world coordinates.
type Candidate struct {
	Entity ecs.Entity
	X, Y   float64
	Radius float64
}

// Nearest returns the candidate closest to (x, y) whose hit circle,
// grown by tolerance, contains the point.
func Nearest(candidates []Candidate, x, y, tolerance float64) (ecs.Entity, bool) {
	var closest ecs.Entity
	closestDist := 0.0
	found := false

	for _, c := range candidates {
		dx := x - c.X
		dy := y - c.Y
		dist := dx*dx + dy*dy

		hit := c.Radius + tolerance
		if dist > hit*hit {
			continue
		}
		if !found || dist < closestDist {
			closest = c.Entity
			closestDist = dist
			found = true
		}
	}

	return closest, found
}
