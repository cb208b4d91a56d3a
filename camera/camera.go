// Package camera maps the origin-centered, y-up playfield onto the screen.
package camera

import "math"

// Camera controls the viewport into the playfield.
// World coordinates have the origin at the window center and y pointing up;
// screen coordinates have the origin at the top-left and y pointing down.
type Camera struct {
	// Look-at point in world coordinates
	X, Y float64

	// Zoom level (1.0 = one world unit per pixel)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Wrap period of the playfield, used to draw the shortest way round
	SpanW, SpanH float64

	MinZoom, MaxZoom float32
}

// New creates a camera looking at the origin with 1:1 zoom.
func New(viewportW, viewportH float32, spanW, spanH float64) *Camera {
	return &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		SpanW:     spanW,
		SpanH:     spanH,
		MinZoom:   0.25,
		MaxZoom:   4.0,
	}
}

// WorldToScreen converts world coordinates to screen pixels.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float32) {
	dx := toroidalDelta(wx, c.X, c.SpanW)
	dy := toroidalDelta(wy, c.Y, c.SpanH)

	sx = c.ViewportW/2 + float32(dx)*c.Zoom
	sy = c.ViewportH/2 - float32(dy)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen pixels to world coordinates,
// wrapped into the playfield period around the origin.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float64) {
	dx := float64((sx - c.ViewportW/2) / c.Zoom)
	dy := float64((c.ViewportH/2 - sy) / c.Zoom)

	wx = wrapCentered(c.X+dx, c.SpanW)
	wy = wrapCentered(c.Y+dy, c.SpanH)
	return wx, wy
}

// ScreenRotation converts a counter-clockwise world angle in radians to
// the clockwise degrees raylib expects.
func ScreenRotation(angle float64) float32 {
	return float32(-angle * 180 / math.Pi)
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float64) bool {
	dx := toroidalDelta(wx, c.X, c.SpanW)
	dy := toroidalDelta(wy, c.Y, c.SpanH)

	halfW := float64(c.ViewportW/(2*c.Zoom)) + radius
	halfH := float64(c.ViewportH/(2*c.Zoom)) + radius

	return math.Abs(dx) <= halfW && math.Abs(dy) <= halfH
}

// Point is a screen position.
type Point struct{ X, Y float32 }

// GhostPositions returns extra screen positions for a body straddling the
// wrap seam, so it appears on both sides while crossing.
// Returns up to 3 positions (4 with the primary one at a corner).
func (c *Camera) GhostPositions(wx, wy, radius float64) []Point {
	var ghosts []Point

	dx := toroidalDelta(wx, c.X, c.SpanW)
	dy := toroidalDelta(wy, c.Y, c.SpanH)
	halfW, halfH := c.SpanW/2, c.SpanH/2

	var hShift, vShift float64
	if dx > halfW-radius {
		hShift = -c.SpanW
	} else if dx < -halfW+radius {
		hShift = c.SpanW
	}
	if dy > halfH-radius {
		vShift = -c.SpanH
	} else if dy < -halfH+radius {
		vShift = c.SpanH
	}

	project := func(x, y float64) Point {
		return Point{
			X: c.ViewportW/2 + float32(x)*c.Zoom,
			Y: c.ViewportH/2 - float32(y)*c.Zoom,
		}
	}

	if hShift != 0 {
		ghosts = append(ghosts, project(dx+hShift, dy))
	}
	if vShift != 0 {
		ghosts = append(ghosts, project(dx, dy+vShift))
	}
	if hShift != 0 && vShift != 0 {
		ghosts = append(ghosts, project(dx+hShift, dy+vShift))
	}

	return ghosts
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X = wrapCentered(c.X+float64(dx/c.Zoom), c.SpanW)
	c.Y = wrapCentered(c.Y-float64(dy/c.Zoom), c.SpanH)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = min(max(zoom, c.MinZoom), c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the origin at 1:1 zoom.
func (c *Camera) Reset() {
	c.X = 0
	c.Y = 0
	c.Zoom = 1.0
}

// toroidalDelta computes the shortest signed distance from 'from' to 'to'
// in a toroidal space of the given size.
func toroidalDelta(to, from, size float64) float64 {
	d := to - from
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// wrapCentered maps x into [-size/2, size/2).
func wrapCentered(x, size float64) float64 {
	r := math.Mod(x+size/2, size)
	if r < 0 {
		r += size
	}
	return r - size/2
}
