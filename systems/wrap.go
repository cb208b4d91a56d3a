package systems

import (
	"math"

	"github.com/pthm-cable/asteroids/components"
)

// Bounds describes the centered playfield.
type Bounds struct {
	Width, Height float64 // Window extent
	Buffer        float64 // Inset from each edge where wrap-around triggers
}

// Limits returns the half extents past which a position wraps.
func (b Bounds) Limits() (x, y float64) {
	return b.Width/2 - b.Buffer, b.Height/2 - b.Buffer
}

// Span returns the distance a wrapped coordinate is shifted on each axis.
// It is the window extent minus both buffers, not the full extent: a
// full-width shift would land past the opposite threshold and wrap back on
// the next tick. With this span a wrapped position lands just inside the
// opposite threshold.
func (b Bounds) Span() (x, y float64) {
	return b.Width - 2*b.Buffer, b.Height - 2*b.Buffer
}

// Contains reports whether a point is inside the window (not the inset).
func (b Bounds) Contains(x, y float64) bool {
	return x >= -b.Width/2 && x < b.Width/2 && y >= -b.Height/2 && y < b.Height/2
}

// Wrap applies toroidal wrap-around to pos, each axis independently.
// Returns true if either axis wrapped.
func (b Bounds) Wrap(pos *components.Position) bool {
	limX, limY := b.Limits()
	spanX, spanY := b.Span()

	wrapped := false
	if x, ok := wrapAxis(pos.X, limX, spanX); ok {
		pos.X = x
		wrapped = true
	}
	if y, ok := wrapAxis(pos.Y, limY, spanY); ok {
		pos.Y = y
		wrapped = true
	}
	return wrapped
}

// wrapAxis shifts v by whole spans until it is back within [-limit, limit].
// Moves longer than a span in one tick still land inside.
func wrapAxis(v, limit, span float64) (float64, bool) {
	switch {
	case v > limit:
		return v - span*math.Ceil((v-limit)/span), true
	case v < -limit:
		return v + span*math.Ceil((-limit-v)/span), true
	}
	return v, false
}
