// Package renderer draws entities as colored rectangles through the camera.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/asteroids/camera"
	"github.com/pthm-cable/asteroids/config"
	"github.com/pthm-cable/asteroids/systems"
)

// Sprite is one entity ready to draw, in world coordinates.
type Sprite struct {
	X, Y  float64
	Size  float64
	Angle float64 // Radians, counter-clockwise; ignored unless Heading is set
	Color rl.Color

	// Heading draws a nose line from the center along Angle
	Heading bool
}

// ToColor converts a [0, 1] RGB config color to an opaque raylib color.
func ToColor(c config.Color) rl.Color {
	return rl.Color{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: 255,
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}

// SpriteRenderer draws sprites and debug geometry through a camera.
type SpriteRenderer struct {
	cam *camera.Camera

	// Ghosts draws extra copies of sprites straddling the wrap seam
	Ghosts bool
}

// NewSpriteRenderer creates a renderer bound to cam.
func NewSpriteRenderer(cam *camera.Camera) *SpriteRenderer {
	return &SpriteRenderer{cam: cam, Ghosts: true}
}

// Draw renders a sprite, plus its seam ghosts when enabled.
func (r *SpriteRenderer) Draw(s Sprite) {
	half := s.Size / 2
	if !r.cam.IsVisible(s.X, s.Y, half*math.Sqrt2) {
		if !r.Ghosts {
			return
		}
	} else {
		sx, sy := r.cam.WorldToScreen(s.X, s.Y)
		r.drawAt(sx, sy, s)
	}

	if r.Ghosts {
		for _, g := range r.cam.GhostPositions(s.X, s.Y, half) {
			r.drawAt(g.X, g.Y, s)
		}
	}
}

func (r *SpriteRenderer) drawAt(sx, sy float32, s Sprite) {
	size := float32(s.Size) * r.cam.Zoom
	rotation := float32(0)
	if s.Heading {
		rotation = camera.ScreenRotation(s.Angle)
	}

	rl.DrawRectanglePro(
		rl.Rectangle{X: sx, Y: sy, Width: size, Height: size},
		rl.Vector2{X: size / 2, Y: size / 2},
		rotation,
		s.Color,
	)

	if s.Heading {
		nose := size * 0.75
		end := rl.Vector2{
			X: sx + nose*float32(math.Cos(s.Angle)),
			Y: sy - nose*float32(math.Sin(s.Angle)),
		}
		rl.DrawLineEx(rl.Vector2{X: sx, Y: sy}, end, 2, rl.White)
	}
}

// DrawWrapBounds outlines the rectangle where wrap-around triggers.
func (r *SpriteRenderer) DrawWrapBounds(b systems.Bounds, color rl.Color) {
	halfW, halfH := b.Limits()
	x0, y0 := r.cam.WorldToScreen(-halfW, halfH)
	x1, y1 := r.cam.WorldToScreen(halfW, -halfH)
	if x1 < x0 || y1 < y0 {
		// Camera is panned so the seam splits the outline; skip it
		return
	}
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, 1, color)
}

// DrawVelocity draws a velocity vector from (x, y), scaled to screen pixels.
func (r *SpriteRenderer) DrawVelocity(x, y, vx, vy, scale float64, color rl.Color) {
	if vx == 0 && vy == 0 {
		return
	}
	sx, sy := r.cam.WorldToScreen(x, y)
	end := rl.Vector2{
		X: sx + float32(vx*scale)*r.cam.Zoom,
		Y: sy - float32(vy*scale)*r.cam.Zoom,
	}
	rl.DrawLineEx(rl.Vector2{X: sx, Y: sy}, end, 1, color)
}

// DrawSelection circles the selected entity.
func (r *SpriteRenderer) DrawSelection(x, y, radius float64) {
	sx, sy := r.cam.WorldToScreen(x, y)
	rl.DrawCircleLines(int32(sx), int32(sy), float32(radius)*r.cam.Zoom, rl.Yellow)
}
