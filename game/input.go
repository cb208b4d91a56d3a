package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/asteroids/input"
	"github.com/pthm-cable/asteroids/inspector"
	"github.com/pthm-cable/asteroids/ui"
)

// Bindings maps ship controls to raylib key codes.
type Bindings struct {
	Left, Right, Thrust, Brake, Fire int32
}

// DefaultBindings uses the arrow keys and space.
func DefaultBindings() Bindings {
	return Bindings{
		Left:   rl.KeyLeft,
		Right:  rl.KeyRight,
		Thrust: rl.KeyUp,
		Brake:  rl.KeyDown,
		Fire:   rl.KeySpace,
	}
}

// Keyboard polls raylib key state. Requires an open raylib window.
type Keyboard struct {
	Bindings Bindings
}

// NewKeyboard returns a Keyboard with the default bindings.
func NewKeyboard() *Keyboard {
	return &Keyboard{Bindings: DefaultBindings()}
}

// Poll implements input.Source. Keys count while held, not just on the press edge.
func (k *Keyboard) Poll(int32) input.Controls {
	return input.Controls{
		Left:   rl.IsKeyDown(k.Bindings.Left),
		Right:  rl.IsKeyDown(k.Bindings.Right),
		Thrust: rl.IsKeyDown(k.Bindings.Thrust),
		Brake:  rl.IsKeyDown(k.Bindings.Brake),
		Fire:   rl.IsKeyDown(k.Bindings.Fire),
	}
}

// handleInput processes meta keys, camera controls and entity selection.
// Ship controls are polled separately through the input source.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.SetPaused(!g.paused)
	}
	if g.paused && rl.IsKeyPressed(rl.KeyN) {
		g.stepOnce = true
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		g.SetStepsPerUpdate(g.stepsPerUpdate - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		g.SetStepsPerUpdate(g.stepsPerUpdate + 1)
	}

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		g.overlays.HandleKeyPress(key)
	}

	g.handleCameraInput()
	g.handleSelectionInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.camera.Resize(w, h)
	g.inspector.Resize(int32(w))
}

// handleCameraInput processes camera pan/zoom controls.
// Arrow keys fly the ship, so panning uses WASD.
func (g *Game) handleCameraInput() {
	panSpeed := float32(8.0)

	if rl.IsKeyDown(rl.KeyD) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyA) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyS) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyW) {
		g.camera.Pan(0, -panSpeed)
	}

	if wheelMove := rl.GetMouseWheelMove(); wheelMove != 0 {
		g.camera.ZoomBy(1.0 + wheelMove*0.1)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}

// handleSelectionInput picks an entity on left click and clears on right click.
func (g *Game) handleSelectionInput() {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) || rl.IsKeyPressed(rl.KeyEscape) {
		g.inspector.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	mouse := rl.GetMousePosition()
	if sel, ok := g.inspector.Selected(); ok && g.world.Alive(sel) {
		if g.inspector.Contains(mouse.X, mouse.Y, g.inspectorHeight(sel)) {
			return
		}
	}
	if g.overlays.IsEnabled(ui.OverlayDiagnostics) && mouse.X < sidePanelX+sidePanelWidth && mouse.Y > sidePanelY {
		return
	}

	wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
	g.selectAt(wx, wy)
}

// inspectorHeight returns the current panel height for the selected entity.
func (g *Game) inspectorHeight(sel ecs.Entity) int32 {
	return inspector.PanelHeight(g.inspectSections(sel))
}
