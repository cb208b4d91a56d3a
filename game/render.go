package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/asteroids/camera"
	"github.com/pthm-cable/asteroids/components"
	"github.com/pthm-cable/asteroids/inspector"
	"github.com/pthm-cable/asteroids/renderer"
	"github.com/pthm-cable/asteroids/ui"
)

// style is how one kind of entity is drawn.
type style struct {
	size  float64
	color rl.Color
}

// Side panel layout
const (
	sidePanelWidth = 260
	sidePanelX     = 10
	sidePanelY     = 100
)

// initRendering sets up the camera and UI state for graphical mode.
func (g *Game) initRendering() {
	cfg := g.cfg
	g.screenWidth = float32(cfg.Screen.Width)
	g.screenHeight = float32(cfg.Screen.Height)

	spanW, spanH := g.bounds.Span()
	g.camera = camera.New(g.screenWidth, g.screenHeight, spanW, spanH)
	g.sprites = renderer.NewSpriteRenderer(g.camera)

	g.styles = map[components.Kind]style{
		components.KindShip:     {cfg.Ship.Size, renderer.ToColor(cfg.Ship.Color)},
		components.KindAsteroid: {cfg.Asteroid.Size, renderer.ToColor(cfg.Asteroid.Color)},
		components.KindLaser:    {cfg.Laser.Size, renderer.ToColor(cfg.Laser.Color)},
	}

	g.inspector = inspector.NewInspector(int32(g.screenWidth))
	g.overlays = ui.NewOverlayRegistry()
	g.hud = ui.NewHUD()
	g.perfPanel = ui.NewPerfPanel(sidePanelX, sidePanelY)
	g.diagnostics = ui.NewDiagnosticsPanel(sidePanelX, sidePanelY+g.perfPanel.Height()+8, sidePanelWidth)
}

// Draw renders the current frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(renderer.ToColor(g.cfg.World.Background))

	g.sprites.Ghosts = g.overlays.IsEnabled(ui.OverlayGhosts)
	if g.overlays.IsEnabled(ui.OverlayWrapBounds) {
		g.sprites.DrawWrapBounds(g.bounds, rl.DarkGray)
	}

	g.drawEntities()
	g.drawSelection()
	g.drawUI()
}

// drawEntities draws every entity as a rectangle sized and colored by kind.
// Entities with a Direction are rotated and show their heading.
func (g *Game) drawEntities() {
	showVelocity := g.overlays.IsEnabled(ui.OverlayVelocity)

	query := g.bodyFilter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, body := query.Get()

		st := g.styles[body.Kind]
		sprite := renderer.Sprite{X: pos.X, Y: pos.Y, Size: st.size, Color: st.color}
		if g.dirMap.Has(entity) {
			sprite.Angle = g.dirMap.Get(entity).Angle
			sprite.Heading = true
		}
		g.sprites.Draw(sprite)

		if showVelocity {
			if vel := getIf(g.velMap, entity); vel != nil {
				g.sprites.DrawVelocity(pos.X, pos.Y, vel.X, vel.Y, 0.5, rl.Green)
			}
		}
	}
}

// drawSelection highlights the inspected entity.
func (g *Game) drawSelection() {
	sel, ok := g.inspector.Selected()
	if !ok || !g.world.Alive(sel) {
		return
	}
	pos := g.posMap.Get(sel)
	g.sprites.DrawSelection(pos.X, pos.Y, g.hitRadius(sel)*1.5)
}

// drawUI renders the HUD, diagnostics and inspector.
func (g *Game) drawUI() {
	if g.overlays.IsEnabled(ui.OverlayHUD) {
		g.hud.Draw(ui.HUDData{
			Title:     g.cfg.Screen.Title,
			Ships:     g.counts.Ships,
			Asteroids: g.counts.Asteroids,
			Lasers:    g.counts.Lasers,
			Tick:      g.tick,
			SimTime:   float64(g.tick) * g.dt,
			Speed:     g.stepsPerUpdate,
			FPS:       rl.GetFPS(),
			Paused:    g.paused,
		})
	}

	if g.overlays.IsEnabled(ui.OverlayControls) {
		g.hud.DrawControls(int32(g.screenHeight),
			fmt.Sprintf("Arrows: fly  Space: fire  P: pause  ,/.: speed  WASD: pan  +/-: zoom  Home: reset  %s", g.overlays.Legend()))
	}

	if g.overlays.IsEnabled(ui.OverlayDiagnostics) {
		g.perfPanel.Draw(g.perfCollector.Stats(), sidePanelWidth)
		action := g.diagnostics.Draw(ui.DiagnosticsState{
			Paused:         g.paused,
			StepsPerUpdate: g.stepsPerUpdate,
			MaxSteps:       maxStepsPerUpdate,
		})
		g.applyDiagnostics(action)
	}

	if sel, ok := g.inspector.Selected(); ok {
		if !g.world.Alive(sel) {
			g.inspector.Deselect()
			return
		}
		title := fmt.Sprintf("%s #%d", g.kindOf(sel), sel.ID())
		g.inspector.Draw(title, g.inspectSections(sel))
	}
}

// applyDiagnostics applies the changes made on the diagnostics panel.
func (g *Game) applyDiagnostics(a ui.DiagnosticsAction) {
	if a.TogglePause {
		g.SetPaused(!g.paused)
	}
	if a.StepOnce {
		g.stepOnce = true
	}
	if a.StepsPerUpdate > 0 {
		g.SetStepsPerUpdate(a.StepsPerUpdate)
	}
}
