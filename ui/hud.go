package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/asteroids/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Ships     int
	Asteroids int
	Lasers    int
	Tick      int32
	SimTime   float64
	Speed     int
	FPS       int32
	Paused    bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Ships: %d | Asteroids: %d | Lasers: %d", data.Ships, data.Asteroids, data.Lasers),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Time: %.1fs | Speed: %dx | FPS: %d", data.Tick, data.SimTime, data.Speed, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 75, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders per-stage timings from the perf collector.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// Height returns the panel height for the standard phase list.
func (p *PerfPanel) Height() int32 {
	t := p.renderer.Theme
	return 2*t.Padding + t.LineHeight + 2 + t.LineHeight*int32(2+len(telemetry.Phases))
}

// Draw renders the performance panel and returns the Y below it.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, width int32) int32 {
	r := p.renderer
	t := r.Theme

	r.DrawPanel(p.x, p.y, width, p.Height())
	x := p.x + t.Padding
	y := p.y + t.Padding

	y = r.DrawSectionHeader(x, y, "Stage Timings")
	y = r.DrawLabelValue(x, y, "tick avg", stats.AvgTickDuration.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "ticks/sec", fmt.Sprintf("%.0f", stats.TicksPerSecond))

	for _, phase := range telemetry.Phases {
		pct := stats.PhasePct[phase]
		color := t.ValueColor
		if pct > 40 {
			color = t.HotColor
		} else if pct > 20 {
			color = t.WarnColor
		}
		y = r.DrawLabelValueColor(x, y, phase,
			fmt.Sprintf("%6s %5.1f%%", stats.PhaseAvg[phase].Round(time.Microsecond), pct), color)
	}

	return p.y + p.Height()
}
