package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DiagnosticsState is what the diagnostics panel shows and edits.
type DiagnosticsState struct {
	Paused         bool
	StepsPerUpdate int
	MaxSteps       int
}

// DiagnosticsAction reports what the user changed on the panel.
type DiagnosticsAction struct {
	TogglePause    bool
	StepOnce       bool
	StepsPerUpdate int // 0 when unchanged
}

// DiagnosticsPanel holds the runtime controls shown with the stage timings.
type DiagnosticsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewDiagnosticsPanel creates a new diagnostics panel.
func NewDiagnosticsPanel(x, y, width int32) *DiagnosticsPanel {
	return &DiagnosticsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the controls and returns the user's changes.
func (d *DiagnosticsPanel) Draw(state DiagnosticsState) DiagnosticsAction {
	var action DiagnosticsAction

	r := d.renderer
	t := r.Theme
	height := int32(110)

	r.DrawPanel(d.x, d.y, d.width, height)
	x := float32(d.x + t.Padding)
	y := d.y + t.Padding

	y = r.DrawSectionHeader(int32(x), y, "Simulation")

	pauseText := "Pause"
	if state.Paused {
		pauseText = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: 90, Height: 24}, pauseText) {
		action.TogglePause = true
	}
	if state.Paused && gui.Button(rl.Rectangle{X: x + 100, Y: float32(y), Width: 90, Height: 24}, "Step") {
		action.StepOnce = true
	}
	y += 32

	rl.DrawText(fmt.Sprintf("Steps per update: %d", state.StepsPerUpdate), int32(x), y, t.FontSize, t.LabelColor)
	y += t.LineHeight
	maxSteps := max(state.MaxSteps, 1)
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: float32(y), Width: float32(d.width - 2*t.Padding - 30), Height: 16},
		"1", fmt.Sprint(maxSteps),
		float32(state.StepsPerUpdate), 1, float32(maxSteps),
	)
	if steps := int(v + 0.5); steps != state.StepsPerUpdate {
		action.StepsPerUpdate = steps
	}

	return action
}
