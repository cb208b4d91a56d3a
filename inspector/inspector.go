// Package inspector shows the components of a selected entity in a side panel.
package inspector

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"
)

// Panel dimensions
const (
	PanelWidth    = 300
	PanelPadding  = 10
	HeaderHeight  = 30
	SectionHeight = 20
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// Inspector tracks the selected entity and renders its panel.
type Inspector struct {
	selected    ecs.Entity
	hasSelected bool
	panelX      int32
	panelY      int32
}

// NewInspector creates an inspector docked to the right edge of the screen.
func NewInspector(screenWidth int32) *Inspector {
	return &Inspector{
		panelX: screenWidth - PanelWidth - 10,
		panelY: 10,
	}
}

// Resize re-docks the panel after a window resize.
func (ins *Inspector) Resize(screenWidth int32) {
	ins.panelX = screenWidth - PanelWidth - 10
}

// Select makes e the inspected entity.
func (ins *Inspector) Select(e ecs.Entity) {
	ins.selected = e
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the currently selected entity.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// Contains reports whether a screen point lies on the open panel.
func (ins *Inspector) Contains(x, y float32, height int32) bool {
	if !ins.hasSelected {
		return false
	}
	return int32(x) >= ins.panelX && int32(x) <= ins.panelX+PanelWidth &&
		int32(y) >= ins.panelY && int32(y) <= ins.panelY+height
}

// PanelHeight computes the panel height for the given sections.
func PanelHeight(sections []Section) int32 {
	height := int32(HeaderHeight + PanelPadding)
	for _, s := range sections {
		height += SectionHeight
		for _, f := range s.Fields {
			height += FieldHeight(f)
		}
		height += 4
	}
	return height + PanelPadding
}

// Draw renders the panel if an entity is selected.
// The close button clears the selection.
func (ins *Inspector) Draw(title string, sections []Section) {
	if !ins.hasSelected {
		return
	}

	panelHeight := PanelHeight(sections)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(panelHeight)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(title, ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeBtn := rl.Rectangle{X: float32(ins.panelX + PanelWidth - 25), Y: float32(ins.panelY + 5), Width: 20, Height: 20}
	if gui.Button(closeBtn, "X") {
		ins.Deselect()
		return
	}

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding
	for _, s := range sections {
		rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
		rl.DrawText(s.Title, x+2, y, 14, ColorSectionText)
		y += SectionHeight
		for _, f := range s.Fields {
			y += DrawField(x, y, f)
		}
		y += 4
	}
}
