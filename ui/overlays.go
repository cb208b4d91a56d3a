package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayHUD         OverlayID = "hud"
	OverlayControls    OverlayID = "controls"
	OverlayDiagnostics OverlayID = "diagnostics"
	OverlayWrapBounds  OverlayID = "wrap_bounds"
	OverlayVelocity    OverlayID = "velocity"
	OverlayGhosts      OverlayID = "ghosts"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID
	Name        string
	Description string
	Key         int32  // Keyboard key to toggle (0 = no key)
	KeyLabel    string // Key label for display
	Category    string // Grouping (e.g., "hud", "debug")
	Default     bool   // Enabled at startup
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds standard overlays.
func (r *OverlayRegistry) registerDefaults() {
	r.Register(OverlayDescriptor{
		ID:          OverlayHUD,
		Name:        "HUD",
		Description: "Entity counts, tick and status",
		Key:         rl.KeyF1,
		KeyLabel:    "F1",
		Category:    "hud",
		Default:     true,
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayControls,
		Name:        "Controls",
		Description: "Key legend along the bottom edge",
		Key:         rl.KeyF2,
		KeyLabel:    "F2",
		Category:    "hud",
		Default:     true,
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayDiagnostics,
		Name:        "Diagnostics",
		Description: "Stage timings, pause button and speed slider",
		Key:         rl.KeyF3,
		KeyLabel:    "F3",
		Category:    "debug",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayWrapBounds,
		Name:        "Wrap Bounds",
		Description: "Outline where wrap-around triggers",
		Key:         rl.KeyB,
		KeyLabel:    "B",
		Category:    "debug",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayVelocity,
		Name:        "Velocity",
		Description: "Draw velocity vectors",
		Key:         rl.KeyV,
		KeyLabel:    "V",
		Category:    "debug",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayGhosts,
		Name:        "Seam Ghosts",
		Description: "Draw bodies on both sides of the wrap seam",
		Key:         rl.KeyG,
		KeyLabel:    "G",
		Category:    "visual",
		Default:     true,
	})
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = desc.Default
}

// Toggle switches an overlay on/off and returns the new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// HandleKeyPress checks if a key corresponds to an overlay toggle.
// Returns the overlay ID and new state if a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}

// Legend returns a one-line key legend for the registered overlays.
func (r *OverlayRegistry) Legend() string {
	legend := ""
	for _, desc := range r.descriptors {
		if desc.Key == 0 {
			continue
		}
		if legend != "" {
			legend += "  "
		}
		legend += "[" + desc.KeyLabel + "] " + desc.Name
	}
	return legend
}
