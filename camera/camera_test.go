package camera

import (
	"math"
	"testing"
)

// Default window 1280x720 with a 15 unit edge buffer.
const (
	spanW = 1250.0
	spanH = 690.0
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, spanW, spanH)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at origin, got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenYUp(t *testing.T) {
	cam := New(1280, 720, spanW, spanH)

	tests := []struct {
		name         string
		wx, wy       float64
		wantX, wantY float32
	}{
		{"origin at screen center", 0, 0, 640, 360},
		{"up is toward the top", 0, 100, 640, 260},
		{"right is right", 200, 0, 840, 360},
		{"down-left quadrant", -300, -150, 340, 510},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := cam.WorldToScreen(tt.wx, tt.wy)
			if math.Abs(float64(sx-tt.wantX)) > 0.01 || math.Abs(float64(sy-tt.wantY)) > 0.01 {
				t.Errorf("WorldToScreen(%v, %v) = (%f, %f), want (%f, %f)", tt.wx, tt.wy, sx, sy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, spanW, spanH)
	cam.SetZoom(1.5)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},
		{100, 100},
		{1200, 600},
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestScreenRotation(t *testing.T) {
	if got := ScreenRotation(math.Pi / 2); math.Abs(float64(got+90)) > 1e-4 {
		t.Errorf("ScreenRotation(pi/2) = %f, want -90", got)
	}
	if got := ScreenRotation(0); got != 0 {
		t.Errorf("ScreenRotation(0) = %f, want 0", got)
	}
}

func TestToroidalDrawing(t *testing.T) {
	cam := New(1280, 720, spanW, spanH)
	cam.X = -600 // Near the left seam

	// A body at the right seam is closer going left
	sx, _ := cam.WorldToScreen(620, 0)
	if sx >= 640 {
		t.Errorf("expected body left of center, got x=%f", sx)
	}
}

func TestPanWraps(t *testing.T) {
	cam := New(1280, 720, spanW, spanH)
	cam.X = -600

	cam.Pan(-100, 0)

	if cam.X < 500 {
		t.Errorf("expected X to wrap to the right side, got %f", cam.X)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, spanW, spanH)

	cam.SetZoom(0.01)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}

	cam.ZoomBy(1000)
	if cam.Zoom != 4.0 {
		t.Errorf("expected zoom clamped to 4.0, got %f", cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, spanW, spanH)
	cam.SetZoom(2) // Visible half extents 320x180

	if !cam.IsVisible(0, 0, 10) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(500, 300, 10) {
		t.Error("far point should not be visible")
	}
	if !cam.IsVisible(350, 0, 40) {
		t.Error("edge point with large radius should be visible")
	}
}

func TestGhostPositions(t *testing.T) {
	cam := New(1280, 720, spanW, spanH)

	if g := cam.GhostPositions(0, 0, 15); len(g) != 0 {
		t.Errorf("expected no ghosts at center, got %d", len(g))
	}

	g := cam.GhostPositions(620, 0, 15)
	if len(g) != 1 {
		t.Fatalf("expected 1 ghost near right seam, got %d", len(g))
	}
	if g[0].X >= 640 {
		t.Errorf("expected ghost on the left, got x=%f", g[0].X)
	}

	if g := cam.GhostPositions(620, 340, 15); len(g) != 3 {
		t.Errorf("expected 3 ghosts at a corner, got %d", len(g))
	}
}

func TestReset(t *testing.T) {
	cam := New(1280, 720, spanW, spanH)
	cam.X = 50
	cam.Y = -20
	cam.Zoom = 2.5

	cam.Reset()

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected origin, got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}
