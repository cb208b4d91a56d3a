package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/asteroids/components"
)

var window = Bounds{Width: 1280, Height: 720, Buffer: 15}

func TestWrapAtThreshold(t *testing.T) {
	limX, limY := window.Limits()

	tests := []struct {
		name      string
		pos       components.Position
		want      components.Position
		wantWraps bool
	}{
		{"exactly at right threshold stays", components.Position{X: limX}, components.Position{X: limX}, false},
		{"exactly at top threshold stays", components.Position{Y: limY}, components.Position{Y: limY}, false},
		{"past right", components.Position{X: limX + 1}, components.Position{X: -limX + 1}, true},
		{"past left", components.Position{X: -limX - 1}, components.Position{X: limX - 1}, true},
		{"past top", components.Position{Y: limY + 2}, components.Position{Y: -limY + 2}, true},
		{"past bottom", components.Position{Y: -limY - 2}, components.Position{Y: limY - 2}, true},
		{"corner wraps both axes", components.Position{X: limX + 1, Y: -limY - 1}, components.Position{X: -limX + 1, Y: limY - 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := tt.pos
			assert.Equal(t, tt.wantWraps, window.Wrap(&pos))
			assert.InDelta(t, tt.want.X, pos.X, 1e-9)
			assert.InDelta(t, tt.want.Y, pos.Y, 1e-9)
			assert.True(t, window.Contains(pos.X, pos.Y))
		})
	}
}

func TestWrapJustPastThresholdLandsInBounds(t *testing.T) {
	const eps = 1e-3
	x := window.Width/2 - window.Buffer + eps
	pos := components.Position{X: x}

	require.True(t, window.Wrap(&pos))

	spanX, _ := window.Span()
	assert.InDelta(t, x-spanX, pos.X, 1e-9)
	assert.GreaterOrEqual(t, pos.X, -window.Width/2)
	assert.Less(t, pos.X, window.Width/2)
}

func TestWrapDoesNotOscillate(t *testing.T) {
	pos := components.Position{X: window.Width/2 - window.Buffer + 0.5}
	require.True(t, window.Wrap(&pos))

	// A second pass with no motion must not send it back
	assert.False(t, window.Wrap(&pos))
}

func TestWrapIsIdempotentForInteriorPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	limX, limY := window.Limits()
	for i := 0; i < 1000; i++ {
		pos := components.Position{
			X: (rng.Float64()*2 - 1) * limX,
			Y: (rng.Float64()*2 - 1) * limY,
		}
		before := pos
		assert.False(t, window.Wrap(&pos))
		assert.Equal(t, before, pos)
	}
}

func TestWrapMovesLongerThanSpan(t *testing.T) {
	limX, limY := window.Limits()
	spanX, spanY := window.Span()

	tests := []struct {
		name string
		pos  components.Position
	}{
		{"just over one span right", components.Position{X: limX + spanX + 1}},
		{"several spans left", components.Position{X: -limX - 3*spanX - 7}},
		{"several spans up and right", components.Position{X: limX + 5*spanX + 0.5, Y: limY + 2*spanY + 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := tt.pos
			require.True(t, window.Wrap(&pos))
			assert.True(t, window.Contains(pos.X, pos.Y), "position %+v out of bounds", pos)
			assert.False(t, window.Wrap(&pos), "wrapped position must be stable")
		})
	}
}

func TestWrapStaysInBoundsAtHighSpeed(t *testing.T) {
	// 1505 units per tick exceeds the 1250 span
	pos := components.Position{}
	for tick := 0; tick < 20; tick++ {
		Integrate(&pos, components.Velocity{X: 30100}, 0.05)
		window.Wrap(&pos)
		require.True(t, window.Contains(pos.X, pos.Y), "tick %d x=%v", tick, pos.X)
	}
}
