package renderer

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/asteroids/config"
	"github.com/stretchr/testify/assert"
)

func TestToColor(t *testing.T) {
	tests := []struct {
		name string
		in   config.Color
		want rl.Color
	}{
		{"yellow", config.Color{R: 1, G: 1, B: 0}, rl.Color{R: 255, G: 255, B: 0, A: 255}},
		{"background blue", config.Color{R: 0, G: 0, B: 0.2}, rl.Color{R: 0, G: 0, B: 51, A: 255}},
		{"clamped", config.Color{R: 2, G: -1, B: 0.5}, rl.Color{R: 255, G: 0, B: 128, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToColor(tt.in))
		})
	}
}
