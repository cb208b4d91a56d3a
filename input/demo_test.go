package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDemoCycle(t *testing.T) {
	d := &Demo{ThrustTicks: 2, TurnTicks: 1, CoastTicks: 1, FireEvery: 3}

	tests := []struct {
		tick int32
		want Controls
	}{
		{0, Controls{Thrust: true, Fire: true}},
		{1, Controls{Thrust: true}},
		{2, Controls{Left: true}},
		{3, Controls{Brake: true, Fire: true}},
		{4, Controls{Thrust: true}},
		{6, Controls{Left: true, Fire: true}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, d.Poll(tt.tick), "tick %d", tt.tick)
	}
}

func TestDemoNeverFiresWhenDisabled(t *testing.T) {
	d := &Demo{ThrustTicks: 1, FireEvery: 0}
	for tick := int32(0); tick < 20; tick++ {
		assert.False(t, d.Poll(tick).Fire)
	}
}

func TestIdleAndFixed(t *testing.T) {
	assert.False(t, Idle{}.Poll(5).Any())

	f := Fixed(Controls{Thrust: true, Fire: true})
	assert.Equal(t, Controls{Thrust: true, Fire: true}, f.Poll(0))
	assert.Equal(t, Controls{Thrust: true, Fire: true}, f.Poll(99))
	assert.True(t, f.Poll(1).Any())
}
