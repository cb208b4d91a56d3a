package telemetry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSpeedStats(t *testing.T) {
	values := []float64{10, 2, 8, 4, 6}

	s := ComputeSpeedStats(values)

	assert.InDelta(t, 6.0, s.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(10), s.Std, 1e-9)
	assert.InDelta(t, 6.0, s.P50, 1e-9)
	assert.InDelta(t, 10.0, s.P90, 1e-9)
	assert.Equal(t, 10.0, s.Max)
	// Input must not be reordered
	assert.Equal(t, []float64{10, 2, 8, 4, 6}, values)
}

func TestComputeSpeedStatsSingle(t *testing.T) {
	s := ComputeSpeedStats([]float64{3})
	assert.Equal(t, SpeedStats{Mean: 3, P50: 3, P90: 3, Max: 3}, s)
}

func TestComputeSpeedStatsEmpty(t *testing.T) {
	assert.Equal(t, SpeedStats{}, ComputeSpeedStats(nil))
}

func TestCollectorFlush(t *testing.T) {
	const dt = 0.5
	c := NewCollector(2, dt) // 4 ticks per window

	assert.False(t, c.ShouldFlush(3))
	assert.True(t, c.ShouldFlush(4))

	c.RecordFire()
	c.RecordFire()
	c.RecordExpire(2)
	c.RecordExpire(4)
	c.RecordWraps(3)

	w := c.Flush(4, Census{Ships: 1, Asteroids: 2, Lasers: 1, Speeds: []float64{1, 3}, ShipSpeed: 3})

	assert.Equal(t, int32(0), w.WindowStartTick)
	assert.Equal(t, int32(4), w.WindowEndTick)
	assert.Equal(t, 2.0, w.SimTimeSec)
	assert.Equal(t, 2, w.LasersFired)
	assert.Equal(t, 2, w.LasersExpired)
	assert.InDelta(t, 1.5, w.MeanLaserLifeSec, 1e-9)
	assert.InDelta(t, 2.0, w.SpeedMean, 1e-9)
	assert.Equal(t, 3, w.Wraps)
	assert.Equal(t, 2, w.Asteroids)

	// Counters reset and the window advances
	assert.False(t, c.ShouldFlush(7))
	next := c.Flush(8, Census{})
	assert.Equal(t, int32(4), next.WindowStartTick)
	assert.Zero(t, next.LasersFired)
	assert.Zero(t, next.MeanLaserLifeSec)
	assert.Zero(t, next.Wraps)
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0, 1.0/60)
	assert.True(t, c.ShouldFlush(1))
}

func TestLifetimeTracker(t *testing.T) {
	lt := NewLifetimeTracker()
	lt.Register(7, 10)
	lt.Register(9, 12)
	assert.Equal(t, 2, lt.Len())

	lived, ok := lt.Remove(7, 40)
	assert.True(t, ok)
	assert.Equal(t, int32(30), lived)
	assert.Equal(t, 1, lt.Len())

	_, ok = lt.Remove(7, 41)
	assert.False(t, ok)
}
