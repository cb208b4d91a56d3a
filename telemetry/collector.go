package telemetry

import "math"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32
	dt                  float64

	windowStartTick int32

	// Event counters for current window
	lasersFired    int
	lasersExpired  int
	laserLifeTicks int64
	wraps          int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(math.Round(windowDurationSec / dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordFire records a laser spawn.
func (c *Collector) RecordFire() {
	c.lasersFired++
}

// RecordExpire records a laser despawn after living for the given ticks.
func (c *Collector) RecordExpire(livedTicks int32) {
	c.lasersExpired++
	c.laserLifeTicks += int64(livedTicks)
}

// RecordWraps records wrap-arounds performed in one tick.
func (c *Collector) RecordWraps(n int) {
	c.wraps += n
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Census is the entity state sampled at window end.
type Census struct {
	Ships, Asteroids, Lasers int

	Speeds []float64 // Speed of every moving entity

	ShipX, ShipY, ShipSpeed, ShipHeading float64
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, census Census) WindowStats {
	var meanLife float64
	if c.lasersExpired > 0 {
		meanLife = float64(c.laserLifeTicks) / float64(c.lasersExpired) * c.dt
	}

	speeds := ComputeSpeedStats(census.Speeds)

	stats := WindowStats{
		WindowStartTick:  c.windowStartTick,
		WindowEndTick:    currentTick,
		SimTimeSec:       float64(currentTick) * c.dt,
		Ships:            census.Ships,
		Asteroids:        census.Asteroids,
		Lasers:           census.Lasers,
		LasersFired:      c.lasersFired,
		LasersExpired:    c.lasersExpired,
		MeanLaserLifeSec: meanLife,
		SpeedMean:        speeds.Mean,
		SpeedStd:         speeds.Std,
		SpeedP50:         speeds.P50,
		SpeedP90:         speeds.P90,
		SpeedMax:         speeds.Max,
		ShipX:            census.ShipX,
		ShipY:            census.ShipY,
		ShipSpeed:        census.ShipSpeed,
		ShipHeading:      census.ShipHeading,
		Wraps:            c.wraps,
	}

	c.windowStartTick = currentTick
	c.lasersFired = 0
	c.lasersExpired = 0
	c.laserLifeTicks = 0
	c.wraps = 0

	return stats
}
