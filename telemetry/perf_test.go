package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseInput)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseIntegrate)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	assert.Positive(t, stats.AvgTickDuration)
	assert.Contains(t, stats.PhaseAvg, PhaseInput)
	assert.Contains(t, stats.PhaseAvg, PhaseIntegrate)
	assert.NotContains(t, stats.PhaseAvg, PhaseFire)
	assert.LessOrEqual(t, stats.MinTickDuration, stats.MaxTickDuration)
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseWrap)
		pc.EndTick()
	}

	stats := pc.Stats()
	assert.Positive(t, stats.AvgTickDuration)
	assert.Positive(t, stats.TicksPerSecond)
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(0)

	stats := pc.Stats()
	assert.Zero(t, stats.AvgTickDuration)
	assert.NotNil(t, stats.PhaseAvg)
	assert.NotNil(t, stats.PhasePct)
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 1500 * time.Microsecond,
		PhasePct: map[string]float64{
			PhaseIntegrate: 40,
			PhaseFire:      10,
		},
	}

	row := stats.ToCSV(120)
	assert.Equal(t, int32(120), row.WindowEnd)
	assert.Equal(t, int64(1500), row.AvgTickUS)
	assert.Equal(t, 40.0, row.IntegratePct)
	assert.Equal(t, 10.0, row.FirePct)
	assert.Zero(t, row.WrapPct)
}

func TestPerfStats_LogValue(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: time.Millisecond,
		PhasePct:        map[string]float64{PhaseLifetime: 25, PhaseWrap: 0.01},
	}

	v := stats.LogValue()
	keys := make(map[string]bool)
	for _, a := range v.Group() {
		keys[a.Key] = true
	}
	require.True(t, keys["avg_tick_us"])
	assert.True(t, keys["lifetime_pct"])
	assert.False(t, keys["wrap_pct"], "negligible phases are omitted")
	assert.False(t, keys["fps"])
}
