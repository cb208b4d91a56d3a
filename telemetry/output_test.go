package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/asteroids/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilOutputManagerDiscards(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	assert.Nil(t, om)

	assert.NoError(t, om.WriteTelemetry(WindowStats{}))
	assert.NoError(t, om.WritePerf(PerfStats{}, 0))
	assert.NoError(t, om.WriteConfig(nil))
	assert.Equal(t, "", om.Dir())
	assert.NoError(t, om.Close())
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, om.WriteConfig(cfg))

	require.NoError(t, om.WriteTelemetry(WindowStats{WindowEndTick: 300, Asteroids: 1}))
	require.NoError(t, om.WriteTelemetry(WindowStats{WindowEndTick: 600, Asteroids: 1}))
	require.NoError(t, om.WritePerf(PerfStats{}, 300))
	require.NoError(t, om.Close())
	require.NoError(t, om.Close(), "second close is a no-op")

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "one header and two rows")
	assert.True(t, strings.HasPrefix(lines[0], "window_end,sim_time,ships,asteroids"))
	assert.True(t, strings.HasPrefix(lines[2], "600,"))

	data, err = os.ReadFile(filepath.Join(dir, "perf.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "integrate_pct")

	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}
