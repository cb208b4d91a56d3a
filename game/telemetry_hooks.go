package game

import (
	"log/slog"

	"github.com/pthm-cable/asteroids/systems"
	"github.com/pthm-cable/asteroids/telemetry"
)

// flushTelemetry closes the stats window when it is due.
// Runs as the last stage, so the window ends at the tick being completed.
func (g *Game) flushTelemetry() {
	end := g.tick + 1
	if !g.collector.ShouldFlush(end) {
		return
	}

	stats := g.collector.Flush(end, g.census())
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		slog.Info("stats", "window", stats)
		slog.Info("perf", "stats", perfStats)
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// census samples entity counts, speeds and the ship state.
func (g *Game) census() telemetry.Census {
	g.speedBuf = g.speedBuf[:0]
	query := g.movingFilter.Query()
	for query.Next() {
		_, vel := query.Get()
		g.speedBuf = append(g.speedBuf, systems.Speed(*vel))
	}

	pos, vel, dir := g.ShipState()

	return telemetry.Census{
		Ships:       g.counts.Ships,
		Asteroids:   g.counts.Asteroids,
		Lasers:      g.counts.Lasers,
		Speeds:      g.speedBuf,
		ShipX:       pos.X,
		ShipY:       pos.Y,
		ShipSpeed:   systems.Speed(vel),
		ShipHeading: dir.Angle,
	}
}
