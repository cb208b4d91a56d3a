package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Entity counts at window end
	Ships     int `csv:"ships"`
	Asteroids int `csv:"asteroids"`
	Lasers    int `csv:"lasers"`

	// Projectile events during window
	LasersFired      int     `csv:"lasers_fired"`
	LasersExpired    int     `csv:"lasers_expired"`
	MeanLaserLifeSec float64 `csv:"mean_laser_life_sec"`

	// Speed distribution over all moving entities (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
	SpeedMax  float64 `csv:"speed_max"`

	// Player ship state at window end
	ShipX       float64 `csv:"ship_x"`
	ShipY       float64 `csv:"ship_y"`
	ShipSpeed   float64 `csv:"ship_speed"`
	ShipHeading float64 `csv:"ship_heading"`

	// Wrap-arounds performed during window
	Wraps int `csv:"wraps"`
}

// SpeedStats summarizes a speed distribution.
type SpeedStats struct {
	Mean, Std, P50, P90, Max float64
}

// ComputeSpeedStats calculates mean, standard deviation, median, 90th
// percentile and maximum. Returns zeros for an empty slice.
func ComputeSpeedStats(values []float64) SpeedStats {
	n := len(values)
	if n == 0 {
		return SpeedStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	s := SpeedStats{
		Mean: stat.Mean(sorted, nil),
		P50:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:  sorted[n-1],
	}
	if n > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (w WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", int(w.WindowEndTick)),
		slog.Float64("sim_time", w.SimTimeSec),
		slog.Int("ships", w.Ships),
		slog.Int("asteroids", w.Asteroids),
		slog.Int("lasers", w.Lasers),
		slog.Int("lasers_fired", w.LasersFired),
		slog.Int("lasers_expired", w.LasersExpired),
		slog.Float64("mean_laser_life_sec", w.MeanLaserLifeSec),
		slog.Float64("speed_mean", w.SpeedMean),
		slog.Float64("speed_p90", w.SpeedP90),
		slog.Float64("ship_speed", w.ShipSpeed),
		slog.Int("wraps", w.Wraps),
	)
}
