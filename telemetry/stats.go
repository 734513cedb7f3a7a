package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated motion statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Events during window
	DirectionChanges int `csv:"direction_changes"`
	ReflectionsX     int `csv:"reflections_x"`
	ReflectionsY     int `csv:"reflections_y"`
	DragsStarted     int `csv:"drags_started"`
	DragsEnded       int `csv:"drags_ended"`
	Snaps            int `csv:"snaps"`

	// Motion
	Distance  float64 `csv:"distance_px"`
	MeanSpeed float64 `csv:"mean_speed"` // px/s averaged over the window, dips while dragged

	// Randomization cadence (seconds between direction changes)
	MeanChangeInterval float64 `csv:"change_interval_mean"`
	StdChangeInterval  float64 `csv:"change_interval_std"`
	P50ChangeInterval  float64 `csv:"change_interval_p50"`
}

// ComputeIntervalStats calculates mean, standard deviation, and median
// of the direction-change intervals.
func ComputeIntervalStats(intervals []float64) (mean, std, p50 float64) {
	if len(intervals) == 0 {
		return 0, 0, 0
	}

	mean = stat.Mean(intervals, nil)
	if len(intervals) > 1 {
		std = stat.StdDev(intervals, nil)
	}

	sorted := make([]float64, len(intervals))
	copy(sorted, intervals)
	sort.Float64s(sorted)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return mean, std, p50
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("direction_changes", s.DirectionChanges),
		slog.Int("reflections_x", s.ReflectionsX),
		slog.Int("reflections_y", s.ReflectionsY),
		slog.Int("drags_started", s.DragsStarted),
		slog.Int("drags_ended", s.DragsEnded),
		slog.Int("snaps", s.Snaps),
		slog.Float64("distance_px", s.Distance),
		slog.Float64("mean_speed", s.MeanSpeed),
		slog.Float64("change_interval_mean", s.MeanChangeInterval),
		slog.Float64("change_interval_std", s.StdChangeInterval),
		slog.Float64("change_interval_p50", s.P50ChangeInterval),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"direction_changes", s.DirectionChanges,
		"reflections_x", s.ReflectionsX,
		"reflections_y", s.ReflectionsY,
		"drags_started", s.DragsStarted,
		"drags_ended", s.DragsEnded,
		"snaps", s.Snaps,
		"distance_px", s.Distance,
		"mean_speed", s.MeanSpeed,
		"change_interval_mean", s.MeanChangeInterval,
		"change_interval_std", s.StdChangeInterval,
		"change_interval_p50", s.P50ChangeInterval,
	)
}
