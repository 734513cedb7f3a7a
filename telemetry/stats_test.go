package telemetry

import (
	"math"
	"testing"
)

func TestComputeIntervalStatsEmpty(t *testing.T) {
	mean, std, p50 := ComputeIntervalStats(nil)
	if mean != 0 || std != 0 || p50 != 0 {
		t.Errorf("expected zeros for empty input, got %f %f %f", mean, std, p50)
	}
}

func TestComputeIntervalStatsSingle(t *testing.T) {
	mean, std, p50 := ComputeIntervalStats([]float64{1.2})
	if mean != 1.2 {
		t.Errorf("expected mean 1.2, got %f", mean)
	}
	if std != 0 {
		t.Errorf("expected std 0 for a single sample, got %f", std)
	}
	if p50 != 1.2 {
		t.Errorf("expected p50 1.2, got %f", p50)
	}
}

func TestComputeIntervalStats(t *testing.T) {
	intervals := []float64{1.0, 2.0, 3.0}

	mean, std, p50 := ComputeIntervalStats(intervals)
	if math.Abs(mean-2.0) > 1e-9 {
		t.Errorf("expected mean 2.0, got %f", mean)
	}
	if math.Abs(std-1.0) > 1e-9 {
		t.Errorf("expected std 1.0, got %f", std)
	}
	if math.Abs(p50-2.0) > 1e-9 {
		t.Errorf("expected p50 2.0, got %f", p50)
	}
}

func TestComputeIntervalStatsUnsortedInput(t *testing.T) {
	// The input slice must not be reordered by the caller's view
	intervals := []float64{2.0, 0.8, 1.4}

	_, _, p50 := ComputeIntervalStats(intervals)
	if math.Abs(p50-1.4) > 1e-9 {
		t.Errorf("expected p50 1.4, got %f", p50)
	}
	if intervals[0] != 2.0 {
		t.Error("input slice was mutated")
	}
}
