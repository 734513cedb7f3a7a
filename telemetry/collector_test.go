package telemetry

import (
	"math"
	"testing"
)

func TestCollectorWindowFlush(t *testing.T) {
	c := NewCollector(5.0, 1.0/60.0)

	if c.WindowDurationTicks() != 300 {
		t.Errorf("expected 300 ticks per window, got %d", c.WindowDurationTicks())
	}

	if c.ShouldFlush(299) {
		t.Error("should not flush before the window elapses")
	}
	if !c.ShouldFlush(300) {
		t.Error("should flush once the window elapses")
	}
}

func TestCollectorCounters(t *testing.T) {
	c := NewCollector(5.0, 1.0/60.0)

	c.RecordDirectionChange(1.0)
	c.RecordDirectionChange(2.5)
	c.RecordReflections(2, 1)
	c.RecordDistance(100)
	c.RecordDistance(50)
	c.RecordDragStart()
	c.RecordDragEnd(true)

	stats := c.Flush(300)

	if stats.DirectionChanges != 2 {
		t.Errorf("expected 2 direction changes, got %d", stats.DirectionChanges)
	}
	if stats.ReflectionsX != 2 || stats.ReflectionsY != 1 {
		t.Errorf("expected reflections (2, 1), got (%d, %d)", stats.ReflectionsX, stats.ReflectionsY)
	}
	if stats.DragsStarted != 1 || stats.DragsEnded != 1 || stats.Snaps != 1 {
		t.Errorf("expected one snapped drag, got started=%d ended=%d snaps=%d",
			stats.DragsStarted, stats.DragsEnded, stats.Snaps)
	}
	if stats.Distance != 150 {
		t.Errorf("expected distance 150, got %f", stats.Distance)
	}
	// 150 px over a 5 s window
	if math.Abs(stats.MeanSpeed-30) > 0.01 {
		t.Errorf("expected mean speed 30, got %f", stats.MeanSpeed)
	}
	// One interval sample: 2.5 - 1.0
	if math.Abs(stats.MeanChangeInterval-1.5) > 1e-9 {
		t.Errorf("expected mean interval 1.5, got %f", stats.MeanChangeInterval)
	}
}

func TestCollectorResetsAfterFlush(t *testing.T) {
	c := NewCollector(5.0, 1.0/60.0)

	c.RecordDirectionChange(1.0)
	c.RecordReflections(1, 1)
	c.Flush(300)

	stats := c.Flush(600)
	if stats.DirectionChanges != 0 || stats.ReflectionsX != 0 || stats.ReflectionsY != 0 {
		t.Errorf("counters not reset: %+v", stats)
	}
	if stats.WindowStartTick != 300 || stats.WindowEndTick != 600 {
		t.Errorf("window bounds wrong: [%d, %d]", stats.WindowStartTick, stats.WindowEndTick)
	}
}

func TestIntervalSpansWindowBoundary(t *testing.T) {
	c := NewCollector(5.0, 1.0/60.0)

	c.RecordDirectionChange(4.5)
	c.Flush(300)

	// First change of the new window still measures against the last
	// change of the previous window
	c.RecordDirectionChange(6.0)
	stats := c.Flush(600)

	if math.Abs(stats.MeanChangeInterval-1.5) > 1e-9 {
		t.Errorf("expected cross-window interval 1.5, got %f", stats.MeanChangeInterval)
	}
}
