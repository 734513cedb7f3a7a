// Package telemetry aggregates motion events into windowed stats.
package telemetry

// Collector accumulates motion events within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	directionChanges int
	reflectionsX     int
	reflectionsY     int
	dragsStarted     int
	dragsEnded       int
	snaps            int
	distance         float64

	// Interval samples: sim seconds between consecutive randomization
	// events (deadline expiry or drag release)
	intervals    []float64
	lastChangeAt float64
	hasChange    bool
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordDirectionChange records a randomization event at the given
// simulation time. Both deadline expiry and drag release count.
func (c *Collector) RecordDirectionChange(now float64) {
	c.directionChanges++
	if c.hasChange {
		c.intervals = append(c.intervals, now-c.lastChangeAt)
	}
	c.lastChangeAt = now
	c.hasChange = true
}

// RecordReflections records wall reflections on each axis.
func (c *Collector) RecordReflections(x, y int) {
	c.reflectionsX += x
	c.reflectionsY += y
}

// RecordDistance accumulates distance traveled in pixels.
func (c *Collector) RecordDistance(px float32) {
	c.distance += float64(px)
}

// RecordDragStart records the beginning of a drag gesture.
func (c *Collector) RecordDragStart() {
	c.dragsStarted++
}

// RecordDragEnd records a drag release. snapped reports whether the
// release snapped the bug to the arena center.
func (c *Collector) RecordDragEnd(snapped bool) {
	c.dragsEnded++
	if snapped {
		c.snaps++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32) WindowStats {
	windowSec := float64(currentTick-c.windowStartTick) * float64(c.dt)

	var meanSpeed float64
	if windowSec > 0 {
		meanSpeed = c.distance / windowSec
	}

	meanInterval, stdInterval, p50Interval := ComputeIntervalStats(c.intervals)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		DirectionChanges: c.directionChanges,
		ReflectionsX:     c.reflectionsX,
		ReflectionsY:     c.reflectionsY,
		DragsStarted:     c.dragsStarted,
		DragsEnded:       c.dragsEnded,
		Snaps:            c.snaps,

		Distance:  c.distance,
		MeanSpeed: meanSpeed,

		MeanChangeInterval: meanInterval,
		StdChangeInterval:  stdInterval,
		P50ChangeInterval:  p50Interval,
	}

	// Reset for next window; lastChangeAt carries over so the first
	// interval of the new window is still measured correctly
	c.windowStartTick = currentTick
	c.directionChanges = 0
	c.reflectionsX = 0
	c.reflectionsY = 0
	c.dragsStarted = 0
	c.dragsEnded = 0
	c.snaps = 0
	c.distance = 0
	c.intervals = c.intervals[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
