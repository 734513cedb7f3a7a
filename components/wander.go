package components

// Wander holds the autonomous-motion schedule.
type Wander struct {
	// NextChangeAt is the simulation time (seconds) after which a new
	// random direction is chosen. Reset on every randomization event.
	NextChangeAt float64
}

// Drag holds the pointer-override state. Lifetime of the offset is one
// pointer-down..pointer-up gesture.
type Drag struct {
	Active bool
	// Offset from the bug's center to the pointer at grab time, so the
	// bug doesn't jump under the cursor.
	OffsetX, OffsetY float32
}
