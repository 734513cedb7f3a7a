package components

// Position represents the bug's center in window-local pixels.
type Position struct {
	X, Y float32
}

// Velocity represents the bug's velocity in px/s.
// Magnitude is always the configured wander speed, or zero while dragged.
type Velocity struct {
	X, Y float32
}

// Rotation represents the bug's facing.
// Heading holds the last direction of travel (radians) and is retained
// while velocity is zero, so a dragged bug keeps looking where it was going.
type Rotation struct {
	Heading float32
}
