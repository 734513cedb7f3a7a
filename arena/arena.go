// Package arena models the padded area the bug is confined to.
package arena

// Arena is the bounded region of the window the bug's center may occupy.
// The walkable span on each axis is [Padding, dimension-Padding].
type Arena struct {
	// Window dimensions in pixels
	Width, Height float32

	// Padding is the inset from every edge
	Padding float32
}

// New creates an arena for the given window size and padding.
func New(width, height, padding float32) *Arena {
	return &Arena{Width: width, Height: height, Padding: padding}
}

// Resize updates the window dimensions. The bug is not repositioned here;
// it gets clamped back inside on the next tick or drag update.
func (a *Arena) Resize(width, height float32) {
	a.Width = width
	a.Height = height
}

// SpanX returns the walkable [min, max] range on the X axis.
// A window too small for the padding collapses to a single park point
// at the axis midpoint.
func (a *Arena) SpanX() (lo, hi float32) {
	return span(a.Width, a.Padding)
}

// SpanY returns the walkable [min, max] range on the Y axis.
func (a *Arena) SpanY() (lo, hi float32) {
	return span(a.Height, a.Padding)
}

// Center returns the center of the window.
func (a *Arena) Center() (x, y float32) {
	return a.Width / 2, a.Height / 2
}

// Clamp returns the given point clamped into the walkable span per axis.
func (a *Arena) Clamp(x, y float32) (cx, cy float32) {
	loX, hiX := a.SpanX()
	loY, hiY := a.SpanY()
	return clamp(x, loX, hiX), clamp(y, loY, hiY)
}

// Contains reports whether the point lies within the walkable span.
func (a *Arena) Contains(x, y float32) bool {
	loX, hiX := a.SpanX()
	loY, hiY := a.SpanY()
	return x >= loX && x <= hiX && y >= loY && y <= hiY
}

// span computes the walkable range for one axis.
func span(dim, padding float32) (lo, hi float32) {
	lo = padding
	hi = dim - padding
	if hi < lo {
		// Degenerate window: park at the midpoint
		mid := dim / 2
		return mid, mid
	}
	return lo, hi
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
