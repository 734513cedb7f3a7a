package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/wasibhussain/ladybug-chase/arena"
	"github.com/wasibhussain/ladybug-chase/components"
)

// MotionResult reports what happened during one motion update.
type MotionResult struct {
	ReflectionsX int
	ReflectionsY int
	Distance     float32 // total distance traveled this tick
}

// MotionSystem integrates position from velocity and reflects the bug
// elastically off the padded arena walls. Each axis reflects
// independently; a corner hit flips both signs.
type MotionSystem struct {
	filter ecs.Filter4[components.Position, components.Velocity, components.Rotation, components.Drag]
	arena  *arena.Arena
}

// NewMotionSystem creates a new motion system for the given arena.
func NewMotionSystem(w *ecs.World, a *arena.Arena) *MotionSystem {
	return &MotionSystem{
		filter: *ecs.NewFilter4[components.Position, components.Velocity, components.Rotation, components.Drag](w),
		arena:  a,
	}
}

// Update advances positions by dt seconds. Dragged bugs track the
// pointer instead and are skipped here.
func (s *MotionSystem) Update(dt float64) MotionResult {
	var res MotionResult
	dt32 := float32(dt)

	query := s.filter.Query()
	for query.Next() {
		pos, vel, rot, drag := query.Get()

		if drag.Active {
			continue
		}

		prevX, prevY := pos.X, pos.Y

		// Integrate
		x := pos.X + vel.X*dt32
		y := pos.Y + vel.Y*dt32

		// Reflect at the padded walls: clamp exactly to the boundary
		// and flip that axis's velocity sign. No overshoot persists.
		loX, hiX := s.arena.SpanX()
		if x < loX {
			x = loX
			vel.X = -vel.X
			res.ReflectionsX++
		} else if x > hiX {
			x = hiX
			vel.X = -vel.X
			res.ReflectionsX++
		}

		loY, hiY := s.arena.SpanY()
		if y < loY {
			y = loY
			vel.Y = -vel.Y
			res.ReflectionsY++
		} else if y > hiY {
			y = hiY
			vel.Y = -vel.Y
			res.ReflectionsY++
		}

		pos.X = x
		pos.Y = y
		res.Distance += distance(prevX, prevY, pos.X, pos.Y)

		// Facing follows the direction of travel. A zero velocity keeps
		// the previous heading.
		if vel.X*vel.X+vel.Y*vel.Y > 0 {
			rot.Heading = float32(math.Atan2(float64(vel.Y), float64(vel.X)))
		}
	}

	return res
}
