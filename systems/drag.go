package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/wasibhussain/ladybug-chase/arena"
	"github.com/wasibhussain/ladybug-chase/components"
	"github.com/wasibhussain/ladybug-chase/config"
)

// DragSystem handles the pointer override: while a drag is active the
// bug tracks the pointer and its velocity is suppressed.
type DragSystem struct {
	posMap    *ecs.Map1[components.Position]
	velMap    *ecs.Map1[components.Velocity]
	wanderMap *ecs.Map1[components.Wander]
	dragMap   *ecs.Map1[components.Drag]

	arena  *arena.Arena
	rng    *rand.Rand
	motion *config.MotionConfig
	entity *config.EntityConfig
}

// NewDragSystem creates a new drag system.
func NewDragSystem(w *ecs.World, a *arena.Arena, rng *rand.Rand, motion *config.MotionConfig, entity *config.EntityConfig) *DragSystem {
	return &DragSystem{
		posMap:    ecs.NewMap1[components.Position](w),
		velMap:    ecs.NewMap1[components.Velocity](w),
		wanderMap: ecs.NewMap1[components.Wander](w),
		dragMap:   ecs.NewMap1[components.Drag](w),
		arena:     a,
		rng:       rng,
		motion:    motion,
		entity:    entity,
	}
}

// TryBegin starts a drag if the pointer is within grab range of the bug.
// The offset from bug center to pointer is kept so the bug doesn't jump
// under the cursor. Returns whether a drag started.
func (s *DragSystem) TryBegin(e ecs.Entity, px, py float32) bool {
	drag := s.dragMap.Get(e)
	if drag.Active {
		return false
	}

	pos := s.posMap.Get(e)
	grab := float32(s.entity.GrabRadius)
	if distanceSq(px, py, pos.X, pos.Y) > grab*grab {
		return false
	}

	drag.Active = true
	drag.OffsetX = px - pos.X
	drag.OffsetY = py - pos.Y

	vel := s.velMap.Get(e)
	vel.X = 0
	vel.Y = 0
	return true
}

// Move tracks the pointer while dragging, clamped into the arena per
// axis. Pointer moves outside a drag are ignored.
func (s *DragSystem) Move(e ecs.Entity, px, py float32) {
	drag := s.dragMap.Get(e)
	if !drag.Active {
		return
	}

	pos := s.posMap.Get(e)
	pos.X, pos.Y = s.arena.Clamp(px-drag.OffsetX, py-drag.OffsetY)
}

// End releases the drag at the given simulation time. A release within
// the snap radius of the arena center moves the bug exactly to center;
// farther out it stays where it was dropped. Either way the bug gets a
// fresh random direction and deadline. Returns whether the drag ended
// and whether it snapped.
func (s *DragSystem) End(e ecs.Entity, now float64) (ended, snapped bool) {
	drag := s.dragMap.Get(e)
	if !drag.Active {
		return false, false
	}
	drag.Active = false

	pos := s.posMap.Get(e)
	cx, cy := s.arena.Center()
	if distance(pos.X, pos.Y, cx, cy) < float32(s.motion.SnapRadius) {
		pos.X = cx
		pos.Y = cy
		snapped = true
	}

	RandomizeVelocity(s.rng, s.motion, s.velMap.Get(e), s.wanderMap.Get(e), now)
	return true, snapped
}

// Dragging reports whether the bug is currently being dragged.
func (s *DragSystem) Dragging(e ecs.Entity) bool {
	return s.dragMap.Get(e).Active
}
