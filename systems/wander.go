// Package systems contains the ECS systems driving the bug.
package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/wasibhussain/ladybug-chase/components"
	"github.com/wasibhussain/ladybug-chase/config"
)

// WanderSystem re-randomizes the bug's direction whenever its
// next-change deadline expires. Dragged bugs are left alone.
type WanderSystem struct {
	filter ecs.Filter3[components.Velocity, components.Wander, components.Drag]
	rng    *rand.Rand
	motion *config.MotionConfig
}

// NewWanderSystem creates a new wander system.
// The motion config is read live so the tuning panel can adjust it.
func NewWanderSystem(w *ecs.World, rng *rand.Rand, motion *config.MotionConfig) *WanderSystem {
	return &WanderSystem{
		filter: *ecs.NewFilter3[components.Velocity, components.Wander, components.Drag](w),
		rng:    rng,
		motion: motion,
	}
}

// Update checks deadlines at the given simulation time and returns the
// number of direction changes performed this tick.
func (s *WanderSystem) Update(now float64) int {
	changes := 0
	query := s.filter.Query()
	for query.Next() {
		vel, wander, drag := query.Get()

		if drag.Active {
			continue
		}
		if now < wander.NextChangeAt {
			continue
		}

		RandomizeVelocity(s.rng, s.motion, vel, wander, now)
		changes++
	}
	return changes
}

// RandomizeVelocity assigns a fresh random unit direction scaled by the
// wander speed and schedules the next change at now plus a uniform draw
// from [MinChangeInterval, MaxChangeInterval]. Shared by the wander
// deadline path and drag release.
func RandomizeVelocity(rng *rand.Rand, motion *config.MotionConfig, vel *components.Velocity, wander *components.Wander, now float64) {
	angle := rng.Float64() * 2 * math.Pi
	speed := motion.Speed
	vel.X = float32(math.Cos(angle) * speed)
	vel.Y = float32(math.Sin(angle) * speed)

	interval := motion.MinChangeInterval +
		rng.Float64()*(motion.MaxChangeInterval-motion.MinChangeInterval)
	wander.NextChangeAt = now + interval
}
