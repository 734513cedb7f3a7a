package systems

import (
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/wasibhussain/ladybug-chase/arena"
	"github.com/wasibhussain/ladybug-chase/components"
	"github.com/wasibhussain/ladybug-chase/config"
)

func newDragFixture(t *testing.T, x, y, vx, vy float32) (*DragSystem, *ecs.World, ecs.Entity) {
	t.Helper()
	cfg := config.Cfg()
	w := ecs.NewWorld()
	e := spawnBug(w, x, y, vx, vy)
	rng := rand.New(rand.NewSource(3))
	a := arena.New(400, 300, 24)
	return NewDragSystem(w, a, rng, &cfg.Motion, &cfg.Entity), w, e
}

func TestGrabWithinRadiusStartsDrag(t *testing.T) {
	sys, w, e := newDragFixture(t, 200, 150, 170, 0)

	if !sys.TryBegin(e, 210, 155) {
		t.Fatal("expected grab within radius to start a drag")
	}
	if !sys.Dragging(e) {
		t.Error("expected Dragging to report true")
	}

	// Velocity is suppressed for the whole gesture
	velMap := ecs.NewMap1[components.Velocity](w)
	vel := velMap.Get(e)
	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("expected zero velocity during drag, got (%f, %f)", vel.X, vel.Y)
	}

	// Grab offset preserved so the bug doesn't jump under the cursor
	dragMap := ecs.NewMap1[components.Drag](w)
	drag := dragMap.Get(e)
	if drag.OffsetX != 10 || drag.OffsetY != 5 {
		t.Errorf("expected offset (10, 5), got (%f, %f)", drag.OffsetX, drag.OffsetY)
	}
}

func TestGrabOutsideRadiusIgnored(t *testing.T) {
	sys, _, e := newDragFixture(t, 200, 150, 170, 0)

	if sys.TryBegin(e, 300, 150) {
		t.Error("expected grab far from the bug to be ignored")
	}
	if sys.Dragging(e) {
		t.Error("expected no active drag")
	}
}

func TestDragClampsToPaddedBounds(t *testing.T) {
	// Grab at the bug's center, then move the pointer to (10, 10): the
	// bug must stop at the padding corner (24, 24).
	sys, w, e := newDragFixture(t, 200, 150, 170, 0)

	if !sys.TryBegin(e, 200, 150) {
		t.Fatal("grab at center failed")
	}
	sys.Move(e, 10, 10)

	posMap := ecs.NewMap1[components.Position](w)
	pos := posMap.Get(e)
	if pos.X != 24 || pos.Y != 24 {
		t.Errorf("expected clamp to (24, 24), got (%f, %f)", pos.X, pos.Y)
	}
}

func TestDragRespectsGrabOffset(t *testing.T) {
	sys, w, e := newDragFixture(t, 200, 150, 0, 0)

	sys.TryBegin(e, 210, 155) // offset (10, 5)
	sys.Move(e, 110, 105)

	posMap := ecs.NewMap1[components.Position](w)
	pos := posMap.Get(e)
	if pos.X != 100 || pos.Y != 100 {
		t.Errorf("expected position (100, 100), got (%f, %f)", pos.X, pos.Y)
	}
}

func TestReleaseNearCenterSnaps(t *testing.T) {
	sys, w, e := newDragFixture(t, 200, 150, 0, 0)

	sys.TryBegin(e, 200, 150)
	sys.Move(e, 230, 190) // 50 px from center (200, 150): inside the 60 px snap radius

	ended, snapped := sys.End(e, 10.0)
	if !ended {
		t.Fatal("expected drag to end")
	}
	if !snapped {
		t.Error("expected release near center to snap")
	}

	posMap := ecs.NewMap1[components.Position](w)
	pos := posMap.Get(e)
	if pos.X != 200 || pos.Y != 150 {
		t.Errorf("expected exact center (200, 150), got (%f, %f)", pos.X, pos.Y)
	}
}

func TestReleaseFarFromCenterStaysPut(t *testing.T) {
	sys, w, e := newDragFixture(t, 200, 150, 0, 0)

	sys.TryBegin(e, 200, 150)
	sys.Move(e, 300, 150) // 100 px from center: outside the snap radius

	_, snapped := sys.End(e, 10.0)
	if snapped {
		t.Error("expected no snap when released far from center")
	}

	posMap := ecs.NewMap1[components.Position](w)
	pos := posMap.Get(e)
	if pos.X != 300 || pos.Y != 150 {
		t.Errorf("expected release point (300, 150), got (%f, %f)", pos.X, pos.Y)
	}
}

func TestReleaseResumesWandering(t *testing.T) {
	sys, w, e := newDragFixture(t, 200, 150, 0, 0)

	sys.TryBegin(e, 200, 150)
	now := 10.0
	sys.End(e, now)

	velMap := ecs.NewMap1[components.Velocity](w)
	vel := velMap.Get(e)
	mag := velocityMagnitude(vel.X, vel.Y)
	if mag < 169.99 || mag > 170.01 {
		t.Errorf("expected speed 170 after release, got %f", mag)
	}

	wanderMap := ecs.NewMap1[components.Wander](w)
	next := wanderMap.Get(e).NextChangeAt
	if next < now+0.7 || next > now+2.2 {
		t.Errorf("deadline %f outside [%f, %f]", next, now+0.7, now+2.2)
	}
}

func TestPointerEventsWithoutDragAreNoOps(t *testing.T) {
	sys, w, e := newDragFixture(t, 200, 150, 170, 0)

	sys.Move(e, 10, 10)
	posMap := ecs.NewMap1[components.Position](w)
	pos := posMap.Get(e)
	if pos.X != 200 || pos.Y != 150 {
		t.Errorf("stray move changed position to (%f, %f)", pos.X, pos.Y)
	}

	ended, _ := sys.End(e, 5.0)
	if ended {
		t.Error("stray release ended a drag that never started")
	}

	velMap := ecs.NewMap1[components.Velocity](w)
	vel := velMap.Get(e)
	if vel.X != 170 || vel.Y != 0 {
		t.Errorf("stray release changed velocity to (%f, %f)", vel.X, vel.Y)
	}
}
