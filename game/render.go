package game

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/wasibhussain/ladybug-chase/config"
	"github.com/wasibhussain/ladybug-chase/ui"
)

var (
	backgroundColor = rl.Color{R: 34, G: 40, B: 36, A: 255}
	arenaFillColor  = rl.Color{R: 44, G: 52, B: 46, A: 255}
	bodyColor       = rl.Color{R: 214, G: 48, B: 49, A: 255}
	bodyDragColor   = rl.Color{R: 235, G: 77, B: 75, A: 255}
	chitinColor     = rl.Color{R: 25, G: 22, B: 22, A: 255}
	shadowColor     = rl.Color{R: 0, G: 0, B: 0, A: 60}
)

// Draw renders the widget.
func (g *Game) Draw() {
	cfg := config.Cfg()

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	// Padded arena surface
	loX, hiX := g.arena.SpanX()
	loY, hiY := g.arena.SpanY()
	pad := cfg.Derived.BodyRadius32
	rl.DrawRectangleRounded(rl.Rectangle{
		X:      loX - pad,
		Y:      loY - pad,
		Width:  hiX - loX + 2*pad,
		Height: hiY - loY + 2*pad,
	}, 0.06, 8, arenaFillColor)

	pos := g.posMap.Get(g.bug)
	rot := g.rotMap.Get(g.bug)
	dragging := g.drag.Dragging(g.bug)

	drawLadybug(pos.X, pos.Y, rot.Heading, cfg.Derived.BodyRadius32, dragging)

	if g.debugMode {
		g.drawDebugOverlay()
	}

	g.hud.Draw(g.hudState())

	if g.panel != nil {
		g.panel.Draw(&cfg.Motion, &cfg.Entity)
	}

	rl.EndDrawing()
}

// drawLadybug renders the bug as vector art. The artwork faces up in
// its local frame, so the rotation gets a 90 degree offset to align the
// sprite's forward axis with the direction of travel.
func drawLadybug(x, y, heading, radius float32, dragging bool) {
	scale := radius
	if dragging {
		// Picked-up bugs appear slightly lifted
		scale *= 1.15
		rl.DrawCircle(int32(x+3), int32(y+4), scale*1.05, shadowColor)
	}

	theta := float64(heading) + math.Pi/2
	cosT := float32(math.Cos(theta))
	sinT := float32(math.Sin(theta))

	// local converts sprite-frame coordinates (in units of radius,
	// forward = -Y) to screen coordinates
	local := func(lx, ly float32) rl.Vector2 {
		lx *= scale
		ly *= scale
		return rl.Vector2{
			X: x + lx*cosT - ly*sinT,
			Y: y + lx*sinT + ly*cosT,
		}
	}

	body := bodyColor
	if dragging {
		body = bodyDragColor
	}

	// Legs, three per side
	legs := [][4]float32{
		{-0.70, -0.40, -1.35, -0.65},
		{-0.90, 0.05, -1.50, 0.05},
		{-0.70, 0.50, -1.35, 0.80},
		{0.70, -0.40, 1.35, -0.65},
		{0.90, 0.05, 1.50, 0.05},
		{0.70, 0.50, 1.35, 0.80},
	}
	for _, l := range legs {
		rl.DrawLineEx(local(l[0], l[1]), local(l[2], l[3]), 2, chitinColor)
	}

	// Antennae
	rl.DrawLineEx(local(-0.20, -1.10), local(-0.50, -1.60), 2, chitinColor)
	rl.DrawLineEx(local(0.20, -1.10), local(0.50, -1.60), 2, chitinColor)

	// Head, then body on top
	head := local(0, -0.90)
	rl.DrawCircleV(head, scale*0.45, chitinColor)
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, scale, body)

	// Elytra split line down the back
	rl.DrawLineEx(local(0, -0.95), local(0, 1.0), 2, chitinColor)

	// Spots
	spots := [][2]float32{
		{-0.45, -0.30}, {0.45, -0.30},
		{-0.50, 0.40}, {0.50, 0.40},
		{-0.22, 0.05}, {0.22, 0.05},
	}
	for _, s := range spots {
		rl.DrawCircleV(local(s[0], s[1]), scale*0.14, chitinColor)
	}
}

// drawDebugOverlay renders the motion state on top of the scene.
func (g *Game) drawDebugOverlay() {
	loX, hiX := g.arena.SpanX()
	loY, hiY := g.arena.SpanY()

	// Walkable span for the bug's center
	rl.DrawRectangleLines(int32(loX), int32(loY), int32(hiX-loX), int32(hiY-loY), rl.Yellow)

	// Snap radius around the center
	cx, cy := g.arena.Center()
	rl.DrawCircleLines(int32(cx), int32(cy), config.Cfg().Derived.SnapRadius32, rl.Color{R: 255, G: 255, B: 0, A: 120})

	pos := g.posMap.Get(g.bug)
	vel := g.velMap.Get(g.bug)
	wander := g.wandMap.Get(g.bug)

	// Velocity vector, scaled to where the bug will be in 250ms
	rl.DrawLineEx(
		rl.Vector2{X: pos.X, Y: pos.Y},
		rl.Vector2{X: pos.X + vel.X*0.25, Y: pos.Y + vel.Y*0.25},
		2, rl.SkyBlue,
	)

	countdown := wander.NextChangeAt - g.simTime
	if countdown < 0 {
		countdown = 0
	}
	panelX := int32(g.screenWidth) - 210
	rl.DrawRectangle(panelX, 10, 200, 80, rl.Color{R: 0, G: 0, B: 0, A: 180})
	rl.DrawRectangleLines(panelX, 10, 200, 80, rl.Yellow)
	rl.DrawText("DEBUG [D to close]", panelX+10, 18, 14, rl.Yellow)
	rl.DrawText(fmt.Sprintf("pos  %.1f, %.1f", pos.X, pos.Y), panelX+10, 38, 12, rl.White)
	rl.DrawText(fmt.Sprintf("vel  %.1f, %.1f", vel.X, vel.Y), panelX+10, 54, 12, rl.White)
	rl.DrawText(fmt.Sprintf("next turn in %.2fs", countdown), panelX+10, 70, 12, rl.White)
}

// hudState collects the values the HUD displays.
func (g *Game) hudState() ui.HUDState {
	state := "wandering"
	if g.drag.Dragging(g.bug) {
		state = "dragged"
	}
	return ui.HUDState{
		Tick:           g.tick,
		SimTime:        g.simTime,
		State:          state,
		Paused:         g.paused,
		StepsPerUpdate: g.stepsPerUpdate,
	}
}
