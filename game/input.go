package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes pointer and keyboard input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	// Debug overlay toggle
	if rl.IsKeyPressed(rl.KeyD) {
		g.debugMode = !g.debugMode
	}

	// Tuning panel toggle
	if rl.IsKeyPressed(rl.KeyT) && g.panel != nil {
		g.panel.Toggle()
	}

	g.handleDragInput()
}

// handleDragInput forwards pointer events to the drag system.
func (g *Game) handleDragInput() {
	mousePos := rl.GetMousePosition()

	// Clicks on the tuning panel belong to the panel, not the bug
	if g.panel != nil && g.panel.Contains(mousePos.X, mousePos.Y) && !g.drag.Dragging(g.bug) {
		return
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		if g.drag.TryBegin(g.bug, mousePos.X, mousePos.Y) {
			g.collector.RecordDragStart()
		}
	}

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		g.drag.Move(g.bug, mousePos.X, mousePos.Y)
	}

	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		ended, snapped := g.drag.End(g.bug, g.simTime)
		if ended {
			g.collector.RecordDragEnd(snapped)
			// A release re-randomizes direction, same as deadline expiry
			g.collector.RecordDirectionChange(g.simTime)
		}
	}
}

// handleResize checks for window resize and propagates new dimensions.
// The bug is not repositioned; the next tick or drag update clamps it
// back inside the new bounds.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.arena.Resize(w, h)
}
