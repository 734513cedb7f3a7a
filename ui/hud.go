// Package ui renders the HUD and the tuning panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDState holds the values the HUD displays each frame.
type HUDState struct {
	Tick           int32
	SimTime        float64
	State          string // "wandering" or "dragged"
	Paused         bool
	StepsPerUpdate int
}

// HUD renders the status line overlay.
type HUD struct{}

// NewHUD creates a new HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(s HUDState) {
	rl.DrawText(fmt.Sprintf("tick %d  %.1fs  %s", s.Tick, s.SimTime, s.State), 10, 10, 14, rl.RayWhite)

	if s.Paused {
		rl.DrawText("PAUSED", 10, 28, 14, rl.Yellow)
	}
	if s.StepsPerUpdate > 1 {
		rl.DrawText(fmt.Sprintf("speed %dx  [</>]", s.StepsPerUpdate), 110, 28, 14, rl.Gray)
	}

	help := "[space] pause  [t] tuning  [d] debug  [f11] fullscreen"
	rl.DrawText(help, 10, int32(rl.GetScreenHeight())-22, 12, rl.Gray)
}
