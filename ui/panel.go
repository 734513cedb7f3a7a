package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/wasibhussain/ladybug-chase/config"
)

const (
	panelWidth   = 250
	panelHeight  = 190
	sliderHeight = 16
	rowGap       = 30
)

// TuningPanel exposes the motion parameters as live sliders so the
// wander feel can be adjusted without editing the config file.
type TuningPanel struct {
	x, y    float32
	visible bool
}

// NewTuningPanel creates a hidden tuning panel at the given position.
func NewTuningPanel(x, y float32) *TuningPanel {
	return &TuningPanel{x: x, y: y}
}

// Toggle switches panel visibility.
func (p *TuningPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Contains reports whether the point falls inside the visible panel.
// Used to keep panel clicks from grabbing the bug.
func (p *TuningPanel) Contains(x, y float32) bool {
	if !p.visible {
		return false
	}
	return x >= p.x && x <= p.x+panelWidth && y >= p.y && y <= p.y+panelHeight
}

// Draw renders the panel and writes slider values back into the config.
func (p *TuningPanel) Draw(motion *config.MotionConfig, entity *config.EntityConfig) {
	if !p.visible {
		return
	}

	gui.GroupBox(rl.Rectangle{X: p.x, Y: p.y, Width: panelWidth, Height: panelHeight}, "Motion Tuning")

	row := func(i int) rl.Rectangle {
		return rl.Rectangle{
			X:      p.x + 70,
			Y:      p.y + 14 + float32(i)*rowGap,
			Width:  panelWidth - 120,
			Height: sliderHeight,
		}
	}

	motion.Speed = float64(gui.Slider(row(0), "speed",
		fmt.Sprintf("%.0f", motion.Speed), float32(motion.Speed), 40, 400))

	motion.SnapRadius = float64(gui.Slider(row(1), "snap",
		fmt.Sprintf("%.0f", motion.SnapRadius), float32(motion.SnapRadius), 0, 150))

	motion.MinChangeInterval = float64(gui.Slider(row(2), "turn min",
		fmt.Sprintf("%.1fs", motion.MinChangeInterval), float32(motion.MinChangeInterval), 0.1, 3))

	motion.MaxChangeInterval = float64(gui.Slider(row(3), "turn max",
		fmt.Sprintf("%.1fs", motion.MaxChangeInterval), float32(motion.MaxChangeInterval), 0.2, 5))
	if motion.MaxChangeInterval < motion.MinChangeInterval {
		motion.MaxChangeInterval = motion.MinChangeInterval
	}

	entity.GrabRadius = float64(gui.Slider(row(4), "grab",
		fmt.Sprintf("%.0f", entity.GrabRadius), float32(entity.GrabRadius), 10, 60))
}
