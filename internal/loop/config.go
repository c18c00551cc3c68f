package loop

import (
	"time"

	"github.com/tomz197/shooter/internal/object"
)

// Logical resolution: the playfield plus the status bar on its right.
const (
	logicalWidth  = object.WindowWidth
	logicalHeight = object.WindowHeight
)

// Default frame rate when Options.FPS is zero.
const defaultFPS = 60

// Player blinking while invincible, in frames.
const blinkPeriod = 8

// Status bar layout, in logical units.
const (
	statusLeft = object.Width + 16
	statusTop  = 24
)

func frameTime(fps int) time.Duration {
	if fps <= 0 {
		fps = defaultFPS
	}
	return time.Second / time.Duration(fps)
}
