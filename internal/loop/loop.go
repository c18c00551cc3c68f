// Package loop runs the shooter in a terminal: input, simulation step and
// drawing once per frame.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/draw"
	"github.com/tomz197/shooter/internal/game"
	"github.com/tomz197/shooter/internal/input"
)

// Options configures Run.
type Options struct {
	Game   game.Options
	FPS    int
	Logger *log.Logger
	// TermSize reports the terminal size; nil uses stdout.
	TermSize draw.TermSizeFunc
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits or input ends.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	opts.Game.Logger = opts.Logger
	state := NewState(game.New(opts.Game), opts.Logger)
	if opts.TermSize != nil {
		state.termSizeFunc = opts.TermSize
	}
	stream := input.StartStream(r)
	out := draw.NewChunkWriter(w)
	canvas := draw.NewScaledCanvas(1, 1, logicalWidth, logicalHeight)
	target := frameTime(opts.FPS)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	for state.Running {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		state.Input = stream.ReadInput(frameStart)
		if state.Input.Quit {
			state.Running = false
			break
		}

		// ===== UPDATE PHASE =====
		if err := state.update(); err != nil {
			return fmt.Errorf("update: %w", err)
		}
		if err := updateScreen(state, canvas, out); err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, canvas, out); err != nil {
			return err
		}
		state.Frame++

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	state.log.Info("quit", "score", state.Game.Player.Score, "time", state.Game.Time)
	draw.ClearScreen(w)
	return nil
}

// updateScreen fits the logical window into the terminal, keeping its
// aspect ratio, and centres it.
func updateScreen(state *State, canvas *draw.Canvas, out *draw.ChunkWriter) error {
	screen, err := draw.TerminalSize(state.termSizeFunc)
	if err != nil {
		return err
	}
	cols, rows := fitWindow(screen.Width, screen.Height)
	canvas.Resize(cols, rows)
	state.offCol = (screen.Width - canvas.TerminalWidth()) / 2
	state.offRow = (screen.Height - canvas.TerminalHeight()) / 2
	out.SetOffset(state.offCol, state.offRow)
	return nil
}

// fitWindow returns the largest terminal area with the window's aspect
// ratio. Each cell holds two square-ish sub-pixels stacked vertically.
func fitWindow(termWidth, termHeight int) (cols, rows int) {
	scale := math.Min(float64(termWidth)/logicalWidth, float64(termHeight*2)/logicalHeight)
	cols = max(int(logicalWidth*scale), 1)
	rows = max(int(logicalHeight*scale/2), 1)
	return cols, rows
}

// drawFrame clears the screen and draws the session.
func drawFrame(state *State, canvas *draw.Canvas, out *draw.ChunkWriter) error {
	draw.ClearScreen(out)
	canvas.Clear()

	if state.GameState == GameStatePlaying {
		drawWorld(state, canvas)
	}
	drawFrameLines(canvas)
	if err := canvas.Render(out, state.offCol+1, state.offRow+1); err != nil {
		return err
	}

	// UI overlay goes after the canvas so it's on top.
	drawUI(state, out, canvas)
	return out.Flush()
}
