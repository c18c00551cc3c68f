package loop

import (
	"fmt"

	"github.com/tomz197/shooter/internal/draw"
	"github.com/tomz197/shooter/internal/object"
)

// drawUI draws the text overlay for the current screen.
func drawUI(state *State, out *draw.ChunkWriter, canvas *draw.Canvas) {
	col, row := canvas.LogicalToTerminal(object.Width/2, object.Height/2)
	col, row = col+1, row+1

	switch state.GameState {
	case GameStateStart:
		drawStartScreen(out, col, row)
	case GameStatePlaying:
		drawStatus(state, out, canvas)
		g := state.Game
		switch {
		case g.GameOver:
			out.WriteCentered(col, row-1, "GAME OVER")
			out.WriteCentered(col, row+1, fmt.Sprintf("Score: %d", g.Player.Score))
			out.WriteCentered(col, row+3, "Press R to restart")
		case g.Paused:
			out.WriteCentered(col, row, "PAUSED")
		}
	}
}

// drawStartScreen draws the title screen.
func drawStartScreen(out *draw.ChunkWriter, col, row int) {
	out.WriteCentered(col, row-3, "S H O O T E R")
	out.WriteCentered(col, row, "Press SPACE to start")
	out.WriteCentered(col, row+3, "WASD/arrows move, SPACE fires")
	out.WriteCentered(col, row+4, "Z/X weapon, P pause, R restart, Q quit")
}

// statusLines returns the status bar text, one entry per line.
func statusLines(state *State) []string {
	g := state.Game
	p := g.Player
	return []string{
		fmt.Sprintf("Score %d", p.Score),
		fmt.Sprintf("Kills %d", p.Kills),
		fmt.Sprintf("Wave  %d", g.Wave()),
		fmt.Sprintf("Level %d", p.DifficultyLevel()),
		"",
		fmt.Sprintf("Lives %d", p.Lives),
		fmt.Sprintf("Power %d (%d)", p.PowerLevel(), p.Power),
		"Weapon",
		" " + p.Weapon.String(),
		"",
		fmt.Sprintf("Enemies %d", g.Enemies.Len()),
		fmt.Sprintf("Bullets %d", g.Bullets.Len()),
		fmt.Sprintf("Shots %d/%d", g.ShotsBullet, g.ShotsMissile),
	}
}

// drawStatus fills the status bar to the right of the playfield.
func drawStatus(state *State, out *draw.ChunkWriter, canvas *draw.Canvas) {
	col, row := canvas.LogicalToTerminal(statusLeft, statusTop)
	for i, line := range statusLines(state) {
		if line != "" {
			out.WriteAt(col+1, row+1+i, line)
		}
	}
}
