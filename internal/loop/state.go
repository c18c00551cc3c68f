package loop

import (
	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/draw"
	"github.com/tomz197/shooter/internal/game"
	"github.com/tomz197/shooter/internal/input"
)

// GameState represents the current screen of the client.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Game running, including pause and game over
)

// State is one terminal session: the simulation plus what the client needs
// to drive and draw it.
type State struct {
	Game      *game.State
	GameState GameState
	Input     input.Input
	Running   bool
	Frame     uint64 // frames drawn, for blinking

	termSizeFunc draw.TermSizeFunc
	log          *log.Logger
	// Terminal offset of the centred window, 0-based.
	offCol, offRow int
}

// NewState creates a session showing the title screen.
func NewState(g *game.State, logger *log.Logger) *State {
	return &State{
		Game:         g,
		GameState:    GameStateStart,
		Running:      true,
		termSizeFunc: draw.DefaultTermSizeFunc,
		log:          logger,
	}
}

// gameInput converts the client's key state to one frame of game input.
func (s *State) gameInput() game.Input {
	in := s.Input
	return game.Input{
		Up:         in.Up,
		Down:       in.Down,
		Left:       in.Left,
		Right:      in.Right,
		Fire:       in.Fire,
		NextWeapon: in.NextWeapon,
		PrevWeapon: in.PrevWeapon,
		Pause:      in.Pause,
		Restart:    in.Restart,
		CheatScore: in.CheatScore,
		CheatPower: in.CheatPower,
		Seed:       s.Game.Rand.Nexti(),
	}
}

// update advances the session by one frame.
func (s *State) update() error {
	switch s.GameState {
	case GameStateStart:
		if s.Input.Fire {
			s.GameState = GameStatePlaying
			s.log.Info("game started")
		}
	case GameStatePlaying:
		if err := s.Game.Step(s.gameInput(), nil); err != nil {
			return err
		}
	}
	return nil
}
