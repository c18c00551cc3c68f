// Package input turns the raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press. Terminals only report repeats, so a held key is a key seen recently.
const keyHoldDuration = 80 * time.Millisecond

// Key is a game action bound to one or more terminal keys.
type Key int

const (
	KeyQuit Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyNextWeapon
	KeyPrevWeapon
	KeyPause
	KeyRestart
	KeyCheatScore
	KeyCheatPower

	keyCount
)

// Input represents the current frame's input state.
type Input struct {
	Quit       bool
	Up         bool
	Down       bool
	Left       bool
	Right      bool
	Fire       bool
	NextWeapon bool
	PrevWeapon bool
	Pause      bool
	Restart    bool
	CheatScore bool
	CheatPower bool
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch   chan byte
	last [keyCount]time.Time
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// reports the keys held at now. A closed stream reads as Quit.
func (s *Stream) ReadInput(now time.Time) Input {
	var buf []byte
	closed := false
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	s.apply(buf, now)
	in := s.state(now)
	if closed {
		in.Quit = true
	}
	return in
}

// apply records the keys found in buf as pressed at now. Arrow keys arrive
// as the CSI sequences ESC [ A..D.
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if k, ok := arrowKey(buf[i+2]); ok {
				s.last[k] = now
				i += 2
				continue
			}
		}
		if k, ok := byteKey(b); ok {
			s.last[k] = now
		}
	}
}

func (s *Stream) held(k Key, now time.Time) bool {
	return !s.last[k].IsZero() && now.Sub(s.last[k]) < keyHoldDuration
}

func (s *Stream) state(now time.Time) Input {
	return Input{
		Quit:       s.held(KeyQuit, now),
		Up:         s.held(KeyUp, now),
		Down:       s.held(KeyDown, now),
		Left:       s.held(KeyLeft, now),
		Right:      s.held(KeyRight, now),
		Fire:       s.held(KeyFire, now),
		NextWeapon: s.held(KeyNextWeapon, now),
		PrevWeapon: s.held(KeyPrevWeapon, now),
		Pause:      s.held(KeyPause, now),
		Restart:    s.held(KeyRestart, now),
		CheatScore: s.held(KeyCheatScore, now),
		CheatPower: s.held(KeyCheatPower, now),
	}
}

func arrowKey(b byte) (Key, bool) {
	switch b {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return 0, false
}

func byteKey(b byte) (Key, bool) {
	switch b {
	case 'q', 'Q', '\x03':
		return KeyQuit, true
	case 'w', 'W', 'k', 'K':
		return KeyUp, true
	case 's', 'S', 'j', 'J':
		return KeyDown, true
	case 'a', 'A', 'h', 'H':
		return KeyLeft, true
	case 'd', 'D', 'l', 'L':
		return KeyRight, true
	case ' ':
		return KeyFire, true
	case 'x', 'X':
		return KeyNextWeapon, true
	case 'z', 'Z':
		return KeyPrevWeapon, true
	case 'p', 'P':
		return KeyPause, true
	case 'r', 'R':
		return KeyRestart, true
	case 'g', 'G':
		return KeyCheatScore, true
	case 'f', 'F':
		return KeyCheatPower, true
	}
	return 0, false
}
