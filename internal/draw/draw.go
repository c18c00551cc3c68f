// Package draw renders to an ANSI terminal: a half-block pixel canvas plus
// cursor and screen helpers.
package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Screen holds terminal dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// TerminalSize returns the terminal dimensions reported by size.
func TerminalSize(size TermSizeFunc) (Screen, error) {
	width, height, err := size()
	if err != nil {
		return Screen{}, fmt.Errorf("terminal size: %w", err)
	}
	return Screen{Width: width, Height: height, CenterX: width / 2, CenterY: height / 2}, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
