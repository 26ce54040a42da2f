package util

import (
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal
const DefaultWidth = 80

// Terminal abstracts the terminal queries used for rendering
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal queries the real terminal through golang.org/x/term
type DefaultTerminal struct{}

func (DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// TerminalWidth returns the width of the terminal attached to fd, or DefaultWidth
// when fd is not a terminal or its size cannot be read.
func TerminalWidth(t Terminal, fd int) int {
	if t == nil || !t.IsTerminal(fd) {
		return DefaultWidth
	}
	width, _, err := t.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}

	return width
}
