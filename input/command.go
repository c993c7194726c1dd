// Package input turns bouncing button lines into discrete game commands.
package input

import "strings"

// Mask is a set of button lines. Bit order follows the switch wiring:
// left, rotate, reset, right.
type Mask uint8

const (
	Left Mask = 1 << iota
	Rotate
	Reset
	Right

	All = Left | Rotate | Reset | Right
)

// Command is a set of debounced player commands emitted in one tick.
type Command uint8

const (
	CmdLeft Command = 1 << iota
	CmdRotate
	CmdReset
	CmdRight
)

var commandOrder = [...]Command{CmdLeft, CmdRotate, CmdReset, CmdRight}

// Has reports whether c contains every command in x.
func (c Command) Has(x Command) bool { return x != 0 && c&x == x }

// Each calls fn for each command in c, in wiring order.
func (c Command) Each(fn func(Command)) {
	for _, cmd := range commandOrder {
		if c&cmd != 0 {
			fn(cmd)
		}
	}
}

func (c Command) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	c.Each(func(cmd Command) {
		switch cmd {
		case CmdLeft:
			parts = append(parts, "left")
		case CmdRotate:
			parts = append(parts, "rotate")
		case CmdReset:
			parts = append(parts, "reset")
		case CmdRight:
			parts = append(parts, "right")
		}
	})
	return strings.Join(parts, "|")
}

// Lines is the hardware side of the buttons.
//
// Sample returns the set of lines currently held down. Edge interrupts are
// enabled and disabled per line.
type Lines interface {
	Sample() Mask
	EnableEdges(m Mask)
	DisableEdges(m Mask)
}

// Source yields the commands accumulated since the previous Poll.
type Source interface {
	Poll() Command
}
