package hal

import (
	"errors"

	"lcdtris/input"
	"lcdtris/render"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// Time provides the periodic timer tick.
//
// Ticks arrive at Config.Hz; a slow consumer loses ticks rather than
// blocking the source.
type Time interface {
	Ticks() <-chan uint64
}

// Buttons are the four push buttons.
//
// The edge handler runs in interrupt context on hardware: it receives the
// lines that changed and must not block.
type Buttons interface {
	input.Lines
	SetEdgeHandler(fn func(input.Mask))
}

// Entropy provides a boot-time seed for the randomizer.
type Entropy interface {
	Seed() uint32
}

// Config selects the platform geometry and timer rate.
type Config struct {
	Width  int
	Height int
	Hz     int
	// Scale is the host window zoom factor.
	Scale int
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 128
	}
	if c.Height <= 0 {
		c.Height = 160
	}
	if c.Hz <= 0 {
		c.Hz = 256
	}
	if c.Scale <= 0 {
		c.Scale = 3
	}
	return c
}

// HAL provides the only contact point between the game and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Panel() render.Panel
	Buttons() Buttons
	Time() Time
	Entropy() Entropy
}
