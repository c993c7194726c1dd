package hal

import (
	"fmt"
	"sync"
	"sync/atomic"

	"lcdtris/input"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
	GPIOCapEdge
)

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

// EdgePin is an input pin that can call back on every level change.
type EdgePin interface {
	GPIOPin
	SetEdge(fn func()) error
}

type virtualPin struct {
	mu     sync.Mutex
	name   string
	caps   GPIOCaps
	mode   GPIOMode
	pull   GPIOPull
	level  bool
	onEdge func()
}

func newVirtualPin(name string, caps GPIOCaps) *virtualPin {
	return &virtualPin{
		name: name,
		caps: caps,
		mode: GPIOModeInput,
		pull: GPIOPullNone,
	}
}

func (p *virtualPin) Name() string   { return p.name }
func (p *virtualPin) Caps() GPIOCaps { return p.caps }

func (p *virtualPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch mode {
	case GPIOModeInput:
		if p.caps&GPIOCapInput == 0 {
			return fmt.Errorf("gpio: pin %s: input unsupported", p.name)
		}
	case GPIOModeOutput:
		if p.caps&GPIOCapOutput == 0 {
			return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}

	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		if p.caps&GPIOCapPullUp == 0 {
			return fmt.Errorf("gpio: pin %s: pull-up unsupported", p.name)
		}
		p.level = true
	case GPIOPullDown:
		if p.caps&GPIOCapPullDown == 0 {
			return fmt.Errorf("gpio: pin %s: pull-down unsupported", p.name)
		}
		p.level = false
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
	}

	p.mode = mode
	p.pull = pull
	return nil
}

func (p *virtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeInput && p.mode != GPIOModeOutput {
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	return p.level, nil
}

func (p *virtualPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	return nil
}

func (p *virtualPin) SetEdge(fn func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.caps&GPIOCapEdge == 0 {
		return fmt.Errorf("gpio: pin %s: edge interrupts unsupported", p.name)
	}
	p.onEdge = fn
	return nil
}

// drive sets the level from outside, as a switch contact would, and fires
// the edge callback when the level changes.
func (p *virtualPin) drive(level bool) {
	p.mu.Lock()
	if p.mode != GPIOModeInput || p.level == level {
		p.mu.Unlock()
		return
	}
	p.level = level
	fn := p.onEdge
	p.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// buttonBank turns four edge pins, in wiring order left, rotate, reset,
// right, into input.Lines. Edge masking is done in software: a disabled
// line still interrupts but the handler is not called.
type buttonBank struct {
	pins      [4]EdgePin
	activeLow bool
	enabled   atomic.Uint32
	handler   func(input.Mask)
}

var _ Buttons = (*buttonBank)(nil)

func newButtonBank(pins [4]EdgePin, activeLow bool) (*buttonBank, error) {
	b := &buttonBank{pins: pins, activeLow: activeLow}
	pull := GPIOPullDown
	if activeLow {
		pull = GPIOPullUp
	}
	for i, p := range pins {
		if p == nil {
			return nil, fmt.Errorf("gpio: button %d: no pin", i)
		}
		if err := p.Configure(GPIOModeInput, pull); err != nil {
			return nil, err
		}
		bit := input.Mask(1) << i
		if err := p.SetEdge(func() { b.edge(bit) }); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *buttonBank) SetEdgeHandler(fn func(input.Mask)) { b.handler = fn }

func (b *buttonBank) Sample() input.Mask {
	var m input.Mask
	for i, p := range b.pins {
		level, err := p.Read()
		if err != nil {
			continue
		}
		if level != b.activeLow {
			m |= input.Mask(1) << i
		}
	}
	return m
}

func (b *buttonBank) EnableEdges(m input.Mask) {
	for {
		old := b.enabled.Load()
		if b.enabled.CompareAndSwap(old, old|uint32(m)) {
			return
		}
	}
}

func (b *buttonBank) DisableEdges(m input.Mask) {
	for {
		old := b.enabled.Load()
		if b.enabled.CompareAndSwap(old, old&^uint32(m)) {
			return
		}
	}
}

func (b *buttonBank) edge(bit input.Mask) {
	if input.Mask(b.enabled.Load())&bit == 0 {
		return
	}
	if fn := b.handler; fn != nil {
		fn(bit)
	}
}
