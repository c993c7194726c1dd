// Package app wires the HAL to the game: the timer and button handlers that
// drive the engine, and the idle loop that paints what they changed.
package app

import (
	"context"
	"fmt"

	"lcdtris/config"
	"lcdtris/hal"
	"lcdtris/input"
	"lcdtris/internal/buildinfo"
	"lcdtris/irq"
	"lcdtris/render"
	"lcdtris/tetris"
)

// System owns one running game.
//
// OnTimer and OnButtons are the interrupt handlers. They do all game work
// inside a critical section. Frame is the idle-loop body: it only copies a
// snapshot under the critical section and paints outside it.
type System struct {
	h   hal.HAL
	cfg config.Config

	engine   *tetris.Engine
	debounce *input.Debouncer
	latch    *irq.Latch
	ticks    irq.Counter
	gravity  int

	lcd     *render.LCD
	painter *render.Painter
	snap    tetris.Snapshot
	seen    uint32
	last    status
}

type status struct {
	state tetris.State
	score int
	lines int
	gen   uint32
}

// New builds the system and enables button edges. It panics on an invalid
// configuration; Start turns that into the fatal screen.
func New(h hal.HAL, cfg config.Config) *System {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	s := &System{h: h, cfg: cfg, latch: irq.NewLatch()}

	seed := h.Entropy().Seed()
	s.engine = tetris.NewEngine(cfg.EngineOptions(seed, s.reseed))

	cols, rows := cfg.Geometry()
	s.lcd = render.NewLCD(h.Panel(), cfg.Display.BlockSize, cfg.Display.HUDHeight, cols)
	s.painter = render.NewPainter(render.DefaultPalette(), s.lcd.Layout(cols, rows))

	h.Buttons().SetEdgeHandler(s.OnButtons)
	s.debounce = input.NewDebouncer(h.Buttons(), cfg.DebounceConfig())

	h.Logger().WriteLineString(fmt.Sprintf("%s: field %dx%d, %s randomizer, seed %d, %d Hz",
		buildinfo.String(), cols, rows, cfg.Game.Randomizer, cfg.EngineOptions(seed, nil).Seed, cfg.Timer.Hz))

	s.latch.Notify()
	return s
}

func (s *System) reseed() uint32 {
	return s.ticks.Mix(s.h.Entropy().Seed())
}

// OnTimer is the periodic tick handler.
func (s *System) OnTimer() {
	st := irq.Disable()
	defer irq.Restore(st)

	s.ticks.Inc()
	s.debounce.Tick()
	if cmd := s.debounce.Poll(); cmd != 0 {
		s.engine.Handle(cmd)
	}

	s.gravity++
	if s.gravity >= s.engine.TickInterval() {
		s.gravity = 0
		s.engine.Tick()
	}

	if s.engine.Dirty() {
		s.engine.ClearDirty()
		s.latch.Notify()
	}
}

// OnButtons is the button edge handler. It only arms the debouncer.
func (s *System) OnButtons(m input.Mask) {
	st := irq.Disable()
	defer irq.Restore(st)
	s.debounce.Edge(m)
}

// Frame repaints if anything changed since the previous frame and reports
// whether it did.
func (s *System) Frame() bool {
	seq, changed := s.latch.Changed(s.seen)
	if !changed {
		return false
	}

	st := irq.Disable()
	s.engine.SnapshotInto(&s.snap)
	irq.Restore(st)
	s.seen = seq

	s.painter.Paint(s.lcd, &s.snap)
	if err := s.lcd.Flush(); err != nil {
		s.h.Logger().WriteLineString("display: " + err.Error())
		s.painter.Invalidate()
	}
	s.report()
	return true
}

// report logs game events seen between two frames.
func (s *System) report() {
	cur := status{state: s.snap.State, score: s.snap.Score, lines: s.snap.Lines, gen: s.snap.Generation}
	prev := s.last
	s.last = cur

	l := s.h.Logger()
	if cur.gen != prev.gen {
		l.WriteLineString(fmt.Sprintf("game %d started", cur.gen))
	}
	if cur.score != prev.score || cur.lines != prev.lines {
		l.WriteLineString(fmt.Sprintf("score %d lines %d", cur.score, cur.lines))
	}
	if cur.state == tetris.StateGameOver && prev.state != tetris.StateGameOver {
		l.WriteLineString(fmt.Sprintf("game over: score %d lines %d", cur.score, cur.lines))
	}
}

// Step delivers every pending timer tick, then runs one idle-loop frame.
// The host runners call it once per update.
func (s *System) Step() error {
	ticks := s.h.Time().Ticks()
	for {
		select {
		case <-ticks:
			s.OnTimer()
		default:
			s.Frame()
			return nil
		}
	}
}

// Run services the timer from its own goroutine and runs the idle loop until
// ctx ends. The LED is off while the idle loop waits for a wakeup.
func (s *System) Run(ctx context.Context) error {
	ticks := s.h.Time().Ticks()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticks:
				s.OnTimer()
			}
		}
	}()

	led := s.h.LED()
	for {
		s.Frame()
		led.Low()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.latch.Wake():
		}
		led.High()
	}
}

// Stats is a consistent view of the game for callers outside the handlers.
type Stats struct {
	State tetris.State
	Score int
	Lines int
	Ticks uint64

	// Buttons is the last settled set of held buttons.
	Buttons  input.Mask
	Settling bool
}

// Stats reads the current game state.
func (s *System) Stats() Stats {
	st := irq.Disable()
	defer irq.Restore(st)
	return Stats{
		State: s.engine.State(),
		Score: s.engine.Score(),
		Lines: s.engine.Lines(),
		Ticks: s.ticks.Load(),

		Buttons:  s.debounce.Pressed(),
		Settling: s.debounce.Settling(),
	}
}

// Start builds the system. A panic during setup is logged, painted on the
// fatal screen and returned as an error.
func Start(h hal.HAL, cfg config.Config) (s *System, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = showFatal(h, r)
		}
	}()
	return New(h, cfg), nil
}

// Run starts the game and never returns (TinyGo entrypoint).
func Run(h hal.HAL, cfg config.Config) {
	s, err := Start(h, cfg)
	if err == nil {
		err = s.Run(context.Background())
	}
	h.Logger().WriteLineString("lcdtris: halted: " + err.Error())
	select {}
}
