package input

// Config sets the debounce timing in timer ticks.
type Config struct {
	// SettleTicks is the quiet window between an edge and the sample that follows it.
	SettleTicks int
	// LongPressTicks is how long rotate must be held to emit CmdReset instead of CmdRotate.
	LongPressTicks int
}

// TicksFor converts a millisecond duration to ticks at hz, rounding up.
func TicksFor(ms, hz int) int {
	if ms <= 0 || hz <= 0 {
		return 1
	}
	n := (ms*hz + 999) / 1000
	if n < 1 {
		n = 1
	}
	return n
}

// Debouncer implements the edge-arm, settle-on-tick pattern.
//
// Edge is called from the button interrupt: it masks the lines that fired and
// arms the settle window. Tick is called from the timer interrupt: once the
// window has elapsed it samples every line once, emits commands for newly
// pressed buttons and unmasks the lines again. Nothing blocks or spins.
//
// Rotate is special: a release before LongPressTicks emits CmdRotate, a hold
// reaching LongPressTicks emits CmdReset once and suppresses the rotate.
type Debouncer struct {
	lines Lines
	cfg   Config

	armed  Mask
	settle int

	stable Mask

	hold      int
	longFired bool

	pending Command
}

var _ Source = (*Debouncer)(nil)

// NewDebouncer takes the current line levels as the settled state and
// enables edge interrupts on all lines.
func NewDebouncer(lines Lines, cfg Config) *Debouncer {
	if cfg.SettleTicks < 1 {
		cfg.SettleTicks = 1
	}
	if cfg.LongPressTicks < 1 {
		cfg.LongPressTicks = 1
	}
	d := &Debouncer{lines: lines, cfg: cfg}
	d.stable = lines.Sample() & All
	lines.EnableEdges(All)
	return d
}

// Edge records an edge on the lines in m.
func (d *Debouncer) Edge(m Mask) {
	m &= All
	if m == 0 {
		return
	}
	d.lines.DisableEdges(m)
	d.armed |= m
	d.settle = d.cfg.SettleTicks
}

// Tick advances the settle window and the long-press counter by one tick.
func (d *Debouncer) Tick() {
	switch {
	case d.armed != 0:
		d.settle--
		if d.settle <= 0 {
			d.resolve()
		}
	default:
		// An edge lost while the lines were masked still shows up as a
		// level that disagrees with the settled state.
		if raw := d.lines.Sample() & All; raw != d.stable {
			d.Edge(raw ^ d.stable)
		}
	}
	d.trackHold()
}

func (d *Debouncer) resolve() {
	pressed := d.lines.Sample() & All
	rising := pressed &^ d.stable
	falling := d.stable &^ pressed
	d.stable = pressed

	if rising&Left != 0 {
		d.pending |= CmdLeft
	}
	if rising&Right != 0 {
		d.pending |= CmdRight
	}
	if rising&Reset != 0 {
		d.pending |= CmdReset
	}
	if rising&Rotate != 0 {
		d.hold = 0
		d.longFired = false
	}
	if falling&Rotate != 0 {
		if !d.longFired {
			d.pending |= CmdRotate
		}
		d.hold = 0
		d.longFired = false
	}

	armed := d.armed
	d.armed = 0
	d.settle = 0
	d.lines.EnableEdges(armed)
}

func (d *Debouncer) trackHold() {
	if d.stable&Rotate == 0 {
		d.hold = 0
		return
	}
	if d.longFired {
		return
	}
	d.hold++
	if d.hold >= d.cfg.LongPressTicks {
		d.longFired = true
		d.pending |= CmdReset
	}
}

// Poll returns and clears the pending commands.
func (d *Debouncer) Poll() Command {
	c := d.pending
	d.pending = 0
	return c
}

// Pressed returns the last settled set of held lines.
func (d *Debouncer) Pressed() Mask { return d.stable }

// Settling reports whether an edge is waiting for its settle window.
func (d *Debouncer) Settling() bool { return d.armed != 0 }
