package tetris

import (
	"fmt"
	"image/color"

	"lcdtris/input"
)

// State is the game state machine position.
type State uint8

const (
	StateInit State = iota
	StateSpawning
	StateFalling
	StateLocking
	StateClearing
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateClearing:
		return "clearing"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// DefaultSpawnRow puts the anchor two rows above the field, as the firmware did.
const DefaultSpawnRow = -2

// Options configures an Engine.
type Options struct {
	Cols int
	Rows int

	// Catalog defaults to DefaultCatalog.
	Catalog Catalog

	LineBonus int
	// Speed defaults to SpeedCurveFor(LineBonus).
	Speed SpeedCurve

	Mode      Mode
	BagCopies int
	Seed      uint32

	// SpawnRow is the anchor row of new pieces; DefaultSpawnRow matches the firmware.
	SpawnRow int

	// ReseedOnReset draws a new seed from Entropy on every manual reset.
	ReseedOnReset bool
	Entropy       func() uint32
}

// Engine owns the whole game: board, falling piece, randomizer, score and state.
//
// It is not safe for concurrent use; callers serialize Tick and Handle.
type Engine struct {
	opts  Options
	cat   Catalog
	board *Board
	rng   *Randomizer

	piece Piece
	state State

	score int
	lines int

	generation uint32
	dirty      bool
}

// NewEngine builds an engine in StateInit. Invalid options panic.
func NewEngine(opts Options) *Engine {
	if opts.Catalog == nil {
		opts.Catalog = DefaultCatalog()
	}
	if len(opts.Catalog) == 0 {
		panic("tetris: empty shape catalog")
	}
	if opts.LineBonus < 0 {
		panic(fmt.Sprintf("tetris: negative line bonus %d", opts.LineBonus))
	}
	if opts.Speed.Base <= 0 {
		opts.Speed = SpeedCurveFor(opts.LineBonus)
	}
	e := &Engine{
		opts:  opts,
		cat:   opts.Catalog,
		board: NewBoard(opts.Cols, opts.Rows),
		rng:   NewRandomizer(len(opts.Catalog), opts.Mode, opts.BagCopies, opts.Seed),
		state: StateInit,
		dirty: true,
	}
	return e
}

func (e *Engine) Board() *Board      { return e.board }
func (e *Engine) Catalog() Catalog   { return e.cat }
func (e *Engine) State() State       { return e.state }
func (e *Engine) Score() int         { return e.score }
func (e *Engine) Lines() int         { return e.lines }
func (e *Engine) Piece() Piece       { return e.piece }
func (e *Engine) Generation() uint32 { return e.generation }

// Dirty reports whether anything visible changed since ClearDirty.
func (e *Engine) Dirty() bool { return e.dirty }

// ClearDirty acknowledges a redraw request.
func (e *Engine) ClearDirty() { e.dirty = false }

// TickInterval returns the number of timer ticks between gravity steps at the current score.
func (e *Engine) TickInterval() int { return e.opts.Speed.Interval(e.score) }

// Tick performs exactly one state transition.
func (e *Engine) Tick() {
	switch e.state {
	case StateInit:
		e.board.Reset()
		e.score = 0
		e.lines = 0
		e.generation++
		e.state = StateSpawning
		e.dirty = true

	case StateSpawning:
		e.spawn()

	case StateFalling:
		if e.piece.TryMove(e.board, e.cat, 0, 1) {
			e.dirty = true
			return
		}
		e.state = StateLocking

	case StateLocking:
		e.board.Commit(e.piece, e.cat)
		e.state = StateClearing
		e.dirty = true

	case StateClearing:
		n := e.board.ClearFullRows()
		if n > 0 {
			e.score += n * e.opts.LineBonus
			e.lines += n
			e.dirty = true
		}
		e.state = StateSpawning

	case StateGameOver:
	}
}

// Handle applies player commands. Movement is only accepted while a piece is
// falling; reset is accepted while falling and after game over.
func (e *Engine) Handle(cmd input.Command) {
	switch e.state {
	case StateFalling:
		cmd.Each(func(c input.Command) {
			if e.state != StateFalling {
				return
			}
			switch c {
			case input.CmdLeft:
				e.move(-1)
			case input.CmdRight:
				e.move(1)
			case input.CmdRotate:
				if e.piece.TryRotate(e.board, e.cat) {
					e.dirty = true
				}
			case input.CmdReset:
				e.reset()
			}
		})
	case StateGameOver:
		if cmd.Has(input.CmdReset) {
			e.reset()
		}
	}
}

func (e *Engine) move(dx int) {
	if e.piece.TryMove(e.board, e.cat, dx, 0) {
		e.dirty = true
	}
}

func (e *Engine) reset() {
	if e.opts.ReseedOnReset && e.opts.Entropy != nil {
		e.rng.Reseed(e.opts.Entropy())
	}
	e.state = StateInit
	e.dirty = true
}

// SpawnCol is the anchor column for new pieces.
func (e *Engine) SpawnCol() int { return spawnCol(e.board.Cols()) }

func spawnCol(cols int) int {
	col := cols/2 - 1
	if col < 0 {
		col = 0
	}
	return col
}

func (e *Engine) spawn() {
	p := Piece{
		Shape: e.rng.Next(),
		Col:   e.SpawnCol(),
		Row:   e.opts.SpawnRow,
	}
	e.dirty = true
	if !e.canEnter(p) {
		e.state = StateGameOver
		return
	}
	e.piece = p
	e.state = StateFalling
}

// canEnter checks the spawn position and the entry position, where the
// piece's top block sits on row 0. A blocked entry is game over.
func (e *Engine) canEnter(p Piece) bool {
	if !fits(e.board, e.cat, p) {
		return false
	}
	top := 0
	for i, o := range e.cat.RotatedCells(p.Shape, p.Rotation) {
		if i == 0 || o.DY < top {
			top = o.DY
		}
	}
	entry := p
	entry.Row = -top
	return fits(e.board, e.cat, entry)
}

// Snapshot is a copy of everything a renderer needs.
type Snapshot struct {
	State State
	Score int
	Lines int

	Cols  int
	Rows  int
	Cells []Cell

	PieceVisible bool
	Piece        [4]Point
	PieceColor   color.RGBA

	// Generation changes whenever the board is wiped.
	Generation uint32
}

// At returns the cell at (col, row) of the snapshot.
func (s *Snapshot) At(col, row int) Cell {
	if col < 0 || col >= s.Cols || row < 0 || row >= s.Rows {
		return emptyCell
	}
	return s.Cells[col*s.Rows+row]
}

// SnapshotInto fills dst, reusing its cell buffer when large enough.
func (e *Engine) SnapshotInto(dst *Snapshot) {
	n := len(e.board.cells)
	if cap(dst.Cells) < n {
		dst.Cells = make([]Cell, n)
	}
	dst.Cells = dst.Cells[:n]
	copy(dst.Cells, e.board.cells)

	dst.State = e.state
	dst.Score = e.score
	dst.Lines = e.lines
	dst.Cols = e.board.Cols()
	dst.Rows = e.board.Rows()
	dst.Generation = e.generation

	dst.PieceVisible = e.state == StateFalling || e.state == StateLocking
	if dst.PieceVisible {
		dst.Piece = e.piece.Cells(e.cat)
		dst.PieceColor = e.cat.Color(e.piece.Shape)
	} else {
		dst.Piece = [4]Point{}
		dst.PieceColor = color.RGBA{}
	}
}
