package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcdtris/input"
	"lcdtris/tetris"
)

type fakeTarget struct {
	clears int
	blocks map[[2]int]color.RGBA
	texts  []string
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{blocks: map[[2]int]color.RGBA{}}
}

func (f *fakeTarget) DrawBlock(col, row int, c color.RGBA) { f.blocks[[2]int{col, row}] = c }

func (f *fakeTarget) ClearScreen(color.RGBA) {
	f.clears++
	f.blocks = map[[2]int]color.RGBA{}
}

func (f *fakeTarget) DrawText(_, _ int, s string, _, _ color.RGBA) { f.texts = append(f.texts, s) }

func squareEngine() *tetris.Engine {
	return tetris.NewEngine(tetris.Options{
		Cols:      10,
		Rows:      20,
		Catalog:   tetris.Catalog{tetris.DefaultCatalog()[0]},
		LineBonus: 5,
		SpawnRow:  tetris.DefaultSpawnRow,
	})
}

func paint(p *Painter, tgt Target, e *tetris.Engine, s *tetris.Snapshot) int {
	e.SnapshotInto(s)
	return p.Paint(tgt, s)
}

func TestPainterFirstFrameIsFull(t *testing.T) {
	e := squareEngine()
	e.Tick()
	e.Tick()
	var s tetris.Snapshot
	tgt := newFakeTarget()
	p := NewPainter(DefaultPalette(), Layout{})

	assert.Equal(t, 0, paint(p, tgt, e, &s), "piece is still above the field")
	assert.Equal(t, 1, tgt.clears)
	require.Len(t, tgt.texts, 1)
	assert.Equal(t, "SCORE 0  LINES 0", tgt.texts[0])

	assert.Equal(t, 0, paint(p, tgt, e, &s), "nothing changed")
	assert.Equal(t, 1, tgt.clears)
	assert.Len(t, tgt.texts, 1, "label not redrawn")
}

func TestPainterRedrawsOnlyChangedCells(t *testing.T) {
	e := squareEngine()
	e.Tick()
	e.Tick()
	var s tetris.Snapshot
	tgt := newFakeTarget()
	p := NewPainter(DefaultPalette(), Layout{})
	paint(p, tgt, e, &s)

	e.Tick()
	assert.Equal(t, 2, paint(p, tgt, e, &s), "bottom half enters row 0")
	e.Tick()
	assert.Equal(t, 2, paint(p, tgt, e, &s))
	e.Tick()
	assert.Equal(t, 4, paint(p, tgt, e, &s), "two erased, two drawn")

	e.Handle(input.CmdLeft)
	assert.Equal(t, 4, paint(p, tgt, e, &s))
	assert.Equal(t, tetris.ColorRed, tgt.blocks[[2]int{3, 1}])
	assert.Equal(t, Black, tgt.blocks[[2]int{5, 1}])
	assert.Equal(t, 1, tgt.clears)
}

func TestPainterResetRepaintsEverything(t *testing.T) {
	e := squareEngine()
	e.Tick()
	e.Tick()
	var s tetris.Snapshot
	tgt := newFakeTarget()
	p := NewPainter(DefaultPalette(), Layout{})
	paint(p, tgt, e, &s)

	e.Handle(input.CmdReset)
	e.Tick()
	paint(p, tgt, e, &s)
	assert.Equal(t, 2, tgt.clears, "new generation clears the screen")

	p.Invalidate()
	paint(p, tgt, e, &s)
	assert.Equal(t, 3, tgt.clears)
}

func TestPainterGameOverBanner(t *testing.T) {
	e := squareEngine()
	e.Tick()
	e.Board().Set(4, 0, tetris.Cell{Shape: 0, Color: tetris.ColorRed})
	e.Tick()
	require.Equal(t, tetris.StateGameOver, e.State())

	var s tetris.Snapshot
	tgt := newFakeTarget()
	p := NewPainter(DefaultPalette(), Layout{})
	assert.Equal(t, 1, paint(p, tgt, e, &s), "only the blocking cell is on the board")
	assert.Contains(t, strings.Join(tgt.texts, "\n"), gameOverText)

	tgt.texts = nil
	paint(p, tgt, e, &s)
	assert.Empty(t, tgt.texts, "frozen screen is not redrawn")
}
