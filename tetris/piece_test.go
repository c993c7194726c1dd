package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for id, shape := range DefaultCatalog() {
		for rot := 0; rot < 4; rot++ {
			for _, o := range shape.Cells {
				start := Rotate(o, rot)
				got := start
				for i := 0; i < 4; i++ {
					got = Rotate(got, 1)
				}
				assert.Equal(t, start, got, "shape %d rot %d offset %v", id, rot, o)
			}
		}
	}
}

func TestRotateMatchesTable(t *testing.T) {
	o := Offset{DX: 2, DY: 1}
	assert.Equal(t, Offset{DX: 2, DY: 1}, Rotate(o, 0))
	assert.Equal(t, Offset{DX: -1, DY: 2}, Rotate(o, 1))
	assert.Equal(t, Offset{DX: -2, DY: -1}, Rotate(o, 2))
	assert.Equal(t, Offset{DX: 1, DY: -2}, Rotate(o, 3))
	assert.Equal(t, Rotate(o, 3), Rotate(o, -1))
	assert.Equal(t, Rotate(o, 1), Rotate(o, 5))
}

func TestRotatedCellsComposesQuarterTurns(t *testing.T) {
	cat := DefaultCatalog()
	for id := range cat {
		prev := cat.RotatedCells(id, 0)
		for rot := 1; rot < 4; rot++ {
			cur := cat.RotatedCells(id, rot)
			for i := range cur {
				assert.Equal(t, Rotate(prev[i], 1), cur[i])
			}
			prev = cur
		}
	}
}

func TestPieceCells(t *testing.T) {
	cat := DefaultCatalog()
	p := Piece{Shape: 3, Col: 4, Row: 2}
	assert.Equal(t, [4]Point{{5, 2}, {4, 3}, {5, 3}, {6, 3}}, p.Cells(cat))
}

func TestTryMoveSquareFallsTwentyRows(t *testing.T) {
	b := NewBoard(10, 20)
	cat := DefaultCatalog()
	p := Piece{Shape: 0, Col: 4, Row: DefaultSpawnRow}

	for i := 1; i <= 20; i++ {
		require.True(t, p.TryMove(b, cat, 0, 1), "move %d", i)
	}
	assert.Equal(t, 18, p.Row)

	before := p
	assert.False(t, p.TryMove(b, cat, 0, 1), "21st move hits the floor")
	assert.Equal(t, before, p)
}

func TestTryMoveRespectsWallsAndBlocks(t *testing.T) {
	b := NewBoard(10, 20)
	cat := DefaultCatalog()

	p := Piece{Shape: 0, Col: 0, Row: 5}
	before := p
	assert.False(t, p.TryMove(b, cat, -1, 0))
	assert.Equal(t, before, p)

	p = Piece{Shape: 0, Col: 8, Row: 5}
	before = p
	assert.False(t, p.TryMove(b, cat, 1, 0))
	assert.Equal(t, before, p)

	b.Set(3, 6, block(1))
	p = Piece{Shape: 0, Col: 4, Row: 5}
	before = p
	assert.False(t, p.TryMove(b, cat, -1, 0))
	assert.Equal(t, before, p)
	assert.True(t, p.TryMove(b, cat, 1, 0))
	assert.Equal(t, 5, p.Col)
}

func TestTryMoveAllowsCellsAboveField(t *testing.T) {
	b := NewBoard(10, 20)
	cat := DefaultCatalog()
	p := Piece{Shape: 1, Rotation: 1, Col: 0, Row: -4}
	assert.True(t, p.TryMove(b, cat, 1, 0))
	assert.True(t, p.TryMove(b, cat, 0, 1))
	assert.Equal(t, Piece{Shape: 1, Rotation: 1, Col: 1, Row: -3}, p)
}

func TestTryRotateFailsWithoutKick(t *testing.T) {
	b := NewBoard(10, 20)
	cat := DefaultCatalog()

	// The L piece at column 0 rotates its blocks to negative columns.
	p := Piece{Shape: 2, Col: 0, Row: 5}
	before := p
	assert.False(t, p.TryRotate(b, cat))
	assert.Equal(t, before, p)

	p.Col = 3
	require.True(t, p.TryRotate(b, cat))
	assert.Equal(t, 1, p.Rotation)

	for i := 0; i < 3; i++ {
		require.True(t, p.TryRotate(b, cat))
	}
	assert.Equal(t, 0, p.Rotation, "rotation wraps mod 4")
}

func TestTryRotateBlockedByBoard(t *testing.T) {
	b := NewBoard(10, 20)
	cat := DefaultCatalog()

	// rot1 of the line occupies rows 5..8 at column 4.
	b.Set(4, 7, block(0))
	p := Piece{Shape: 1, Col: 4, Row: 5}
	before := p
	assert.False(t, p.TryRotate(b, cat))
	assert.Equal(t, before, p)
}

func TestCatalogFieldBounds(t *testing.T) {
	cat := DefaultCatalog()
	assert.Equal(t, 5, cat.MinCols())
	assert.Equal(t, 2, cat.MinRows())
	assert.Equal(t, 16, cat.MaxSpawnRow(18))

	line := Catalog{cat[1]}
	e := NewEngine(Options{Cols: 5, Rows: 4, Catalog: line, SpawnRow: line.MaxSpawnRow(4)})
	e.Tick()
	e.Tick()
	assert.Equal(t, StateFalling, e.State(), "line enters the narrowest field")

	narrow := NewEngine(Options{Cols: 4, Rows: 4, Catalog: line})
	narrow.Tick()
	narrow.Tick()
	assert.Equal(t, StateGameOver, narrow.State(), "line cannot spawn inside the walls")
}
