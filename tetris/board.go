package tetris

import (
	"fmt"
	"image/color"
)

// NoShape marks an empty cell.
const NoShape int8 = -1

// Cell is one grid position: empty, or occupied by a block of some shape.
type Cell struct {
	Shape int8
	Color color.RGBA
}

// Empty reports whether the cell holds no block.
func (c Cell) Empty() bool { return c.Shape == NoShape }

var emptyCell = Cell{Shape: NoShape}

// Board is the fixed-size occupancy grid, indexed [col][row] with row 0 at the top.
type Board struct {
	cols  int
	rows  int
	cells []Cell
}

// NewBoard allocates an empty cols x rows board.
//
// Non-positive dimensions are a configuration error and panic.
func NewBoard(cols, rows int) *Board {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("tetris: invalid board geometry %dx%d", cols, rows))
	}
	b := &Board{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
	b.Reset()
	return b
}

func (b *Board) Cols() int { return b.cols }
func (b *Board) Rows() int { return b.rows }

func (b *Board) index(col, row int) int { return col*b.rows + row }

func (b *Board) inside(col, row int) bool {
	return col >= 0 && col < b.cols && row >= 0 && row < b.rows
}

// At returns the cell at (col, row). Positions outside the grid read as empty.
func (b *Board) At(col, row int) Cell {
	if !b.inside(col, row) {
		return emptyCell
	}
	return b.cells[b.index(col, row)]
}

// Set overwrites the cell at (col, row). Positions outside the grid are ignored.
func (b *Board) Set(col, row int, c Cell) {
	if !b.inside(col, row) {
		return
	}
	b.cells[b.index(col, row)] = c
}

// IsOccupied reports whether a block may not be placed at (col, row).
//
// The side walls and the floor count as occupied. Rows above the field
// (row < 0) are always free so a piece can spawn partially hidden.
func (b *Board) IsOccupied(col, row int) bool {
	if col < 0 || col >= b.cols || row >= b.rows {
		return true
	}
	if row < 0 {
		return false
	}
	return !b.cells[b.index(col, row)].Empty()
}

// Commit writes the piece's blocks into the grid. Blocks above the field are dropped.
func (b *Board) Commit(p Piece, cat Catalog) {
	c := Cell{Shape: int8(p.Shape), Color: cat.Color(p.Shape)}
	for _, pt := range p.Cells(cat) {
		if !b.inside(pt.Col, pt.Row) {
			continue
		}
		b.cells[b.index(pt.Col, pt.Row)] = c
	}
}

// RowFull reports whether every column of row is occupied.
func (b *Board) RowFull(row int) bool {
	if row < 0 || row >= b.rows {
		return false
	}
	for col := 0; col < b.cols; col++ {
		if b.cells[b.index(col, row)].Empty() {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above it down and
// inserting empty rows at the top. It returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for row := b.rows - 1; row >= 0; {
		if !b.RowFull(row) {
			row--
			continue
		}
		b.collapse(row)
		cleared++
		// The row above has moved into this index; examine it again.
	}
	return cleared
}

func (b *Board) collapse(row int) {
	for col := 0; col < b.cols; col++ {
		base := col * b.rows
		copy(b.cells[base+1:base+row+1], b.cells[base:base+row])
		b.cells[base] = emptyCell
	}
}

// Reset empties every cell.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = emptyCell
	}
}

// OccupiedCount returns the number of occupied cells.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, c := range b.cells {
		if !c.Empty() {
			n++
		}
	}
	return n
}
