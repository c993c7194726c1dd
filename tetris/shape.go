package tetris

import "image/color"

// Offset is a block position relative to a piece anchor, in cells.
type Offset struct {
	DX int
	DY int
}

// Shape is an immutable catalog entry: four blocks and a display color.
type Shape struct {
	Name  string
	Cells [4]Offset
	Color color.RGBA
}

// Catalog is the fixed set of shapes a game draws from.
type Catalog []Shape

var (
	ColorRed    = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	ColorGreen  = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	ColorOrange = color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}
	ColorBlue   = color.RGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}
)

// DefaultCatalog returns the four historical shapes: square, line, L and T.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "square", Cells: [4]Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, Color: ColorRed},
		{Name: "line", Cells: [4]Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, Color: ColorGreen},
		{Name: "L", Cells: [4]Offset{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, Color: ColorOrange},
		{Name: "T", Cells: [4]Offset{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, Color: ColorBlue},
	}
}

// Rotate applies one of the four quarter-turn transforms to o.
// rot is taken modulo 4, so negative values rotate the other way.
func Rotate(o Offset, rot int) Offset {
	switch normRotation(rot) {
	case 1:
		return Offset{DX: -o.DY, DY: o.DX}
	case 2:
		return Offset{DX: -o.DX, DY: -o.DY}
	case 3:
		return Offset{DX: o.DY, DY: -o.DX}
	default:
		return o
	}
}

func normRotation(rot int) int {
	rot %= 4
	if rot < 0 {
		rot += 4
	}
	return rot
}

// Len returns the number of shapes in the catalog.
func (c Catalog) Len() int { return len(c) }

// RotatedCells returns the offsets of shape id at the given rotation.
func (c Catalog) RotatedCells(id, rot int) [4]Offset {
	base := c[id].Cells
	var out [4]Offset
	for i, o := range base {
		out[i] = Rotate(o, rot)
	}
	return out
}

// Color returns the display color of shape id.
func (c Catalog) Color(id int) color.RGBA {
	if id < 0 || id >= len(c) {
		return color.RGBA{}
	}
	return c[id].Color
}

// maxFieldCols bounds the search in MinCols.
const maxFieldCols = 256

// MinCols returns the narrowest field on which every shape, unrotated at the
// spawn column, lies inside the side walls.
func (c Catalog) MinCols() int {
	for cols := 1; cols < maxFieldCols; cols++ {
		if c.fitsWidth(cols) {
			return cols
		}
	}
	return maxFieldCols
}

func (c Catalog) fitsWidth(cols int) bool {
	anchor := spawnCol(cols)
	for _, shape := range c {
		for _, o := range shape.Cells {
			if col := anchor + o.DX; col < 0 || col >= cols {
				return false
			}
		}
	}
	return true
}

// MinRows returns the height of the tallest unrotated shape.
func (c Catalog) MinRows() int {
	rows := 0
	for _, shape := range c {
		top, bottom := shape.Cells[0].DY, shape.Cells[0].DY
		for _, o := range shape.Cells[1:] {
			top = min(top, o.DY)
			bottom = max(bottom, o.DY)
		}
		rows = max(rows, bottom-top+1)
	}
	return rows
}

// MaxSpawnRow returns the lowest anchor row at which every unrotated shape
// still lies above the floor of a field with the given number of rows.
func (c Catalog) MaxSpawnRow(rows int) int {
	deepest := 0
	for i, shape := range c {
		for j, o := range shape.Cells {
			if (i == 0 && j == 0) || o.DY > deepest {
				deepest = o.DY
			}
		}
	}
	return rows - 1 - deepest
}
