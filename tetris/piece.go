package tetris

// Point is an absolute grid position.
type Point struct {
	Col int
	Row int
}

// Piece is the falling tetromino: a shape at an anchor and rotation.
// Row may be negative while the piece is still above the field.
type Piece struct {
	Shape    int
	Rotation int
	Col      int
	Row      int
}

// Cells returns the absolute positions of the piece's four blocks.
func (p Piece) Cells(cat Catalog) [4]Point {
	var out [4]Point
	for i, o := range cat.RotatedCells(p.Shape, p.Rotation) {
		out[i] = Point{Col: p.Col + o.DX, Row: p.Row + o.DY}
	}
	return out
}

func fits(b *Board, cat Catalog, p Piece) bool {
	for _, pt := range p.Cells(cat) {
		if b.IsOccupied(pt.Col, pt.Row) {
			return false
		}
	}
	return true
}

// TryMove shifts the piece by (dx, dy) if every block lands on a free cell.
// On failure the piece is left untouched.
func (p *Piece) TryMove(b *Board, cat Catalog, dx, dy int) bool {
	next := *p
	next.Col += dx
	next.Row += dy
	if !fits(b, cat, next) {
		return false
	}
	*p = next
	return true
}

// TryRotate turns the piece a quarter clockwise in place. There are no wall
// kicks: the rotation fails if any resulting block is blocked.
func (p *Piece) TryRotate(b *Board, cat Catalog) bool {
	next := *p
	next.Rotation = normRotation(p.Rotation + 1)
	if !fits(b, cat, next) {
		return false
	}
	*p = next
	return true
}
