package render

import (
	"image/color"
	"strconv"

	"lcdtris/tetris"
)

const (
	gameOverText = "GAME OVER"
	hintText     = "PRESS RESET"
)

// Point is a pixel position.
type Point struct {
	X, Y int
}

// Layout positions the text the painter draws.
type Layout struct {
	Score  Point
	Banner Point
	Hint   Point
}

// Palette holds the non-shape colors.
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	Banner     color.RGBA
}

// DefaultPalette is white text on black with a yellow banner.
func DefaultPalette() Palette {
	return Palette{Background: Black, Text: White, Banner: Yellow}
}

// Painter redraws only what changed since the previous frame.
//
// It keeps the color last drawn in every cell. A new board generation, a
// change of geometry and the switch into or out of game over repaint the
// whole screen.
type Painter struct {
	pal    Palette
	layout Layout

	shown []color.RGBA
	want  []color.RGBA
	cols  int
	rows  int

	valid    bool
	gen      uint32
	gameOver bool
	score    int
	lines    int
}

// NewPainter returns a painter that will fully repaint on its first frame.
func NewPainter(pal Palette, layout Layout) *Painter {
	return &Painter{pal: pal, layout: layout}
}

// Invalidate forces a full repaint on the next frame.
func (p *Painter) Invalidate() { p.valid = false }

// Paint draws s and returns the number of blocks drawn.
func (p *Painter) Paint(t Target, s *tetris.Snapshot) int {
	gameOver := s.State == tetris.StateGameOver
	full := !p.valid || s.Generation != p.gen || s.Cols != p.cols || s.Rows != p.rows || gameOver != p.gameOver
	if full {
		p.resize(s.Cols, s.Rows)
		t.ClearScreen(p.pal.Background)
		for i := range p.shown {
			p.shown[i] = p.pal.Background
		}
		p.valid = true
		p.gen = s.Generation
		p.gameOver = gameOver
	}

	p.compose(s)

	drawn := 0
	for col := 0; col < p.cols; col++ {
		for row := 0; row < p.rows; row++ {
			i := col*p.rows + row
			if p.want[i] == p.shown[i] {
				continue
			}
			t.DrawBlock(col, row, p.want[i])
			p.shown[i] = p.want[i]
			drawn++
		}
	}

	if full || s.Score != p.score || s.Lines != p.lines {
		label := "SCORE " + strconv.Itoa(s.Score) + "  LINES " + strconv.Itoa(s.Lines)
		t.DrawText(p.layout.Score.X, p.layout.Score.Y, label, p.pal.Text, p.pal.Background)
		p.score = s.Score
		p.lines = s.Lines
	}
	if full && gameOver {
		t.DrawText(p.layout.Banner.X, p.layout.Banner.Y, gameOverText, p.pal.Banner, p.pal.Background)
		t.DrawText(p.layout.Hint.X, p.layout.Hint.Y, hintText, p.pal.Text, p.pal.Background)
	}
	return drawn
}

func (p *Painter) resize(cols, rows int) {
	n := cols * rows
	if cap(p.shown) < n {
		p.shown = make([]color.RGBA, n)
		p.want = make([]color.RGBA, n)
	}
	p.shown = p.shown[:n]
	p.want = p.want[:n]
	p.cols = cols
	p.rows = rows
}

func (p *Painter) compose(s *tetris.Snapshot) {
	for i, c := range s.Cells[:len(p.want)] {
		if c.Empty() {
			p.want[i] = p.pal.Background
		} else {
			p.want[i] = c.Color
		}
	}
	if !s.PieceVisible {
		return
	}
	for _, pt := range s.Piece {
		if pt.Col < 0 || pt.Col >= p.cols || pt.Row < 0 || pt.Row >= p.rows {
			continue
		}
		p.want[pt.Col*p.rows+pt.Row] = s.PieceColor
	}
}
