package render

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const fontHeight = 8

// LCD implements Target on a Panel: a playfield of square blocks under a
// text line of hudHeight pixels, centred horizontally.
type LCD struct {
	panel Panel
	font  tinyfont.Fonter

	block int
	left  int
	top   int

	w, h int
}

var _ Target = (*LCD)(nil)

// NewLCD lays out a cols-wide field of block-pixel cells below hudHeight.
func NewLCD(p Panel, block, hudHeight, cols int) *LCD {
	w, h := p.Size()
	left := (int(w) - cols*block) / 2
	if left < 0 {
		left = 0
	}
	return &LCD{
		panel: p,
		font:  &proggy.TinySZ8pt7b,
		block: block,
		left:  left,
		top:   hudHeight,
		w:     int(w),
		h:     int(h),
	}
}

// Size returns the panel size in pixels.
func (l *LCD) Size() (w, h int) { return l.w, l.h }

// FieldOrigin returns the pixel position of cell (0, 0).
func (l *LCD) FieldOrigin() (x, y int) { return l.left, l.top }

// DrawBlock fills one cell, leaving a one pixel gap on its right and bottom
// edges so adjacent blocks stay distinguishable.
func (l *LCD) DrawBlock(col, row int, c color.RGBA) {
	if col < 0 || row < 0 {
		return
	}
	x := l.left + col*l.block
	y := l.top + row*l.block
	side := l.block - 1
	if side < 1 {
		side = 1
	}
	_ = l.panel.FillRectangle(int16(x), int16(y), int16(side), int16(side), c)
}

// ClearScreen fills the whole panel.
func (l *LCD) ClearScreen(c color.RGBA) {
	_ = l.panel.FillRectangle(0, 0, int16(l.w), int16(l.h), c)
}

// DrawText writes s with its top-left corner at (x, y) over a bg box.
func (l *LCD) DrawText(x, y int, s string, fg, bg color.RGBA) {
	_, width := tinyfont.LineWidth(l.font, s)
	if width > 0 {
		_ = l.panel.FillRectangle(int16(x), int16(y), int16(width), fontHeight+2, bg)
	}
	tinyfont.WriteLine(l.panel, l.font, int16(x), int16(y)+fontHeight, s, fg)
}

// TextWidth returns the rendered width of s in pixels.
func (l *LCD) TextWidth(s string) int {
	_, width := tinyfont.LineWidth(l.font, s)
	return int(width)
}

// Flush pushes buffered pixels to the screen.
func (l *LCD) Flush() error { return l.panel.Display() }

// Layout places the painter's labels for this screen.
func (l *LCD) Layout(cols, rows int) Layout {
	fieldW := cols * l.block
	bannerY := l.top + rows*l.block/2 - fontHeight
	return Layout{
		Score:  Point{X: 2, Y: 2},
		Banner: Point{X: l.left + (fieldW-l.TextWidth(gameOverText))/2, Y: bannerY},
		Hint:   Point{X: l.left + (fieldW-l.TextWidth(hintText))/2, Y: bannerY + fontHeight + 4},
	}
}
