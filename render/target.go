// Package render draws engine snapshots on a block-addressed display.
//
// The painter runs in the idle loop only. It never touches the engine: it
// works from a tetris.Snapshot copied under a critical section.
package render

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Target is the drawing surface the painter needs.
//
// DrawBlock addresses the playfield in cells; DrawText addresses the whole
// screen in pixels.
type Target interface {
	DrawBlock(col, row int, c color.RGBA)
	ClearScreen(c color.RGBA)
	DrawText(x, y int, s string, fg, bg color.RGBA)
}

// Panel is a pixel display with a fast rectangle fill, as provided by the
// st7735 driver and the host framebuffer.
type Panel interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

var (
	Black  = color.RGBA{A: 0xFF}
	White  = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	Grey   = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	Yellow = color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF}
)
