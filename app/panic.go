package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"lcdtris/hal"
	"lcdtris/render"
)

// showFatal logs v line by line, paints it black on white and returns it as
// an error.
func showFatal(h hal.HAL, v any) error {
	err := fmt.Errorf("fatal: %v", v)

	lines := []string{"lcdtris fatal:"}
	lines = append(lines, strings.Split(fmt.Sprint(v), "\n")...)

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	panel := h.Panel()
	if panel == nil {
		return err
	}
	lcd := render.NewLCD(panel, 1, 0, 0)
	w, ht := lcd.Size()
	lcd.ClearScreen(render.White)

	charW := lcd.TextWidth("0")
	if charW <= 0 {
		_ = lcd.Flush()
		return err
	}
	cols := w / charW
	if cols <= 0 {
		cols = 1
	}

	const lineHeight = 10
	y := 2
	for _, line := range lines {
		for len(line) > 0 {
			if y+lineHeight > ht {
				_ = lcd.Flush()
				return err
			}
			chunk, rest := takeRunes(line, cols)
			lcd.DrawText(0, y, chunk, render.Black, render.White)
			y += lineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = lcd.Flush()
	return err
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
