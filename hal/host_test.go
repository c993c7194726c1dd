//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"lcdtris/input"
	"lcdtris/render"
)

func TestHostFramebufferFill(t *testing.T) {
	fb := newHostFramebuffer(8, 4)
	if err := fb.FillRectangle(-2, 1, 4, 10, render.White); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	want := rgb565(render.White.R, render.White.G, render.White.B)
	if got := fb.pixel(1, 3); got != want {
		t.Fatalf("pixel(1,3) = %#04x, want %#04x", got, want)
	}
	if got := fb.pixel(2, 1); got != 0 {
		t.Fatalf("pixel(2,1) = %#04x, want 0 (outside the rectangle)", got)
	}
	if got := fb.pixel(1, 0); got != 0 {
		t.Fatalf("pixel(1,0) = %#04x, want 0", got)
	}

	fb.SetPixel(7, 3, render.Yellow)
	fb.SetPixel(8, 3, render.Yellow)
	if got := fb.pixel(7, 3); got == 0 {
		t.Fatal("SetPixel did not write")
	}
	if err := fb.Display(); err != nil || fb.presents != 1 {
		t.Fatalf("Display() = %v, presents = %d", err, fb.presents)
	}
}

func TestHostTimeDropsWhenFull(t *testing.T) {
	ht := newHostTime(100)
	ht.stepN(uint64(cap(ht.ch) + 10))
	if got := len(ht.ch); got != cap(ht.ch) {
		t.Fatalf("len(ticks) = %d, want %d", got, cap(ht.ch))
	}
	if first := <-ht.Ticks(); first != 1 {
		t.Fatalf("first tick = %d, want 1", first)
	}
}

func TestHostButtonsFollowPress(t *testing.T) {
	var buf bytes.Buffer
	h, err := newHost(Config{}, &buf)
	if err != nil {
		t.Fatalf("newHost: %v", err)
	}
	var edges input.Mask
	h.Buttons().SetEdgeHandler(func(m input.Mask) { edges |= m })
	h.Buttons().EnableEdges(input.All)

	h.press(1, true)
	if got := h.Buttons().Sample(); got != input.Rotate {
		t.Fatalf("Sample() = %04b, want rotate", got)
	}
	h.press(1, false)
	if edges != input.Rotate {
		t.Fatalf("edges = %04b, want rotate", edges)
	}

	h.Logger().WriteLineString("hello")
	if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "lcdtris") {
		t.Fatalf("log output = %q, want prefixed line", buf.String())
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	h, err := newHost(Config{Hz: 1000}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("newHost: %v", err)
	}
	steps := 0
	err = runHeadless(context.Background(), h, HeadlessConfig{Ticks: 25, Fast: true}, func() error {
		steps++
		<-h.Time().Ticks()
		return nil
	})
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if steps != 25 {
		t.Fatalf("steps = %d, want 25", steps)
	}
}

func TestRunHeadlessHonoursContext(t *testing.T) {
	h, err := newHost(Config{}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("newHost: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runHeadless(ctx, h, HeadlessConfig{Fast: true}, nil); err != context.Canceled {
		t.Fatalf("runHeadless() = %v, want context.Canceled", err)
	}
}
