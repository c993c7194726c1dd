// Package irq provides the primitives shared between interrupt handlers and
// the idle loop: critical sections, a free-running tick counter and a frame
// latch.
//
// Handlers (timer and button edges) must wrap their whole body in
// Disable/Restore. The idle loop uses the same pair around the short copy of
// game state it renders from, and never mutates that state.
package irq
