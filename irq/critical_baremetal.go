//go:build tinygo && baremetal

package irq

import "runtime/interrupt"

// State is the saved interrupt mask.
type State = interrupt.State

// Disable masks interrupts globally and returns the previous mask.
func Disable() State { return interrupt.Disable() }

// Restore re-applies a mask returned by Disable.
func Restore(s State) { interrupt.Restore(s) }
