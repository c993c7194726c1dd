//go:build !(tinygo && baremetal)

package irq

import "sync"

// State is a token returned by Disable. The host has no interrupt mask: a
// process-wide mutex serializes handler bodies and idle-loop reads instead,
// so critical sections must not nest.
type State struct{}

var global sync.Mutex

// Disable enters the critical section.
func Disable() State {
	global.Lock()
	return State{}
}

// Restore leaves the critical section.
func Restore(State) { global.Unlock() }
