//go:build !tinygo && !cgo

package hal

type hostKeyboard struct{}

func newHostKeyboard([4]*virtualPin) *hostKeyboard { return &hostKeyboard{} }

func (k *hostKeyboard) poll() {
	// No keyboard support without the window backend.
}
