//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// hostKeyboard holds the button pins down while their keys are held.
type hostKeyboard struct {
	pins [4]*virtualPin
	keys [4][]ebiten.Key
}

func newHostKeyboard(pins [4]*virtualPin) *hostKeyboard {
	return &hostKeyboard{
		pins: pins,
		keys: [4][]ebiten.Key{
			{ebiten.KeyArrowLeft, ebiten.KeyA},
			{ebiten.KeyArrowUp, ebiten.KeySpace, ebiten.KeyW},
			{ebiten.KeyR, ebiten.KeyBackspace},
			{ebiten.KeyArrowRight, ebiten.KeyD},
		},
	}
}

func (k *hostKeyboard) poll() {
	for i, keys := range k.keys {
		down := false
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				down = true
				break
			}
		}
		k.pins[i].drive(!down)
	}
}
