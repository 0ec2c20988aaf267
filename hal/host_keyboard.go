//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.emit(KeyEvent{Press: true, Rune: r})
	}

	keys := []struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeyHome, KeyHome},
	}
	for _, kc := range keys {
		if inpututil.IsKeyJustPressed(kc.key) {
			k.emit(KeyEvent{Code: kc.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(kc.key) {
			k.emit(KeyEvent{Code: kc.code, Press: false})
		}
	}
}
