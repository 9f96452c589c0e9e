package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kvasov/ved/internal/editor"
)

// translateKey decodes a terminal key event into the core's
// (name, character) form. ok=false means the key has no core meaning
// and is dropped.
func translateKey(ev *tcell.EventKey) (editor.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return editor.Key{Name: "esc"}, true
	case tcell.KeyEnter:
		return editor.Key{Name: "enter"}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.Key{Name: "backspace"}, true
	case tcell.KeyUp:
		return editor.Key{Name: "up"}, true
	case tcell.KeyDown:
		return editor.Key{Name: "down"}, true
	case tcell.KeyLeft:
		return editor.Key{Name: "left"}, true
	case tcell.KeyRight:
		return editor.Key{Name: "right"}, true
	case tcell.KeyTab:
		return editor.Key{Name: "tab", Rune: '\t'}, true
	case tcell.KeyRune:
		return editor.CharKey(ev.Rune()), true
	}
	return editor.Key{}, false
}
