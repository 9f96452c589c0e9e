package app

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kvasov/ved/internal/editor"
)

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want editor.Key
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), editor.Key{Name: "esc"}},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), editor.Key{Name: "enter"}},
		{tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), editor.Key{Name: "backspace"}},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), editor.Key{Name: "backspace"}},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), editor.Key{Name: "up"}},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), editor.Key{Name: "down"}},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), editor.Key{Name: "tab", Rune: '\t'}},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), editor.Key{Name: "x", Rune: 'x'}},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), editor.Key{Name: "space", Rune: ' '}},
	}
	for _, c := range cases {
		got, ok := translateKey(c.ev)
		if !ok || got != c.want {
			t.Fatalf("translateKey(%v) = %+v, %v, want %+v, true", c.ev.Key(), got, ok, c.want)
		}
	}
}

func TestTranslateKeyDropsUnmapped(t *testing.T) {
	for _, key := range []tcell.Key{tcell.KeyF1, tcell.KeyCtrlA, tcell.KeyHome} {
		if _, ok := translateKey(tcell.NewEventKey(key, 0, tcell.ModNone)); ok {
			t.Fatalf("translateKey(%v) accepted, want dropped", key)
		}
	}
}
