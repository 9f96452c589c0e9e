package editor

import (
	"strings"
	"testing"
)

func TestFrameGutterLabels(t *testing.T) {
	e := newTestEditor("a", "b", "c", "d", "e")
	e.cursor = Cursor{Row: 2}
	fr := e.Frame(20, 6)
	if fr.GutterWidth != 4 {
		t.Fatalf("gutterWidth = %d, want 4", fr.GutterWidth)
	}
	if len(fr.Rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(fr.Rows))
	}
	// Cursor row shows its absolute number, others their distance.
	want := []string{"  2 ", "  1 ", "  3 ", "  1 ", "  2 "}
	for i, row := range fr.Rows {
		if row.Gutter != want[i] {
			t.Fatalf("gutter[%d] = %q, want %q", i, row.Gutter, want[i])
		}
	}
	if !fr.Rows[2].Active || fr.Rows[1].Active {
		t.Fatalf("active flags wrong: %+v", fr.Rows)
	}
}

func TestFrameScrollFollowsCursor(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = strings.Repeat("x", i+1)
	}
	e := newTestEditor(lines...)
	e.cursor = Cursor{Row: 9}
	fr := e.Frame(20, 4)
	if e.scroll != 7 {
		t.Fatalf("scroll = %d, want 7", e.scroll)
	}
	if len(fr.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(fr.Rows))
	}
	if fr.CursorRow != 2 {
		t.Fatalf("cursorRow = %d, want 2", fr.CursorRow)
	}
	// Shrinking the view keeps the cursor inside it.
	fr = e.Frame(20, 2)
	if fr.CursorRow != 0 || e.scroll != 9 {
		t.Fatalf("cursorRow = %d scroll = %d, want 0 and 9", fr.CursorRow, e.scroll)
	}
}

func TestFrameTruncatesLongLines(t *testing.T) {
	e := newTestEditor(strings.Repeat("w", 50))
	fr := e.Frame(10, 2)
	text := fr.Rows[0].Text
	if len(text) != 10-fr.GutterWidth {
		t.Fatalf("text = %q (%d), want width %d", text, len(text), 10-fr.GutterWidth)
	}
}

func TestFrameCursorColumn(t *testing.T) {
	e := newTestEditor("abcdef")
	e.cursor = Cursor{Row: 0, Col: 3}
	fr := e.Frame(20, 2)
	if fr.CursorCol != fr.GutterWidth+3 {
		t.Fatalf("cursorCol = %d, want %d", fr.CursorCol, fr.GutterWidth+3)
	}
	// Never past the right edge.
	e.cursor = Cursor{Row: 0, Col: 6}
	fr = e.Frame(8, 2)
	if fr.CursorCol != 7 {
		t.Fatalf("cursorCol = %d, want clamped to 7", fr.CursorCol)
	}
}

func TestStatusLineSegments(t *testing.T) {
	e := newTestEditor("a")
	got := e.statusLine(60)
	if len([]rune(got)) != 60 {
		t.Fatalf("status width = %d, want 60", len([]rune(got)))
	}
	if !strings.HasPrefix(got, " NORMAL | [No Name] ") {
		t.Fatalf("status = %q, want mode and name on the left", got)
	}
	if !strings.HasSuffix(got, " Ln 1, Col 1 ") {
		t.Fatalf("status = %q, want position on the right", got)
	}
}

func TestStatusLineMessageAndBranch(t *testing.T) {
	e := newTestEditor("a")
	e.buffer.SetContent("/tmp/note.txt", []byte("a"))
	e.buffer.InsertRune(0, 0, 'x')
	e.SetBranch("main")
	e.setStatus("written /tmp/note.txt")
	got := e.statusLine(80)
	if !strings.Contains(got, "note.txt*") {
		t.Fatalf("status = %q, want dirty marker on name", got)
	}
	if !strings.Contains(got, "| written /tmp/note.txt ") {
		t.Fatalf("status = %q, want message segment", got)
	}
	if !strings.HasSuffix(got, "| main ") {
		t.Fatalf("status = %q, want branch on the right", got)
	}
}

func TestComposeStatusLine(t *testing.T) {
	if got := composeStatusLine("ab", "cd", 8); got != "ab    cd" {
		t.Fatalf("got %q, want %q", got, "ab    cd")
	}
	// Left trims first when space runs out.
	if got := composeStatusLine("abcdef", "xy", 6); got != "abcdxy" {
		t.Fatalf("got %q, want %q", got, "abcdxy")
	}
	// Then the right keeps only its tail.
	if got := composeStatusLine("abc", "wxyz", 2); got != "yz" {
		t.Fatalf("got %q, want %q", got, "yz")
	}
	if got := composeStatusLine("a", "b", 0); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestFrameHintsOnlyInLeaderMode(t *testing.T) {
	e := newTestEditor("a")
	fr := e.Frame(40, 10)
	if len(fr.Hints) != 0 {
		t.Fatalf("hints = %v, want none in normal mode", fr.Hints)
	}
	press(e, Key{Name: "space"}, CharKey('f'))
	fr = e.Frame(40, 10)
	if fr.HintTitle != "File" {
		t.Fatalf("hint title = %q, want File", fr.HintTitle)
	}
	if len(fr.Hints) != 2 {
		t.Fatalf("hints = %v, want the two file bindings", fr.Hints)
	}
}

func TestFramePaletteView(t *testing.T) {
	e := newTestEditor("a")
	press(e, CharKey(':'))
	press(e, chars("sv")...)
	fr := e.Frame(40, 10)
	if fr.Palette == nil {
		t.Fatalf("palette view missing")
	}
	if fr.Palette.Query != "sv" {
		t.Fatalf("query = %q, want sv", fr.Palette.Query)
	}
	if len(fr.Palette.Items) != 1 || fr.Palette.Items[0] != "Save File" {
		t.Fatalf("items = %v, want [Save File]", fr.Palette.Items)
	}
	if fr.Palette.Selected != 0 {
		t.Fatalf("selected = %d, want 0", fr.Palette.Selected)
	}
	// The view is a copy; mutating it leaves the editor alone.
	fr.Palette.Items[0] = "mutated"
	if e.palette.items[0] != "Save File" {
		t.Fatalf("frame mutation leaked into editor state")
	}
}

func TestFrameTinyHeights(t *testing.T) {
	e := newTestEditor("a", "b")
	for _, h := range []int{0, 1} {
		fr := e.Frame(20, h)
		if len(fr.Rows) != 0 {
			t.Fatalf("height %d: rows = %d, want 0", h, len(fr.Rows))
		}
	}
}
