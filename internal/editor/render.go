package editor

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/mattn/go-runewidth"
)

// Row is one visible document line: a fixed-width gutter label plus
// the line content truncated to the available width.
type Row struct {
	Gutter string
	Text   string
	Active bool // the cursor's row
}

// PaletteView is the palette part of a frame.
type PaletteView struct {
	Query    string
	Items    []string
	Selected int
}

// Frame is the render model handed to the display collaborator each
// event. The display owns styling and terminal writes; everything it
// needs to paint is here.
type Frame struct {
	Rows        []Row
	GutterWidth int
	Status      string
	HintTitle   string
	Hints       []Hint
	Palette     *PaletteView
	CursorRow   int // terminal cell coordinates
	CursorCol   int
}

// Frame builds the render model for a width x height cell display.
// The scroll-follow rule is re-applied here, which also covers
// resizes of the display area.
func (e *Editor) Frame(width, height int) Frame {
	viewHeight := height - 1
	if viewHeight < 0 {
		viewHeight = 0
	}
	e.scroll = ensureVisible(viewHeight, e.cursor, e.scroll)

	gutterWidth := e.gutterWidth()
	textWidth := width - gutterWidth
	if textWidth < 0 {
		textWidth = 0
	}

	rows := make([]Row, 0, viewHeight)
	for y := 0; y < viewHeight; y++ {
		idx := e.scroll + y
		if idx >= e.buffer.LineCount() {
			break
		}
		rows = append(rows, Row{
			Gutter: e.gutterLabel(idx, gutterWidth),
			Text:   runewidth.Truncate(string(e.buffer.Line(idx)), textWidth, ""),
			Active: idx == e.cursor.Row,
		})
	}

	fr := Frame{
		Rows:        rows,
		GutterWidth: gutterWidth,
		Status:      e.statusLine(width),
	}
	if e.mode == ModeLeader && e.leader != nil {
		fr.HintTitle = e.leader.node.NodeTitle()
		fr.Hints = e.leader.node.Hints()
	}
	if e.palette != nil {
		items := make([]string, len(e.palette.items))
		copy(items, e.palette.items)
		fr.Palette = &PaletteView{
			Query:    string(e.palette.query),
			Items:    items,
			Selected: e.palette.sel,
		}
	}
	fr.CursorRow = e.cursor.Row - e.scroll
	fr.CursorCol = gutterWidth + e.cursor.Col
	if width > 0 && fr.CursorCol >= width {
		fr.CursorCol = width - 1
	}
	return fr
}

// gutterWidth is leading space + digits + trailing space, wide enough
// for the largest absolute line number.
func (e *Editor) gutterWidth() int {
	digits := len(strconv.Itoa(e.buffer.LineCount()))
	if digits < 2 {
		digits = 2
	}
	return 1 + digits + 1
}

// gutterLabel shows the absolute line number on the cursor's row and
// the distance from it everywhere else, right-justified.
func (e *Editor) gutterLabel(idx, gutterWidth int) string {
	num := idx + 1
	if idx != e.cursor.Row {
		num = idx - e.cursor.Row
		if num < 0 {
			num = -num
		}
	}
	return fmt.Sprintf(" %*d ", gutterWidth-2, num)
}

func (e *Editor) statusLine(width int) string {
	name := e.buffer.Path()
	if name == "" {
		name = "[No Name]"
	} else {
		name = filepath.Base(name)
	}
	dirty := ""
	if e.buffer.Dirty() {
		dirty = "*"
	}
	left := fmt.Sprintf(" %s | %s%s ", e.ModeLabel(), name, dirty)
	if e.statusMessage != "" {
		left = fmt.Sprintf(" %s | %s%s | %s ", e.ModeLabel(), name, dirty, e.statusMessage)
	}
	right := fmt.Sprintf(" Ln %d, Col %d ", e.cursor.Row+1, e.cursor.Col+1)
	if e.branch != "" {
		right = fmt.Sprintf(" Ln %d, Col %d | %s ", e.cursor.Row+1, e.cursor.Col+1, e.branch)
	}
	return composeStatusLine(left, right, width)
}

// composeStatusLine joins a left and right segment with middle
// padding, trimming the left side first when space runs out.
func composeStatusLine(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	leftRunes := []rune(left)
	rightRunes := []rune(right)
	if len(leftRunes)+len(rightRunes) > width {
		if len(rightRunes) >= width {
			rightRunes = rightRunes[len(rightRunes)-width:]
			leftRunes = nil
		} else {
			leftRunes = leftRunes[:width-len(rightRunes)]
		}
	}
	pad := width - len(leftRunes) - len(rightRunes)
	line := make([]rune, 0, width)
	line = append(line, leftRunes...)
	for i := 0; i < pad; i++ {
		line = append(line, ' ')
	}
	line = append(line, rightRunes...)
	return string(line)
}
