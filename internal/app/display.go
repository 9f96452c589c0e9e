package app

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kvasov/ved/internal/config"
	"github.com/kvasov/ved/internal/editor"
)

// theme is the parsed styling for the display layer.
type theme struct {
	main             tcell.Style
	status           tcell.Style
	lineNumber       tcell.Style
	lineNumberActive tcell.Style
	palette          tcell.Style
	paletteSelected  tcell.Style
	hint             tcell.Style
	hintKey          tcell.Style
}

func newTheme(cfg config.Theme) theme {
	fg := parseColor(cfg.Foreground, tcell.ColorWhite)
	bg := parseColor(cfg.Background, tcell.ColorBlack)
	statusFg := parseColor(cfg.StatuslineForeground, tcell.ColorBlack)
	statusBg := parseColor(cfg.StatuslineBackground, tcell.ColorGray)
	paletteFg := parseColor(cfg.PaletteForeground, fg)
	paletteBg := parseColor(cfg.PaletteBackground, statusBg)
	hintFg := parseColor(cfg.HintForeground, fg)
	hintBg := parseColor(cfg.HintBackground, statusBg)
	return theme{
		main:             tcell.StyleDefault.Foreground(fg).Background(bg),
		status:           tcell.StyleDefault.Foreground(statusFg).Background(statusBg),
		lineNumber:       tcell.StyleDefault.Foreground(parseColor(cfg.LineNumberForeground, tcell.ColorGray)).Background(bg),
		lineNumberActive: tcell.StyleDefault.Foreground(parseColor(cfg.LineNumberActiveForeground, fg)).Background(bg),
		palette:          tcell.StyleDefault.Foreground(paletteFg).Background(paletteBg),
		paletteSelected: tcell.StyleDefault.
			Foreground(parseColor(cfg.PaletteSelectedForeground, bg)).
			Background(parseColor(cfg.PaletteSelectedBackground, tcell.ColorYellow)),
		hint:    tcell.StyleDefault.Foreground(hintFg).Background(hintBg),
		hintKey: tcell.StyleDefault.Foreground(parseColor(cfg.HintKeyForeground, fg)).Background(hintBg),
	}
}

func parseColor(value string, fallback tcell.Color) tcell.Color {
	v := strings.TrimSpace(value)
	if v == "" {
		return fallback
	}
	return tcell.GetColor(v)
}

// render paints one frame. The core decides content and cursor
// placement; everything here is styling and terminal writes.
func render(s tcell.Screen, fr editor.Frame, th theme) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	s.SetStyle(th.main)
	s.Clear()

	viewHeight := h - 1
	for y := 0; y < viewHeight; y++ {
		if y >= len(fr.Rows) {
			continue
		}
		row := fr.Rows[y]
		gutterStyle := th.lineNumber
		if row.Active {
			gutterStyle = th.lineNumberActive
		}
		x := emitStr(s, 0, y, row.Gutter, gutterStyle, w)
		emitStr(s, x, y, row.Text, th.main, w)
	}

	statusY := h - 1
	emitStr(s, 0, statusY, fr.Status, th.status, w)

	if fr.Hints != nil {
		renderHints(s, fr, th, w, viewHeight)
	}
	if fr.Palette != nil {
		renderPalette(s, fr.Palette, th, w, viewHeight)
		s.HideCursor()
		s.Show()
		return
	}

	if fr.CursorRow >= 0 && fr.CursorRow < viewHeight {
		s.ShowCursor(fr.CursorCol, fr.CursorRow)
	} else {
		s.HideCursor()
	}
	s.Show()
}

// renderHints draws the leader overlay: one line per child of the
// current node, bottom-right, above the status line.
func renderHints(s tcell.Screen, fr editor.Frame, th theme, w, viewHeight int) {
	if w < 16 || viewHeight < 2 {
		return
	}
	maxWidth := len(fr.HintTitle)
	for _, hint := range fr.Hints {
		// "k  Title +"
		width := len(hint.Key) + 2 + len(hint.Title) + 2
		if width > maxWidth {
			maxWidth = width
		}
	}
	boxWidth := maxWidth + 2
	if boxWidth > w {
		boxWidth = w
	}
	boxHeight := len(fr.Hints) + 1
	if boxHeight > viewHeight {
		boxHeight = viewHeight
	}
	x0 := w - boxWidth
	y0 := viewHeight - boxHeight

	emitStr(s, x0, y0, pad(" "+fr.HintTitle, boxWidth), th.status, w)
	for i, hint := range fr.Hints {
		y := y0 + 1 + i
		if y >= viewHeight {
			break
		}
		kind := " "
		if hint.Group {
			kind = "+"
		}
		fillLine(s, x0, y, boxWidth, th.hint)
		x := emitStr(s, x0, y, " "+hint.Key, th.hintKey, w)
		emitStr(s, x, y, "  "+hint.Title+" "+kind, th.hint, w)
	}
}

// renderPalette draws the query line plus the ranked items, centered
// horizontally near the top.
func renderPalette(s tcell.Screen, p *editor.PaletteView, th theme, w, viewHeight int) {
	if w < 8 || viewHeight < 2 {
		return
	}
	boxWidth := w / 2
	if boxWidth < 24 {
		boxWidth = w
	}
	x0 := (w - boxWidth) / 2
	y0 := 1
	maxItems := viewHeight - y0 - 1
	if maxItems < 1 {
		return
	}

	query := runewidth.Truncate("> "+p.Query, boxWidth, "")
	emitStr(s, x0, y0, pad(query, boxWidth), th.status, w)
	for i, item := range p.Items {
		if i >= maxItems {
			break
		}
		style := th.palette
		if i == p.Selected {
			style = th.paletteSelected
		}
		label := runewidth.Truncate(" "+item, boxWidth, "")
		emitStr(s, x0, y0+1+i, pad(label, boxWidth), style, w)
	}
}

// emitStr writes text starting at (x, y) and returns the x after the
// last cell written.
func emitStr(s tcell.Screen, x, y int, text string, style tcell.Style, w int) int {
	for _, r := range text {
		if x >= w {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func fillLine(s tcell.Screen, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}

func pad(text string, width int) string {
	if n := width - runewidth.StringWidth(text); n > 0 {
		return text + strings.Repeat(" ", n)
	}
	return text
}
