package editor

import (
	"path/filepath"
	"strings"
)

// openPrefix marks a palette row (or raw query) that opens a file
// path instead of running a command.
const openPrefix = "open "

// Palette is the transient command-palette state: a query plus the
// ranked labels for it. Created on open, discarded on close.
type Palette struct {
	query []rune
	items []string
	sel   int
}

// openPalette activates the palette with a prefilled query and
// computes the initial ranked list.
func (e *Editor) openPalette(prefill string) {
	e.palette = &Palette{query: []rune(prefill)}
	e.refreshPalette()
}

func (e *Editor) closePalette() {
	e.palette = nil
}

// refreshPalette recomputes the ranked labels for the current query.
// A query that looks like a path gets a synthetic, non-scored "open
// path" row ahead of all ranked matches.
func (e *Editor) refreshPalette() {
	p := e.palette
	raw := string(p.query)
	items := Rank(raw, e.registry.Titles(), e.paletteLimit)

	trimmed := strings.TrimSpace(raw)
	if isPathQuery(trimmed) {
		path := strings.TrimSpace(strings.TrimPrefix(trimmed, openPrefix))
		if path != "" {
			items = append([]string{openPrefix + path}, items...)
		}
	}
	p.items = items
	if p.sel >= len(p.items) {
		p.sel = len(p.items) - 1
	}
	if p.sel < 0 {
		p.sel = 0
	}
}

// isPathQuery reports whether the query names a file rather than a
// command: it contains a path separator or a literal dot.
func isPathQuery(s string) bool {
	return strings.ContainsAny(s, "/\\.")
}

func (e *Editor) handlePalette(k Key) []Effect {
	p := e.palette
	switch k.Name {
	case "esc":
		e.closePalette()
	case "enter":
		var label string
		if p.sel >= 0 && p.sel < len(p.items) {
			label = p.items[p.sel]
		}
		raw := string(p.query)
		e.closePalette()
		return e.confirmPalette(label, raw)
	case "up":
		if p.sel > 0 {
			p.sel--
		}
	case "down":
		if p.sel < len(p.items)-1 {
			p.sel++
		}
	case "backspace":
		if len(p.query) > 0 {
			p.query = p.query[:len(p.query)-1]
			p.sel = 0
			e.refreshPalette()
		}
	default:
		if k.Rune != 0 {
			p.query = append(p.query, k.Rune)
			p.sel = 0
			e.refreshPalette()
		}
	}
	return nil
}

// confirmPalette resolves a confirmed row: an open-path row (or a raw
// query carrying the open prefix) loads a file, anything else runs
// the command whose title matches exactly. No match closes silently.
func (e *Editor) confirmPalette(label, raw string) []Effect {
	if strings.HasPrefix(label, openPrefix) {
		return e.requestLoad(strings.TrimSpace(strings.TrimPrefix(label, openPrefix)))
	}
	if trimmed := strings.TrimSpace(raw); strings.HasPrefix(trimmed, openPrefix) {
		return e.requestLoad(strings.TrimSpace(strings.TrimPrefix(trimmed, openPrefix)))
	}
	if cmd, ok := e.registry.ByTitle(label); ok {
		return e.runCommand(cmd.ID)
	}
	return nil
}

func (e *Editor) requestLoad(path string) []Effect {
	if path == "" {
		return nil
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return []Effect{LoadFile{Path: path}}
}
