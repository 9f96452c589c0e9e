package editor

import "strings"

// Buffer owns the document as an ordered sequence of lines. A buffer
// is never empty: the zero document is a single blank line. The
// buffer never touches the filesystem; the shell reads and writes
// bytes and hands them over through SetContent/Content.
type Buffer struct {
	lines [][]rune
	dirty bool
	path  string
}

func NewBuffer() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// SetContent replaces the document with freshly read file contents.
// CRLF line endings are normalized to LF. Clears the dirty flag.
func (b *Buffer) SetContent(path string, data []byte) {
	lines := splitLines(data)
	if len(lines) == 0 {
		lines = [][]rune{{}}
	}
	b.lines = lines
	b.path = path
	b.dirty = false
}

// Content serializes the document with LF separators, exactly
// reconstructing the in-memory line sequence.
func (b *Buffer) Content() []byte {
	return []byte(joinLines(b.lines))
}

func (b *Buffer) Path() string { return b.path }
func (b *Buffer) Dirty() bool  { return b.dirty }

// markSaved records a completed write to path.
func (b *Buffer) markSaved(path string) {
	b.path = path
	b.dirty = false
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at row. Out-of-range rows yield an empty
// line; callers are expected to clamp first.
func (b *Buffer) Line(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

func (b *Buffer) LineLen(row int) int {
	return len(b.Line(row))
}

// InsertRune inserts r at col in line row, clamping col into
// [0, len(line)] before splicing.
func (b *Buffer) InsertRune(row, col int, r rune) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	line := b.lines[row]
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = r
	b.lines[row] = line
	b.dirty = true
}

// DeleteBackward removes the character before (row, col). At the
// start of a line it joins the line onto the previous one. Returns
// the cursor position after the edit.
func (b *Buffer) DeleteBackward(row, col int) Cursor {
	if row < 0 || row >= len(b.lines) {
		return Cursor{}
	}
	if col > b.LineLen(row) {
		col = b.LineLen(row)
	}
	if col > 0 {
		line := b.lines[row]
		b.lines[row] = append(line[:col-1], line[col:]...)
		b.dirty = true
		return Cursor{Row: row, Col: col - 1}
	}
	if row == 0 {
		return Cursor{}
	}
	prevLen := len(b.lines[row-1])
	b.lines[row-1] = append(b.lines[row-1], b.lines[row]...)
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.dirty = true
	return Cursor{Row: row - 1, Col: prevLen}
}

// InsertNewline splits line row at col: [0,col) stays in place,
// [col,end) becomes a new line at row+1. Returns the cursor at the
// start of the new line.
func (b *Buffer) InsertNewline(row, col int) Cursor {
	if row < 0 || row >= len(b.lines) {
		return Cursor{}
	}
	line := b.lines[row]
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	rest := make([]rune, len(line)-col)
	copy(rest, line[col:])
	b.lines[row] = line[:col]
	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = rest
	b.dirty = true
	return Cursor{Row: row + 1}
}

func splitLines(data []byte) [][]rune {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

func joinLines(lines [][]rune) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(line))
	}
	return b.String()
}
