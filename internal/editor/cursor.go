package editor

type Cursor struct {
	Row int
	Col int
}

// clampCursor forces c into the buffer: row into [0, lineCount-1],
// then col into [0, len(line at row)]. Called after every mutation;
// invalid positions are clamped, never rejected.
func clampCursor(b *Buffer, c Cursor) Cursor {
	if c.Row < 0 {
		c.Row = 0
	}
	if max := b.LineCount() - 1; c.Row > max {
		c.Row = max
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if max := b.LineLen(c.Row); c.Col > max {
		c.Col = max
	}
	return c
}

// ensureVisible returns the scroll offset adjusted so that the cursor
// row lies within [scrollTop, scrollTop+viewHeight). Re-applied on
// every frame, which also covers display resizes.
func ensureVisible(viewHeight int, c Cursor, scrollTop int) int {
	if viewHeight <= 0 {
		return scrollTop
	}
	if c.Row < scrollTop {
		scrollTop = c.Row
	}
	if c.Row >= scrollTop+viewHeight {
		scrollTop = c.Row - viewHeight + 1
	}
	if scrollTop < 0 {
		scrollTop = 0
	}
	return scrollTop
}
