package vtty

// line is one row of the scrollback buffer: a variable-length sequence
// of decorated characters. Only insertAt caps a line's length. Writes
// past the end pad the line with style-tagged spaces up to the column
// being touched; reads do not synthesize cells past the end.
type line struct {
	cells []DecoratedChar
}

// charAt returns the cell at col and whether it exists yet. Columns
// past the line's current length are not stored.
func (l *line) charAt(col int) (DecoratedChar, bool) {
	if col < 0 || col >= len(l.cells) {
		return DecoratedChar{}, false
	}
	return l.cells[col], true
}

// padTo extends the line up to (not including) col with space
// characters carrying style, if it isn't already that long.
func (l *line) padTo(col int, style TextStyle) {
	for len(l.cells) < col {
		l.cells = append(l.cells, newDecoratedChar(byteSpace, style))
	}
}

// setReplace writes c at col, padding with style-tagged spaces first if
// the line is currently shorter than col.
func (l *line) setReplace(col int, c DecoratedChar) {
	l.padTo(col, c.Style)
	if col == len(l.cells) {
		l.cells = append(l.cells, c)
		return
	}
	l.cells[col] = c
}

// insertAt inserts c at col, shifting everything at and after col one
// position right, then truncates the line to at most maxLen characters
// by dropping from the right.
func (l *line) insertAt(col int, c DecoratedChar, maxLen int) {
	l.padTo(col, c.Style)
	l.cells = append(l.cells, DecoratedChar{})
	copy(l.cells[col+1:], l.cells[col:])
	l.cells[col] = c
	if len(l.cells) > maxLen {
		l.cells = l.cells[:maxLen]
	}
}

// truncateFrom drops every cell from col to the end of the line,
// inclusive.
func (l *line) truncateFrom(col int) {
	if col < 0 {
		col = 0
	}
	if col < len(l.cells) {
		l.cells = l.cells[:col]
	}
}

// dropPrefixThrough removes every cell up to and including col, shifting
// the remainder left to start at index 0.
func (l *line) dropPrefixThrough(col int) {
	if col < 0 {
		return
	}
	if col+1 >= len(l.cells) {
		l.cells = l.cells[:0]
		return
	}
	l.cells = append([]DecoratedChar(nil), l.cells[col+1:]...)
}

// deleteRange removes n cells starting at col, shifting cells to the
// right of the removed range left to close the gap.
func (l *line) deleteRange(col, n int) {
	if col < 0 || col >= len(l.cells) || n <= 0 {
		return
	}
	end := col + n
	if end > len(l.cells) {
		end = len(l.cells)
	}
	l.cells = append(l.cells[:col], l.cells[end:]...)
}

// String renders the line's printable text, one rune per stored cell
// (padding cells are stored spaces). Trailing cells are not trimmed; callers that want a
// trimmed view should do so themselves.
func (l *line) String() string {
	runes := make([]rune, len(l.cells))
	for i, c := range l.cells {
		runes[i] = c.Char
	}
	return string(runes)
}

// scrollbackBuffer is the store of every line the terminal has produced
// and still retains. The viewport's top row is tracked separately as an
// index into this slice (Terminal.scrollbackStart), so scrolling is just
// incrementing an integer rather than copying rows. Storage shrinks when
// trim drops lines from the front once the buffer exceeds maxLines, when
// dropLast removes the last line, and when clear empties it.
type scrollbackBuffer struct {
	lines    []line
	maxLines int
}

// newScrollbackBuffer returns an empty buffer bounded to maxLines.
func newScrollbackBuffer(maxLines int) *scrollbackBuffer {
	return &scrollbackBuffer{maxLines: maxLines}
}

// len returns the number of lines currently stored, including scrolled-
// off history and the visible viewport.
func (b *scrollbackBuffer) len() int {
	return len(b.lines)
}

// ensureLine returns a pointer to the line at absolute index idx,
// appending blank lines as needed so it exists.
func (b *scrollbackBuffer) ensureLine(idx int) *line {
	for idx >= len(b.lines) {
		b.lines = append(b.lines, line{})
	}
	return &b.lines[idx]
}

// at returns a pointer to the line at absolute index idx, or nil if it
// doesn't exist yet.
func (b *scrollbackBuffer) at(idx int) *line {
	if idx < 0 || idx >= len(b.lines) {
		return nil
	}
	return &b.lines[idx]
}

// dropLast removes the most recently appended line. Reverse-index uses
// it when it scrolls the viewport back up, and erase-to-end-of-screen
// uses it to drop the lines below the cursor.
func (b *scrollbackBuffer) dropLast() {
	if len(b.lines) > 0 {
		b.lines = b.lines[:len(b.lines)-1]
	}
}

// clear empties the buffer entirely.
func (b *scrollbackBuffer) clear() {
	b.lines = b.lines[:0]
}

// trim drops lines from the front until the buffer is at most maxLines
// long, returning how many were dropped so the caller can adjust any
// index expressed relative to the old front (notably scrollbackStart).
func (b *scrollbackBuffer) trim() int {
	if b.maxLines <= 0 || len(b.lines) <= b.maxLines {
		return 0
	}
	dropped := len(b.lines) - b.maxLines
	b.lines = append([]line(nil), b.lines[dropped:]...)
	return dropped
}
