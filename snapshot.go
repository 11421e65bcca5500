package vtty

// SnapshotLine is one read-only row of a Snapshot: the decorated
// characters a front-end should paint for that row.
type SnapshotLine struct {
	Cells []DecoratedChar
}

// String renders the line's printable text, one rune per stored cell.
// Columns past the end of the stored line are not included; padding
// cells render as the spaces they hold.
func (l SnapshotLine) String() string {
	runes := make([]rune, len(l.Cells))
	for i, c := range l.Cells {
		runes[i] = c.Char
	}
	return string(runes)
}

// Snapshot is the read-only view a front-end paints once per frame. It
// is a copy: mutating it has no effect on the Terminal it came from.
type Snapshot struct {
	Cols, Rows      int
	CursorX         int
	CursorY         int
	CursorVisible   bool
	ScrollbackStart int
	Lines           []SnapshotLine

	ApplicationCursorKeys bool
	BracketedPasteMode    bool
	CurrentStyle          TextStyle
}

// Snapshot copies the terminal's current viewport and state for
// rendering. Only the visible rows (ScrollbackStart through
// ScrollbackStart+Rows-1) are included; a front-end wanting history
// beyond the viewport should keep its own scrollback index and call
// Line directly.
func (t *Terminal) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	lines := make([]SnapshotLine, t.rows)
	for i := 0; i < t.rows; i++ {
		ln := t.scrollback.at(t.scrollbackStart + i)
		if ln == nil {
			continue
		}
		cells := make([]DecoratedChar, len(ln.cells))
		copy(cells, ln.cells)
		lines[i] = SnapshotLine{Cells: cells}
	}

	return Snapshot{
		Cols:                  t.cols,
		Rows:                  t.rows,
		CursorX:               t.cursorX,
		CursorY:               t.cursorY,
		CursorVisible:         t.modes.cursorVisible,
		ScrollbackStart:       t.scrollbackStart,
		Lines:                 lines,
		ApplicationCursorKeys: t.modes.applicationCursorKeys,
		BracketedPasteMode:    t.modes.bracketedPasteMode,
		CurrentStyle:          t.style,
	}
}

// ScrollbackLen reports the total number of lines ever produced,
// including history above the current viewport.
func (t *Terminal) ScrollbackLen() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scrollback.len()
}

// Line returns a read-only copy of the line at absolute scrollback
// index idx, or a zero-value SnapshotLine if idx is out of range. Use
// ScrollbackLen to find the valid range; idx 0 is the oldest line, not
// the top of the current viewport.
func (t *Terminal) Line(idx int) SnapshotLine {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ln := t.scrollback.at(idx)
	if ln == nil {
		return SnapshotLine{}
	}
	cells := make([]DecoratedChar, len(ln.cells))
	copy(cells, ln.cells)
	return SnapshotLine{Cells: cells}
}

// Size returns the terminal's column and row count.
func (t *Terminal) Size() (cols, rows int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cols, t.rows
}
