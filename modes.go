package vtty

// insertionMode selects how a printed character interacts with
// whatever is already at the cursor position.
type insertionMode int

const (
	// modeReplace overwrites the cell at the cursor. This is the default.
	modeReplace insertionMode = iota
	// modeInsert shifts the rest of the line right, dropping overflow
	// at the right edge.
	modeInsert
)

// terminalModes holds the boolean (or small-enum) toggles a running
// session can flip via CSI sequences. Zero value is not the default
// state for every field; see newTerminalModes.
type terminalModes struct {
	autowrap              bool
	stomp                 bool
	bracketedPasteMode    bool
	applicationCursorKeys bool
	insertion             insertionMode
	cursorVisible         bool
}

// newTerminalModes returns the mode set a freshly constructed terminal
// starts with.
func newTerminalModes() terminalModes {
	return terminalModes{
		autowrap:      true,
		insertion:     modeReplace,
		cursorVisible: true,
	}
}

// resetForFullReset restores modes the way a full reset (ESC c) does:
// autowrap comes back on, the stomp latch clears, and replace mode is
// restored. Paste/app-cursor-keys/cursor-visible are left as-is, since
// a full reset of the grid model shouldn't silently drop a front-end
// mode the user toggled deliberately.
func (m *terminalModes) resetForFullReset() {
	m.autowrap = true
	m.stomp = false
	m.insertion = modeReplace
}
