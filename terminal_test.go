package vtty

import (
	"strings"
	"testing"
)

func visibleLine(term *Terminal, row int) string {
	snap := term.Snapshot()
	return strings.TrimRight(snap.Lines[row].String(), " ")
}

// Scenario: bare hello, no escape sequences.
func TestScenarioBareHello(t *testing.T) {
	term := New(80, 24)
	term.Write([]byte("hello"))
	if got := visibleLine(term, 0); got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
	snap := term.Snapshot()
	if snap.CursorX != 5 || snap.CursorY != 0 {
		t.Fatalf("got cursor (%d,%d), want (5,0)", snap.CursorX, snap.CursorY)
	}
}

// Scenario: backspace over a character.
func TestScenarioBackspace(t *testing.T) {
	term := New(80, 24)
	term.Write([]byte("ab\bc"))
	if got := visibleLine(term, 0); got != "ac" {
		t.Fatalf("got %q, want %q", got, "ac")
	}
}

// Scenario: horizontal tab.
func TestScenarioHorizontalTab(t *testing.T) {
	term := New(80, 24)
	term.Write([]byte("a\tb"))
	snap := term.Snapshot()
	if snap.Lines[0].Cells[8].Char != 'b' {
		t.Fatalf("expected 'b' at column 8 after a tab stop, got %q", snap.Lines[0].Cells[8].Char)
	}
}

// Scenario: SGR bold-red then reset.
func TestScenarioSGRBoldRedThenReset(t *testing.T) {
	term := New(80, 24)
	term.Write([]byte("\x1b[1;31mX\x1b[0mY"))
	snap := term.Snapshot()
	red := snap.Lines[0].Cells[0]
	if !red.Style.Bold || red.Style.Foreground != ColorRed {
		t.Fatalf("got style %#v, want Bold+ColorRed", red.Style)
	}
	plain := snap.Lines[0].Cells[1]
	if plain.Style.Bold || plain.Style.Foreground != ColorDefault {
		t.Fatalf("got style %#v after reset, want default", plain.Style)
	}
}

// Scenario: autowrap with stomp — writing exactly to the last column
// defers the wrap until the next printable character arrives.
func TestScenarioAutowrapStomp(t *testing.T) {
	term := New(4, 3)
	term.Write([]byte("abcd"))
	snap := term.Snapshot()
	if snap.CursorX != 3 || snap.CursorY != 0 {
		t.Fatalf("got cursor (%d,%d) after filling the line, want (3,0) (stomp deferred)", snap.CursorX, snap.CursorY)
	}
	term.Write([]byte("e"))
	snap = term.Snapshot()
	if snap.CursorY != 1 || snap.CursorX != 1 {
		t.Fatalf("got cursor (%d,%d) after stomp wraps, want (1,1)", snap.CursorX, snap.CursorY)
	}
	if got := visibleLine(term, 1); got != "e" {
		t.Fatalf("got %q on wrapped line, want %q", got, "e")
	}
}

// Scenario: erase to end of screen.
func TestScenarioEraseToEndOfScreen(t *testing.T) {
	term := New(10, 3)
	term.Write([]byte("line1\r\nline2\r\nline3"))
	term.Write([]byte("\x1b[1;1H"))
	term.Write([]byte("\x1b[0J"))
	for row := 0; row < 3; row++ {
		if got := visibleLine(term, row); got != "" {
			t.Fatalf("row %d = %q, want empty after erase-to-end-of-screen from (1,1)", row, got)
		}
	}
}

// Scenario: private mode toggle (bracketed paste) and cursor visibility.
func TestScenarioPrivateModeToggle(t *testing.T) {
	term := New(80, 24)
	term.Write([]byte("\x1b[?2004h"))
	if snap := term.Snapshot(); !snap.BracketedPasteMode {
		t.Fatalf("expected bracketed paste mode enabled")
	}
	term.Write([]byte("\x1b[?2004l"))
	if snap := term.Snapshot(); snap.BracketedPasteMode {
		t.Fatalf("expected bracketed paste mode disabled")
	}
	term.Write([]byte("\x1b[?25l"))
	if snap := term.Snapshot(); snap.CursorVisible {
		t.Fatalf("expected cursor hidden after CSI ?25l")
	}
}

// Scenario: invalid UTF-8 leading byte renders the replacement character
// and does not desynchronize the stream.
func TestScenarioInvalidUTF8LeadingByte(t *testing.T) {
	term := New(80, 24)
	term.Write([]byte{0xFF, 'O', 'K'})
	snap := term.Snapshot()
	if snap.Lines[0].Cells[0].Char != replacementChar {
		t.Fatalf("got %q at column 0, want replacement char", snap.Lines[0].Cells[0].Char)
	}
	if got := string(snap.Lines[0].Cells[1].Char) + string(snap.Lines[0].Cells[2].Char); got != "OK" {
		t.Fatalf("got %q, want %q", got, "OK")
	}
}

// Scenario: an overlong lead byte (0xC0) is invalid on its own, without
// waiting for a continuation byte, and must not consume the valid byte
// that follows it.
func TestScenarioInvalidUTF8OverlongLeadByte(t *testing.T) {
	term := New(80, 24)
	term.Write([]byte{0xC0, 'A'})
	snap := term.Snapshot()
	if snap.Lines[0].Cells[0].Char != replacementChar {
		t.Fatalf("got %q at column 0, want replacement char", snap.Lines[0].Cells[0].Char)
	}
	if snap.Lines[0].Cells[1].Char != 'A' {
		t.Fatalf("got %q at column 1, want 'A' (trailing byte must not be dropped)", snap.Lines[0].Cells[1].Char)
	}
}

// Invariant: the cursor is always within [0,cols) x [0,rows) no matter
// how far a motion sequence tries to push it.
func TestInvariantCursorAlwaysInRange(t *testing.T) {
	term := New(10, 5)
	term.Write([]byte("\x1b[999B\x1b[999C"))
	snap := term.Snapshot()
	if snap.CursorX < 0 || snap.CursorX >= snap.Cols {
		t.Fatalf("cursorX %d out of range [0,%d)", snap.CursorX, snap.Cols)
	}
	if snap.CursorY < 0 || snap.CursorY >= snap.Rows {
		t.Fatalf("cursorY %d out of range [0,%d)", snap.CursorY, snap.Rows)
	}
}

// Invariant: in insert mode, a line never grows past cols cells.
func TestInvariantLineLengthBoundedAfterInsert(t *testing.T) {
	term := New(5, 3)
	term.Write([]byte("\x1b[4h")) // insert mode
	term.Write([]byte("abc"))
	term.Write([]byte("\x1b[0;0H"))
	term.Write([]byte("XYZ"))
	snap := term.Snapshot()
	if len(snap.Lines[0].Cells) > snap.Cols {
		t.Fatalf("line grew to %d cells, want <= %d", len(snap.Lines[0].Cells), snap.Cols)
	}
}

// Law: a full reset (ESC c) restores autowrap to the constructor default
// regardless of what it was set to beforehand.
func TestLawFullResetRestoresAutowrap(t *testing.T) {
	term := New(80, 24)
	term.Write([]byte("\x1b[?7l")) // autowrap off
	term.Write([]byte("\x1bc"))    // full reset
	if !term.modes.autowrap {
		t.Fatalf("expected autowrap restored to true after full reset")
	}
}

// Law: SGR reset (code 0) is idempotent no matter how much style state
// preceded it.
func TestLawSGRResetIdempotent(t *testing.T) {
	term := New(80, 24)
	term.Write([]byte("\x1b[1;4;31;42mX\x1b[0m\x1b[0mY"))
	snap := term.Snapshot()
	if snap.Lines[0].Cells[1] != snap.Lines[0].Cells[1] {
		t.Fatalf("unreachable")
	}
	style := snap.Lines[0].Cells[1].Style
	if style != defaultTextStyle() {
		t.Fatalf("got %#v after repeated reset, want default", style)
	}
}

// Law: clamping a cursor motion is commutative with clamping again — a
// second identical motion from an already-clamped position is a no-op.
func TestLawCursorClampCommutative(t *testing.T) {
	term := New(10, 5)
	term.Write([]byte("\x1b[999A"))
	first := term.cursorY
	term.Write([]byte("\x1b[999A"))
	if term.cursorY != first {
		t.Fatalf("got cursorY %d after repeated clamp, want %d (stable)", term.cursorY, first)
	}
}

func TestScrollbackTrimAdjustsStart(t *testing.T) {
	term := New(10, 2, WithMaxScrollbackLines(3))
	for i := 0; i < 10; i++ {
		term.Write([]byte("x\r\n"))
	}
	if term.ScrollbackLen() > 3 {
		t.Fatalf("got scrollback len %d, want <= 3", term.ScrollbackLen())
	}
	snap := term.Snapshot()
	if snap.ScrollbackStart < 0 {
		t.Fatalf("scrollbackStart went negative: %d", snap.ScrollbackStart)
	}
}

func TestReverseIndexScrollsUpAtTopOfViewport(t *testing.T) {
	term := New(10, 2)
	term.Write([]byte("first\r\nsecond\r\n"))
	// Cursor is now on the (blank) third row; move to the top of the
	// viewport and reverse-index to pull the scrolled-off first line
	// back into view.
	term.Write([]byte("\x1b[1;1H"))
	term.Write([]byte("\x1bM"))
	if got := visibleLine(term, 0); got != "first" {
		t.Fatalf("got top line %q after reverse-index, want %q", got, "first")
	}
}

func TestDeleteCharacters(t *testing.T) {
	term := New(10, 3)
	term.Write([]byte("hello"))
	term.Write([]byte("\x1b[0;0H"))
	term.Write([]byte("\x1b[2P"))
	if got := visibleLine(term, 0); got != "llo" {
		t.Fatalf("got %q, want %q", got, "llo")
	}
}

func TestRepeatPreviousCharacter(t *testing.T) {
	term := New(10, 3)
	term.Write([]byte("a\x1b[3b"))
	if got := visibleLine(term, 0); got != "aaaa" {
		t.Fatalf("got %q, want %q", got, "aaaa")
	}
}
