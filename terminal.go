package vtty

import (
	"log"
	"sync"
)

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// WithLogger routes diagnostic messages (unknown escape sequences,
// malformed parameters, and similar recoverable conditions) to l. The
// default is nil, which discards them.
func WithLogger(l *log.Logger) Option {
	return func(t *Terminal) {
		t.logger = l
	}
}

// WithMaxScrollbackLines bounds how many lines of history the terminal
// retains before trimming from the front. The default is
// defaultMaxScrollbackLines.
func WithMaxScrollbackLines(n int) Option {
	return func(t *Terminal) {
		t.scrollback.maxLines = n
	}
}

// Terminal is a headless VT-100/ECMA-48/xterm-compatible terminal
// model: a scrollback buffer, a cursor, text style, and the parsing
// state needed to interpret a raw byte stream into mutations on them.
// It owns no file descriptor and renders nothing; a caller feeds it
// bytes via Write and reads its state back via Snapshot.
//
// A Terminal is not safe for concurrent use by multiple goroutines
// without external synchronization beyond what Write/Snapshot already
// provide internally.
type Terminal struct {
	mu sync.RWMutex

	cols, rows int

	scrollback      *scrollbackBuffer
	scrollbackStart int
	cursorX         int
	cursorY         int

	modes terminalModes
	style TextStyle

	decoder       utf8Decoder
	parser        *escapeSequenceParser
	parsingEscape bool

	prevChar    rune
	hasPrevChar bool

	logger *log.Logger
}

// New constructs a Terminal sized cols×rows with default modes and
// style, ready to receive bytes via Write.
func New(cols, rows int, opts ...Option) *Terminal {
	t := &Terminal{
		cols:       cols,
		rows:       rows,
		scrollback: newScrollbackBuffer(defaultMaxScrollbackLines),
		modes:      newTerminalModes(),
		style:      defaultTextStyle(),
		parser:     newEscapeSequenceParser(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// logf writes a diagnostic message if a logger was configured; it is a
// no-op otherwise. Used for recoverable conditions: unknown sequences,
// malformed parameters, unsupported families.
func (t *Terminal) logf(format string, args ...any) {
	if t.logger != nil {
		t.logger.Printf(format, args...)
	}
}

// Write feeds raw bytes from the shell through the UTF-8 decoder and
// escape sequence parser, mutating the grid. It implements io.Writer
// and never returns an error: malformed input is absorbed and logged,
// never fatal.
func (t *Terminal) Write(data []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, b := range data {
		t.insertByte(b)
	}
	return len(data), nil
}

// insertByte feeds one raw byte through the resumable UTF-8 decoder and
// routes every scalar it resolves to the escape-sequence parser or the
// standard print path. Usually this is zero or one scalar, but an
// invalid lead sequence can resolve alongside an already-complete
// trailing byte, yielding more than one from a single call.
func (t *Terminal) insertByte(b byte) {
	for _, c := range t.decoder.decodeByte(b) {
		if t.parsingEscape {
			t.escapeInsert(c)
			continue
		}
		t.standardInsert(c)
	}
}

// standardInsert handles one decoded scalar outside of an in-flight
// escape sequence.
func (t *Terminal) standardInsert(c rune) {
	if c == byteEscape {
		t.parser = newEscapeSequenceParser()
		t.parsingEscape = true
		return
	}

	t.prevChar = c
	t.hasPrevChar = true

	absRow := t.scrollbackStart + t.cursorY
	t.scrollback.ensureLine(absRow)

	if isC0Control(c) {
		t.applyC0(c)
		return
	}

	if c == byteLineFeed || (t.cursorX == t.cols-1 && t.modes.stomp && t.modes.autowrap) {
		t.modes.stomp = false
		t.cursorX = 0
		t.cursorY++
		scrolled := false
		if t.cursorY >= t.rows {
			t.cursorY = t.rows - 1
			t.scrollbackStart++
			scrolled = true
		}
		t.scrollback.ensureLine(t.scrollbackStart + t.cursorY)
		if scrolled {
			t.trimScrollback()
		}
		if c == byteLineFeed {
			return
		}
	}

	dc := newDecoratedChar(c, t.style)
	ln := t.scrollback.ensureLine(t.scrollbackStart + t.cursorY)
	switch t.modes.insertion {
	case modeInsert:
		ln.insertAt(t.cursorX, dc, t.cols)
	default:
		ln.setReplace(t.cursorX, dc)
	}

	if t.cursorX == t.cols-1 {
		t.modes.stomp = true
	} else {
		t.cursorX++
	}
}

// isC0Control reports whether c is one of the C0 codes handled by
// applyC0. ESC is handled before this check and line feed after it, in
// the print path; any other C0 code is stored in the grid like a
// printable character.
func isC0Control(c rune) bool {
	switch c {
	case byteBackspace, byteCarriageReturn, byteTab, byteBell, byteFormFeed:
		return true
	default:
		return false
	}
}

// applyC0 handles the C0 control codes that affect cursor position or
// are explicitly acknowledged no-ops. BELL and FORMFEED are logged and
// otherwise ignored.
func (t *Terminal) applyC0(c rune) {
	switch c {
	case byteBackspace:
		if t.cursorX > 0 {
			t.cursorX--
		}
	case byteCarriageReturn:
		t.cursorX = 0
	case byteTab:
		next := t.cursorX + (8 - t.cursorX%8)
		if next > t.cols-1 {
			next = t.cols - 1
		}
		t.cursorX = next
	case byteBell, byteFormFeed:
		t.logf("vtty: ignoring control code %#x", c)
	}
}

// escapeInsert feeds one decoded scalar to the in-flight escape-sequence
// parser, applying the result and leaving escape mode once the
// sequence completes (recognized or not).
func (t *Terminal) escapeInsert(c rune) {
	done, seq := t.parser.parseCharacter(c, t.logf)
	if !done {
		return
	}
	t.parsingEscape = false
	if seq != nil {
		t.applyEscapeSequence(seq)
	}
}

// applyEscapeSequence dispatches a fully parsed escape sequence to the
// grid mutation it describes.
func (t *Terminal) applyEscapeSequence(seq EscapeSequence) {
	switch s := seq.(type) {
	case seqMoveCursorUp:
		t.moveCursor(0, -s.N)
	case seqMoveCursorDown:
		t.moveCursor(0, s.N)
	case seqMoveCursorForward:
		t.moveCursor(s.N, 0)
	case seqMoveCursorBack:
		t.moveCursor(-s.N, 0)
	case seqMoveCursorNextLine:
		t.setCursorPos(0, t.cursorY+s.N)
	case seqMoveCursorPrevLine:
		t.setCursorPos(0, t.cursorY-s.N)
	case seqMoveCursorHorizontalAbsolute:
		t.setCursorPos(s.N-1, t.cursorY)
	case seqSetCursorPosition:
		t.setCursorPos(s.Col-1, s.Row-1)
	case seqEraseInDisplay:
		t.applyEraseInDisplay(s.Kind)
	case seqEraseInLine:
		t.applyEraseInLine(s.Kind)
	case seqDeleteCharacters:
		t.applyDeleteCharacters(s.N)
	case seqRepeatPreviousCharacter:
		t.applyRepeatPreviousCharacter(s.N)
	case seqSelectGraphicRendition:
		t.applySGR(s.Codes)
	case seqSetMode:
		t.applySetMode(s.Param)
	case seqResetMode:
		t.applyResetMode(s.Param)
	case seqFullReset:
		t.applyFullReset()
	case seqMoveCursorUpScrolling:
		t.applyMoveCursorUpScrollingIfNecessary()
	case seqDesignateG0CharacterSet:
		// Only ASCII is recognized; there's nothing to track.
	case seqPrivateBracketedPasteMode:
		t.modes.bracketedPasteMode = s.Enable
	case seqPrivateAutowrapMode:
		t.modes.autowrap = s.Enable
	case seqPrivateApplicationCursorKeys:
		t.modes.applicationCursorKeys = s.Enable
	case seqPrivateCursorVisible:
		t.modes.cursorVisible = s.Enable
	default:
		t.logf("vtty: unhandled escape sequence type %T", s)
	}
}

// moveCursor applies a relative cursor motion, clamping the result to
// the grid and clearing the stomp latch.
func (t *Terminal) moveCursor(dx, dy int) {
	t.setCursorPos(t.cursorX+dx, t.cursorY+dy)
}

// setCursorPos applies an absolute cursor motion, clamping to the grid
// and clearing the stomp latch.
func (t *Terminal) setCursorPos(x, y int) {
	t.cursorX = clampInt(x, 0, t.cols-1)
	t.cursorY = clampInt(y, 0, t.rows-1)
	t.modes.stomp = false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (t *Terminal) applyEraseInLine(kind EraseInLineKind) {
	ln := t.scrollback.at(t.scrollbackStart + t.cursorY)
	if ln == nil {
		return
	}
	switch kind {
	case EraseToEndOfLine:
		ln.truncateFrom(t.cursorX)
	case EraseToStartOfLine:
		ln.dropPrefixThrough(t.cursorX)
	case EraseEntireLine:
		ln.truncateFrom(0)
	}
}

func (t *Terminal) applyEraseInDisplay(kind EraseInDisplayKind) {
	cur := t.scrollbackStart + t.cursorY
	switch kind {
	case EraseToEndOfScreen:
		if ln := t.scrollback.at(cur); ln != nil {
			ln.truncateFrom(t.cursorX)
		}
		for t.scrollback.len() > cur+1 {
			t.scrollback.dropLast()
		}
	case EraseToStartOfScreen:
		if ln := t.scrollback.at(cur); ln != nil {
			ln.dropPrefixThrough(t.cursorX)
		}
		for row := t.scrollbackStart; row < cur; row++ {
			if ln := t.scrollback.at(row); ln != nil {
				ln.truncateFrom(0)
			}
		}
	case EraseEntireScreen:
		t.applyEraseInDisplay(EraseToEndOfScreen)
		t.applyEraseInDisplay(EraseToStartOfScreen)
	case EraseEntireScreenAndScrollback:
		t.scrollback.clear()
		t.scrollbackStart = 0
	}
}

func (t *Terminal) applyDeleteCharacters(n int) {
	ln := t.scrollback.at(t.scrollbackStart + t.cursorY)
	if ln == nil {
		return
	}
	ln.deleteRange(t.cursorX, n)
}

func (t *Terminal) applyRepeatPreviousCharacter(n int) {
	if !t.hasPrevChar {
		return
	}
	c := t.prevChar
	for i := 0; i < n; i++ {
		t.standardInsert(c)
	}
}

// applySGR dispatches every code in the sequence in order, logging any
// code neither applySGRCode nor the color tables recognize.
func (t *Terminal) applySGR(codes []int) {
	for _, code := range codes {
		if code == sgrNoop {
			continue
		}
		if !applySGRCode(&t.style, code) {
			t.logf("vtty: ignoring unknown SGR code %d", code)
		}
	}
}

// applySetMode handles CSI ... h. Only parameter 4 (insert mode) is
// recognized; anything else is logged and ignored.
func (t *Terminal) applySetMode(param int) {
	switch param {
	case 4:
		t.modes.insertion = modeInsert
	default:
		t.logf("vtty: ignoring unknown mode set parameter %d", param)
	}
}

// applyResetMode handles CSI ... l, the inverse of applySetMode.
func (t *Terminal) applyResetMode(param int) {
	switch param {
	case 4:
		t.modes.insertion = modeReplace
	default:
		t.logf("vtty: ignoring unknown mode reset parameter %d", param)
	}
}

// applyFullReset restores the cursor, scrollback, and style to their
// construction-time defaults without touching decoder or parser state.
// Autowrap is restored to true, matching the constructor default rather
// than the off state a naive reset would otherwise leave behind.
func (t *Terminal) applyFullReset() {
	t.cursorX, t.cursorY = 0, 0
	t.scrollbackStart = 0
	t.scrollback.clear()
	t.style = defaultTextStyle()
	t.modes.resetForFullReset()
}

// applyMoveCursorUpScrollingIfNecessary implements reverse-index (ESC
// M): move up within the viewport, or if already at the top, scroll the
// viewport itself up by one line when history allows it.
func (t *Terminal) applyMoveCursorUpScrollingIfNecessary() {
	if t.cursorY == 0 {
		if t.scrollbackStart > 0 {
			t.scrollbackStart--
			t.scrollback.dropLast()
		}
		return
	}
	t.cursorY--
}

// trimScrollback enforces the configured maximum history depth,
// shifting scrollbackStart to compensate for any lines dropped from the
// front so the viewport keeps pointing at the same logical rows.
func (t *Terminal) trimScrollback() {
	dropped := t.scrollback.trim()
	if dropped == 0 {
		return
	}
	t.scrollbackStart -= dropped
	if t.scrollbackStart < 0 {
		t.scrollbackStart = 0
	}
}
