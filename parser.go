package vtty

import (
	"strconv"
	"strings"
)

// sequenceFamily is the parser's discriminator for which introducer
// byte started the escape sequence.
type sequenceFamily int

const (
	familyUndetermined sequenceFamily = iota
	familyCSI
	familyDCS
	familyOSC
	familyG0Designator
	familyNonStandard
)

// escapeSequenceParser is a streaming state machine fed the scalars that
// follow ESC (0x1B) one at a time, classifying them into a sequence
// family by introducer byte and accumulating parameter/intermediate
// characters until a final byte completes the sequence.
type escapeSequenceParser struct {
	family            sequenceFamily
	parameterChars    []rune
	intermediateChars []rune
	g0Pending         bool
}

// newEscapeSequenceParser returns a parser ready to classify the first
// byte after ESC.
func newEscapeSequenceParser() *escapeSequenceParser {
	return &escapeSequenceParser{family: familyUndetermined}
}

// parseCharacter feeds one byte to the parser. done is true once the
// sequence is complete (recognized or not); seq is nil when the
// sequence was unsupported or malformed.
func (p *escapeSequenceParser) parseCharacter(c rune, logf func(string, ...any)) (done bool, seq EscapeSequence) {
	if p.family == familyUndetermined {
		switch c {
		case introducerCSI:
			p.family = familyCSI
		case introducerDCS:
			p.family = familyDCS
		case introducerOSC:
			p.family = familyOSC
		case introducerG0Designator:
			p.family = familyG0Designator
		case introducerNonStandard:
			p.family = familyNonStandard
		case introducerReverseIndex:
			return true, seqMoveCursorUpScrolling{}
		case 'c':
			// ESC c: full reset. CSI c is handled in parseCSIFinalByte.
			return true, seqFullReset{}
		default:
			logf("vtty: unknown escape sequence introducer %q", c)
			return true, nil
		}
		return false, nil
	}

	switch p.family {
	case familyCSI:
		return p.parseCSICharacter(c, logf)
	case familyG0Designator:
		return p.parseG0Character(c, logf)
	case familyDCS, familyOSC, familyNonStandard:
		logf("vtty: unsupported escape sequence family (byte %q)", c)
		return true, nil
	default:
		return true, nil
	}
}

func (p *escapeSequenceParser) parseG0Character(c rune, logf func(string, ...any)) (bool, EscapeSequence) {
	if !p.g0Pending {
		switch c {
		case '&', '"', '%':
			// Multi-byte designation; consume one more byte.
			p.g0Pending = true
			return false, nil
		default:
			// Only ASCII is recognized; anything else normalizes to it.
			return true, seqDesignateG0CharacterSet{}
		}
	}
	return true, seqDesignateG0CharacterSet{}
}

func (p *escapeSequenceParser) parseCSICharacter(c rune, logf func(string, ...any)) (bool, EscapeSequence) {
	switch {
	case c >= 0x30 && c <= 0x3F:
		p.parameterChars = append(p.parameterChars, c)
	case c >= 0x20 && c <= 0x2F:
		p.intermediateChars = append(p.intermediateChars, c)
	case c >= 0x40 && c <= 0x7E:
		return true, p.parseCSIFinalByte(c, logf)
	default:
		logf("vtty: ignored unknown CSI byte %q", c)
	}
	return false, nil
}

func (p *escapeSequenceParser) parseCSIFinalByte(c rune, logf func(string, ...any)) EscapeSequence {
	if len(p.parameterChars) > 0 && p.parameterChars[0] == '?' {
		return p.parseCSIPrivateFinalByte(c, logf)
	}

	switch c {
	case 'A':
		return seqMoveCursorUp{N: p.singleParam(1)}
	case 'B':
		return seqMoveCursorDown{N: p.singleParam(1)}
	case 'C':
		return seqMoveCursorForward{N: p.singleParam(1)}
	case 'D':
		return seqMoveCursorBack{N: p.singleParam(1)}
	case 'E':
		return seqMoveCursorNextLine{N: p.singleParam(1)}
	case 'F':
		return seqMoveCursorPrevLine{N: p.singleParam(1)}
	case 'G':
		return seqMoveCursorHorizontalAbsolute{N: p.singleParam(1)}
	case 'H':
		return p.parseSetCursorPosition()
	case 'J':
		return seqEraseInDisplay{Kind: EraseInDisplayKind(p.singleParam(0))}
	case 'K':
		return seqEraseInLine{Kind: EraseInLineKind(p.singleParam(0))}
	case 'P':
		return seqDeleteCharacters{N: p.singleParam(1)}
	case 'b':
		return seqRepeatPreviousCharacter{N: p.singleParam(1)}
	case 'h':
		return seqSetMode{Param: p.singleParam(0)}
	case 'l':
		return seqResetMode{Param: p.singleParam(0)}
	case 'm':
		return seqSelectGraphicRendition{Codes: p.parseSGRParams()}
	case 'c':
		return seqFullReset{}
	default:
		logf("vtty: ignoring CSI due to unknown final byte %q", c)
		return nil
	}
}

func (p *escapeSequenceParser) parseCSIPrivateFinalByte(c rune, logf func(string, ...any)) EscapeSequence {
	params := string(p.parameterChars)
	switch {
	case params == "?2004" && c == 'h':
		return seqPrivateBracketedPasteMode{Enable: true}
	case params == "?2004" && c == 'l':
		return seqPrivateBracketedPasteMode{Enable: false}
	case params == "?7" && c == 'h':
		return seqPrivateAutowrapMode{Enable: true}
	case params == "?7" && c == 'l':
		return seqPrivateAutowrapMode{Enable: false}
	case params == "?1" && c == 'h':
		return seqPrivateApplicationCursorKeys{Enable: true}
	case params == "?1" && c == 'l':
		return seqPrivateApplicationCursorKeys{Enable: false}
	case params == "?25" && c == 'h':
		return seqPrivateCursorVisible{Enable: true}
	case params == "?25" && c == 'l':
		return seqPrivateCursorVisible{Enable: false}
	default:
		logf("vtty: ignoring unknown private CSI sequence %q %q", params, c)
		return nil
	}
}

// singleParam parses the accumulated parameter bytes as a single decimal
// integer, defaulting to def on empty or malformed input so a garbled
// parameter never aborts the sequence.
func (p *escapeSequenceParser) singleParam(def int) int {
	if len(p.parameterChars) == 0 {
		return def
	}
	n, err := strconv.Atoi(string(p.parameterChars))
	if err != nil {
		return def
	}
	return n
}

func (p *escapeSequenceParser) parseSetCursorPosition() EscapeSequence {
	row, col := 1, 1
	if len(p.parameterChars) > 0 {
		parts := strings.SplitN(string(p.parameterChars), ";", 2)
		if n, err := strconv.Atoi(parts[0]); err == nil {
			row = n
		}
		if len(parts) > 1 {
			if n, err := strconv.Atoi(parts[1]); err == nil {
				col = n
			}
		}
	}
	return seqSetCursorPosition{Row: row, Col: col}
}

// parseSGRParams splits the parameter bytes on ';' and parses each piece
// as a decimal integer. An empty parameter list means "reset"; a
// malformed piece is coerced to a sentinel no-op code so the rest of the
// codes in the sequence still apply.
func (p *escapeSequenceParser) parseSGRParams() []int {
	if len(p.parameterChars) == 0 {
		return []int{0}
	}
	pieces := strings.Split(string(p.parameterChars), ";")
	codes := make([]int, 0, len(pieces))
	for _, piece := range pieces {
		if piece == "" {
			codes = append(codes, 0)
			continue
		}
		n, err := strconv.Atoi(piece)
		if err != nil {
			codes = append(codes, sgrNoop)
			continue
		}
		codes = append(codes, n)
	}
	return codes
}

// sgrNoop is not a real SGR code; applying it is a guaranteed no-op,
// used to absorb unparseable parameters without dropping the sequence.
const sgrNoop = -1
