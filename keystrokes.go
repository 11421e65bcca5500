package vtty

// ArrowKey identifies one of the four arrow keys for EncodeArrowKey.
type ArrowKey int

const (
	ArrowUp ArrowKey = iota
	ArrowDown
	ArrowRight
	ArrowLeft
)

func (k ArrowKey) finalByte() byte {
	switch k {
	case ArrowUp:
		return 'A'
	case ArrowDown:
		return 'B'
	case ArrowRight:
		return 'C'
	case ArrowLeft:
		return 'D'
	default:
		return 'A'
	}
}

// EncodeEnter returns the byte a front-end should send for the Enter
// key: a carriage return, not a line feed.
func EncodeEnter() []byte {
	return []byte{byteCarriageReturn}
}

// EncodeBackspace returns the byte a front-end should send for the
// Backspace key.
func EncodeBackspace() []byte {
	return []byte{byteBackspace}
}

// EncodeCtrlLetter returns the control byte for Ctrl held with an
// ASCII letter (case-insensitive). It panics if letter is not in
// 'a'..'z' or 'A'..'Z', since that is a front-end programming error,
// not a runtime condition the model should absorb.
func EncodeCtrlLetter(letter byte) []byte {
	switch {
	case letter >= 'a' && letter <= 'z':
		return []byte{letter - 'a' + 1}
	case letter >= 'A' && letter <= 'Z':
		return []byte{letter - 'A' + 1}
	default:
		panic("vtty: EncodeCtrlLetter requires an ASCII letter")
	}
}

// EncodeArrowKey returns the escape sequence for an arrow key, using
// the application-cursor-keys variant (ESC O X) when appKeys is true
// and the normal variant (ESC [ X) otherwise. appKeys should be taken
// from Snapshot.ApplicationCursorKeys.
func EncodeArrowKey(k ArrowKey, appKeys bool) []byte {
	introducer := byte(introducerCSI)
	if appKeys {
		introducer = 'O'
	}
	return []byte{byteEscape, introducer, k.finalByte()}
}
