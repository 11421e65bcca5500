package vtty

// BlinkMode is the current text blink rate, if any.
type BlinkMode int

const (
	BlinkNone BlinkMode = iota
	BlinkSlow
	BlinkRapid
)

// TextStyle is the set of rendering attributes applied to a printed
// character. A TextStyle value is copied into each DecoratedChar at
// insertion time: changing the current style never repaints characters
// already on the grid.
type TextStyle struct {
	Bold          bool
	Faint         bool
	Italic        bool
	Underlined    bool
	ReverseVideo  bool
	Invisible     bool
	Strikethrough bool
	Blinking      BlinkMode
	Foreground    Color
	Background    Color
}

// defaultTextStyle is the style a freshly reset terminal, or a terminal
// at construction time, starts with.
func defaultTextStyle() TextStyle {
	return TextStyle{
		Foreground: ColorDefault,
		Background: ColorDefault,
	}
}

// applySGRCode mutates style in place per one numeric SGR parameter.
// Unrecognized codes are logged and ignored by the caller (see
// Terminal.applySGR); this function only handles codes it understands.
func applySGRCode(style *TextStyle, code int) bool {
	switch {
	case code == 0:
		*style = defaultTextStyle()
	case code == 1:
		style.Bold = true
	case code == 2:
		style.Faint = true
	case code == 3:
		style.Italic = true
	case code == 4:
		style.Underlined = true
	case code == 5:
		style.Blinking = BlinkRapid
	case code == 6:
		style.Blinking = BlinkSlow
	case code == 7:
		style.ReverseVideo = true
	case code == 8:
		style.Invisible = true
	case code == 9:
		style.Strikethrough = true
	case code == 22:
		style.Bold = false
		style.Faint = false
	case code == 23:
		style.Italic = false
	case code == 24:
		style.Underlined = false
	case code == 25:
		style.Blinking = BlinkNone
	case code == 27:
		style.ReverseVideo = false
	case code == 28:
		style.Invisible = false
	case code == 29:
		style.Strikethrough = false
	case code == 39:
		style.Foreground = ColorDefault
	case code == 49:
		style.Background = ColorDefault
	default:
		if fg, ok := foregroundColorFromSGR(code); ok {
			style.Foreground = fg
			return true
		}
		if bg, ok := backgroundColorFromSGR(code); ok {
			style.Background = bg
			return true
		}
		return false
	}
	return true
}

// DecoratedChar is a single scalar value paired with the text style in
// effect when it was inserted.
type DecoratedChar struct {
	Char  rune
	Style TextStyle
}

// newDecoratedChar builds a DecoratedChar from the current style.
func newDecoratedChar(c rune, style TextStyle) DecoratedChar {
	return DecoratedChar{Char: c, Style: style}
}
