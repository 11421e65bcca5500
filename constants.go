package vtty

// C0 control codes and other byte constants referenced throughout the
// decoder, parser, and model.
const (
	byteBell           = 0x07
	byteBackspace      = 0x08
	byteTab            = 0x09
	byteLineFeed       = 0x0A
	byteFormFeed       = 0x0C
	byteCarriageReturn = 0x0D
	byteEscape         = 0x1B
	byteDelete         = 0x7F
	byteSpace          = 0x20
)

// Escape sequence family introducers, the byte immediately following ESC.
const (
	introducerCSI          = '['
	introducerDCS          = 'P'
	introducerOSC          = ']'
	introducerG0Designator = '('
	introducerNonStandard  = ' '
	introducerReverseIndex = 'M'
)

// replacementChar is substituted for invalid or undecodable UTF-8 input.
const replacementChar = '�'

// defaultMaxScrollbackLines bounds scrollback growth so a long-running
// session doesn't retain unbounded history.
const defaultMaxScrollbackLines = 5000
