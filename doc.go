// Package vtty implements a headless VT-100/ECMA-48/xterm-compatible
// terminal emulator core.
//
// It owns two things: a resumable byte-stream pipeline (UTF-8 decoding,
// escape sequence parsing, SGR-driven text styling) and the scrollback
// grid that pipeline mutates. It does not own a display; a front-end
// reads the grid with [Terminal.Snapshot] once per frame and paints it.
//
// # Quick start
//
//	term := vtty.New(80, 24)
//	term.Write([]byte("\x1b[1;31mHello\x1b[0m\r\n"))
//	snap := term.Snapshot()
//	fmt.Println(snap.Lines[0].String())
//
// Feeding a live shell's output is the intended use; see package
// vtty/shell for the PTY side of that pipeline.
package vtty
