package vtty

import (
	"fmt"
	"log"

	"github.com/vtty-go/vtty/shell"
)

// Session pairs a Terminal model with the live shell it's attached to.
// It is the constructor a front-end actually calls: building a Terminal
// alone is useful for tests, but a real session needs a PTY and a
// running child process too.
type Session struct {
	Terminal *Terminal
	shell    *shell.Shell
}

// SessionOption configures a Session at construction time.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	logger    *log.Logger
	maxLines  int
	framerate int
	extraEnv  map[string]string
}

// WithSessionLogger routes diagnostics from both the Terminal and the
// Shell to l.
func WithSessionLogger(l *log.Logger) SessionOption {
	return func(c *sessionConfig) { c.logger = l }
}

// WithSessionMaxScrollbackLines bounds the Terminal's history depth.
func WithSessionMaxScrollbackLines(n int) SessionOption {
	return func(c *sessionConfig) { c.maxLines = n }
}

// WithSessionFramerate sets the shell's target frame rate, which
// governs its read poll budget.
func WithSessionFramerate(fps int) SessionOption {
	return func(c *sessionConfig) { c.framerate = fps }
}

// WithSessionExtraEnv adds environment variables to the child shell's
// environment, beyond TERM and TERM_PROGRAM.
func WithSessionExtraEnv(env map[string]string) SessionOption {
	return func(c *sessionConfig) { c.extraEnv = env }
}

// NewSession constructs a Terminal sized cols×rows and spawns a shell
// attached to it, as a side effect of construction. PTY allocation or
// exec failure is fatal and returned as an error; nothing is leaked if
// construction fails partway.
func NewSession(cols, rows int, opts ...SessionOption) (*Session, error) {
	cfg := sessionConfig{maxLines: defaultMaxScrollbackLines, framerate: 60}
	for _, opt := range opts {
		opt(&cfg)
	}

	var termOpts []Option
	if cfg.logger != nil {
		termOpts = append(termOpts, WithLogger(cfg.logger))
	}
	termOpts = append(termOpts, WithMaxScrollbackLines(cfg.maxLines))

	var shellOpts []shell.Option
	if cfg.logger != nil {
		shellOpts = append(shellOpts, shell.WithLogger(cfg.logger))
	}
	shellOpts = append(shellOpts, shell.WithFramerate(cfg.framerate))
	if cfg.extraEnv != nil {
		shellOpts = append(shellOpts, shell.WithExtraEnv(cfg.extraEnv))
	}

	sh, err := shell.New(cols, rows, shellOpts...)
	if err != nil {
		return nil, fmt.Errorf("vtty: new session: %w", err)
	}

	return &Session{
		Terminal: New(cols, rows, termOpts...),
		shell:    sh,
	}, nil
}

// ReadFrame advances one frame's worth of shell output into the
// Terminal. n is the number of bytes consumed; eof is true once the
// shell has exited and there is nothing left to read.
func (s *Session) ReadFrame() (n int, eof bool, err error) {
	buf := make([]byte, shell.RecommendedBufferSize)
	n, eof, err = s.shell.Read(buf)
	if n > 0 {
		s.Terminal.Write(buf[:n])
	}
	return n, eof, err
}

// Write forwards keystrokes (or pasted text) to the shell.
func (s *Session) Write(p []byte) (int, error) {
	return s.shell.Write(p)
}

// Resize updates both the shell's PTY window size and the Terminal's
// own notion of its dimensions.
func (s *Session) Resize(cols, rows int) error {
	if err := s.shell.Resize(cols, rows); err != nil {
		return err
	}
	s.Terminal.mu.Lock()
	s.Terminal.cols, s.Terminal.rows = cols, rows
	s.Terminal.cursorX = clampInt(s.Terminal.cursorX, 0, cols-1)
	s.Terminal.cursorY = clampInt(s.Terminal.cursorY, 0, rows-1)
	s.Terminal.mu.Unlock()
	return nil
}

// Close releases the session's PTY. It does not kill the child shell.
func (s *Session) Close() error {
	return s.shell.Close()
}
