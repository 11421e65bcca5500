// Package shell owns the PTY lifecycle: allocating a master/slave pair,
// forking and execing an interactive shell, and presenting a
// frame-friendly read loop plus a blocking writer to the rest of the
// program.
package shell

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

// RecommendedBufferSize is the buffer capacity Read is tuned against:
// a full read fills the caller's buffer to exactly this size, at which
// point fdDrained stays clear so the next Read skips its poll.
const RecommendedBufferSize = 4096

const (
	defaultTargetFramerate = 60
	defaultRenderAllowance = 3 * time.Millisecond
)

// Option configures a Shell at construction time.
type Option func(*Shell)

// WithLogger routes diagnostic messages to l. The default discards them.
func WithLogger(l *log.Logger) Option {
	return func(s *Shell) { s.logger = l }
}

// WithFramerate sets the target frame rate used to compute the read
// poll timeout. The default is 60.
func WithFramerate(fps int) Option {
	return func(s *Shell) { s.targetFramerate = fps }
}

// WithExtraEnv adds, or overrides, environment variables in the child's
// environment beyond TERM and TERM_PROGRAM.
func WithExtraEnv(env map[string]string) Option {
	return func(s *Shell) { s.extraEnv = env }
}

// Shell is a running child shell attached to a PTY.
type Shell struct {
	id   string
	cmd  *exec.Cmd
	ptmx *os.File

	targetFramerate int
	extraEnv        map[string]string
	logger          *log.Logger

	fdDrained bool
}

// ID returns the shell's session identifier, assigned at construction
// and stable for its lifetime. It has no meaning beyond correlating log
// lines from one session.
func (s *Shell) ID() string {
	return s.id
}

// New allocates a PTY sized cols×rows, forks, and execs the platform's
// shell command (see shellCommand) as a session leader attached to the
// slave end. The shell is running by the time New returns.
func New(cols, rows int, opts ...Option) (*Shell, error) {
	s := &Shell{id: uuid.NewString(), targetFramerate: defaultTargetFramerate, fdDrained: true}
	for _, opt := range opts {
		opt(s)
	}

	name, args, err := shellCommand()
	if err != nil {
		return nil, fmt.Errorf("shell: resolve command: %w", err)
	}

	s.cmd = exec.Command(name, args...)
	s.cmd.Env = composeEnv(s.extraEnv)
	if home, err := os.UserHomeDir(); err == nil {
		s.cmd.Dir = home
	}

	ptmx, err := pty.StartWithSize(s.cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, fmt.Errorf("shell: start pty: %w", err)
	}
	s.ptmx = ptmx

	return s, nil
}

// composeEnv inherits the parent's environment, sets TERM and
// TERM_PROGRAM for VT-100/ECMA-48/xterm compatibility, and applies any
// caller-supplied overrides last.
func composeEnv(extra map[string]string) []string {
	overrides := map[string]string{
		"TERM":         "xterm-256color",
		"TERM_PROGRAM": "vtty",
	}
	for k, v := range extra {
		overrides[k] = v
	}

	env := make([]string, 0, len(os.Environ())+len(overrides))
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if _, overridden := overrides[key]; !overridden {
			env = append(env, kv)
		}
	}
	for k, v := range overrides {
		env = append(env, k+"="+v)
	}
	return env
}

func (s *Shell) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf("[%s] "+format, append([]any{s.id[:8]}, args...)...)
	}
}

// pollBudget is the poll timeout applied when the fdDrained latch is
// set: one frame period minus a small render allowance, so the caller
// reliably gets a chance to paint even when the shell is idle.
func (s *Shell) pollBudget() time.Duration {
	frame := time.Second / time.Duration(s.targetFramerate)
	budget := frame - defaultRenderAllowance
	if budget < 0 {
		budget = 0
	}
	return budget
}

// Read fills buf with output from the shell. It is frame-budgeted: once
// the previous read left the kernel buffer empty (fdDrained), Read
// polls the master with a short timeout and returns n=0 on timeout so
// the caller can render a frame even when the shell is idle. While the
// kernel buffer is known to still hold data, Read skips the poll and
// reads immediately.
//
// eof is true once the shell has exited and there is nothing left to
// read; err is non-nil only for a fatal I/O failure.
func (s *Shell) Read(buf []byte) (n int, eof bool, err error) {
	if s.fdDrained {
		ready, err := s.pollReadable(s.pollBudget())
		if err != nil {
			s.logf("poll failed: %v", err)
			return 0, false, fmt.Errorf("shell: poll: %w", err)
		}
		if !ready {
			return 0, false, nil
		}
	}

	n, err = s.ptmx.Read(buf)
	if err != nil {
		if n == 0 {
			s.logf("shell exited")
			return 0, true, nil
		}
		return n, false, nil
	}
	s.fdDrained = n < len(buf)
	return n, false, nil
}

// pollReadable blocks up to timeout waiting for the master descriptor
// to become readable. A hang-up counts as readable, so the read that
// follows reports the end of stream. A negative poll return is fatal per
// the error taxonomy; it is surfaced as an error here.
func (s *Shell) pollReadable(timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{
		Fd:     int32(s.ptmx.Fd()),
		Events: unix.POLLIN,
	}}
	n, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if err != nil {
		return false, err
	}
	return n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP) != 0, nil
}

// Write forwards bytes to the shell. Writes are blocking; a non-nil
// error is fatal per the error taxonomy (the pipe is gone).
func (s *Shell) Write(p []byte) (int, error) {
	n, err := s.ptmx.Write(p)
	if err != nil {
		return n, fmt.Errorf("shell: write: %w", err)
	}
	return n, nil
}

// Resize updates the PTY's window size, e.g. after a front-end resize
// event.
func (s *Shell) Resize(cols, rows int) error {
	if err := pty.Setsize(s.ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)}); err != nil {
		return fmt.Errorf("shell: resize: %w", err)
	}
	return nil
}

// Close releases the PTY master descriptor. It does not kill the child;
// callers that need that should signal s.cmd.Process directly.
func (s *Shell) Close() error {
	return s.ptmx.Close()
}
