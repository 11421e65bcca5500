package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vtty-go/vtty"
)

func newRunCmd() *cobra.Command {
	var scrollbackLines int
	var framerate int
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start a shell under the vtty terminal model and render it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadFileConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("scrollback-lines") {
				cfg.ScrollbackLines = scrollbackLines
			} else if cfg.ScrollbackLines == 0 {
				cfg.ScrollbackLines = scrollbackLines
			}
			if cmd.Flags().Changed("framerate") {
				cfg.TargetFramerate = framerate
			} else if cfg.TargetFramerate == 0 {
				cfg.TargetFramerate = framerate
			}
			return runSession(cfg)
		},
	}

	cmd.Flags().IntVar(&scrollbackLines, "scrollback-lines", 5000, "maximum scrollback lines to retain")
	cmd.Flags().IntVar(&framerate, "framerate", 60, "target render framerate, governs the shell read poll budget")
	defaultConfig := filepath.Join(configDir(), "config.yaml")
	cmd.Flags().StringVar(&configPath, "config", defaultConfig, "path to an optional YAML config file")

	return cmd
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vtty"
	}
	return filepath.Join(home, ".vtty")
}

// runSession wires a vtty.Session to the controlling terminal: raw mode
// on stdin when it's a real TTY, a poll-driven read loop rendering
// frames, and passthrough of stdin bytes to the shell.
func runSession(cfg fileConfig) error {
	sessionID := uuid.New().String()
	logger := log.New(os.Stderr, fmt.Sprintf("vtty[%s] ", sessionID[:8]), log.LstdFlags)

	stdinFd := int(os.Stdin.Fd())
	cols, rows := 80, 24
	if isatty.IsTerminal(uintptr(stdinFd)) {
		if w, h, err := term.GetSize(stdinFd); err == nil {
			cols, rows = w, h
		}
	}

	sess, err := vtty.NewSession(cols, rows,
		vtty.WithSessionLogger(logger),
		vtty.WithSessionMaxScrollbackLines(cfg.ScrollbackLines),
		vtty.WithSessionFramerate(cfg.TargetFramerate),
	)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.Close()

	var restore *term.State
	if isatty.IsTerminal(uintptr(stdinFd)) {
		restore, err = term.MakeRaw(stdinFd)
		if err != nil {
			return fmt.Errorf("set raw mode: %w", err)
		}
		defer term.Restore(stdinFd, restore)
	}

	go pumpStdin(os.Stdin, sess)

	frame := time.Second / time.Duration(cfg.TargetFramerate)
	for {
		_, eof, err := sess.ReadFrame()
		if err != nil {
			return fmt.Errorf("read frame: %w", err)
		}
		if eof {
			return nil
		}
		render(os.Stdout, sess.Terminal.Snapshot())
		time.Sleep(frame / 4)
	}
}

// pumpStdin forwards raw input bytes to the shell until stdin closes.
func pumpStdin(r io.Reader, sess *vtty.Session) {
	buf := make([]byte, 1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			sess.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// render redraws the visible viewport, homing the cursor first. This is
// a deliberately simple full repaint; a production front-end would
// diff against the previous frame.
func render(w io.Writer, snap vtty.Snapshot) {
	fmt.Fprint(w, "\x1b[H\x1b[2J")
	for _, line := range snap.Lines {
		fmt.Fprintln(w, line.String())
	}
	if snap.CursorVisible {
		fmt.Fprintf(w, "\x1b[%d;%dH", snap.CursorY+1, snap.CursorX+1)
	}
}
