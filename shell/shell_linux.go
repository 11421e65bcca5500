//go:build linux

package shell

import (
	"fmt"
	"os"
)

// shellCommand resolves the user's preferred shell and execs it as a
// login shell, inheriting the parent's environment (composeEnv layers
// TERM/TERM_PROGRAM on top).
func shellCommand() (name string, args []string, err error) {
	sh := os.Getenv("SHELL")
	if sh == "" {
		sh = "/bin/bash"
	}
	if _, err := os.Stat(sh); err != nil {
		return "", nil, fmt.Errorf("shell: %s not found: %w", sh, err)
	}
	return sh, []string{"--login"}, nil
}
