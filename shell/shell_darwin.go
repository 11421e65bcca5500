//go:build darwin

package shell

import (
	"fmt"
	"os/user"
)

// shellCommand execs login(1) as the current user, the conventional way
// to get a properly session-registered login shell on macOS.
func shellCommand() (name string, args []string, err error) {
	u, err := user.Current()
	if err != nil {
		return "", nil, fmt.Errorf("shell: current user: %w", err)
	}
	return "/usr/bin/login", []string{"-f", u.Username}, nil
}
