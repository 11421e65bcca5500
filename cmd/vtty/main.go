// Command vtty runs an interactive shell inside the headless terminal
// model and renders its grid straight to the controlling terminal. It
// is a minimal reference front-end, not a full-featured multiplexer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vtty",
		Short: "Run a shell inside the vtty terminal model",
	}
	cmd.AddCommand(newRunCmd())
	return cmd
}
