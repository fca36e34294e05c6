// Package cmd provides Cobra CLI commands for paysurface.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/paysurface/internal/cli"
	"github.com/bnema/paysurface/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "paysurface",
		Short: "Show payment checkout pages in an embedded modal overlay",
		Long: `Paysurface - a checkout overlay for desktop, mobile and browser hosts.

Opens a payment provider's checkout URL in an embedded browser surface inside a
centered modal, sized 16:9 or 9:16 to the host viewport, and reports whether the
payment completed, failed or was dismissed.

Features:
  - Chromium (CDP) and WebKitGTK surfaces on desktop
  - Page bridge: window.paysurface.complete(), fail() and close()
  - Deep link URLs that end the checkout
  - Live relayout on resize and rotation
  - Terminal preview of the overlay state machine`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// ExitError ends the process with Code after its message was already shown.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		os.Exit(exit.Code)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
