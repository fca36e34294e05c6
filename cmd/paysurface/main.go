package main

import (
	"runtime"

	"github.com/bnema/paysurface/internal/cli/cmd"
	"github.com/bnema/paysurface/internal/domain/build"
	"github.com/bnema/paysurface/internal/infrastructure/surface"
	"github.com/bnema/paysurface/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// GTK must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	logger := logging.NewFromEnv()
	stopCrashHandler := logging.SetupCrashHandler(logger)
	defer stopCrashHandler()
	defer logging.RecoverPanic(logger)

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Backends:  surface.NewFactory(surface.Detect(), surface.Options{}).Backends(),
	})

	// Default: run CLI (shows help if no subcommand)
	cmd.Execute()
}
