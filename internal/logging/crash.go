package logging

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog"
)

// SetupCrashHandler logs fatal signals with a stack trace before exiting.
// GTK and WebKit are the usual source.
func SetupCrashHandler(logger zerolog.Logger) (stop func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c,
		syscall.SIGABRT,
		syscall.SIGBUS,
		syscall.SIGFPE,
		syscall.SIGILL,
		syscall.SIGSEGV,
	)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-c:
			handleCrash(logger, sig)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(c)
		close(done)
	}
}

// RecoverPanic logs a panic with its stack and re-panics.
// Use with defer at the top of main.
func RecoverPanic(logger zerolog.Logger) {
	if r := recover(); r != nil {
		logger.Error().
			Str("panic", fmt.Sprint(r)).
			Str("stack", string(debug.Stack())).
			Msg("PANIC")
		panic(r)
	}
}

func handleCrash(logger zerolog.Logger, sig os.Signal) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	logger.Error().
		Str("signal", sig.String()).
		Str("go", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint64("sys_kb", m.Sys/1024).
		Uint32("num_gc", m.NumGC).
		Str("stack", string(debug.Stack())).
		Msg("CRASH: caught fatal signal")

	code := 1
	if s, ok := sig.(syscall.Signal); ok {
		code = 128 + int(s)
	}
	os.Exit(code)
}
