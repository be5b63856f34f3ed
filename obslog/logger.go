// Package obslog provides the engine's structured logging, a small
// wrapper over zerolog: a package-level sink every strategy package
// logs through, configurable once by the host process (typically
// cmd/webppl) and otherwise invisible to the inference code that calls
// Debug/Warn.
package obslog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)

// Configure replaces the package-level logger's output and level. Call
// once at process startup (cmd/webppl does this); library code never
// needs to.
func Configure(out io.Writer, level zerolog.Level) {
	logger = zerolog.New(out).With().Timestamp().Logger().Level(level)
}

// Debug logs a run's routine lifecycle events (strategy install/teardown).
func Debug(msg string, fields map[string]any) {
	event := logger.Debug()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// Info logs a user-facing event a host program asked to surface (e.g.
// display's output), as distinct from Debug's internal lifecycle noise.
func Info(msg string, fields map[string]any) {
	event := logger.Info()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// Warn logs a run's abnormal exit (any of the four sentinel error kinds).
func Warn(msg string, fields map[string]any) {
	event := logger.Warn()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}
