// Package diagnostics sets up the logging and colored-output
// conventions shared by the three command-line drivers: a leveled
// go-logging logger writing to stderr, and fatih/color helpers for the
// handful of messages worth calling out (warnings about the
// primitive-root search, fatal errors).
package diagnostics

import (
	"os"

	"github.com/fatih/color"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("elgamal")

var stderrFormat = logging.MustStringFormatter(
	`%{color}elgamal ▶ %{level:.4s}%{color:reset} %{message}`,
)

// Setup installs a stderr logging backend at the given level and
// returns the shared logger. verbose maps to logging.DEBUG; otherwise
// the default is logging.NOTICE, matching the amount of chatter a
// command-line tool should produce by default.
func Setup(verbose bool) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, stderrFormat)
	leveled := logging.AddModuleLevel(formatted)
	level := logging.NOTICE
	if verbose {
		level = logging.DEBUG
	}
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
	return log
}

// Log returns the shared logger without reconfiguring it.
func Log() *logging.Logger {
	return log
}

// Warn prints a yellow warning line directly to stderr, for the
// primitive-root caveat and similar messages meant to catch a human
// operator's eye regardless of log level.
func Warn(format string, args ...interface{}) {
	yellow := color.New(color.FgHiYellow)
	yellow.EnableColor()
	_, _ = yellow.Fprintf(os.Stderr, format+"\n", args...)
}

// Fail prints a red error line directly to stderr.
func Fail(format string, args ...interface{}) {
	red := color.New(color.FgHiRed)
	red.EnableColor()
	_, _ = red.Fprintf(os.Stderr, format+"\n", args...)
}
