// Package logger provides the shared charm log setup. Everything goes to
// stderr: stdout carries only the final submission.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a stderr logger with the given prefix at the global level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// SetLevel applies a configured level string to the global logger; unknown
// values fall back to warn.
func SetLevel(level string) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.WarnLevel
	}
	log.SetLevel(parsed)
}
