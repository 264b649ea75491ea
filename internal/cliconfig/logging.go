package cliconfig

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(zerolog.WarnLevel)
}

// Logger returns the package logger. Diagnostics go to stderr only;
// the launcher forwards arguments, it never echoes them to stdout.
func Logger() zerolog.Logger {
	return logger
}

// SetDebug switches the package logger between warn (default) and
// debug verbosity.
func SetDebug(enabled bool) {
	if enabled {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.WarnLevel)
	}
}
