// Package sysutil builds the process logger for the server entrypoint.
package sysutil

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultService names the service on log lines when none is configured.
const DefaultService = "go-career-backend"

// SetLogLevel sets the global zerolog level from a LOG_LEVEL value and
// returns the level applied. "warning" is read as warn. Blank, unknown,
// trace and disabled values all fall back to info.
func SetLogLevel(lvl string) zerolog.Level {
	name := strings.ToLower(strings.TrimSpace(lvl))
	if name == "warning" {
		name = "warn"
	}
	parsed, err := zerolog.ParseLevel(name)
	if err != nil || parsed < zerolog.DebugLevel || parsed > zerolog.PanicLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	return parsed
}

// NewLogger returns a logger writing JSON to w, or colourless console lines
// when pretty is set. Each line carries a timestamp and the service name.
func NewLogger(w io.Writer, pretty bool, service string) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	if service = strings.TrimSpace(service); service == "" {
		service = DefaultService
	}
	return zerolog.New(w).With().Timestamp().Str("service", service).Logger()
}
