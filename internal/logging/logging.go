// SPDX-License-Identifier: MIT

// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Options selects the logger's level and format.
type Options struct {
	Level  string // zerolog level name; unknown or empty means info
	Pretty bool   // force the human-readable console format
}

// New returns a logger writing to stderr. The console format is used when
// Pretty is set or stderr is a terminal; otherwise lines are JSON.
func New(opts Options) zerolog.Logger {
	return NewWithWriter(os.Stderr, opts.Pretty || isTerminal(os.Stderr), opts.Level)
}

// NewWithWriter is New with an explicit sink and format.
func NewWithWriter(w io.Writer, pretty bool, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: os.Getenv("NO_COLOR") != ""}
	}

	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return lvl
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
