// Package logging configures the slog logger shared by commands and adapters.
//
// LOG_FORMAT selects text or json; without it, text is used when stderr is a
// terminal and JSON otherwise. LOG_LEVEL selects debug, info, warn or error
// and defaults to warn so that command output stays readable. Logs always go
// to stderr because stdout carries native messaging frames.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	// LevelSilent is above every level the code logs at.
	LevelSilent = slog.LevelError + 4
)

var level = new(slog.LevelVar)

type Options struct {
	Format string
	Level  string
	Output io.Writer
	// Terminal reports whether Output is a TTY when Format is empty.
	Terminal bool
}

// New builds a logger from LOG_FORMAT and LOG_LEVEL writing to stderr.
func New() *slog.Logger {
	fd := os.Stderr.Fd()
	return NewWithOptions(Options{
		Format:   os.Getenv("LOG_FORMAT"),
		Level:    os.Getenv("LOG_LEVEL"),
		Output:   os.Stderr,
		Terminal: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	})
}

func NewWithOptions(opts Options) *slog.Logger {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	level.Set(ParseLevel(opts.Level))
	handlerOpts := &slog.HandlerOptions{Level: level}

	if resolveFormat(opts.Format, opts.Terminal) == FormatText {
		return slog.New(slog.NewTextHandler(output, handlerOpts))
	}
	return slog.New(slog.NewJSONHandler(output, handlerOpts))
}

// SetDefault creates a logger with New and installs it as the slog default.
func SetDefault() *slog.Logger {
	logger := New()
	slog.SetDefault(logger)
	return logger
}

// SetLevel changes the level of every logger built by this package.
func SetLevel(l slog.Level) {
	level.Set(l)
}

func GetLevel() slog.Level {
	return level.Level()
}

func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func resolveFormat(raw string, terminal bool) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case FormatText:
		return FormatText
	case FormatJSON:
		return FormatJSON
	}
	if terminal {
		return FormatText
	}
	return FormatJSON
}
