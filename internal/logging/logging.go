// Package logging builds the leveled log sink the rest of the program
// writes through. The logger is constructed once and passed by reference;
// nothing in this module reads a process-global logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the log sink.
type Options struct {
	// File is the log file path. Empty disables file logging.
	File string

	// Debug lowers the level from info to debug.
	Debug bool

	// Quiet suppresses the console writer even on a TTY.
	Quiet bool
}

const (
	maxLogSizeMB = 10
	maxBackups   = 3
)

// New builds a zerolog logger writing JSON lines to a size-rotated file
// and, when stderr is a terminal and quiet is off, human-readable lines to
// the console. With no writers at all the logger discards everything.
func New(opts Options) zerolog.Logger {
	var writers []io.Writer

	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxBackups,
		})
	}

	if !opts.Quiet && isatty.IsTerminal(os.Stderr.Fd()) {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.TimeOnly,
		})
	}

	if len(writers) == 0 {
		return zerolog.Nop()
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
}

// DefaultLogFile returns the log path next to the executable, falling back
// to the working directory when the executable path is unavailable.
func DefaultLogFile() string {
	exe, err := os.Executable()
	if err != nil {
		return "cclean.log"
	}
	return filepath.Join(filepath.Dir(exe), "cclean.log")
}
