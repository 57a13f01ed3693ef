// Package logging builds the session logger. The terminal belongs to the game
// while it runs, so logs go to a rotating file or nowhere.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults for the log file.
const (
	DefaultMaxSizeMB  = 5
	DefaultMaxBackups = 3
)

// Options configures New.
type Options struct {
	// File is the log file path. Empty discards all output.
	File string
	// Debug enables debug-level messages.
	Debug bool
	// MaxSizeMB is the size at which the file is rotated. Zero uses DefaultMaxSizeMB.
	MaxSizeMB int
	// MaxBackups is how many rotated files to keep. Zero keeps all of them.
	MaxBackups int
}

// New returns a logger and a closer for its sink.
func New(opts Options) (*log.Logger, io.Closer) {
	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)

	if opts.File != "" {
		if opts.MaxSizeMB <= 0 {
			opts.MaxSizeMB = DefaultMaxSizeMB
		}
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		}
		out, closer = lj, lj
	}

	level := log.InfoLevel
	if opts.Debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tabletennis",
		Level:           level,
	})
	return logger, closer
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
