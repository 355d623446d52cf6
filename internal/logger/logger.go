// Package logger configures the process-wide zerolog logger. Components derive
// child loggers through Component so every line carries its origin.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process logger. It starts as a console logger at info level and
// is replaced by Configure.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	Level(zerolog.InfoLevel).
	With().Timestamp().Logger()

// Options describes where and how to log.
type Options struct {
	Level  string // debug, info, warn, error; empty means info
	Format string // console or json; empty means console
	File   string // optional rotating log file, always JSON
}

// Configure rebuilds Log from opts. The returned closer flushes and closes the
// log file, if any.
func Configure(opts Options) (io.Closer, error) {
	l, closer, err := New(os.Stderr, opts)
	if err != nil {
		return nil, err
	}
	Log = l
	return closer, nil
}

// New builds a logger writing to out (and to opts.File when set) without
// touching the package logger.
func New(out io.Writer, opts Options) (zerolog.Logger, io.Closer, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	var primary io.Writer
	switch strings.ToLower(opts.Format) {
	case "", "console":
		primary = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case "json":
		primary = out
	default:
		return zerolog.Nop(), nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	var closer io.Closer = nopCloser{}
	w := primary
	if opts.File != "" {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		closer = file
		w = zerolog.MultiLevelWriter(primary, file)
	}

	l := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return l, closer, nil
}

// Component returns a child of Log tagged with the component name.
func Component(name string) zerolog.Logger {
	return Log.With().Str("component", name).Logger()
}

func parseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
