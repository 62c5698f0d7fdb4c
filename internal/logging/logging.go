// Package logging sets up the diagnostic log. The TUI owns the terminal, so
// interactive sessions log to a file; one-shot commands may log to stderr.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"munros/internal/config"
)

// Options controls where and how much is logged
type Options struct {
	File  string // empty logs to Fallback
	Level string
	Debug bool // overrides Level
	// Fallback receives output when File is empty or cannot be opened
	Fallback io.Writer
}

// FromConfig builds Options from the [log] section
func FromConfig(settings config.LogSettings, debug bool) Options {
	return Options{
		File:     settings.File,
		Level:    settings.Level,
		Debug:    debug,
		Fallback: os.Stderr,
	}
}

// New creates a logger. The returned closer releases the log file, if any.
func New(opts Options) (*log.Logger, io.Closer, error) {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})

	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level: %w", err)
		}
		level = parsed
	}
	if opts.Debug {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	fallback := opts.Fallback
	if fallback == nil {
		fallback = io.Discard
	}

	if opts.File == "" {
		logger.SetOutput(fallback)
		return logger, nopCloser{}, nil
	}

	logFile, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.SetOutput(fallback)
		logger.WithError(err).Warnf("Could not open log file %s", opts.File)
		return logger, nopCloser{}, nil
	}
	logger.SetOutput(logFile)

	return logger, logFile, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
