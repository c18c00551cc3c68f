package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

func parseFormat(s string) (log.Formatter, error) {
	switch s {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

func parseLevel(s string) (log.Level, error) {
	if s == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(s)
}

// NewLogger builds a logger writing to w.
func NewLogger(cfg LoggingConfig, w io.Writer) (*log.Logger, error) {
	formatter, err := parseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		Prefix:          "shooter",
	}), nil
}

// OpenLogger builds the logger described by cfg. The terminal belongs to the
// game, so output goes to cfg.File, or nowhere when File is empty. The
// returned close function releases the file.
func OpenLogger(cfg LoggingConfig) (*log.Logger, func() error, error) {
	if cfg.File == "" {
		logger, err := NewLogger(cfg, io.Discard)
		return logger, func() error { return nil }, err
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := NewLogger(cfg, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
