// Package logging builds the structured logger used by every host binary.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tomz197/orbit-arcade/internal/config"
	"github.com/tomz197/orbit-arcade/internal/invariant"
)

// New creates a logger writing to w with the configured level and format.
// It also becomes the sink for invariant violations.
func New(w io.Writer, cfg config.LogConfig, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	var formatter log.Formatter
	switch strings.ToLower(cfg.Format) {
	case "", "text", "console":
		formatter = log.TextFormatter
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	invariant.SetLogger(logger)
	return logger, nil
}

// Discard returns a logger that drops everything; used by tests and by the
// local terminal game, whose stdout belongs to the renderer.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
