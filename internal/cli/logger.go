// SPDX-License-Identifier: MIT
package cli

import (
	"io"
	"log/slog"
)

// NewLogger creates a slog.Logger for the given level and format. It does
// not touch the global logger.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}

	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
