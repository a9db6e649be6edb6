// SPDX-License-Identifier: MIT
package cli

import (
	"cmp"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/gdwg/fixture"
)

// Run executes gdwg with args and returns the process exit code. With
// -watch it blocks until ctx is cancelled, re-printing on every reload.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, exit, err := Parse(args, stderr)
	if exit {
		return 0
	}
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			io.WriteString(stderr, exitErr.Message+"\n")
			return exitErr.Code
		}
		return 2
	}

	logger := NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	logger.Debug("Configuration parsed.", "path", cfg.Path, "node_type", cfg.NodeType, "watch", cfg.Watch)

	w, err := fixture.NewWatcher(cfg.Path, logger)
	if err != nil {
		logger.Error("Failed to load fixture.", "path", cfg.Path, "error", err)
		return 1
	}
	if err := render(logger, cfg.NodeType, w.Document(), stdout); err != nil {
		logger.Error("Failed to build graph.", "path", cfg.Path, "error", err)
		return 1
	}
	if !cfg.Watch {
		return 0
	}

	w.OnChange(func(doc *fixture.Document) {
		if err := render(logger, cfg.NodeType, doc, stdout); err != nil {
			logger.Warn("Reloaded fixture does not build.", "path", cfg.Path, "error", err)
		}
	})
	stop, err := w.Watch()
	if err != nil {
		logger.Error("Failed to watch fixture.", "path", cfg.Path, "error", err)
		return 1
	}
	defer stop()

	logger.Info("Watching fixture.", "path", cfg.Path)
	<-ctx.Done()

	return 0
}

// render builds doc with the configured node type and writes its rendering.
func render(logger *slog.Logger, nodeType string, doc *fixture.Document, out io.Writer) error {
	if nodeType == NodeTypeInt {
		return emit(logger, doc, fixture.ParseInt, out)
	}

	return emit(logger, doc, fixture.ParseString, out)
}

func emit[N cmp.Ordered](logger *slog.Logger, doc *fixture.Document, parse func(string) (N, error), out io.Writer) error {
	g, err := fixture.Build(doc, parse)
	if err != nil {
		return err
	}
	logger.Debug("Graph built.", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	_, err = g.WriteTo(out)

	return err
}
