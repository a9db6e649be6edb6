// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gdwg/internal/cli"
)

// TestParse VERIFIES defaults, validation and exit codes.
func TestParse(t *testing.T) {
	var out bytes.Buffer

	cfg, exit, err := cli.Parse([]string{"g.yaml"}, &out)
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, &cli.Config{Path: "g.yaml", NodeType: "string", LogLevel: "info", LogFormat: "text"}, cfg)

	cfg, _, err = cli.Parse([]string{"-node-type", "INT", "-log-format", "json", "-watch", "g.hcl"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "int", cfg.NodeType)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.Watch)

	_, exit, err = cli.Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)

	for _, args := range [][]string{
		{},
		{"a", "b"},
		{"-node-type", "float", "g.yaml"},
		{"-log-format", "xml", "g.yaml"},
		{"-log-level", "trace", "g.yaml"},
		{"-bogus", "g.yaml"},
	} {
		_, _, err := cli.Parse(args, &out)
		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr, "%v", args)
		assert.Equal(t, 2, exitErr.Code)
	}
}

// TestRun VERIFIES the printed rendering and exit codes.
func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "g.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`nodes: ["10", "9"]
edges:
  - {from: "9", to: "10", weight: 3}
`), 0o644))
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`edges: [{from: "1", to: "2"}]`), 0o644))

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), []string{"-node-type", "int", good}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "9 (\n  9 -> 10 | W | 3\n)\n10 (\n)\n", stdout.String())

	stdout.Reset()
	code = cli.Run(context.Background(), []string{good}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "10 (\n)\n9 (\n  9 -> 10 | W | 3\n)\n", stdout.String(), "string order")

	assert.Equal(t, 1, cli.Run(context.Background(), []string{bad}, &stdout, &stderr))
	assert.Equal(t, 1, cli.Run(context.Background(), []string{filepath.Join(dir, "none.yaml")}, &stdout, &stderr))
	assert.Equal(t, 2, cli.Run(context.Background(), nil, &stdout, &stderr))
}

// TestRun_WatchStopsOnCancel VERIFIES -watch prints once and returns on cancel.
func TestRun_WatchStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`nodes: ["a"]`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	code := cli.Run(ctx, []string{"-watch", "-log-format", "json", path}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "a (\n)\n", stdout.String())
	assert.Contains(t, stderr.String(), `"msg":"Watching fixture."`)
}

// TestNewLogger VERIFIES level filtering and the JSON handler.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := cli.NewLogger("warn", "json", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	cli.NewLogger("bogus", "text", &buf).Info("fallback")
	assert.Contains(t, buf.String(), "level=INFO")
}
