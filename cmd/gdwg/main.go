// SPDX-License-Identifier: MIT

// Command gdwg loads a graph fixture (YAML or HCL) and prints the graph's
// canonical rendering, optionally re-printing whenever the file changes.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/gdwg/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
