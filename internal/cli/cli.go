// SPDX-License-Identifier: MIT
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Node value types accepted by -node-type.
const (
	NodeTypeInt    = "int"
	NodeTypeString = "string"
)

// Config is the validated command line.
type Config struct {
	Path      string
	NodeType  string
	LogLevel  string
	LogFormat string
	Watch     bool
}

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the Config, a boolean
// that is true when the program should exit cleanly (help), or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("gdwg", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gdwg - load a graph fixture and print its canonical rendering.

Usage:
  gdwg [options] FILE

Arguments:
  FILE
    A .yaml, .yml or .hcl graph document.

Options:
`)
		flagSet.PrintDefaults()
	}

	nodeType := flagSet.String("node-type", NodeTypeString, "Node value type. Options: 'int' or 'string'.")
	logFormat := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevel := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	watch := flagSet.Bool("watch", false, "Re-print the graph whenever FILE changes.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "expected exactly one FILE argument"}
	}

	cfg := &Config{
		Path:      flagSet.Arg(0),
		NodeType:  strings.ToLower(*nodeType),
		LogLevel:  strings.ToLower(*logLevel),
		LogFormat: strings.ToLower(*logFormat),
		Watch:     *watch,
	}

	switch cfg.NodeType {
	case NodeTypeInt, NodeTypeString:
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid node-type: must be 'int' or 'string'"}
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return cfg, false, nil
}
