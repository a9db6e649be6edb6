// SPDX-License-Identifier: MIT

// Package cli parses gdwg's command line, sets up logging and runs the
// load-build-print cycle. Usage errors carry exit code 2 and load or build
// failures exit code 1.
package cli
