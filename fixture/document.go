// SPDX-License-Identifier: MIT
// Package: gdwg/fixture
//
// document.go - the decoded form shared by the YAML and HCL front ends.

package fixture

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors.
var (
	// ErrUnsupportedFormat reports a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("fixture: unsupported document format")
	// ErrUnknownTopology reports a topology kind the builder does not offer.
	ErrUnknownTopology = errors.New("fixture: unknown topology kind")
	// ErrInvalidDocument reports a document that decoded but cannot be built.
	ErrInvalidDocument = errors.New("fixture: invalid document")
)

// Document is one graph description.
type Document struct {
	Nodes    []string  `yaml:"nodes" hcl:"nodes,optional"`
	Edges    []Edge    `yaml:"edges" hcl:"edge,block"`
	Topology *Topology `yaml:"topology" hcl:"topology,block"`
}

// Edge is one src -> dst entry. A nil Weight means the edge is unweighted.
type Edge struct {
	From   string `yaml:"from" hcl:"from"`
	To     string `yaml:"to" hcl:"to"`
	Weight *int64 `yaml:"weight,omitempty" hcl:"weight,optional"`
}

// Topology asks the builder for a generated shape.
type Topology struct {
	Kind        string  `yaml:"kind" hcl:"kind"`
	N           int     `yaml:"n" hcl:"n,optional"`
	Rows        int     `yaml:"rows" hcl:"rows,optional"`
	Cols        int     `yaml:"cols" hcl:"cols,optional"`
	Seed        int64   `yaml:"seed" hcl:"seed,optional"`
	Probability float64 `yaml:"probability" hcl:"probability,optional"`
	Weighted    bool    `yaml:"weighted" hcl:"weighted,optional"`
	MinWeight   int64   `yaml:"min_weight" hcl:"min_weight,optional"`
	MaxWeight   int64   `yaml:"max_weight" hcl:"max_weight,optional"`
	Symmetric   bool    `yaml:"symmetric" hcl:"symmetric,optional"`
}

// Topology kinds.
const (
	KindPath         = "path"
	KindCycle        = "cycle"
	KindStar         = "star"
	KindWheel        = "wheel"
	KindComplete     = "complete"
	KindGrid         = "grid"
	KindRandomSparse = "random_sparse"
)

// Default weight range for weighted topologies without explicit bounds.
const (
	defaultMinWeight = 1
	defaultMaxWeight = 100
)

// ParseString is the identity parser for string-valued graphs.
func ParseString(s string) (string, error) { return s, nil }

// ParseInt parses a decimal node value.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: node %q is not an integer", ErrInvalidDocument, s)
	}

	return v, nil
}
