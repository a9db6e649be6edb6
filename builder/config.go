// SPDX-License-Identifier: MIT
// Package: gdwg/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn       = DefaultIDFn   ("0","1","2",...)
//   • rng        = nil           (pure/deterministic unless seeded)
//   • weightFn   = nil           (edges are unweighted)
//   • symmetric  = false         (one directed edge per topology link)
//   • loops      = false         (RandomSparse never samples u -> u)
//   • left/right = "L" / "R"

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gdwg/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator; nil means unweighted edges.
	weightFn WeightFn

	// symmetric mirrors every emitted edge v -> u.
	symmetric bool
	// loops lets RandomSparse sample self-loops.
	loops bool

	// Bipartite ID prefixes (left/right). Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// edgeOptions draws the weight for the next edge. Unweighted configs return
// no options, which core reads as "no weight".
func (c builderConfig) edgeOptions() []core.EdgeOption[int64] {
	if c.weightFn == nil {
		return nil
	}

	return []core.EdgeOption[int64]{core.WithWeight(c.weightFn(c.rng))}
}
