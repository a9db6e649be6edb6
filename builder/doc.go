// SPDX-License-Identifier: MIT

// Package builder populates core graphs with standard topologies.
//
// A Constructor is a closure over its size parameters. BuildGraph resolves
// BuilderOption values into one immutable config and runs constructors in
// order against a fresh *core.Graph[string, int64]; Apply does the same for
// an existing graph, which is how fixture documents seed their topology.
//
// Topologies:
//
//   - Path, Cycle:                  chains over idFn(0..n-1).
//   - Star, Wheel:                  spokes from the fixed CenterNodeID hub.
//   - Complete, CompleteBipartite:  every ordered pair, or every L_i -> R_j.
//   - Grid:                         "r,c" cells linked right and down.
//   - RandomSparse:                 each ordered pair kept with probability p.
//
// Options:
//
//   - ID schemes: WithIDScheme, WithDefaultIDs, WithSymbolIDs, WithHexIDs,
//     WithExcelColumnIDs, WithAlphanumericIDs, WithPrefixedIDs.
//   - Weights: WithWeightFn and the distribution helpers. Without one,
//     every edge is unweighted.
//   - Shape: WithSymmetric mirrors each edge, WithLoops admits self-loops
//     in RandomSparse, WithPartitionPrefix renames bipartite sides.
//   - Randomness: WithSeed or WithRand. Stochastic constructors fail with
//     ErrNeedRandSource without one.
//
// Re-running a constructor on the same graph adds nothing new for
// unweighted or constant-weight configs, because the graph rejects
// duplicate edges.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
package builder
