// SPDX-License-Identifier: MIT
// Package: gdwg/fixture
//
// build.go - Document -> core.Graph.

package fixture

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/gdwg/builder"
	"github.com/katalvlaran/gdwg/core"
)

// Build materialises doc as a graph whose node values are produced by parse.
// Duplicate nodes collapse and duplicate edges are ignored, matching the
// graph's own insert semantics.
func Build[N cmp.Ordered](doc *Document, parse func(string) (N, error)) (*core.Graph[N, int64], error) {
	g := core.NewGraph[N, int64]()

	for i, raw := range doc.Nodes {
		v, err := parse(raw)
		if err != nil {
			return nil, fmt.Errorf("fixture: nodes[%d]: %w", i, err)
		}
		g.InsertNode(v)
	}

	if doc.Topology != nil {
		if err := graft(g, doc.Topology, parse); err != nil {
			return nil, err
		}
	}

	for i, e := range doc.Edges {
		src, err := parse(e.From)
		if err != nil {
			return nil, fmt.Errorf("fixture: edges[%d].from: %w", i, err)
		}
		dst, err := parse(e.To)
		if err != nil {
			return nil, fmt.Errorf("fixture: edges[%d].to: %w", i, err)
		}
		var opts []core.EdgeOption[int64]
		if e.Weight != nil {
			opts = append(opts, core.WithWeight(*e.Weight))
		}
		if _, err := g.InsertEdge(src, dst, opts...); err != nil {
			return nil, fmt.Errorf("fixture: edges[%d] %s -> %s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// Constructor maps a topology block to its builder constructor and options.
func (t *Topology) Constructor() (builder.Constructor, []builder.BuilderOption, error) {
	var ctor builder.Constructor
	switch t.Kind {
	case KindPath:
		ctor = builder.Path(t.N)
	case KindCycle:
		ctor = builder.Cycle(t.N)
	case KindStar:
		ctor = builder.Star(t.N)
	case KindWheel:
		ctor = builder.Wheel(t.N)
	case KindComplete:
		ctor = builder.Complete(t.N)
	case KindGrid:
		ctor = builder.Grid(t.Rows, t.Cols)
	case KindRandomSparse:
		ctor = builder.RandomSparse(t.N, t.Probability)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownTopology, t.Kind)
	}

	opts := []builder.BuilderOption{builder.WithSeed(t.Seed)}
	if t.Symmetric {
		opts = append(opts, builder.WithSymmetric())
	}
	if t.Weighted {
		lo, hi := t.MinWeight, t.MaxWeight
		if lo == 0 && hi == 0 {
			lo, hi = defaultMinWeight, defaultMaxWeight
		}
		if hi < lo {
			return nil, nil, fmt.Errorf("%w: topology max_weight %d < min_weight %d", ErrInvalidDocument, hi, lo)
		}
		opts = append(opts, builder.WithUniformWeight(lo, hi))
	}

	return ctor, opts, nil
}

// graft builds the topology on a string graph and copies it into g.
func graft[N cmp.Ordered](g *core.Graph[N, int64], t *Topology, parse func(string) (N, error)) error {
	ctor, opts, err := t.Constructor()
	if err != nil {
		return err
	}
	shape, err := builder.BuildGraph(opts, ctor)
	if err != nil {
		return fmt.Errorf("fixture: topology %s: %w", t.Kind, err)
	}

	for _, raw := range shape.Nodes() {
		v, err := parse(raw)
		if err != nil {
			return fmt.Errorf("fixture: topology %s: %w", t.Kind, err)
		}
		g.InsertNode(v)
	}
	for ev := range shape.All() {
		src, _ := parse(ev.From)
		dst, _ := parse(ev.To)
		if _, err := g.InsertEdge(src, dst, core.WithOptionalWeight(ev.Weight)); err != nil {
			return fmt.Errorf("fixture: topology %s: %w", t.Kind, err)
		}
	}

	return nil
}
