// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: Structural equality and the deterministic text rendering.

package core

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// Equal reports whether g and o hold equal node values and, for every node,
// equal sets of (destination value, weight) edges. Arena layout is ignored.
// Complexity: O(V + E).
func (g *Graph[N, E]) Equal(o *Graph[N, E]) bool {
	if g == o {
		return true
	}
	if o == nil || len(g.order) != len(o.order) {
		return false
	}
	for i, k := range g.order {
		oKey := o.order[i]
		if g.value(k) != o.value(oKey) {
			return false
		}
		a, b := g.adj[k], o.adj[oKey]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if cmp.Compare(g.value(a[j].dst), o.value(b[j].dst)) != 0 || a[j].weight.Compare(b[j].weight) != 0 {
				return false
			}
		}
	}

	return true
}

// String renders g node by node, ascending:
//
//	<node> (
//	  <unweighted edges by destination>
//	  <weighted edges by destination, then weight>
//	)
//
// An empty graph renders as "".
func (g *Graph[N, E]) String() string {
	var sb strings.Builder
	g.render(&sb)

	return sb.String()
}

// WriteTo writes the String rendering to w.
func (g *Graph[N, E]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())

	return int64(n), err
}

func (g *Graph[N, E]) render(sb *strings.Builder) {
	for _, k := range g.order {
		src := g.value(k)
		fmt.Fprintf(sb, "%v (\n", src)
		s := g.adj[k]
		for _, weighted := range [2]bool{false, true} {
			for _, e := range s {
				if e.weight.Valid != weighted {
					continue
				}
				edge := Edge[N, E]{src: src, dst: g.value(e.dst), weight: e.weight}
				sb.WriteString("  ")
				sb.WriteString(edge.String())
				sb.WriteByte('\n')
			}
		}
		sb.WriteString(")\n")
	}
}
