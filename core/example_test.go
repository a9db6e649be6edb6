// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gdwg/core"
)

// ExampleGraph demonstrates parallel edges and the text rendering.
func ExampleGraph() {
	g := core.NewGraph[string, int]("how", "are", "you?")

	g.InsertEdge("how", "you?", core.WithWeight(1))
	g.InsertEdge("how", "you?", core.WithWeight(2))
	g.InsertEdge("how", "are")
	g.InsertEdge("are", "you?", core.WithWeight(3))

	fmt.Print(g)

	// Output:
	// are (
	//   are -> you? | W | 3
	// )
	// how (
	//   how -> are | U
	//   how -> you? | W | 1
	//   how -> you? | W | 2
	// )
	// you? (
	// )
}

// ExampleGraph_Begin walks every edge with the iterator.
func ExampleGraph_Begin() {
	g := core.NewGraph[int, int](1, 2, 3)
	g.InsertEdge(1, 2, core.WithWeight(4))
	g.InsertEdge(3, 1)

	for it := g.Begin(); !it.Equal(g.End()); it.Next() {
		v := it.Value()
		fmt.Println(v.From, v.To, v.Weight)
	}

	// Output:
	// 1 2 4
	// 3 1 U
}

// ExampleGraph_InsertEdge shows the precondition error for unknown nodes.
func ExampleGraph_InsertEdge() {
	g := core.NewGraph[int, int](1)

	_, err := g.InsertEdge(1, 2)
	fmt.Println(errors.Is(err, core.ErrNodeNotFound))
	fmt.Println(err)

	// Output:
	// true
	// core: cannot call Graph.InsertEdge when either src or dst node does not exist
}

// ExampleGraph_MergeReplaceNode collapses two nodes and their duplicate edges.
func ExampleGraph_MergeReplaceNode() {
	g := core.NewGraph[string, int]("A", "B", "C", "D")
	g.InsertEdge("A", "B", core.WithWeight(1))
	g.InsertEdge("A", "C", core.WithWeight(2))
	g.InsertEdge("A", "D", core.WithWeight(3))
	g.InsertEdge("B", "B", core.WithWeight(1))

	_ = g.MergeReplaceNode("A", "B")
	for v := range g.All() {
		fmt.Println(v.Edge())
	}

	// Output:
	// B -> B | W | 1
	// B -> C | W | 2
	// B -> D | W | 3
}
