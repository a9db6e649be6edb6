// SPDX-License-Identifier: MIT
//
// File: methods_replace.go
// Role: Node substitution: ReplaceNode (rename, multiplicities kept) and
// MergeReplaceNode (collapse into an existing node, duplicates removed).

package core

// ReplaceNode substitutes new for old: old's outgoing edges now leave new,
// every edge that pointed at old points at new, and old is removed. Edge
// multiplicities are unchanged.
//
// It reports false, without mutating the graph, if new is already a node.
// ReplaceNode(v, v) on an existing v is a successful no-op.
//
// Errors:
//   - *PreconditionError (ErrNodeNotFound) if old is not a node.
//
// Complexity: O(V + E + Σ d log d) over sources pointing at old.
func (g *Graph[N, E]) ReplaceNode(old, new N) (bool, error) {
	oldKey, found := g.lookup(old)
	if !found {
		return false, precondition(OpReplaceNode)
	}
	if old == new {
		return true, nil
	}
	if g.IsNode(new) {
		return false, nil
	}

	newKey := g.link(new)
	if out, has := g.adj[oldKey]; has {
		delete(g.adj, oldKey)
		g.adj[newKey] = out
	}
	// new did not exist, so relinking cannot create duplicates.
	g.retarget(oldKey, newKey, false)
	g.unlink(oldKey)

	return true, nil
}

// MergeReplaceNode folds old into the existing node new: old's outgoing
// edges leave new instead, edges pointing at old point at new, and old is
// removed. An edge whose (destination, weight) already exists under its
// source after the rewrite is dropped, so the edge count may shrink.
// MergeReplaceNode(v, v) is a no-op.
//
// Errors:
//   - *PreconditionError (ErrNodeNotFound) if old or new is not a node.
//
// Complexity: O(V + E + Σ d log d).
func (g *Graph[N, E]) MergeReplaceNode(old, new N) error {
	oldKey, newKey, err := g.endpoints(OpMergeReplaceNode, old, new)
	if err != nil {
		return err
	}
	if oldKey == newKey {
		return nil
	}

	moved := g.adj[oldKey]
	delete(g.adj, oldKey)
	g.retarget(oldKey, newKey, true)
	for _, e := range moved {
		if e.dst == oldKey {
			e.dst = newKey
		}
		g.insertEntry(newKey, e)
	}
	g.unlink(oldKey)

	return nil
}
