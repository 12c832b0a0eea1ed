package trie

import "sort"

// node is a node in a Trie. children maps a rune to the child reached by that
// edge; terminal, when non-nil, marks the root-to-node path as a stored key and
// carries its value.
type node[V any] struct {
	children map[rune]*node[V]
	terminal *V
}

func newNode[V any]() *node[V] {
	return &node[V]{children: make(map[rune]*node[V])}
}

// clone returns a shallow copy of n: same children map entries, same terminal
// pointer. Callers that are about to change one child or the terminal value
// must replace that single slot on the clone rather than mutate n, so that any
// other Trie value still referencing n is unaffected.
func (n *node[V]) clone() *node[V] {
	cp := &node[V]{children: make(map[rune]*node[V], len(n.children))}
	for k, v := range n.children {
		cp.children[k] = v
	}
	cp.terminal = n.terminal
	return cp
}

// child returns the child reached by r, and whether it exists.
func (n *node[V]) child(r rune) (*node[V], bool) {
	c, ok := n.children[r]
	return c, ok
}

// sortedChildren returns this node's children as (rune, *node[V]) pairs in
// ascending key order. Only the handful of call sites that must enumerate every
// child pay the sort; exact-child lookup goes through child and is O(1).
func (n *node[V]) sortedChildren() []childEdge[V] {
	edges := make([]childEdge[V], 0, len(n.children))
	for r, c := range n.children {
		edges = append(edges, childEdge[V]{r: r, n: c})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].r < edges[j].r })
	return edges
}

type childEdge[V any] struct {
	r rune
	n *node[V]
}
