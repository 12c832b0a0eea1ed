package trie

// candidate is one emission of the edit-path search: a stored string reached
// by some edit path, the edit count charged along that path, and its value.
// Distinct edit paths may reach the same string (deduplication is combine's
// job, not the search's).
type candidate[V any] struct {
	str   string
	edits int
	value V
}

// searchEditPaths enumerates every stored string reachable from n by
// transforming remaining into some suffix of a stored key with at most
// max-edits edits beyond edits already charged, appending each hit to acc.
// path is the accumulated trie walk so far, in traversal order.
func searchEditPaths[V any](acc *[]candidate[V], path []rune, remaining []rune, edits, max int, n *node[V]) {
	if edits > max {
		return
	}

	if len(remaining) == 0 {
		if n.terminal != nil {
			*acc = append(*acc, candidate[V]{str: string(path), edits: edits, value: *n.terminal})
		}
		if len(n.children) == 0 {
			return
		}
		// query exhausted but the trie continues: only a trailing insert can
		// still reach a stored string from here.
		for _, e := range n.sortedChildren() {
			if edits+1 > max {
				continue
			}
			searchEditPaths(acc, appendRune(path, e.r), remaining, edits+1, max, e.n)
		}
		return
	}

	h, t := remaining[0], remaining[1:]

	if edits == max {
		if child, ok := n.child(h); ok {
			searchEditPaths(acc, appendRune(path, h), t, edits, max, child)
		}
		return
	}

	// Delete: drop h from the query, stay at n.
	searchEditPaths(acc, path, t, edits+1, max, n)

	// Substitute: consume h as some other child key, one edit.
	for _, e := range n.sortedChildren() {
		if e.r == h {
			continue
		}
		searchEditPaths(acc, appendRune(path, e.r), t, edits+1, max, e.n)
	}

	// Insert: descend into a child without consuming h, one edit.
	for _, e := range n.sortedChildren() {
		searchEditPaths(acc, appendRune(path, e.r), remaining, edits+1, max, e.n)
	}

	// Transpose: swap h with the next query character, when they differ.
	if len(t) > 0 {
		h2, t2 := t[0], t[1:]
		if h2 != h {
			swapped := make([]rune, 0, len(remaining))
			swapped = append(swapped, h2, h)
			swapped = append(swapped, t2...)
			searchEditPaths(acc, path, swapped, edits+1, max, n)
		}
	}

	// No-change: consume h against a matching child, no edit charged.
	if child, ok := n.child(h); ok {
		searchEditPaths(acc, appendRune(path, h), t, edits, max, child)
	}
}

func appendRune(path []rune, r rune) []rune {
	np := make([]rune, len(path)+1)
	copy(np, path)
	np[len(path)] = r
	return np
}
