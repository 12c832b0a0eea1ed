package trie

import "sort"

// Match is one result of Similar: a stored string within the caller's edit
// budget, the minimum number of edits from the query to that string, and the
// value stored under it.
type Match[V any] struct {
	String string
	Edits  int
	Value  V
}

// combine folds a multiset of candidates produced by possibly many distinct
// edit paths into one match per stored string, keeping the smallest edit
// count seen for that string. Ties keep whichever candidate arrived first,
// making the fold idempotent on repeated equal-cost insertions.
func combine[V any](candidates []candidate[V]) []Match[V] {
	best := make(map[string]candidate[V], len(candidates))
	for _, c := range candidates {
		prev, ok := best[c.str]
		if !ok || c.edits < prev.edits {
			best[c.str] = c
		}
	}
	out := make([]Match[V], 0, len(best))
	for _, c := range best {
		out = append(out, Match[V]{String: c.str, Edits: c.edits, Value: c.value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String < out[j].String })
	return out
}
