/*
Package trie is an in-memory associative container keyed by character sequence.
It answers exact lookups directly and approximate lookups by enumerating stored
strings within a caller-supplied Damerau–Levenshtein budget, walking the trie and
the query in lockstep rather than running a classic dynamic-programming table
against every candidate.

The trie is a pure value: Store never mutates its receiver, so a Trie may be read
concurrently by any number of goroutines, including while a Store against the
same value is in flight. Callers that need several goroutines to update one
shared Trie should wrap it in the sibling concurrent package; callers that need locale-aware folding
before a key reaches the trie should look at the sibling normalize package. Both
are deliberately external to this package.
*/
package trie
