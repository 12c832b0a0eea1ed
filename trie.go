package trie

// Trie is an in-memory associative container over strings. The zero value is
// not usable; construct one with New.
type Trie[V any] struct {
	root   *node[V]
	logger *optionLogger
}

// New returns an empty Trie: a single root node with no children and no
// terminal value.
func New[V any](opts ...Option) *Trie[V] {
	t := &Trie[V]{root: newNode[V]()}
	cfg := applyOptions(opts)
	t.logger = cfg.logger
	return t
}

// Store inserts key with value into the trie, or replaces the value if key is
// already present. Store does not mutate its receiver: it returns a new Trie
// that shares every sub-node untouched by this insertion with the original, so
// a Trie value observed before the call is unaffected by it and may keep being
// read concurrently.
func (t *Trie[V]) Store(key string, value V) *Trie[V] {
	if t.logger != nil {
		t.logger.debugStore(len(key))
	}
	out := &Trie[V]{root: storeRune([]rune(key), value, t.root), logger: t.logger}
	return out
}

// StoreAll inserts every entry in pairs, returning the updated trie. It is a
// thin loop over Store, for callers that want to insert many keys without
// writing that loop themselves.
func (t *Trie[V]) StoreAll(pairs map[string]V) *Trie[V] {
	out := t
	for k, v := range pairs {
		out = out.Store(k, v)
	}
	return out
}

// storeRune walks n along key, copying only the nodes on that path, and
// returns the root of the resulting (possibly new) subtree.
func storeRune[V any](key []rune, value V, n *node[V]) *node[V] {
	cp := n.clone()
	if len(key) == 0 {
		v := value
		cp.terminal = &v
		return cp
	}
	h, t := key[0], key[1:]
	child, ok := cp.child(h)
	if !ok {
		child = newNode[V]()
	}
	cp.children[h] = storeRune(t, value, child)
	return cp
}

// Find walks the trie one rune at a time and returns the value stored under
// key, and whether key is present. A missing child at any step is an
// immediate absence.
func (t *Trie[V]) Find(key string) (V, bool) {
	n := t.root
	for _, r := range key {
		child, ok := n.child(r)
		if !ok {
			var zero V
			return zero, false
		}
		n = child
	}
	if n.terminal != nil {
		return *n.terminal, true
	}
	var zero V
	return zero, false
}
