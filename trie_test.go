package trie

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreFindRoundTrip(t *testing.T) {
	tr := New[int]()
	tr = tr.Store("abc", 1)

	v, ok := tr.Find("abc")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestFindAbsent(t *testing.T) {
	tr := New[int]()
	tr = tr.Store("abc", 1)

	_, ok := tr.Find("")
	assert.False(t, ok)

	_, ok = tr.Find("ab")
	assert.False(t, ok)

	_, ok = tr.Find("abcd")
	assert.False(t, ok)
}

func TestStoreOverwrite(t *testing.T) {
	tr := New[string]()
	tr = tr.Store("k", "v1")
	tr = tr.Store("k", "v2")

	v, ok := tr.Find("k")
	require.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestStoreDoesNotMutateReceiver(t *testing.T) {
	before := New[int]()
	before = before.Store("x", 1)

	after := before.Store("y", 2)

	_, ok := before.Find("y")
	assert.False(t, ok, "store on the returned trie must not be visible through the original")

	v, ok := after.Find("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = after.Find("y")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestPrefixIndependence(t *testing.T) {
	abThenA := New[int]().Store("ab", 1).Store("a", 2)
	aThenAb := New[int]().Store("a", 2).Store("ab", 1)

	for _, key := range []string{"a", "ab", "abc", ""} {
		v1, ok1 := abThenA.Find(key)
		v2, ok2 := aThenAb.Find(key)
		assert.Equal(t, ok1, ok2, "key %q", key)
		assert.Equal(t, v1, v2, "key %q", key)
	}
}

func TestStoreEmptyKeySetsRootTerminal(t *testing.T) {
	tr := New[int]()
	tr = tr.Store("", 7)

	v, ok := tr.Find("")
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestStoreAll(t *testing.T) {
	tr := New[int]()
	tr = tr.StoreAll(map[string]int{"ipad": 1, "mac": 2})

	v, ok := tr.Find("ipad")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = tr.Find("mac")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestFindOnConcreteScenarioFromSpec(t *testing.T) {
	tr := New[int]().Store("abc", 1).Store("abcdef", 2)

	_, ok := tr.Find("")
	assert.False(t, ok)

	_, ok = tr.Find("ab")
	assert.False(t, ok)

	v, ok := tr.Find("abc")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func ExampleTrie_Store() {
	t := New[string]()
	t = t.Store("Monday", "day 1")
	t = t.Store("Tuesday", "day 2")

	v, ok := t.Find("Tuesday")
	fmt.Println(v, ok)
	// Output:
	// day 2 true
}
