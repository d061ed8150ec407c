package table

import (
	"cmp"
	"fmt"
	"sort"
)

// MapEntry is one key/value pair of an explicit map.
type MapEntry[K cmp.Ordered, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// Charmap is an explicit sorted map with no run compression, used where
// adjacent codepoints rarely share a value and a run table would degenerate
// into one breakpoint per key.
type Charmap[K cmp.Ordered, V any] struct {
	Entries []MapEntry[K, V] `json:"entries"`
}

// NewCharmap builds a map with entries sorted by key.
func NewCharmap[K cmp.Ordered, V any](assoc map[K]V) *Charmap[K, V] {
	keys := make([]K, 0, len(assoc))
	for k := range assoc {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	m := &Charmap[K, V]{
		Entries: make([]MapEntry[K, V], 0, len(keys)),
	}
	for _, k := range keys {
		m.Entries = append(m.Entries, MapEntry[K, V]{
			Key:   k,
			Value: assoc[k],
		})
	}
	return m
}

// Lookup returns the value bound to key. The second result reports whether
// the key is present; the first is the zero value when it is not.
func (m *Charmap[K, V]) Lookup(key K) (V, bool) {
	i := sort.Search(len(m.Entries), func(i int) bool {
		return m.Entries[i].Key >= key
	})
	if i < len(m.Entries) && m.Entries[i].Key == key {
		return m.Entries[i].Value, true
	}
	var zero V
	return zero, false
}

// Len returns the number of entries.
func (m *Charmap[K, V]) Len() int {
	return len(m.Entries)
}

// Validate checks that keys are strictly increasing. A nil map is invalid; a
// decoded artifact may simply lack it.
func (m *Charmap[K, V]) Validate() error {
	if m == nil {
		return fmt.Errorf("the map is missing")
	}
	for i := 1; i < len(m.Entries); i++ {
		if m.Entries[i].Key <= m.Entries[i-1].Key {
			return fmt.Errorf("keys must increase strictly: %v follows %v", m.Entries[i].Key, m.Entries[i-1].Key)
		}
	}
	return nil
}

// PackPair packs two codepoints into one ordered key, used to key the
// composition map by its canonical decomposition pair.
func PackPair(first, second rune) uint64 {
	return uint64(uint32(first))<<32 | uint64(uint32(second))
}
