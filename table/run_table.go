// Package table implements the compressed static-table representations the
// UCD compiler emits: breakpoint-run tables, codepoint range sets, explicit
// sorted maps, the compressed character-name blob, and packed script tags.
// Every structure has an encode half used at build time and a query half that
// defines the lookup contract consumers of the generated tables rely on.
package table

import (
	"fmt"
	"sort"
)

// MaxCodePoint is the largest valid Unicode codepoint.
const MaxCodePoint rune = 0x10FFFF

// RunEntry is one breakpoint of a run-compressed table. The entry's value is
// in effect for every codepoint from Breakpoint up to, but not including, the
// next entry's breakpoint.
type RunEntry[V comparable] struct {
	Breakpoint rune `json:"breakpoint"`
	Value      V    `json:"value"`
}

// RunTable maps codepoints to values as a minimal ordered sequence of
// (breakpoint, value) pairs. Codepoints below the first breakpoint, or beyond
// the closing sentinel, take Default.
type RunTable[V comparable] struct {
	Entries []RunEntry[V] `json:"entries"`
	Default V             `json:"default"`
}

// EncodeRuns builds a run table from an unordered association. It scans the
// domain from 0 to one past the greatest key and emits a breakpoint whenever
// the value changes, which yields exactly one entry per maximal run of
// constant value. The final scan position carries the default value, so a
// table whose last real key is non-default ends with a sentinel entry that
// closes the run.
func EncodeRuns[V comparable](assoc map[rune]V, def V) *RunTable[V] {
	t := &RunTable[V]{Default: def}
	max := rune(-1)
	for cp := range assoc {
		if cp > max {
			max = cp
		}
	}
	prev := def
	for cp := rune(0); cp <= max+1; cp++ {
		v, ok := assoc[cp]
		if !ok {
			v = def
		}
		if v != prev {
			t.Entries = append(t.Entries, RunEntry[V]{
				Breakpoint: cp,
				Value:      v,
			})
			prev = v
		}
	}
	return t
}

// Lookup returns the value attached to the greatest breakpoint that is less
// than or equal to cp, or the table default when cp precedes every breakpoint
// or the table is empty. It runs in O(log n) in the number of breakpoints.
func (t *RunTable[V]) Lookup(cp rune) V {
	i := sort.Search(len(t.Entries), func(i int) bool {
		return t.Entries[i].Breakpoint > cp
	})
	if i == 0 {
		return t.Default
	}
	return t.Entries[i-1].Value
}

// Len returns the number of breakpoint entries.
func (t *RunTable[V]) Len() int {
	return len(t.Entries)
}

// Validate checks the structural invariants: breakpoints strictly increasing
// and adjacent entries never carrying equal values. A nil table is invalid; a
// decoded artifact may simply lack it.
func (t *RunTable[V]) Validate() error {
	if t == nil {
		return fmt.Errorf("the table is missing")
	}
	for i, e := range t.Entries {
		if e.Breakpoint < 0 || e.Breakpoint > MaxCodePoint+1 {
			return fmt.Errorf("breakpoint #%v out of range: %X", i, e.Breakpoint)
		}
		if i == 0 {
			continue
		}
		if e.Breakpoint <= t.Entries[i-1].Breakpoint {
			return fmt.Errorf("breakpoints must increase strictly: %X follows %X", e.Breakpoint, t.Entries[i-1].Breakpoint)
		}
		if e.Value == t.Entries[i-1].Value {
			return fmt.Errorf("adjacent runs at %X and %X carry the same value", t.Entries[i-1].Breakpoint, e.Breakpoint)
		}
	}
	if len(t.Entries) > 0 && t.Entries[0].Value == t.Default {
		return fmt.Errorf("first run at %X carries the default value", t.Entries[0].Breakpoint)
	}
	return nil
}
