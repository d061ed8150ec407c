package table

import (
	"fmt"
	"sort"
)

// CodePointRange is a closed interval of codepoints.
type CodePointRange struct {
	From rune `json:"from"`
	To   rune `json:"to"`
}

// RangeSet is a set of codepoints stored as ordered, disjoint,
// non-adjacent closed intervals.
type RangeSet struct {
	Ranges []CodePointRange `json:"ranges"`
}

// NewRangeSet builds a set from an unordered collection of codepoints. The
// codepoints are sorted and a new interval starts whenever the current
// codepoint is not exactly one greater than the previous.
func NewRangeSet(cps []rune) *RangeSet {
	sorted := make([]rune, len(cps))
	copy(sorted, cps)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	s := &RangeSet{}
	for _, cp := range sorted {
		if n := len(s.Ranges); n > 0 {
			last := &s.Ranges[n-1]
			if cp == last.To {
				continue
			}
			if cp == last.To+1 {
				last.To = cp
				continue
			}
		}
		s.Ranges = append(s.Ranges, CodePointRange{From: cp, To: cp})
	}
	return s
}

// NewRangeSetFromRanges builds a set from intervals that may be unordered,
// overlapping, or adjacent; they are normalized into the canonical form.
func NewRangeSetFromRanges(ranges []CodePointRange) *RangeSet {
	sorted := make([]CodePointRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].From < sorted[j].From
	})
	s := &RangeSet{}
	for _, r := range sorted {
		if n := len(s.Ranges); n > 0 {
			last := &s.Ranges[n-1]
			if r.From <= last.To+1 {
				if r.To > last.To {
					last.To = r.To
				}
				continue
			}
		}
		s.Ranges = append(s.Ranges, r)
	}
	return s
}

// Contains reports whether cp is a member of the set.
func (s *RangeSet) Contains(cp rune) bool {
	i := sort.Search(len(s.Ranges), func(i int) bool {
		return s.Ranges[i].From > cp
	})
	if i == 0 {
		return false
	}
	return cp <= s.Ranges[i-1].To
}

// Difference returns the set of codepoints in s but not in o.
func (s *RangeSet) Difference(o *RangeSet) *RangeSet {
	d := &RangeSet{}
	j := 0
	for _, r := range s.Ranges {
		from := r.From
		for j < len(o.Ranges) && o.Ranges[j].To < from {
			j++
		}
		k := j
		for k < len(o.Ranges) && o.Ranges[k].From <= r.To {
			hole := o.Ranges[k]
			if hole.From > from {
				d.Ranges = append(d.Ranges, CodePointRange{From: from, To: hole.From - 1})
			}
			if hole.To >= r.To {
				from = r.To + 1
				break
			}
			from = hole.To + 1
			k++
		}
		if from <= r.To {
			d.Ranges = append(d.Ranges, CodePointRange{From: from, To: r.To})
		}
	}
	return d
}

// Union returns the set of codepoints in either s or o.
func (s *RangeSet) Union(o *RangeSet) *RangeSet {
	merged := make([]CodePointRange, 0, len(s.Ranges)+len(o.Ranges))
	merged = append(merged, s.Ranges...)
	merged = append(merged, o.Ranges...)
	return NewRangeSetFromRanges(merged)
}

// Count returns the number of codepoints in the set.
func (s *RangeSet) Count() int {
	n := 0
	for _, r := range s.Ranges {
		n += int(r.To-r.From) + 1
	}
	return n
}

// Len returns the number of intervals.
func (s *RangeSet) Len() int {
	return len(s.Ranges)
}

// Validate checks that the intervals are well formed, strictly ordered, and
// separated by at least one codepoint. A nil set is invalid; a decoded
// artifact may simply lack it.
func (s *RangeSet) Validate() error {
	if s == nil {
		return fmt.Errorf("the set is missing")
	}
	for i, r := range s.Ranges {
		if r.From > r.To {
			return fmt.Errorf("interval #%v is inverted: %X..%X", i, r.From, r.To)
		}
		if r.From < 0 || r.To > MaxCodePoint {
			return fmt.Errorf("interval #%v out of range: %X..%X", i, r.From, r.To)
		}
		if i > 0 && r.From <= s.Ranges[i-1].To+1 {
			return fmt.Errorf("interval %X..%X overlaps or touches %X..%X", r.From, r.To, s.Ranges[i-1].From, s.Ranges[i-1].To)
		}
	}
	return nil
}
