// Package spec defines the compiled form of the Unicode character database:
// the value types, the serializable container holding every generated table,
// and the Go source emission of that container.
package spec

import (
	"fmt"

	"github.com/ucdc-go/ucdc/table"
)

// Bounds on the fixed-size codepoint-sequence values.
const (
	MaxCanonicalDecomposition = 2
	MaxShortDecomposition     = 3
	MaxLongDecomposition      = 18
	MaxFullCaseMapping        = 3
)

// PropertySet is one named binary-property membership set. The sets are kept
// in a sorted slice rather than a map so emission order is stable.
type PropertySet struct {
	Name string          `json:"name"`
	Set  *table.RangeSet `json:"set"`
}

// NormalizationFixture is one conformance row for the normalization
// algorithms that consume the compiled tables.
type NormalizationFixture struct {
	Part   int    `json:"part"`
	Source []rune `json:"source"`
	NFC    []rune `json:"nfc"`
	NFD    []rune `json:"nfd"`
	NFKC   []rune `json:"nfkc"`
	NFKD   []rune `json:"nfkd"`
}

// SegmentationFixture is one conformance row for a segmentation algorithm:
// the expected segments of one codepoint sequence.
type SegmentationFixture struct {
	Segments [][]rune `json:"segments"`
}

// CompiledUCD is the complete set of compiled tables. It is produced once by
// the compiler and read-only afterwards; any number of concurrent readers
// may share it without locking.
type CompiledUCD struct {
	UnicodeVersion string `json:"unicode_version"`

	// Names and corrections.
	Names           *table.NameBlob              `json:"names"`
	NameCorrections *table.Charmap[rune, string] `json:"name_corrections"`

	// Category and bidi tables.
	GeneralCategory *table.RunTable[GeneralCategory] `json:"general_category"`
	CombiningClass  *table.RunTable[int]             `json:"combining_class"`
	BidiClass       *table.RunTable[BidiClass]       `json:"bidi_class"`
	Mirrored        *table.RangeSet                  `json:"mirrored"`
	BidiMirroring   *table.Charmap[rune, rune]       `json:"bidi_mirroring"`

	// Block and script tables.
	Blocks           *table.RunTable[string]          `json:"blocks"`
	Scripts          *table.RunTable[table.ScriptTag] `json:"scripts"`
	ScriptExtensions *table.RunTable[string]          `json:"script_extensions"`

	// Case tables.
	SimpleUppercase *table.Charmap[rune, rune]   `json:"simple_uppercase"`
	SimpleLowercase *table.Charmap[rune, rune]   `json:"simple_lowercase"`
	SimpleTitlecase *table.Charmap[rune, rune]   `json:"simple_titlecase"`
	SimpleFold      *table.Charmap[rune, rune]   `json:"simple_fold"`
	FullFold        *table.Charmap[rune, []rune] `json:"full_fold"`

	// Decomposition and composition tables.
	CanonicalDecomposition *table.Charmap[rune, []rune] `json:"canonical_decomposition"`
	ShortDecomposition     *table.Charmap[rune, []rune] `json:"short_decomposition"`
	LongDecomposition      *table.Charmap[rune, []rune] `json:"long_decomposition"`
	CompositionExclusions  *table.RangeSet              `json:"composition_exclusions"`
	Composition            *table.Charmap[uint64, rune] `json:"composition"`

	// Numeric tables.
	NumericType  *table.RunTable[NumericType]         `json:"numeric_type"`
	NumericValue *table.Charmap[rune, table.Rational] `json:"numeric_value"`

	// Identifier sets.
	IDStart     *table.RangeSet `json:"id_start"`
	IDContinue  *table.RangeSet `json:"id_continue"`
	IDNonstart  *table.RangeSet `json:"id_nonstart"`
	XIDStart    *table.RangeSet `json:"xid_start"`
	XIDContinue *table.RangeSet `json:"xid_continue"`
	XIDNonstart *table.RangeSet `json:"xid_nonstart"`

	// Binary property sets, sorted by name.
	PropertySets []PropertySet `json:"property_sets"`

	// Conformance fixtures.
	NormalizationFixtures []NormalizationFixture `json:"normalization_fixtures,omitempty"`
	GraphemeFixtures      []SegmentationFixture  `json:"grapheme_fixtures,omitempty"`
	WordFixtures          []SegmentationFixture  `json:"word_fixtures,omitempty"`
	SentenceFixtures      []SegmentationFixture  `json:"sentence_fixtures,omitempty"`
}

// CharacterName resolves the name of cp against an expanded name stream (see
// table.NameBlob.Expand), applying the corrected-name overlay. The overlay is
// consulted only after a base name is found: a codepoint absent from the
// blob has no name regardless of overlay.
func (c *CompiledUCD) CharacterName(expanded []byte, cp rune) (string, bool) {
	name, ok := table.LookupName(expanded, cp)
	if !ok {
		return "", false
	}
	if corrected, ok := c.NameCorrections.Lookup(cp); ok {
		return corrected, true
	}
	return name, true
}

// Validate checks the structural invariants of every table before emission:
// strictly increasing breakpoints and keys, collapsed runs, disjoint
// intervals, consistent blob lengths, and the per-property bounds on
// codepoint-sequence values.
func (c *CompiledUCD) Validate() error {
	for _, v := range []struct {
		name  string
		check func() error
	}{
		{"names", c.Names.Validate},
		{"name_corrections", c.NameCorrections.Validate},
		{"general_category", c.GeneralCategory.Validate},
		{"combining_class", c.CombiningClass.Validate},
		{"bidi_class", c.BidiClass.Validate},
		{"mirrored", c.Mirrored.Validate},
		{"bidi_mirroring", c.BidiMirroring.Validate},
		{"blocks", c.Blocks.Validate},
		{"scripts", c.Scripts.Validate},
		{"script_extensions", c.ScriptExtensions.Validate},
		{"simple_uppercase", c.SimpleUppercase.Validate},
		{"simple_lowercase", c.SimpleLowercase.Validate},
		{"simple_titlecase", c.SimpleTitlecase.Validate},
		{"simple_fold", c.SimpleFold.Validate},
		{"full_fold", c.FullFold.Validate},
		{"canonical_decomposition", c.CanonicalDecomposition.Validate},
		{"short_decomposition", c.ShortDecomposition.Validate},
		{"long_decomposition", c.LongDecomposition.Validate},
		{"composition_exclusions", c.CompositionExclusions.Validate},
		{"composition", c.Composition.Validate},
		{"numeric_type", c.NumericType.Validate},
		{"numeric_value", c.NumericValue.Validate},
		{"id_start", c.IDStart.Validate},
		{"id_continue", c.IDContinue.Validate},
		{"id_nonstart", c.IDNonstart.Validate},
		{"xid_start", c.XIDStart.Validate},
		{"xid_continue", c.XIDContinue.Validate},
		{"xid_nonstart", c.XIDNonstart.Validate},
	} {
		err := v.check()
		if err != nil {
			return fmt.Errorf("invalid %v table: %w", v.name, err)
		}
	}
	for i, ps := range c.PropertySets {
		if i > 0 && ps.Name <= c.PropertySets[i-1].Name {
			return fmt.Errorf("property sets must be sorted by name: %v follows %v", ps.Name, c.PropertySets[i-1].Name)
		}
		err := ps.Set.Validate()
		if err != nil {
			return fmt.Errorf("invalid property set %v: %w", ps.Name, err)
		}
	}
	return c.validateSequenceBounds()
}

func (c *CompiledUCD) validateSequenceBounds() error {
	for _, b := range []struct {
		name string
		m    *table.Charmap[rune, []rune]
		max  int
	}{
		{"canonical_decomposition", c.CanonicalDecomposition, MaxCanonicalDecomposition},
		{"short_decomposition", c.ShortDecomposition, MaxShortDecomposition},
		{"long_decomposition", c.LongDecomposition, MaxLongDecomposition},
		{"full_fold", c.FullFold, MaxFullCaseMapping},
	} {
		for _, e := range b.m.Entries {
			if len(e.Value) > b.max {
				return fmt.Errorf("%v of %X has %v code points; at most %v are allowed", b.name, e.Key, len(e.Value), b.max)
			}
		}
	}
	return nil
}
