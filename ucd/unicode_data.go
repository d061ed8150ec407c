package ucd

import (
	"fmt"
	"io"
	"strings"

	"github.com/ucdc-go/ucdc/table"
)

// UnicodeData holds the per-codepoint associations read from UnicodeData.txt.
// Codepoints covered only by a First/Last sentinel pair appear in
// PropagatedRanges and not in the per-codepoint maps; expanding them is the
// derivation engine's job.
type UnicodeData struct {
	Names                      map[rune]string
	GeneralCategory            map[rune]string
	CombiningClass             map[rune]int
	BidiClass                  map[rune]string
	Mirrored                   []rune
	CanonicalDecomposition     map[rune][]rune
	CompatibilityDecomposition map[rune][]rune
	NumericType                map[rune]string
	NumericValue               map[rune]table.Rational
	SimpleUppercase            map[rune]rune
	SimpleLowercase            map[rune]rune
	SimpleTitlecase            map[rune]rune
	PropagatedRanges           []PropagatedRange
}

// PropagatedRange is a First/Last sentinel pair. Every codepoint strictly
// between From and To inherits the general category, bidi class, and mirrored
// flag recorded on the opening sentinel.
type PropagatedRange struct {
	Range           table.CodePointRange
	GeneralCategory string
	BidiClass       string
	Mirrored        bool
}

var unicodeDataGrammar = fileGrammar{
	name:       "UnicodeData.txt",
	minFields:  15,
	fieldCount: 15,
}

const (
	fCodePoint = iota
	fName
	fGeneralCategory
	fCombiningClass
	fBidiClass
	fDecomposition
	fDecimalDigit
	fDigit
	fNumeric
	fMirrored
	_ // Unicode 1.0 name
	_ // ISO comment
	fSimpleUppercase
	fSimpleLowercase
	fSimpleTitlecase
)

const (
	rangeFirstSuffix = ", First>"
	rangeLastSuffix  = ", Last>"
)

// ParseUnicodeData parses UnicodeData.txt.
func ParseUnicodeData(r io.Reader) (*UnicodeData, error) {
	ud := &UnicodeData{
		Names:                      map[rune]string{},
		GeneralCategory:            map[rune]string{},
		CombiningClass:             map[rune]int{},
		BidiClass:                  map[rune]string{},
		CanonicalDecomposition:     map[rune][]rune{},
		CompatibilityDecomposition: map[rune][]rune{},
		NumericType:                map[rune]string{},
		NumericValue:               map[rune]table.Rational{},
		SimpleUppercase:            map[rune]rune{},
		SimpleLowercase:            map[rune]rune{},
		SimpleTitlecase:            map[rune]rune{},
	}
	var pending *PropagatedRange
	p := newParser(r, unicodeDataGrammar)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		cp, err := p.fields[fCodePoint].codePoint()
		if err != nil {
			return nil, fmt.Errorf("%v: %w", unicodeDataGrammar.name, err)
		}
		err = ud.parseRecord(cp, p.fields)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", unicodeDataGrammar.name, err)
		}

		name := p.fields[fName].symbol()
		switch {
		case strings.HasSuffix(name, rangeFirstSuffix):
			pending = &PropagatedRange{
				Range:           table.CodePointRange{From: cp, To: cp},
				GeneralCategory: p.fields[fGeneralCategory].symbol(),
				BidiClass:       p.fields[fBidiClass].symbol(),
				Mirrored:        p.fields[fMirrored].symbol() == "Y",
			}
		case strings.HasSuffix(name, rangeLastSuffix):
			if pending == nil {
				return nil, fmt.Errorf("%v: range closed at %X without an opening sentinel", unicodeDataGrammar.name, cp)
			}
			pending.Range.To = cp
			ud.PropagatedRanges = append(ud.PropagatedRanges, *pending)
			pending = nil
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	if pending != nil {
		return nil, fmt.Errorf("%v: range opened at %X was never closed", unicodeDataGrammar.name, pending.Range.From)
	}
	return ud, nil
}

func (ud *UnicodeData) parseRecord(cp rune, fs fields) error {
	if name := fs[fName].symbol(); !strings.HasPrefix(name, "<") {
		ud.Names[cp] = name
	}
	ud.GeneralCategory[cp] = fs[fGeneralCategory].symbol()
	ccc, err := fs[fCombiningClass].integer()
	if err != nil {
		return err
	}
	if ccc != 0 {
		ud.CombiningClass[cp] = ccc
	}
	ud.BidiClass[cp] = fs[fBidiClass].symbol()
	if fs[fMirrored].symbol() == "Y" {
		ud.Mirrored = append(ud.Mirrored, cp)
	}
	err = ud.parseDecomposition(cp, fs[fDecomposition])
	if err != nil {
		return err
	}
	err = ud.parseNumeric(cp, fs)
	if err != nil {
		return err
	}
	for _, m := range []struct {
		f field
		m map[rune]rune
	}{
		{fs[fSimpleUppercase], ud.SimpleUppercase},
		{fs[fSimpleLowercase], ud.SimpleLowercase},
		{fs[fSimpleTitlecase], ud.SimpleTitlecase},
	} {
		if m.f == "" {
			continue
		}
		mapped, err := m.f.codePoint()
		if err != nil {
			return err
		}
		m.m[cp] = mapped
	}
	return nil
}

// parseDecomposition splits field 5 into the mapping and its optional
// bracketed formatting tag. A tagged decomposition is a compatibility
// decomposition; an untagged one is canonical.
func (ud *UnicodeData) parseDecomposition(cp rune, f field) error {
	if f == "" {
		return nil
	}
	src := f.symbol()
	compat := false
	if strings.HasPrefix(src, "<") {
		end := strings.Index(src, ">")
		if end < 0 {
			return fmt.Errorf("invalid decomposition tag: %q", src)
		}
		src = strings.TrimSpace(src[end+1:])
		compat = true
	}
	cps, err := field(src).codePoints()
	if err != nil {
		return err
	}
	if len(cps) == 0 {
		return fmt.Errorf("empty decomposition mapping for %X", cp)
	}
	if compat {
		ud.CompatibilityDecomposition[cp] = cps
	} else {
		ud.CanonicalDecomposition[cp] = cps
	}
	return nil
}

// Numeric-type values, derived from which of the three numeric fields is
// populated.
const (
	NumericTypeDecimal = "Decimal"
	NumericTypeDigit   = "Digit"
	NumericTypeNumeric = "Numeric"
)

func (ud *UnicodeData) parseNumeric(cp rune, fs fields) error {
	switch {
	case fs[fDecimalDigit] != "":
		ud.NumericType[cp] = NumericTypeDecimal
	case fs[fDigit] != "":
		ud.NumericType[cp] = NumericTypeDigit
	case fs[fNumeric] != "":
		ud.NumericType[cp] = NumericTypeNumeric
	default:
		return nil
	}
	v, err := table.ParseRational(fs[fNumeric].symbol())
	if err != nil {
		return err
	}
	ud.NumericValue[cp] = v
	return nil
}
