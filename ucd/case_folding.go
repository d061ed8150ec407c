package ucd

import (
	"fmt"
	"io"
)

// CaseFolding holds the simple and full case folds read from CaseFolding.txt.
// Common folds appear in both maps; Turkic-specific folds are not carried.
type CaseFolding struct {
	Simple map[rune]rune
	Full   map[rune][]rune
}

var caseFoldingGrammar = fileGrammar{
	name:       "CaseFolding.txt",
	minFields:  3,
	fieldCount: 4,
}

// maxFullFold bounds the length of a full case fold.
const maxFullFold = 3

// ParseCaseFolding parses CaseFolding.txt.
func ParseCaseFolding(r io.Reader) (*CaseFolding, error) {
	cf := &CaseFolding{
		Simple: map[rune]rune{},
		Full:   map[rune][]rune{},
	}
	p := newParser(r, caseFoldingGrammar)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		cp, err := p.fields[0].codePoint()
		if err != nil {
			return nil, fmt.Errorf("%v: %w", caseFoldingGrammar.name, err)
		}
		status := p.fields[1].symbol()
		mapping, err := p.fields[2].codePoints()
		if err != nil {
			return nil, fmt.Errorf("%v: %w", caseFoldingGrammar.name, err)
		}
		switch status {
		case "C":
			if len(mapping) != 1 {
				return nil, fmt.Errorf("%v: common fold of %X must be a single code point", caseFoldingGrammar.name, cp)
			}
			cf.Simple[cp] = mapping[0]
			cf.Full[cp] = mapping
		case "S":
			if len(mapping) != 1 {
				return nil, fmt.Errorf("%v: simple fold of %X must be a single code point", caseFoldingGrammar.name, cp)
			}
			cf.Simple[cp] = mapping[0]
		case "F":
			if len(mapping) > maxFullFold {
				return nil, fmt.Errorf("%v: full fold of %X has %v code points; at most %v are allowed", caseFoldingGrammar.name, cp, len(mapping), maxFullFold)
			}
			cf.Full[cp] = mapping
		case "T":
			// Turkic folds depend on a tailoring the compiled tables don't
			// model.
		default:
			return nil, fmt.Errorf("%v: unknown fold status %q", caseFoldingGrammar.name, status)
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return cf, nil
}
