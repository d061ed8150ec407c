package ucd

import (
	"io"
)

// NameAliases holds the correction aliases from NameAliases.txt: replacement
// names for codepoints whose canonical name was published with an error. The
// other alias types (abbreviations, control names, figments) don't supersede
// a canonical name and are not carried.
type NameAliases struct {
	Corrections map[rune]string
}

var nameAliasesGrammar = fileGrammar{
	name:       "NameAliases.txt",
	minFields:  3,
	fieldCount: 3,
}

// ParseNameAliases parses NameAliases.txt.
func ParseNameAliases(r io.Reader) (*NameAliases, error) {
	na := &NameAliases{
		Corrections: map[rune]string{},
	}
	p := newParser(r, nameAliasesGrammar)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		if p.fields[2].symbol() != "correction" {
			continue
		}
		cp, err := p.fields[0].codePoint()
		if err != nil {
			return nil, err
		}
		if _, ok := na.Corrections[cp]; ok {
			continue
		}
		na.Corrections[cp] = p.fields[1].symbol()
	}
	if p.err != nil {
		return nil, p.err
	}
	return na, nil
}
