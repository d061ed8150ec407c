package ucd

import (
	"io"
)

var bidiMirroringGrammar = fileGrammar{
	name:       "BidiMirroring.txt",
	minFields:  2,
	fieldCount: 2,
}

// ParseBidiMirroring parses BidiMirroring.txt into the glyph-mirroring pairs.
func ParseBidiMirroring(r io.Reader) (map[rune]rune, error) {
	pairs := map[rune]rune{}
	p := newParser(r, bidiMirroringGrammar)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		cp, err := p.fields[0].codePoint()
		if err != nil {
			return nil, err
		}
		mirror, err := p.fields[1].codePoint()
		if err != nil {
			return nil, err
		}
		pairs[cp] = mirror
	}
	if p.err != nil {
		return nil, p.err
	}
	return pairs, nil
}
