package ucd

import (
	"io"

	"github.com/ucdc-go/ucdc/table"
)

var compositionExclusionsGrammar = fileGrammar{
	name:       "CompositionExclusions.txt",
	minFields:  1,
	fieldCount: 1,
}

// ParseCompositionExclusions parses CompositionExclusions.txt into the
// explicitly listed exclusions. The exclusions implied by combining-class
// side conditions are inferred later by the derivation engine.
func ParseCompositionExclusions(r io.Reader) ([]table.CodePointRange, error) {
	var excl []table.CodePointRange
	p := newParser(r, compositionExclusionsGrammar)
	for p.parse() {
		if len(p.fields) == 0 || p.fields[0] == "" {
			continue
		}
		cpRange, err := p.fields[0].codePointRange()
		if err != nil {
			return nil, err
		}
		excl = append(excl, cpRange)
	}
	if p.err != nil {
		return nil, p.err
	}
	return excl, nil
}
