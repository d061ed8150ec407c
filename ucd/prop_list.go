package ucd

import (
	"io"

	"github.com/ucdc-go/ucdc/table"
)

// BinaryProperties holds binary-property memberships keyed by the property
// name as spelled in the source file, the shared shape of PropList.txt and
// DerivedCoreProperties.txt.
type BinaryProperties struct {
	Sets map[string][]table.CodePointRange
}

// Ranges returns the membership of one property. The property name follows
// loose matching.
func (b *BinaryProperties) Ranges(prop string) []table.CodePointRange {
	if b == nil {
		return nil
	}
	want := NormalizeSymbolicValue(prop)
	for name, rs := range b.Sets {
		if NormalizeSymbolicValue(name) == want {
			return rs
		}
	}
	return nil
}

var (
	propListGrammar = fileGrammar{
		name:       "PropList.txt",
		minFields:  2,
		fieldCount: 2,
	}
	derivedCorePropertiesGrammar = fileGrammar{
		name:       "DerivedCoreProperties.txt",
		minFields:  2,
		fieldCount: 2,
	}
)

// ParsePropList parses PropList.txt.
func ParsePropList(r io.Reader) (*BinaryProperties, error) {
	return parseBinaryProperties(r, propListGrammar)
}

// ParseDerivedCoreProperties parses DerivedCoreProperties.txt.
func ParseDerivedCoreProperties(r io.Reader) (*BinaryProperties, error) {
	return parseBinaryProperties(r, derivedCorePropertiesGrammar)
}

func parseBinaryProperties(r io.Reader, grammar fileGrammar) (*BinaryProperties, error) {
	sets := map[string][]table.CodePointRange{}
	p := newParser(r, grammar)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		cpRange, err := p.fields[0].codePointRange()
		if err != nil {
			return nil, err
		}
		prop := p.fields[1].symbol()
		sets[prop] = append(sets[prop], cpRange)
	}
	if p.err != nil {
		return nil, p.err
	}
	return &BinaryProperties{Sets: sets}, nil
}
