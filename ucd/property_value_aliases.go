package ucd

import (
	"io"

	"github.com/ucdc-go/ucdc/table"
)

// PropertyValueAliases holds the alias tables and `@missing` defaults read
// from PropertyValueAliases.txt. Symbolic spellings are stored in normalized
// form so lookups follow loose matching.
type PropertyValueAliases struct {
	// GeneralCategory maps every spelling of a General_Category value to its
	// abbreviated form.
	GeneralCategory map[string]string

	// Script maps every spelling of a Script value to its short code.
	Script map[string]string

	// BidiClass maps every spelling of a Bidi_Class value to its abbreviated
	// form.
	BidiClass map[string]string

	// Defaults holds the `@missing` declarations, keyed by normalized
	// property name.
	Defaults map[string][]MissingDefault
}

// MissingDefault is one `@missing` declaration: the default value of a
// property over a range of codepoints.
type MissingDefault struct {
	Range table.CodePointRange
	Value string
}

var propertyValueAliasesGrammar = fileGrammar{
	name:      "PropertyValueAliases.txt",
	minFields: 3,
}

// ParsePropertyValueAliases parses PropertyValueAliases.txt.
func ParsePropertyValueAliases(r io.Reader) (*PropertyValueAliases, error) {
	pva := &PropertyValueAliases{
		GeneralCategory: map[string]string{},
		Script:          map[string]string{},
		BidiClass:       map[string]string{},
		Defaults:        map[string][]MissingDefault{},
	}
	p := newParser(r, propertyValueAliasesGrammar)
	for p.parse() {
		if len(p.fields) > 0 {
			var aliases map[string]string
			switch p.fields[0].symbol() {
			case "gc":
				aliases = pva.GeneralCategory
			case "sc":
				aliases = pva.Script
			case "bc":
				aliases = pva.BidiClass
			}
			if aliases != nil {
				abb := p.fields[1].symbol()
				for _, f := range p.fields[1:] {
					aliases[f.normalizedSymbol()] = abb
				}
			}
		}
		if len(p.defaultFields) >= 3 {
			cpRange, err := p.defaultFields[0].codePointRange()
			if err != nil {
				return nil, err
			}
			prop := p.defaultFields[1].normalizedSymbol()
			pva.Defaults[prop] = append(pva.Defaults[prop], MissingDefault{
				Range: cpRange,
				Value: p.defaultFields[2].symbol(),
			})
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return pva, nil
}

// Default returns the value declared for the whole codepoint domain of the
// given property, if any.
func (a *PropertyValueAliases) Default(prop string) (string, bool) {
	if a == nil {
		return "", false
	}
	for _, d := range a.Defaults[NormalizeSymbolicValue(prop)] {
		if d.Range.From == 0 && d.Range.To == table.MaxCodePoint {
			return d.Value, true
		}
	}
	return "", false
}
