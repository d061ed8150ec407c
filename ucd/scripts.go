package ucd

import (
	"io"
	"strings"

	"github.com/ucdc-go/ucdc/table"
)

// ScriptRange assigns one script to a range of codepoints.
type ScriptRange struct {
	Range  table.CodePointRange
	Script string
}

// ScriptExtensionRange assigns a list of short script codes to a range of
// codepoints.
type ScriptExtensionRange struct {
	Range   table.CodePointRange
	Scripts []string
}

var (
	scriptsGrammar = fileGrammar{
		name:       "Scripts.txt",
		minFields:  2,
		fieldCount: 2,
	}
	scriptExtensionsGrammar = fileGrammar{
		name:       "ScriptExtensions.txt",
		minFields:  2,
		fieldCount: 2,
	}
)

// ParseScripts parses Scripts.txt. Script values are the long names; mapping
// them to short codes goes through PropertyValueAliases.
func ParseScripts(r io.Reader) ([]ScriptRange, error) {
	var ranges []ScriptRange
	p := newParser(r, scriptsGrammar)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		cpRange, err := p.fields[0].codePointRange()
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, ScriptRange{
			Range:  cpRange,
			Script: p.fields[1].symbol(),
		})
	}
	if p.err != nil {
		return nil, p.err
	}
	return ranges, nil
}

// ParseScriptExtensions parses ScriptExtensions.txt.
func ParseScriptExtensions(r io.Reader) ([]ScriptExtensionRange, error) {
	var ranges []ScriptExtensionRange
	p := newParser(r, scriptExtensionsGrammar)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		cpRange, err := p.fields[0].codePointRange()
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, ScriptExtensionRange{
			Range:   cpRange,
			Scripts: strings.Fields(p.fields[1].symbol()),
		})
	}
	if p.err != nil {
		return nil, p.err
	}
	return ranges, nil
}
