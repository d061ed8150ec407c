package ucd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ucdc-go/ucdc/table"
)

func TestParser_parse(t *testing.T) {
	grammar := fileGrammar{name: "test", minFields: 2, fieldCount: 3}
	src := `# a comment-only line

0041;LATIN CAPITAL LETTER A;Lu;extra;fields;dropped
0042 ; spaced ; fields  # trailing comment
00C0..00C5;RANGE
fewer
# @missing: 0000..10FFFF; Some_Property; Default_Value
`
	var records []fields
	var defaults []fields
	p := newParser(strings.NewReader(src), grammar)
	for p.parse() {
		if p.fields != nil {
			records = append(records, p.fields)
		}
		if p.defaultFields != nil {
			defaults = append(defaults, p.defaultFields)
		}
	}
	require.NoError(t, p.err)

	// The one-field record is skipped, comments and blanks never surface,
	// and fields beyond the declared arity are discarded.
	require.Len(t, records, 3)
	assert.Equal(t, fields{"0041", "LATIN CAPITAL LETTER A", "Lu"}, records[0])
	assert.Equal(t, fields{"0042", "spaced", "fields"}, records[1])
	assert.Equal(t, fields{"00C0..00C5", "RANGE"}, records[2])

	require.Len(t, defaults, 1)
	assert.Equal(t, fields{"0000..10FFFF", "Some_Property", "Default_Value"}, defaults[0])
}

func TestField_codePointRange(t *testing.T) {
	tests := []struct {
		src     string
		want    table.CodePointRange
		invalid bool
	}{
		{src: "0041", want: table.CodePointRange{From: 0x41, To: 0x41}},
		{src: "0041..005A", want: table.CodePointRange{From: 0x41, To: 0x5A}},
		{src: "10FFFF", want: table.CodePointRange{From: 0x10FFFF, To: 0x10FFFF}},
		{src: "005A..0041", invalid: true},
		{src: "110000", invalid: true},
		{src: "xyz", invalid: true},
		{src: "", invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := field(tt.src).codePointRange()
			if tt.invalid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestField_codePoints(t *testing.T) {
	tests := []struct {
		src     string
		want    []rune
		invalid bool
	}{
		{src: "", want: nil},
		{src: "0041", want: []rune{0x41}},
		{src: "0069 0307", want: []rune{0x69, 0x307}},
		{src: "0046 0046 0049", want: []rune{0x46, 0x46, 0x49}},
		{src: "0041 zzzz", invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := field(tt.src).codePoints()
			if tt.invalid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSymbolicValue(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "General_Category", want: "generalcategory"},
		{src: "White-Space", want: "whitespace"},
		{src: "Canonical Combining Class", want: "canonicalcombiningclass"},
		{src: "isGreek", want: "greek"},
		{src: "is", want: "is"},
		{src: "Lu", want: "lu"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSymbolicValue(tt.src))
		})
	}
}
