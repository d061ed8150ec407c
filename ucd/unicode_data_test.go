package ucd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ucdc-go/ucdc/table"
)

const unicodeDataSrc = `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
00BD;VULGAR FRACTION ONE HALF;No;0;ON;<fraction> 0031 2044 0032;;;1/2;N;FRACTION ONE HALF;;;;
00C5;LATIN CAPITAL LETTER A WITH RING ABOVE;Lu;0;L;0041 030A;;;;N;;;;00E5;
0028;LEFT PARENTHESIS;Ps;0;ON;;;;;Y;OPENING PARENTHESIS;;;;
0300;COMBINING GRAVE ACCENT;Mn;230;NSM;;;;;N;NON-SPACING GRAVE;;;;
0031;DIGIT ONE;Nd;0;EN;;1;1;1;N;;;;;
3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;
4DB5;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;
`

func TestParseUnicodeData(t *testing.T) {
	ud, err := ParseUnicodeData(strings.NewReader(unicodeDataSrc))
	require.NoError(t, err)

	assert.Equal(t, "LATIN CAPITAL LETTER A", ud.Names[0x41])
	_, ok := ud.Names[0x3400]
	assert.False(t, ok, "range sentinels must not contribute names")

	assert.Equal(t, "Lu", ud.GeneralCategory[0x41])
	assert.Equal(t, "Nd", ud.GeneralCategory[0x31])
	assert.Equal(t, 230, ud.CombiningClass[0x300])
	_, ok = ud.CombiningClass[0x41]
	assert.False(t, ok, "zero combining classes are defaulted, not stored")
	assert.Equal(t, "NSM", ud.BidiClass[0x300])
	assert.Equal(t, []rune{0x28}, ud.Mirrored)

	assert.Equal(t, []rune{0x41, 0x30A}, ud.CanonicalDecomposition[0xC5])
	assert.Equal(t, []rune{0x31, 0x2044, 0x32}, ud.CompatibilityDecomposition[0xBD])
	_, ok = ud.CanonicalDecomposition[0xBD]
	assert.False(t, ok, "tagged decompositions are compatibility decompositions")

	assert.Equal(t, NumericTypeDecimal, ud.NumericType[0x31])
	assert.Equal(t, table.Rational{Num: 1, Den: 1}, ud.NumericValue[0x31])
	assert.Equal(t, NumericTypeNumeric, ud.NumericType[0xBD])
	assert.Equal(t, table.Rational{Num: 1, Den: 2}, ud.NumericValue[0xBD])

	assert.Equal(t, rune(0x61), ud.SimpleLowercase[0x41])
	assert.Equal(t, rune(0xE5), ud.SimpleLowercase[0xC5])

	require.Len(t, ud.PropagatedRanges, 1)
	assert.Equal(t, PropagatedRange{
		Range:           table.CodePointRange{From: 0x3400, To: 0x4DB5},
		GeneralCategory: "Lo",
		BidiClass:       "L",
		Mirrored:        false,
	}, ud.PropagatedRanges[0])
	// The sentinels themselves carry ordinary property records.
	assert.Equal(t, "Lo", ud.GeneralCategory[0x3400])
	assert.Equal(t, "Lo", ud.GeneralCategory[0x4DB5])
}

func TestParseUnicodeData_errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "invalid hex code point is fatal",
			src:  "zzzz;BAD;Lu;0;L;;;;;N;;;;;\n",
		},
		{
			name: "invalid combining class is fatal",
			src:  "0041;A;Lu;abc;L;;;;;N;;;;;\n",
		},
		{
			name: "invalid numeric value is fatal",
			src:  "0041;A;No;0;L;;;;1/0;N;;;;;\n",
		},
		{
			name: "unclosed range is fatal",
			src:  "3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;\n",
		},
		{
			name: "unopened range close is fatal",
			src:  "4DB5;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUnicodeData(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestParseUnicodeData_skipsShortRecords(t *testing.T) {
	src := "0041;LATIN CAPITAL LETTER A;Lu\n0042;LATIN CAPITAL LETTER B;Lu;0;L;;;;;N;;;;;\n"
	ud, err := ParseUnicodeData(strings.NewReader(src))
	require.NoError(t, err)
	_, ok := ud.GeneralCategory[0x41]
	assert.False(t, ok)
	assert.Equal(t, "Lu", ud.GeneralCategory[0x42])
}
