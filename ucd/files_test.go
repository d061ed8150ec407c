package ucd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ucdc-go/ucdc/table"
)

func TestParsePropertyValueAliases(t *testing.T) {
	src := `# General_Category (gc)
gc ; Lu        ; Uppercase_Letter
gc ; Ll        ; Lowercase_Letter
gc ; L         ; Letter       ; Cased_Letter | Lm | Lo
# @missing: 0000..10FFFF; General_Category; Unassigned
# Script (sc)
sc ; Latn      ; Latin
sc ; Zzzz      ; Unknown
# Bidi_Class (bc)
bc ; L         ; Left_To_Right
# @missing: 0000..10FFFF; Bidi_Class; Left_To_Right
`
	pva, err := ParsePropertyValueAliases(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "Lu", pva.GeneralCategory["lu"])
	assert.Equal(t, "Lu", pva.GeneralCategory["uppercaseletter"])
	assert.Equal(t, "Latn", pva.Script["latin"])
	assert.Equal(t, "Latn", pva.Script["latn"])
	assert.Equal(t, "Zzzz", pva.Script["unknown"])
	assert.Equal(t, "L", pva.BidiClass["lefttoright"])

	def, ok := pva.Default("General_Category")
	require.True(t, ok)
	assert.Equal(t, "Unassigned", def)
	def, ok = pva.Default("Bidi_Class")
	require.True(t, ok)
	assert.Equal(t, "Left_To_Right", def)
	_, ok = pva.Default("Script")
	assert.False(t, ok)
}

func TestParsePropList(t *testing.T) {
	src := `0009..000D    ; White_Space # Cc   [5] <control-0009>..<control-000D>
0020          ; White_Space # Zs       SPACE
0041..005A    ; Other_Math
`
	props, err := ParsePropList(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []table.CodePointRange{
		{From: 0x09, To: 0x0D},
		{From: 0x20, To: 0x20},
	}, props.Ranges("White_Space"))
	assert.Equal(t, []table.CodePointRange{
		{From: 0x41, To: 0x5A},
	}, props.Ranges("Other_Math"))
	assert.NotNil(t, props.Ranges("whitespace"), "loose matching")
	assert.Nil(t, props.Ranges("Alphabetic"))
}

func TestParseCaseFolding(t *testing.T) {
	src := `0041; C; 0061; # LATIN CAPITAL LETTER A
00DF; F; 0073 0073; # LATIN SMALL LETTER SHARP S
0130; F; 0069 0307; # LATIN CAPITAL LETTER I WITH DOT ABOVE
0130; T; 0069; # LATIN CAPITAL LETTER I WITH DOT ABOVE
1E9E; S; 00DF; # LATIN CAPITAL LETTER SHARP S
`
	cf, err := ParseCaseFolding(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, rune(0x61), cf.Simple[0x41])
	assert.Equal(t, []rune{0x61}, cf.Full[0x41])
	assert.Equal(t, []rune{0x73, 0x73}, cf.Full[0xDF])
	assert.Equal(t, []rune{0x69, 0x307}, cf.Full[0x130])
	_, ok := cf.Simple[0x130]
	assert.False(t, ok, "Turkic folds are not carried")
	assert.Equal(t, rune(0xDF), cf.Simple[0x1E9E])

	_, err = ParseCaseFolding(strings.NewReader("0041; C; 0061 0062; #\n"))
	assert.Error(t, err, "a common fold must be a single code point")
}

func TestParseScripts(t *testing.T) {
	src := `0041..005A    ; Latin # L&  [26] LATIN CAPITAL LETTER A..LATIN CAPITAL LETTER Z
0391..03A1    ; Greek
`
	ranges, err := ParseScripts(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []ScriptRange{
		{Range: table.CodePointRange{From: 0x41, To: 0x5A}, Script: "Latin"},
		{Range: table.CodePointRange{From: 0x391, To: 0x3A1}, Script: "Greek"},
	}, ranges)
}

func TestParseScriptExtensions(t *testing.T) {
	src := "0342          ; Grek # Mn       COMBINING GREEK PERISPOMENI\n" +
		"0363..036F    ; Latn Grek # Mn  [13] COMBINING LATIN SMALL LETTER A..\n"
	ranges, err := ParseScriptExtensions(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []ScriptExtensionRange{
		{Range: table.CodePointRange{From: 0x342, To: 0x342}, Scripts: []string{"Grek"}},
		{Range: table.CodePointRange{From: 0x363, To: 0x36F}, Scripts: []string{"Latn", "Grek"}},
	}, ranges)
}

func TestParseBlocks(t *testing.T) {
	src := `0000..007F; Basic Latin
0080..00FF; Latin-1 Supplement
`
	blocks, err := ParseBlocks(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []BlockRange{
		{Range: table.CodePointRange{From: 0x00, To: 0x7F}, Name: "Basic Latin"},
		{Range: table.CodePointRange{From: 0x80, To: 0xFF}, Name: "Latin-1 Supplement"},
	}, blocks)
}

func TestParseCompositionExclusions(t *testing.T) {
	src := `0958    #  DEVANAGARI LETTER QA
FB1D    #  HEBREW LETTER YOD WITH HIRIQ
`
	excl, err := ParseCompositionExclusions(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []table.CodePointRange{
		{From: 0x958, To: 0x958},
		{From: 0xFB1D, To: 0xFB1D},
	}, excl)
}

func TestParseNameAliases(t *testing.T) {
	src := `0000;NULL;control
0000;NUL;abbreviation
01A2;LATIN CAPITAL LETTER GHA;correction
FE18;PRESENTATION FORM FOR VERTICAL RIGHT WHITE LENTICULAR BRAKCET;figment
`
	na, err := ParseNameAliases(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, map[rune]string{
		0x01A2: "LATIN CAPITAL LETTER GHA",
	}, na.Corrections)
}

func TestParseBidiMirroring(t *testing.T) {
	src := `0028; 0029 # LEFT PARENTHESIS
0029; 0028 # RIGHT PARENTHESIS
`
	pairs, err := ParseBidiMirroring(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, map[rune]rune{0x28: 0x29, 0x29: 0x28}, pairs)
}

func TestParseNormalizationTest(t *testing.T) {
	src := `@Part0 # Specific cases
1E0A;1E0A;0044 0307;1E0A;0044 0307; # (Ḋ; Ḋ; D◌̇; Ḋ; D◌̇;)
@Part1 # Character by character test
00C5;00C5;0041 030A;00C5;0041 030A;
`
	cases, err := ParseNormalizationTest(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, NormalizationTestCase{
		Part:   0,
		Source: []rune{0x1E0A},
		NFC:    []rune{0x1E0A},
		NFD:    []rune{0x44, 0x307},
		NFKC:   []rune{0x1E0A},
		NFKD:   []rune{0x44, 0x307},
	}, cases[0])
	assert.Equal(t, 1, cases[1].Part)
}

func TestParseSegmentationTest(t *testing.T) {
	src := "÷ 0020 × 0308 ÷ 0020 ÷ # ÷ [0.2] SPACE (Other) ...\n" +
		"÷ 0061 ÷ # trailing\n"
	cases, err := ParseSegmentationTest(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, [][]rune{{0x20, 0x308}, {0x20}}, cases[0].Segments)
	assert.Equal(t, [][]rune{{0x61}}, cases[1].Segments)
}
