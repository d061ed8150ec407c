package ucd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var minimalFileSet = map[string]string{
	"UnicodeData.txt":           "0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;\n",
	"PropertyValueAliases.txt":  "gc ; Lu ; Uppercase_Letter\n",
	"PropList.txt":              "0020 ; White_Space\n",
	"DerivedCoreProperties.txt": "0041..005A ; ID_Start\n",
	"CaseFolding.txt":           "0041; C; 0061; #\n",
	"CompositionExclusions.txt": "0958\n",
	"Scripts.txt":               "0041..005A ; Latin\n",
	"ScriptExtensions.txt":      "0342 ; Grek\n",
	"Blocks.txt":                "0000..007F; Basic Latin\n",
	"BidiMirroring.txt":         "0028; 0029\n",
	"NameAliases.txt":           "01A2;LATIN CAPITAL LETTER GHA;correction\n",
}

func writeFileSet(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	}
	return dir
}

func TestParseAll(t *testing.T) {
	files := map[string]string{}
	for name, src := range minimalFileSet {
		files[name] = src
	}
	files[filepath.Join("auxiliary", "WordBreakTest.txt")] = "÷ 0061 ÷ 0062 ÷\n"

	db, err := ParseAll(writeFileSet(t, files))
	require.NoError(t, err)
	require.NotNil(t, db.UnicodeData)
	assert.Equal(t, "LATIN CAPITAL LETTER A", db.UnicodeData.Names[0x41])
	assert.NotNil(t, db.PropertyValueAliases)
	assert.NotNil(t, db.CaseFolding)
	assert.Len(t, db.Scripts, 1)

	// Absent conformance files are not an error.
	assert.Nil(t, db.NormalizationTest)
	assert.Nil(t, db.GraphemeBreakTest)
	require.Len(t, db.WordBreakTest, 1)
	assert.Equal(t, [][]rune{{0x61}, {0x62}}, db.WordBreakTest[0].Segments)
}

func TestParseAll_missingRequiredFile(t *testing.T) {
	files := map[string]string{}
	for name, src := range minimalFileSet {
		if name == "Blocks.txt" {
			continue
		}
		files[name] = src
	}
	_, err := ParseAll(writeFileSet(t, files))
	assert.ErrorContains(t, err, "Blocks.txt")
}

func TestParseAll_malformedFile(t *testing.T) {
	files := map[string]string{}
	for name, src := range minimalFileSet {
		files[name] = src
	}
	files["Scripts.txt"] = "005A..0041 ; Latin\n"
	_, err := ParseAll(writeFileSet(t, files))
	assert.ErrorContains(t, err, "failed to parse Scripts.txt")
}
