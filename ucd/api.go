// Package ucd parses the text files of the Unicode Character Database into
// per-codepoint associations. Each file has a dedicated parse function built
// on a shared record parser; ParseAll reads the full fixed file set from a
// directory.
package ucd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ucdc-go/ucdc/table"
)

// File identifies one UCD source file.
type File struct {
	Name string
	// Dir is the subdirectory under the UCD root, empty for the root itself.
	Dir string
	// Optional files may be absent without failing the whole parse; they
	// only feed conformance fixtures.
	Optional bool
}

func (f File) relPath() string {
	if f.Dir == "" {
		return f.Name
	}
	return filepath.Join(f.Dir, f.Name)
}

// Files is the fixed set of UCD source files the compiler consumes.
var Files = []File{
	{Name: "UnicodeData.txt"},
	{Name: "PropertyValueAliases.txt"},
	{Name: "PropList.txt"},
	{Name: "DerivedCoreProperties.txt"},
	{Name: "CaseFolding.txt"},
	{Name: "CompositionExclusions.txt"},
	{Name: "Scripts.txt"},
	{Name: "ScriptExtensions.txt"},
	{Name: "Blocks.txt"},
	{Name: "BidiMirroring.txt"},
	{Name: "NameAliases.txt"},
	{Name: "NormalizationTest.txt", Optional: true},
	{Name: "GraphemeBreakTest.txt", Dir: "auxiliary", Optional: true},
	{Name: "WordBreakTest.txt", Dir: "auxiliary", Optional: true},
	{Name: "SentenceBreakTest.txt", Dir: "auxiliary", Optional: true},
}

// Database holds everything read from the UCD source files, still in
// per-file form; the derivation engine turns it into the compiled tables.
type Database struct {
	UnicodeData           *UnicodeData
	PropertyValueAliases  *PropertyValueAliases
	PropList              *BinaryProperties
	DerivedCoreProperties *BinaryProperties
	CaseFolding           *CaseFolding
	CompositionExclusions []table.CodePointRange
	Scripts               []ScriptRange
	ScriptExtensions      []ScriptExtensionRange
	Blocks                []BlockRange
	BidiMirroring         map[rune]rune
	NameAliases           *NameAliases
	NormalizationTest     []NormalizationTestCase
	GraphemeBreakTest     []SegmentationTestCase
	WordBreakTest         []SegmentationTestCase
	SentenceBreakTest     []SegmentationTestCase
}

// ParseAll reads the full UCD file set from dir. Optional conformance files
// that are absent are skipped; any other missing file is an error.
func ParseAll(dir string) (*Database, error) {
	db := &Database{}
	for _, file := range Files {
		err := parseFile(dir, file, db)
		if err != nil {
			return nil, err
		}
	}
	return db, nil
}

func parseFile(dir string, file File, db *Database) error {
	f, err := os.Open(filepath.Join(dir, file.relPath()))
	if err != nil {
		if file.Optional && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot open the UCD file %v: %w", file.relPath(), err)
	}
	defer f.Close()
	err = db.parse(file.Name, f)
	if err != nil {
		return fmt.Errorf("failed to parse %v: %w", file.relPath(), err)
	}
	return nil
}

func (db *Database) parse(name string, r io.Reader) error {
	var err error
	switch name {
	case "UnicodeData.txt":
		db.UnicodeData, err = ParseUnicodeData(r)
	case "PropertyValueAliases.txt":
		db.PropertyValueAliases, err = ParsePropertyValueAliases(r)
	case "PropList.txt":
		db.PropList, err = ParsePropList(r)
	case "DerivedCoreProperties.txt":
		db.DerivedCoreProperties, err = ParseDerivedCoreProperties(r)
	case "CaseFolding.txt":
		db.CaseFolding, err = ParseCaseFolding(r)
	case "CompositionExclusions.txt":
		db.CompositionExclusions, err = ParseCompositionExclusions(r)
	case "Scripts.txt":
		db.Scripts, err = ParseScripts(r)
	case "ScriptExtensions.txt":
		db.ScriptExtensions, err = ParseScriptExtensions(r)
	case "Blocks.txt":
		db.Blocks, err = ParseBlocks(r)
	case "BidiMirroring.txt":
		db.BidiMirroring, err = ParseBidiMirroring(r)
	case "NameAliases.txt":
		db.NameAliases, err = ParseNameAliases(r)
	case "NormalizationTest.txt":
		db.NormalizationTest, err = ParseNormalizationTest(r)
	case "GraphemeBreakTest.txt":
		db.GraphemeBreakTest, err = ParseSegmentationTest(r)
	case "WordBreakTest.txt":
		db.WordBreakTest, err = ParseSegmentationTest(r)
	case "SentenceBreakTest.txt":
		db.SentenceBreakTest, err = ParseSegmentationTest(r)
	default:
		return fmt.Errorf("unknown UCD file: %v", name)
	}
	return err
}
