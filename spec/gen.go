package spec

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"text/template"

	"github.com/ucdc-go/ucdc/table"
)

// GenTables renders the compiled tables as a Go source file declaring one
// read-only `Tables` variable. The generated file depends only on this
// module's spec and table packages, whose lookup methods are the runtime
// query engine.
func GenTables(cucd *CompiledUCD, pkgName string) ([]byte, error) {
	err := cucd.Validate()
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	err = genHeaderTmpl.Execute(&b, struct {
		PkgName        string
		UnicodeVersion string
	}{
		PkgName:        pkgName,
		UnicodeVersion: cucd.UnicodeVersion,
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(&b, "var Tables = &spec.CompiledUCD{\n")
	fmt.Fprintf(&b, "UnicodeVersion: %q,\n", cucd.UnicodeVersion)
	writeNameBlob(&b, "Names", cucd.Names)
	writeCharmap(&b, "NameCorrections", "rune, string", cucd.NameCorrections, runeLit, strLit)
	writeRunTable(&b, "GeneralCategory", "spec.GeneralCategory", cucd.GeneralCategory, func(v GeneralCategory) string { return strconv.Quote(string(v)) })
	writeRunTable(&b, "CombiningClass", "int", cucd.CombiningClass, strconv.Itoa)
	writeRunTable(&b, "BidiClass", "spec.BidiClass", cucd.BidiClass, func(v BidiClass) string { return strconv.Quote(string(v)) })
	writeRangeSet(&b, "Mirrored", cucd.Mirrored)
	writeCharmap(&b, "BidiMirroring", "rune, rune", cucd.BidiMirroring, runeLit, runeLit)
	writeRunTable(&b, "Blocks", "string", cucd.Blocks, strLit)
	writeRunTable(&b, "Scripts", "table.ScriptTag", cucd.Scripts, scriptTagLit)
	writeRunTable(&b, "ScriptExtensions", "string", cucd.ScriptExtensions, strLit)
	writeCharmap(&b, "SimpleUppercase", "rune, rune", cucd.SimpleUppercase, runeLit, runeLit)
	writeCharmap(&b, "SimpleLowercase", "rune, rune", cucd.SimpleLowercase, runeLit, runeLit)
	writeCharmap(&b, "SimpleTitlecase", "rune, rune", cucd.SimpleTitlecase, runeLit, runeLit)
	writeCharmap(&b, "SimpleFold", "rune, rune", cucd.SimpleFold, runeLit, runeLit)
	writeCharmap(&b, "FullFold", "rune, []rune", cucd.FullFold, runeLit, runesLit)
	writeCharmap(&b, "CanonicalDecomposition", "rune, []rune", cucd.CanonicalDecomposition, runeLit, runesLit)
	writeCharmap(&b, "ShortDecomposition", "rune, []rune", cucd.ShortDecomposition, runeLit, runesLit)
	writeCharmap(&b, "LongDecomposition", "rune, []rune", cucd.LongDecomposition, runeLit, runesLit)
	writeRangeSet(&b, "CompositionExclusions", cucd.CompositionExclusions)
	writeCharmap(&b, "Composition", "uint64, rune", cucd.Composition, pairKeyLit, runeLit)
	writeRunTable(&b, "NumericType", "spec.NumericType", cucd.NumericType, func(v NumericType) string { return strconv.Quote(string(v)) })
	writeCharmap(&b, "NumericValue", "rune, table.Rational", cucd.NumericValue, runeLit, rationalLit)
	writeRangeSet(&b, "IDStart", cucd.IDStart)
	writeRangeSet(&b, "IDContinue", cucd.IDContinue)
	writeRangeSet(&b, "IDNonstart", cucd.IDNonstart)
	writeRangeSet(&b, "XIDStart", cucd.XIDStart)
	writeRangeSet(&b, "XIDContinue", cucd.XIDContinue)
	writeRangeSet(&b, "XIDNonstart", cucd.XIDNonstart)
	writePropertySets(&b, cucd.PropertySets)
	writeNormalizationFixtures(&b, cucd.NormalizationFixtures)
	writeSegmentationFixtures(&b, "GraphemeFixtures", cucd.GraphemeFixtures)
	writeSegmentationFixtures(&b, "WordFixtures", cucd.WordFixtures)
	writeSegmentationFixtures(&b, "SentenceFixtures", cucd.SentenceFixtures)
	fmt.Fprintf(&b, "}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format the generated tables: %w", err)
	}
	return src, nil
}

var genHeaderTmpl = template.Must(template.New("header").Parse(`// Code generated by ucdc. DO NOT EDIT.
//
// Compiled Unicode character database, version {{.UnicodeVersion}}.
// The tables are read-only and safe for concurrent readers.

package {{.PkgName}}

import (
	"github.com/ucdc-go/ucdc/spec"
	"github.com/ucdc-go/ucdc/table"
)

`))

func writeRunTable[V comparable](w io.Writer, name, typ string, t *table.RunTable[V], lit func(V) string) {
	fmt.Fprintf(w, "%v: &table.RunTable[%v]{\nDefault: %v,\nEntries: []table.RunEntry[%v]{\n", name, typ, lit(t.Default), typ)
	for _, e := range t.Entries {
		fmt.Fprintf(w, "{Breakpoint: %v, Value: %v},\n", runeLit(e.Breakpoint), lit(e.Value))
	}
	fmt.Fprintf(w, "},\n},\n")
}

func writeRangeSet(w io.Writer, name string, s *table.RangeSet) {
	fmt.Fprintf(w, "%v: &table.RangeSet{\nRanges: []table.CodePointRange{\n", name)
	for _, r := range s.Ranges {
		fmt.Fprintf(w, "{From: %v, To: %v},\n", runeLit(r.From), runeLit(r.To))
	}
	fmt.Fprintf(w, "},\n},\n")
}

func writeCharmap[K interface {
	rune | uint64
}, V any](w io.Writer, name, typ string, m *table.Charmap[K, V], keyLit func(K) string, valLit func(V) string) {
	fmt.Fprintf(w, "%v: &table.Charmap[%v]{\nEntries: []table.MapEntry[%v]{\n", name, typ, typ)
	for _, e := range m.Entries {
		fmt.Fprintf(w, "{Key: %v, Value: %v},\n", keyLit(e.Key), valLit(e.Value))
	}
	fmt.Fprintf(w, "},\n},\n")
}

func writeNameBlob(w io.Writer, name string, b *table.NameBlob) {
	fmt.Fprintf(w, "%v: &table.NameBlob{\n", name)
	fmt.Fprintf(w, "Data: []byte(%q),\n", string(b.Data))
	fmt.Fprintf(w, "CompressedLen: %v,\n", b.CompressedLen)
	fmt.Fprintf(w, "UncompressedLen: %v,\n", b.UncompressedLen)
	fmt.Fprintf(w, "},\n")
}

func writePropertySets(w io.Writer, sets []PropertySet) {
	fmt.Fprintf(w, "PropertySets: []spec.PropertySet{\n")
	for _, ps := range sets {
		fmt.Fprintf(w, "{Name: %q, Set: &table.RangeSet{Ranges: []table.CodePointRange{\n", ps.Name)
		for _, r := range ps.Set.Ranges {
			fmt.Fprintf(w, "{From: %v, To: %v},\n", runeLit(r.From), runeLit(r.To))
		}
		fmt.Fprintf(w, "}}},\n")
	}
	fmt.Fprintf(w, "},\n")
}

func writeNormalizationFixtures(w io.Writer, fixtures []NormalizationFixture) {
	if len(fixtures) == 0 {
		return
	}
	fmt.Fprintf(w, "NormalizationFixtures: []spec.NormalizationFixture{\n")
	for _, f := range fixtures {
		fmt.Fprintf(w, "{Part: %v, Source: %v, NFC: %v, NFD: %v, NFKC: %v, NFKD: %v},\n",
			f.Part, runesLit(f.Source), runesLit(f.NFC), runesLit(f.NFD), runesLit(f.NFKC), runesLit(f.NFKD))
	}
	fmt.Fprintf(w, "},\n")
}

func writeSegmentationFixtures(w io.Writer, name string, fixtures []SegmentationFixture) {
	if len(fixtures) == 0 {
		return
	}
	fmt.Fprintf(w, "%v: []spec.SegmentationFixture{\n", name)
	for _, f := range fixtures {
		fmt.Fprintf(w, "{Segments: [][]rune{")
		for _, seg := range f.Segments {
			fmt.Fprintf(w, "%v, ", runesLit(seg))
		}
		fmt.Fprintf(w, "}},\n")
	}
	fmt.Fprintf(w, "},\n")
}

func runeLit(cp rune) string {
	return fmt.Sprintf("0x%04X", cp)
}

func strLit(s string) string {
	return strconv.Quote(s)
}

func runesLit(cps []rune) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "[]rune{")
	for i, cp := range cps {
		if i > 0 {
			fmt.Fprintf(&b, ", ")
		}
		fmt.Fprintf(&b, "%v", runeLit(cp))
	}
	fmt.Fprintf(&b, "}")
	return b.String()
}

func scriptTagLit(t table.ScriptTag) string {
	return fmt.Sprintf("0x%08X", uint32(t))
}

func pairKeyLit(k uint64) string {
	return fmt.Sprintf("0x%016X", k)
}

func rationalLit(r table.Rational) string {
	return fmt.Sprintf("table.Rational{Num: %v, Den: %v}", r.Num, r.Den)
}
