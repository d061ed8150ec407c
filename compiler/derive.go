package compiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ucdc-go/ucdc/spec"
	"github.com/ucdc-go/ucdc/table"
	"github.com/ucdc-go/ucdc/ucd"
)

// buildCategories derives the general-category, combining-class, bidi-class,
// and mirrored tables, expanding First/Last sentinel pairs so every interior
// codepoint inherits the properties of the range's opening record.
func (c *compilation) buildCategories(cucd *spec.CompiledUCD) error {
	udata := c.db.UnicodeData

	gc := map[rune]spec.GeneralCategory{}
	for cp, sym := range udata.GeneralCategory {
		v, err := spec.GeneralCategoryFromSymbol(sym)
		if err != nil {
			return err
		}
		gc[cp] = v
	}
	bidi := map[rune]spec.BidiClass{}
	for cp, sym := range udata.BidiClass {
		v, err := spec.BidiClassFromSymbol(sym)
		if err != nil {
			return err
		}
		bidi[cp] = v
	}
	mirrored := make([]rune, len(udata.Mirrored))
	copy(mirrored, udata.Mirrored)

	for _, r := range udata.PropagatedRanges {
		rangeGC, err := spec.GeneralCategoryFromSymbol(r.GeneralCategory)
		if err != nil {
			return err
		}
		rangeBidi, err := spec.BidiClassFromSymbol(r.BidiClass)
		if err != nil {
			return err
		}
		for cp := r.Range.From + 1; cp < r.Range.To; cp++ {
			gc[cp] = rangeGC
			bidi[cp] = rangeBidi
			if r.Mirrored {
				mirrored = append(mirrored, cp)
			}
		}
	}

	cucd.GeneralCategory = table.EncodeRuns(gc, c.generalCategoryDefault())
	cucd.CombiningClass = table.EncodeRuns(udata.CombiningClass, 0)
	cucd.BidiClass = table.EncodeRuns(bidi, c.bidiClassDefault())
	cucd.Mirrored = table.NewRangeSet(mirrored)
	cucd.BidiMirroring = table.NewCharmap(c.db.BidiMirroring)
	c.logger.Log("General_Category: %v runs", cucd.GeneralCategory.Len())
	c.logger.Log("Bidi_Class: %v runs", cucd.BidiClass.Len())
	return nil
}

func (c *compilation) generalCategoryDefault() spec.GeneralCategory {
	sym, ok := c.db.PropertyValueAliases.Default("General_Category")
	if ok {
		abb, ok := c.db.PropertyValueAliases.GeneralCategory[ucd.NormalizeSymbolicValue(sym)]
		if ok {
			return spec.GeneralCategory(abb)
		}
	}
	return spec.GeneralCategoryUnassigned
}

func (c *compilation) bidiClassDefault() spec.BidiClass {
	sym, ok := c.db.PropertyValueAliases.Default("Bidi_Class")
	if ok {
		abb, ok := c.db.PropertyValueAliases.BidiClass[ucd.NormalizeSymbolicValue(sym)]
		if ok {
			return spec.BidiClass(abb)
		}
	}
	return spec.BidiClassLeftToRight
}

// buildCase derives the simple case maps, the full-fold table, and the
// normalized simple-fold table: every codepoint with a simple-lowercase
// mapping defaults to folding to that value, explicit folds override, and
// any fold equal to the simple lowercase is dropped so the emitted table
// records only divergences.
func (c *compilation) buildCase(cucd *spec.CompiledUCD) error {
	udata := c.db.UnicodeData
	cucd.SimpleUppercase = table.NewCharmap(udata.SimpleUppercase)
	cucd.SimpleLowercase = table.NewCharmap(udata.SimpleLowercase)
	cucd.SimpleTitlecase = table.NewCharmap(udata.SimpleTitlecase)

	folds := map[rune]rune{}
	for cp, lower := range udata.SimpleLowercase {
		folds[cp] = lower
	}
	var fullFolds map[rune][]rune
	if c.db.CaseFolding != nil {
		fullFolds = c.db.CaseFolding.Full
		for cp, fold := range c.db.CaseFolding.Simple {
			folds[cp] = fold
		}
	}
	for cp, fold := range folds {
		if lower, ok := udata.SimpleLowercase[cp]; ok && lower == fold {
			delete(folds, cp)
		}
	}
	cucd.SimpleFold = table.NewCharmap(folds)
	cucd.FullFold = table.NewCharmap(fullFolds)
	c.logger.Log("simple folds diverging from lowercase: %v", cucd.SimpleFold.Len())
	return nil
}

// buildDecompositions splits decompositions into the canonical table and the
// short and long compatibility tables. The split exists purely to keep the
// common-case value type small.
func (c *compilation) buildDecompositions(cucd *spec.CompiledUCD) error {
	udata := c.db.UnicodeData
	for cp, d := range udata.CanonicalDecomposition {
		if len(d) > spec.MaxCanonicalDecomposition {
			return fmt.Errorf("canonical decomposition of %X has %v code points; at most %v are allowed", cp, len(d), spec.MaxCanonicalDecomposition)
		}
	}
	short := map[rune][]rune{}
	long := map[rune][]rune{}
	for cp, d := range udata.CompatibilityDecomposition {
		switch {
		case len(d) <= spec.MaxShortDecomposition:
			short[cp] = d
		case len(d) <= spec.MaxLongDecomposition:
			long[cp] = d
		default:
			return fmt.Errorf("compatibility decomposition of %X has %v code points; at most %v are allowed", cp, len(d), spec.MaxLongDecomposition)
		}
	}
	cucd.CanonicalDecomposition = table.NewCharmap(udata.CanonicalDecomposition)
	cucd.ShortDecomposition = table.NewCharmap(short)
	cucd.LongDecomposition = table.NewCharmap(long)
	return nil
}

// buildComposition derives the composition-exclusion set and inverts the
// canonical decompositions that remain composable.
//
// The exclusion set is the union of the explicitly listed codepoints and the
// combining-class side conditions: a singleton canonical decomposition, a
// decomposition whose first element is a non-starter, or a nonzero combining
// class on the composite itself. The union is idempotent; an already
// excluded codepoint stays excluded.
func (c *compilation) buildComposition(cucd *spec.CompiledUCD) error {
	udata := c.db.UnicodeData
	excluded := map[rune]struct{}{}
	for _, r := range c.db.CompositionExclusions {
		for cp := r.From; cp <= r.To; cp++ {
			excluded[cp] = struct{}{}
		}
	}
	for cp, d := range udata.CanonicalDecomposition {
		switch {
		case len(d) == 1:
			excluded[cp] = struct{}{}
		case udata.CombiningClass[d[0]] != 0:
			excluded[cp] = struct{}{}
		case udata.CombiningClass[cp] != 0:
			excluded[cp] = struct{}{}
		}
	}

	// Invert in ascending codepoint order with an explicit tie-break: when
	// two codepoints decompose to the same pair, the lowest wins and the
	// collision is reported through the logger.
	cps := make([]rune, 0, len(udata.CanonicalDecomposition))
	for cp := range udata.CanonicalDecomposition {
		cps = append(cps, cp)
	}
	sort.Slice(cps, func(i, j int) bool {
		return cps[i] < cps[j]
	})
	composition := map[uint64]rune{}
	for _, cp := range cps {
		if _, ok := excluded[cp]; ok {
			continue
		}
		d := udata.CanonicalDecomposition[cp]
		if len(d) != 2 {
			continue
		}
		key := table.PackPair(d[0], d[1])
		if winner, ok := composition[key]; ok {
			c.logger.Log("%X and %X decompose to the same pair <%X, %X>; keeping %X", winner, cp, d[0], d[1], winner)
			continue
		}
		composition[key] = cp
	}

	exclCPs := make([]rune, 0, len(excluded))
	for cp := range excluded {
		exclCPs = append(exclCPs, cp)
	}
	cucd.CompositionExclusions = table.NewRangeSet(exclCPs)
	cucd.Composition = table.NewCharmap(composition)
	c.logger.Log("%v composable pairs, %v exclusions", cucd.Composition.Len(), len(excluded))
	return nil
}

// buildIdentifiers derives the identifier sets. The nonstart sets are
// computed by set difference over the already-derived sets, never reparsed
// from source.
func (c *compilation) buildIdentifiers(cucd *spec.CompiledUCD) error {
	set := func(prop string) *table.RangeSet {
		return table.NewRangeSetFromRanges(c.db.DerivedCoreProperties.Ranges(prop))
	}
	cucd.IDStart = set("ID_Start")
	cucd.IDContinue = set("ID_Continue")
	cucd.IDNonstart = cucd.IDContinue.Difference(cucd.IDStart)
	cucd.XIDStart = set("XID_Start")
	cucd.XIDContinue = set("XID_Continue")
	cucd.XIDNonstart = cucd.XIDContinue.Difference(cucd.XIDStart)
	return nil
}

// buildScripts packs script codes into fixed-width tags and derives the
// script and script-extension tables.
func (c *compilation) buildScripts(cucd *spec.CompiledUCD) error {
	// Zzzz (Unknown) unless the source declares another default.
	defTag, err := table.PackScriptTag("zzzz")
	if err != nil {
		return err
	}
	if sym, ok := c.db.PropertyValueAliases.Default("Script"); ok {
		defTag, err = c.scriptTag(sym)
		if err != nil {
			return err
		}
	}

	scripts := map[rune]table.ScriptTag{}
	for _, sr := range c.db.Scripts {
		tag, err := c.scriptTag(sr.Script)
		if err != nil {
			return err
		}
		for cp := sr.Range.From; cp <= sr.Range.To; cp++ {
			scripts[cp] = tag
		}
	}
	cucd.Scripts = table.EncodeRuns(scripts, defTag)

	exts := map[rune]string{}
	for _, er := range c.db.ScriptExtensions {
		val := strings.Join(er.Scripts, " ")
		for cp := er.Range.From; cp <= er.Range.To; cp++ {
			exts[cp] = val
		}
	}
	cucd.ScriptExtensions = table.EncodeRuns(exts, "")
	c.logger.Log("Script: %v runs", cucd.Scripts.Len())
	return nil
}

// scriptTag resolves any spelling of a script value to its short code and
// packs it.
func (c *compilation) scriptTag(script string) (table.ScriptTag, error) {
	code, ok := c.db.PropertyValueAliases.Script[ucd.NormalizeSymbolicValue(script)]
	if !ok {
		// ScriptExtensions already carries short codes; they are listed as
		// their own aliases, so an unknown spelling is a real error.
		return 0, fmt.Errorf("unknown script value: %q", script)
	}
	return table.PackScriptTag(strings.ToLower(code))
}

// buildBlocks derives the block-name table. Codepoints outside every block
// take the empty name.
func (c *compilation) buildBlocks(cucd *spec.CompiledUCD) error {
	blocks := map[rune]string{}
	for _, b := range c.db.Blocks {
		for cp := b.Range.From; cp <= b.Range.To; cp++ {
			blocks[cp] = b.Name
		}
	}
	cucd.Blocks = table.EncodeRuns(blocks, "")
	return nil
}

// buildNames compresses the codepoint-name association into the name blob
// and builds the corrected-name overlay.
func (c *compilation) buildNames(cucd *spec.CompiledUCD) error {
	blob, err := table.EncodeNames(c.db.UnicodeData.Names)
	if err != nil {
		return err
	}
	cucd.Names = blob
	var corrections map[rune]string
	if c.db.NameAliases != nil {
		corrections = c.db.NameAliases.Corrections
	}
	cucd.NameCorrections = table.NewCharmap(corrections)
	c.logger.Log("name blob: %v bytes compressed, %v expanded", blob.CompressedLen, blob.UncompressedLen)
	return nil
}

// buildNumerics derives the numeric-type table and the rational-value map.
func (c *compilation) buildNumerics(cucd *spec.CompiledUCD) error {
	types := map[rune]spec.NumericType{}
	for cp, sym := range c.db.UnicodeData.NumericType {
		nt, err := spec.NumericTypeFromSymbol(sym)
		if err != nil {
			return err
		}
		types[cp] = nt
	}
	cucd.NumericType = table.EncodeRuns(types, spec.NumericTypeNone)
	cucd.NumericValue = table.NewCharmap(c.db.UnicodeData.NumericValue)
	return nil
}

// Identifier properties get dedicated fields; everything else from
// PropList.txt and DerivedCoreProperties.txt is emitted as a named set.
var identifierProperties = map[string]struct{}{
	"ID_Start": {}, "ID_Continue": {}, "XID_Start": {}, "XID_Continue": {},
}

func (c *compilation) buildPropertySets(cucd *spec.CompiledUCD) error {
	names := map[string][]table.CodePointRange{}
	for _, b := range []*ucd.BinaryProperties{c.db.PropList, c.db.DerivedCoreProperties} {
		if b == nil {
			continue
		}
		for name, ranges := range b.Sets {
			if _, ok := identifierProperties[name]; ok {
				continue
			}
			names[name] = append(names[name], ranges...)
		}
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)
	for _, name := range sorted {
		cucd.PropertySets = append(cucd.PropertySets, spec.PropertySet{
			Name: name,
			Set:  table.NewRangeSetFromRanges(names[name]),
		})
	}
	return nil
}

func (c *compilation) buildFixtures(cucd *spec.CompiledUCD) error {
	for _, nt := range c.db.NormalizationTest {
		cucd.NormalizationFixtures = append(cucd.NormalizationFixtures, spec.NormalizationFixture{
			Part:   nt.Part,
			Source: nt.Source,
			NFC:    nt.NFC,
			NFD:    nt.NFD,
			NFKC:   nt.NFKC,
			NFKD:   nt.NFKD,
		})
	}
	cucd.GraphemeFixtures = segmentationFixtures(c.db.GraphemeBreakTest)
	cucd.WordFixtures = segmentationFixtures(c.db.WordBreakTest)
	cucd.SentenceFixtures = segmentationFixtures(c.db.SentenceBreakTest)
	return nil
}

func segmentationFixtures(cases []ucd.SegmentationTestCase) []spec.SegmentationFixture {
	var fs []spec.SegmentationFixture
	for _, c := range cases {
		fs = append(fs, spec.SegmentationFixture{Segments: c.Segments})
	}
	return fs
}
