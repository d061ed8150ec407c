package spec

import (
	"fmt"
)

// GeneralCategory is a General_Category value in its abbreviated form.
type GeneralCategory string

// GeneralCategoryUnassigned is the value of every codepoint UnicodeData.txt
// doesn't mention; it is the default of the compiled category table.
const GeneralCategoryUnassigned = GeneralCategory("Cn")

// https://www.unicode.org/reports/tr44/#GC_Values_Table
var generalCategories = map[GeneralCategory]struct{}{
	"Lu": {}, "Ll": {}, "Lt": {}, "Lm": {}, "Lo": {},
	"Mn": {}, "Mc": {}, "Me": {},
	"Nd": {}, "Nl": {}, "No": {},
	"Pc": {}, "Pd": {}, "Ps": {}, "Pe": {}, "Pi": {}, "Pf": {}, "Po": {},
	"Sm": {}, "Sc": {}, "Sk": {}, "So": {},
	"Zs": {}, "Zl": {}, "Zp": {},
	"Cc": {}, "Cf": {}, "Cs": {}, "Co": {}, "Cn": {},
}

// GeneralCategoryFromSymbol converts an abbreviated General_Category
// spelling read from a source file. Unknown spellings are a fatal input
// error.
func GeneralCategoryFromSymbol(sym string) (GeneralCategory, error) {
	gc := GeneralCategory(sym)
	if _, ok := generalCategories[gc]; !ok {
		return "", fmt.Errorf("unknown General_Category value: %q", sym)
	}
	return gc, nil
}

// BidiClass is a Bidi_Class value in its abbreviated form.
type BidiClass string

// BidiClassLeftToRight is the whole-domain default declared by
// PropertyValueAliases.txt for codepoints with no explicit bidi class.
const BidiClassLeftToRight = BidiClass("L")

// https://www.unicode.org/reports/tr44/#Bidi_Class_Values
var bidiClasses = map[BidiClass]struct{}{
	"L": {}, "R": {}, "AL": {},
	"EN": {}, "ES": {}, "ET": {}, "AN": {}, "CS": {}, "NSM": {}, "BN": {},
	"B": {}, "S": {}, "WS": {}, "ON": {},
	"LRE": {}, "LRO": {}, "RLE": {}, "RLO": {}, "PDF": {},
	"LRI": {}, "RLI": {}, "FSI": {}, "PDI": {},
}

// BidiClassFromSymbol converts an abbreviated Bidi_Class spelling read from
// a source file. Unknown spellings are a fatal input error.
func BidiClassFromSymbol(sym string) (BidiClass, error) {
	bc := BidiClass(sym)
	if _, ok := bidiClasses[bc]; !ok {
		return "", fmt.Errorf("unknown Bidi_Class value: %q", sym)
	}
	return bc, nil
}

// NumericType classifies how a codepoint's numeric value is used.
type NumericType string

const (
	NumericTypeNone    = NumericType("None")
	NumericTypeDecimal = NumericType("Decimal")
	NumericTypeDigit   = NumericType("Digit")
	NumericTypeNumeric = NumericType("Numeric")
)

// NumericTypeFromSymbol converts a Numeric_Type spelling.
func NumericTypeFromSymbol(sym string) (NumericType, error) {
	switch nt := NumericType(sym); nt {
	case NumericTypeNone, NumericTypeDecimal, NumericTypeDigit, NumericTypeNumeric:
		return nt, nil
	default:
		return "", fmt.Errorf("unknown Numeric_Type value: %q", sym)
	}
}
