package ucd

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ucdc-go/ucdc/table"
)

type field string

func (f field) symbol() string {
	return string(f)
}

// normalizedSymbol applies the loose matching rule for symbolic values:
// underscores, hyphens, and spaces are removed, the rest is lowercased, and
// an `is` prefix is dropped.
func (f field) normalizedSymbol() string {
	return NormalizeSymbolicValue(string(f))
}

func (f field) codePoint() (rune, error) {
	return decodeHexToCodePoint(string(f))
}

func (f field) codePointRange() (table.CodePointRange, error) {
	var r table.CodePointRange
	ms := reCodePointRange.FindStringSubmatch(string(f))
	if ms == nil {
		return r, fmt.Errorf("invalid code point range: %q", string(f))
	}
	from, err := decodeHexToCodePoint(ms[1])
	if err != nil {
		return r, err
	}
	to := from
	if ms[2] != "" {
		to, err = decodeHexToCodePoint(ms[2])
		if err != nil {
			return r, err
		}
	}
	if to < from {
		return r, fmt.Errorf("invalid code point range: %q", string(f))
	}
	r.From = from
	r.To = to
	return r, nil
}

// codePoints parses a space-separated sequence of hexadecimal codepoints.
// An empty field yields an empty sequence.
func (f field) codePoints() ([]rune, error) {
	if f == "" {
		return nil, nil
	}
	var cps []rune
	for _, h := range strings.Fields(string(f)) {
		cp, err := decodeHexToCodePoint(h)
		if err != nil {
			return nil, err
		}
		cps = append(cps, cp)
	}
	return cps, nil
}

func (f field) integer() (int, error) {
	n, err := strconv.Atoi(string(f))
	if err != nil {
		return 0, fmt.Errorf("invalid integer field %q: %w", string(f), err)
	}
	return n, nil
}

type fields []field

var symValReplacer = strings.NewReplacer("_", "", "-", "", "\x20", "")

// NormalizeSymbolicValue normalizes a symbolic property value following
// UAX #44 loose matching.
func NormalizeSymbolicValue(original string) string {
	v := strings.ToLower(symValReplacer.Replace(original))
	if strings.HasPrefix(v, "is") && v != "is" {
		return v[2:]
	}
	return v
}

var (
	reLine           = regexp.MustCompile(`^\s*(.*?)\s*(#.*)?$`)
	reCodePointRange = regexp.MustCompile(`^([[:xdigit:]]+)(?:\.\.([[:xdigit:]]+))?$`)

	missingCommentPrefix = "# @missing:"
)

// fileGrammar declares the record shape of one UCD source file so parsers
// don't branch on field counts themselves: records with fewer than minFields
// fields are skipped, and fields beyond fieldCount are discarded.
type fileGrammar struct {
	name       string
	minFields  int
	fieldCount int
}

// parser converts each line of a UCD data file into a slice of fields. It
// strips comments, skips blank lines, applies the file's grammar, and
// recognizes specially-formatted `@missing` comments that declare default
// property values.
//
// Individual fields still need file-specific interpretation (codepoint
// ranges, hex sequences, symbolic values); the field accessors above cover
// those. One dedicated parse function per UCD file wraps this parser.
//
// https://www.unicode.org/reports/tr44/#Format_Conventions
type parser struct {
	scanner       *bufio.Scanner
	grammar       fileGrammar
	fields        fields
	defaultFields fields
	err           error
}

func newParser(r io.Reader, grammar fileGrammar) *parser {
	return &parser{
		scanner: bufio.NewScanner(r),
		grammar: grammar,
	}
}

// parse advances to the next record. After it returns true, at least one of
// p.fields and p.defaultFields is non-nil. Records with fewer fields than the
// file's minimum arity are skipped silently because many UCD files
// legitimately mix record shapes.
func (p *parser) parse() bool {
	for p.scanner.Scan() {
		p.fields, p.defaultFields = p.parseRecord(p.scanner.Text())
		if p.fields != nil || p.defaultFields != nil {
			return true
		}
	}
	p.err = p.scanner.Err()
	return false
}

func (p *parser) parseRecord(src string) (fields, fields) {
	ms := reLine.FindStringSubmatch(src)
	body := ms[1]
	comment := ms[2]
	var fs fields
	if body != "" {
		fs = parseFields(body)
		if len(fs) < p.grammar.minFields {
			fs = nil
		} else if p.grammar.fieldCount > 0 && len(fs) > p.grammar.fieldCount {
			fs = fs[:p.grammar.fieldCount]
		}
	}
	var defaultFs fields
	if strings.HasPrefix(comment, missingCommentPrefix) {
		defaultFs = parseFields(strings.TrimPrefix(comment, missingCommentPrefix))
	}
	return fs, defaultFs
}

func parseFields(src string) fields {
	var fs fields
	for _, f := range strings.Split(src, ";") {
		fs = append(fs, field(strings.TrimSpace(f)))
	}
	return fs
}

func decodeHexToCodePoint(src string) (rune, error) {
	n, err := strconv.ParseUint(src, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %w", src, err)
	}
	if n > uint64(table.MaxCodePoint) {
		return 0, fmt.Errorf("code point out of range: %X", n)
	}
	return rune(n), nil
}
