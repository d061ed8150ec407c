package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NormalizationTestCase is one row of NormalizationTest.txt: a source
// sequence and its four normalized forms.
type NormalizationTestCase struct {
	Part   int
	Source []rune
	NFC    []rune
	NFD    []rune
	NFKC   []rune
	NFKD   []rune
}

var normalizationTestGrammar = fileGrammar{
	name:       "NormalizationTest.txt",
	minFields:  1,
	fieldCount: 6,
}

// ParseNormalizationTest parses NormalizationTest.txt into conformance
// fixture rows.
func ParseNormalizationTest(r io.Reader) ([]NormalizationTestCase, error) {
	var cases []NormalizationTestCase
	part := -1
	p := newParser(r, normalizationTestGrammar)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		if s := p.fields[0].symbol(); strings.HasPrefix(s, "@Part") {
			n, err := field(strings.TrimPrefix(s, "@Part")).integer()
			if err != nil {
				return nil, fmt.Errorf("%v: invalid part header %q", normalizationTestGrammar.name, s)
			}
			part = n
			continue
		}
		if len(p.fields) < 5 {
			continue
		}
		c := NormalizationTestCase{Part: part}
		for i, dst := range []*[]rune{&c.Source, &c.NFC, &c.NFD, &c.NFKC, &c.NFKD} {
			cps, err := p.fields[i].codePoints()
			if err != nil {
				return nil, fmt.Errorf("%v: %w", normalizationTestGrammar.name, err)
			}
			*dst = cps
		}
		cases = append(cases, c)
	}
	if p.err != nil {
		return nil, p.err
	}
	return cases, nil
}

// SegmentationTestCase is one row of an aux break-test file: the codepoint
// sequence split into the segments a conformant segmenter must produce.
type SegmentationTestCase struct {
	Segments [][]rune
}

const (
	segBreak   = "÷"
	segNoBreak = "×"
)

// ParseSegmentationTest parses the break-test grammar shared by
// GraphemeBreakTest.txt, WordBreakTest.txt, and SentenceBreakTest.txt: rows
// of codepoints separated by break (÷) and no-break (×) markers.
func ParseSegmentationTest(r io.Reader) ([]SegmentationTestCase, error) {
	var cases []SegmentationTestCase
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var c SegmentationTestCase
		var seg []rune
		for _, tok := range strings.Fields(line) {
			switch tok {
			case segBreak:
				if len(seg) > 0 {
					c.Segments = append(c.Segments, seg)
					seg = nil
				}
			case segNoBreak:
				// Continue the current segment.
			default:
				cp, err := decodeHexToCodePoint(tok)
				if err != nil {
					return nil, err
				}
				seg = append(seg, cp)
			}
		}
		if len(seg) > 0 {
			c.Segments = append(c.Segments, seg)
		}
		if len(c.Segments) > 0 {
			cases = append(cases, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}
