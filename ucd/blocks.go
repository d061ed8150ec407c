package ucd

import (
	"io"

	"github.com/ucdc-go/ucdc/table"
)

// BlockRange assigns a block name to a range of codepoints.
type BlockRange struct {
	Range table.CodePointRange
	Name  string
}

var blocksGrammar = fileGrammar{
	name:       "Blocks.txt",
	minFields:  2,
	fieldCount: 2,
}

// ParseBlocks parses Blocks.txt.
func ParseBlocks(r io.Reader) ([]BlockRange, error) {
	var blocks []BlockRange
	p := newParser(r, blocksGrammar)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		cpRange, err := p.fields[0].codePointRange()
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, BlockRange{
			Range: cpRange,
			Name:  p.fields[1].symbol(),
		})
	}
	if p.err != nil {
		return nil, p.err
	}
	return blocks, nil
}
