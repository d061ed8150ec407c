package table

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/klauspost/compress/flate"
)

// NameBlob holds the full codepoint-to-name association serialized as one
// `<hex>;<name>;` stream sorted by codepoint and compressed losslessly. Both
// byte lengths are retained so a reader can preallocate its expansion buffer.
type NameBlob struct {
	Data            []byte `json:"data"`
	CompressedLen   int    `json:"compressed_len"`
	UncompressedLen int    `json:"uncompressed_len"`
}

// EncodeNames serializes and compresses the name association in ascending
// codepoint order.
func EncodeNames(names map[rune]string) (*NameBlob, error) {
	cps := make([]rune, 0, len(names))
	for cp := range names {
		cps = append(cps, cp)
	}
	sort.Slice(cps, func(i, j int) bool {
		return cps[i] < cps[j]
	})
	var b strings.Builder
	for _, cp := range cps {
		fmt.Fprintf(&b, "%04X;%v;", cp, names[cp])
	}
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	_, err = io.WriteString(zw, b.String())
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return &NameBlob{
		Data:            buf.Bytes(),
		CompressedLen:   buf.Len(),
		UncompressedLen: b.Len(),
	}, nil
}

// Expand decompresses the blob into the original `<hex>;<name>;` stream.
func (b *NameBlob) Expand() ([]byte, error) {
	zr := flate.NewReader(bytes.NewReader(b.Data))
	defer zr.Close()
	buf := bytes.NewBuffer(make([]byte, 0, b.UncompressedLen))
	_, err := io.Copy(buf, zr)
	if err != nil {
		return nil, fmt.Errorf("failed to expand the name blob: %w", err)
	}
	if buf.Len() != b.UncompressedLen {
		return nil, fmt.Errorf("expanded name blob is %v bytes; want %v", buf.Len(), b.UncompressedLen)
	}
	return buf.Bytes(), nil
}

// Validate checks that the recorded lengths are consistent with the data. A
// nil blob is invalid; a decoded artifact may simply lack it.
func (b *NameBlob) Validate() error {
	if b == nil {
		return fmt.Errorf("the blob is missing")
	}
	if len(b.Data) != b.CompressedLen {
		return fmt.Errorf("name blob is %v bytes; the recorded compressed length is %v", len(b.Data), b.CompressedLen)
	}
	expanded, err := b.Expand()
	if err != nil {
		return err
	}
	if len(expanded) != b.UncompressedLen {
		return fmt.Errorf("name blob expands to %v bytes; the recorded uncompressed length is %v", len(expanded), b.UncompressedLen)
	}
	return nil
}

// LookupName scans an expanded name stream for the name of cp. The stream is
// sorted by codepoint, so the scan stops as soon as it passes cp.
func LookupName(expanded []byte, cp rune) (string, bool) {
	rest := expanded
	for len(rest) > 0 {
		sep := bytes.IndexByte(rest, ';')
		if sep < 0 {
			return "", false
		}
		cur, err := parseBlobCodePoint(rest[:sep])
		if err != nil {
			return "", false
		}
		rest = rest[sep+1:]
		end := bytes.IndexByte(rest, ';')
		if end < 0 {
			return "", false
		}
		if cur == cp {
			return string(rest[:end]), true
		}
		if cur > cp {
			return "", false
		}
		rest = rest[end+1:]
	}
	return "", false
}

func parseBlobCodePoint(src []byte) (rune, error) {
	var cp rune
	for _, c := range src {
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		default:
			return 0, fmt.Errorf("invalid hex digit: %q", c)
		}
		cp = cp*16 + d
		if cp > MaxCodePoint {
			return 0, fmt.Errorf("code point out of range: %X", cp)
		}
	}
	if len(src) == 0 {
		return 0, fmt.Errorf("empty code point field")
	}
	return cp, nil
}
