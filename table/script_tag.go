package table

import (
	"fmt"
	"strings"
)

// ScriptTag is a 1-4 character lowercase script code packed into an integer
// so that script tables carry a fixed-width value instead of character data.
type ScriptTag uint32

// PackScriptTag packs a lowercase alphabetic code of 1 to 4 characters. Each
// character shifts the accumulated tag by one byte, so codes of different
// lengths can never collide.
func PackScriptTag(code string) (ScriptTag, error) {
	if len(code) < 1 || len(code) > 4 {
		return 0, fmt.Errorf("script code must be 1 to 4 characters: %q", code)
	}
	var tag ScriptTag
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("script code must be lowercase alphabetic: %q", code)
		}
		tag = tag*256 + ScriptTag(c)
	}
	return tag, nil
}

// String unpacks the tag back into its code, for diagnostics.
func (t ScriptTag) String() string {
	if t == 0 {
		return ""
	}
	var b strings.Builder
	for shift := 24; shift >= 0; shift -= 8 {
		c := byte(t >> shift)
		if c == 0 {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
