package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Rational is a numeric property value packed as a numerator/denominator
// pair. Integers carry a denominator of 1.
type Rational struct {
	Num int64 `json:"num"`
	Den int64 `json:"den"`
}

// ParseRational parses the UCD numeric-value notation: a decimal integer,
// optionally negative, optionally followed by a slash and a denominator.
func ParseRational(src string) (Rational, error) {
	numSrc, denSrc, isFraction := strings.Cut(src, "/")
	num, err := strconv.ParseInt(numSrc, 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("invalid numeric value %q: %w", src, err)
	}
	den := int64(1)
	if isFraction {
		den, err = strconv.ParseInt(denSrc, 10, 64)
		if err != nil {
			return Rational{}, fmt.Errorf("invalid numeric value %q: %w", src, err)
		}
		if den == 0 {
			return Rational{}, fmt.Errorf("invalid numeric value %q: zero denominator", src)
		}
	}
	return Rational{Num: num, Den: den}, nil
}

func (r Rational) String() string {
	if r.Den == 1 {
		return strconv.FormatInt(r.Num, 10)
	}
	return fmt.Sprintf("%v/%v", r.Num, r.Den)
}
