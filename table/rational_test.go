package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRational(t *testing.T) {
	tests := []struct {
		src     string
		want    Rational
		invalid bool
	}{
		{src: "0", want: Rational{Num: 0, Den: 1}},
		{src: "7", want: Rational{Num: 7, Den: 1}},
		{src: "-1", want: Rational{Num: -1, Den: 1}},
		{src: "1/3", want: Rational{Num: 1, Den: 3}},
		{src: "3/16", want: Rational{Num: 3, Den: 16}},
		{src: "-1/2", want: Rational{Num: -1, Den: 2}},
		{src: "", invalid: true},
		{src: "1/", invalid: true},
		{src: "/2", invalid: true},
		{src: "1/0", invalid: true},
		{src: "x", invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := ParseRational(tt.src)
			if tt.invalid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.src, got.String())
		})
	}
}
