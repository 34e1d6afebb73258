package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitISSNs(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"1234-5678", []string{"1234-5678"}},
		{"1234-5678 (Print)", []string{"1234-5678 (Print)"}},
		{"1234-5678 (Print) 5678-1234", []string{"1234-5678 (Print)", "5678-1234"}},
		{"1234-5678 5678-1234 9876-5432", []string{"1234-5678", "5678-1234", "9876-5432"}},
		{"1234-5678\n5678-1234", []string{"1234-5678", "5678-1234"}},
		{`1234-5678\n5678-1234\r\n9876-5432`, []string{"1234-5678", "5678-1234", "9876-5432"}},
		{"  1234-5678  \n\n  5678-1234  \n", []string{"1234-5678", "5678-1234"}},
		{"1234-567X (Electronic)", []string{"1234-567X (Electronic)"}},
		{"", nil},
		{"no issn here", nil},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, SplitISSNs(tc.input), "input %q", tc.input)
	}
}
