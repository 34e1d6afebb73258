package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPageNumbers(t *testing.T) {
	cases := map[string]string{
		"1234-45":         "1234-1245",
		"1234":            "1234",
		"123-456":         "123-456",
		"e071674":         "e071674",
		"R575-82":         "R575-R582",
		"12-345":          "12-345",
		"5-10":            "5-10",
		"A94-A95":         "A94-A95",
		"01-Apr":          "01-Apr",
		"iii613-iii614":   "iii613-iii614",
		"101-101":         "101",
		"":                "",
		"123-456-789":     "123-456-789",
		"iv-xii":          "iv-xii",
	}

	for input, want := range cases {
		assert.Equal(t, want, FormatPageNumbers(input), "input %q", input)
	}
}

func TestFormatPageNumbersIdempotent(t *testing.T) {
	for _, input := range []string{"1234-45", "R575-82", "101-101", "5-10"} {
		once := FormatPageNumbers(input)
		assert.Equal(t, once, FormatPageNumbers(once), "input %q", input)
	}
}
