package helpers

import (
	"strings"

	"github.com/lehigh-university-libraries/bibparse/citation"
)

// ParseAuthorName splits a personal name into family and given parts.
// "Lastname, Firstname" splits on commas; otherwise whitespace separates the
// family name (first token) from the given names (rest).
func ParseAuthorName(name string) (family, given string) {
	var parts []string
	if strings.Contains(name, ",") {
		parts = strings.Split(name, ",")
	} else {
		parts = strings.Fields(name)
	}

	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return strings.TrimSpace(parts[0]), ""
	case 2:
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	default:
		return strings.TrimSpace(parts[0]), strings.TrimSpace(strings.Join(parts[1:], " "))
	}
}

// SplitGivenAndMiddle splits a full given-name string into the given name
// (first token) and middle names (remaining tokens, space-joined). Both are
// empty when the input is blank.
func SplitGivenAndMiddle(fullGiven string) (given, middle string) {
	fields := strings.Fields(fullGiven)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// AuthorFromName builds an Author from a raw personal-name string using
// ParseAuthorName and SplitGivenAndMiddle.
func AuthorFromName(name string) citation.Author {
	family, given := ParseAuthorName(name)
	givenName, middleName := SplitGivenAndMiddle(given)
	return citation.Author{
		Name:       family,
		GivenName:  givenName,
		MiddleName: middleName,
	}
}
