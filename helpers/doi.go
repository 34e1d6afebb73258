package helpers

import (
	"regexp"
	"strings"
	"unicode"
)

var doiURLRegex = regexp.MustCompile(`^https?://(?:dx\.)?doi\.org/(.+)$`)

// FormatDOI normalizes a DOI string: strips a trailing "[doi]" marker,
// removes all whitespace, lowercases, drops leading decoration ("DOI:",
// URL hosts) by locating the first "10." substring, and reduces doi.org
// URLs to their path. Returns "" when no DOI can be found.
func FormatDOI(doiStr string) string {
	if doiStr == "" {
		return ""
	}
	doi := strings.TrimSpace(doiStr)
	doi = strings.TrimSuffix(doi, "[doi]")
	doi = strings.TrimSpace(doi)
	doi = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, doi)
	doi = strings.ToLower(doi)

	pos := strings.Index(doi, "10.")
	if pos < 0 {
		return ""
	}
	doi = doi[pos:]
	if m := doiURLRegex.FindStringSubmatch(doi); m != nil {
		return m[1]
	}
	return doi
}
