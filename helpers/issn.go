package helpers

import (
	"regexp"
	"strings"
)

var issnRegex = regexp.MustCompile(`\d{4}-\d{3}[\dX](?:\s*\([^)]+\))?`)

// SplitISSNs extracts individual ISSNs from a string that may hold several,
// separated by real or escaped newlines. Parenthesized qualifiers like
// "(Print)" are kept with their ISSN.
func SplitISSNs(issns string) []string {
	normalized := strings.NewReplacer(`\r\n`, "\n", `\r`, "\n", `\n`, "\n").Replace(issns)

	var result []string
	for _, line := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, m := range issnRegex.FindAllString(line, -1) {
			result = append(result, strings.TrimSpace(m))
		}
	}
	return result
}
