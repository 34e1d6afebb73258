// Package helpers provides shared field normalizers used by all format
// parsers: page completion, DOI and ISSN normalization, person-name
// splitting, and per-format date parsing.
package helpers

import "strings"

// FormatPageNumbers normalizes a page range, completing abbreviated end
// pages ("1234-45" -> "1234-1245", "R575-82" -> "R575-R582") and collapsing
// equal endpoints ("101-101" -> "101"). Input it cannot interpret passes
// through unchanged, so the function is idempotent.
func FormatPageNumbers(pageRange string) string {
	if !strings.Contains(pageRange, "-") {
		return pageRange
	}

	parts := strings.Split(pageRange, "-")
	if len(parts) != 2 {
		return pageRange
	}

	from, to := parts[0], parts[1]
	fromPrefix, fromNum, fromOK := splitPrefixAndNumber(from)
	toPrefix, toNum, toOK := splitPrefixAndNumber(to)

	// Mismatched non-empty prefixes mean the endpoints are not comparable.
	if fromPrefix != toPrefix && fromPrefix != "" && toPrefix != "" {
		return pageRange
	}

	if !toOK || !fromOK {
		return pageRange
	}

	// If the end number is shorter, complete it with the start's leading
	// digits.
	completedTo := toNum
	if len(toNum) < len(fromNum) {
		completedTo = fromNum[:len(fromNum)-len(toNum)] + toNum
	}

	if fromNum == completedTo {
		return fromPrefix + fromNum
	}

	return fromPrefix + fromNum + "-" + fromPrefix + completedTo
}

// splitPrefixAndNumber splits a page endpoint at its first ASCII digit. The
// third result is false when the input has no numeric part.
func splitPrefixAndNumber(input string) (prefix, number string, ok bool) {
	for i := 0; i < len(input); i++ {
		if input[i] >= '0' && input[i] <= '9' {
			return input[:i], input[i:], true
		}
	}
	return input, "", false
}
