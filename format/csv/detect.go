package csv

import (
	"strconv"
	"strings"
)

// DetectDelimiter sniffs the field delimiter from up to five sample
// lines. A candidate must split every sampled line into the same number
// of fields; among consistent candidates the highest total field count
// wins. Falls back to a comma.
func DetectDelimiter(content string) byte {
	sample := sampleLines(content, 5)
	if len(sample) == 0 {
		return ','
	}

	best := byte(',')
	bestScore := 0

	for _, delimiter := range []byte{',', ';', '\t', '|'} {
		score := 0
		consistent := true
		expected := -1

		for _, line := range sample {
			count := strings.Count(line, string(delimiter)) + 1
			if expected < 0 {
				expected = count
			} else if count != expected {
				consistent = false
				break
			}
			score += count
		}

		if consistent && score > bestScore {
			bestScore = score
			best = delimiter
		}
	}

	return best
}

// DetectHeaders guesses whether the first line is a header row. Known
// citation column names decide immediately; otherwise the first line must
// look wordier than the second line looks data-like.
func DetectHeaders(content string, delimiter byte) bool {
	lines := sampleLines(content, 3)
	if len(lines) < 2 {
		return true // Assume headers if we can't analyze
	}

	firstFields := strings.Split(lines[0], string(delimiter))
	secondFields := strings.Split(lines[1], string(delimiter))

	keywords := []string{
		"title", "author", "year", "journal", "doi",
		"volume", "issue", "page", "abstract", "keyword",
	}
	for _, field := range firstFields {
		lower := strings.ToLower(field)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}

	// Headers tend to hold words; data rows tend to hold numbers and
	// short codes.
	textish := 0
	for _, field := range firstFields {
		if strings.TrimSpace(field) == "" {
			continue
		}
		if !isNumeric(field) && len(field) > 3 {
			textish++
		}
	}
	textRatio := float64(textish) / float64(max(len(firstFields), 1))

	datalike := 0
	for _, field := range secondFields {
		if strings.TrimSpace(field) == "" {
			continue
		}
		if isNumeric(field) || len(field) <= 3 {
			datalike++
		}
	}
	dataRatio := float64(datalike) / float64(max(len(secondFields), 1))

	return textRatio > 0.5 && dataRatio > 0.3
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// sampleLines returns up to n lines of the content, without a trailing
// empty line.
func sampleLines(content string, n int) []string {
	var lines []string
	for len(content) > 0 && len(lines) < n {
		line := content
		if idx := strings.IndexByte(content, '\n'); idx >= 0 {
			line, content = content[:idx], content[idx+1:]
		} else {
			content = ""
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines
}
