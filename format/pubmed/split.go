package pubmed

import "strings"

// chunk is one blank-line-delimited record along with its position in the
// source text, kept for error reporting.
type chunk struct {
	text      string
	startLine int
	startByte int
}

// splitRecords splits the text into record chunks on blank lines. Line
// numbers are 1-based and byte offsets index into the original text, so a
// chunk's span is [startByte, startByte+len(text)).
func splitRecords(text, lineBreak string) []chunk {
	var chunks []chunk

	offset := 0
	lineNumber := 0
	current := -1
	currentLine := 0
	end := 0

	flush := func() {
		if current >= 0 {
			chunks = append(chunks, chunk{
				text:      text[current:end],
				startLine: currentLine,
				startByte: current,
			})
			current = -1
		}
	}

	for offset <= len(text) {
		lineNumber++
		next := strings.Index(text[offset:], lineBreak)
		var line string
		var lineEnd int
		if next < 0 {
			line = text[offset:]
			lineEnd = len(text)
		} else {
			line = text[offset : offset+next]
			lineEnd = offset + next
		}

		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			if current < 0 {
				current = offset
				currentLine = lineNumber
			}
			end = lineEnd
		}

		if next < 0 {
			break
		}
		offset = lineEnd + len(lineBreak)
	}

	flush()
	return chunks
}

// wholeLines folds continuation lines into their preceding logical line.
// A line starting with whitespace continues the previous one, joined with
// a single space, unless it is itself a new tag line.
func wholeLines(lines []string) []string {
	var whole []string

	for _, line := range lines {
		if line == "" {
			continue
		}
		isContinuation := (line[0] == ' ' || line[0] == '\t') && !looksLikeTag(line)
		if isContinuation && len(whole) > 0 {
			whole[len(whole)-1] += " " + strings.TrimSpace(line)
			continue
		}
		whole = append(whole, strings.TrimRight(line, " \t\r"))
	}

	return whole
}

// looksLikeTag reports whether the line, ignoring indentation, starts a
// new tagged entry. An indented tag line must not be folded into the
// previous field's value.
func looksLikeTag(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	key, _, found := strings.Cut(trimmed, "-")
	if !found {
		return false
	}
	_, ok := lookupTag(strings.TrimRight(key, " \t"))
	return ok
}
