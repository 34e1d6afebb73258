package citation

import (
	"fmt"
	"strings"
)

// Diagnostic renders the error as a human-readable report with source
// context: a header naming the source and position, the offending source
// line, and a caret underline covering the error span.
//
// The byte range is chosen by priority: explicit span, else a range derived
// from the line number, else [0,0).
func (e *ParseError) Diagnostic(filename, source string) string {
	start, end := e.primaryByteRange(source)
	line, col := lineColAt(source, start)

	var b strings.Builder
	fmt.Fprintf(&b, "error: %s\n", e.Error())
	fmt.Fprintf(&b, "  --> %s:%d:%d\n", filename, line, col)

	text, lineStart := lineContaining(source, start)
	if text == "" && start >= len(source) {
		return b.String()
	}

	gutter := fmt.Sprintf("%d", line)
	pad := strings.Repeat(" ", len(gutter))
	fmt.Fprintf(&b, "%s |\n", pad)
	fmt.Fprintf(&b, "%s | %s\n", gutter, text)

	// Underline the span, clamped to the quoted line.
	underStart := start - lineStart
	underLen := end - start
	if underLen <= 0 {
		underLen = 1
	}
	if underStart+underLen > len(text) {
		underLen = len(text) - underStart
		if underLen <= 0 {
			underLen = 1
			underStart = max(len(text)-1, 0)
		}
	}
	fmt.Fprintf(&b, "%s | %s%s\n", pad, strings.Repeat(" ", underStart), strings.Repeat("^", underLen))

	return b.String()
}

// primaryByteRange computes the byte range into source that best represents
// the error location.
func (e *ParseError) primaryByteRange(source string) (int, int) {
	if e.Span != nil {
		return e.Span.Start, e.Span.End
	}
	if e.Line > 0 {
		lineStart := 0
		current := 1
		for current < e.Line {
			idx := strings.IndexByte(source[lineStart:], '\n')
			if idx < 0 {
				break
			}
			lineStart += idx + 1
			current++
		}
		lineLen := len(source) - lineStart
		if idx := strings.IndexByte(source[lineStart:], '\n'); idx >= 0 {
			lineLen = idx
		}
		return lineStart, lineStart + lineLen
	}
	return 0, 0
}

// lineColAt returns the 1-based line and column of a byte offset.
func lineColAt(source string, offset int) (int, int) {
	if offset > len(source) {
		offset = len(source)
	}
	prefix := source[:offset]
	line := strings.Count(prefix, "\n") + 1
	col := offset - (strings.LastIndexByte(prefix, '\n') + 1) + 1
	return line, col
}

// lineContaining returns the text of the line holding the byte offset and
// the offset of that line's first byte.
func lineContaining(source string, offset int) (string, int) {
	if offset > len(source) {
		offset = len(source)
	}
	start := strings.LastIndexByte(source[:offset], '\n') + 1
	end := len(source)
	if idx := strings.IndexByte(source[start:], '\n'); idx >= 0 {
		end = start + idx
	}
	return strings.TrimRight(source[start:end], "\r"), start
}
