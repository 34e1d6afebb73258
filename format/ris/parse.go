package ris

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lehigh-university-libraries/bibparse/citation"
	"github.com/lehigh-university-libraries/bibparse/format"
	"github.com/lehigh-university-libraries/bibparse/helpers"
)

// Parse reads RIS text and returns citation records.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]*citation.Citation, error) {
	data, err := format.ReadAll(r)
	if err != nil {
		return nil, err
	}

	records := parse(string(data))

	citations := make([]*citation.Citation, 0, len(records))
	for _, record := range records {
		for _, ignored := range record.ignored {
			slog.Debug("skipping unparseable line",
				"format", "ris",
				"line", ignored.number,
				"text", ignored.text)
		}

		c, err := record.citation()
		if err != nil {
			return nil, err
		}
		citations = append(citations, c)
	}

	return citations, nil
}

// ignoredLine records an unparseable line with its position so it can be
// surfaced in debug logs without failing the parse.
type ignoredLine struct {
	number int
	text   string
}

// rawRecord holds the tag data of one reference before conversion, along
// with the record's position in the source for error reporting.
type rawRecord struct {
	data      map[Tag][]string
	authors   []citation.Author
	ignored   []ignoredLine
	startLine int
	span      citation.SourceSpan
}

func newRawRecord() *rawRecord {
	return &rawRecord{data: make(map[Tag][]string)}
}

// claim extends the record's source range to cover a contributing line.
// The first claimed line fixes the record's start; later lines push the
// span's end.
func (r *rawRecord) claim(lineNumber, start, end int) {
	if r.startLine == 0 {
		r.startLine = lineNumber
		r.span.Start = start
	}
	r.span.End = end
}

func (r *rawRecord) addData(tag Tag, value string) {
	r.data[tag] = append(r.data[tag], value)
}

// first returns the first value recorded for a tag.
func (r *rawRecord) first(tag Tag) (string, bool) {
	values := r.data[tag]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// take removes and returns all values for a tag.
func (r *rawRecord) take(tag Tag) []string {
	values := r.data[tag]
	delete(r.data, tag)
	return values
}

// hasContent reports whether any field or author was collected. Records
// holding only ignored lines are dropped.
func (r *rawRecord) hasContent() bool {
	return len(r.data) > 0 || len(r.authors) > 0
}

// bestByPriority picks the first value of the highest-ranked tag that has
// a non-blank first value. Lower rank wins, zero means not ranked.
func (r *rawRecord) bestByPriority(rank func(Tag) int) string {
	best := ""
	bestRank := int(^uint(0) >> 1)

	for tag, values := range r.data {
		p := rank(tag)
		if p == 0 || p >= bestRank || len(values) == 0 {
			continue
		}
		if strings.TrimSpace(values[0]) == "" {
			continue
		}
		bestRank = p
		best = values[0]
	}

	return best
}

// parse splits RIS text into raw records. Unparseable lines never fail the
// parse; they are collected per record instead. Each record tracks the
// line number and byte span of the lines that produced it so conversion
// errors can point back into the source.
func parse(text string) []*rawRecord {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var records []*rawRecord
	current := newRawRecord()
	lineNumber := 0
	offset := 0

	for _, rawLine := range strings.Split(text, "\n") {
		lineNumber++
		lineStart := offset
		offset += len(rawLine) + 1
		line := strings.TrimSpace(rawLine)

		if line == "" || isMetadataLine(line) {
			continue
		}
		lineEnd := lineStart + len(rawLine)

		tag, content, err := parseLine(line)
		if err != nil {
			current.claim(lineNumber, lineStart, lineEnd)
			current.ignored = append(current.ignored, ignoredLine{lineNumber, line})
			continue
		}

		switch {
		case tag == TagType:
			// Start of a new reference
			if current.hasContent() {
				records = append(records, current)
				current = newRawRecord()
			}
			current.claim(lineNumber, lineStart, lineEnd)
			current.addData(tag, content)
		case tag == TagEndOfReference:
			if current.hasContent() {
				current.span.End = lineEnd
				records = append(records, current)
				current = newRawRecord()
			}
		case isAuthorTag(tag):
			current.claim(lineNumber, lineStart, lineEnd)
			current.authors = append(current.authors, splitAuthors(content)...)
		default:
			current.claim(lineNumber, lineStart, lineEnd)
			current.addData(tag, content)
		}
	}

	if current.hasContent() {
		records = append(records, current)
	}

	return records
}

// parseLine splits a RIS line into its tag and content.
func parseLine(line string) (Tag, string, error) {
	if len(line) < 2 {
		return "", "", fmt.Errorf("line too short for a RIS tag: %q", line)
	}

	tagStr := line[:2]
	for i := 0; i < 2; i++ {
		c := tagStr[i]
		if !isASCIIAlphanumeric(c) {
			return "", "", fmt.Errorf("invalid RIS tag: %q", tagStr)
		}
	}

	content, err := extractContent(line)
	if err != nil {
		return "", "", err
	}

	return Tag(tagStr), content, nil
}

// extractContent strips the tag and separator, accepting the separator
// variants that exporters actually produce.
func extractContent(line string) (string, error) {
	// Standard form: "TY  - JOUR"
	if len(line) >= 6 && line[2:6] == "  - " {
		return strings.TrimSpace(line[6:]), nil
	}

	// No space after the dash: "ER  -"
	if len(line) >= 5 && line[2:5] == "  -" {
		return strings.TrimSpace(line[5:]), nil
	}

	// No spaces before the dash: "TY- JOUR"
	if len(line) >= 4 && line[2:4] == "- " {
		return strings.TrimSpace(line[4:]), nil
	}

	// Minimal form: "TY-JOUR"
	if len(line) >= 3 && line[2] == '-' {
		return strings.TrimSpace(line[3:]), nil
	}

	if len(line) > 2 && (line[2] == ' ' || line[2] == '-') {
		return strings.TrimSpace(line[2:]), nil
	}

	return "", fmt.Errorf("missing separator after RIS tag: %q", line)
}

// splitAuthors splits a multi-author value and parses each name. Splits on
// semicolons, then " & " and " and ". Bare commas never split since
// "Last, First" uses them.
func splitAuthors(value string) []citation.Author {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	var authors []citation.Author
	for _, segment := range strings.Split(trimmed, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		for _, part := range strings.Split(segment, " & ") {
			for _, sub := range strings.Split(part, " and ") {
				sub = strings.TrimSpace(sub)
				if sub != "" {
					authors = append(authors, helpers.AuthorFromName(sub))
				}
			}
		}
	}

	if len(authors) == 0 {
		authors = append(authors, helpers.AuthorFromName(trimmed))
	}

	return authors
}

// isMetadataLine reports whether the line is export metadata to skip.
func isMetadataLine(line string) bool {
	return strings.HasPrefix(line, "Record #") ||
		strings.HasPrefix(line, "Provider:") ||
		strings.HasPrefix(line, "Content:") ||
		strings.HasPrefix(line, "Database:")
}

func isASCIIAlphanumeric(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
