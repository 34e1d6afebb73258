package pubmed

import (
	"io"
	"log/slog"
	"strings"

	"github.com/lehigh-university-libraries/bibparse/citation"
	"github.com/lehigh-university-libraries/bibparse/format"
	"github.com/lehigh-university-libraries/bibparse/helpers"
)

// Parse reads PubMed .nbib text and returns citation records.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]*citation.Citation, error) {
	data, err := format.ReadAll(r)
	if err != nil {
		return nil, err
	}

	records := parse(string(data))

	citations := make([]*citation.Citation, 0, len(records))
	for _, record := range records {
		for _, line := range record.ignored {
			slog.Debug("skipping unparseable line",
				"format", "pubmed",
				"record_line", record.startLine,
				"text", line)
		}

		c, err := record.citation()
		if err != nil {
			return nil, err
		}
		citations = append(citations, c)
	}

	return citations, nil
}

// rawRecord holds one record's tag data before conversion, along with the
// record's position in the source for error reporting.
type rawRecord struct {
	data      map[Tag][]string
	authors   []recordAuthor
	ignored   []string
	startLine int
	span      citation.SourceSpan
}

// parse splits the text into blank-line-delimited records and parses each
// one. The newline delimiter is sniffed so CRLF exports keep accurate
// byte spans.
func parse(text string) []*rawRecord {
	lineBreak := helpers.NewlineDelimiter(text)

	chunks := splitRecords(text, lineBreak)
	records := make([]*rawRecord, 0, len(chunks))
	for _, ch := range chunks {
		records = append(records, parseRecord(ch, lineBreak))
	}
	return records
}

func parseRecord(ch chunk, lineBreak string) *rawRecord {
	record := &rawRecord{
		data:      make(map[Tag][]string),
		startLine: ch.startLine,
		span:      citation.SourceSpan{Start: ch.startByte, End: ch.startByte + len(ch.text)},
	}

	var ordered []consecutiveEntry
	for _, line := range wholeLines(strings.Split(ch.text, lineBreak)) {
		tag, value, ok := parseEntry(line)
		if !ok {
			record.ignored = append(record.ignored, line)
			continue
		}
		if isConsecutiveTag(tag) {
			ordered = append(ordered, consecutiveEntry{tag, value})
			continue
		}
		record.data[tag] = append(record.data[tag], value)
	}

	var leading []string
	record.authors, leading = resolveAuthors(ordered)
	for _, affiliation := range leading {
		record.ignored = append(record.ignored, "AD - "+affiliation)
	}

	return record
}

// parseEntry splits a logical line on its first dash into a known tag and
// value. Lines without a dash or with an unknown tag are unparseable.
func parseEntry(line string) (Tag, string, bool) {
	key, value, found := strings.Cut(line, "-")
	if !found {
		return "", "", false
	}

	tag, ok := lookupTag(strings.TrimRight(key, " \t"))
	if !ok {
		return "", "", false
	}

	return tag, strings.TrimLeft(value, " \t"), true
}
