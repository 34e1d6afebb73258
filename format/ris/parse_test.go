package ris

import (
	"testing"
)

func TestParseLineValid(t *testing.T) {
	cases := []struct {
		line    string
		tag     Tag
		content string
	}{
		{"TY  - JOUR", TagType, "JOUR"},
		{"TI  - Test Title", TagTitle, "Test Title"},
		{"AU  - Smith, John", "AU", "Smith, John"},
		{"ER  -", TagEndOfReference, ""},
		{"DO  - 10.1000/test", TagDOI, "10.1000/test"},
		{"TY Content", TagType, "Content"},
		{"TY-Content", TagType, "Content"},
	}

	for _, tc := range cases {
		tag, content, err := parseLine(tc.line)
		if err != nil {
			t.Errorf("parseLine(%q): unexpected error: %v", tc.line, err)
			continue
		}
		if tag != tc.tag {
			t.Errorf("parseLine(%q): tag = %q, want %q", tc.line, tag, tc.tag)
		}
		if content != tc.content {
			t.Errorf("parseLine(%q): content = %q, want %q", tc.line, content, tc.content)
		}
	}
}

func TestParseLineInvalid(t *testing.T) {
	for _, line := range []string{"", "A", "!!  - Invalid tag", "TYNoSeparator", "TYBAD"} {
		if _, _, err := parseLine(line); err == nil {
			t.Errorf("parseLine(%q): expected error", line)
		}
	}
}

func TestIsMetadataLine(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"Record #1 of 10", true},
		{"Provider: Some Provider", true},
		{"Content: text/plain", true},
		{"Database: PubMed", true},
		{"TY  - JOUR", false},
	}

	for _, tc := range cases {
		if got := isMetadataLine(tc.line); got != tc.want {
			t.Errorf("isMetadataLine(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestParseSimpleRecord(t *testing.T) {
	input := `TY  - JOUR
TI  - Test Article
AU  - Smith, John
ER  -`

	records := parse(input)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	raw := records[0]
	if v, _ := raw.first(TagType); v != "JOUR" {
		t.Errorf("TY = %q, want JOUR", v)
	}
	if v, _ := raw.first(TagTitle); v != "Test Article" {
		t.Errorf("TI = %q, want Test Article", v)
	}
	if len(raw.authors) != 1 {
		t.Fatalf("expected 1 author, got %d", len(raw.authors))
	}
	if raw.authors[0].Name != "Smith" {
		t.Errorf("author name = %q, want Smith", raw.authors[0].Name)
	}
}

func TestParseMultipleRecords(t *testing.T) {
	input := `TY  - JOUR
TI  - First Article
AU  - Smith, John
ER  -

TY  - BOOK
TI  - Second Article
AU  - Doe, Jane
ER  -`

	records := parse(input)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if v, _ := records[0].first(TagType); v != "JOUR" {
		t.Errorf("first TY = %q, want JOUR", v)
	}
	if v, _ := records[1].first(TagType); v != "BOOK" {
		t.Errorf("second TY = %q, want BOOK", v)
	}
}

func TestParseSkipsMetadata(t *testing.T) {
	input := `Record #1 of 2
Provider: Test Provider
Database: Test DB

TY  - JOUR
TI  - Test Article
AU  - Smith, John
ER  -`

	records := parse(input)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if v, _ := records[0].first(TagTitle); v != "Test Article" {
		t.Errorf("TI = %q, want Test Article", v)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if records := parse(""); len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
	if records := parse("Record #1 of 0\nProvider: Test Provider"); len(records) != 0 {
		t.Errorf("expected no records from metadata-only input, got %d", len(records))
	}
}

func TestParseCollectsInvalidLines(t *testing.T) {
	input := `TY  - JOUR
TI  - Test Article
!! - This is truly invalid
AU  - Smith, John
ER  -`

	records := parse(input)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if len(records[0].ignored) != 1 {
		t.Fatalf("expected 1 ignored line, got %d", len(records[0].ignored))
	}
	ignored := records[0].ignored[0]
	if ignored.number != 3 {
		t.Errorf("ignored line number = %d, want 3", ignored.number)
	}
	if ignored.text != "!! - This is truly invalid" {
		t.Errorf("ignored line text = %q", ignored.text)
	}
}

func TestParseMissingEndOfReference(t *testing.T) {
	input := `TY  - JOUR
TI  - Trailing Article`

	records := parse(input)
	if len(records) != 1 {
		t.Fatalf("expected trailing record to flush, got %d records", len(records))
	}
	if v, _ := records[0].first(TagTitle); v != "Trailing Article" {
		t.Errorf("TI = %q, want Trailing Article", v)
	}
}

func TestParseTracksRecordPositions(t *testing.T) {
	first := "TY  - JOUR\nTI  - First\nER  -\n\n"
	second := "TY  - JOUR\nTI  - Second\nER  -\n"

	records := parse(first + second)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if records[0].startLine != 1 {
		t.Errorf("first record startLine = %d, want 1", records[0].startLine)
	}
	if records[0].span.Start != 0 {
		t.Errorf("first record span start = %d, want 0", records[0].span.Start)
	}
	if want := len("TY  - JOUR\nTI  - First\nER  -"); records[0].span.End != want {
		t.Errorf("first record span end = %d, want %d (end of its ER line)", records[0].span.End, want)
	}

	if records[1].startLine != 5 {
		t.Errorf("second record startLine = %d, want 5", records[1].startLine)
	}
	if records[1].span.Start != len(first) {
		t.Errorf("second record span start = %d, want %d", records[1].span.Start, len(first))
	}
}

func TestSplitAuthors(t *testing.T) {
	cases := []struct {
		input string
		names []string
	}{
		{"Smith, John", []string{"Smith"}},
		{"Smith, J.; Doe, A.; Brown, B.", []string{"Smith", "Doe", "Brown"}},
		{"Smith, J. & Doe, A.", []string{"Smith", "Doe"}},
		{"Smith, J. and Doe, A.", []string{"Smith", "Doe"}},
		{"Smith, J.; Doe, A. & Brown, B.", []string{"Smith", "Doe", "Brown"}},
		// Commas never split, so the middle name folds into the first author.
		{"Abebe, T., Alemu, B., & Teshome, M", []string{"Abebe", "Teshome"}},
		{"", nil},
	}

	for _, tc := range cases {
		authors := splitAuthors(tc.input)
		if len(authors) != len(tc.names) {
			t.Errorf("splitAuthors(%q): got %d authors, want %d", tc.input, len(authors), len(tc.names))
			continue
		}
		for i, name := range tc.names {
			if authors[i].Name != name {
				t.Errorf("splitAuthors(%q)[%d].Name = %q, want %q", tc.input, i, authors[i].Name, name)
			}
		}
	}
}
