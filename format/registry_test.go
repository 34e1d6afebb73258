package format_test

import (
	"errors"
	"testing"

	"github.com/lehigh-university-libraries/bibparse/citation"
	"github.com/lehigh-university-libraries/bibparse/format"

	_ "github.com/lehigh-university-libraries/bibparse/format/csv"
	_ "github.com/lehigh-university-libraries/bibparse/format/endnote"
	_ "github.com/lehigh-university-libraries/bibparse/format/pubmed"
	_ "github.com/lehigh-university-libraries/bibparse/format/ris"
)

func TestRegisteredFormats(t *testing.T) {
	for _, name := range []string{"ris", "pubmed", "endnote", "csv"} {
		f, ok := format.Get(name)
		if !ok {
			t.Errorf("Get(%q) found nothing", name)
			continue
		}
		if f.Name() != name {
			t.Errorf("Get(%q).Name() = %q", name, f.Name())
		}
	}

	if _, ok := format.Get("marc"); ok {
		t.Error("unexpected hit for unregistered format")
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	f, ok := format.Get("RIS")
	if !ok {
		t.Fatal("Get(RIS) found nothing")
	}
	if f.Name() != "ris" {
		t.Errorf("Name() = %q", f.Name())
	}
}

func TestDetectFromContent(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"ris", "TY  - JOUR\nTI  - Title\nER  -\n", "ris"},
		{"ris with leading blank", "\nTY  - JOUR\nER  -\n", "ris"},
		{"pubmed", "PMID- 12345\nTI  - Title\n", "pubmed"},
		{"endnote declaration", "<?xml version=\"1.0\"?><xml><records></records></xml>", "endnote"},
		{"endnote bare root", "<xml><records></records></xml>", "endnote"},
	}

	for _, tc := range cases {
		f, err := format.DefaultRegistry.DetectFromContent([]byte(tc.input))
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if f.Name() != tc.want {
			t.Errorf("%s: detected %q, want %q", tc.name, f.Name(), tc.want)
		}
	}
}

func TestDetectFromContentUnknown(t *testing.T) {
	_, err := format.DefaultRegistry.DetectFromContent([]byte("nothing recognizable here"))
	if !errors.Is(err, format.ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}

	// CSV never wins content detection even when the text is valid CSV.
	_, err = format.DefaultRegistry.DetectFromContent([]byte("Title,Author\nTest,Smith\n"))
	if !errors.Is(err, format.ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat for CSV text", err)
	}
}

func TestDetectFormatByExtension(t *testing.T) {
	cases := map[string]string{
		"refs.ris":    "ris",
		"export.nbib": "pubmed",
		"library.xml": "endnote",
		"table.csv":   "csv",
	}

	for filename, want := range cases {
		f, err := format.DetectFormat(filename, nil)
		if err != nil {
			t.Errorf("DetectFormat(%q) failed: %v", filename, err)
			continue
		}
		if f.Name() != want {
			t.Errorf("DetectFormat(%q) = %q, want %q", filename, f.Name(), want)
		}
	}
}

func TestDetectAndParse(t *testing.T) {
	input := []byte("TY  - JOUR\nTI  - Detected Title\nER  -\n")

	citations, sourceFormat, err := format.DetectAndParse(input, nil)
	if err != nil {
		t.Fatalf("DetectAndParse failed: %v", err)
	}
	if sourceFormat != citation.FormatRIS {
		t.Errorf("format = %v, want RIS", sourceFormat)
	}
	if len(citations) != 1 || citations[0].Title != "Detected Title" {
		t.Errorf("citations = %+v", citations)
	}
}

func TestDetectAndParseEmptyInput(t *testing.T) {
	citations, sourceFormat, err := format.DetectAndParse([]byte("  \n\t "), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if citations != nil {
		t.Errorf("citations = %v, want nil", citations)
	}
	if sourceFormat != citation.FormatUnknown {
		t.Errorf("format = %v, want unknown", sourceFormat)
	}
}

func TestDetectAndParseUnknownFormat(t *testing.T) {
	_, _, err := format.DetectAndParse([]byte("plain prose, not a citation file"), nil)
	if !errors.Is(err, format.ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestSourceFormatFor(t *testing.T) {
	cases := map[string]citation.SourceFormat{
		"ris":     citation.FormatRIS,
		"pubmed":  citation.FormatPubMed,
		"endnote": citation.FormatEndNoteXML,
		"csv":     citation.FormatCSV,
		"marc":    citation.FormatUnknown,
	}

	for name, want := range cases {
		if got := format.SourceFormatFor(name); got != want {
			t.Errorf("SourceFormatFor(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestList(t *testing.T) {
	names := format.DefaultRegistry.List()
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	for _, want := range []string{"ris", "pubmed", "endnote", "csv"} {
		if !seen[want] {
			t.Errorf("List() missing %q", want)
		}
	}
}
