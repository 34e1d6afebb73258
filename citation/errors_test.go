package citation

import (
	"errors"
	"testing"
)

func TestParseErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"line and column",
			ErrAtPosition(5, 12, FormatRIS, Syntaxf("unexpected token")),
			"Error in RIS format at line 5 column 12: Bad syntax: unexpected token",
		},
		{
			"line only",
			ErrAtLine(3, FormatPubMed, &MissingValueError{Field: FieldTitle, Key: "TI"}),
			"Error in PubMed format at line 3: Missing value for TI",
		},
		{
			"no position",
			ErrWithoutPosition(FormatEndNoteXML, Syntaxf("truncated document")),
			"Error in EndNote XML format: Bad syntax: truncated document",
		},
		{
			"column only",
			&ParseError{Column: 7, Format: FormatCSV, Reason: Syntaxf("stray quote")},
			"Error in CSV format at column 7: Bad syntax: stray quote",
		},
	}

	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("%s:\n got  %q\n want %q", tc.name, got, tc.want)
		}
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	reason := &MissingValueError{Field: FieldTitle, Key: "title"}
	err := ErrAtLine(2, FormatCSV, reason)

	var missing *MissingValueError
	if !errors.As(err, &missing) {
		t.Fatal("errors.As failed to reach the reason")
	}
	if missing.Field != FieldTitle {
		t.Errorf("Field = %q", missing.Field)
	}
}

func TestWithSpan(t *testing.T) {
	err := ErrAtLine(1, FormatRIS, Syntaxf("x")).WithSpan(NewSpan(10, 20))
	if err.Span == nil || err.Span.Start != 10 || err.Span.End != 20 {
		t.Errorf("Span = %+v", err.Span)
	}
}

func TestValueErrorMessages(t *testing.T) {
	bad := &BadValueError{Field: FieldDate, Key: "DP", Value: "not a date", Reason: "not a valid date in YYYY MMM D format"}
	want := `Bad value for DP: "not a date" (not a valid date in YYYY MMM D format)`
	if got := bad.Error(); got != want {
		t.Errorf("BadValueError = %q, want %q", got, want)
	}

	multi := &MultipleValuesError{Field: FieldTitle, Key: "TI"}
	if got := multi.Error(); got != "Second value found for TI but only one value is allowed" {
		t.Errorf("MultipleValuesError = %q", got)
	}
}

func TestSourceFormatString(t *testing.T) {
	if FormatRIS.String() != "RIS" {
		t.Errorf("RIS String() = %q", FormatRIS.String())
	}
	var zero SourceFormat
	if zero.String() != "Unknown" {
		t.Errorf("zero String() = %q", zero.String())
	}
}
