package citation

import "fmt"

// Field name constants for consistent error reporting.
const (
	FieldTitle       = "title"
	FieldAuthor      = "author"
	FieldDate        = "date"
	FieldJournal     = "journal"
	FieldJournalAbbr = "journal_abbr"
	FieldDOI         = "doi"
	FieldVolume      = "volume"
	FieldIssue       = "issue"
	FieldPages       = "pages"
	FieldAbstract    = "abstract"
	FieldKeywords    = "keywords"
	FieldYear        = "year"
	FieldPMID        = "pmid"
	FieldPMCID       = "pmc_id"
	FieldISSN        = "issn"
	FieldLanguage    = "language"
	FieldPublisher   = "publisher"
	FieldURLs        = "urls"
	FieldMeshTerms   = "mesh_terms"
	FieldTypes       = "citation_type"
)

// SourceSpan is a byte-offset range into the original source text. Start is
// inclusive, End is exclusive. Offsets are bytes, not runes.
type SourceSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewSpan creates a SourceSpan.
func NewSpan(start, end int) SourceSpan {
	return SourceSpan{Start: start, End: end}
}

// ParseError is a parse failure with location and format context. Line and
// Column are 1-based; zero means unavailable. Reason is one of the value
// error types below and is reachable through errors.As.
type ParseError struct {
	Line   int
	Column int
	Span   *SourceSpan
	Format SourceFormat
	Reason error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("Error in %s format at line %d column %d: %v", e.Format, e.Line, e.Column, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("Error in %s format at line %d: %v", e.Format, e.Line, e.Reason)
	case e.Column > 0:
		return fmt.Sprintf("Error in %s format at column %d: %v", e.Format, e.Column, e.Reason)
	default:
		return fmt.Sprintf("Error in %s format: %v", e.Format, e.Reason)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}

// WithSpan attaches a byte-offset span, returning e for chaining.
func (e *ParseError) WithSpan(span SourceSpan) *ParseError {
	e.Span = &span
	return e
}

// ErrAtLine creates a ParseError with line information only.
func ErrAtLine(line int, format SourceFormat, reason error) *ParseError {
	return &ParseError{Line: line, Format: format, Reason: reason}
}

// ErrAtPosition creates a ParseError with line and column information.
func ErrAtPosition(line, column int, format SourceFormat, reason error) *ParseError {
	return &ParseError{Line: line, Column: column, Format: format, Reason: reason}
}

// ErrWithoutPosition creates a ParseError carrying no position.
func ErrWithoutPosition(format SourceFormat, reason error) *ParseError {
	return &ParseError{Format: format, Reason: reason}
}

// SyntaxError is a malformed low-level token: bad tag shape, missing
// separator, unparsable grammar, or a translated tokenizer failure.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "Bad syntax: " + e.Msg
}

// Syntaxf creates a SyntaxError from a format string.
func Syntaxf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// MissingValueError reports a format-mandatory field that was absent. Field
// is the canonical field name; Key is the format-specific tag or header.
type MissingValueError struct {
	Field string
	Key   string
}

func (e *MissingValueError) Error() string {
	return "Missing value for " + e.Key
}

// BadValueError reports a present field that failed semantic validation.
type BadValueError struct {
	Field  string
	Key    string
	Value  string
	Reason string
}

func (e *BadValueError) Error() string {
	return fmt.Sprintf("Bad value for %s: %q (%s)", e.Key, e.Value, e.Reason)
}

// MultipleValuesError is reserved for a future "exactly one value expected,
// several found" condition. Defined for forward compatibility; no parser
// currently raises it.
type MultipleValuesError struct {
	Field     string
	Key       string
	SecondRow int
	SecondCol int
}

func (e *MultipleValuesError) Error() string {
	return fmt.Sprintf("Second value found for %s but only one value is allowed", e.Key)
}
