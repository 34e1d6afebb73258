// Package format defines the interface for citation format plugins.
package format

import (
	"io"

	"github.com/lehigh-university-libraries/bibparse/citation"
	"github.com/lehigh-university-libraries/bibparse/mapping"
)

// Format defines the interface that all format plugins must implement.
type Format interface {
	// Name returns the format identifier (e.g., "ris", "pubmed", "csv")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string

	// CanParse returns true if this format can parse the given input
	CanParse(peek []byte) bool
}

// Parser is a format that can parse input into citation records.
type Parser interface {
	Format

	// Parse reads input and returns citation records.
	// Options is format-specific configuration.
	Parse(r io.Reader, opts *ParseOptions) ([]*citation.Citation, error)
}

// ParseOptions contains options for parsing.
type ParseOptions struct {
	// Profile is the CSV header mapping profile to use
	Profile *mapping.Profile

	// SourceName is an identifier for the source (for error messages)
	SourceName string

	// Delimiter is the CSV field delimiter
	Delimiter byte

	// Quote is the CSV quote character
	Quote byte

	// HasHeader indicates the first CSV row holds column names
	HasHeader bool

	// Trim strips surrounding whitespace from CSV field values
	Trim bool

	// Flexible tolerates CSV rows with extra columns and rows that map
	// to nothing
	Flexible bool

	// StoreOriginalRows retains each raw CSV row in the citation's extra
	// fields
	StoreOriginalRows bool

	// AutoDetect sniffs the CSV delimiter and header row from content
	AutoDetect bool
}

// NewParseOptions creates ParseOptions with defaults.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{
		Delimiter: ',',
		Quote:     '"',
		HasHeader: true,
		Trim:      true,
	}
}
