// Package csv provides a format plugin for tabular citation exports.
//
// Unlike the other formats, CSV is never auto-detected from content: its
// shape is too generic to sniff safely, so it must be selected
// explicitly. Delimiter and header detection helpers are available for
// callers that opt in.
package csv

import (
	"io"
	"log/slog"

	"github.com/lehigh-university-libraries/bibparse/citation"
	"github.com/lehigh-university-libraries/bibparse/format"
)

// Format implements the CSV citation format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format = (*Format)(nil)
	_ format.Parser = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "csv"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "CSV/TSV tabular citations"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"csv", "tsv"}
}

// CanParse always returns false. CSV input must be selected explicitly.
func (f *Format) CanParse(peek []byte) bool {
	return false
}

// Parse reads CSV text and returns citation records.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]*citation.Citation, error) {
	data, err := format.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(data)

	cfg, err := configFromOptions(opts)
	if err != nil {
		return nil, err
	}

	if opts != nil && opts.AutoDetect {
		cfg.Delimiter = DetectDelimiter(text)
		cfg.HasHeader = DetectHeaders(text, cfg.Delimiter)
	}

	rows, err := csvParse(text, cfg)
	if err != nil {
		return nil, err
	}

	citations := make([]*citation.Citation, 0, len(rows))
	for _, row := range rows {
		if row.original != nil {
			slog.Debug("parsed row", "format", "csv", "line", row.lineNumber, "record", row.original)
		}
		c, err := row.citation(cfg)
		if err != nil {
			return nil, err
		}
		citations = append(citations, c)
	}

	return citations, nil
}

// configFromOptions builds a parser configuration from the caller's
// options. General flags apply first, then the mapping profile's own
// options override them where the profile sets any.
func configFromOptions(opts *format.ParseOptions) (*Config, error) {
	cfg := NewConfig()
	if opts == nil {
		return cfg, nil
	}

	if opts.Delimiter != 0 {
		cfg.Delimiter = opts.Delimiter
	}
	if opts.Quote != 0 {
		cfg.Quote = opts.Quote
	}
	cfg.HasHeader = opts.HasHeader
	cfg.Trim = opts.Trim
	cfg.Flexible = opts.Flexible
	cfg.StoreOriginalRows = opts.StoreOriginalRows

	if opts.Profile != nil {
		profiled, err := FromProfile(opts.Profile)
		if err != nil {
			return nil, citation.ErrWithoutPosition(citation.FormatCSV,
				citation.Syntaxf("Invalid CSV configuration: %v", err))
		}
		profiled.Quote = cfg.Quote
		profiled.StoreOriginalRows = cfg.StoreOriginalRows
		if opts.Profile.Options.Delimiter == "" {
			profiled.Delimiter = cfg.Delimiter
		}
		if opts.Profile.Options.HasHeader == nil {
			profiled.HasHeader = cfg.HasHeader
		}
		if opts.Profile.Options.Trim == nil {
			profiled.Trim = cfg.Trim
		}
		if !profiled.Flexible {
			profiled.Flexible = cfg.Flexible
		}
		cfg = profiled
	}

	return cfg, nil
}

func init() {
	format.Register(&Format{})
}
