package csv

import (
	"fmt"
	"strings"

	"github.com/lehigh-university-libraries/bibparse/mapping"
)

// defaultHeaders maps citation fields to the column aliases recognized
// out of the box. The embedded default mapping profile mirrors this
// table.
var defaultHeaders = map[string][]string{
	"title":        {"title", "article title", "publication title"},
	"authors":      {"author", "authors", "creator", "creators"},
	"journal":      {"journal", "journal title", "source title", "publication"},
	"year":         {"year", "publication year", "pub year"},
	"volume":       {"volume", "vol"},
	"issue":        {"issue", "number", "no"},
	"pages":        {"pages", "page numbers", "page range"},
	"doi":          {"doi", "digital object identifier"},
	"abstract":     {"abstract", "summary"},
	"keywords":     {"keywords", "tags"},
	"issn":         {"issn"},
	"language":     {"language", "lang"},
	"publisher":    {"publisher"},
	"url":          {"url", "link", "web link"},
	"label":        {"label"},
	"duplicate_id": {"duplicateid", "duplicate_id"},
}

// Config controls CSV parsing: how columns map to citation fields plus
// the usual CSV dialect knobs.
type Config struct {
	headerMap  map[string][]string
	reverseMap map[string]string

	// Delimiter separates fields
	Delimiter byte

	// HasHeader indicates the first row holds column names
	HasHeader bool

	// Quote is the quote character. Only the double quote is supported.
	Quote byte

	// Trim strips surrounding whitespace from headers and values
	Trim bool

	// Flexible tolerates rows with extra columns and rows that map to
	// nothing
	Flexible bool

	// StoreOriginalRows retains each raw row for debug logging
	StoreOriginalRows bool
}

// NewConfig creates a configuration with the default header mappings.
func NewConfig() *Config {
	c := &Config{
		headerMap: make(map[string][]string, len(defaultHeaders)),
		Delimiter: ',',
		HasHeader: true,
		Quote:     '"',
		Trim:      true,
	}
	for field, aliases := range defaultHeaders {
		c.headerMap[field] = append([]string(nil), aliases...)
	}
	c.rebuildReverseMap()
	return c
}

// FromProfile creates a configuration from a mapping profile. Profile
// fields replace the defaults entirely.
func FromProfile(p *mapping.Profile) (*Config, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	c := NewConfig()
	c.headerMap = make(map[string][]string, len(p.Fields))
	for field, aliases := range p.Fields {
		c.headerMap[field] = append([]string(nil), aliases...)
	}
	c.rebuildReverseMap()

	if p.Options.Delimiter != "" {
		c.Delimiter = p.Options.Delimiter[0]
	}
	if p.Options.HasHeader != nil {
		c.HasHeader = *p.Options.HasHeader
	}
	if p.Options.Trim != nil {
		c.Trim = *p.Options.Trim
	}
	c.Flexible = p.Options.Flexible

	return c, nil
}

func (c *Config) rebuildReverseMap() {
	c.reverseMap = make(map[string]string)
	for field, aliases := range c.headerMap {
		for _, alias := range aliases {
			c.reverseMap[strings.ToLower(alias)] = field
		}
	}
}

// SetHeaderMapping replaces the aliases for a field.
func (c *Config) SetHeaderMapping(field string, aliases []string) *Config {
	c.headerMap[field] = aliases
	c.rebuildReverseMap()
	return c
}

// AddHeaderAliases appends aliases to an existing field mapping.
func (c *Config) AddHeaderAliases(field string, aliases []string) *Config {
	c.headerMap[field] = append(c.headerMap[field], aliases...)
	c.rebuildReverseMap()
	return c
}

// FieldForHeader resolves a column header to its citation field.
// Matching is case-insensitive.
func (c *Config) FieldForHeader(header string) (string, bool) {
	field, ok := c.reverseMap[strings.ToLower(header)]
	return field, ok
}

// Validate checks the configuration for defects that would make parsing
// ambiguous or impossible.
func (c *Config) Validate() error {
	if len(c.headerMap) == 0 {
		return fmt.Errorf("no header mappings defined")
	}

	for field, aliases := range c.headerMap {
		if field == "" {
			return fmt.Errorf("empty field name found in mappings")
		}
		if len(aliases) == 0 {
			return fmt.Errorf("field %q has no aliases defined", field)
		}
		for _, alias := range aliases {
			if alias == "" {
				return fmt.Errorf("empty alias found for field %q", field)
			}
		}
	}

	if c.Delimiter == '\n' || c.Delimiter == '\r' {
		return fmt.Errorf("delimiter cannot be a newline character")
	}

	// encoding/csv hard-codes the quote character
	if c.Quote != '"' {
		return fmt.Errorf("quote character must be a double quote")
	}

	seen := make(map[string]string)
	for field, aliases := range c.headerMap {
		for _, alias := range aliases {
			lower := strings.ToLower(alias)
			if other, ok := seen[lower]; ok && other != field {
				return fmt.Errorf("alias %q is mapped to both %q and %q", alias, other, field)
			}
			seen[lower] = field
		}
	}

	return nil
}
