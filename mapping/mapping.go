// Package mapping provides YAML header-alias profiles for the CSV parser.
package mapping

import (
	"fmt"
	"strings"
)

// Profile maps citation fields to the CSV header aliases that populate
// them, plus general CSV parsing options.
type Profile struct {
	// Name is the profile identifier
	Name string `yaml:"name" json:"name"`

	// Description provides human-readable documentation
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Fields maps citation field names (e.g., "title", "authors") to the
	// header aliases recognized for them. Alias matching is
	// case-insensitive.
	Fields map[string][]string `yaml:"fields" json:"fields"`

	// Options contains CSV parsing options
	Options ProfileOptions `yaml:"options,omitempty" json:"options,omitempty"`
}

// ProfileOptions contains CSV parsing options carried by a profile.
type ProfileOptions struct {
	// Delimiter is the field delimiter, a single character (default ",")
	Delimiter string `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`

	// HasHeader reports whether the CSV starts with a header row.
	// Unset means true.
	HasHeader *bool `yaml:"has_header,omitempty" json:"has_header,omitempty"`

	// Trim strips surrounding whitespace from field values. Unset means
	// true.
	Trim *bool `yaml:"trim,omitempty" json:"trim,omitempty"`

	// Flexible tolerates rows with more columns than headers
	Flexible bool `yaml:"flexible,omitempty" json:"flexible,omitempty"`
}

// Validate checks the profile for the same defects the CSV parser rejects:
// an empty mapping, empty field names or aliases, one alias mapped to two
// fields, and newline delimiters.
func (p *Profile) Validate() error {
	if len(p.Fields) == 0 {
		return fmt.Errorf("profile %s: no header mappings defined", p.Name)
	}

	seen := make(map[string]string)
	for field, aliases := range p.Fields {
		if field == "" {
			return fmt.Errorf("profile %s: empty field name found in mappings", p.Name)
		}
		if len(aliases) == 0 {
			return fmt.Errorf("profile %s: field %q has no aliases defined", p.Name, field)
		}
		for _, alias := range aliases {
			if alias == "" {
				return fmt.Errorf("profile %s: empty alias found for field %q", p.Name, field)
			}
			lower := strings.ToLower(alias)
			if other, ok := seen[lower]; ok && other != field {
				return fmt.Errorf("profile %s: alias %q is mapped to both %q and %q", p.Name, alias, other, field)
			}
			seen[lower] = field
		}
	}

	if p.Options.Delimiter == "\n" || p.Options.Delimiter == "\r" {
		return fmt.Errorf("profile %s: delimiter cannot be a newline character", p.Name)
	}
	if len(p.Options.Delimiter) > 1 {
		return fmt.Errorf("profile %s: delimiter must be a single character", p.Name)
	}

	return nil
}
