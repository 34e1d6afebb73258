// Package ris provides a format plugin for RIS (Research Information
// Systems) tagged citation files.
package ris

import (
	"bytes"

	"github.com/lehigh-university-libraries/bibparse/format"
)

// Format implements the RIS citation format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format = (*Format)(nil)
	_ format.Parser = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "ris"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "RIS (Research Information Systems) tagged citations"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"ris"}
}

// CanParse returns true if the input looks like RIS. A record starts with
// a TY tag, though exporters sometimes prepend metadata lines before it.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 {
		return false
	}

	return bytes.HasPrefix(peek, []byte("TY  -")) ||
		bytes.Contains(peek, []byte("\nTY  -"))
}

func init() {
	format.Register(&Format{})
}
