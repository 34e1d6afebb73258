// Package pubmed provides a format plugin for PubMed/MEDLINE .nbib
// citation exports.
package pubmed

import (
	"bytes"

	"github.com/lehigh-university-libraries/bibparse/format"
)

// Format implements the PubMed citation format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format = (*Format)(nil)
	_ format.Parser = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "pubmed"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "PubMed/MEDLINE (.nbib) citations"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"nbib"}
}

// CanParse returns true if the input looks like a PubMed export. Every
// record opens with its PMID line.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 {
		return false
	}

	return bytes.HasPrefix(peek, []byte("PMID-")) ||
		bytes.Contains(peek, []byte("\nPMID-"))
}

func init() {
	format.Register(&Format{})
}
