// Package endnote provides a format plugin for EndNote XML citation
// exports.
package endnote

import (
	"bytes"

	"github.com/lehigh-university-libraries/bibparse/format"
)

// Format implements the EndNote XML citation format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format = (*Format)(nil)
	_ format.Parser = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "endnote"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "EndNote XML citations"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"xml"}
}

// CanParse returns true if the input looks like an XML document. EndNote
// exports open with an XML declaration or a bare <xml> root.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 {
		return false
	}

	return bytes.HasPrefix(peek, []byte("<?xml")) ||
		bytes.HasPrefix(peek, []byte("<xml>"))
}

func init() {
	format.Register(&Format{})
}
