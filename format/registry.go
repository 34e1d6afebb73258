package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/lehigh-university-libraries/bibparse/citation"
)

// ErrUnknownFormat is returned when content matches no registered format.
var ErrUnknownFormat = errors.New("unable to detect citation format from input")

// detectionOrder fixes the order in which content sniffing consults
// formats. XML must come before RIS and PubMed since an XML export may
// embed tag-like text, and CSV is excluded entirely because its shape is
// too generic to sniff safely.
var detectionOrder = []string{"endnote", "ris", "pubmed"}

// Registry holds registered formats.
type Registry struct {
	formats map[string]Format
}

// DefaultRegistry is the global format registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new format registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Format),
	}
}

// Register adds a format to the registry.
func (r *Registry) Register(f Format) {
	r.formats[f.Name()] = f
}

// Get retrieves a format by name.
func (r *Registry) Get(name string) (Format, bool) {
	f, ok := r.formats[strings.ToLower(name)]
	return f, ok
}

// GetParser retrieves a parser by name.
func (r *Registry) GetParser(name string) (Parser, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	p, ok := f.(Parser)
	if !ok {
		return nil, fmt.Errorf("format %s does not support parsing", name)
	}
	return p, nil
}

// List returns all registered format names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	return names
}

// DetectFormat attempts to detect the format from file extension and/or content.
func (r *Registry) DetectFormat(filename string, peek []byte) (Format, error) {
	// An explicit file extension trumps content sniffing, and unlike
	// sniffing it may select CSV.
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext != "" {
		for _, f := range r.formats {
			for _, fext := range f.Extensions() {
				if ext == fext {
					return f, nil
				}
			}
		}
	}

	if f, err := r.DetectFromContent(peek); err == nil {
		return f, nil
	}

	return nil, fmt.Errorf("could not detect format for %s", filename)
}

// DetectFromContent attempts to detect format from content alone.
func (r *Registry) DetectFromContent(peek []byte) (Format, error) {
	peek = bytes.TrimSpace(peek)

	for _, name := range detectionOrder {
		f, ok := r.formats[name]
		if !ok {
			continue
		}
		if f.CanParse(peek) {
			return f, nil
		}
	}

	return nil, ErrUnknownFormat
}

// DetectAndParse sniffs the format of the input and parses it with that
// format's parser. Empty or whitespace-only input yields no citations and
// an Unknown format rather than an error.
func (r *Registry) DetectAndParse(input []byte, opts *ParseOptions) ([]*citation.Citation, citation.SourceFormat, error) {
	if len(bytes.TrimSpace(input)) == 0 {
		return nil, citation.FormatUnknown, nil
	}

	f, err := r.DetectFromContent(input)
	if err != nil {
		return nil, citation.FormatUnknown, err
	}

	p, ok := f.(Parser)
	if !ok {
		return nil, citation.FormatUnknown, fmt.Errorf("format %s does not support parsing", f.Name())
	}

	if opts == nil {
		opts = NewParseOptions()
	}
	citations, err := p.Parse(bytes.NewReader(input), opts)
	return citations, SourceFormatFor(f.Name()), err
}

// SourceFormatFor maps a registry name to its display format.
func SourceFormatFor(name string) citation.SourceFormat {
	switch name {
	case "ris":
		return citation.FormatRIS
	case "pubmed":
		return citation.FormatPubMed
	case "endnote":
		return citation.FormatEndNoteXML
	case "csv":
		return citation.FormatCSV
	}
	return citation.FormatUnknown
}

// Register adds a format to the default registry.
func Register(f Format) {
	DefaultRegistry.Register(f)
}

// Get retrieves a format from the default registry.
func Get(name string) (Format, bool) {
	return DefaultRegistry.Get(name)
}

// GetParser retrieves a parser from the default registry.
func GetParser(name string) (Parser, error) {
	return DefaultRegistry.GetParser(name)
}

// DetectFormat detects format using the default registry.
func DetectFormat(filename string, peek []byte) (Format, error) {
	return DefaultRegistry.DetectFormat(filename, peek)
}

// DetectAndParse detects and parses using the default registry.
func DetectAndParse(input []byte, opts *ParseOptions) ([]*citation.Citation, citation.SourceFormat, error) {
	return DefaultRegistry.DetectAndParse(input, opts)
}

// ReadAll drains a reader for parsers that need the full input up front.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}
