// Package citation defines the canonical record model that every format
// parser converges on, along with the positional error model parsers emit.
package citation

// Citation is the canonical normalized record for one bibliographic entry.
type Citation struct {
	// Types holds the citation type tags (e.g., "JOUR", "Journal Article").
	Types []string `json:"citation_type"`

	// Title of the cited work. Parsers that require a title never emit a
	// citation with an empty one.
	Title string `json:"title"`

	// Authors in source order.
	Authors []Author `json:"authors"`

	// Journal name, empty if unknown.
	Journal string `json:"journal,omitempty"`

	// JournalAbbr is the abbreviated journal name.
	JournalAbbr string `json:"journal_abbr,omitempty"`

	// Date of publication, nil if unknown.
	Date *Date `json:"date,omitempty"`

	Volume string `json:"volume,omitempty"`
	Issue  string `json:"issue,omitempty"`

	// Pages is the page range, pre-normalized (abbreviated end pages
	// completed, equal endpoints collapsed).
	Pages string `json:"pages,omitempty"`

	// ISSN values, qualifiers like "(Print)" preserved.
	ISSN []string `json:"issn,omitempty"`

	// DOI in normalized form (lowercased, URL and "[doi]" decoration
	// stripped), empty if none found.
	DOI string `json:"doi,omitempty"`

	PMID  string `json:"pmid,omitempty"`
	PMCID string `json:"pmc_id,omitempty"`

	Abstract string   `json:"abstract,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	URLs     []string `json:"urls,omitempty"`
	Language string   `json:"language,omitempty"`

	// MeshTerms holds MEDLINE MeSH headings.
	MeshTerms []string `json:"mesh_terms,omitempty"`

	Publisher string `json:"publisher,omitempty"`

	// ExtraFields holds values for source tags that map to no standard
	// field, keyed by the literal tag or header text, duplicates preserved
	// in arrival order.
	ExtraFields map[string][]string `json:"extra_fields,omitempty"`
}

// New creates a new empty Citation.
func New() *Citation {
	return &Citation{
		Types:       make([]string, 0),
		Authors:     make([]Author, 0),
		ISSN:        make([]string, 0),
		Keywords:    make([]string, 0),
		URLs:        make([]string, 0),
		MeshTerms:   make([]string, 0),
		ExtraFields: make(map[string][]string),
	}
}

// Author is one contributor to a cited work.
type Author struct {
	// Name is the primary name: the family name, or the full name for
	// mononyms.
	Name string `json:"name"`

	// GivenName is the first given name, empty if unknown.
	GivenName string `json:"given_name,omitempty"`

	// MiddleName holds any remaining given names, space-joined.
	MiddleName string `json:"middle_name,omitempty"`

	// Affiliations in source order.
	Affiliations []string `json:"affiliations,omitempty"`
}

// DisplayName returns the author in "Family, Given Middle" form.
func (a Author) DisplayName() string {
	result := a.Name
	if a.GivenName != "" {
		result += ", " + a.GivenName
	}
	if a.MiddleName != "" {
		result += " " + a.MiddleName
	}
	return result
}

// Date is a publication date. Year is required; Month and Day are 0 when
// absent. No calendar cross-validation is performed (Feb 30 is accepted).
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"`
	Day   int `json:"day,omitempty"`
}
