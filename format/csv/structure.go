package csv

import (
	"strings"

	"github.com/lehigh-university-libraries/bibparse/citation"
	"github.com/lehigh-university-libraries/bibparse/helpers"
)

// standardFields lists the citation fields the converter consumes. A
// mapped field outside this list, such as a label column, stays in the
// citation's extra fields.
var standardFields = []string{
	"title", "authors", "journal", "journal_abbr", "year", "volume",
	"issue", "pages", "doi", "pmid", "pmc_id", "abstract", "keywords",
	"issn", "language", "publisher", "type", "url",
}

// rawRow holds one parsed CSV row before conversion.
type rawRow struct {
	fields     map[string]string
	authors    []citation.Author
	keywords   []string
	urls       []string
	issn       []string
	lineNumber int
	byteOffset int
	original   []string
}

// fromRecord maps a CSV record onto citation fields using the headers.
// Multi-value cells (authors, keywords) are split on semicolons here so
// conversion stays a plain field shuffle.
func fromRecord(headers, record []string, cfg *Config, lineNumber, byteOffset int) (*rawRow, error) {
	row := &rawRow{
		fields:     make(map[string]string),
		lineNumber: lineNumber,
		byteOffset: byteOffset,
	}

	if cfg.StoreOriginalRows {
		row.original = append([]string(nil), record...)
	}

	for i, value := range record {
		if i >= len(headers) {
			if !cfg.Flexible {
				return nil, citation.ErrAtLine(lineNumber, citation.FormatCSV,
					citation.Syntaxf("Record has more fields (%d) than headers (%d)",
						len(record), len(headers)))
			}
			break
		}

		header := headers[i]
		if cfg.Trim {
			value = strings.TrimSpace(value)
		}
		if value == "" {
			continue
		}

		field, ok := cfg.FieldForHeader(header)
		if !ok {
			// Keep unknown columns as-is
			row.fields[header] = value
			continue
		}

		switch field {
		case "authors":
			for _, name := range strings.Split(value, ";") {
				name = strings.TrimSpace(name)
				if name != "" {
					row.authors = append(row.authors, helpers.AuthorFromName(name))
				}
			}
		case "keywords":
			for _, kw := range strings.Split(value, ";") {
				kw = strings.TrimSpace(kw)
				if kw != "" {
					row.keywords = append(row.keywords, kw)
				}
			}
		case "url":
			row.urls = append(row.urls, value)
		case "issn":
			row.issn = append(row.issn, helpers.SplitISSNs(value)...)
		default:
			row.fields[field] = value
		}
	}

	return row, nil
}

// hasContent reports whether the row carries any usable data.
func (r *rawRow) hasContent() bool {
	return len(r.fields) > 0 || len(r.authors) > 0
}

// citation converts the row into the canonical model.
func (r *rawRow) citation(cfg *Config) (*citation.Citation, error) {
	title, ok := r.fields["title"]
	if !ok {
		return nil, citation.ErrAtLine(r.lineNumber, citation.FormatCSV,
			&citation.MissingValueError{Field: citation.FieldTitle, Key: "title"}).
			WithSpan(citation.NewSpan(r.byteOffset, r.byteOffset))
	}

	c := citation.New()
	c.Title = title
	c.Authors = r.authors
	c.Journal = r.fields["journal"]
	c.JournalAbbr = r.fields["journal_abbr"]
	c.Date = helpers.ParseYearOnly(r.fields["year"])
	c.Volume = r.fields["volume"]
	c.Issue = r.fields["issue"]
	if pages, ok := r.fields["pages"]; ok {
		c.Pages = helpers.FormatPageNumbers(pages)
	}
	c.DOI = helpers.FormatDOI(r.fields["doi"])
	c.PMID = r.fields["pmid"]
	c.PMCID = r.fields["pmc_id"]
	c.Abstract = r.fields["abstract"]
	c.Keywords = r.keywords
	c.URLs = r.urls
	c.ISSN = r.issn
	c.Language = r.fields["language"]
	c.Publisher = r.fields["publisher"]

	if t, ok := r.fields["type"]; ok {
		c.Types = []string{t}
	} else {
		c.Types = []string{"Journal Article"}
	}

	for name, value := range r.fields {
		if !isStandardField(name, cfg) {
			c.ExtraFields[name] = []string{value}
		}
	}

	return c, nil
}

// isStandardField reports whether the field name resolves to a field the
// converter already consumed.
func isStandardField(name string, cfg *Config) bool {
	field, ok := cfg.FieldForHeader(name)
	if !ok {
		return false
	}
	for _, standard := range standardFields {
		if field == standard {
			return true
		}
	}
	return false
}
