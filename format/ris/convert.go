package ris

import (
	"strings"

	"github.com/lehigh-university-libraries/bibparse/citation"
	"github.com/lehigh-university-libraries/bibparse/helpers"
)

// citation converts a raw record into the canonical model. Conversion
// consumes the tag data; whatever remains at the end lands in ExtraFields.
func (r *rawRecord) citation() (*citation.Citation, error) {
	c := citation.New()
	c.Types = r.take(TagType)
	c.Authors = r.authors

	title, err := r.extractTitle()
	if err != nil {
		return nil, err
	}
	c.Title = title

	c.Journal, c.JournalAbbr = r.extractJournal()
	c.Date = r.extractDate()
	c.Volume = firstOf(r.take(TagVolume))
	c.Issue = firstOf(r.take(TagIssue))
	c.Pages = r.extractPages()
	c.DOI, c.URLs = r.extractDOIAndURLs()
	c.PMID = firstOf(r.take(TagReferenceID))
	c.PMCID = r.extractPMCID()
	c.Abstract = r.extractAbstract()
	c.Keywords = r.take(TagKeywords)
	c.ISSN = r.take(TagSerialNumber)
	c.Language = firstOf(r.take(TagLanguage))
	c.Publisher = firstOf(r.take(TagPublisher))

	r.take(TagEndOfReference)
	for tag, values := range r.data {
		c.ExtraFields[string(tag)] = values
	}

	return c, nil
}

// extractTitle tries the primary title tag, then the alternative. A record
// with neither cannot be represented and fails the parse with the
// record's starting line and byte span.
func (r *rawRecord) extractTitle() (string, error) {
	title, ok := r.first(TagTitle)
	if !ok || strings.TrimSpace(title) == "" {
		title, ok = r.first(TagTitleAlt)
	}

	r.take(TagTitle)
	r.take(TagTitleAlt)

	if !ok || strings.TrimSpace(title) == "" {
		return "", citation.ErrAtLine(r.startLine, citation.FormatRIS,
			&citation.MissingValueError{Field: citation.FieldTitle, Key: "TI"}).
			WithSpan(r.span)
	}

	return title, nil
}

func (r *rawRecord) extractJournal() (string, string) {
	journal := r.bestByPriority(journalPriority)
	abbr := r.bestByPriority(journalAbbrPriority)

	r.take(TagJournalFull)
	r.take(TagJournalAlt)
	r.take(TagJournalAbbr)
	r.take(TagJournalAbbrAlt)
	r.take(TagSecondaryTitle)

	return journal, abbr
}

// extractDate parses PY, falling back to Y1. Unparseable dates are dropped
// rather than failing the record.
func (r *rawRecord) extractDate() *citation.Date {
	value, ok := r.first(TagPubYear)
	if !ok {
		value, _ = r.first(TagDatePrimary)
	}

	date := helpers.ParseRISDate(value)

	r.take(TagPubYear)
	r.take(TagDatePrimary)
	r.take(TagDateAccess)

	return date
}

func (r *rawRecord) extractPages() string {
	start := firstOf(r.take(TagStartPage))
	end := firstOf(r.take(TagEndPage))

	switch {
	case start != "" && end != "":
		return helpers.FormatPageNumbers(start + "-" + end)
	case start != "":
		return helpers.FormatPageNumbers(start)
	default:
		return end
	}
}

// extractDOIAndURLs resolves the DOI from the dedicated tag first, then
// scans link fields for a doi.org URL. All link values are kept as URLs
// either way.
func (r *rawRecord) extractDOIAndURLs() (string, []string) {
	doi := helpers.FormatDOI(firstOf(r.take(TagDOI)))

	var urls []string
	for _, tag := range linkTags {
		tagURLs := r.take(tag)
		if doi == "" {
			for _, url := range tagURLs {
				if strings.Contains(url, "doi.org") {
					if extracted := helpers.FormatDOI(url); extracted != "" {
						doi = extracted
						break
					}
				}
			}
		}
		urls = append(urls, tagURLs...)
	}

	return doi, urls
}

func (r *rawRecord) extractPMCID() string {
	id := firstOf(r.take(TagPMCID))
	if !strings.Contains(id, "PMC") {
		return ""
	}
	return id
}

func (r *rawRecord) extractAbstract() string {
	text, ok := r.first(TagAbstract)
	if !ok {
		text, _ = r.first(TagAbstractAlt)
	}

	r.take(TagAbstract)
	r.take(TagAbstractAlt)

	return text
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
