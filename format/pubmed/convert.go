package pubmed

import (
	"strings"

	"github.com/lehigh-university-libraries/bibparse/citation"
	"github.com/lehigh-university-libraries/bibparse/helpers"
)

// citation converts a raw record into the canonical model. Fields that
// hold one value but appear more than once are joined with " AND " so no
// data is silently dropped.
func (r *rawRecord) citation() (*citation.Citation, error) {
	c := citation.New()

	date, err := r.extractDate()
	if err != nil {
		return nil, err
	}
	c.Date = date

	c.Types = r.take(TagPubType)

	title := joinValues(r.take(TagTitle))
	if title == "" {
		return nil, citation.ErrAtLine(r.startLine, citation.FormatPubMed,
			&citation.MissingValueError{Field: citation.FieldTitle, Key: "TI"}).
			WithSpan(r.span)
	}
	c.Title = title

	for _, author := range r.authors {
		c.Authors = append(c.Authors, author.citationAuthor())
	}

	c.Journal = joinValues(r.take(TagJournal))
	c.JournalAbbr = joinValues(r.take(TagJournalAbbr))
	c.Volume = joinValues(r.take(TagVolume))
	c.Issue = joinValues(r.take(TagIssue))
	c.Pages = joinValues(r.take(TagPagination))
	c.ISSN = r.take(TagISSN)
	c.DOI = r.extractDOI()
	c.PMID = joinValues(r.take(TagPMID))
	c.PMCID = joinValues(r.take(TagPMC))
	c.Abstract = joinValues(r.take(TagAbstract))
	c.Language = joinValues(r.take(TagLanguage))
	c.MeshTerms = r.take(TagMeshTerm)
	c.Publisher = joinValues(r.take(TagPublisher))

	for tag, values := range r.data {
		c.ExtraFields[string(tag)] = values
	}

	return c, nil
}

// extractDate parses the DP field. Unlike RIS, a DP value that fails to
// parse is a hard error carrying the record's position.
func (r *rawRecord) extractDate() (*citation.Date, error) {
	values := r.take(TagPubDate)
	if len(values) == 0 {
		return nil, nil
	}

	value := values[0]
	date := helpers.ParsePubMedDate(value)
	if date == nil {
		return nil, citation.ErrAtLine(r.startLine, citation.FormatPubMed,
			&citation.BadValueError{
				Field:  citation.FieldDate,
				Key:    "DP",
				Value:  value,
				Reason: "not a valid date in YYYY MMM D format",
			}).WithSpan(r.span)
	}

	return date, nil
}

// extractDOI takes the first LID value marked as a DOI, falling back to
// the AID field.
func (r *rawRecord) extractDOI() string {
	for _, tag := range []Tag{TagLocationID, TagArticleID} {
		for _, value := range r.take(tag) {
			if doi, ok := strings.CutSuffix(value, " [doi]"); ok {
				return doi
			}
		}
	}
	return ""
}

// take removes and returns all values for a tag.
func (r *rawRecord) take(tag Tag) []string {
	values := r.data[tag]
	delete(r.data, tag)
	return values
}

func joinValues(values []string) string {
	return strings.Join(values, " AND ")
}
