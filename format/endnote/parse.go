package endnote

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/bibparse/citation"
	"github.com/lehigh-university-libraries/bibparse/format"
	"github.com/lehigh-university-libraries/bibparse/helpers"
)

// Parse reads EndNote XML and returns citation records. Each <record>
// element in the input produces one citation.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]*citation.Citation, error) {
	data, err := format.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(string(data))
}

func parse(content string) ([]*citation.Citation, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	decoder := xml.NewDecoder(strings.NewReader(content))
	var citations []*citation.Citation

	for {
		pos := int(decoder.InputOffset())
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, xmlError(content, int(decoder.InputOffset()), err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "record" {
			continue
		}

		c, err := parseRecord(decoder, content, pos)
		if err != nil {
			return nil, err
		}
		citations = append(citations, c)
	}

	return citations, nil
}

// parseRecord walks one <record> element. startPos is the byte offset of
// the record's opening tag, kept for error spans.
func parseRecord(decoder *xml.Decoder, content string, startPos int) (*citation.Citation, error) {
	c := citation.New()

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, xmlError(content, int(decoder.InputOffset()), err)
		}

		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name.Local == "record" {
				return finishRecord(c, content, startPos, int(decoder.InputOffset()))
			}
		case xml.StartElement:
			if err := parseRecordElement(decoder, content, c, t); err != nil {
				return nil, err
			}
		}
	}

	return finishRecord(c, content, startPos, len(content))
}

func parseRecordElement(decoder *xml.Decoder, content string, c *citation.Citation, start xml.StartElement) error {
	switch start.Name.Local {
	case "ref-type":
		for _, attr := range start.Attr {
			if attr.Name.Local == "name" {
				c.Types = append(c.Types, attr.Value)
			}
		}
	case "title":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		c.Title = text
	case "author":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		c.Authors = append(c.Authors, helpers.AuthorFromName(text))
	case "secondary-title":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		// Secondary title is the journal, unless nothing claimed the
		// title slot yet.
		if c.Title == "" {
			c.Title = text
		} else {
			c.Journal = text
		}
	case "alt-title":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		switch {
		case c.Title == "" && c.Journal == "":
			c.Title = text
		case c.Journal == "":
			c.Journal = text
		default:
			c.JournalAbbr = text
		}
	case "custom2":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		if strings.Contains(strings.ToLower(text), "pmc") {
			c.PMCID = text
		}
	case "volume":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		c.Volume = text
	case "number":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		c.Issue = text
	case "pages":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		c.Pages = helpers.FormatPageNumbers(text)
	case "electronic-resource-num":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		c.DOI = helpers.FormatDOI(text)
	case "url":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		if c.DOI == "" && strings.Contains(text, "doi.org") {
			c.DOI = helpers.FormatDOI(text)
		}
		c.URLs = append(c.URLs, text)
	case "year":
		date, err := parseYearElement(decoder, content, start)
		if err != nil {
			return err
		}
		c.Date = date
	case "dates":
		if err := parseDatesElement(decoder, content, c); err != nil {
			return err
		}
	case "abstract":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		c.Abstract = text
	case "keyword":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		c.Keywords = append(c.Keywords, text)
	case "language":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		c.Language = text
	case "publisher":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		c.Publisher = text
	case "isbn":
		text, err := collectText(decoder, content, start)
		if err != nil {
			return err
		}
		c.ISSN = append(c.ISSN, helpers.SplitISSNs(text)...)
	}

	return nil
}

// finishRecord validates that the record identifies a work at all. A
// record with neither title nor authors is malformed.
func finishRecord(c *citation.Citation, content string, startPos, endPos int) (*citation.Citation, error) {
	if c.Title == "" && len(c.Authors) == 0 {
		return nil, citation.ErrAtLine(lineAt(content, startPos), citation.FormatEndNoteXML,
			&citation.MissingValueError{Field: "title or author", Key: "title/author"}).
			WithSpan(citation.NewSpan(startPos, endPos))
	}
	return c, nil
}

// parseYearElement reads a <year> element. EndNote encodes the date as
// year/month/day attributes, falling back to the year in the text
// content. Out-of-range month and day attributes are dropped.
func parseYearElement(decoder *xml.Decoder, content string, start xml.StartElement) (*citation.Date, error) {
	var year, month, day int
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "year":
			year = parseInt(attr.Value)
		case "month":
			if m := parseInt(attr.Value); m >= 1 && m <= 12 {
				month = m
			}
		case "day":
			if d := parseInt(attr.Value); d >= 1 && d <= 31 {
				day = d
			}
		}
	}

	// Consume the element text either way so the walk stays aligned.
	text, err := collectText(decoder, content, start)
	if err != nil {
		return nil, err
	}
	if year == 0 {
		year = parseInt(text)
	}

	return helpers.NewDateFromParts(year, month, day), nil
}

// parseDatesElement walks a <dates> wrapper looking for its <year> child.
func parseDatesElement(decoder *xml.Decoder, content string, c *citation.Citation) error {
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return xmlError(content, int(decoder.InputOffset()), err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "year" {
				date, err := parseYearElement(decoder, content, t)
				if err != nil {
					return err
				}
				c.Date = date
			}
		case xml.EndElement:
			if t.Name.Local == "dates" {
				return nil
			}
		}
	}
}

// collectText accumulates the character data of an element until its
// closing tag, passing through nested markup such as <style> wrappers.
func collectText(decoder *xml.Decoder, content string, start xml.StartElement) (string, error) {
	var text strings.Builder
	depth := 1

	for depth > 0 {
		tok, err := decoder.Token()
		if err == io.EOF {
			return "", citation.ErrAtLine(lineAt(content, len(content)), citation.FormatEndNoteXML,
				citation.Syntaxf("Unexpected EOF while looking for closing tag '%s'", start.Name.Local))
		}
		if err != nil {
			return "", xmlError(content, int(decoder.InputOffset()), err)
		}

		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(text.String()), nil
}

// xmlError translates a decoder failure into a positioned parse error.
func xmlError(content string, pos int, err error) error {
	return citation.ErrAtLine(lineAt(content, pos), citation.FormatEndNoteXML,
		citation.Syntaxf("XML parsing error: %v", err))
}

// lineAt returns the 1-based line number containing the byte offset.
func lineAt(content string, pos int) int {
	if pos > len(content) {
		pos = len(content)
	}
	return 1 + strings.Count(content[:pos], "\n")
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
