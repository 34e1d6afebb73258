package ris

// Tag is a two-character RIS field tag. Unknown tags are carried through
// verbatim so no field data is lost.
type Tag string

// Tags with dedicated handling during conversion.
const (
	TagType           Tag = "TY"
	TagEndOfReference Tag = "ER"
	TagTitle          Tag = "TI"
	TagTitleAlt       Tag = "T1"
	TagJournalFull    Tag = "JF"
	TagSecondaryTitle Tag = "T2"
	TagJournalAlt     Tag = "JO"
	TagJournalAbbr    Tag = "JA"
	TagJournalAbbrAlt Tag = "J2"
	TagPubYear        Tag = "PY"
	TagDatePrimary    Tag = "Y1"
	TagDateAccess     Tag = "Y2"
	TagVolume         Tag = "VL"
	TagIssue          Tag = "IS"
	TagStartPage      Tag = "SP"
	TagEndPage        Tag = "EP"
	TagDOI            Tag = "DO"
	TagReferenceID    Tag = "ID"
	TagPMCID          Tag = "C2"
	TagAbstract       Tag = "AB"
	TagAbstractAlt    Tag = "N2"
	TagKeywords       Tag = "KW"
	TagSerialNumber   Tag = "SN"
	TagLanguage       Tag = "LA"
	TagPublisher      Tag = "PB"
	TagLinkPDF        Tag = "L1"
	TagLinkFullText   Tag = "L2"
	TagLinkRelated    Tag = "L3"
	TagLinkImages     Tag = "L4"
	TagURL            Tag = "UR"
	TagLink           Tag = "LK"
)

// linkTags is the scan order for URL collection and the second-pass DOI
// extraction.
var linkTags = []Tag{
	TagLinkPDF,
	TagLinkFullText,
	TagLinkRelated,
	TagLinkImages,
	TagURL,
	TagLink,
}

// isAuthorTag reports whether the tag names a contributor field. AU is the
// standard author tag; A1 through A4 cover primary through subsidiary
// authors in older exports.
func isAuthorTag(tag Tag) bool {
	switch tag {
	case "AU", "A1", "A2", "A3", "A4":
		return true
	}
	return false
}

// journalPriority ranks tags that can carry the full journal name. Lower
// wins. Zero means the tag is not a journal tag.
func journalPriority(tag Tag) int {
	switch tag {
	case TagJournalFull:
		return 1
	case TagSecondaryTitle:
		return 2
	case TagJournalAlt:
		return 3
	}
	return 0
}

// journalAbbrPriority ranks tags that can carry the journal abbreviation.
func journalAbbrPriority(tag Tag) int {
	switch tag {
	case TagJournalAbbr:
		return 1
	case TagJournalAbbrAlt:
		return 2
	}
	return 0
}
