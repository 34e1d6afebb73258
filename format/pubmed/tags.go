package pubmed

// Tag is a PubMed/MEDLINE field tag. Only known tags are accepted; a line
// with an unrecognized tag is treated as unparseable rather than invented
// field data.
type Tag string

// Tags with dedicated handling during conversion.
const (
	TagPMID        Tag = "PMID"
	TagISSN        Tag = "IS"
	TagVolume      Tag = "VI"
	TagIssue       Tag = "IP"
	TagPubDate     Tag = "DP"
	TagTitle       Tag = "TI"
	TagPagination  Tag = "PG"
	TagLocationID  Tag = "LID"
	TagAbstract    Tag = "AB"
	TagFullAuthor  Tag = "FAU"
	TagAuthor      Tag = "AU"
	TagAffiliation Tag = "AD"
	TagLanguage    Tag = "LA"
	TagPubType     Tag = "PT"
	TagJournal     Tag = "JT"
	TagJournalAbbr Tag = "TA"
	TagMeshTerm    Tag = "MH"
	TagPMC         Tag = "PMC"
	TagArticleID   Tag = "AID"
	TagPublisher   Tag = "PB"
)

// knownTags lists every tag the parser accepts. Tags without dedicated
// handling are carried through to the citation's extra fields.
var knownTags = map[Tag]struct{}{
	TagPMID: {}, TagISSN: {}, TagVolume: {}, TagIssue: {}, TagPubDate: {},
	TagTitle: {}, TagPagination: {}, TagLocationID: {}, TagAbstract: {},
	TagFullAuthor: {}, TagAuthor: {}, TagAffiliation: {}, TagLanguage: {},
	TagPubType: {}, TagJournal: {}, TagJournalAbbr: {}, TagMeshTerm: {},
	TagPMC: {}, TagArticleID: {}, TagPublisher: {},
	"OWN": {}, "STAT": {}, "DCOM": {}, "LR": {}, "DEP": {}, "PL": {},
	"JID": {}, "SB": {}, "EDAT": {}, "MHDA": {}, "CRDT": {}, "PHST": {},
	"PST": {}, "SO": {}, "GR": {}, "CI": {}, "COIS": {}, "OT": {},
	"CIN": {}, "RN": {}, "OTO": {}, "FIR": {}, "IR": {},
}

// lookupTag matches a raw key against the known tag set.
func lookupTag(key string) (Tag, bool) {
	tag := Tag(key)
	_, ok := knownTags[tag]
	return tag, ok
}

// isConsecutiveTag reports whether the tag must be parsed in document
// order. Author names and affiliations depend on the entries around them.
func isConsecutiveTag(tag Tag) bool {
	switch tag {
	case TagAuthor, TagFullAuthor, TagAffiliation:
		return true
	}
	return false
}
