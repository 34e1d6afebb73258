package citation

// SourceFormat identifies the citation format an input was parsed as. The
// value is the display name used in error messages.
type SourceFormat string

const (
	FormatRIS        SourceFormat = "RIS"
	FormatPubMed     SourceFormat = "PubMed"
	FormatEndNoteXML SourceFormat = "EndNote XML"
	FormatCSV        SourceFormat = "CSV"
	FormatUnknown    SourceFormat = "Unknown"
)

func (f SourceFormat) String() string {
	if f == "" {
		return string(FormatUnknown)
	}
	return string(f)
}
