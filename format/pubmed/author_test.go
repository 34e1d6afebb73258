package pubmed

import "testing"

func TestAuthorNameParts(t *testing.T) {
	cases := []struct {
		au       string
		fau      string
		lastName string
		initials string
		given    string
	}{
		{"", "", "", "", ""},
		{"Archimedes", "Archimedes", "Archimedes", "", ""},
		{"Einstein A", "Einstein, Albert", "Einstein", "A", "Albert"},
		{"Watson JD", "Watson, James D", "Watson", "JD", "James D"},
		{"Watson JD", "Watson, James Dewey", "Watson", "JD", "James Dewey"},
		{"Crick FHC", "Crick, Francis Harry Compton", "Crick", "FHC", "Francis Harry Compton"},
		{"van der Valk JPM", "van der Valk, J P M", "van der Valk", "JPM", "J P M"},
	}

	for _, tc := range cases {
		full := authorName{name: tc.fau, full: true}
		if got := full.lastName(); got != tc.lastName {
			t.Errorf("FAU %q lastName = %q, want %q", tc.fau, got, tc.lastName)
		}
		if got := full.firstInitials(); got != tc.initials {
			t.Errorf("FAU %q initials = %q, want %q", tc.fau, got, tc.initials)
		}
		if given, ok := full.givenName(); ok && given != tc.given {
			t.Errorf("FAU %q given = %q, want %q", tc.fau, given, tc.given)
		} else if !ok && tc.given != "" {
			t.Errorf("FAU %q: expected given name %q", tc.fau, tc.given)
		}

		short := authorName{name: tc.au}
		if got := short.lastName(); got != tc.lastName {
			t.Errorf("AU %q lastName = %q, want %q", tc.au, got, tc.lastName)
		}
		if got := short.firstInitials(); got != tc.initials {
			t.Errorf("AU %q initials = %q, want %q", tc.au, got, tc.initials)
		}
	}
}

func TestAUEqualsAllowsOmittedInitials(t *testing.T) {
	full := authorName{name: "Crick, Francis Harry Compton", full: true}
	for _, au := range []string{"Crick FHC", "Crick FH", "Crick F", "Crick"} {
		if !full.auEquals(au) {
			t.Errorf("auEquals(%q) = false, want true", au)
		}
	}
	if full.auEquals("Watson JD") {
		t.Error("auEquals should reject a different last name")
	}
}

func TestResolveAuthorsTypical(t *testing.T) {
	entries := []consecutiveEntry{
		{TagFullAuthor, "Lerch, Jason P"},
		{TagAuthor, "Lerch JP"},
		{TagAffiliation, "The Hospital for Sick Children, Toronto, Canada."},
		{TagAffiliation, "University of Toronto, Toronto, Canada."},
		{TagFullAuthor, "Fischl, Bruce"},
		{TagAuthor, "Fischl B"},
		{TagAffiliation, "Massachusetts General Hospital, Boston, USA."},
	}

	authors, leading := resolveAuthors(entries)
	if len(leading) != 0 {
		t.Errorf("unexpected leading affiliations: %v", leading)
	}
	if len(authors) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(authors))
	}
	if authors[0].name.name != "Lerch, Jason P" || !authors[0].name.full {
		t.Errorf("first author = %+v", authors[0].name)
	}
	if len(authors[0].affiliations) != 2 {
		t.Errorf("first author affiliations = %v", authors[0].affiliations)
	}
	if len(authors[1].affiliations) != 1 {
		t.Errorf("second author affiliations = %v", authors[1].affiliations)
	}
}

func TestResolveAuthorsConsecutiveAU(t *testing.T) {
	// Consecutive AU entries are distinct authors, even with the same name.
	for _, names := range [][]string{
		{"Watson JD", "Crick FH"},
		{"Watson JD", "Watson JD"},
	} {
		var entries []consecutiveEntry
		for _, n := range names {
			entries = append(entries, consecutiveEntry{TagAuthor, n})
		}
		authors, _ := resolveAuthors(entries)
		if len(authors) != len(names) {
			t.Errorf("resolveAuthors(%v): got %d authors, want %d", names, len(authors), len(names))
		}
	}
}

func TestResolveAuthorsDeduplication(t *testing.T) {
	cases := [][]consecutiveEntry{
		{
			{TagFullAuthor, "Bose, Satyendra N"},
			{TagAuthor, "Bose SN"},
			{TagFullAuthor, "Einstein, Albert"},
			{TagAuthor, "Einstein A"},
		},
		{
			{TagFullAuthor, "Bose, Satyendra N"},
			{TagFullAuthor, "Einstein, Albert"},
			{TagAuthor, "Einstein A"},
		},
		{
			{TagAuthor, "Bose SN"},
			{TagAuthor, "Einstein A"},
		},
	}

	for i, entries := range cases {
		authors, _ := resolveAuthors(entries)
		if len(authors) != 2 {
			t.Errorf("case %d: got %d authors, want 2", i, len(authors))
			continue
		}
		if authors[0].name.lastName() != "Bose" || authors[1].name.lastName() != "Einstein" {
			t.Errorf("case %d: authors = %q, %q", i, authors[0].name.name, authors[1].name.name)
		}
	}
}

func TestCitationAuthorConversion(t *testing.T) {
	author := recordAuthor{
		name:         authorName{name: "Crick, Francis Harry Compton", full: true},
		affiliations: []string{"Cavendish Laboratory"},
	}

	c := author.citationAuthor()
	if c.Name != "Crick" {
		t.Errorf("Name = %q", c.Name)
	}
	if c.GivenName != "Francis" {
		t.Errorf("GivenName = %q", c.GivenName)
	}
	if c.MiddleName != "Harry Compton" {
		t.Errorf("MiddleName = %q", c.MiddleName)
	}
	if len(c.Affiliations) != 1 {
		t.Errorf("Affiliations = %v", c.Affiliations)
	}
}
