package citation

import (
	"encoding/json"
	"testing"
)

func TestNewInitializesCollections(t *testing.T) {
	c := New()
	if c.Types == nil || c.Authors == nil || c.ISSN == nil ||
		c.Keywords == nil || c.URLs == nil || c.MeshTerms == nil ||
		c.ExtraFields == nil {
		t.Error("New should initialize every collection")
	}
	if len(c.ExtraFields) != 0 {
		t.Errorf("ExtraFields = %v", c.ExtraFields)
	}
}

func TestAuthorDisplayName(t *testing.T) {
	cases := []struct {
		author Author
		want   string
	}{
		{Author{Name: "Smith"}, "Smith"},
		{Author{Name: "Smith", GivenName: "John"}, "Smith, John"},
		{Author{Name: "Smith", GivenName: "John", MiddleName: "A"}, "Smith, John A"},
		{Author{Name: "Madonna"}, "Madonna"},
	}

	for _, tc := range cases {
		if got := tc.author.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%+v) = %q, want %q", tc.author, got, tc.want)
		}
	}
}

func TestCitationJSONShape(t *testing.T) {
	c := New()
	c.Title = "Sample"
	c.Types = []string{"Journal Article"}
	c.Authors = append(c.Authors, Author{Name: "Smith", GivenName: "J"})
	c.Date = &Date{Year: 2023, Month: 6}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded["title"] != "Sample" {
		t.Errorf("title = %v", decoded["title"])
	}
	if _, ok := decoded["citation_type"]; !ok {
		t.Error("citation_type key missing")
	}
	// Empty optional fields stay out of the JSON.
	if _, ok := decoded["journal"]; ok {
		t.Error("empty journal should be omitted")
	}
	if _, ok := decoded["pmid"]; ok {
		t.Error("empty pmid should be omitted")
	}

	date, ok := decoded["date"].(map[string]any)
	if !ok {
		t.Fatalf("date = %v", decoded["date"])
	}
	if date["year"] != float64(2023) {
		t.Errorf("year = %v", date["year"])
	}
	if _, ok := date["day"]; ok {
		t.Error("zero day should be omitted")
	}
}
