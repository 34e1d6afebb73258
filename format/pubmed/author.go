package pubmed

import (
	"strings"
	"unicode/utf8"

	"github.com/lehigh-university-libraries/bibparse/citation"
	"github.com/lehigh-university-libraries/bibparse/helpers"
)

// authorName is the value of an AU or FAU entry. FAU spells out given
// names ("Crick, Francis Harry Compton") while AU abbreviates them to
// initials ("Crick FHC").
type authorName struct {
	name string
	full bool
}

// lastName returns the family name portion.
func (a authorName) lastName() string {
	var last string
	var ok bool
	if a.full {
		last, _, ok = strings.Cut(a.name, ", ")
	} else {
		idx := strings.LastIndex(a.name, " ")
		if idx >= 0 {
			last, ok = a.name[:idx], true
		}
	}
	if !ok {
		return a.name
	}
	return last
}

// firstInitials returns the initials of the given names.
func (a authorName) firstInitials() string {
	if a.full {
		_, rest, ok := strings.Cut(a.name, ", ")
		if !ok {
			return ""
		}
		var initials strings.Builder
		for _, part := range strings.Split(rest, " ") {
			if part == "" {
				break
			}
			r, _ := utf8.DecodeRuneInString(part)
			initials.WriteRune(r)
		}
		return initials.String()
	}

	idx := strings.LastIndex(a.name, " ")
	if idx < 0 {
		return ""
	}
	return a.name[idx+1:]
}

// givenName returns the given names when the value has any.
func (a authorName) givenName() (string, bool) {
	if a.full {
		_, rest, ok := strings.Cut(a.name, ", ")
		return rest, ok
	}
	idx := strings.LastIndex(a.name, " ")
	if idx < 0 {
		return "", false
	}
	return a.name[idx+1:], true
}

// auEquals reports whether an AU value names the same person. AU may omit
// trailing middle initials, so "Crick FH" matches "Crick, Francis Harry
// Compton".
func (a authorName) auEquals(au string) bool {
	last, initials := au, ""
	if idx := strings.LastIndex(au, " "); idx >= 0 {
		last, initials = au[:idx], au[idx+1:]
	}
	return a.lastName() == last && strings.HasPrefix(a.firstInitials(), initials)
}

// recordAuthor is one author with the affiliations listed under them.
type recordAuthor struct {
	name         authorName
	affiliations []string
}

// consecutiveEntry is an author-related entry in document order.
type consecutiveEntry struct {
	tag   Tag
	value string
}

// resolveAuthors folds the ordered author entries into authors. An AU
// following its own FAU restates the same person and is skipped, and an
// AD attaches to the most recent author. Affiliations appearing before
// any author are returned separately.
func resolveAuthors(entries []consecutiveEntry) ([]recordAuthor, []string) {
	var authors []recordAuthor
	var leadingAffiliations []string

	for _, entry := range entries {
		switch entry.tag {
		case TagAuthor:
			if len(authors) > 0 {
				prev := authors[len(authors)-1].name
				if prev.full && prev.auEquals(entry.value) {
					continue
				}
			}
			authors = append(authors, recordAuthor{name: authorName{name: entry.value}})
		case TagFullAuthor:
			authors = append(authors, recordAuthor{name: authorName{name: entry.value, full: true}})
		case TagAffiliation:
			if len(authors) == 0 {
				leadingAffiliations = append(leadingAffiliations, entry.value)
				continue
			}
			last := &authors[len(authors)-1]
			last.affiliations = append(last.affiliations, entry.value)
		}
	}

	return authors, leadingAffiliations
}

// citationAuthor converts a record author to the canonical model.
func (a recordAuthor) citationAuthor() citation.Author {
	author := citation.Author{
		Name:         a.name.lastName(),
		Affiliations: a.affiliations,
	}
	if given, ok := a.name.givenName(); ok {
		author.GivenName, author.MiddleName = helpers.SplitGivenAndMiddle(given)
	}
	return author
}
