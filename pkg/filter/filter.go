// Package filter selects records from an in-memory collection and
// derives facet values for building filter controls. Functions of the
// package never modify their input.
package filter

import (
	"slices"
	"strings"

	"github.com/gnames/gnlib"
	"github.com/namenest/namenest/pkg/names"
	"golang.org/x/text/unicode/norm"
)

// All is the sentinel criteria value that means "no constraint".
const All = "all"

// Criteria restricts a collection. Empty fields and fields set to All
// are unconstrained. Non-empty fields are combined with logical AND.
type Criteria struct {
	// Search is matched as a case-insensitive substring against
	// names and meanings in every supported language.
	Search string `json:"search,omitempty"`

	// Gender is one of "boy", "girl" or "unisex".
	Gender string `json:"gender,omitempty"`

	// Religion is a normalized religion value.
	Religion string `json:"religion,omitempty"`

	// Origin is compared verbatim to the record origin.
	Origin string `json:"origin,omitempty"`
}

// IsEmpty reports if criteria put no constraint on records.
func (c Criteria) IsEmpty() bool {
	return !isSet(c.Gender) && !isSet(c.Religion) && !isSet(c.Origin) &&
		strings.TrimSpace(c.Search) == ""
}

// Apply returns records that satisfy the criteria in their original
// order. Structured fields are checked first and search last.
func Apply(records []names.Record, c Criteria) []names.Record {
	if c.IsEmpty() {
		return slices.Clone(records)
	}
	m := newMatcher(c)
	return gnlib.FilterFunc(records, m.match)
}

type matcher struct {
	gender, religion, origin string
	search                   string
}

func newMatcher(c Criteria) matcher {
	var res matcher
	if isSet(c.Gender) {
		res.gender = strings.ToLower(strings.TrimSpace(c.Gender))
	}
	if isSet(c.Religion) {
		res.religion = strings.ToLower(strings.TrimSpace(c.Religion))
	}
	if isSet(c.Origin) {
		res.origin = strings.TrimSpace(c.Origin)
	}
	res.search = fold(strings.TrimSpace(c.Search))
	return res
}

func (m matcher) match(r names.Record) bool {
	if m.gender != "" && r.Gender.String() != m.gender {
		return false
	}
	if m.religion != "" && r.Religion.String() != m.religion {
		return false
	}
	if m.origin != "" && r.Origin != m.origin {
		return false
	}
	if m.search == "" {
		return true
	}
	for _, s := range searchable(r) {
		if strings.Contains(fold(s), m.search) {
			return true
		}
	}
	return false
}

func searchable(r names.Record) []string {
	return append(r.Name.All(), r.Meaning.All()...)
}

// fold lowercases a string and composes Devanagari combining marks, so
// text typed with decomposed vowel signs matches the stored form.
func fold(s string) string {
	return norm.NFC.String(strings.ToLower(s))
}

func isSet(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && !strings.EqualFold(s, All)
}
