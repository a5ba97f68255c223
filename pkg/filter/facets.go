package filter

import (
	"slices"

	"github.com/gnames/gnlib"
	"github.com/namenest/namenest/pkg/names"
)

// Facets are distinct values observed in a collection, each sorted
// in ascending order.
type Facets struct {
	Genders   []string `json:"genders"`
	Religions []string `json:"religions"`
	Origins   []string `json:"origins"`
}

// NewFacets derives facets from records. Empty religions and origins
// are not reported.
func NewFacets(records []names.Record) Facets {
	genders := gnlib.Map(records, func(r names.Record) string {
		return r.Gender.String()
	})
	religions := gnlib.Map(records, func(r names.Record) string {
		return r.Religion.String()
	})
	origins := gnlib.Map(records, func(r names.Record) string {
		return r.Origin
	})
	return Facets{
		Genders:   distinct(genders),
		Religions: distinct(religions),
		Origins:   distinct(origins),
	}
}

func distinct(vals []string) []string {
	res := make([]string, 0, 8)
	for _, v := range vals {
		if v != "" {
			res = append(res, v)
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}
