// Package catalog holds the canonical collection of name records for
// one load cycle and the loader that produces it. A Catalog is never
// modified after creation; reloading produces a new one.
package catalog

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/namenest/namenest/pkg/filter"
	"github.com/namenest/namenest/pkg/names"
)

// Source tells where the records of a catalog came from.
type Source string

const (
	// SourceFeed means records were parsed from the remote feed.
	SourceFeed Source = "feed"
	// SourceMock means records were generated by the fallback.
	SourceMock Source = "mock"
)

// Catalog is an immutable collection of records.
type Catalog struct {
	// Records in feed order.
	Records []names.Record `json:"-"`

	Source Source `json:"source"`

	// FeedURL is the feed endpoint, empty if the feed was not used.
	FeedURL string `json:"feedUrl,omitempty"`

	// FeedErr is the reason of a fallback to mock data. It is nil when
	// records came from the feed or mock data was requested.
	FeedErr error `json:"-"`

	// Dropped is the number of feed rows without a name.
	Dropped int `json:"dropped"`

	LoadedAt time.Time `json:"loadedAt"`

	Facets filter.Facets `json:"facets"`

	byID   map[string]int
	bySlug map[string]int
}

// New creates a catalog from records. The records slice must not be
// modified by the caller afterwards.
func New(records []names.Record, src Source) *Catalog {
	res := Catalog{
		Records:  records,
		Source:   src,
		LoadedAt: time.Now(),
		Facets:   filter.NewFacets(records),
		byID:     make(map[string]int, len(records)),
		bySlug:   make(map[string]int, len(records)),
	}
	for i, r := range records {
		res.byID[r.ID] = i
		if _, ok := res.bySlug[r.Slug]; !ok {
			res.bySlug[r.Slug] = i
		}
	}
	return &res
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.Records)
}

// ByID returns a record by its ID.
func (c *Catalog) ByID(id string) (names.Record, bool) {
	i, ok := c.byID[id]
	if !ok {
		return names.Record{}, false
	}
	return c.Records[i], true
}

// BySlug returns the first record with the given slug.
func (c *Catalog) BySlug(slug string) (names.Record, bool) {
	i, ok := c.bySlug[strings.ToLower(slug)]
	if !ok {
		return names.Record{}, false
	}
	return c.Records[i], true
}

// Get finds a record by ID, falling back to slug lookup.
func (c *Catalog) Get(key string) (names.Record, error) {
	if r, ok := c.ByID(key); ok {
		return r, nil
	}
	if r, ok := c.BySlug(key); ok {
		return r, nil
	}
	return names.Record{}, NotFoundError(key)
}

// Resolve returns records for ids in the order of ids. Unknown ids
// are skipped.
func (c *Catalog) Resolve(ids []string) []names.Record {
	res := make([]names.Record, 0, len(ids))
	for _, id := range ids {
		if r, ok := c.ByID(id); ok {
			res = append(res, r)
		}
	}
	return res
}

// Random returns a random record. It returns false if the catalog is
// empty.
func (c *Catalog) Random(r *rand.Rand) (names.Record, bool) {
	if len(c.Records) == 0 {
		return names.Record{}, false
	}
	var i int
	if r == nil {
		i = rand.IntN(len(c.Records))
	} else {
		i = r.IntN(len(c.Records))
	}
	return c.Records[i], true
}

// Related returns records for blog related-name slugs. A slug matches
// records with the same slug or with the slug followed by a hyphen,
// so "aarav" matches "aarav" and "aarav-2". At most one record per
// slug is returned.
func (c *Catalog) Related(slugs []string) []names.Record {
	res := make([]names.Record, 0, len(slugs))
	for _, s := range slugs {
		s = strings.ToLower(s)
		if r, ok := c.BySlug(s); ok {
			res = append(res, r)
			continue
		}
		for _, r := range c.Records {
			if strings.HasPrefix(r.Slug, s+"-") {
				res = append(res, r)
				break
			}
		}
	}
	return res
}

// Search filters the catalog.
func (c *Catalog) Search(crit filter.Criteria) []names.Record {
	return filter.Apply(c.Records, crit)
}
