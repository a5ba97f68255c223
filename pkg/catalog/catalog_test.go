package catalog_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/catalog"
	"github.com/namenest/namenest/pkg/errcode"
	"github.com/namenest/namenest/pkg/feed"
	"github.com/namenest/namenest/pkg/filter"
	"github.com/namenest/namenest/pkg/mockdata"
	"github.com/namenest/namenest/pkg/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	data  []byte
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(context.Context) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

func (f *fakeFetcher) URL() string {
	return "https://example.org/feed.csv"
}

const feedCSV = `Name,Gender,Origin,Religion,Zodiac,Popularity,Meaning
Aarav,Male,Sanskrit,Hinduism,Aries,87,"Peaceful, wise"
Aarav,Male,Sanskrit,Hindu,Aries,12,Duplicate
Arjun Dev,boy,Sanskrit,hindu,,,
,girl,Sanskrit,hindu,,,
Zara,F,Arabic,Islam,Leo,70,"Blooming flower, princess"
`

func newLoader(f *fakeFetcher) *catalog.Loader {
	return catalog.NewLoader(f, feed.CSV, names.NewNormalizer(50), false)
}

func TestLoadFeed(t *testing.T) {
	f := &fakeFetcher{data: []byte(feedCSV)}
	c := newLoader(f).Load(context.Background())

	assert.Equal(t, 1, f.calls)
	assert.Equal(t, catalog.SourceFeed, c.Source)
	assert.NoError(t, c.FeedErr)
	assert.Equal(t, 1, c.Dropped)
	assert.Equal(t, f.URL(), c.FeedURL)
	require.Equal(t, 4, c.Len())
	assert.False(t, c.LoadedAt.IsZero())

	assert.Equal(t, []string{"boy", "girl"}, c.Facets.Genders)
	assert.Equal(t, []string{"hindu", "muslim"}, c.Facets.Religions)
	assert.Equal(t, []string{"Arabic", "Sanskrit"}, c.Facets.Origins)

	assert.NotEqual(t, c.Records[0].ID, c.Records[1].ID)
	r, ok := c.BySlug("aarav")
	require.True(t, ok)
	assert.Equal(t, c.Records[0].ID, r.ID, "first slug match wins")
	assert.Equal(t, "arjun-dev", c.Records[2].Slug)
}

func TestLoadIsStable(t *testing.T) {
	c1 := newLoader(&fakeFetcher{data: []byte(feedCSV)}).Load(context.Background())
	c2 := newLoader(&fakeFetcher{data: []byte(feedCSV)}).Load(context.Background())
	for i := range c1.Records {
		assert.Equal(t, c1.Records[i].ID, c2.Records[i].ID)
	}
}

func TestLoadFallback(t *testing.T) {
	mockLen := 4 * mockdata.PerReligion
	tests := []struct {
		msg  string
		f    *fakeFetcher
		code gn.ErrorCode
	}{
		{"fetch error",
			&fakeFetcher{err: &gn.Error{Code: errcode.FeedRequestError, Err: errors.New("offline")}},
			errcode.FeedRequestError},
		{"header only", &fakeFetcher{data: []byte("Name,Gender\n")}, errcode.FeedEmptyError},
		{"empty body", &fakeFetcher{data: []byte{}}, errcode.FeedEmptyError},
		{"no names", &fakeFetcher{data: []byte("Name,Gender\n,boy\n,girl\n")},
			errcode.FeedEmptyError},
	}

	for _, tt := range tests {
		c := newLoader(tt.f).Load(context.Background())
		assert.Equal(t, catalog.SourceMock, c.Source, tt.msg)
		assert.Equal(t, mockLen, c.Len(), tt.msg)
		require.Error(t, c.FeedErr, tt.msg)

		var gnErr *gn.Error
		require.True(t, errors.As(c.FeedErr, &gnErr), tt.msg)
		assert.Equal(t, tt.code, gnErr.Code, tt.msg)
	}
}

func TestLoadXLSXGarbage(t *testing.T) {
	f := &fakeFetcher{data: []byte("<html>error</html>")}
	l := catalog.NewLoader(f, feed.XLSX, nil, false)
	c := l.Load(context.Background())
	assert.Equal(t, catalog.SourceMock, c.Source)

	var gnErr *gn.Error
	require.True(t, errors.As(c.FeedErr, &gnErr))
	assert.Equal(t, errcode.FeedParseError, gnErr.Code)
}

func TestLoadMock(t *testing.T) {
	f := &fakeFetcher{data: []byte(feedCSV)}
	c := catalog.NewLoader(f, feed.CSV, nil, true).Load(context.Background())
	assert.Equal(t, 0, f.calls)
	assert.Equal(t, catalog.SourceMock, c.Source)
	assert.NoError(t, c.FeedErr)

	c = catalog.NewLoader(nil, feed.CSV, nil, false).Load(context.Background())
	assert.Equal(t, catalog.SourceMock, c.Source)
	assert.Equal(t, 4*mockdata.PerReligion, c.Len())
}

func mockCatalog() *catalog.Catalog {
	recs := mockdata.Records(names.NewNormalizer(50))
	return catalog.New(recs, catalog.SourceMock)
}

func TestLookups(t *testing.T) {
	c := mockCatalog()
	first := c.Records[0]

	r, ok := c.ByID(first.ID)
	assert.True(t, ok)
	assert.Equal(t, first, r)

	_, ok = c.ByID("nope")
	assert.False(t, ok)

	r, err := c.Get("diya")
	require.NoError(t, err)
	assert.Equal(t, "Diya", r.Name.EN)

	r, err = c.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, r.ID)

	_, err = c.Get("unknown-name")
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.NameNotFoundError, gnErr.Code)
}

func TestResolve(t *testing.T) {
	c := mockCatalog()
	ids := []string{c.Records[10].ID, "missing", c.Records[2].ID}
	res := c.Resolve(ids)
	require.Len(t, res, 2)
	assert.Equal(t, c.Records[10].ID, res[0].ID)
	assert.Equal(t, c.Records[2].ID, res[1].ID)
	assert.Empty(t, c.Resolve(nil))
}

func TestRandom(t *testing.T) {
	c := mockCatalog()
	r1, ok := c.Random(rand.New(rand.NewPCG(1, 2)))
	require.True(t, ok)
	r2, _ := c.Random(rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, r1.ID, r2.ID)

	_, ok = c.Random(nil)
	assert.True(t, ok)

	_, ok = catalog.New(nil, catalog.SourceFeed).Random(nil)
	assert.False(t, ok)
}

func TestRelated(t *testing.T) {
	c := catalog.New([]names.Record{
		{ID: "1", Slug: "aarav-2"},
		{ID: "2", Slug: "diya"},
		{ID: "3", Slug: "aarav-3"},
	}, catalog.SourceFeed)
	res := c.Related([]string{"aarav", "diya", "arjun"})
	require.Len(t, res, 2)
	assert.Equal(t, "1", res[0].ID)
	assert.Equal(t, "2", res[1].ID)
}

func TestSearch(t *testing.T) {
	c := mockCatalog()
	res := c.Search(filter.Criteria{Search: "diya", Gender: "unisex"})
	for _, r := range res {
		assert.Equal(t, names.Unisex, r.Gender)
		assert.Contains(t, r.Slug, "diya")
	}
	assert.NotEmpty(t, res)
	assert.Len(t, c.Search(filter.Criteria{}), c.Len())
}
