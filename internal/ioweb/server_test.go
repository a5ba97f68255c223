package ioweb_test

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/namenest/namenest/internal/ioweb"
	"github.com/namenest/namenest/pkg/catalog"
	"github.com/namenest/namenest/pkg/config"
	"github.com/namenest/namenest/pkg/content"
	"github.com/namenest/namenest/pkg/favorites"
	"github.com/namenest/namenest/pkg/feed"
	"github.com/namenest/namenest/pkg/mockdata"
	"github.com/namenest/namenest/pkg/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	calls int
}

func (l *countingLoader) Load(context.Context) *catalog.Catalog {
	l.calls++
	recs := []names.Record{
		{ID: "0b6d4b4a-0c52-5d4e-9f0b-3f1f7e8e9c11", Slug: "aarav", Gender: names.Boy,
			Religion: names.Hindu, Origin: "Sanskrit", Popularity: 80},
	}
	return catalog.New(recs, catalog.SourceFeed)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newServer(t *testing.T) (*ioweb.Server, *countingLoader) {
	lib, err := content.Load()
	require.NoError(t, err)
	cat := catalog.New(mockdata.Records(names.NewNormalizer(50)), catalog.SourceMock)
	loader := &countingLoader{}
	return ioweb.NewServer(config.New(), cat, loader, lib, favorites.NewMemory()), loader
}

func do(t *testing.T, h http.Handler, method, path string, data any) (int, envelope) {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), path)
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data), path)
	}
	return rec.Code, env
}

func TestHealth(t *testing.T) {
	s, _ := newServer(t)
	var data map[string]any
	code, env := do(t, s, http.MethodGet, "/health", &data)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "mock", data["source"])
	assert.EqualValues(t, 2800, data["records"])
}

func TestListNames(t *testing.T) {
	s, _ := newServer(t)

	var page struct {
		Items      []names.Record `json:"items"`
		Page       int            `json:"page"`
		PerPage    int            `json:"perPage"`
		Total      int            `json:"total"`
		TotalPages int            `json:"totalPages"`
	}
	code, _ := do(t, s, http.MethodGet, "/api/v1/names", &page)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2800, page.Total)
	assert.Equal(t, 20, page.PerPage)
	assert.Equal(t, 140, page.TotalPages)
	assert.Len(t, page.Items, 20)

	path := "/api/v1/names?gender=girl&religion=sikh&q=simran&per_page=5&page=2"
	code, _ = do(t, s, http.MethodGet, path, &page)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, page.Page)
	require.NotEmpty(t, page.Items)
	for _, r := range page.Items {
		assert.Equal(t, names.Girl, r.Gender)
		assert.Equal(t, names.Sikh, r.Religion)
		assert.Contains(t, r.Slug, "simran")
	}
}

func TestListNamesHugePage(t *testing.T) {
	s, _ := newServer(t)

	var page struct {
		Items      []names.Record `json:"items"`
		Page       int            `json:"page"`
		Total      int            `json:"total"`
		TotalPages int            `json:"totalPages"`
	}
	path := "/api/v1/names?page=9223372036854775807"
	code, env := do(t, s, http.MethodGet, path, &page)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Empty(t, page.Items)
	assert.Equal(t, math.MaxInt, page.Page)
	assert.Equal(t, 2800, page.Total)
	assert.Equal(t, 140, page.TotalPages)
}

func TestListNamesLang(t *testing.T) {
	s, _ := newServer(t)
	var page struct {
		Items []struct {
			Name    string `json:"name"`
			Meaning string `json:"meaning"`
		} `json:"items"`
	}
	code, _ := do(t, s, http.MethodGet, "/api/v1/names?lang=hi&per_page=1", &page)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "आरव", page.Items[0].Name)
	assert.Equal(t, "शांत, बुद्धिमान", page.Items[0].Meaning)
}

func TestGetName(t *testing.T) {
	s, _ := newServer(t)
	first := s.Catalog().Records[0]

	var rec names.Record
	code, _ := do(t, s, http.MethodGet, "/api/v1/names/"+first.ID, &rec)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, first, rec)

	code, _ = do(t, s, http.MethodGet, "/api/v1/names/aarav", &rec)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, first.ID, rec.ID)

	code, env := do(t, s, http.MethodGet, "/api/v1/names/nobody", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)

	code, _ = do(t, s, http.MethodGet, "/api/v1/names/random", &rec)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, names.IsValidID(rec.ID))
}

func TestFacetsAndCatalog(t *testing.T) {
	s, loader := newServer(t)

	var f struct {
		Religions []string `json:"religions"`
	}
	code, _ := do(t, s, http.MethodGet, "/api/v1/facets", &f)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"christian", "hindu", "muslim", "sikh"}, f.Religions)

	var info struct {
		Source  string `json:"source"`
		Records int    `json:"records"`
	}
	do(t, s, http.MethodGet, "/api/v1/catalog", &info)
	assert.Equal(t, "mock", info.Source)
	assert.Equal(t, 2800, info.Records)

	code, _ = do(t, s, http.MethodPost, "/api/v1/catalog/reload", &info)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, loader.calls)
	assert.Equal(t, "feed", info.Source)
	assert.Equal(t, 1, info.Records)
	assert.Equal(t, 1, s.Catalog().Len())
}

type ctxFetcher struct{}

func (ctxFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte("Name,Gender\nIshaan,Boy\n"), nil
}

func (ctxFetcher) URL() string { return "http://feed.test/names.csv" }

func TestReloadCanceled(t *testing.T) {
	lib, err := content.Load()
	require.NoError(t, err)
	loader := catalog.NewLoader(ctxFetcher{}, feed.CSV, nil, false)
	cat := loader.Load(context.Background())
	require.Equal(t, catalog.SourceFeed, cat.Source)
	s := ioweb.NewServer(config.New(), cat, loader, lib, favorites.NewMemory())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := s.Reload(ctx)
	assert.Same(t, cat, c)
	assert.Equal(t, catalog.SourceFeed, s.Catalog().Source)
	assert.Equal(t, 1, s.Catalog().Len())

	// a client that went away does not cancel the reload
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/reload", nil)
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, catalog.SourceFeed, s.Catalog().Source)
	assert.NotSame(t, cat, s.Catalog())
}

func TestFavorites(t *testing.T) {
	s, _ := newServer(t)
	id := s.Catalog().Records[3].ID

	var toggle struct {
		Favorite  bool `json:"favorite"`
		Favorites int  `json:"favorites"`
	}
	code, _ := do(t, s, http.MethodPost, "/api/v1/favorites/"+id, &toggle)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, toggle.Favorite)
	assert.Equal(t, 1, toggle.Favorites)

	var favs []names.Record
	do(t, s, http.MethodGet, "/api/v1/favorites", &favs)
	require.Len(t, favs, 1)
	assert.Equal(t, id, favs[0].ID)

	do(t, s, http.MethodPost, "/api/v1/favorites/"+id, &toggle)
	assert.False(t, toggle.Favorite)
	assert.Equal(t, 0, toggle.Favorites)

	code, _ = do(t, s, http.MethodPost, "/api/v1/favorites/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	unknown := "0b6d4b4a-0c52-5d4e-9f0b-3f1f7e8e9c11"
	code, _ = do(t, s, http.MethodPost, "/api/v1/favorites/"+unknown, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestBlog(t *testing.T) {
	s, _ := newServer(t)

	var posts []struct {
		Slug string `json:"slug"`
	}
	code, _ := do(t, s, http.MethodGet, "/api/v1/blog", &posts)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, posts, 15)

	do(t, s, http.MethodGet, "/api/v1/blog?featured=3", &posts)
	assert.Len(t, posts, 3)

	var post struct {
		Slug    string         `json:"slug"`
		Related []names.Record `json:"related"`
	}
	code, _ = do(t, s, http.MethodGet, "/api/v1/blog/choosing-a-name-guide", &post)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "choosing-a-name-guide", post.Slug)
	require.Len(t, post.Related, 4)
	assert.Equal(t, "aarav", post.Related[0].Slug)

	code, _ = do(t, s, http.MethodGet, "/api/v1/blog/missing", nil)
	assert.Equal(t, http.StatusNotFound, code)

	var reviews []content.Testimonial
	do(t, s, http.MethodGet, "/api/v1/testimonials", &reviews)
	assert.Len(t, reviews, 10)
}
