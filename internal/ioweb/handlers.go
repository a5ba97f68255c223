package ioweb

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	namenest "github.com/namenest/namenest/pkg"
	"github.com/namenest/namenest/pkg/catalog"
	"github.com/namenest/namenest/pkg/content"
	"github.com/namenest/namenest/pkg/filter"
	"github.com/namenest/namenest/pkg/i18n"
	"github.com/namenest/namenest/pkg/names"
)

// MaxPerPage limits the page size a client can request.
const MaxPerPage = 100

// nameView is a record rendered in a single language.
type nameView struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	Meaning    string `json:"meaning"`
	Gender     string `json:"gender"`
	Religion   string `json:"religion"`
	Origin     string `json:"origin"`
	Zodiac     string `json:"zodiac,omitempty"`
	Popularity int    `json:"popularity"`
}

func newNameView(r names.Record, lang i18n.Lang) nameView {
	return nameView{
		ID:         r.ID,
		Slug:       r.Slug,
		Name:       r.Name.Get(lang),
		Meaning:    r.Meaning.Get(lang),
		Gender:     r.Gender.String(),
		Religion:   r.Religion.String(),
		Origin:     r.Origin,
		Zodiac:     r.Zodiac,
		Popularity: r.Popularity,
	}
}

// present returns bilingual records when lang is empty, and records
// rendered in one language otherwise.
func present(recs []names.Record, lang string) any {
	if lang == "" {
		return recs
	}
	l := i18n.ParseLang(lang)
	res := make([]nameView, len(recs))
	for i, r := range recs {
		res[i] = newNameView(r, l)
	}
	return res
}

type namesPage struct {
	Items      any             `json:"items"`
	Page       int             `json:"page"`
	PerPage    int             `json:"perPage"`
	Total      int             `json:"total"`
	TotalPages int             `json:"totalPages"`
	Criteria   filter.Criteria `json:"criteria"`
	Source     catalog.Source  `json:"source"`
}

type catalogInfo struct {
	Source    catalog.Source `json:"source"`
	FeedURL   string         `json:"feedUrl,omitempty"`
	FeedError string         `json:"feedError,omitempty"`
	Records   int            `json:"records"`
	Dropped   int            `json:"dropped"`
	LoadedAt  time.Time      `json:"loadedAt"`
	Facets    filter.Facets  `json:"facets"`
}

func newCatalogInfo(c *catalog.Catalog) catalogInfo {
	res := catalogInfo{
		Source:   c.Source,
		FeedURL:  c.FeedURL,
		Records:  c.Len(),
		Dropped:  c.Dropped,
		LoadedAt: c.LoadedAt,
		Facets:   c.Facets,
	}
	if c.FeedErr != nil {
		res.FeedError = c.FeedErr.Error()
	}
	return res
}

type postSummary struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"metaDescription"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	ReadTime    int       `json:"readTime"`
	Tags        []string  `json:"tags"`
}

type postDetail struct {
	content.Post
	Related any `json:"related"`
}

type favoriteToggle struct {
	ID        string `json:"id"`
	Favorite  bool   `json:"favorite"`
	Favorites int    `json:"favorites"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	c := s.Catalog()
	success(w, map[string]any{
		"status":  "ok",
		"version": namenest.Version,
		"source":  c.Source,
		"records": c.Len(),
	}, s.logger)
}

func (s *Server) handleListNames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	crit := filter.Criteria{
		Search:   q.Get("q"),
		Gender:   q.Get("gender"),
		Religion: q.Get("religion"),
		Origin:   q.Get("origin"),
	}
	page := intParam(q.Get("page"), 1)
	perPage := min(intParam(q.Get("per_page"), s.pageSize), MaxPerPage)

	c := s.Catalog()
	p := filter.Paginate(c.Search(crit), page, perPage)
	success(w, namesPage{
		Items:      present(p.Items, q.Get("lang")),
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		Criteria:   crit,
		Source:     c.Source,
	}, s.logger)
}

func (s *Server) handleRandomName(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.Catalog().Random(nil)
	if !ok {
		failure(w, http.StatusNotFound, "catalog is empty", s.logger)
		return
	}
	success(w, presentOne(rec, r.URL.Query().Get("lang")), s.logger)
}

func (s *Server) handleGetName(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Catalog().Get(chi.URLParam(r, "key"))
	if err != nil {
		fail(w, err, s.logger)
		return
	}
	success(w, presentOne(rec, r.URL.Query().Get("lang")), s.logger)
}

func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	success(w, s.Catalog().Facets, s.logger)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	success(w, newCatalogInfo(s.Catalog()), s.logger)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	// the load outlives a client that disconnects
	c := s.Reload(context.WithoutCancel(r.Context()))
	success(w, newCatalogInfo(c), s.logger)
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	ids, err := s.favorites.Get(r.Context())
	if err != nil {
		fail(w, err, s.logger)
		return
	}
	recs := s.Catalog().Resolve(ids)
	success(w, present(recs, r.URL.Query().Get("lang")), s.logger)
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	if !names.IsValidID(id) {
		failure(w, http.StatusBadRequest, "invalid name id "+strconv.Quote(id), s.logger)
		return
	}

	has, err := s.favorites.Has(ctx, id)
	if err != nil {
		fail(w, err, s.logger)
		return
	}
	// only names of the current catalog can be added
	if _, ok := s.Catalog().ByID(id); !ok && !has {
		fail(w, catalog.NotFoundError(id), s.logger)
		return
	}

	fav, err := s.favorites.Toggle(ctx, id)
	if err != nil {
		fail(w, err, s.logger)
		return
	}
	ids, err := s.favorites.Get(ctx)
	if err != nil {
		fail(w, err, s.logger)
		return
	}
	success(w, favoriteToggle{ID: id, Favorite: fav, Favorites: len(ids)}, s.logger)
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts := s.library.Posts()
	if n := intParam(r.URL.Query().Get("featured"), 0); n > 0 {
		posts = s.library.Featured(n)
	}
	res := make([]postSummary, len(posts))
	for i, p := range posts {
		res[i] = postSummary{
			ID:          p.ID,
			Slug:        p.Slug,
			Title:       p.Title,
			Description: p.Description,
			Author:      p.Author,
			PublishedAt: p.PublishedAt,
			ReadTime:    p.ReadTime,
			Tags:        p.Tags,
		}
	}
	success(w, res, s.logger)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	p, err := s.library.Post(chi.URLParam(r, "slug"))
	if err != nil {
		fail(w, err, s.logger)
		return
	}
	related := s.Catalog().Related(p.RelatedNames)
	success(w, postDetail{
		Post:    p,
		Related: present(related, r.URL.Query().Get("lang")),
	}, s.logger)
}

func (s *Server) handleTestimonials(w http.ResponseWriter, r *http.Request) {
	success(w, s.library.Testimonials(), s.logger)
}

func presentOne(rec names.Record, lang string) any {
	if lang == "" {
		return rec
	}
	return newNameView(rec, i18n.ParseLang(lang))
}

func intParam(s string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return i
}
