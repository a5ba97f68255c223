// Package content provides the bilingual editorial content of NameNest:
// blog posts and testimonials. The content is embedded into the binary
// and rendered from markdown once, when a Library is created.
package content

import (
	"embed"
	"slices"
	"strconv"
	"time"

	"github.com/namenest/namenest/pkg/i18n"
	"gopkg.in/yaml.v3"
)

//go:embed data
var dataFS embed.FS

// Post is a rendered blog article.
type Post struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"metaDescription"`

	// Content is sanitized HTML.
	Content i18n.Text `json:"content"`

	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`

	// ReadTime is the estimated reading time of the English text in
	// minutes.
	ReadTime int `json:"readTime"`

	Tags []string `json:"tags"`

	// RelatedNames are name slugs featured in the article.
	RelatedNames []string `json:"relatedNames"`
}

// Testimonial is a review left by a parent.
type Testimonial struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Rating   int       `json:"rating"`
	Review   i18n.Text `json:"review"`
	Date     time.Time `json:"date"`
}

// Library keeps rendered posts and testimonials.
type Library struct {
	posts        []Post
	bySlug       map[string]int
	testimonials []Testimonial
}

// Load creates a Library from the embedded content.
func Load() (*Library, error) {
	blog, err := dataFS.ReadFile("data/blog.yaml")
	if err != nil {
		return nil, LoadError("data/blog.yaml", err)
	}
	reviews, err := dataFS.ReadFile("data/testimonials.yaml")
	if err != nil {
		return nil, LoadError("data/testimonials.yaml", err)
	}
	return New(blog, reviews)
}

// New creates a Library from blog and testimonial YAML documents.
func New(blogYAML, testimonialsYAML []byte) (*Library, error) {
	var err error
	res := Library{}
	if res.posts, err = loadPosts(blogYAML); err != nil {
		return nil, err
	}
	if res.testimonials, err = loadTestimonials(testimonialsYAML); err != nil {
		return nil, err
	}

	// newest first, the order of the document breaks ties
	slices.SortStableFunc(res.posts, func(a, b Post) int {
		return b.PublishedAt.Compare(a.PublishedAt)
	})
	res.bySlug = make(map[string]int, len(res.posts))
	for i, p := range res.posts {
		res.bySlug[p.Slug] = i
	}
	return &res, nil
}

// Posts returns all posts, newest first.
func (l *Library) Posts() []Post {
	return slices.Clone(l.posts)
}

// Post returns a post by its slug.
func (l *Library) Post(slug string) (Post, error) {
	i, ok := l.bySlug[slug]
	if !ok {
		return Post{}, PostNotFoundError(slug)
	}
	return l.posts[i], nil
}

// Featured returns up to n newest posts.
func (l *Library) Featured(n int) []Post {
	n = max(0, min(n, len(l.posts)))
	return slices.Clone(l.posts[:n])
}

// Testimonials returns all testimonials in document order.
func (l *Library) Testimonials() []Testimonial {
	return slices.Clone(l.testimonials)
}

type testimonialDoc struct {
	Name     string    `yaml:"name"`
	Location string    `yaml:"location"`
	Rating   int       `yaml:"rating"`
	Date     time.Time `yaml:"date"`
	Review   i18n.Text `yaml:"review"`
}

func loadTestimonials(data []byte) ([]Testimonial, error) {
	var docs []testimonialDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, LoadError("testimonials", err)
	}
	res := make([]Testimonial, len(docs))
	for i, d := range docs {
		res[i] = Testimonial{
			ID:       "testimonial-" + strconv.Itoa(i+1),
			Name:     d.Name,
			Location: d.Location,
			Rating:   max(1, min(d.Rating, 5)),
			Review:   d.Review,
			Date:     d.Date,
		}
	}
	return res, nil
}
