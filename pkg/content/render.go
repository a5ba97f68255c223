package content

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/namenest/namenest/pkg/i18n"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// WordsPerMinute is the reading speed used for ReadTime.
const WordsPerMinute = 200

var (
	markdown   = goldmark.New(goldmark.WithExtensions(extension.GFM))
	htmlPolicy = newHTMLPolicy()
)

func newHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	return policy
}

type blogDoc struct {
	Author  string    `yaml:"author"`
	Tags    []string  `yaml:"tags"`
	Related []string  `yaml:"related"`
	Posts   []postDoc `yaml:"posts"`
}

type postDoc struct {
	Slug      string    `yaml:"slug"`
	Published time.Time `yaml:"published"`
	Tags      []string  `yaml:"tags"`
	Related   []string  `yaml:"related"`
	Title     i18n.Text `yaml:"title"`
}

type bodyData struct {
	Title      string
	TitleLower string
	Related    []string
}

func loadPosts(data []byte) ([]Post, error) {
	var doc blogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, LoadError("blog", err)
	}
	tmplEN, err := bodyTemplate("body_en.md")
	if err != nil {
		return nil, err
	}
	tmplHI, err := bodyTemplate("body_hi.md")
	if err != nil {
		return nil, err
	}

	res := make([]Post, 0, len(doc.Posts))
	for i, p := range doc.Posts {
		related := p.Related
		if len(related) == 0 {
			related = doc.Related
		}
		en, err := renderBody(tmplEN, p.Title.EN, related)
		if err != nil {
			return nil, LoadError(p.Slug, err)
		}
		hi, err := renderBody(tmplHI, p.Title.Get(i18n.HI), related)
		if err != nil {
			return nil, LoadError(p.Slug, err)
		}

		res = append(res, Post{
			ID:           "blog-" + strconv.Itoa(i+1),
			Slug:         p.Slug,
			Title:        p.Title,
			Description:  description(p.Title),
			Content:      i18n.Text{EN: en, HI: hi},
			Author:       doc.Author,
			PublishedAt:  p.Published,
			ReadTime:     ReadTime(en),
			Tags:         append(append([]string{}, doc.Tags...), p.Tags...),
			RelatedNames: related,
		})
	}
	return res, nil
}

func bodyTemplate(name string) (*template.Template, error) {
	src, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return nil, LoadError(name, err)
	}
	res, err := template.New(name).Parse(string(src))
	if err != nil {
		return nil, LoadError(name, err)
	}
	return res, nil
}

func renderBody(tmpl *template.Template, title string, related []string) (string, error) {
	data := bodyData{
		Title:      title,
		TitleLower: strings.ToLower(title),
		Related:    make([]string, len(related)),
	}
	titleCase := cases.Title(language.English)
	for i, slug := range related {
		data.Related[i] = titleCase.String(strings.ReplaceAll(slug, "-", " "))
	}

	var md bytes.Buffer
	if err := tmpl.Execute(&md, data); err != nil {
		return "", err
	}
	return Render(md.Bytes())
}

// Render converts markdown to sanitized HTML.
func Render(md []byte) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(md, &buf); err != nil {
		return "", fmt.Errorf("cannot render markdown: %w", err)
	}
	return strings.TrimSpace(htmlPolicy.Sanitize(buf.String())), nil
}

// PlainText returns the text content of an HTML fragment.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// ReadTime estimates reading time of an HTML fragment in minutes.
// The result is at least 1.
func ReadTime(html string) int {
	words := len(strings.Fields(PlainText(html)))
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	return max(1, minutes)
}

func description(title i18n.Text) i18n.Text {
	return i18n.Text{
		EN: fmt.Sprintf("Explore our guide on %s. Discover meanings, "+
			"cultural significance, and find the perfect name for your "+
			"child on NameNest.", strings.ToLower(title.EN)),
		HI: title.Get(i18n.HI) + " पर हमारी गाइड देखें। अर्थ, सांस्कृतिक " +
			"महत्व की खोज करें, और नेमनेस्ट पर अपने बच्चे के लिए सही नाम खोजें।",
	}
}
