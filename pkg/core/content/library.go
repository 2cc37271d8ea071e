// Package content loads the static FAQ/reference articles served alongside
// the calculator. Articles are markdown files rendered to HTML once at load;
// the library is read-only afterwards.
package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
)

// Anchor is one linkable heading inside a rendered article, for the UI's
// section index.
type Anchor struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// Article is one rendered reference document.
type Article struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	HTML    string   `json:"html"`
	Anchors []Anchor `json:"anchors"`
}

// Library holds all loaded articles in filename order.
type Library struct {
	mu       sync.RWMutex
	articles []Article
}

var renderer = goldmark.New(
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// LoadFromDirectory reads every .md file under dir (non-recursive, filename
// order) and renders it. A missing directory yields an empty library rather
// than an error, so the API still serves with no content bundle installed.
func LoadFromDirectory(dir string) (*Library, error) {
	lib := &Library{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("[CONTENT] No article directory at %s, serving empty library\n", dir)
			return lib, nil
		}
		return nil, fmt.Errorf("failed to read content directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		art, err := render(strings.TrimSuffix(name, ".md"), data)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", name, err)
		}
		lib.articles = append(lib.articles, art)
	}

	fmt.Printf("[CONTENT] Loaded %d articles from %s\n", len(lib.articles), dir)
	return lib, nil
}

// render converts one markdown source into an Article, pulling the heading
// anchors back out of the rendered HTML.
func render(slug string, markdown []byte) (Article, error) {
	var buf bytes.Buffer
	if err := renderer.Convert(markdown, &buf); err != nil {
		return Article{}, err
	}
	html := buf.String()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Article{}, err
	}

	art := Article{Slug: slug, Title: slug, HTML: html}
	doc.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		level := 1
		switch goquery.NodeName(sel) {
		case "h2":
			level = 2
		case "h3":
			level = 3
		}
		text := strings.TrimSpace(sel.Text())
		if level == 1 && art.Title == slug {
			art.Title = text
		}
		if id, ok := sel.Attr("id"); ok {
			art.Anchors = append(art.Anchors, Anchor{ID: id, Text: text, Level: level})
		}
	})

	return art, nil
}

// Articles returns all articles in load order.
func (l *Library) Articles() []Article {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Article, len(l.articles))
	copy(out, l.articles)
	return out
}

// Get finds an article by slug.
func (l *Library) Get(slug string) (Article, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, a := range l.articles {
		if a.Slug == slug {
			return a, true
		}
	}
	return Article{}, false
}

// Count reports how many articles are loaded.
func (l *Library) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.articles)
}
