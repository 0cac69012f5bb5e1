package site

import (
	"encoding/json"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/helpnav/internal/nav"
)

// SearchEntry represents a single searchable page in the help site.
type SearchEntry struct {
	Path     string          `json:"path"`
	Title    string          `json:"title"`
	Summary  string          `json:"summary"`
	Sections []SearchSection `json:"sections,omitempty"`
	Content  string          `json:"content"`
}

// SearchSection is one in-page section of a SearchEntry.
type SearchSection struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// maxSearchContent bounds the text stored per page.
const maxSearchContent = 2000

// buildSearchEntry extracts the searchable text of a rendered page. title
// falls back to the first heading when empty.
func buildSearchEntry(doc *goquery.Document, path, title string, sel nav.Selectors) SearchEntry {
	entry := SearchEntry{Path: path, Title: title}

	if entry.Title == "" {
		entry.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if entry.Title == "" {
		entry.Title = path
	}

	doc.Find(sel.Section).Each(func(_ int, s *goquery.Selection) {
		id, ok := s.Attr("id")
		if !ok || id == "" {
			return
		}
		entry.Sections = append(entry.Sections, SearchSection{ID: id, Title: collapseSpace(s.Text())})
	})

	body := doc.Find("body").Clone()
	body.Find("script, style").Remove()
	body.Find(sel.Nav).Remove()
	body.Find(sel.Breadcrumb).Remove()
	body.Find(sel.Index).Remove()
	if p := body.Find("p").First(); p.Length() > 0 {
		entry.Summary = collapseSpace(p.Text())
	}

	content := collapseSpace(body.Text())
	if len(content) > maxSearchContent {
		n := maxSearchContent
		for n > 0 && !utf8.RuneStart(content[n]) {
			n--
		}
		content = content[:n]
	}
	entry.Content = content

	return entry
}

// collapseSpace joins the fields of s with single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	if entries == nil {
		entries = []SearchEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
