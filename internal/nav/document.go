package nav

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/net/html"
)

// DefaultStripScripts matches the client-side navigation script that
// pre-rendered pages no longer need.
var DefaultStripScripts = []string{"**/help.js"}

// curFilePattern matches the `var curFile = "page.html";` declaration help
// pages carry for the client-side script.
var curFilePattern = regexp.MustCompile(`\bcurFile\s*=\s*["']([^"']+)["']`)

// Parse reads an HTML document.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return doc, nil
}

// Write serialises doc, doctype included.
func Write(w io.Writer, doc *goquery.Document) error {
	if len(doc.Nodes) == 0 {
		return nil
	}
	return html.Render(w, doc.Nodes[0])
}

// Bytes serialises doc into a byte slice.
func Bytes(doc *goquery.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CurrentPage returns the file name declared by the page's curFile inline
// script, if any.
func CurrentPage(doc *goquery.Document) (string, bool) {
	var name string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if _, hasSrc := s.Attr("src"); hasSrc {
			return true
		}
		if m := curFilePattern.FindStringSubmatch(s.Text()); m != nil {
			name = m[1]
			return false
		}
		return true
	})
	return name, name != ""
}

// StripScripts removes external scripts whose src matches any of patterns
// and returns how many were removed. A pattern also matches the src base
// name.
func StripScripts(doc *goquery.Document, patterns []string) int {
	if len(patterns) == 0 {
		return 0
	}
	removed := 0
	doc.Find("script[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if matchesScript(src, patterns) {
			s.Remove()
			removed++
		}
	})
	return removed
}

func matchesScript(src string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, src); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(p, path.Base(src)); err == nil && ok {
			return true
		}
	}
	return false
}
