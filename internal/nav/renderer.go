// Package nav renders help-site navigation into parsed HTML documents: the
// sidebar menu, the breadcrumb link, the document title and the in-page
// section index.
package nav

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/helpnav/internal/pages"
)

// DefaultActiveClass marks the menu item of the current page.
const DefaultActiveClass = "uk-active"

// Selectors locate the elements the renderer reads and writes.
type Selectors struct {
	Nav        string `yaml:"nav" koanf:"nav"`               // List receiving one item per registered page.
	Breadcrumb string `yaml:"breadcrumb" koanf:"breadcrumb"` // List receiving the current page link.
	Index      string `yaml:"index" koanf:"index"`           // List receiving the section links.
	Section    string `yaml:"section" koanf:"section"`       // Elements listed in the in-page index.
	Title      string `yaml:"title" koanf:"title"`           // Elements whose text becomes the long title.
}

// DefaultSelectors returns the selectors used by the stock help pages.
func DefaultSelectors() Selectors {
	return Selectors{
		Nav:        "ul.uk-nav",
		Breadcrumb: "#top",
		Index:      "#inpage",
		Section:    ".section",
		Title:      "title, #mainTitle",
	}
}

// Validate compiles every non-empty selector. A selector that does not
// parse would otherwise match nothing and silently drop its fragment.
func (s Selectors) Validate() error {
	fields := []struct{ name, sel string }{
		{"nav", s.Nav},
		{"breadcrumb", s.Breadcrumb},
		{"index", s.Index},
		{"section", s.Section},
		{"title", s.Title},
	}
	for _, f := range fields {
		if f.sel == "" {
			continue
		}
		if _, err := cascadia.Compile(f.sel); err != nil {
			return fmt.Errorf("invalid %s selector %q: %w", f.name, f.sel, err)
		}
	}
	return nil
}

// withDefaults fills empty selectors from DefaultSelectors.
func (s Selectors) withDefaults() Selectors {
	d := DefaultSelectors()
	if s.Nav == "" {
		s.Nav = d.Nav
	}
	if s.Breadcrumb == "" {
		s.Breadcrumb = d.Breadcrumb
	}
	if s.Index == "" {
		s.Index = d.Index
	}
	if s.Section == "" {
		s.Section = d.Section
	}
	if s.Title == "" {
		s.Title = d.Title
	}
	return s
}

// Renderer writes navigation for a page registry into help documents.
type Renderer struct {
	registry    *pages.Registry
	selectors   Selectors
	activeClass string
	policy      *bluemonday.Policy
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSelectors overrides the element selectors. Empty fields keep their defaults.
func WithSelectors(s Selectors) Option {
	return func(r *Renderer) { r.selectors = s.withDefaults() }
}

// WithActiveClass overrides the class set on the current page's menu item.
func WithActiveClass(class string) Option {
	return func(r *Renderer) {
		if class != "" {
			r.activeClass = class
		}
	}
}

// NewRenderer creates a Renderer for reg.
func NewRenderer(reg *pages.Registry, opts ...Option) *Renderer {
	r := &Renderer{
		registry:    reg,
		selectors:   DefaultSelectors(),
		activeClass: DefaultActiveClass,
		policy:      linkTextPolicy(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// linkTextPolicy keeps inline formatting of section headings and drops
// everything else, nested anchors included.
func linkTextPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "code", "span", "small", "sub", "sup")
	return p
}

// Result summarises one Render call.
type Result struct {
	Page            pages.PageDescriptor // Matched page; zero when Matched is false.
	Matched         bool
	NavItems        int
	Sections        int
	SkippedSections int // Section elements without an id.
}

// Render appends the navigation for the page named current to doc.
// basePath prefixes registry links so pages below the help root resolve
// them, e.g. "../".
//
// When current is not registered the menu and section index are still
// rendered, the title elements are emptied, no breadcrumb is added and the
// returned error wraps pages.ErrPageNotFound.
//
// Render appends on every call; rendering the same document twice
// duplicates its items.
func (r *Renderer) Render(doc *goquery.Document, current, basePath string) (Result, error) {
	var res Result
	page, lookupErr := r.registry.Lookup(current)
	if lookupErr == nil {
		res.Page = page
		res.Matched = true
	}

	menu := doc.Find(r.selectors.Nav)
	for _, p := range r.registry.All() {
		class := ""
		if res.Matched && p.FileName == page.FileName {
			class = r.activeClass
		}
		menu.AppendHtml(listItem(basePath+p.FileName, html.EscapeString(p.ShortTitle), class))
		if menu.Length() > 0 {
			res.NavItems++
		}
	}

	doc.Find(r.selectors.Title).SetText(page.LongTitle)

	if res.Matched {
		doc.Find(r.selectors.Breadcrumb).AppendHtml(listItem(basePath+page.FileName, html.EscapeString(page.ShortTitle), ""))
	}

	index := doc.Find(r.selectors.Index)
	doc.Find(r.selectors.Section).Each(func(_ int, s *goquery.Selection) {
		id, ok := s.Attr("id")
		if !ok || strings.TrimSpace(id) == "" {
			res.SkippedSections++
			return
		}
		inner, err := s.Html()
		if err != nil {
			res.SkippedSections++
			return
		}
		index.AppendHtml(listItem("#"+id, r.policy.Sanitize(inner), ""))
		res.Sections++
	})

	if lookupErr != nil {
		return res, lookupErr
	}
	return res, nil
}

// listItem builds <li><a href="href">inner</a></li>. inner must already be
// safe HTML.
func listItem(href, inner, class string) string {
	var b strings.Builder
	b.WriteString("<li")
	if class != "" {
		fmt.Fprintf(&b, ` class="%s"`, html.EscapeString(class))
	}
	fmt.Fprintf(&b, `><a href="%s">%s</a></li>`, html.EscapeString(href), inner)
	return b.String()
}

// Selectors returns the selectors in use.
func (r *Renderer) Selectors() Selectors { return r.selectors }

// Registry returns the page registry the renderer draws from.
func (r *Renderer) Registry() *pages.Registry { return r.registry }
