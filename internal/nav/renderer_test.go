package nav

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/helpnav/internal/pages"
)

const primitivePage = `<!DOCTYPE html>
<html>
<head>
<title>placeholder</title>
<script src="js/jquery.min.js"></script>
<script>var curFile = "OC4DOPENVDBPRIMITIVE.html";</script>
<script src="js/help.js"></script>
</head>
<body>
<ul class="uk-nav"></ul>
<ul id="top"></ul>
<h1 id="mainTitle"></h1>
<ul id="inpage"></ul>
<h2 class="section" id="s1">Overview</h2>
<p>The primitive object creates simple volumes.</p>
<h2 class="section" id="s2">Voxel <em>Size</em></h2>
<h2 class="section" id="s3">Half <a href="#width">Width</a></h2>
</body>
</html>`

// parseHTML parses src into a goquery document for assertions.
func parseHTML(t *testing.T, src string) *goquery.Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestRenderMarksExactlyOneActiveItem(t *testing.T) {
	tests := []struct {
		current    string
		wantActive int
	}{
		{"index.html", 1},
		{"OC4DOPENVDBPRIMITIVE.html", 1},
		{"OC4DOPENVDBVISUALIZER.html", 1},
		{"missing.html", 0},
		{"", 0},
	}
	for _, tt := range tests {
		doc := parseHTML(t, primitivePage)
		_, _ = NewRenderer(pages.Default()).Render(doc, tt.current, "")

		items := doc.Find("ul.uk-nav li")
		if items.Length() != 3 {
			t.Errorf("%q: nav items = %d, want 3", tt.current, items.Length())
		}
		active := doc.Find("ul.uk-nav li.uk-active")
		if active.Length() != tt.wantActive {
			t.Errorf("%q: active items = %d, want %d", tt.current, active.Length(), tt.wantActive)
			continue
		}
		if tt.wantActive == 1 {
			if href, _ := active.Find("a").Attr("href"); href != tt.current {
				t.Errorf("%q: active href = %q", tt.current, href)
			}
		}
	}
}

func TestRenderNavOrder(t *testing.T) {
	doc := parseHTML(t, primitivePage)
	if _, err := NewRenderer(pages.Default()).Render(doc, "index.html", ""); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	want := []string{"Home", "VDB Primitive Object", "VDB Visualizer Object"}
	doc.Find("ul.uk-nav li a").Each(func(i int, s *goquery.Selection) {
		if s.Text() != want[i] {
			t.Errorf("nav item %d = %q, want %q", i, s.Text(), want[i])
		}
	})
}

func TestRenderPrimitivePage(t *testing.T) {
	doc := parseHTML(t, primitivePage)
	res, err := NewRenderer(pages.Default()).Render(doc, "OC4DOPENVDBPRIMITIVE.html", "")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !res.Matched {
		t.Error("Matched = false, want true")
	}

	if got := doc.Find("title").Text(); got != "VDB Primitive Object" {
		t.Errorf("title = %q, want %q", got, "VDB Primitive Object")
	}
	if got := doc.Find("#mainTitle").Text(); got != "VDB Primitive Object" {
		t.Errorf("mainTitle = %q, want %q", got, "VDB Primitive Object")
	}

	crumbs := doc.Find("#top li a")
	if crumbs.Length() != 1 {
		t.Fatalf("breadcrumb links = %d, want 1", crumbs.Length())
	}
	if crumbs.Text() != "VDB Primitive Object" {
		t.Errorf("breadcrumb text = %q", crumbs.Text())
	}
	if href, _ := crumbs.Attr("href"); href != "OC4DOPENVDBPRIMITIVE.html" {
		t.Errorf("breadcrumb href = %q", href)
	}
}

func TestRenderUnknownPage(t *testing.T) {
	doc := parseHTML(t, primitivePage)
	res, err := NewRenderer(pages.Default()).Render(doc, "unknown.html", "")
	if !errors.Is(err, pages.ErrPageNotFound) {
		t.Fatalf("error = %v, want ErrPageNotFound", err)
	}
	if res.Matched {
		t.Error("Matched = true, want false")
	}
	if res.NavItems != 3 {
		t.Errorf("NavItems = %d, want 3", res.NavItems)
	}
	if got := doc.Find("title").Text(); got != "" {
		t.Errorf("title = %q, want empty", got)
	}
	if got := doc.Find("#mainTitle").Text(); got != "" {
		t.Errorf("mainTitle = %q, want empty", got)
	}
	if n := doc.Find("#top li").Length(); n != 0 {
		t.Errorf("breadcrumb items = %d, want 0", n)
	}
	if n := doc.Find("#inpage li").Length(); n != 3 {
		t.Errorf("index items = %d, want 3", n)
	}
}

func TestRenderUnknownPageErrorNamesPageOnce(t *testing.T) {
	doc := parseHTML(t, primitivePage)
	_, err := NewRenderer(pages.Default()).Render(doc, "unknown.html", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if n := strings.Count(err.Error(), "unknown.html"); n != 1 {
		t.Errorf("error %q names the page %d times, want 1", err, n)
	}
}

func TestSelectorsValidate(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selectors
		wantErr bool
	}{
		{"defaults", DefaultSelectors(), false},
		{"empty fields fall back", Selectors{}, false},
		{"group selector", Selectors{Title: "title, h1.page-title"}, false},
		{"unbalanced attribute", Selectors{Nav: "ul[[["}, true},
		{"trailing comma", Selectors{Section: "h2.section,"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenderSectionIndex(t *testing.T) {
	doc := parseHTML(t, primitivePage)
	res, err := NewRenderer(pages.Default()).Render(doc, "OC4DOPENVDBPRIMITIVE.html", "")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if res.Sections != 3 {
		t.Errorf("Sections = %d, want 3", res.Sections)
	}

	links := doc.Find("#inpage li > a")
	if links.Length() != 3 {
		t.Fatalf("index links = %d, want 3", links.Length())
	}
	wantHref := []string{"#s1", "#s2", "#s3"}
	wantText := []string{"Overview", "Voxel Size", "Half Width"}
	links.Each(func(i int, s *goquery.Selection) {
		if href, _ := s.Attr("href"); href != wantHref[i] {
			t.Errorf("link %d href = %q, want %q", i, href, wantHref[i])
		}
		if s.Text() != wantText[i] {
			t.Errorf("link %d text = %q, want %q", i, s.Text(), wantText[i])
		}
	})

	if links.Eq(1).Find("em").Length() != 1 {
		t.Error("inline formatting of section heading should be kept")
	}
	if links.Find("a").Length() != 0 {
		t.Error("nested anchors should be stripped from link text")
	}
}

func TestRenderSkipsSectionsWithoutID(t *testing.T) {
	doc := parseHTML(t, `<html><body><ul id="inpage"></ul>
<div class="section" id="a">A</div><div class="section">B</div><div class="section" id="">C</div></body></html>`)

	res, _ := NewRenderer(pages.Default()).Render(doc, "index.html", "")
	if res.Sections != 1 || res.SkippedSections != 2 {
		t.Errorf("Sections = %d, Skipped = %d, want 1 and 2", res.Sections, res.SkippedSections)
	}
	if n := doc.Find("#inpage li").Length(); n != 1 {
		t.Errorf("index items = %d, want 1", n)
	}
}

func TestRenderNoSections(t *testing.T) {
	doc := parseHTML(t, `<html><body><ul id="inpage"></ul></body></html>`)
	res, err := NewRenderer(pages.Default()).Render(doc, "index.html", "")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if res.Sections != 0 || doc.Find("#inpage li").Length() != 0 {
		t.Error("no index entries expected without sections")
	}
}

func TestRenderTwiceDuplicatesItems(t *testing.T) {
	doc := parseHTML(t, primitivePage)
	r := NewRenderer(pages.Default())
	for i := 0; i < 2; i++ {
		if _, err := r.Render(doc, "index.html", ""); err != nil {
			t.Fatalf("Render %d error: %v", i, err)
		}
	}

	if n := doc.Find("ul.uk-nav li").Length(); n != 6 {
		t.Errorf("nav items = %d, want 6", n)
	}
	if n := doc.Find("#top li").Length(); n != 2 {
		t.Errorf("breadcrumb items = %d, want 2", n)
	}
	if n := doc.Find("#inpage li").Length(); n != 6 {
		t.Errorf("index items = %d, want 6", n)
	}
}

func TestRenderBasePath(t *testing.T) {
	doc := parseHTML(t, primitivePage)
	if _, err := NewRenderer(pages.Default()).Render(doc, "index.html", "../"); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if href, _ := doc.Find("ul.uk-nav li a").First().Attr("href"); href != "../index.html" {
		t.Errorf("nav href = %q, want ../index.html", href)
	}
	if href, _ := doc.Find("#top li a").Attr("href"); href != "../index.html" {
		t.Errorf("breadcrumb href = %q, want ../index.html", href)
	}
	if href, _ := doc.Find("#inpage li a").First().Attr("href"); href != "#s1" {
		t.Errorf("section href = %q, want #s1", href)
	}
}

func TestRenderMissingContainers(t *testing.T) {
	doc := parseHTML(t, `<html><head><title>x</title></head><body><p>bare</p></body></html>`)
	res, err := NewRenderer(pages.Default()).Render(doc, "index.html", "")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if res.NavItems != 0 {
		t.Errorf("NavItems = %d, want 0", res.NavItems)
	}
	if got := doc.Find("title").Text(); got != "OpenVDB for Cinema 4D" {
		t.Errorf("title = %q", got)
	}
	if doc.Find("li").Length() != 0 {
		t.Error("no list items expected without containers")
	}
}

func TestRenderEscapesTitles(t *testing.T) {
	reg, err := pages.NewRegistry(pages.PageDescriptor{
		ShortTitle: `Fog & <Smoke>`,
		LongTitle:  `Fog & "Smoke"`,
		FileName:   "fog.html",
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	doc := parseHTML(t, primitivePage)
	if _, err := NewRenderer(reg).Render(doc, "fog.html", ""); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if got := doc.Find("ul.uk-nav li a").Text(); got != `Fog & <Smoke>` {
		t.Errorf("nav text = %q", got)
	}
	if doc.Find("ul.uk-nav smoke").Length() != 0 {
		t.Error("short title must not be parsed as markup")
	}
	if got := doc.Find("#mainTitle").Text(); got != `Fog & "Smoke"` {
		t.Errorf("mainTitle = %q", got)
	}
}

func TestRenderCustomSelectors(t *testing.T) {
	doc := parseHTML(t, `<html><head><title></title></head><body>
<ol class="menu"></ol><ol class="crumbs"></ol><ol class="toc"></ol>
<h3 class="anchor" id="one">One</h3></body></html>`)

	r := NewRenderer(pages.Default(),
		WithSelectors(Selectors{Nav: "ol.menu", Breadcrumb: "ol.crumbs", Index: "ol.toc", Section: "h3.anchor"}),
		WithActiveClass("current"),
	)
	if _, err := r.Render(doc, "OC4DOPENVDBVISUALIZER.html", ""); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if n := doc.Find("ol.menu li.current").Length(); n != 1 {
		t.Errorf("active items = %d, want 1", n)
	}
	if n := doc.Find("ol.crumbs li").Length(); n != 1 {
		t.Errorf("breadcrumb items = %d, want 1", n)
	}
	if href, _ := doc.Find("ol.toc a").Attr("href"); href != "#one" {
		t.Errorf("toc href = %q, want #one", href)
	}
	if got := doc.Find("title").Text(); got != "VDB Visualizer Object" {
		t.Errorf("title = %q", got)
	}
}
