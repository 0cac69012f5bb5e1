// Package site builds and serves the pre-rendered help site.
package site

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/helpnav/internal/nav"
	"github.com/ziadkadry99/helpnav/internal/pages"
	"github.com/ziadkadry99/helpnav/internal/progress"
	"github.com/ziadkadry99/helpnav/internal/walker"
)

// SiteGenerator renders a help directory into a static site with
// navigation baked into every page.
type SiteGenerator struct {
	HelpDir      string
	OutputDir    string
	ProjectName  string
	Include      []string
	Exclude      []string
	StripScripts []string
	Strict       bool // Fail on pages missing from the registry.
	Renderer     *nav.Renderer
	Reporter     progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator with the given directories.
func NewSiteGenerator(helpDir, outputDir, projectName string, renderer *nav.Renderer) *SiteGenerator {
	return &SiteGenerator{
		HelpDir:      helpDir,
		OutputDir:    outputDir,
		ProjectName:  projectName,
		StripScripts: nav.DefaultStripScripts,
		Renderer:     renderer,
		Reporter:     progress.Nop{},
	}
}

// Report summarises a Generate run.
type Report struct {
	Pages        int
	Assets       int
	Sections     int
	Unregistered []string // Pages rendered without a registry entry.
}

// Generate builds the full site. Pages missing from the registry are
// rendered without title or breadcrumb and listed in the report, or abort
// the build when Strict is set.
func (g *SiteGenerator) Generate() (*Report, error) {
	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: g.HelpDir,
		Include: g.Include,
		Exclude: g.excludes(),
	})
	if err != nil {
		return nil, fmt.Errorf("walking help dir: %w", err)
	}

	var pageCount, markdownCount int
	for _, f := range files {
		if f.Kind.IsPage() {
			pageCount++
		}
		if f.Kind == walker.KindMarkdown {
			markdownCount++
		}
	}
	if pageCount == 0 {
		return nil, fmt.Errorf("no help pages found in %s", g.HelpDir)
	}
	if collisions := findCollisions(files); len(collisions) > 0 {
		return nil, collisions[0]
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}

	converter, err := newMarkdownConverter(g.ProjectName)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	var searchEntries []SearchEntry

	g.Reporter.Start(len(files))
	for i, f := range files {
		g.Reporter.Update(i+1, f.RelPath)

		if !f.Kind.IsPage() {
			if err := copyFile(f.Path, filepath.Join(g.OutputDir, filepath.FromSlash(f.RelPath))); err != nil {
				g.Reporter.Finish()
				return nil, fmt.Errorf("copying %s: %w", f.RelPath, err)
			}
			report.Assets++
			continue
		}

		entry, res, err := g.renderPage(converter, f)
		if errors.Is(err, pages.ErrPageNotFound) && !g.Strict {
			log.Printf("helpnav: %s is not in the page list; rendered without title or breadcrumb", f.PageName())
			report.Unregistered = append(report.Unregistered, f.PageName())
			err = nil
		}
		if err != nil {
			g.Reporter.Finish()
			return nil, fmt.Errorf("rendering %s: %w", f.RelPath, err)
		}
		report.Pages++
		report.Sections += res.Sections
		searchEntries = append(searchEntries, entry)
	}
	g.Reporter.Finish()

	if err := WriteSearchIndex(searchEntries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return nil, fmt.Errorf("writing search index: %w", err)
	}

	if markdownCount > 0 {
		if err := os.WriteFile(filepath.Join(g.OutputDir, "helpnav.css"), []byte(cssContent), 0o644); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// excludes returns the configured excludes plus the output directory when
// it lies inside the help directory.
func (g *SiteGenerator) excludes() []string {
	excl := append([]string(nil), g.Exclude...)
	helpAbs, err1 := filepath.Abs(g.HelpDir)
	outAbs, err2 := filepath.Abs(g.OutputDir)
	if err1 != nil || err2 != nil {
		return excl
	}
	rel, err := filepath.Rel(helpAbs, outAbs)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return excl
	}
	return append(excl, filepath.ToSlash(rel)+"/**")
}

// renderPage renders the navigation into one help page and writes it to
// the output directory. The page is written even when it is not
// registered; the returned error then wraps pages.ErrPageNotFound.
func (g *SiteGenerator) renderPage(converter *markdownConverter, f walker.FileInfo) (SearchEntry, nav.Result, error) {
	pageName := f.PageName()
	basePath := strings.Repeat("../", strings.Count(pageName, "/"))

	src, err := os.ReadFile(f.Path)
	if err != nil {
		return SearchEntry{}, nav.Result{}, err
	}

	var doc *goquery.Document
	if f.Kind == walker.KindMarkdown {
		doc, err = converter.Convert(src, basePath)
	} else {
		doc, err = nav.Parse(bytes.NewReader(src))
	}
	if err != nil {
		return SearchEntry{}, nav.Result{}, err
	}

	current, ok := nav.CurrentPage(doc)
	if !ok {
		current = pageName
	}
	nav.StripScripts(doc, g.StripScripts)

	res, renderErr := g.Renderer.Render(doc, current, basePath)
	if renderErr != nil && !errors.Is(renderErr, pages.ErrPageNotFound) {
		return SearchEntry{}, res, renderErr
	}

	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(pageName))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return SearchEntry{}, res, err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return SearchEntry{}, res, err
	}
	defer out.Close()

	if err := nav.Write(out, doc); err != nil {
		return SearchEntry{}, res, fmt.Errorf("writing %s: %w", outPath, err)
	}

	entry := buildSearchEntry(doc, pageName, res.Page.LongTitle, g.Renderer.Selectors())
	return entry, res, renderErr
}

// copyFile copies src to dst, creating parent directories.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
