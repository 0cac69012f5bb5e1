package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/helpnav/internal/nav"
)

// shellData holds the data passed to the page shell template.
type shellData struct {
	ProjectName string
	Content     template.HTML
	BasePath    string
}

// markdownConverter turns markdown help pages into full help documents.
type markdownConverter struct {
	md          goldmark.Markdown
	tmpl        *template.Template
	projectName string
}

func newMarkdownConverter(projectName string) (*markdownConverter, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	return &markdownConverter{md: md, tmpl: tmpl, projectName: projectName}, nil
}

// Convert renders src into the page shell. The first H1 is removed because
// the shell's main heading carries the page title, and every H2 with an id
// is marked as a section.
func (c *markdownConverter) Convert(src []byte, basePath string) (*goquery.Document, error) {
	var body bytes.Buffer
	if err := c.md.Convert(src, &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	var page bytes.Buffer
	err := c.tmpl.Execute(&page, shellData{
		ProjectName: c.projectName,
		Content:     template.HTML(body.String()),
		BasePath:    basePath,
	})
	if err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}

	doc, err := nav.Parse(&page)
	if err != nil {
		return nil, err
	}

	content := doc.Find("article.page-content")
	content.Find("h1").First().Remove()
	content.Find("h2[id]").AddClass("section")
	return doc, nil
}
