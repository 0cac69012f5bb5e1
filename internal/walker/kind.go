package walker

import (
	"path/filepath"
	"strings"
)

// Kind classifies a file in the help directory.
type Kind int

const (
	// KindAsset files are copied verbatim.
	KindAsset Kind = iota
	// KindHTML pages receive rendered navigation.
	KindHTML
	// KindMarkdown pages are converted to HTML before rendering.
	KindMarkdown
)

func (k Kind) String() string {
	switch k {
	case KindHTML:
		return "html"
	case KindMarkdown:
		return "markdown"
	default:
		return "asset"
	}
}

// DetectKind returns the Kind for a file name based on its extension.
func DetectKind(name string) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return KindHTML
	case ".md", ".markdown":
		return KindMarkdown
	default:
		return KindAsset
	}
}

// IsPage reports whether files of this kind are rendered as help pages.
func (k Kind) IsPage() bool {
	return k == KindHTML || k == KindMarkdown
}
