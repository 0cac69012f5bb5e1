package pages

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPageNotFound is returned when a file name has no registry entry.
	ErrPageNotFound = errors.New("page not found in registry")
	// ErrDuplicatePage is returned when two descriptors share a file name.
	ErrDuplicatePage = errors.New("duplicate page file name")
)

// PageDescriptor describes one help page.
type PageDescriptor struct {
	ShortTitle string `yaml:"short_title" koanf:"short_title" json:"short_title"` // Menu and breadcrumb label.
	LongTitle  string `yaml:"long_title" koanf:"long_title" json:"long_title"`    // Document title and main heading.
	FileName   string `yaml:"file" koanf:"file" json:"file"`                      // Path relative to the help root.
}

// Registry is an ordered, read-only list of help pages. Order determines
// menu order.
type Registry struct {
	pages  []PageDescriptor
	byFile map[string]int
}

// NewRegistry builds a registry from descs, rejecting empty and duplicate
// file names.
func NewRegistry(descs ...PageDescriptor) (*Registry, error) {
	r := &Registry{
		pages:  make([]PageDescriptor, 0, len(descs)),
		byFile: make(map[string]int, len(descs)),
	}
	for i, d := range descs {
		d.FileName = strings.TrimSpace(d.FileName)
		if d.FileName == "" {
			return nil, fmt.Errorf("page %d (%q): file name is required", i, d.ShortTitle)
		}
		if prev, ok := r.byFile[d.FileName]; ok {
			return nil, fmt.Errorf("%w: %s (entries %d and %d)", ErrDuplicatePage, d.FileName, prev, i)
		}
		r.byFile[d.FileName] = len(r.pages)
		r.pages = append(r.pages, d)
	}
	return r, nil
}

// DefaultPages are the pages shipped with the OpenVDB for Cinema 4D help.
var DefaultPages = []PageDescriptor{
	{ShortTitle: "Home", LongTitle: "OpenVDB for Cinema 4D", FileName: "index.html"},
	{ShortTitle: "VDB Primitive Object", LongTitle: "VDB Primitive Object", FileName: "OC4DOPENVDBPRIMITIVE.html"},
	{ShortTitle: "VDB Visualizer Object", LongTitle: "VDB Visualizer Object", FileName: "OC4DOPENVDBVISUALIZER.html"},
}

// Default returns a registry holding DefaultPages.
func Default() *Registry {
	r, err := NewRegistry(DefaultPages...)
	if err != nil {
		panic("pages: invalid default registry: " + err.Error())
	}
	return r
}

// All returns a copy of the pages in registry order.
func (r *Registry) All() []PageDescriptor {
	out := make([]PageDescriptor, len(r.pages))
	copy(out, r.pages)
	return out
}

// Len returns the number of registered pages.
func (r *Registry) Len() int { return len(r.pages) }

// Lookup returns the page registered under fileName.
func (r *Registry) Lookup(fileName string) (PageDescriptor, error) {
	if i, ok := r.byFile[fileName]; ok {
		return r.pages[i], nil
	}
	return PageDescriptor{}, fmt.Errorf("%w: %s", ErrPageNotFound, fileName)
}

// Contains reports whether fileName is registered.
func (r *Registry) Contains(fileName string) bool {
	_, ok := r.byFile[fileName]
	return ok
}
