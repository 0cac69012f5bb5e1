package site

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ziadkadry99/helpnav/internal/pages"
	"github.com/ziadkadry99/helpnav/internal/walker"
)

// ErrPageCollision is returned when two help sources publish the same page,
// such as foo.html and foo.md.
var ErrPageCollision = errors.New("page published by more than one source")

// Collision names a published page and the sources that produce it.
type Collision struct {
	Page    string
	Sources []string
}

func (c Collision) Error() string {
	return fmt.Sprintf("%s: %s both publish %s", ErrPageCollision, strings.Join(c.Sources, " and "), c.Page)
}

func (c Collision) Unwrap() error { return ErrPageCollision }

// findCollisions groups page sources by published name and returns the
// names claimed more than once, in walk order.
func findCollisions(files []walker.FileInfo) []Collision {
	sources := make(map[string][]string)
	var order []string
	for _, f := range files {
		if !f.Kind.IsPage() {
			continue
		}
		name := f.PageName()
		if _, seen := sources[name]; !seen {
			order = append(order, name)
		}
		sources[name] = append(sources[name], f.RelPath)
	}

	var out []Collision
	for _, name := range order {
		if len(sources[name]) > 1 {
			out = append(out, Collision{Page: name, Sources: sources[name]})
		}
	}
	return out
}

// RegistryCheck compares a page registry with the pages of a help directory.
type RegistryCheck struct {
	Missing      []pages.PageDescriptor // Registered pages with no source file.
	Unregistered []string               // Help pages absent from the registry.
	Collisions   []Collision            // Pages produced by more than one source.
}

// OK reports whether every registered page has exactly one source file.
func (c *RegistryCheck) OK() bool { return len(c.Missing) == 0 && len(c.Collisions) == 0 }

// CheckRegistry verifies that every page in reg exists in helpDir, either as
// HTML or as a markdown source, and lists help pages reg does not name.
func CheckRegistry(helpDir string, include, exclude []string, reg *pages.Registry) (*RegistryCheck, error) {
	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: helpDir,
		Include: include,
		Exclude: exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("walking help dir: %w", err)
	}

	present := make(map[string]bool)
	check := &RegistryCheck{Collisions: findCollisions(files)}
	for _, f := range files {
		if !f.Kind.IsPage() {
			continue
		}
		name := f.PageName()
		if present[name] {
			continue
		}
		present[name] = true
		if !reg.Contains(name) {
			check.Unregistered = append(check.Unregistered, name)
		}
	}

	for _, p := range reg.All() {
		if !present[p.FileName] {
			check.Missing = append(check.Missing, p)
		}
	}
	return check, nil
}
