package pages

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Source records where a page fragment came from.
type Source string

const (
	SourceBuiltin  Source = "builtin"
	SourceMarkdown Source = "markdown"
	SourceHTML     Source = "html"
)

var (
	// ErrEmptyID is returned when a page is registered without an identifier.
	ErrEmptyID = errors.New("pages: page id is required")
	// ErrDuplicatePage is returned when two pages share an identifier.
	ErrDuplicatePage = errors.New("pages: duplicate page id")
)

// Page is a single documentation entry. Fragment is displayed verbatim.
type Page struct {
	ID       string
	Title    string
	Group    string
	Order    int
	Fragment string
	Source   Source
}

// Registry is an immutable lookup table from page identifier to page.
type Registry struct {
	pages map[string]Page
}

// New builds a registry from the supplied pages.
func New(pages ...Page) (*Registry, error) {
	reg := &Registry{pages: make(map[string]Page, len(pages))}
	for _, p := range pages {
		id := NormalizeID(p.ID)
		if id == "" {
			return nil, ErrEmptyID
		}
		if _, exists := reg.pages[id]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePage, id)
		}
		p.ID = id
		reg.pages[id] = p
	}
	return reg, nil
}

// Lookup resolves a page by identifier.
func (r *Registry) Lookup(id string) (Page, bool) {
	if r == nil {
		return Page{}, false
	}
	p, ok := r.pages[id]
	return p, ok
}

// Len reports the number of registered pages.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.pages)
}

// IDs returns the registered identifiers in lexical order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, 0, len(r.pages))
	for id := range r.pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Pages returns a copy of every registered page ordered by identifier.
func (r *Registry) Pages() []Page {
	ids := r.IDs()
	out := make([]Page, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.pages[id])
	}
	return out
}

// Merge returns a new registry where overrides replace or extend the receiver's pages.
// The receiver is left untouched.
func (r *Registry) Merge(overrides ...Page) *Registry {
	merged := &Registry{pages: make(map[string]Page, r.Len()+len(overrides))}
	if r != nil {
		for id, p := range r.pages {
			merged.pages[id] = p
		}
	}
	for _, p := range overrides {
		id := NormalizeID(p.ID)
		if id == "" {
			continue
		}
		p.ID = id
		if existing, ok := merged.pages[id]; ok {
			p = inherit(p, existing)
		}
		merged.pages[id] = p
	}
	return merged
}

// inherit fills navigation metadata the override left blank.
func inherit(override, base Page) Page {
	if strings.TrimSpace(override.Title) == "" {
		override.Title = base.Title
	}
	if strings.TrimSpace(override.Group) == "" {
		override.Group = base.Group
	}
	if override.Order == 0 {
		override.Order = base.Order
	}
	return override
}

// NormalizeID trims and lower-cases a page identifier.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
