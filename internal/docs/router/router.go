// Package router resolves page identifiers into renderable views: the content
// fragment for the page container plus the navigation state that goes with it.
package router

import (
	"strings"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/navigation"
	"github.com/F2fX4553/sibnav5-pro/internal/docs/pages"
)

// DefaultPage is the page shown before any navigation happens.
const DefaultPage = pages.HomeID

// FallbackFragment replaces the content of unknown pages.
const FallbackFragment = "<h1>404 Not Found</h1><p>Documentation in progress...</p>"

// FallbackTitle is the title used for unknown pages.
const FallbackTitle = "Not Found"

// View is everything needed to render one navigation state.
type View struct {
	PageID  string
	Found   bool
	Title   string
	Content string
	Menu    navigation.Menu
	TOC     []Heading
	Prev    *navigation.Entry
	Next    *navigation.Entry
}

// Router maps page identifiers to views. It holds no mutable state and is safe for
// concurrent use.
type Router struct {
	registry    *pages.Registry
	menu        navigation.Menu
	defaultPage string
}

// Option customises a Router.
type Option func(*Router)

// WithDefaultPage overrides the page returned by Initial.
func WithDefaultPage(id string) Option {
	return func(r *Router) {
		if id = strings.TrimSpace(id); id != "" {
			r.defaultPage = id
		}
	}
}

// New constructs a router over reg with links rooted at basePath.
func New(reg *pages.Registry, basePath string, opts ...Option) *Router {
	r := &Router{
		registry:    reg,
		menu:        navigation.Build(reg, basePath),
		defaultPage: DefaultPage,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Load resolves id. Unknown identifiers produce the fallback view with no active entry.
func (r *Router) Load(id string) View {
	page, ok := r.registry.Lookup(id)
	if !ok {
		return View{
			PageID:  id,
			Title:   FallbackTitle,
			Content: FallbackFragment,
			Menu:    r.menu.WithActive(""),
		}
	}

	view := View{
		PageID:  page.ID,
		Found:   true,
		Title:   page.Title,
		Content: page.Fragment,
		Menu:    r.menu.WithActive(page.ID),
		TOC:     ExtractTOC(page.Fragment),
	}
	view.Prev, view.Next = view.Menu.Neighbours(page.ID)
	return view
}

// Initial returns the view shown on first load.
func (r *Router) Initial() View {
	return r.Load(r.defaultPage)
}

// DefaultPageID reports the identifier Initial resolves.
func (r *Router) DefaultPageID() string {
	return r.defaultPage
}

// Registry exposes the page registry backing the router.
func (r *Router) Registry() *pages.Registry {
	return r.registry
}

// Menu returns the navigation menu with no entry active.
func (r *Router) Menu() navigation.Menu {
	return r.menu.WithActive("")
}
