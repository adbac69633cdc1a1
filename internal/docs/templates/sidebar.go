package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/navigation"
)

// SidebarOptions controls how the navigation is rendered.
type SidebarOptions struct {
	// Static omits htmx attributes.
	Static bool
	// OutOfBand marks the nav for an hx-swap-oob replacement.
	OutOfBand bool
}

// Sidebar renders the grouped navigation. The active entry carries class "active"
// and aria-current="page".
func Sidebar(menu navigation.Menu, opts SidebarOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<nav")
		h.attr("id", NavID)
		h.attr("class", "site-nav")
		h.attr("aria-label", "Documentation")
		if opts.OutOfBand {
			h.attr("hx-swap-oob", "true")
		}
		h.raw(">\n")
		for _, group := range menu {
			h.raw("<div class=\"nav-group\"")
			h.attr("data-group", group.Key)
			h.raw(">\n<div class=\"nav-header\">")
			h.text(group.Label)
			h.raw("</div>\n<ul class=\"nav-links\">\n")
			for _, entry := range group.Entries {
				h.raw("<li")
				h.attr("data-page", entry.ID)
				if entry.Active {
					h.attr("class", "active")
				}
				h.raw("><a")
				h.attr("id", "nav-"+entry.ID)
				navLink(h, entry.Href, opts.Static)
				if entry.Active {
					h.attr("aria-current", "page")
				}
				h.raw(">")
				h.text(entry.Label)
				h.raw("</a></li>\n")
			}
			h.raw("</ul>\n</div>\n")
		}
		h.raw("</nav>\n")
		return h.err
	})
}

// navLink writes the href of an in-site link and, unless static, the htmx
// attributes that swap the content container and push the URL.
func navLink(h *htmlWriter, href string, static bool) {
	h.attr("href", href)
	if static {
		return
	}
	h.attr("hx-get", href)
	h.attr("hx-target", "#"+ContentID)
	h.attr("hx-swap", "innerHTML")
	h.attr("hx-push-url", "true")
}
