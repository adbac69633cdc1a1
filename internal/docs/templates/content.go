package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/navigation"
	"github.com/F2fX4553/sibnav5-pro/internal/docs/router"
)

// Content renders the body of the content container: the page fragment verbatim,
// followed by previous/next links when the page has neighbours.
func Content(view router.View, static bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<article class=\"page\"")
		h.attr("data-page", view.PageID)
		if !view.Found {
			h.attr("data-missing", "true")
		}
		h.raw(">\n")
		h.raw(view.Content)
		h.raw("\n</article>\n")
		if view.Prev != nil || view.Next != nil {
			h.raw("<footer class=\"docs-footer\">\n")
			pagerLink(h, view.Prev, "nav-prev", "← ", "", static)
			pagerLink(h, view.Next, "nav-next", "", " →", static)
			h.raw("</footer>\n")
		}
		return h.err
	})
}

func pagerLink(h *htmlWriter, entry *navigation.Entry, class, before, after string, static bool) {
	if entry == nil {
		return
	}
	h.raw("<a")
	h.attr("class", classes("pager", class))
	navLink(h, entry.Href, static)
	h.raw(">", before)
	h.text(entry.Label)
	h.raw(after, "</a>\n")
}
