package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/router"
)

// TOC renders the "On this page" aside. The element is always emitted so an
// out-of-band swap can clear it.
func TOC(headings []router.Heading, oob bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<aside")
		h.attr("id", TOCID)
		h.attr("class", "toc")
		if oob {
			h.attr("hx-swap-oob", "true")
		}
		h.raw(">\n")
		if len(headings) > 0 {
			h.raw("<div class=\"toc-title\">On this page</div>\n<ul>\n")
			for _, heading := range headings {
				h.raw("<li")
				h.attr("class", "toc-level-"+strconv.Itoa(heading.Level))
				h.raw(">")
				if heading.Anchor != "" {
					h.raw("<a")
					h.attr("href", "#"+heading.Anchor)
					h.raw(">")
					h.text(heading.Text)
					h.raw("</a>")
				} else {
					h.text(heading.Text)
				}
				h.raw("</li>\n")
			}
			h.raw("</ul>\n")
		}
		h.raw("</aside>\n")
		return h.err
	})
}
