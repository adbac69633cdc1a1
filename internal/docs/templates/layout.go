package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/navigation"
	"github.com/F2fX4553/sibnav5-pro/internal/docs/router"
)

const (
	// ContentID is the element whose contents are replaced on navigation.
	ContentID = "page-content"
	// NavID is the sidebar element refreshed out of band after each navigation.
	NavID = "site-nav"
	// TOCID is the table of contents element refreshed out of band.
	TOCID = "page-toc"

	htmxScript = "https://unpkg.com/htmx.org@1.9.12"
)

// LayoutData is the view model shared by the full page and the fragment response.
type LayoutData struct {
	SiteTitle   string
	Lang        string
	BasePath    string
	Environment string
	View        router.View
	// Static renders plain links without htmx attributes, for exported sites.
	Static bool
}

// DocumentTitle returns the <title> text for the current view.
func (d LayoutData) DocumentTitle() string {
	title := strings.TrimSpace(d.View.Title)
	site := strings.TrimSpace(d.SiteTitle)
	switch {
	case title == "":
		return site
	case site == "":
		return title
	}
	return title + " | " + site
}

func (d LayoutData) assetHref(name string) string {
	return navigation.JoinBasePath(d.BasePath, "public/static/"+name)
}

// Page renders the complete HTML document for the view.
func Page(data LayoutData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		lang := data.Lang
		if lang == "" {
			lang = "en"
		}

		h.raw("<!DOCTYPE html>\n<html")
		h.attr("lang", lang)
		h.raw(">\n<head>\n<meta charset=\"UTF-8\">\n")
		h.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
		h.raw("<title>")
		h.text(data.DocumentTitle())
		h.raw("</title>\n<link rel=\"stylesheet\"")
		h.attr("href", data.assetHref("style.css"))
		h.raw(">\n")
		if ld := breadcrumbJSONLD(data); ld != "" {
			h.raw("<script type=\"application/ld+json\">", ld, "</script>\n")
		}
		if !data.Static {
			h.raw("<script defer")
			h.attr("src", htmxScript)
			h.raw("></script>\n<script defer")
			h.attr("src", data.assetHref("docs.js"))
			h.raw("></script>\n")
		}
		h.raw("</head>\n<body")
		if !data.Static {
			h.attr("hx-boost", "false")
		}
		h.raw(">\n")

		h.raw("<header class=\"navbar\">\n<a class=\"brand\"")
		h.attr("href", navigation.JoinBasePath(data.BasePath, "/"))
		h.raw("><span aria-hidden=\"true\">⚡</span> ")
		h.text(data.SiteTitle)
		h.raw("</a>\n")
		h.component(ctx, EnvironmentBadge(data.Environment))
		h.raw("</header>\n")

		h.raw("<div class=\"main-container\">\n<aside class=\"sidebar\">\n")
		h.component(ctx, Sidebar(data.View.Menu, SidebarOptions{Static: data.Static}))
		h.raw("</aside>\n<main")
		h.attr("id", ContentID)
		h.raw(" class=\"content\">\n")
		h.component(ctx, Content(data.View, data.Static))
		h.raw("</main>\n")
		h.component(ctx, TOC(data.View.TOC, false))
		h.raw("</div>\n</body>\n</html>\n")
		return h.err
	})
}

// Fragment renders the container body for htmx swaps followed by out-of-band
// replacements of the sidebar and table of contents.
func Fragment(data LayoutData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<title>")
		h.text(data.DocumentTitle())
		h.raw("</title>\n")
		h.component(ctx, Content(data.View, false))
		h.component(ctx, Sidebar(data.View.Menu, SidebarOptions{OutOfBand: true}))
		h.component(ctx, TOC(data.View.TOC, true))
		return h.err
	})
}

// EnvironmentBadge labels non-production deployments.
func EnvironmentBadge(env string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		env = strings.ToLower(strings.TrimSpace(env))
		if env == "" || env == "production" || env == "prod" {
			return nil
		}
		h := &htmlWriter{w: w}
		h.raw("<span class=\"env-badge\"")
		h.attr("data-environment", env)
		h.raw(">")
		h.text(strings.ToUpper(env))
		h.raw("</span>\n")
		return h.err
	})
}
