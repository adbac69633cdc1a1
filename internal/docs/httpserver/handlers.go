package httpserver

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	custommw "github.com/F2fX4553/sibnav5-pro/internal/docs/httpserver/middleware"
	"github.com/F2fX4553/sibnav5-pro/internal/docs/navigation"
	"github.com/F2fX4553/sibnav5-pro/internal/docs/router"
	"github.com/F2fX4553/sibnav5-pro/internal/docs/templates"
	"github.com/F2fX4553/sibnav5-pro/internal/platform/observability"
	"github.com/F2fX4553/sibnav5-pro/internal/platform/requestctx"
)

// Dependencies collects what the documentation handlers need to render pages.
type Dependencies struct {
	Router    *router.Router
	Metrics   *observability.PageMetrics
	BasePath  string
	SiteTitle string
	Lang      string
}

// Handlers exposes the page and fragment endpoints.
type Handlers struct {
	router    *router.Router
	metrics   *observability.PageMetrics
	basePath  string
	siteTitle string
	lang      string
}

// NewHandlers wires the handler set.
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		router:    deps.Router,
		metrics:   deps.Metrics,
		basePath:  normalizeBasePath(deps.BasePath),
		siteTitle: deps.SiteTitle,
		lang:      deps.Lang,
	}
}

// Index renders the default page.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.router.Initial())
}

// DocsRoot redirects /docs to the default page.
func (h *Handlers) DocsRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, navigation.PageHref(h.basePath, h.router.DefaultPageID()), http.StatusFound)
}

// Page renders the page named in the URL. htmx requests receive the content
// fragment with out-of-band navigation; everything else gets the full document.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.router.Load(chi.URLParam(r, "pageID")))
}

// NotFound renders the fallback view for paths outside the page routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.router.Load(""))
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, view router.View) {
	ctx := r.Context()
	fragment := custommw.HTMXInfoFromContext(ctx).WantsFragment()

	data := templates.LayoutData{
		SiteTitle:   h.siteTitle,
		Lang:        h.lang,
		BasePath:    h.basePath,
		Environment: custommw.EnvironmentFromContext(ctx),
		View:        view,
	}

	status := http.StatusOK
	var component templ.Component
	if fragment {
		// htmx only swaps successful responses, so misses still answer 200
		component = templates.Fragment(data)
	} else {
		component = templates.Page(data)
		if !view.Found {
			status = http.StatusNotFound
		}
	}

	h.metrics.RecordView(ctx, view.PageID, view.Found, fragment)

	templ.Handler(component,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requestctx.Logger(r.Context()).Error("render page",
					zap.String("page", observability.SanitizePageID(view.PageID)),
					zap.Bool("fragment", fragment),
					zap.Error(err),
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}
