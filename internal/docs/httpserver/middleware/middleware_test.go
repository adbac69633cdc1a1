package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTMXMiddleware(t *testing.T) {
	var got HTMXInfo
	handler := HTMX()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = HTMXInfoFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("plain request", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/docs/home", nil))
		if got.IsHTMX || got.WantsFragment() {
			t.Fatalf("expected non-htmx request, got %+v", got)
		}
		if rr.Header().Get("Vary") != "HX-Request" {
			t.Fatalf("expected Vary: HX-Request, got %q", rr.Header().Get("Vary"))
		}
	})

	t.Run("htmx navigation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/docs/protocol", nil)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Target", "page-content")
		req.Header.Set("HX-Trigger", "nav-protocol")
		handler.ServeHTTP(httptest.NewRecorder(), req)
		if !got.WantsFragment() {
			t.Fatalf("expected fragment request, got %+v", got)
		}
		if got.Target != "page-content" || got.TriggerID != "nav-protocol" {
			t.Fatalf("unexpected header capture: %+v", got)
		}
	})

	t.Run("history restore wants full page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/docs/protocol", nil)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-History-Restore-Request", "true")
		handler.ServeHTTP(httptest.NewRecorder(), req)
		if !got.IsHTMX || got.WantsFragment() {
			t.Fatalf("history restore must render the full page, got %+v", got)
		}
	})
}

func TestRequestInfoMiddleware(t *testing.T) {
	var info *RequestInfo
	var base, env string
	handler := RequestInfoMiddleware("site", "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, _ = RequestInfoFromContext(r.Context())
		base = BasePathFromContext(r.Context())
		env = EnvironmentFromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/site/docs/home", nil))

	if info == nil || info.Path != "/site/docs/home" {
		t.Fatalf("unexpected request info: %+v", info)
	}
	if base != "/site/" {
		t.Fatalf("expected base /site/, got %s", base)
	}
	if env != "local" {
		t.Fatalf("expected local environment, got %s", env)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := BasePathFromContext(req.Context()); got != "/" {
		t.Fatalf("expected default base /, got %s", got)
	}
	if got := EnvironmentFromContext(req.Context()); got != "local" {
		t.Fatalf("expected default environment, got %s", got)
	}
}
