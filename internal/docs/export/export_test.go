package export

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/pages"
	"github.com/F2fX4553/sibnav5-pro/internal/docs/router"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newExporter(t *testing.T, reg *pages.Registry, opts ...Option) *Exporter {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	e, err := New(router.New(reg, "/"), Site{Title: "Sibna Protocol Docs", Lang: "en", BasePath: "/"}, opts...)
	require.NoError(t, err)
	return e
}

func readDoc(t *testing.T, path string) (string, *goquery.Document) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	return string(data), doc
}

func TestBuildWritesEveryPage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	reg := pages.Builtin()
	manifest, err := newExporter(t, reg).Build(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, manifest.Pages, reg.Len())
	require.Equal(t, fixedNow, manifest.GeneratedAt)
	require.Equal(t, pages.HomeID, manifest.DefaultPage)

	id, err := ulid.ParseStrict(manifest.BuildID)
	require.NoError(t, err)
	require.Equal(t, ulid.Timestamp(fixedNow), id.Time())

	for _, page := range reg.Pages() {
		body, doc := readDoc(t, filepath.Join(dir, "docs", page.ID, "index.html"))
		require.Contains(t, body, page.Fragment, page.ID)
		require.Equal(t, page.ID, doc.Find("#site-nav li.active").AttrOr("data-page", ""), page.ID)
		require.Equal(t, 0, doc.Find("[hx-get]").Length(), "static export must not depend on htmx")
	}

	_, index := readDoc(t, filepath.Join(dir, "index.html"))
	require.Equal(t, pages.HomeID, index.Find("#site-nav li.active").AttrOr("data-page", ""))

	notFound, missing := readDoc(t, filepath.Join(dir, "404.html"))
	require.Contains(t, notFound, router.FallbackFragment)
	require.Equal(t, 0, missing.Find("#site-nav li.active").Length())

	_, err = os.Stat(filepath.Join(dir, "public", "static", "style.css"))
	require.NoError(t, err)
}

func TestBuildWritesManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	manifest, err := newExporter(t, pages.Builtin()).Build(context.Background(), dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	require.NoError(t, err)

	var decoded Manifest
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, manifest.BuildID, decoded.BuildID)
	require.Equal(t, "docs/protocol/index.html", findPage(t, decoded, pages.ProtocolID).Path)
	require.Equal(t, "builtin", findPage(t, decoded, pages.ProtocolID).Source)
}

func TestBuildCleanRemovesStaleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stale := filepath.Join(dir, "docs", "retired", "index.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	_, err := newExporter(t, pages.Builtin()).Build(context.Background(), dir)
	require.NoError(t, err)
	require.FileExists(t, stale)

	_, err = newExporter(t, pages.Builtin(), WithClean(true)).Build(context.Background(), dir)
	require.NoError(t, err)
	require.NoFileExists(t, stale)
	require.FileExists(t, filepath.Join(dir, "index.html"))
}

func TestBuildRejectsUnsafePageID(t *testing.T) {
	t.Parallel()

	reg, err := pages.New(pages.Page{ID: "../escape", Title: "Escape", Fragment: "<p>x</p>"})
	require.NoError(t, err)

	_, err = newExporter(t, reg).Build(context.Background(), t.TempDir())
	require.ErrorIs(t, err, errBadPageID)
}

func TestBuildHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newExporter(t, pages.Builtin()).Build(ctx, t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewRequiresRouter(t *testing.T) {
	t.Parallel()

	_, err := New(nil, Site{})
	require.ErrorIs(t, err, errNoRouter)

	e := newExporter(t, pages.Builtin())
	_, err = e.Build(context.Background(), " ")
	require.ErrorIs(t, err, errNoDir)
}

func findPage(t *testing.T, m Manifest, id string) ManifestPage {
	t.Helper()
	for _, p := range m.Pages {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("page %q missing from manifest", id)
	return ManifestPage{}
}
