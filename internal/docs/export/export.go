// Package export renders every documentation page to static HTML so the site can be
// hosted without the Go server.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/router"
	"github.com/F2fX4553/sibnav5-pro/internal/docs/templates"
	"github.com/F2fX4553/sibnav5-pro/internal/platform/requestctx"
	"github.com/F2fX4553/sibnav5-pro/public"
)

// ManifestName is the file describing an export.
const ManifestName = "manifest.json"

var (
	errNoRouter  = errors.New("export: router is required")
	errNoDir     = errors.New("export: output directory is required")
	errUnsafeDir = errors.New("export: refusing to clean the filesystem root")
	errBadPageID = errors.New("export: page id is not a valid path segment")
)

// Site carries the values rendered into every page.
type Site struct {
	Title       string
	Lang        string
	BasePath    string
	Environment string
}

// Manifest lists what an export produced.
type Manifest struct {
	BuildID     string         `json:"build_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	BasePath    string         `json:"base_path"`
	DefaultPage string         `json:"default_page"`
	Pages       []ManifestPage `json:"pages"`
}

// ManifestPage describes one exported page.
type ManifestPage struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Group  string `json:"group,omitempty"`
	Source string `json:"source"`
	Path   string `json:"path"`
}

// Exporter writes static builds.
type Exporter struct {
	router *router.Router
	site   Site
	now    func() time.Time
	clean  bool
}

// Option customises an Exporter.
type Option func(*Exporter)

// WithClock injects a custom clock (useful for tests).
func WithClock(clock func() time.Time) Option {
	return func(e *Exporter) {
		if clock != nil {
			e.now = clock
		}
	}
}

// WithClean removes the output directory before writing.
func WithClean(clean bool) Option {
	return func(e *Exporter) {
		e.clean = clean
	}
}

// New constructs an exporter over r.
func New(r *router.Router, site Site, opts ...Option) (*Exporter, error) {
	if r == nil {
		return nil, errNoRouter
	}
	e := &Exporter{
		router: r,
		site:   site,
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e, nil
}

// Build writes index.html, docs/<id>/index.html for every page, 404.html, the static
// assets and the manifest into dir.
func (e *Exporter) Build(ctx context.Context, dir string) (Manifest, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return Manifest{}, errNoDir
	}
	logger := requestctx.Logger(ctx)

	if e.clean {
		if err := cleanDir(dir); err != nil {
			return Manifest{}, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Manifest{}, fmt.Errorf("export: create %s: %w", dir, err)
	}

	now := e.now().UTC()
	manifest := Manifest{
		BuildID:     ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		GeneratedAt: now,
		BasePath:    e.site.BasePath,
		DefaultPage: e.router.DefaultPageID(),
	}

	if err := e.writeView(ctx, filepath.Join(dir, "index.html"), e.router.Initial()); err != nil {
		return Manifest{}, err
	}
	if err := e.writeView(ctx, filepath.Join(dir, "404.html"), e.router.Load("")); err != nil {
		return Manifest{}, err
	}

	for _, page := range e.router.Registry().Pages() {
		if err := ctx.Err(); err != nil {
			return Manifest{}, err
		}
		if !validSegment(page.ID) {
			return Manifest{}, fmt.Errorf("%w: %q", errBadPageID, page.ID)
		}
		rel := filepath.Join("docs", page.ID, "index.html")
		if err := e.writeView(ctx, filepath.Join(dir, rel), e.router.Load(page.ID)); err != nil {
			return Manifest{}, err
		}
		manifest.Pages = append(manifest.Pages, ManifestPage{
			ID:     page.ID,
			Title:  page.Title,
			Group:  page.Group,
			Source: string(page.Source),
			Path:   filepath.ToSlash(rel),
		})
		logger.Debug("exported page", zap.String("page", page.ID), zap.String("path", rel))
	}

	if err := copyStatic(filepath.Join(dir, "public", "static")); err != nil {
		return Manifest{}, err
	}
	if err := writeManifest(filepath.Join(dir, ManifestName), manifest); err != nil {
		return Manifest{}, err
	}

	logger.Info("export complete",
		zap.String("dir", dir),
		zap.String("build_id", manifest.BuildID),
		zap.Int("pages", len(manifest.Pages)),
	)
	return manifest, nil
}

func (e *Exporter) writeView(ctx context.Context, path string, view router.View) error {
	component := templates.Page(templates.LayoutData{
		SiteTitle:   e.site.Title,
		Lang:        e.site.Lang,
		BasePath:    e.site.BasePath,
		Environment: e.site.Environment,
		View:        view,
		Static:      true,
	})
	return writeComponent(ctx, path, component)
}

func writeComponent(ctx context.Context, path string, component templ.Component) error {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return fmt.Errorf("export: render %s: %w", path, err)
	}
	return writeFile(path, buf.Bytes())
}

func writeManifest(path string, manifest Manifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("export: encode manifest: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

func copyStatic(dst string) error {
	assets, err := public.StaticFS()
	if err != nil {
		return fmt.Errorf("export: static assets: %w", err)
	}
	return fs.WalkDir(assets, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		src, err := assets.Open(name)
		if err != nil {
			return err
		}
		defer src.Close()
		data, err := io.ReadAll(src)
		if err != nil {
			return fmt.Errorf("export: read asset %s: %w", name, err)
		}
		return writeFile(filepath.Join(dst, filepath.FromSlash(name)), data)
	})
}

func cleanDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("export: resolve %s: %w", dir, err)
	}
	if abs == filepath.VolumeName(abs)+string(filepath.Separator) {
		return errUnsafeDir
	}
	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("export: clean %s: %w", dir, err)
	}
	return nil
}

func validSegment(id string) bool {
	return id != "" && filepath.IsLocal(id) && !strings.ContainsAny(id, `/\`)
}
