// Package publish uploads an exported site to Cloud Storage.
package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	gcs "cloud.google.com/go/storage"
	"go.uber.org/zap"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/export"
	"github.com/F2fX4553/sibnav5-pro/internal/platform/requestctx"
)

const (
	cacheRevalidate = "no-cache"
	cacheAssets     = "public, max-age=3600"
	defaultMIME     = "application/octet-stream"
)

var (
	errNoBucket = errors.New("publish: bucket is required")
	errNoDir    = errors.New("publish: export directory is required")
)

// ObjectAttrs are the metadata written with each object.
type ObjectAttrs struct {
	ContentType  string
	CacheControl string
}

// Bucket receives uploaded objects.
type Bucket interface {
	Upload(ctx context.Context, name string, r io.Reader, attrs ObjectAttrs) (int64, error)
}

// GCSBucket uploads into a Cloud Storage bucket.
type GCSBucket struct {
	client *gcs.Client
	name   string
	open   func(ctx context.Context, object string, attrs ObjectAttrs) io.WriteCloser
}

// NewGCSBucket constructs a Bucket backed by the provided Cloud Storage client.
func NewGCSBucket(client *gcs.Client, bucket string) (*GCSBucket, error) {
	if client == nil {
		return nil, errors.New("publish: storage client is required")
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errNoBucket
	}
	b := &GCSBucket{client: client, name: bucket}
	b.open = b.objectWriter
	return b, nil
}

func (b *GCSBucket) objectWriter(ctx context.Context, object string, attrs ObjectAttrs) io.WriteCloser {
	w := b.client.Bucket(b.name).Object(object).NewWriter(ctx)
	w.ContentType = attrs.ContentType
	w.CacheControl = attrs.CacheControl
	return w
}

// Upload streams r into the named object. The object is only committed when the
// whole of r was written; a failed copy cancels the write instead.
func (b *GCSBucket) Upload(ctx context.Context, name string, r io.Reader, attrs ObjectAttrs) (int64, error) {
	if b == nil || b.open == nil {
		return 0, errors.New("publish: bucket is not initialised")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := b.open(ctx, name, attrs)
	n, err := io.Copy(w, r)
	if err != nil {
		cancel()
		return n, fmt.Errorf("publish: upload gs://%s/%s: %w", b.name, name, err)
	}
	if err := w.Close(); err != nil {
		return n, fmt.Errorf("publish: finalise gs://%s/%s: %w", b.name, name, err)
	}
	return n, nil
}

// Result summarises a publish run.
type Result struct {
	Objects int
	Bytes   int64
}

// Publisher copies an export directory into a bucket under a prefix.
type Publisher struct {
	bucket Bucket
	prefix string
}

// NewPublisher constructs a Publisher. prefix may be empty.
func NewPublisher(bucket Bucket, prefix string) (*Publisher, error) {
	if bucket == nil {
		return nil, errNoBucket
	}
	return &Publisher{bucket: bucket, prefix: strings.Trim(strings.TrimSpace(prefix), "/")}, nil
}

// Publish uploads every file under dir. HTML and the manifest are served with
// revalidation; other assets may be cached.
func (p *Publisher) Publish(ctx context.Context, dir string) (Result, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return Result{}, errNoDir
	}
	if _, err := os.Stat(filepath.Join(dir, export.ManifestName)); err != nil {
		return Result{}, fmt.Errorf("publish: %s is not an export: %w", dir, err)
	}
	logger := requestctx.Logger(ctx)

	var result Result
	err := filepath.WalkDir(dir, func(file string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return err
		}
		name := ObjectName(p.prefix, rel)

		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("publish: open %s: %w", file, err)
		}
		defer f.Close()

		n, err := p.bucket.Upload(ctx, name, f, attrsFor(rel))
		if err != nil {
			return err
		}
		result.Objects++
		result.Bytes += n
		logger.Debug("uploaded object", zap.String("object", name), zap.Int64("bytes", n))
		return nil
	})
	if err != nil {
		return result, err
	}

	logger.Info("publish complete",
		zap.String("dir", dir),
		zap.String("prefix", p.prefix),
		zap.Int("objects", result.Objects),
		zap.Int64("bytes", result.Bytes),
	)
	return result, nil
}

// ObjectName joins prefix and a path relative to the export root using forward slashes.
func ObjectName(prefix, rel string) string {
	rel = filepath.ToSlash(rel)
	if prefix == "" {
		return rel
	}
	return path.Join(prefix, rel)
}

func attrsFor(rel string) ObjectAttrs {
	ext := strings.ToLower(filepath.Ext(rel))
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = defaultMIME
	}
	cache := cacheAssets
	if ext == ".html" || filepath.Base(rel) == export.ManifestName {
		cache = cacheRevalidate
	}
	return ObjectAttrs{ContentType: contentType, CacheControl: cache}
}
