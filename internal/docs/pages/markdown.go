package pages

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

type frontMatter struct {
	Title  string `yaml:"title"`
	Group  string `yaml:"group"`
	Order  int    `yaml:"order"`
	Format string `yaml:"format"`
}

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		// raw HTML is allowed through and cleaned by fragmentPolicy afterwards
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	fragmentPolicy = newFragmentPolicy()
)

func newFragmentPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("class").OnElements("code", "pre", "div", "span", "p", "figure", "figcaption")
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// LoadDir reads documentation pages from dir. Files named <id>.md are rendered from
// markdown and <id>.html files are used as-is; both are sanitised. Subdirectories are ignored.
func LoadDir(dir string) ([]Page, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("pages: read content dir %s: %w", dir, err)
	}

	var out []Page
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".md" && ext != ".html" {
			continue
		}
		page, err := readPage(filepath.Join(dir, entry.Name()))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		out = append(out, page)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func readPage(path string) (Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Page{}, err
	}
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	id := NormalizeID(strings.TrimSuffix(name, ext))
	if id == "" {
		return Page{}, fmt.Errorf("pages: %s: %w", path, ErrEmptyID)
	}

	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("pages: parse front matter %s: %w", path, err)
		}
	}

	format := strings.ToLower(strings.TrimSpace(front.Format))
	if format == "" {
		format = formatMarkdown
		if strings.EqualFold(ext, ".html") {
			format = formatHTML
		}
	}

	page := Page{
		ID:    id,
		Title: strings.TrimSpace(front.Title),
		Group: strings.TrimSpace(front.Group),
		Order: front.Order,
	}

	switch format {
	case formatMarkdown:
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(body), &buf); err != nil {
			return Page{}, fmt.Errorf("pages: render markdown %s: %w", path, err)
		}
		page.Fragment = buf.String()
		page.Source = SourceMarkdown
		if page.Title == "" {
			page.Title = markdownTitle(body)
		}
	case formatHTML:
		page.Fragment = body
		page.Source = SourceHTML
	default:
		return Page{}, fmt.Errorf("pages: %s: unsupported format %q", path, format)
	}

	page.Fragment = strings.TrimSpace(fragmentPolicy.Sanitize(page.Fragment))
	if page.Title == "" {
		page.Title = prettifyID(id)
	}
	return page, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n")
		}
	}
	return "", input
}

// markdownTitle returns the text of the first level-one ATX heading.
func markdownTitle(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}

func prettifyID(id string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(id)
	// Casers carry state and are not shared between goroutines.
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
