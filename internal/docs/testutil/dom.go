package testutil

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/templates"
)

// DocsPage is a parsed documentation response, either the full document or an
// htmx fragment with its out-of-band swaps.
type DocsPage struct {
	*goquery.Document
}

// ParseDocsPage parses body for DOM assertions.
func ParseDocsPage(t testing.TB, body []byte) DocsPage {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err, "parse docs response")
	return DocsPage{Document: doc}
}

// ActiveEntries lists the page ids of highlighted sidebar entries in document order.
func (p DocsPage) ActiveEntries() []string {
	return p.pageIDs("#" + templates.NavID + " li.active")
}

// ActiveEntry returns the highlighted page id, or "" unless exactly one entry is active.
func (p DocsPage) ActiveEntry() string {
	ids := p.ActiveEntries()
	if len(ids) != 1 {
		return ""
	}
	return ids[0]
}

// NavEntries lists every sidebar page id.
func (p DocsPage) NavEntries() []string {
	return p.pageIDs("#" + templates.NavID + " li[data-page]")
}

// OutOfBand reports whether the element with the given id replaces its
// counterpart out of band.
func (p DocsPage) OutOfBand(id string) bool {
	return p.Find("#"+id).AttrOr("hx-swap-oob", "") == "true"
}

// Title is the document title, present in both full pages and fragments.
func (p DocsPage) Title() string {
	return p.Find("title").First().Text()
}

func (p DocsPage) pageIDs(selector string) []string {
	var ids []string
	p.Find(selector).Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("data-page", ""))
	})
	return ids
}
