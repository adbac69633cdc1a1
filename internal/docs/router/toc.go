package router

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Heading is a table of contents entry. Anchor is empty when the heading has no id.
type Heading struct {
	Level  int
	Text   string
	Anchor string
}

// ExtractTOC lists the h2 and h3 headings of fragment in document order.
func ExtractTOC(fragment string) []Heading {
	if strings.TrimSpace(fragment) == "" {
		return nil
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return nil
	}

	var out []Heading
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			level := 0
			switch n.DataAtom {
			case atom.H2:
				level = 2
			case atom.H3:
				level = 3
			}
			if level > 0 {
				text := strings.Join(strings.Fields(textContent(n)), " ")
				if text != "" {
					out = append(out, Heading{Level: level, Text: text, Anchor: attr(n, "id")})
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return out
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}
