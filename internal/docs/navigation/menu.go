package navigation

import (
	"sort"
	"strings"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/pages"
)

// groupOrder lists the sidebar sections shown first; any other group follows alphabetically.
var groupOrder = []string{
	pages.GroupIntroduction,
	pages.GroupProtocol,
	pages.GroupSDKs,
	pages.GroupDeployment,
}

// fallbackGroup holds pages registered without a group.
const fallbackGroup = "More"

// Entry is a navigation item identifying one page.
type Entry struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

// Group is a labelled sidebar section.
type Group struct {
	Key     string
	Label   string
	Entries []Entry
}

// Menu is the full sidebar. Values are copied on every mutation so a Menu can be shared.
type Menu []Group

// Build groups the registry pages into a menu. Entries link to basePath + "docs/<id>".
func Build(reg *pages.Registry, basePath string) Menu {
	byGroup := make(map[string][]pages.Page)
	for _, p := range reg.Pages() {
		group := strings.TrimSpace(p.Group)
		if group == "" {
			group = fallbackGroup
		}
		byGroup[group] = append(byGroup[group], p)
	}

	var names []string
	for _, name := range groupOrder {
		if _, ok := byGroup[name]; ok {
			names = append(names, name)
		}
	}
	var extra []string
	for name := range byGroup {
		if !isKnownGroup(name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	names = append(names, extra...)

	menu := make(Menu, 0, len(names))
	for _, name := range names {
		list := byGroup[name]
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Order != list[j].Order {
				return list[i].Order < list[j].Order
			}
			return list[i].ID < list[j].ID
		})
		group := Group{Key: groupKey(name), Label: name}
		for _, p := range list {
			group.Entries = append(group.Entries, Entry{
				ID:    p.ID,
				Label: p.Title,
				Href:  PageHref(basePath, p.ID),
			})
		}
		menu = append(menu, group)
	}
	return menu
}

// WithActive returns a copy of the menu where only the entry for id is active.
// When id is unknown no entry is active.
func (m Menu) WithActive(id string) Menu {
	out := make(Menu, len(m))
	for i, group := range m {
		entries := make([]Entry, len(group.Entries))
		for j, entry := range group.Entries {
			entry.Active = entry.ID == id
			entries[j] = entry
		}
		group.Entries = entries
		out[i] = group
	}
	return out
}

// ActiveEntry returns the entry currently marked active.
func (m Menu) ActiveEntry() (Entry, bool) {
	for _, group := range m {
		for _, entry := range group.Entries {
			if entry.Active {
				return entry, true
			}
		}
	}
	return Entry{}, false
}

// Entries flattens the menu in display order.
func (m Menu) Entries() []Entry {
	var out []Entry
	for _, group := range m {
		out = append(out, group.Entries...)
	}
	return out
}

// Neighbours returns the entries before and after id in display order.
func (m Menu) Neighbours(id string) (prev *Entry, next *Entry) {
	entries := m.Entries()
	for i, entry := range entries {
		if entry.ID != id {
			continue
		}
		if i > 0 {
			p := entries[i-1]
			p.Active = false
			prev = &p
		}
		if i < len(entries)-1 {
			n := entries[i+1]
			n.Active = false
			next = &n
		}
		return prev, next
	}
	return nil, nil
}

// PageHref builds the URL of a page under basePath.
func PageHref(basePath, id string) string {
	return JoinBasePath(basePath, "docs/"+id)
}

// JoinBasePath joins suffix onto the site base path.
func JoinBasePath(basePath, suffix string) string {
	base := strings.TrimSpace(basePath)
	if base == "" {
		base = "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasPrefix(suffix, "/") {
		suffix = "/" + suffix
	}
	if base == "/" {
		return suffix
	}
	return strings.TrimRight(base, "/") + suffix
}

func isKnownGroup(name string) bool {
	for _, known := range groupOrder {
		if known == name {
			return true
		}
	}
	return false
}

func groupKey(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	return strings.Join(strings.Fields(key), "-")
}
