package templates

import (
	"encoding/json"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/navigation"
)

type breadcrumbItem struct {
	Name string
	Item string
}

// breadcrumbJSONLD returns the schema.org BreadcrumbList for the active page:
// site, sidebar group, page. It is empty when no entry is active.
func breadcrumbJSONLD(data LayoutData) string {
	var items []breadcrumbItem
	for _, group := range data.View.Menu {
		for _, entry := range group.Entries {
			if !entry.Active {
				continue
			}
			items = []breadcrumbItem{
				{Name: data.SiteTitle, Item: navigation.JoinBasePath(data.BasePath, "/")},
				{Name: group.Label},
				{Name: entry.Label, Item: entry.Href},
			}
		}
	}
	if len(items) == 0 {
		return ""
	}

	elements := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
		}
		if it.Item != "" {
			el["item"] = it.Item
		}
		elements = append(elements, el)
	}
	// json.Marshal escapes <, > and & so the payload is safe inside <script>.
	b, err := json.Marshal(map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	})
	if err != nil {
		return ""
	}
	return string(b)
}
