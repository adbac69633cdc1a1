package observability

import (
	"strings"
	"unicode"
)

// Bounds for request values copied into log fields, span names and metric attributes.
const (
	maxRouteRunes  = 180
	maxMethodRunes = 10
	maxPageIDRunes = 64
	maxAddrRunes   = 64
)

// clip drops control characters and keeps at most limit runes of what remains.
func clip(value string, limit int) string {
	var b strings.Builder
	kept := 0
	for _, r := range value {
		if kept == limit {
			break
		}
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
		kept++
	}
	return b.String()
}

// SanitizeRoute bounds a request path or route pattern. Empty routes log as "/".
func SanitizeRoute(route string) string {
	if route = clip(route, maxRouteRunes); route == "" {
		return "/"
	}
	return route
}

// SanitizeMethod bounds an HTTP method.
func SanitizeMethod(method string) string {
	return clip(method, maxMethodRunes)
}

// SanitizePageID bounds a page id taken from the URL.
func SanitizePageID(id string) string {
	return clip(strings.TrimSpace(id), maxPageIDRunes)
}
