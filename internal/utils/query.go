package utils

import (
	"net/url"
	"strings"
)

// QueryString reads a trimmed query parameter, falling back to def when the
// parameter is missing or blank.
func QueryString(q url.Values, key, def string) string {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return def
	}
	return v
}
