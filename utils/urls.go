package utils

import "net/url"

// BaseURL is the externally visible URL prefix for absolute links, e.g. a
// reverse-proxy mount point. Empty means links stay host-relative.
func BaseURL() string {
	return GetEnvAsString("BASE_URL", "")
}

// CanonicalizeURL prefixes a path with the configured base URL.
func CanonicalizeURL(path string) string {
	return BaseURL() + path
}

// ActionURL builds a list-page action link such as
// /announcements?action=edit&key=<id>.
func ActionURL(action, key string) string {
	args := url.Values{}
	args.Set("action", action)
	if key != "" {
		args.Set("key", key)
	}
	return CanonicalizeURL("/announcements?" + args.Encode())
}

// LoginURL points an unauthenticated visitor at the sign-in page and brings
// them back to continueURL afterwards.
func LoginURL(continueURL string) string {
	args := url.Values{}
	args.Set("continue", continueURL)
	return CanonicalizeURL("/login?" + args.Encode())
}

// EditExitURL anchors the list view at the record being edited, so closing
// the editor lands back on the same row.
func EditExitURL(key string) string {
	return CanonicalizeURL("/announcements#" + url.QueryEscape(key))
}
