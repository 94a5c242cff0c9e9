package util

import (
	"net/url"
	"strings"
)

// URLListSeparator separates URLs in a single url input.
const URLListSeparator = "|"

// IsHTTPOrHTTPSURL returns true if s is a valid URL with scheme "http" or "https" and a non-empty host.
func IsHTTPOrHTTPSURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// SplitURLList splits a "|"-delimited list, trimming blanks and dropping empty entries.
func SplitURLList(s string) []string {
	var urls []string

	for _, part := range strings.Split(s, URLListSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			urls = append(urls, part)
		}
	}

	return urls
}
