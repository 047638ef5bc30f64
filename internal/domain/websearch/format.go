package websearch

import (
	"fmt"
	"strings"
)

// Truncate caps hits at max, preserving order. max <= 0 means no cap.
func Truncate(hits []Hit, max int) []Hit {
	if max > 0 && len(hits) > max {
		return hits[:max]
	}
	return hits
}

// FormatText renders hits as a numbered, human-readable block naming the
// provider that answered.
func FormatText(provider, query string, hits []Hit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s results for %q:\n", provider, query)
	for i, h := range hits {
		fmt.Fprintf(&b, "\n%d. %s\n   %s\n   %s\n", i+1, h.Title, h.URL, h.Snippet)
	}
	return b.String()
}

// NoResultsText renders the empty-result message for a provider.
func NoResultsText(provider, query string) string {
	return fmt.Sprintf("%s found no results for %q.", provider, query)
}
