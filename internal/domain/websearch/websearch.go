// Package websearch holds the common web search result contract both
// providers normalize into.
package websearch

// Hit is one normalized web search result.
type Hit struct {
	Title   string
	URL     string
	Snippet string
}

// Outcome is the user-facing result of a search attempt. Text is
// human-readable and names the provider that answered. A provider-level
// configuration problem surfaces as Success=false with Error set, not as a
// returned error.
type Outcome struct {
	Success bool
	Text    string
	Results []Hit
	Error   string
}
