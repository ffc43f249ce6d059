// Package tools holds the session's tool directory: the list of server-side
// tool identifiers the agent can invoke. The client only displays names,
// it never executes a tool.
package tools

import "strings"

// Fallback is the static tool set used when the backend directory cannot be
// fetched. It mirrors the Firecrawl MCP tool names the agent ships with.
var Fallback = []string{
	"firecrawl_scrape",
	"firecrawl_map",
	"firecrawl_crawl",
	"firecrawl_check_crawl_status",
	"firecrawl_search",
	"firecrawl_extract",
	"firecrawl_deep_research",
	"firecrawl_generate_llmstxt",
}

// Icon picks a display icon from substrings of the tool identifier.
func Icon(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "search"):
		return "🔍"
	case strings.Contains(lower, "scrape"):
		return "🌐"
	case strings.Contains(lower, "extract"):
		return "📊"
	case strings.Contains(lower, "crawl"):
		return "🕷️"
	default:
		return "🔧"
	}
}

// Directory is the session-scoped tool list, either sourced from the
// backend or substituted with the fallback set after a failed fetch.
// It is owned by the UI event loop and needs no locking.
type Directory struct {
	names    []string
	fallback bool
	err      error
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{}
}

// Replace installs a freshly fetched tool list and clears any error state.
func (d *Directory) Replace(names []string) {
	d.names = append([]string(nil), names...)
	d.fallback = false
	d.err = nil
}

// ApplyFallback substitutes the static fallback set and records the fetch
// error that caused it.
func (d *Directory) ApplyFallback(err error) {
	d.names = append([]string(nil), Fallback...)
	d.fallback = true
	d.err = err
}

// Names returns the current tool identifiers in directory order.
func (d *Directory) Names() []string {
	return append([]string(nil), d.names...)
}

// Count returns the number of tools in the directory.
func (d *Directory) Count() int {
	return len(d.names)
}

// UsingFallback reports whether the directory holds the static fallback set.
func (d *Directory) UsingFallback() bool {
	return d.fallback
}

// Err returns the error from the last failed fetch, if any.
func (d *Directory) Err() error {
	return d.err
}
