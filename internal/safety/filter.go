// Package safety provides tool filtering, confirmation and audit logging for
// the Jianshu MCP tools.
package safety

import "path/filepath"

// Filter decides which tool names are exposed, using an allowlist and a
// denylist of glob patterns (as understood by filepath.Match).
//
// Rules:
//   - If both lists are empty (or nil), every tool is allowed.
//   - Denylist always takes priority over the allowlist.
//   - A non-empty allowlist admits only names matching one of its patterns.
type Filter struct {
	allowlist []string
	denylist  []string
}

// NewFilter constructs a Filter. Either list may be nil or empty.
func NewFilter(allowlist, denylist []string) *Filter {
	return &Filter{
		allowlist: allowlist,
		denylist:  denylist,
	}
}

// IsAllowed reports whether name is permitted by this filter. A nil Filter
// allows everything.
func (f *Filter) IsAllowed(name string) bool {
	if f == nil {
		return true
	}
	if matchAny(f.denylist, name) {
		return false
	}
	return len(f.allowlist) == 0 || matchAny(f.allowlist, name)
}

// Select returns the names f allows, preserving order.
func (f *Filter) Select(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if f.IsAllowed(name) {
			out = append(out, name)
		}
	}
	return out
}

// matchAny reports whether name matches any of patterns. Malformed patterns
// never match.
func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
