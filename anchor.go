package vwparse

import anchorname "github.com/shurcooL/sanitized_anchor_name"

// sanitizedAnchorName slugifies header text into a stable fragment
// identifier (SPEC_FULL.md §C.1). blackfriday is out of scope (SPEC_FULL.md
// §B — no HTML rendering here), but its anchor-slug helper is exactly the
// tool vimwiki's own TOC-linking needs, so it's promoted from an indirect
// dependency to a direct one rather than hand-rolled.
func sanitizedAnchorName(text string) string {
	return anchorname.Create(text)
}
