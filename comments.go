package vwparse

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// offsetEntry anchors a stripped-view offset to the original-view offset it
// corresponds to; between anchors the mapping is 1:1 (spec.md §4.2
// "Offset map").
type offsetEntry struct {
	stripped int
	original int
}

// offsetMap translates offsets in the comment-stripped view back to the
// original input, so every AST region can refer to the original bytes
// (spec.md §3 "Region").
type offsetMap struct {
	entries []offsetEntry
}

func newOffsetMap() *offsetMap {
	return &offsetMap{entries: []offsetEntry{{0, 0}}}
}

func (m *offsetMap) mark(stripped, original int) {
	if n := len(m.entries); n > 0 && m.entries[n-1].stripped == stripped {
		m.entries[n-1].original = original
		return
	}
	m.entries = append(m.entries, offsetEntry{stripped, original})
}

// translate maps a stripped-view offset to the corresponding original-view
// offset.
func (m *offsetMap) translate(stripped int) int {
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].stripped > stripped
	})
	if i == 0 {
		return stripped
	}
	e := m.entries[i-1]
	return e.original + (stripped - e.stripped)
}

// translateRegion rewrites a Region computed over the stripped view into
// one referring to the original input, recomputing its line/column from
// scratch (positions are never dead-reckoned across a strip boundary).
func (m *offsetMap) translateRegion(r Region, original []byte) Region {
	start := m.translate(r.Start)
	end := m.translate(r.End)
	if end < start {
		end = start
	}
	return Region{Start: start, End: end, Position: positionAt(original, start)}
}

// positionAt computes the 1-based line and UTF-8-code-point column of
// offset within src, by scanning from the start. Used only for diagnostics
// and region translation, both cold paths relative to the main parse.
func positionAt(src []byte, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}
	pos := Position{Line: 1, Column: 1}
	i := 0
	for i < offset {
		r, size := utf8.DecodeRune(src[i:])
		if size <= 0 {
			size = 1
		}
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
		i += size
	}
	return pos
}

// StripComments implements the first pass of spec.md §4.2: it removes
// `%%...` line comments and `%%+...+%%` multi-line comments from src,
// returning a comment-free view plus the offset map needed to translate
// later regions back to src. No nesting of comments is supported, matching
// the source grammar.
func StripComments(src []byte) ([]byte, *offsetMap, []Diagnostic) {
	var sink diagSink
	out := make([]byte, 0, len(src))
	om := newOffsetMap()

	i, n := 0, len(src)
	for i < n {
		if src[i] == '%' && i+1 < n && src[i+1] == '%' {
			if i+2 < n && src[i+2] == '+' {
				start := i
				closeIdx := bytes.Index(src[i+3:], []byte("+%%"))
				var end int
				if closeIdx < 0 {
					end = n
					region := Region{Start: start, End: n, Position: positionAt(src, start)}
					sink.add(UnterminatedMultilineComment, region,
						"unterminated %%+ comment runs to end of input")
				} else {
					end = i + 3 + closeIdx + 3
				}
				i = end
				om.mark(len(out), i)
				continue
			}
			ce, _ := lineEnd(src, i)
			i = ce
			om.mark(len(out), i)
			continue
		}
		out = append(out, src[i])
		i++
	}

	return out, om, sink.diags
}
