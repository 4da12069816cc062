package vwparse

import (
	"bytes"
	"unicode/utf8"
)

// maxInlineDepth bounds recursive inline nesting (decorations, link
// descriptions) per spec.md §5: "implementers MUST enforce a recursion cap
// (default 64)".
const maxInlineDepth = 64

// inlineParser is the second-pass sub-engine of spec.md §4.4. It operates
// over bounded spans of the comment-stripped view and translates every
// region it produces back to the original input via om, the way the block
// parser does for its own top-level regions.
type inlineParser struct {
	original []byte
	om       *offsetMap
	sink     *diagSink
	depth    int
	noLinks  bool
}

func newInlineParser(original []byte, om *offsetMap, sink *diagSink) *inlineParser {
	return &inlineParser{original: original, om: om, sink: sink}
}

// region builds a Region for the stripped-view byte range [startStripped,
// endStripped), translated into original-input coordinates.
func (p *inlineParser) region(startStripped, endStripped int) Region {
	return p.om.translateRegion(Region{Start: startStripped, End: endStripped}, p.original)
}

func (p *inlineParser) makeText(content []byte, startStripped, endStripped int) *Text {
	return &Text{Reg: p.region(startStripped, endStripped), Value: string(normalizeEOLs(content))}
}

// ParseInline is the secondary entry point named in spec.md §6: it parses a
// single bounded span drawn directly from the *original* input (no comment
// stripping, no offset translation — callers who want stripping should call
// StripComments first and pass its output here).
func ParseInline(span []byte) []InlineElement {
	p := newInlineParser(span, newOffsetMap(), &diagSink{})
	return p.parseSpan(span, 0)
}

// parseSpan parses the bytes of span (a slice of the stripped view) as a
// single inline context starting at stripped-view offset base, dispatching
// in the priority order of spec.md §4.4.
func (p *inlineParser) parseSpan(span []byte, base int) []InlineElement {
	var out []InlineElement
	textStart := -1

	flush := func(end int) {
		if textStart >= 0 && end > textStart {
			out = append(out, p.makeText(span[textStart:end], base+textStart, base+end))
		}
		textStart = -1
	}

	i := 0
	for i < len(span) {
		prevWordChar := i > 0 && isWordByte(span[i-1])

		if el, n := p.tryMath(span[i:], base+i); n > 0 {
			flush(i)
			out = append(out, el)
			i += n
			continue
		}
		if el, n := p.tryTags(span[i:], base+i); n > 0 {
			flush(i)
			out = append(out, el)
			i += n
			continue
		}
		if el, n := p.tryLink(span[i:], base+i); n > 0 {
			flush(i)
			out = append(out, el)
			i += n
			continue
		}
		if el, n := p.tryDecorated(span[i:], base+i); n > 0 {
			flush(i)
			out = append(out, el)
			i += n
			continue
		}
		if el, n := p.tryKeyword(span[i:], base+i, prevWordChar); n > 0 {
			flush(i)
			out = append(out, el)
			i += n
			continue
		}

		if textStart < 0 {
			textStart = i
		}
		_, size := utf8.DecodeRune(span[i:])
		if size <= 0 {
			size = 1
		}
		i += size
	}
	flush(len(span))
	return out
}

// parseNested recurses into decoration/link-description interiors, honoring
// the recursion cap (spec.md §5). On overflow it emits a
// RecursionLimitExceeded diagnostic and returns the span verbatim as a
// single Text node (spec.md §7).
func (p *inlineParser) parseNested(span []byte, base int) []InlineElement {
	if p.depth >= maxInlineDepth {
		reg := p.region(base, base+len(span))
		p.sink.add(RecursionLimitExceeded, reg, "inline nesting exceeded recursion cap")
		return []InlineElement{p.makeText(span, base, base+len(span))}
	}
	p.depth++
	out := p.parseSpan(span, base)
	p.depth--
	return out
}

func isWordByte(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_'
}

// tryMath recognizes `$...$` inline math (spec.md §4.4 rule 1): no `$` or
// newline inside, trimmed.
func (p *inlineParser) tryMath(span []byte, base int) (InlineElement, int) {
	if len(span) == 0 || span[0] != '$' {
		return nil, 0
	}
	rest := span[1:]
	nl := bytes.IndexByte(rest, '\n')
	idx := bytes.IndexByte(rest, '$')
	if idx < 0 || (nl >= 0 && nl < idx) {
		return nil, 0
	}
	interior := bytes.TrimSpace(rest[:idx])
	total := 1 + idx + 1
	return &MathInline{Reg: p.region(base, base+total), Value: string(interior)}, total
}

// tryTags recognizes `:tag:tag:...:` (spec.md §4.4 rule 2): at least one
// non-empty tag, no whitespace or colons inside a tag.
func (p *inlineParser) tryTags(span []byte, base int) (InlineElement, int) {
	if len(span) == 0 || span[0] != ':' {
		return nil, 0
	}
	var tags []string
	i := 1
	for {
		start := i
		for i < len(span) && span[i] != ':' {
			if isSpaceOrTab(span[i]) || span[i] == '\n' {
				return nil, 0
			}
			i++
		}
		if i >= len(span) || i == start {
			return nil, 0
		}
		tags = append(tags, string(span[start:i]))
		i++ // consume the separating/closing ':'
		if i >= len(span) {
			break
		}
		c := span[i]
		if c == ':' || isSpaceOrTab(c) || c == '\n' {
			break
		}
	}
	if len(tags) == 0 {
		return nil, 0
	}
	return &Tags{Reg: p.region(base, base+i), Values: tags}, i
}

// tryKeyword recognizes one of the six uppercase keyword literals at a word
// boundary (spec.md §4.4 rule 5).
func (p *inlineParser) tryKeyword(span []byte, base int, prevWordChar bool) (InlineElement, int) {
	if prevWordChar {
		return nil, 0
	}
	words := []struct {
		w KeywordWord
		s string
	}{
		{STARTED, "STARTED"},
		{FIXME, "FIXME"},
		{FIXED, "FIXED"},
		{TODO, "TODO"},
		{DONE, "DONE"},
		{XXX, "XXX"},
	}
	for _, cand := range words {
		if !bytes.HasPrefix(span, []byte(cand.s)) {
			continue
		}
		rest := span[len(cand.s):]
		if len(rest) > 0 && isWordByte(rest[0]) {
			continue
		}
		return &Keyword{Reg: p.region(base, base+len(cand.s)), Word: cand.w}, len(cand.s)
	}
	return nil, 0
}
