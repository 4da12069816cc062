package vwparse

import "bytes"

// decorationDelim describes one of the seven decorated-text styles
// (spec.md §4.4.2): its opening delimiter (checked at the current
// position), its closing delimiter (searched for in the remainder), and
// whether its interior is a single literal Text run (Code) or recursively
// parsed inline content.
type decorationDelim struct {
	style   DecorationStyle
	open    string
	closeOn string
	literal bool
}

// decorationDelims is checked in order; two-byte openers ("*_", "_*") must
// be tried before their one-byte prefixes ("*", "_") so bold-italic wins
// when both could match.
var decorationDelims = []decorationDelim{
	{BoldItalic, "*_", "_*", false},
	{BoldItalic, "_*", "*_", false},
	{Strikeout, "~~", "~~", false},
	{Subscript, ",,", ",,", false},
	{Bold, "*", "*", false},
	{Italic, "_", "_", false},
	{Code, "`", "`", true},
	{Superscript, "^", "^", false},
}

// tryDecorated attempts every decoration production at the start of span,
// returning the parsed node and the number of span bytes it consumed, or
// (nil, 0) if none matched (spec.md §4.4 rule 4).
func (p *inlineParser) tryDecorated(span []byte, base int) (InlineElement, int) {
	for _, d := range decorationDelims {
		if !bytes.HasPrefix(span, []byte(d.open)) {
			continue
		}
		rest := span[len(d.open):]
		idx := bytes.Index(rest, []byte(d.closeOn))
		if idx <= 0 {
			continue // empty or absent interior: not a match, try the next style
		}
		interior := rest[:idx]
		totalLen := len(d.open) + idx + len(d.closeOn)
		reg := p.region(base, base+totalLen)

		var content []InlineElement
		if d.literal {
			content = []InlineElement{p.makeText(interior, base+len(d.open), base+len(d.open)+idx)}
		} else {
			content = p.parseNested(interior, base+len(d.open))
		}
		return &DecoratedText{Reg: reg, Style: d.style, Content: content}, totalLen
	}
	return nil, 0
}
