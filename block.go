package vwparse

import (
	"bytes"
	"regexp"
	"time"
	"unicode/utf8"
)

// blockParser is the first-pass-consuming engine of spec.md §4.3: it walks
// the comment-stripped view line by line, dispatching each line to the
// first of the twelve productions that matches its leading bytes —
// building a whole Page at once rather than yielding one Block at a time,
// since spec.md §5 asks for a single total pass with no
// external suspension points.
type blockParser struct {
	original []byte
	stripped []byte
	om       *offsetMap
	sink     *diagSink
	cur      *Cursor // positioned within stripped (spec.md §4.1 Input Cursor)
}

func newBlockParser(original, stripped []byte, om *offsetMap, sink *diagSink) *blockParser {
	return &blockParser{original: original, stripped: stripped, om: om, sink: sink, cur: NewCursor(stripped)}
}

// offset reports the cursor's current position within stripped.
func (bp *blockParser) offset() int { return bp.cur.Offset() }

// advanceTo moves the cursor forward to a stripped-view offset already
// computed by a line scan (lineEnd's contentEnd/next results are always at
// or past the cursor's current position).
func (bp *blockParser) advanceTo(off int) { bp.cur.Advance(off - bp.cur.Offset()) }

func (bp *blockParser) region(start, end int) Region {
	return bp.om.translateRegion(Region{Start: start, End: end}, bp.original)
}

func (bp *blockParser) inlineParser() *inlineParser {
	return newInlineParser(bp.original, bp.om, bp.sink)
}

func (bp *blockParser) parseInlineContent(content []byte, base int) []InlineElement {
	p := bp.inlineParser()
	return p.parseSpan(content, base)
}

// atEOF and peekLine expose bp.cur at line granularity for the block-level
// productions' matchers.
func (bp *blockParser) atEOF() bool { return bp.cur.AtEOF() }

func (bp *blockParser) peekLine() (line []byte, lineEndOff, nextOff int) {
	return bp.lineAt(bp.cur.Offset())
}

// lineAt is peekLine parameterized on an arbitrary offset, used for
// lookahead (e.g. the unterminated-fence scans below) without disturbing
// bp.cur until a decision is committed.
func (bp *blockParser) lineAt(off int) (line []byte, contentEnd, next int) {
	contentEnd, next = lineEnd(bp.stripped, off)
	return bp.stripped[off:contentEnd], contentEnd, next
}

// sanitizeUTF8 replaces invalid UTF-8 byte sequences in src with U+FFFD,
// recording one InvalidUTF8 diagnostic per replacement (spec.md §6 "Parse
// MUST accept any byte sequence... invalid UTF-8 is replaced"). It runs
// before any offset map exists, so its diagnostic regions are already in
// original-input coordinates.
func sanitizeUTF8(src []byte) ([]byte, []Diagnostic) {
	if utf8.Valid(src) {
		return src, nil
	}
	var sink diagSink
	out := make([]byte, 0, len(src))
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			reg := Region{Start: i, End: i + 1, Position: positionAt(src, i)}
			sink.add(InvalidUTF8, reg, "invalid UTF-8 byte sequence replaced with U+FFFD")
			out = append(out, "�"...)
			i++
			continue
		}
		out = append(out, src[i:i+size]...)
		i += size
	}
	return out, sink.diags
}

// Parse is the top-level entry point of spec.md §6: it sanitizes invalid
// UTF-8, strips comments, and parses the remaining view into a Page.
func Parse(input []byte) (Page, []Diagnostic) {
	clean, utf8diags := sanitizeUTF8(input)
	stripped, om, stripDiags := StripComments(clean)

	sink := &diagSink{}
	sink.diags = append(sink.diags, utf8diags...)
	sink.diags = append(sink.diags, stripDiags...)

	bp := newBlockParser(clean, stripped, om, sink)
	blocks := bp.parseBlocks()

	page := Page{Blocks: blocks, diags: sink.diags}
	return page, page.Diagnostics()
}

// ParseBlock is the secondary entry point named in spec.md §6: it parses a
// single block production starting at the beginning of span, drawn
// directly from the *original* input (no comment stripping, no offset
// translation — callers who want stripping should call StripComments
// first and pass its output here), mirroring ParseInline's shape. It
// returns nil for an empty span.
func ParseBlock(span []byte) BlockElement {
	bp := newBlockParser(span, span, newOffsetMap(), &diagSink{})
	if bp.atEOF() {
		return nil
	}
	return bp.parseOneBlock()
}

// parseBlocks dispatches over the whole stripped view, in the priority
// order of spec.md §4.3.
func (bp *blockParser) parseBlocks() []BlockElement {
	var out []BlockElement
	for !bp.atEOF() {
		out = append(out, bp.parseOneBlock())
	}
	return out
}

// parseOneBlock consumes exactly one top-level block starting at the
// current offset, trying each production in spec.md §4.3's priority order
// and falling back to NonBlankLine/BlankLine, which always match.
func (bp *blockParser) parseOneBlock() BlockElement {
	line, _, _ := bp.peekLine()

	if isBlankLine(line) {
		return bp.parseBlankLine()
	}
	if b := bp.tryHeader(line); b != nil {
		return b
	}
	if b := bp.tryDivider(line); b != nil {
		return b
	}
	if b := bp.tryPlaceholder(line); b != nil {
		return b
	}
	if b := bp.tryMathBlock(line); b != nil {
		return b
	}
	if b := bp.tryPreformatted(line); b != nil {
		return b
	}
	if b := bp.tryTable(line); b != nil {
		return b
	}
	if b := bp.tryDefinitionList(line); b != nil {
		return b
	}
	if b := bp.tryList(line); b != nil {
		return b
	}
	if b := bp.tryBlockquote(line); b != nil {
		return b
	}
	if b := bp.tryParagraph(line); b != nil {
		return b
	}
	return bp.parseNonBlankLine()
}

func (bp *blockParser) parseBlankLine() *BlankLine {
	start := bp.offset()
	_, _, next := bp.peekLine()
	bp.advanceTo(next)
	return &BlankLine{Reg: bp.region(start, start)}
}

func (bp *blockParser) parseNonBlankLine() *NonBlankLine {
	start := bp.offset()
	line, contentEnd, next := bp.peekLine()
	bp.advanceTo(next)
	return &NonBlankLine{
		Reg:     bp.region(start, contentEnd),
		Content: bp.parseInlineContent(line, start),
	}
}

// headerRe matches a `= Heading =`-style line; leading whitespace marks it
// centered (spec.md §4.3 rule 2).
var headerRe = regexp.MustCompile(`^( *)(=+)( .*? )(=+) *$`)

func (bp *blockParser) tryHeader(line []byte) *Header {
	m := headerRe.FindSubmatch(line)
	if m == nil {
		return nil
	}
	openLevel, closeLevel := len(m[2]), len(m[4])
	if openLevel != closeLevel {
		_, contentEnd, _ := bp.peekLine()
		reg := bp.region(bp.offset(), contentEnd)
		bp.sink.add(MalformedHeader, reg, "header opening/closing '=' run length mismatch")
		return nil // fall through to Paragraph/NonBlankLine
	}

	start := bp.offset()
	_, contentEnd, next := bp.peekLine()
	textStart := start + len(m[1]) + openLevel
	text := bytes.TrimSpace(m[3])
	content := bp.parseInlineContent(text, textStart+leadingSpace(m[3]))
	bp.advanceTo(next)

	h := &Header{
		Reg:      bp.region(start, contentEnd),
		Level:    openLevel,
		Centered: len(m[1]) > 0,
		Content:  content,
	}
	h.Anchor = headerAnchor(string(text))
	return h
}

func leadingSpace(b []byte) int {
	n := 0
	for n < len(b) && isSpaceOrTab(b[n]) {
		n++
	}
	return n
}

// dividerRe matches a four-or-more hyphen rule starting at column 1 (spec.md
// §4.3 rule 3 is explicit that indentation disqualifies it).
var dividerRe = regexp.MustCompile(`^-{4,} *$`)

func (bp *blockParser) tryDivider(line []byte) *Divider {
	if !dividerRe.Match(line) {
		return nil
	}
	start := bp.offset()
	_, contentEnd, next := bp.peekLine()
	bp.advanceTo(next)
	return &Divider{Reg: bp.region(start, contentEnd)}
}

var placeholderRe = regexp.MustCompile(`^%(title|nohtml|template|date) ?(.*)$`)

func (bp *blockParser) tryPlaceholder(line []byte) *Placeholder {
	m := placeholderRe.FindSubmatch(line)
	if m == nil {
		return nil
	}
	start := bp.offset()
	_, contentEnd, next := bp.peekLine()
	reg := bp.region(start, contentEnd)
	bp.advanceTo(next)

	arg := string(bytes.TrimSpace(m[2]))
	p := &Placeholder{Reg: reg}
	switch string(m[1]) {
	case "title":
		p.Kind = TitlePlaceholder
		p.Text = arg
	case "nohtml":
		p.Kind = NoHTMLPlaceholder
	case "template":
		p.Kind = TemplatePlaceholder
		p.Text = arg
	case "date":
		p.Kind = DatePlaceholder
		if t, err := time.Parse("2006-01-02", arg); err == nil {
			p.Date = DateValue{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
			p.HasDate = true
		} else {
			bp.sink.add(InvalidDate, reg, "%date value is not a valid YYYY-MM-DD date: "+arg)
		}
	}
	return p
}

// tryMathBlock recognizes a `{{$` ... `}}$` fenced block, with an optional
// `%environment%` tag on the opening line (spec.md §4.3 rule 5). Per
// spec.md §7, a block left unterminated at EOF is NOT emitted as a
// MathBlock: the opening line falls back to a Paragraph, and every line
// after it is left for normal re-dispatch rather than being swallowed into
// the failed fence.
func (bp *blockParser) tryMathBlock(line []byte) BlockElement {
	trimmed := bytes.TrimRight(line, " \t")
	if !bytes.HasPrefix(trimmed, []byte("{{$")) {
		return nil
	}
	start := bp.offset()
	tag := bytes.TrimSpace(trimmed[len("{{$"):])
	var env *string
	if len(tag) > 0 {
		if t := bytes.TrimPrefix(tag, []byte("%")); len(t) > 0 && bytes.HasSuffix(t, []byte("%")) {
			s := string(t[:len(t)-1])
			env = &s
		}
	}
	_, openEnd, openNext := bp.peekLine()

	var lines []string
	off := openNext
	for {
		if off >= len(bp.stripped) {
			reg := bp.region(start, len(bp.stripped))
			bp.sink.add(UnterminatedMathBlock, reg, "{{$ math block never closed with }}$")
			bp.advanceTo(openNext)
			return &Paragraph{
				Reg:   bp.region(start, openEnd),
				Lines: [][]InlineElement{bp.parseInlineContent(line, start)},
			}
		}
		l, contentEnd, nxt := bp.lineAt(off)
		if bytes.Equal(bytes.TrimRight(l, " \t"), []byte("}}$")) {
			bp.advanceTo(nxt)
			return &MathBlock{Reg: bp.region(start, contentEnd), Env: env, Lines: lines}
		}
		lines = append(lines, string(normalizeEOLs(l)))
		off = nxt
	}
}

// tryPreformatted recognizes a `{{{` ... `}}}` fenced block, with an
// optional language tag and `key="value"` metadata attributes on the
// opening line (spec.md §4.3 rule 6). Unterminated recovery mirrors
// tryMathBlock: fall back to a Paragraph for the opening line only
// (spec.md §7).
func (bp *blockParser) tryPreformatted(line []byte) BlockElement {
	trimmed := bytes.TrimRight(line, " \t")
	if !bytes.HasPrefix(trimmed, []byte("{{{")) {
		return nil
	}
	start := bp.offset()
	header := trimmed[len("{{{"):]

	var lang *string
	fields := bytes.Fields(header)
	metadata := map[string]string{}
	if len(fields) > 0 {
		if m := propertyRe.FindSubmatch(fields[0]); m == nil {
			s := string(fields[0])
			lang = &s
			fields = fields[1:]
		}
	}
	for _, f := range fields {
		if m := propertyRe.FindSubmatch(f); m != nil {
			metadata[string(m[1])] = string(m[2])
		}
	}
	if len(metadata) == 0 {
		metadata = nil
	}

	_, openEnd, openNext := bp.peekLine()

	var lines []string
	off := openNext
	for {
		if off >= len(bp.stripped) {
			reg := bp.region(start, len(bp.stripped))
			bp.sink.add(UnterminatedPreformatted, reg, "{{{ preformatted block never closed with }}}")
			bp.advanceTo(openNext)
			return &Paragraph{
				Reg:   bp.region(start, openEnd),
				Lines: [][]InlineElement{bp.parseInlineContent(line, start)},
			}
		}
		l, contentEnd, nxt := bp.lineAt(off)
		if bytes.Equal(bytes.TrimRight(l, " \t"), []byte("}}}")) {
			bp.advanceTo(nxt)
			return &PreformattedText{Reg: bp.region(start, contentEnd), Lang: lang, Metadata: metadata, Lines: lines}
		}
		lines = append(lines, string(normalizeEOLs(l)))
		off = nxt
	}
}

// tryDefinitionList recognizes `term:: definition` and continuation `::
// definition` lines (spec.md §4.3 rule 8). A run of such lines, with no
// intervening blank or unrelated line, forms one DefinitionList.
func (bp *blockParser) tryDefinitionList(line []byte) *DefinitionList {
	idx := findDefinitionMarker(line)
	if idx < 0 {
		return nil
	}
	start := bp.offset()
	var entries []DefinitionEntry

	for {
		line, contentEnd, next := bp.peekLine()
		idx := findDefinitionMarker(line)
		if idx < 0 {
			break
		}
		termRaw := bytes.TrimSpace(line[:idx])
		defRaw := bytes.TrimSpace(line[idx+2:])
		termBase := bp.offset() + leadingSpace(line[:idx])
		defBase := bp.offset() + idx + 2 + leadingSpace(line[idx+2:])

		var term []InlineElement
		if len(termRaw) > 0 {
			term = bp.parseInlineContent(termRaw, termBase)
		}
		def := bp.parseInlineContent(defRaw, defBase)

		if len(termRaw) > 0 || len(entries) == 0 {
			entries = append(entries, DefinitionEntry{Term: term, Defs: [][]InlineElement{def}})
		} else {
			last := &entries[len(entries)-1]
			last.Defs = append(last.Defs, def)
		}

		bp.advanceTo(next)
		_ = contentEnd
	}
	return &DefinitionList{Reg: bp.region(start, bp.offset()), Entries: entries}
}

// findDefinitionMarker returns the byte offset of the first unescaped "::"
// in line, or -1. A bare "::" at the start (no term) marks a continuation
// definition for the previous entry.
func findDefinitionMarker(line []byte) int {
	for i := 0; i+1 < len(line); i++ {
		if line[i] == '\\' {
			i++
			continue
		}
		if line[i] == ':' && line[i+1] == ':' {
			return i
		}
	}
	return -1
}

func (bp *blockParser) tryList(line []byte) *List {
	indent := indentWidth(line)
	_, tail := trimIndent(line, indent)
	if _, _, ok := matchMarker(tail); !ok {
		return nil
	}
	return bp.parseList(indent)
}

// tryBlockquote recognizes an indented (>=4 columns) or chevron-prefixed
// (`> `) run of lines (spec.md §4.3 rule 10).
func (bp *blockParser) tryBlockquote(line []byte) *Blockquote {
	indent := indentWidth(line)
	_, tail := trimIndent(line, indent)

	var form BlockquoteForm
	switch {
	case indent >= 4:
		form = Indented
	case bytes.HasPrefix(tail, []byte(">")):
		form = Chevron
	default:
		return nil
	}

	start := bp.offset()
	var lines [][]InlineElement
	for {
		line, _, next := bp.peekLine()
		if isBlankLine(line) {
			break
		}
		lineIndent := indentWidth(line)
		_, lineTail := trimIndent(line, lineIndent)

		var contentBytes []byte
		var base int
		switch {
		case form == Indented && lineIndent >= 4:
			contentBytes = lineTail
			base = bp.offset() + lineIndent
		case form == Chevron && bytes.HasPrefix(lineTail, []byte(">")):
			rest := lineTail[1:]
			skip := 0
			if len(rest) > 0 && rest[0] == ' ' {
				skip = 1
			}
			contentBytes = rest[skip:]
			base = bp.offset() + lineIndent + 1 + skip
		default:
			contentBytes = nil
		}
		if contentBytes == nil {
			break
		}

		lines = append(lines, bp.parseInlineContent(contentBytes, base))
		bp.advanceTo(next)
	}
	return &Blockquote{Reg: bp.region(start, bp.offset()), Form: form, Lines: lines}
}

// tryParagraph collects contiguous zero-indent lines that don't match any
// higher-priority production, joining them as one multi-line Paragraph
// (spec.md §4.3 rule 11). It must be tried after
// Header/Divider/Placeholder/fences/Table/DefinitionList/List/Blockquote so
// it only claims genuinely unclassified lines; an indented line ends the
// paragraph, as does a continuation line that itself starts a recognizable
// production, which is left to that production on the next parseOneBlock
// call instead of being absorbed here. The region ends at the last line's
// content, excluding its line terminator.
func (bp *blockParser) tryParagraph(line []byte) *Paragraph {
	if indentWidth(line) > 0 {
		return nil
	}
	start := bp.offset()
	end := start
	var lines [][]InlineElement
	for {
		line, contentEnd, next := bp.peekLine()
		if isBlankLine(line) || indentWidth(line) > 0 {
			break
		}
		if len(lines) > 0 && bp.looksLikeOtherProduction(line) {
			break
		}
		lines = append(lines, bp.parseInlineContent(line, bp.offset()))
		bp.advanceTo(next)
		end = contentEnd
		if bp.atEOF() {
			break
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return &Paragraph{Reg: bp.region(start, end), Lines: lines}
}

// looksLikeOtherProduction reports whether line, if it were handed to
// parseOneBlock fresh, would be claimed by a production other than
// Paragraph/NonBlankLine — used by tryParagraph to stop absorbing
// continuation lines at the right point.
func (bp *blockParser) looksLikeOtherProduction(line []byte) bool {
	if headerRe.Match(line) || dividerRe.Match(line) || placeholderRe.Match(line) {
		return true
	}
	trimmed := bytes.TrimRight(line, " \t")
	if bytes.HasPrefix(trimmed, []byte("{{$")) || bytes.HasPrefix(trimmed, []byte("{{{")) {
		return true
	}
	if len(line) > 0 && (line[0] == '|' || line[0] == '>') {
		return true
	}
	if findDefinitionMarker(line) >= 0 {
		return true
	}
	if _, _, ok := matchMarker(line); ok {
		return true
	}
	return false
}

// headerAnchor slugifies header text into a stable fragment identifier
// (SPEC_FULL.md §C.1).
func headerAnchor(text string) string {
	return sanitizedAnchorName(text)
}
