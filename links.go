package vwparse

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
)

// The six link variants (plus Transclusion) are detected by their opening
// sequence (spec.md §4.4 rule 3, §4.4.1). Bracket links scan for their
// closing `]]` on the same line; brace (transclusion) links scan for `}}`
// anywhere in the rest of the span. A bare URI may also appear directly in
// text.
var (
	indexedInterwikiRe = regexp.MustCompile(`^wiki(\d+):`)
	namedInterwikiRe   = regexp.MustCompile(`^wn\.([^:]+):`)
	propertyRe         = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*)="([^"]*)"$`)
)

// recognizedURISchemes bounds bare-URI autolinking (spec.md §4.4.1 "A Raw
// link may also appear as a bare URI in text"). The source grammar leaves
// the exact scheme set informal; this is the common, conservative set
// (adapted from the autolink scanning technique in rsc/markdown's and
// zombiezen/go-commonmark's inline parsers) rather than matching any
// `word:` prefix, which would false-positive on ordinary prose like times
// ("12:30") or field labels ("Note:").
var recognizedURISchemes = []string{"https://", "http://", "ftp://", "mailto:"}

func (p *inlineParser) tryLink(span []byte, base int) (InlineElement, int) {
	if p.noLinks {
		return nil, 0
	}
	switch {
	case bytes.HasPrefix(span, []byte("[[")):
		return p.tryBracketLink(span, base)
	case bytes.HasPrefix(span, []byte("{{")) && !bytes.HasPrefix(span, []byte("{{{")) && !bytes.HasPrefix(span, []byte("{{$")):
		return p.tryTransclusion(span, base)
	default:
		return p.tryRawURI(span, base)
	}
}

func (p *inlineParser) tryBracketLink(span []byte, base int) (InlineElement, int) {
	bound := span
	if nl := bytes.IndexByte(span, '\n'); nl >= 0 {
		bound = span[:nl]
	}
	closeIdx := bytes.Index(bound[2:], []byte("]]"))
	if closeIdx < 0 {
		reg := p.region(base, base+len(bound))
		p.sink.add(MalformedLink, reg, "[[ link has no closing ]] on the same line")
		return nil, 0
	}
	total := 2 + closeIdx + 2
	interior := bound[2 : 2+closeIdx]
	reg := p.region(base, base+total)
	return p.buildBracketLink(interior, base+2, reg), total
}

func (p *inlineParser) buildBracketLink(interior []byte, interiorBase int, reg Region) *Link {
	pipe := findUnescapedPipe(interior)
	targetRaw := interior
	if pipe >= 0 {
		targetRaw = interior[:pipe]
	}
	target, _ := trimSpaceWithOffset(targetRaw, interiorBase)
	kind, path, hasPath, anchor, idx, name := classifyTarget(string(target))

	link := &Link{
		Reg: reg, Kind: kind,
		HasPath: hasPath, Path: path,
		InterwikiIndex: idx, InterwikiName: name,
		Anchor: anchor,
	}
	if pipe >= 0 {
		descRaw := interior[pipe+1:]
		descBase := interiorBase + pipe + 1
		link.HasDescription = true
		link.Description = p.buildDescription(descRaw, descBase)
	}
	return link
}

func (p *inlineParser) tryTransclusion(span []byte, base int) (InlineElement, int) {
	closeIdx := bytes.Index(span[2:], []byte("}}"))
	if closeIdx < 0 {
		reg := p.region(base, base+len(span))
		p.sink.add(MalformedLink, reg, "{{ transclusion has no closing }}")
		return nil, 0
	}
	total := 2 + closeIdx + 2
	interior := span[2 : 2+closeIdx]
	interiorBase := base + 2
	reg := p.region(base, base+total)

	segs := splitUnescapedPipes(interior)
	targetRaw, _ := trimSpaceWithOffset(interior[segs[0][0]:segs[0][1]], interiorBase+segs[0][0])
	_, path, hasPath, anchor, _, _ := classifyTarget(string(targetRaw))

	link := &Link{Reg: reg, Kind: Transclusion, HasPath: hasPath, Path: path, Anchor: anchor}
	for _, seg := range segs[1:] {
		raw := interior[seg[0]:seg[1]]
		trimmed, trimmedBase := trimSpaceWithOffset(raw, interiorBase+seg[0])
		if m := propertyRe.FindSubmatch(trimmed); m != nil {
			if link.Properties == nil {
				link.Properties = make(map[string]string)
			}
			link.Properties[string(m[1])] = string(m[2])
			continue
		}
		if !link.HasDescription {
			link.HasDescription = true
			link.Description = p.buildDescription(trimmed, trimmedBase)
			_ = trimmedBase
		}
	}
	return link, total
}

// buildDescription parses a link's `|description` half, recursively as
// inline content, except that a description never itself contains a link
// (spec.md §4.4.1): if raw matches a bare URI in its entirety, Kind is
// URIDescription; otherwise it's recursively parsed with link recognition
// suppressed.
func (p *inlineParser) buildDescription(raw []byte, base int) LinkDescription {
	trimmed, trimmedBase := trimSpaceWithOffset(raw, base)
	if uri, ok := wholeURI(trimmed); ok {
		return LinkDescription{Kind: URIDescription, URI: uri}
	}
	saved := p.noLinks
	p.noLinks = true
	content := p.parseNested(trimmed, trimmedBase)
	p.noLinks = saved
	return LinkDescription{Kind: TextDescription, Inline: content}
}

func (p *inlineParser) tryRawURI(span []byte, base int) (InlineElement, int) {
	for _, scheme := range recognizedURISchemes {
		if bytes.HasPrefix(span, []byte(scheme)) {
			if end := rawURIEnd(span); end > len(scheme) {
				return p.buildRawLink(span[:end], base), end
			}
		}
	}
	if bytes.HasPrefix(span, []byte("www.")) {
		if end := rawURIEnd(span); end > len("www.") {
			return p.buildRawLink(span[:end], base), end
		}
	}
	return nil, 0
}

func (p *inlineParser) buildRawLink(raw []byte, base int) *Link {
	path := string(raw)
	if bytes.HasPrefix(raw, []byte("www.")) {
		path = "https://" + path
	}
	return &Link{Reg: p.region(base, base+len(raw)), Kind: RawLink, HasPath: true, Path: path}
}

// wholeURI reports whether b, trimmed, is entirely consumed by the bare-URI
// scanner (used to classify link descriptions, spec.md §4.4.1).
func wholeURI(b []byte) (string, bool) {
	for _, scheme := range recognizedURISchemes {
		if bytes.HasPrefix(b, []byte(scheme)) && rawURIEnd(b) == len(b) {
			return string(b), true
		}
	}
	if bytes.HasPrefix(b, []byte("www.")) && rawURIEnd(b) == len(b) {
		return "https://" + string(b), true
	}
	return "", false
}

// rawURIEnd scans a run of URI-shaped bytes starting at s[0], stopping at
// whitespace, a closing bracket belonging to the *enclosing* inline
// context, or EOF, then trims common trailing sentence punctuation.
func rawURIEnd(s []byte) int {
	end := 0
	for end < len(s) {
		switch c := s[end]; {
		case isSpaceOrTab(c) || c == '\n':
			goto trim
		case c == ']' || c == '|':
			goto trim
		}
		end++
	}
trim:
	for end > 0 {
		switch s[end-1] {
		case '.', ',', ';', ':', '!', '?', ')':
			end--
			continue
		}
		break
	}
	return end
}

// findUnescapedPipe returns the offset of the first '|' not preceded by a
// backslash escape, or -1.
func findUnescapedPipe(b []byte) int {
	for i := 0; i < len(b); i++ {
		if b[i] == '\\' && i+1 < len(b) {
			i++
			continue
		}
		if b[i] == '|' {
			return i
		}
	}
	return -1
}

// splitUnescapedPipes splits b on every unescaped '|', returning the
// [start,end) byte range of each segment (including the first, before any
// pipe, and allowing zero pipes).
func splitUnescapedPipes(b []byte) [][2]int {
	var segs [][2]int
	start, i := 0, 0
	for i < len(b) {
		if b[i] == '\\' && i+1 < len(b) {
			i += 2
			continue
		}
		if b[i] == '|' {
			segs = append(segs, [2]int{start, i})
			i++
			start = i
			continue
		}
		i++
	}
	segs = append(segs, [2]int{start, len(b)})
	return segs
}

// trimSpaceWithOffset trims leading/trailing ASCII space/tab from b and
// returns the adjusted absolute base offset of the trimmed slice's start.
func trimSpaceWithOffset(b []byte, base int) ([]byte, int) {
	left := 0
	for left < len(b) && isSpaceOrTab(b[left]) {
		left++
	}
	right := len(b)
	for right > left && isSpaceOrTab(b[right-1]) {
		right--
	}
	return b[left:right], base + left
}

// classifyTarget implements the link-target classification table of
// spec.md §4.4.1.
func classifyTarget(target string) (kind LinkKind, path string, hasPath bool, anchor []string, interwikiIndex int, interwikiName string) {
	rest := target

	switch {
	case indexedInterwikiRe.MatchString(target):
		m := indexedInterwikiRe.FindStringSubmatch(target)
		n, _ := strconv.Atoi(m[1])
		kind = IndexedInterwikiLink
		interwikiIndex = n
		rest = target[len(m[0]):]

	case namedInterwikiRe.MatchString(target):
		m := namedInterwikiRe.FindStringSubmatch(target)
		kind = NamedInterwikiLink
		interwikiName = m[1]
		rest = target[len(m[0]):]

	case strings.HasPrefix(target, "diary:"):
		kind = DiaryLink
		rest = target[len("diary:"):]

	case strings.HasPrefix(target, "local:"):
		kind = ExternalFileLink
		rest = target[len("local:"):]

	case strings.HasPrefix(target, "file:"):
		kind = ExternalFileLink
		rest = target[len("file:"):]

	case strings.HasPrefix(target, "//"):
		kind = ExternalFileLink
		rest = "file:" + target

	case strings.HasPrefix(target, "www."):
		kind = RawLink
		rest = "https://" + target

	default:
		kind = WikiLink
		rest = target
	}

	parts := strings.Split(rest, "#")
	path = parts[0]
	hasPath = path != ""
	if len(parts) > 1 {
		anchor = parts[1:]
	}
	return kind, path, hasPath, anchor, interwikiIndex, interwikiName
}
