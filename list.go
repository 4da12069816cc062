package vwparse

import "bytes"

// parseList consumes a run of sibling ListItems sharing baseIndent,
// recursing into parseListItem for each one (spec.md §4.3.1). A blank line
// is absorbed without terminating the list as long as the next non-blank
// line is a marker at baseIndent or is indented deeper; otherwise the blank
// run is put back and the list ends there (see absorbListBlanks). Items
// at baseIndent are taken whatever their marker; a change of marker does
// not end the list.
func (bp *blockParser) parseList(baseIndent int) *List {
	start := bp.offset()
	var items []ListItem

	for !bp.atEOF() {
		if bp.absorbListBlanks(baseIndent) {
			break
		}
		if bp.atEOF() {
			break
		}

		line, _, _ := bp.peekLine()
		indent := indentWidth(line)
		if indent != baseIndent {
			break
		}

		_, tail := trimIndent(line, indent)
		kind, consumed, ok := matchMarker(tail)
		if !ok {
			break
		}
		items = append(items, bp.parseListItem(indent, kind, consumed))
	}

	disambiguateList(items)
	return &List{Reg: bp.region(start, bp.offset()), Items: items, Family: familyOf(items)}
}

// absorbListBlanks consumes a run of blank lines at the current position if
// the line after them actually continues the list — either a sibling
// marker at baseIndent, or material indented deeper than baseIndent
// (continuation text or a sublist) — and reports false. Otherwise it
// restores the cursor to just before the blanks and reports true, telling
// the caller to stop (spec.md §4.3.1: "a blank line is retained only if a
// subsequent line continues the list at the same indent; otherwise it
// terminates the list"). Equal indent alone isn't enough: an equally
// indented line that isn't itself a marker (e.g. a following table or
// paragraph) does not continue the list. The restore is a genuine backward
// rewind past lines already consumed, so it goes through
// Cursor.Checkpoint/Restore rather than advanceTo, which is forward-only.
func (bp *blockParser) absorbListBlanks(baseIndent int) (stop bool) {
	line, _, _ := bp.peekLine()
	if !isBlankLine(line) {
		return false
	}
	cp := bp.cur.Checkpoint()
	for !bp.atEOF() {
		l, _, next := bp.peekLine()
		if !isBlankLine(l) {
			break
		}
		bp.advanceTo(next)
	}
	if bp.atEOF() {
		bp.cur.Restore(cp)
		return true
	}

	nextLine, _, _ := bp.peekLine()
	nextIndent := indentWidth(nextLine)
	if nextIndent > baseIndent {
		return false
	}
	if nextIndent == baseIndent {
		_, tail := trimIndent(nextLine, nextIndent)
		if _, _, ok := matchMarker(tail); ok {
			return false
		}
	}
	bp.cur.Restore(cp)
	return true
}

// parseListItem consumes one ListItem: its marker line, then any deeper
// continuation lines (flattened into Content, since spec.md §3 gives
// ListItem a single flat content list rather than per-line structure) and
// any deeper sublists (spec.md §4.3.1 "A line whose indent is strictly
// greater starts a sublist recursively parsed with the same engine").
func (bp *blockParser) parseListItem(baseIndent int, kind ListKind, markerLen int) ListItem {
	itemStart := bp.offset()
	line, _, next := bp.peekLine()
	_, tail := trimIndent(line, baseIndent)
	rest := tail[markerLen:]
	spaceRun := leadingSpace(rest)
	afterMarker := rest[spaceRun:]
	contentBase := bp.offset() + baseIndent + markerLen + spaceRun

	todo, afterTodo := matchTodo(afterMarker)
	if todo != nil {
		contentBase += len(afterMarker) - len(afterTodo)
		afterMarker = afterTodo
	}

	var content []InlineElement
	if len(afterMarker) > 0 {
		content = append(content, bp.parseInlineContent(afterMarker, contentBase)...)
	}
	bp.advanceTo(next)
	lastEnd := bp.offset()

	var sublists []List
	for !bp.atEOF() {
		if bp.absorbListBlanks(baseIndent) {
			break
		}
		if bp.atEOF() {
			break
		}

		line, _, nxt := bp.peekLine()
		lineIndent := indentWidth(line)
		if lineIndent <= baseIndent {
			break
		}
		_, lineTail := trimIndent(line, lineIndent)
		if _, _, ok := matchMarker(lineTail); ok {
			sub := bp.parseList(lineIndent)
			sublists = append(sublists, *sub)
			lastEnd = bp.offset()
			continue
		}

		content = append(content, bp.parseInlineContent(lineTail, bp.offset()+lineIndent)...)
		bp.advanceTo(nxt)
		lastEnd = bp.offset()
	}

	return ListItem{
		Reg:      bp.region(itemStart, lastEnd),
		Indent:   baseIndent,
		Kind:     kind,
		Todo:     todo,
		Content:  content,
		Sublists: sublists,
	}
}

// matchMarker recognizes a list-item marker at the start of line (spec.md
// §3's ListKind alphabet, §4.3.1). It does not yet distinguish alphabetic
// from Roman-numeral markers — both land on LowerAlpha/UpperAlpha, and are
// reclassified, a whole contiguous run at a time, by disambiguateList (spec.md
// §4.3.2).
func matchMarker(line []byte) (kind ListKind, consumed int, ok bool) {
	if len(line) == 0 {
		return ListKind{}, 0, false
	}

	switch line[0] {
	case '-':
		if len(line) == 1 || isSpaceOrTab(line[1]) {
			return ListKind{Family: Hyphen, Marker: "-"}, 1, true
		}
		return ListKind{}, 0, false
	case '*':
		if len(line) == 1 || isSpaceOrTab(line[1]) {
			return ListKind{Family: Asterisk, Marker: "*"}, 1, true
		}
		return ListKind{}, 0, false
	case '#':
		if len(line) == 1 || isSpaceOrTab(line[1]) {
			return ListKind{Family: Pound, Marker: "#"}, 1, true
		}
		return ListKind{}, 0, false
	}

	if n := digitRun(line); n > 0 {
		if n < len(line) && (line[n] == '.' || line[n] == ')') {
			end := n + 1
			if end < len(line) && !isSpaceOrTab(line[end]) {
				return ListKind{}, 0, false
			}
			return ListKind{Family: Digit, Marker: string(line[:n]), Suffix: suffixFor(line[n])}, end, true
		}
		return ListKind{}, 0, false
	}

	if n := alphaRun(line); n > 0 {
		if n < len(line) && (line[n] == '.' || line[n] == ')') {
			end := n + 1
			if end < len(line) && !isSpaceOrTab(line[end]) {
				return ListKind{}, 0, false
			}
			family := UpperAlpha
			if isAlphaLower(line[0]) {
				family = LowerAlpha
			}
			return ListKind{Family: family, Marker: string(line[:n]), Suffix: suffixFor(line[n])}, end, true
		}
		return ListKind{}, 0, false
	}

	return ListKind{}, 0, false
}

func suffixFor(b byte) ListSuffix {
	if b == ')' {
		return Paren
	}
	return Period
}

func digitRun(line []byte) int {
	n := 0
	for n < len(line) && isDigit(line[n]) {
		n++
	}
	return n
}

// alphaRun consumes a run of same-case letters.
func alphaRun(line []byte) int {
	if len(line) == 0 || !isAlpha(line[0]) {
		return 0
	}
	lower := isAlphaLower(line[0])
	n := 0
	for n < len(line) {
		c := line[n]
		if lower && !isAlphaLower(c) {
			break
		}
		if !lower && !isAlphaUpper(c) {
			break
		}
		n++
	}
	return n
}

// matchTodo recognizes the bracketed todo-status attribute immediately
// following a marker and its mandatory whitespace (spec.md §4.3.1).
func matchTodo(b []byte) (*TodoStatus, []byte) {
	if len(b) < 3 || b[0] != '[' || b[2] != ']' {
		return nil, b
	}
	var status TodoStatus
	switch b[1] {
	case ' ':
		status = Incomplete
	case '.':
		status = OneThird
	case 'o':
		status = TwoThirds
	case 'O':
		status = AlmostDone
	case 'X':
		status = Complete
	case '-':
		status = Rejected
	default:
		return nil, b
	}
	rest := b[3:]
	if len(rest) > 0 && !isSpaceOrTab(rest[0]) {
		return nil, b
	}
	return &status, bytes.TrimLeft(rest, " \t")
}

// disambiguateList applies spec.md §4.3.2 to one List's items: for each maximal
// contiguous run of items whose marker Family is LowerAlpha (or,
// separately, UpperAlpha), the whole run becomes LowerRoman/UpperRoman if
// every item's Marker is composed solely of valid Roman-numeral letters,
// else it stays Alpha. It's applied bottom-up by the caller, so nested
// sublists are already settled before their parent's run is inspected.
func disambiguateList(items []ListItem) {
	i := 0
	for i < len(items) {
		fam := items[i].Kind.Family
		if fam != LowerAlpha && fam != UpperAlpha {
			i++
			continue
		}
		j := i + 1
		for j < len(items) && items[j].Kind.Family == fam {
			j++
		}
		allRoman := true
		for k := i; k < j; k++ {
			if !isAllRoman(items[k].Kind.Marker) {
				allRoman = false
				break
			}
		}
		if allRoman {
			roman := LowerRoman
			if fam == UpperAlpha {
				roman = UpperRoman
			}
			for k := i; k < j; k++ {
				items[k].Kind.Family = roman
			}
		}
		i = j
	}
}

func isAllRoman(marker string) bool {
	if marker == "" {
		return false
	}
	for i := 0; i < len(marker); i++ {
		if !isRomanDigit(marker[i]) {
			return false
		}
	}
	return true
}

// familyOf summarizes a disambiguated list's items into the coarse
// ListFamily convenience field (SPEC_FULL.md §C.5).
func familyOf(items []ListItem) ListFamily {
	if len(items) == 0 {
		return SymbolicFamily
	}
	switch items[0].Kind.Family {
	case Hyphen, Asterisk, Pound:
		return SymbolicFamily
	case Digit:
		return NumericFamily
	case LowerRoman, UpperRoman:
		return RomanFamily
	default:
		return AlphaFamily
	}
}
