package vwparse

import "bytes"

// tryTable recognizes a run of `|`-delimited rows (spec.md §4.3 rule 7,
// §4.3.3). Leading indentation before the opening `|`, like a Header's
// leading `=` indentation, marks the table Centered; rows are otherwise
// column-0 delimited.
func (bp *blockParser) tryTable(line []byte) *Table {
	indent := indentWidth(line)
	_, tail := trimIndent(line, indent)
	if len(tail) == 0 || tail[0] != '|' {
		return nil
	}
	centered := indent > 0

	start := bp.offset()
	var rows []Row
	for !bp.atEOF() {
		lineStart := bp.offset()
		line, contentEnd, next := bp.peekLine()
		lineIndent := indentWidth(line)
		_, lineTail := trimIndent(line, lineIndent)
		if len(lineTail) == 0 || lineTail[0] != '|' {
			break
		}
		rows = append(rows, bp.parseTableRow(lineTail, lineStart, lineIndent, contentEnd))
		bp.advanceTo(next)
	}

	reg := bp.region(start, bp.offset())
	if checkRagged(rows) {
		bp.sink.add(RaggedTable, reg, "table rows have differing cell counts")
	}
	return &Table{Reg: reg, Rows: rows, Centered: centered}
}

// parseTableRow splits one row into its cells on unescaped '|' (the same
// escape-aware splitter links.go uses for link/transclusion sections), or
// recognizes it as a divider row separating header from body.
func (bp *blockParser) parseTableRow(tail []byte, lineStart, lineIndent, contentEnd int) Row {
	base := lineStart + lineIndent
	reg := bp.region(lineStart, contentEnd)

	trimmedTail := bytes.TrimRight(tail, " \t")
	if isTableDividerRow(trimmedTail) {
		return Row{Reg: reg, Divider: true}
	}

	hasTrailingPipe := len(trimmedTail) > 0 && trimmedTail[len(trimmedTail)-1] == '|'
	segs := splitUnescapedPipes(tail)
	cellSegs := segs[1:] // segs[0] is always empty: tail[0] == '|'
	if hasTrailingPipe && len(cellSegs) > 0 {
		cellSegs = cellSegs[:len(cellSegs)-1]
	}

	cells := make([]Cell, len(cellSegs))
	for i, seg := range cellSegs {
		raw := tail[seg[0]:seg[1]]
		trimmed, trimmedBase := trimSpaceWithOffset(raw, base+seg[0])
		cellReg := bp.region(base+seg[0], base+seg[1])
		switch string(trimmed) {
		case ">":
			cells[i] = Cell{Reg: cellReg, Kind: CellSpanLeft}
		case `\/`:
			cells[i] = Cell{Reg: cellReg, Kind: CellSpanAbove}
		default:
			cells[i] = Cell{Reg: cellReg, Kind: CellContent, Content: bp.parseInlineContent(trimmed, trimmedBase)}
		}
	}
	return Row{Reg: reg, Cells: cells}
}

// isTableDividerRow reports whether a (right-trimmed) row is composed
// solely of '|', '-', ':' and horizontal whitespace, with at least one '-'.
func isTableDividerRow(trimmedTail []byte) bool {
	hasDash := false
	for _, b := range trimmedTail {
		switch b {
		case '-':
			hasDash = true
		case '|', ':', ' ', '\t':
		default:
			return false
		}
	}
	return hasDash
}

// checkRagged reports whether the non-divider rows of a table disagree on
// cell count (SPEC_FULL.md §C.4's RaggedTable diagnostic).
func checkRagged(rows []Row) bool {
	n := -1
	for _, r := range rows {
		if r.Divider {
			continue
		}
		if n < 0 {
			n = len(r.Cells)
			continue
		}
		if len(r.Cells) != n {
			return true
		}
	}
	return false
}
