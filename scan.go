package vwparse

import "bytes"

// Primitive scanners: pure, side-effect-free helpers shared by the comment
// preprocessor, block parser, and list engine: line splitting, indent
// trimming, and blank-line detection, generalized to vimwiki's CR/LF/CRLF
// acceptance (spec.md §6) and tab-stop-of-4 indentation (spec.md §4.3.1).

func isSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }

func isHSpace(b byte) bool { return b == ' ' || b == '\t' }

// lineEnd scans forward from off and returns (contentEnd, next):
// contentEnd is the offset of the first line-terminator byte (or len(src)
// at EOF with no terminator); next is the offset just past the
// terminator, recognizing "\n", "\r\n", and "\r" (spec.md §6).
func lineEnd(src []byte, off int) (contentEnd, next int) {
	for i := off; i < len(src); i++ {
		switch src[i] {
		case '\n':
			return i, i + 1
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				return i, i + 2
			}
			return i, i + 1
		}
	}
	return len(src), len(src)
}

// splitLine returns the content of the line starting at off (excluding its
// terminator) and the offset of the following line.
func splitLine(src []byte, off int) (line []byte, next int) {
	ce, ne := lineEnd(src, off)
	return src[off:ce], ne
}

// normalizeEOLs rewrites CRLF/CR sequences in s to LF, for use in the
// *content* of string-valued AST fields. Regions always refer to the
// original bytes and are never touched by this.
func normalizeEOLs(s []byte) []byte {
	if bytes.IndexByte(s, '\r') < 0 {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' {
			out = append(out, '\n')
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			continue
		}
		out = append(out, s[i])
	}
	return out
}

// isBlankLine reports whether line (content, no terminator) is empty or
// composed solely of spaces/tabs.
func isBlankLine(line []byte) bool {
	return len(bytes.TrimLeft(line, " \t")) == 0
}

// trimIndent counts up to limit columns of leading indentation (tabs expand
// to the next multiple of 4) and returns the indent width plus the
// remaining bytes. No partial-tab carry is needed since a whole line is
// always available here, never a partial streaming window.
func trimIndent(line []byte, limit int) (n int, tail []byte) {
	tail = line
	for n < limit && len(tail) > 0 {
		switch tail[0] {
		case ' ':
			n++
			tail = tail[1:]
		case '\t':
			step := 4 - (n % 4)
			if n+step > limit {
				return n, tail
			}
			n += step
			tail = tail[1:]
		default:
			return n, tail
		}
	}
	return n, tail
}

// indentWidth returns the full indentation width of line (no limit).
func indentWidth(line []byte) int {
	n, _ := trimIndent(line, len(line)*4+4)
	return n
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlphaLower(b byte) bool { return b >= 'a' && b <= 'z' }

func isAlphaUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func isAlpha(b byte) bool { return isAlphaLower(b) || isAlphaUpper(b) }

// isRomanDigit reports whether b is a valid Roman numeral letter, in either
// case (spec.md §4.3.2).
func isRomanDigit(b byte) bool {
	switch b {
	case 'i', 'v', 'x', 'l', 'c', 'd', 'm',
		'I', 'V', 'X', 'L', 'C', 'D', 'M':
		return true
	default:
		return false
	}
}
