package vwparse

import (
	"fmt"
	"io"
)

// Format methods for every enum in the package, giving them useful
// fmt.Printf display: the plain name of the value, with no verb-dependent variants
// since these enums carry no sub-fields of their own (richer nodes get
// their own Format below).

func (k Kind) Format(f fmt.State, _ rune) {
	switch k {
	case UnterminatedMultilineComment:
		io.WriteString(f, "UnterminatedMultilineComment")
	case UnterminatedPreformatted:
		io.WriteString(f, "UnterminatedPreformatted")
	case UnterminatedMathBlock:
		io.WriteString(f, "UnterminatedMathBlock")
	case MalformedHeader:
		io.WriteString(f, "MalformedHeader")
	case MalformedLink:
		io.WriteString(f, "MalformedLink")
	case InvalidDate:
		io.WriteString(f, "InvalidDate")
	case RecursionLimitExceeded:
		io.WriteString(f, "RecursionLimitExceeded")
	case InvalidUTF8:
		io.WriteString(f, "InvalidUTF8")
	case RaggedTable:
		io.WriteString(f, "RaggedTable")
	default:
		fmt.Fprintf(f, "InvalidKind%d", int(k))
	}
}

func (s Severity) Format(f fmt.State, _ rune) {
	switch s {
	case Warning:
		io.WriteString(f, "Warning")
	case Error:
		io.WriteString(f, "Error")
	default:
		fmt.Fprintf(f, "InvalidSeverity%d", int(s))
	}
}

// Format writes a one-line "Kind: message @ line:col" form, or, with `%+v`,
// also the byte range of the Region.
func (d Diagnostic) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, "%v: %s @ %d:%d", d.Kind, d.Message, d.Region.Line, d.Region.Column)
	if f.Flag('+') {
		fmt.Fprintf(f, " [%d,%d)", d.Region.Start, d.Region.End)
	}
}

func (bf BlockquoteForm) Format(f fmt.State, _ rune) {
	switch bf {
	case Indented:
		io.WriteString(f, "Indented")
	case Chevron:
		io.WriteString(f, "Chevron")
	default:
		fmt.Fprintf(f, "InvalidBlockquoteForm%d", int(bf))
	}
}

func (pk PlaceholderKind) Format(f fmt.State, _ rune) {
	switch pk {
	case TitlePlaceholder:
		io.WriteString(f, "Title")
	case NoHTMLPlaceholder:
		io.WriteString(f, "NoHTML")
	case TemplatePlaceholder:
		io.WriteString(f, "Template")
	case DatePlaceholder:
		io.WriteString(f, "Date")
	default:
		fmt.Fprintf(f, "InvalidPlaceholderKind%d", int(pk))
	}
}

func (d DateValue) Format(f fmt.State, _ rune) {
	fmt.Fprintf(f, "%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (lf ListFamily) Format(f fmt.State, _ rune) {
	switch lf {
	case SymbolicFamily:
		io.WriteString(f, "Symbolic")
	case NumericFamily:
		io.WriteString(f, "Numeric")
	case AlphaFamily:
		io.WriteString(f, "Alpha")
	case RomanFamily:
		io.WriteString(f, "Roman")
	default:
		fmt.Fprintf(f, "InvalidListFamily%d", int(lf))
	}
}

func (ls ListSuffix) Format(f fmt.State, _ rune) {
	switch ls {
	case NoSuffix:
		io.WriteString(f, "NoSuffix")
	case Period:
		io.WriteString(f, "Period")
	case Paren:
		io.WriteString(f, "Paren")
	default:
		fmt.Fprintf(f, "InvalidListSuffix%d", int(ls))
	}
}

func (mf MarkerFamily) Format(f fmt.State, _ rune) {
	switch mf {
	case Hyphen:
		io.WriteString(f, "Hyphen")
	case Asterisk:
		io.WriteString(f, "Asterisk")
	case Pound:
		io.WriteString(f, "Pound")
	case Digit:
		io.WriteString(f, "Digit")
	case LowerAlpha:
		io.WriteString(f, "LowerAlpha")
	case UpperAlpha:
		io.WriteString(f, "UpperAlpha")
	case LowerRoman:
		io.WriteString(f, "LowerRoman")
	case UpperRoman:
		io.WriteString(f, "UpperRoman")
	default:
		fmt.Fprintf(f, "InvalidMarkerFamily%d", int(mf))
	}
}

func (t TodoStatus) Format(f fmt.State, _ rune) {
	switch t {
	case Incomplete:
		io.WriteString(f, "Incomplete")
	case OneThird:
		io.WriteString(f, "OneThird")
	case TwoThirds:
		io.WriteString(f, "TwoThirds")
	case AlmostDone:
		io.WriteString(f, "AlmostDone")
	case Complete:
		io.WriteString(f, "Complete")
	case Rejected:
		io.WriteString(f, "Rejected")
	default:
		fmt.Fprintf(f, "InvalidTodoStatus%d", int(t))
	}
}

func (w KeywordWord) Format(f fmt.State, _ rune) {
	switch w {
	case DONE:
		io.WriteString(f, "DONE")
	case FIXED:
		io.WriteString(f, "FIXED")
	case FIXME:
		io.WriteString(f, "FIXME")
	case STARTED:
		io.WriteString(f, "STARTED")
	case TODO:
		io.WriteString(f, "TODO")
	case XXX:
		io.WriteString(f, "XXX")
	default:
		fmt.Fprintf(f, "InvalidKeywordWord%d", int(w))
	}
}

func (ds DecorationStyle) Format(f fmt.State, _ rune) {
	switch ds {
	case Bold:
		io.WriteString(f, "Bold")
	case Italic:
		io.WriteString(f, "Italic")
	case BoldItalic:
		io.WriteString(f, "BoldItalic")
	case Strikeout:
		io.WriteString(f, "Strikeout")
	case Superscript:
		io.WriteString(f, "Superscript")
	case Subscript:
		io.WriteString(f, "Subscript")
	case Code:
		io.WriteString(f, "Code")
	default:
		fmt.Fprintf(f, "InvalidDecorationStyle%d", int(ds))
	}
}

func (lk LinkKind) Format(f fmt.State, _ rune) {
	switch lk {
	case WikiLink:
		io.WriteString(f, "Wiki")
	case IndexedInterwikiLink:
		io.WriteString(f, "IndexedInterwiki")
	case NamedInterwikiLink:
		io.WriteString(f, "NamedInterwiki")
	case DiaryLink:
		io.WriteString(f, "Diary")
	case ExternalFileLink:
		io.WriteString(f, "ExternalFile")
	case RawLink:
		io.WriteString(f, "Raw")
	case Transclusion:
		io.WriteString(f, "Transclusion")
	default:
		fmt.Fprintf(f, "InvalidLinkKind%d", int(lk))
	}
}

func (dk DescriptionKind) Format(f fmt.State, _ rune) {
	switch dk {
	case TextDescription:
		io.WriteString(f, "TextDescription")
	case URIDescription:
		io.WriteString(f, "URIDescription")
	default:
		fmt.Fprintf(f, "InvalidDescriptionKind%d", int(dk))
	}
}

func (ck CellKind) Format(f fmt.State, _ rune) {
	switch ck {
	case CellContent:
		io.WriteString(f, "CellContent")
	case CellSpanAbove:
		io.WriteString(f, "CellSpanAbove")
	case CellSpanLeft:
		io.WriteString(f, "CellSpanLeft")
	default:
		fmt.Fprintf(f, "InvalidCellKind%d", int(ck))
	}
}
