package vwparse

// InlineElement is the sealed set of inline productions (spec.md §3, §4.4).
// As with BlockElement, consumers type-switch exhaustively rather than
// relying on open polymorphism (spec.md §9).
type InlineElement interface {
	Region() Region
	inlineElement()
}

// Text is a run of plain inline text. Adjacent Text nodes are always
// coalesced at emit time (spec.md §3 invariant 5).
type Text struct {
	Reg   Region
	Value string
}

func (e *Text) Region() Region { return e.Reg }
func (*Text) inlineElement()   {}

// KeywordWord names one of the six recognized bare keywords (spec.md §3).
type KeywordWord int

// KeywordWord values.
const (
	DONE KeywordWord = iota
	FIXED
	FIXME
	STARTED
	TODO
	XXX
)

// Keyword is a bare uppercase literal recognized at a word boundary
// (spec.md §4.4 rule 5).
type Keyword struct {
	Reg  Region
	Word KeywordWord
}

func (e *Keyword) Region() Region { return e.Reg }
func (*Keyword) inlineElement()   {}

// DecorationStyle names one of the seven decorated-text styles (spec.md §4.4.2).
type DecorationStyle int

// DecorationStyle values.
const (
	Bold DecorationStyle = iota
	Italic
	BoldItalic
	Strikeout
	Superscript
	Subscript
	Code
)

// DecoratedText wraps styled inline content. For Code, Content is always
// exactly one Text node — Code's interior is never recursively parsed
// (spec.md §4.4.2).
type DecoratedText struct {
	Reg     Region
	Style   DecorationStyle
	Content []InlineElement
}

func (e *DecoratedText) Region() Region { return e.Reg }
func (*DecoratedText) inlineElement()   {}

// MathInline is a `$...$` inline math span (spec.md §4.4 rule 1).
type MathInline struct {
	Reg   Region
	Value string
}

func (e *MathInline) Region() Region { return e.Reg }
func (*MathInline) inlineElement()   {}

// Tags is a `:tag:tag:...:` run (spec.md §4.4 rule 2).
type Tags struct {
	Reg    Region
	Values []string
}

func (e *Tags) Region() Region { return e.Reg }
func (*Tags) inlineElement()   {}

// LinkKind discriminates the seven link/transclusion variants (spec.md §3).
type LinkKind int

// LinkKind values.
const (
	WikiLink LinkKind = iota
	IndexedInterwikiLink
	NamedInterwikiLink
	DiaryLink
	ExternalFileLink
	RawLink
	Transclusion
)

// DescriptionKind discriminates a link description's two shapes.
type DescriptionKind int

// DescriptionKind values.
const (
	TextDescription DescriptionKind = iota
	URIDescription
)

// LinkDescription is a link's optional `|description` half (spec.md §3).
// Link descriptions never themselves contain another link (spec.md §4.4.1):
// if Kind is URIDescription, the description text matched a bare URI and
// Inline is nil; otherwise Inline holds recursively-parsed inline content
// and URI is empty.
type LinkDescription struct {
	Kind   DescriptionKind
	Inline []InlineElement
	URI    string
}

// Link is any of the six link variants or a Transclusion (spec.md §3,
// §4.4.1). Fields not meaningful for a given Kind are left at their zero
// value; HasPath/HasDescription disambiguate "absent" from "empty string".
// Anchor is nil when the target had no `#fragment` suffix.
type Link struct {
	Reg  Region
	Kind LinkKind

	HasPath bool
	Path    string

	// InterwikiIndex is set for IndexedInterwikiLink (the N in "wikiN:").
	InterwikiIndex int
	// InterwikiName is set for NamedInterwikiLink (the NAME in "wn.NAME:").
	InterwikiName string

	Anchor []string

	HasDescription bool
	Description    LinkDescription

	// Properties holds `key="value"` pairs trailing a Transclusion.
	Properties map[string]string
}

func (e *Link) Region() Region { return e.Reg }
func (*Link) inlineElement()   {}
