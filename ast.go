package vwparse

// Page is the root of a parsed document: an ordered sequence of top-level
// BlockElements, plus the diagnostics accumulated while producing them
// (spec.md §3 "Page", §6 "parse").
type Page struct {
	Blocks []BlockElement
	diags  []Diagnostic
}

// Diagnostics returns the diagnostics collected while parsing the page
// (SPEC_FULL.md §C.3). The slice is owned by the caller; mutating it has no
// effect on the Page.
func (p Page) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(p.diags))
	copy(out, p.diags)
	return out
}

// BlockElement is the sealed set of top-level and list-item block
// productions (spec.md §3). Consumers exhaustively type-switch over it
// rather than relying on open polymorphism (spec.md §9).
type BlockElement interface {
	Region() Region
	blockElement()
}

// BlockquoteForm distinguishes the two vimwiki blockquote spellings.
type BlockquoteForm int

// BlockquoteForm values.
const (
	Indented BlockquoteForm = iota
	Chevron
)

// PlaceholderKind discriminates the four %-placeholder forms.
type PlaceholderKind int

// PlaceholderKind values.
const (
	TitlePlaceholder PlaceholderKind = iota
	NoHTMLPlaceholder
	TemplatePlaceholder
	DatePlaceholder
)

// Header is a `= Heading =`-style block (spec.md §4.3 rule 2). Level is the
// number of '=' on the (matching) opening and closing runs. Anchor is the
// slugified header text (SPEC_FULL.md §C.1).
type Header struct {
	Reg      Region
	Level    int
	Centered bool
	Content  []InlineElement
	Anchor   string
}

func (b *Header) Region() Region { return b.Reg }
func (*Header) blockElement()    {}

// Paragraph is one or more contiguous zero-indent lines (spec.md §4.3 rule 11).
type Paragraph struct {
	Reg   Region
	Lines [][]InlineElement
}

func (b *Paragraph) Region() Region { return b.Reg }
func (*Paragraph) blockElement()    {}

// Blockquote is an indented (>=4 space) or chevron-prefixed (`> `) block.
type Blockquote struct {
	Reg   Region
	Form  BlockquoteForm
	Lines [][]InlineElement
}

func (b *Blockquote) Region() Region { return b.Reg }
func (*Blockquote) blockElement()    {}

// DefinitionEntry is one `term:: definition` pairing, possibly with multiple
// continuation definitions.
type DefinitionEntry struct {
	Term []InlineElement
	Defs [][]InlineElement
}

// DefinitionList is a run of `term:: def` / `:: def` lines (spec.md §4.3 rule 8).
type DefinitionList struct {
	Reg     Region
	Entries []DefinitionEntry
}

func (b *DefinitionList) Region() Region { return b.Reg }
func (*DefinitionList) blockElement()    {}

// List is an indentation-sensitive run of ListItems sharing one base
// indent (spec.md §3 invariant 6, §4.3.1). Family is derived from the
// first item's ListKind.Family after disambiguation (SPEC_FULL.md §C.5).
// The parser does not split a run whose items use markers of different
// families, so in a mixed-marker list later items may not match Family.
type List struct {
	Reg    Region
	Items  []ListItem
	Family ListFamily
}

func (b *List) Region() Region { return b.Reg }
func (*List) blockElement()    {}

// Table is a run of `|`-delimited rows (spec.md §4.3 rule 7, §4.3.3).
type Table struct {
	Reg      Region
	Rows     []Row
	Centered bool
}

func (b *Table) Region() Region { return b.Reg }
func (*Table) blockElement()    {}

// MathBlock is a `{{$...}}$` block (spec.md §4.3 rule 5). Env is nil when no
// `%environment%` was given.
type MathBlock struct {
	Reg   Region
	Env   *string
	Lines []string
}

func (b *MathBlock) Region() Region { return b.Reg }
func (*MathBlock) blockElement()    {}

// PreformattedText is a `{{{...}}}` block (spec.md §4.3 rule 6). Lang is nil
// when no language tag was given.
type PreformattedText struct {
	Reg      Region
	Lang     *string
	Metadata map[string]string
	Lines    []string
}

func (b *PreformattedText) Region() Region { return b.Reg }
func (*PreformattedText) blockElement()    {}

// Placeholder is one of the four `%`-prefixed directives (spec.md §4.3 rule 4).
type Placeholder struct {
	Reg     Region
	Kind    PlaceholderKind
	Text    string // Title, Template: the directive's argument text.
	Date    DateValue
	HasDate bool // false when %date's value failed to parse (InvalidDate).
}

func (b *Placeholder) Region() Region { return b.Reg }
func (*Placeholder) blockElement()    {}

// DateValue is a plain Gregorian calendar date (spec.md §3 `Date(YYYY-MM-DD)`).
// A dedicated value type, rather than time.Time, avoids smuggling in a time
// zone or clock that a %date directive never carries.
type DateValue struct {
	Year, Month, Day int
}

// Divider is a `----` rule (spec.md §4.3 rule 3).
type Divider struct {
	Reg Region
}

func (b *Divider) Region() Region { return b.Reg }
func (*Divider) blockElement()    {}

// NonBlankLine is the catch-all 1-3 space indented line production
// (spec.md §4.3 rule 12).
type NonBlankLine struct {
	Reg     Region
	Content []InlineElement
}

func (b *NonBlankLine) Region() Region { return b.Reg }
func (*NonBlankLine) blockElement()    {}

// BlankLine is an empty or whitespace-only line (spec.md §4.3 rule 1).
type BlankLine struct {
	Reg Region
}

func (b *BlankLine) Region() Region { return b.Reg }
func (*BlankLine) blockElement()    {}

// ListFamily is the mutually-consistent marker family a disambiguated List
// settles on (GLOSSARY "List family").
type ListFamily int

// ListFamily values.
const (
	SymbolicFamily ListFamily = iota
	NumericFamily
	AlphaFamily
	RomanFamily
)

// ListSuffix is the punctuation following an ordered-list marker.
type ListSuffix int

// ListSuffix values.
const (
	NoSuffix ListSuffix = iota
	Period
	Paren
)

// MarkerFamily names the raw shape of one list item's marker (spec.md §3
// `ListKind`). This is finer-grained than ListFamily: LowerAlpha and
// LowerRoman both collapse to ListFamily's AlphaFamily/RomanFamily only
// after the disambiguator (spec.md §4.3.2) decides which one a whole run
// actually is.
type MarkerFamily int

// MarkerFamily values, matching spec.md §3's ListKind enumeration.
const (
	Hyphen MarkerFamily = iota
	Asterisk
	Pound
	Digit
	LowerAlpha
	UpperAlpha
	LowerRoman
	UpperRoman
)

// ListKind names the marker shape of a ListItem (spec.md §3). Marker holds
// the raw marker text (e.g. "iii", "b", "3") so the disambiguator
// (spec.md §4.3.2) and any downstream renderer can recover the exact
// character(s) used without re-deriving them from an index.
type ListKind struct {
	Family MarkerFamily
	Marker string
	Suffix ListSuffix
}

// TodoStatus is the bracketed `[x]`-style completion marker on a list item
// (spec.md §3, §4.3.1 "Todo attribute").
type TodoStatus int

// TodoStatus values.
const (
	Incomplete TodoStatus = iota
	OneThird
	TwoThirds
	AlmostDone
	Complete
	Rejected
)

// ListItem is one entry of a List (spec.md §3).
type ListItem struct {
	Reg      Region
	Indent   int
	Kind     ListKind
	Todo     *TodoStatus
	Content  []InlineElement
	Sublists []List
}

// Row is one line of a Table (spec.md §3).
type Row struct {
	Reg     Region
	Divider bool
	Cells   []Cell
}

// CellKind discriminates the three Cell shapes.
type CellKind int

// CellKind values.
const (
	CellContent CellKind = iota
	CellSpanAbove
	CellSpanLeft
)

// Cell is one `|`-delimited field of a table Row (spec.md §3, §4.3.3).
type Cell struct {
	Reg     Region
	Kind    CellKind
	Content []InlineElement
}
