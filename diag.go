package vwparse

// Kind identifies the cause of a Diagnostic (spec.md §7). The parser never
// fails a whole document over one of these; it always recovers per the
// "Behavior" column of that table.
type Kind int

// Kind values, in the order spec.md §7 lists them, plus the RaggedTable
// supplement (SPEC_FULL.md §C.4).
const (
	_ Kind = iota
	UnterminatedMultilineComment
	UnterminatedPreformatted
	UnterminatedMathBlock
	MalformedHeader
	MalformedLink
	InvalidDate
	RecursionLimitExceeded
	InvalidUTF8
	RaggedTable
)

// Severity distinguishes diagnostics that changed the parsed structure from
// ones that are purely informational (SPEC_FULL.md §C.2).
type Severity int

// Severity values.
const (
	Warning Severity = iota
	Error
)

func (k Kind) defaultSeverity() Severity {
	switch k {
	case UnterminatedMultilineComment, InvalidDate, RaggedTable:
		return Warning
	default:
		return Error
	}
}

// Diagnostic is a recoverable parse failure with a location, per spec.md §4.5.
type Diagnostic struct {
	Kind     Kind
	Region   Region
	Message  string
	Severity Severity
}

func newDiagnostic(kind Kind, region Region, message string) Diagnostic {
	return Diagnostic{Kind: kind, Region: region, Message: message, Severity: kind.defaultSeverity()}
}

// diagSink collects diagnostics during a single parse. It is not safe for
// concurrent use, matching the rest of the parser (spec.md §5).
type diagSink struct {
	diags []Diagnostic
}

func (s *diagSink) add(kind Kind, region Region, message string) {
	s.diags = append(s.diags, newDiagnostic(kind, region, message))
}
