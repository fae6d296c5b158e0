// Package diagnostics defines the error-kind taxonomy surfaced by the
// translation pipeline, adapted from reqtraq's own Issue/IssueType/
// IssueSeverity shape to the kinds spec §7 enumerates.
package diagnostics

// Kind is the taxonomy of error an Issue can represent.
type Kind uint

const (
	// KindParseError is libclang returning a non-success ErrorCode from
	// Index.Parse.
	KindParseError Kind = iota
	// KindTokenizationError is an unexpected token stream shape: a
	// missing extent, or an empty macro body where one was required.
	KindTokenizationError
	// KindMacroParseError is a macro body that doesn't match the
	// accepted grammar.
	KindMacroParseError
	// KindMacroUnsupported is a macro body that parsed but has no
	// translation rule.
	KindMacroUnsupported
	// KindConflictingDeclaration is two items sharing (header, name)
	// with differing declaration text and overlapping feature sets.
	KindConflictingDeclaration
	// KindInvariantViolation is a fatal internal-consistency failure,
	// e.g. a visitor observing a cursor whose TU is not registered.
	KindInvariantViolation
)

func (k Kind) String() string {
	switch k {
	case KindParseError:
		return "parse-error"
	case KindTokenizationError:
		return "tokenization-error"
	case KindMacroParseError:
		return "macro-parse-error"
	case KindMacroUnsupported:
		return "macro-unsupported"
	case KindConflictingDeclaration:
		return "conflicting-declaration"
	case KindInvariantViolation:
		return "invariant-violation"
	default:
		return "unknown"
	}
}

// Severity classifies whether an Issue aborts processing of its item,
// its translation unit, or the whole run.
type Severity uint

const (
	// SeverityItem means only the offending declaration is dropped; the
	// rest of the header proceeds.
	SeverityItem Severity = iota
	// SeverityUnit means the current translation unit is abandoned but
	// the driver may proceed to the next one.
	SeverityUnit
	// SeverityFatal means the process must terminate — reserved for
	// KindInvariantViolation.
	SeverityFatal
)

// Issue is one diagnostic raised while processing a header: a
// translation failure, a conflict, or a fatal invariant violation.
type Issue struct {
	Header      string
	Name        string
	Annotation  string
	Description string
	Severity    Severity
	Kind        Kind

	// ExistingText and IncomingText are populated only for
	// KindConflictingDeclaration: the two declaration texts that
	// disagree, so a driver can hand them to output.PrintConflict for
	// syntax-highlighted display without re-deriving them.
	ExistingText string
	IncomingText string
}

func (i Issue) Error() string {
	if i.Name != "" {
		return i.Header + ": " + i.Name + ": " + i.Description
	}
	return i.Header + ": " + i.Description
}
