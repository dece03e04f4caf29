package diagnostics

import (
	"mathlex/internal/source"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Label marks a span of the expression with a message.
type Label struct {
	Span    source.Span
	Message string
	Style   LabelStyle
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // the main location (underlined with ^^^)
	Secondary                   // additional context (underlined with ---)
)

// Note carries additional information attached to a diagnostic.
type Note struct {
	Message string
}

// Diagnostic is one reportable finding about an expression.
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string // stable code like "L0001"
	Labels   []Label
	Notes    []Note
	Help     string
}

// NewError creates a new error diagnostic.
func NewError(message string) *Diagnostic {
	return &Diagnostic{Severity: Error, Message: message}
}

// NewWarning creates a new warning diagnostic.
func NewWarning(message string) *Diagnostic {
	return &Diagnostic{Severity: Warning, Message: message}
}

// NewInfo creates a new info diagnostic.
func NewInfo(message string) *Diagnostic {
	return &Diagnostic{Severity: Info, Message: message}
}

// WithCode sets the diagnostic code.
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithLabel adds a labeled span.
func (d *Diagnostic) WithLabel(span source.Span, message string, style LabelStyle) *Diagnostic {
	d.Labels = append(d.Labels, Label{Span: span, Message: message, Style: style})
	return d
}

// WithPrimaryLabel adds the main labeled span.
func (d *Diagnostic) WithPrimaryLabel(span source.Span, message string) *Diagnostic {
	return d.WithLabel(span, message, Primary)
}

// WithSecondaryLabel adds a context span.
func (d *Diagnostic) WithSecondaryLabel(span source.Span, message string) *Diagnostic {
	return d.WithLabel(span, message, Secondary)
}

// WithNote attaches a note.
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets a suggestion for fixing the finding.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}
