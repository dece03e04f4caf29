package diagnostics

import (
	"fmt"

	"mathlex/internal/source"
)

// Common diagnostic builders for the tokenizer.

// Diagnostic code for findings that are not lexical errors. The L0001 to
// L0005 range belongs to malformed-number errors.
const CodeUnrecognized = "L0100"

// MalformedNumber reports a numeric literal the scanner refused.
func MalformedNumber(span source.Span, code, reason string) *Diagnostic {
	return NewError(reason).
		WithCode(code).
		WithPrimaryLabel(span, "in this numeric literal").
		WithHelp("a number holds one optional decimal point and one optional exponent, like 3.2e-5")
}

// UnrecognizedLexeme reports an Invalid token. These are soft findings:
// the tokenizer still produced a full token sequence.
func UnrecognizedLexeme(span source.Span, text string) *Diagnostic {
	return NewWarning(fmt.Sprintf("unrecognized lexeme %q", text)).
		WithCode(CodeUnrecognized).
		WithPrimaryLabel(span, "not a known function, constant or variable").
		WithNote("variables are x, y and z; constants are pi and e")
}
