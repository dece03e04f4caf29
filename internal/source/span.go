// Package source provides the location currency shared by the lexer and
// the diagnostics renderer.
package source

// Span marks the half-open byte range [Start, End) of a lexeme inside a
// single-line expression string.
type Span struct {
	Start int
	End   int
}

// NewSpan builds a span, clamping a degenerate range to one byte so a
// caret always has something to point at.
func NewSpan(start, end int) Span {
	if end <= start {
		end = start + 1
	}
	return Span{Start: start, End: end}
}

func (s Span) Len() int {
	return s.End - s.Start
}
