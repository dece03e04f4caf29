package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Emitter renders diagnostics against the expression they refer to, in
// the caret-underline style compiler frontends use. Expressions are a
// single line, so the gutter always shows line 1.
type Emitter struct {
	out io.Writer

	errColor  *color.Color
	warnColor *color.Color
	infoColor *color.Color
	gutter    *color.Color
}

// NewEmitter creates an emitter writing to stderr.
func NewEmitter() *Emitter {
	return NewEmitterWithWriter(os.Stderr)
}

// NewEmitterWithWriter creates an emitter writing to w.
func NewEmitterWithWriter(w io.Writer) *Emitter {
	return &Emitter{
		out:       w,
		errColor:  color.New(color.FgRed, color.Bold),
		warnColor: color.New(color.FgYellow, color.Bold),
		infoColor: color.New(color.FgCyan, color.Bold),
		gutter:    color.New(color.FgBlue),
	}
}

// DisableColor turns off ANSI escapes, for tests and --no-color.
func (e *Emitter) DisableColor() *Emitter {
	for _, c := range []*color.Color{e.errColor, e.warnColor, e.infoColor, e.gutter} {
		c.DisableColor()
	}
	return e
}

// Emit renders one diagnostic.
func (e *Emitter) Emit(expression string, diag *Diagnostic) {
	e.printHeader(diag)

	if len(diag.Labels) > 0 {
		e.printLabels(expression, diag)
	}

	for _, note := range diag.Notes {
		fmt.Fprintf(e.out, "  = note: %s\n", note.Message)
	}
	if diag.Help != "" {
		fmt.Fprintf(e.out, "  = help: %s\n", diag.Help)
	}

	fmt.Fprintln(e.out)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	c := e.severityColor(diag.Severity)
	c.Fprint(e.out, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.out, "[%s]", diag.Code)
	}
	fmt.Fprint(e.out, ": ")
	c.Fprintln(e.out, diag.Message)
}

// printLabels prints the expression once and one underline row per
// label, primary labels first.
func (e *Emitter) printLabels(expression string, diag *Diagnostic) {
	labels := make([]Label, 0, len(diag.Labels))
	for _, l := range diag.Labels {
		if l.Style == Primary {
			labels = append(labels, l)
		}
	}
	for _, l := range diag.Labels {
		if l.Style != Primary {
			labels = append(labels, l)
		}
	}

	first := labels[0]
	e.gutter.Fprintf(e.out, "  --> %d:%d\n", 1, displayColumn(expression, first.Span.Start))

	e.gutter.Fprint(e.out, "  |\n")
	e.gutter.Fprint(e.out, "1 | ")
	fmt.Fprintln(e.out, expression)

	for _, label := range labels {
		e.printUnderline(expression, label, diag.Severity)
	}
}

func (e *Emitter) printUnderline(expression string, label Label, severity Severity) {
	start := clamp(label.Span.Start, 0, len(expression))
	end := clamp(label.Span.End, start, len(expression))

	pad := runewidth.StringWidth(expression[:start])
	width := runewidth.StringWidth(expression[start:end])
	if width < 1 {
		width = 1
	}

	mark, markColor := "^", e.severityColor(severity)
	if label.Style == Secondary {
		mark, markColor = "-", e.gutter
	}

	e.gutter.Fprint(e.out, "  | ")
	fmt.Fprint(e.out, strings.Repeat(" ", pad))
	markColor.Fprint(e.out, strings.Repeat(mark, width))
	if label.Message != "" {
		fmt.Fprint(e.out, " ")
		markColor.Fprint(e.out, label.Message)
	}
	fmt.Fprintln(e.out)
}

func (e *Emitter) severityColor(s Severity) *color.Color {
	switch s {
	case Error:
		return e.errColor
	case Warning:
		return e.warnColor
	default:
		return e.infoColor
	}
}

// displayColumn converts a byte offset into the 1-based display column of
// the expression, accounting for wide runes.
func displayColumn(expression string, offset int) int {
	offset = clamp(offset, 0, len(expression))
	return runewidth.StringWidth(expression[:offset]) + 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
