// Package cmd drives the tokenize phase for the CLI front-end and
// decides how Invalid tokens are reported: the lexer defers that choice,
// this layer renders them all as warnings.
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"mathlex/internal/diagnostics"
	"mathlex/internal/frontend/lexer"
	"mathlex/internal/source"
)

// Options configures a tokenize run.
type Options struct {
	Debug   bool
	NoColor bool
}

// Run tokenizes one expression, prints the token stream to out and any
// diagnostics to errOut. The exit code is 0 when a token sequence was
// produced (Invalid tokens only warn) and 1 on a lexical error.
func Run(expression string, opts *Options, out, errOut io.Writer) int {
	if opts == nil {
		opts = &Options{}
	}

	if opts.Debug {
		fmt.Fprintf(errOut, "[Phase 1] Tokenize (%d bytes)\n", len(expression))
	}

	emitter := diagnostics.NewEmitterWithWriter(errOut)
	if opts.NoColor {
		emitter.DisableColor()
	}
	bag := diagnostics.NewBag()

	tokens, err := lexer.Tokenize(expression)
	if err != nil {
		bag.Add(lexicalErrorDiagnostic(err))
		bag.EmitAll(emitter, expression)
		return 1
	}

	if opts.Debug {
		fmt.Fprintf(errOut, "  Generated %d token(s)\n", len(tokens))
	}

	for _, tok := range tokens {
		if tok.Kind == lexer.Invalid {
			span := source.NewSpan(tok.Pos, tok.Pos+len(tok.Text))
			bag.Add(diagnostics.UnrecognizedLexeme(span, tok.Text))
		}
	}

	printTokens(out, tokens, opts.NoColor)
	bag.EmitAll(emitter, expression)
	return 0
}

// lexicalErrorDiagnostic converts the tokenizer's hard failure into a
// renderable diagnostic with the malformed literal underlined.
func lexicalErrorDiagnostic(err error) *diagnostics.Diagnostic {
	var lexErr *lexer.LexicalError
	if !errors.As(err, &lexErr) {
		return diagnostics.NewError(err.Error())
	}
	span := source.NewSpan(lexErr.Offset, lexErr.Offset+len(lexErr.Literal))
	return diagnostics.MalformedNumber(span, lexErr.Reason.Code(), lexErr.Reason.String())
}

// printTokens dumps the token stream, one token per line.
func printTokens(w io.Writer, tokens []lexer.Token, noColor bool) {
	for _, tok := range tokens {
		c := kindColor(tok.Kind)
		if noColor {
			c.DisableColor()
		}
		c.Fprintf(w, "%-10s", tok.Kind)
		fmt.Fprintf(w, " %s\n", tok.Text)
	}
}

func kindColor(k lexer.Kind) *color.Color {
	switch k {
	case lexer.Number:
		return color.New(color.FgCyan)
	case lexer.Function:
		return color.New(color.FgMagenta)
	case lexer.Constant:
		return color.New(color.FgGreen)
	case lexer.Variable:
		return color.New(color.FgHiGreen)
	case lexer.Operator:
		return color.New(color.FgYellow)
	case lexer.Invalid:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgBlue)
	}
}
