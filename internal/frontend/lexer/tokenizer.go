// Package lexer turns a raw math expression into an ordered sequence of
// classified tokens. It is the first stage of the evaluation pipeline and
// deliberately knows nothing about grammar: mismatched parentheses, wrong
// argument counts and unknown identifiers are all someone else's problem.
// The only thing it rejects outright is a malformed numeric literal.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// operatorChars is the set of single-character operator tokens. '^' is
// also in the function table, but a stray '^' always lexes as Operator.
const operatorChars = "+-*/^%="

// Tokenize scans expression left to right in a single pass and returns
// its token sequence. Whitespace is discarded; every other character ends
// up in exactly one token's Text. Unrecognized characters and identifiers
// become Invalid tokens so that a later stage can pick its own reporting
// strategy, but a malformed numeric literal aborts the whole call with a
// *LexicalError and no partial result.
//
// Tokenize has no state across calls and is safe for concurrent use.
func Tokenize(expression string) ([]Token, error) {
	s := &scanner{src: expression}
	var tokens []Token

	for !s.atEnd() {
		start := s.cursor
		switch r := s.peek(); {
		case unicode.IsSpace(r):
			s.advance()

		case isDigit(r) || (r == '.' && isDigit(s.lookahead())):
			text, err := s.scanNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Kind: Number, Text: text, Pos: start})

		case isAlpha(r):
			text := s.scanLetters()
			tokens = append(tokens, Token{Kind: classify(text), Text: text, Pos: start})

		case r == '(':
			s.advance()
			tokens = append(tokens, Token{Kind: LeftParen, Text: "(", Pos: start})

		case r == ')':
			s.advance()
			tokens = append(tokens, Token{Kind: RightParen, Text: ")", Pos: start})

		case strings.ContainsRune(operatorChars, r):
			s.advance()
			tokens = append(tokens, Token{Kind: Operator, Text: s.src[start:s.cursor], Pos: start})

		default:
			// Unknown or unsupported character, one rune per token.
			s.advance()
			tokens = append(tokens, Token{Kind: Invalid, Text: s.src[start:s.cursor], Pos: start})
		}
	}

	return tokens, nil
}

// scanner is a peekable cursor over the expression bytes. Numbers and
// identifiers are ASCII-only, so those paths advance one byte at a time;
// the Invalid fallback consumes whole runes so multi-byte input stays one
// token per character.
type scanner struct {
	src    string
	cursor int
}

func (s *scanner) atEnd() bool {
	return s.cursor >= len(s.src)
}

// peek returns the rune at the cursor without consuming it.
func (s *scanner) peek() rune {
	r, _ := utf8.DecodeRuneInString(s.src[s.cursor:])
	return r
}

// lookahead returns the rune one position past the cursor, or -1 when the
// input ends there. Callers only use it while the cursor sits on an ASCII
// character, so a single-byte step is sufficient.
func (s *scanner) lookahead() rune {
	if s.cursor+1 >= len(s.src) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.cursor+1:])
	return r
}

func (s *scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.src[s.cursor:])
	s.cursor += size
	return r
}

// scanNumber consumes one numeric literal. On entry the cursor sits on a
// digit, or on a '.' whose next character is a digit. A '.' extends the
// literal only when followed by a digit; a dot that would be the second
// one in the literal is a hard error rather than a token boundary, so
// "1.2.3" fails while "3.x" yields the number "3" and leaves the dot for
// the outer loop.
func (s *scanner) scanNumber() (string, error) {
	start := s.cursor
	seenDot := s.advance() == '.'
	seenExp := false

	for !s.atEnd() {
		switch c := s.peek(); {
		case isDigit(c):
			s.advance()

		case c == '.' && isDigit(s.lookahead()):
			if seenDot || seenExp {
				return "", s.numberError(MultipleDecimalPoints, start)
			}
			seenDot = true
			s.advance()

		case c == 'e' || c == 'E':
			if seenExp {
				return "", s.numberError(MultipleExponents, start)
			}
			seenExp = true
			s.advance()
			if err := s.scanExponent(start); err != nil {
				return "", err
			}
			// The exponent digits end the literal. Whatever follows, even
			// another digit run, starts a new token.
			return s.src[start:s.cursor], nil

		default:
			return s.src[start:s.cursor], nil
		}
	}

	return s.src[start:s.cursor], nil
}

// scanExponent validates and consumes what follows an exponent marker: an
// optional sign, then at least one digit.
func (s *scanner) scanExponent(start int) error {
	if s.atEnd() {
		return s.numberError(IncompleteExponent, start)
	}
	if c := s.peek(); c == '+' || c == '-' {
		s.advance()
		if s.atEnd() || !isDigit(s.peek()) {
			return s.numberError(ExponentSignWithoutDigit, start)
		}
	} else if !isDigit(c) {
		return s.numberError(ExponentWithoutDigit, start)
	}
	for !s.atEnd() && isDigit(s.peek()) {
		s.advance()
	}
	return nil
}

func (s *scanner) numberError(reason Reason, start int) *LexicalError {
	return &LexicalError{
		Reason:  reason,
		Literal: s.src[start:s.cursor],
		Offset:  start,
	}
}

// scanLetters consumes the maximal run of consecutive ASCII letters.
// Digits and underscores do not extend the run.
func (s *scanner) scanLetters() string {
	start := s.cursor
	for !s.atEnd() && isAlpha(s.peek()) {
		s.advance()
	}
	return s.src[start:s.cursor]
}

// classify resolves a completed letter run. Functions win over constants,
// constants over variables, and a variable must be a single letter;
// everything else is Invalid.
func classify(word string) Kind {
	if IsFunction(word) {
		return Function
	}
	if _, ok := ConstantValue(word); ok {
		return Constant
	}
	if IsVariable(word) && len(word) == 1 {
		return Variable
	}
	return Invalid
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
