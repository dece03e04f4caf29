package lexer

import "fmt"

// Reason identifies the malformed-number shape behind a LexicalError.
type Reason uint8

const (
	MultipleDecimalPoints Reason = iota
	MultipleExponents
	IncompleteExponent
	ExponentSignWithoutDigit
	ExponentWithoutDigit
)

var reasonCodes = [...]string{
	MultipleDecimalPoints:    "L0001",
	MultipleExponents:        "L0002",
	IncompleteExponent:       "L0003",
	ExponentSignWithoutDigit: "L0004",
	ExponentWithoutDigit:     "L0005",
}

var reasonMessages = [...]string{
	MultipleDecimalPoints:    "number has multiple decimal points",
	MultipleExponents:        "number has multiple exponents",
	IncompleteExponent:       "incomplete exponent at end of input",
	ExponentSignWithoutDigit: "exponent sign must be followed by a digit",
	ExponentWithoutDigit:     "exponent must be followed by a sign or digit",
}

// Code returns the stable diagnostic code for the reason, e.g. "L0001".
func (r Reason) Code() string {
	if int(r) < len(reasonCodes) {
		return reasonCodes[r]
	}
	return "L0000"
}

func (r Reason) String() string {
	if int(r) < len(reasonMessages) {
		return reasonMessages[r]
	}
	return "unknown lexical error"
}

// LexicalError reports a malformed numeric literal. Detection aborts the
// whole Tokenize call; no partial token list accompanies the error.
// Literal holds the text consumed before the defect was detected and
// Offset the byte position where the literal starts.
type LexicalError struct {
	Reason  Reason
	Literal string
	Offset  int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error: %s in %q", e.Reason, e.Literal)
}
