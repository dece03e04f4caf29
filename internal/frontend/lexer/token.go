package lexer

import "fmt"

// Kind classifies a lexical unit of a math expression.
// The set is closed: downstream stages switch exhaustively over it.
type Kind uint8

const (
	Number Kind = iota
	Operator
	LeftParen
	RightParen
	Function
	Constant
	Variable
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	case Function:
		return "Function"
	case Constant:
		return "Constant"
	case Variable:
		return "Variable"
	case Invalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Token is a classified unit of the input expression. Text is the exact
// source substring that produced the token; no numeric parsing happens at
// this stage. Pos is the byte offset of Text within the input.
type Token struct {
	Kind Kind
	Text string
	Pos  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
