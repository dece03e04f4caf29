package lexer

// Static lookup tables consulted during scanning. They are built once,
// never mutated, and therefore safe to share across concurrent Tokenize
// calls without locking.
//
// Two entries deserve a note. "^" is the power operator's alias in the
// function table: the scanner always emits a stray "^" as an Operator
// token, and only a later grammar stage reinterprets it as the binary
// power function. "log_base" contains an underscore, which the
// letters-only identifier scan never consumes, so it cannot be produced
// as a single token by this lexer; the entry exists for grammar stages
// that assemble it themselves.

var functions = map[string]struct{}{
	"sin": {}, "cos": {}, "tan": {},
	"sec": {}, "csc": {}, "cot": {},
	"asin": {}, "acos": {}, "atan": {},
	"asec": {}, "acsc": {}, "acot": {},
	"log": {}, "ln": {}, "log_base": {},
	"sqrt": {}, "abs": {}, "nroot": {},
	"^": {},
}

var functionArity = map[string]int{
	"sin": 1, "cos": 1, "tan": 1,
	"sec": 1, "csc": 1, "cot": 1,
	"asin": 1, "acos": 1, "atan": 1,
	"asec": 1, "acsc": 1, "acot": 1,
	"log": 1, "ln": 1, "log_base": 2,
	"sqrt": 1, "abs": 1, "nroot": 2,
	"^": 2,
}

// Constant values carry calculator precision. The lexer never evaluates
// them; the token keeps the literal name.
var constants = map[string]float64{
	"pi": 3.141592653589793,
	"e":  2.718281828459045,
}

var variables = map[string]struct{}{
	"x": {}, "y": {}, "z": {},
}

// IsFunction reports whether name is a recognized function identifier.
func IsFunction(name string) bool {
	_, ok := functions[name]
	return ok
}

// FunctionArity returns the number of arguments a recognized function
// expects. The lexer does not enforce arity; it is stored for the parser
// stage that consumes the token stream.
func FunctionArity(name string) (int, bool) {
	n, ok := functionArity[name]
	return n, ok
}

// ConstantValue returns the numeric value of a named constant.
func ConstantValue(name string) (float64, bool) {
	v, ok := constants[name]
	return v, ok
}

// IsVariable reports whether name is one of the recognized single-letter
// variables.
func IsVariable(name string) bool {
	_, ok := variables[name]
	return ok
}
