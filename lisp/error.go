package lisp

import "fmt"

// Kind identifies a class of evaluation failure.
type Kind int

// Possible Kind values
const (
	TooFewArgs Kind = iota
	TooManyArgs
	InvalidArgument
	MismatchedTypes
	CallNonFunction
	InvalidLambda
	InvalidBinOp
	InvalidOrder
	BadCast
	AtomNotDefined
	EvalEmptyList
	IndexOutOfRange
	InternalError
	MalformedProgram
)

var kindStrings = []string{
	TooFewArgs:       "too few arguments to function",
	TooManyArgs:      "too many arguments to function",
	InvalidArgument:  "invalid argument",
	MismatchedTypes:  "mismatched types",
	CallNonFunction:  "called non-function",
	InvalidLambda:    "invalid lambda",
	InvalidBinOp:     "invalid binary operation",
	InvalidOrder:     "cannot order expression",
	BadCast:          "cannot cast",
	AtomNotDefined:   "atom not defined",
	EvalEmptyList:    "evaluated empty list",
	IndexOutOfRange:  "index out of range",
	InternalError:    "internal virtual machine error",
	MalformedProgram: "malformed program",
}

func (k Kind) String() string {
	if int(k) >= len(kindStrings) {
		return kindStrings[InternalError]
	}
	return kindStrings[k]
}

// Error is the failure value produced by the parser and the evaluator.  It
// carries the offending value and a snapshot of the scope where the fault
// was found.  Nothing catches an Error internally; the REPL or the CLI
// reports it exactly once.
type Error struct {
	Kind  Kind
	Cause *Value
	Env   *Env
}

// Error implements the error interface.  Parse failures carry no value or
// scope context and render as the bare message.
func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("error: the expression `%s` failed in scope %s with message %q",
		e.Cause.Debug(), e.Env, e.Kind)
}
