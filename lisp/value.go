// Package lisp implements the wisp value model and tree-walking evaluator.
package lisp

import (
	"bytes"
	"strconv"
)

// ValueType is the runtime type tag of a Value.
type ValueType uint

// Possible ValueType values
const (
	VUnit ValueType = iota
	VInt
	VFloat
	VString
	VAtom
	VQuote
	VList
	VLambda
	VBuiltin
)

// Lambdas and builtins share a user-facing type name because both are
// callable.
var valueTypeStrings = []string{
	VUnit:    "unit",
	VInt:     "int",
	VFloat:   "float",
	VString:  "string",
	VAtom:    "atom",
	VQuote:   "quote",
	VList:    "list",
	VLambda:  "function",
	VBuiltin: "function",
}

func (t ValueType) String() string {
	if int(t) >= len(valueTypeStrings) {
		return "INVALID"
	}
	return valueTypeStrings[t]
}

// Value is a wisp value.  A single struct stands in for all nine variants;
// Type selects which payload fields are meaningful.  A quote stores its
// payload in Cells[0] and a lambda stores its formals and body in Cells[0]
// and Cells[1].
type Value struct {
	Type  ValueType
	Int   int64
	Float float64
	Str   string
	Cells []*Value

	// Fields used by function values.
	Builtin *BuiltinDef
	Scope   *Env
}

// Unit returns the value denoting absence.  Unit absorbs all arithmetic.
func Unit() *Value {
	return &Value{Type: VUnit}
}

// Int returns an integer value.
func Int(x int64) *Value {
	return &Value{Type: VInt, Int: x}
}

// Float returns a floating point value.
func Float(f float64) *Value {
	return &Value{Type: VFloat, Float: f}
}

// String returns a string value.
func String(s string) *Value {
	return &Value{Type: VString, Str: s}
}

// Atom returns an atom, an identifier that is looked up in the environment
// when evaluated.
func Atom(s string) *Value {
	return &Value{Type: VAtom, Str: s}
}

// Quote wraps v, suspending its evaluation until it is explicitly evaled.
func Quote(v *Value) *Value {
	return &Value{Type: VQuote, Cells: []*Value{v}}
}

// List returns a list value with the given cells.
func List(cells []*Value) *Value {
	return &Value{Type: VList, Cells: cells}
}

// Lambda returns a user-defined function with the given formals, body, and
// captured scope.
func Lambda(formals, body *Value, scope *Env) *Value {
	return &Value{Type: VLambda, Cells: []*Value{formals, body}, Scope: scope}
}

// Fun returns a builtin function value displayed under name.  Aliases share
// a BuiltinDef and therefore compare equal.
func Fun(name string, def *BuiltinDef) *Value {
	return &Value{Type: VBuiltin, Str: name, Builtin: def}
}

// Copy creates a deep copy of the receiver.
func (v *Value) Copy() *Value {
	if v == nil {
		return nil
	}
	cp := &Value{}
	*cp = *v                 // shallow copy of all fields
	cp.Cells = v.copyCells() // deep copy of v.Cells
	cp.Scope = v.Scope.Copy()
	return cp
}

func (v *Value) copyCells() []*Value {
	if len(v.Cells) == 0 {
		return nil
	}
	cells := make([]*Value, len(v.Cells))
	for i := range cells {
		cells[i] = v.Cells[i].Copy()
	}
	return cells
}

// IsNumber reports whether v is an int or a float.
func (v *Value) IsNumber() bool {
	return v.Type == VInt || v.Type == VFloat
}

// Bool returns the truthiness of v.  A value is truthy when it does not
// equal the integer 0; in particular unit, empty lists, and empty strings
// are all truthy.
func (v *Value) Bool() bool {
	return !v.Equal(Int(0))
}

// TypeName returns the user-facing name of v's type.
func (v *Value) TypeName() string {
	return v.Type.String()
}

// Equal reports structural equality.  Ints and floats compare with numeric
// promotion; builtins compare by definition identity.
func (v *Value) Equal(other *Value) bool {
	if v.Type == VFloat && other.Type == VInt {
		return v.Float == float64(other.Int)
	}
	if v.Type == VInt && other.Type == VFloat {
		return float64(v.Int) == other.Float
	}
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case VFloat:
		return v.Float == other.Float
	case VInt:
		return v.Int == other.Int
	case VBuiltin:
		return v.Builtin == other.Builtin
	case VString, VAtom:
		return v.Str == other.Str
	case VLambda, VList:
		if len(v.Cells) != len(other.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(other.Cells[i]) {
				return false
			}
		}
		return true
	case VQuote:
		return v.Cells[0].Equal(other.Cells[0])
	default:
		return true
	}
}

// CastInt converts a numeric value to an int, truncating floats.
func (v *Value) CastInt() (*Value, error) {
	switch v.Type {
	case VInt:
		return v, nil
	case VFloat:
		return Int(int64(v.Float)), nil
	default:
		return nil, &Error{Kind: BadCast, Cause: v}
	}
}

// CastFloat converts a numeric value to a float.
func (v *Value) CastFloat() (*Value, error) {
	switch v.Type {
	case VFloat:
		return v, nil
	case VInt:
		return Float(float64(v.Int)), nil
	default:
		return nil, &Error{Kind: BadCast, Cause: v}
	}
}

// AsString returns the payload of a string value.
func (v *Value) AsString() (string, error) {
	if v.Type != VString {
		return "", &Error{Kind: BadCast, Cause: v}
	}
	return v.Str, nil
}

// AsList returns the cells of a list value.
func (v *Value) AsList() ([]*Value, error) {
	if v.Type != VList {
		return nil, &Error{Kind: BadCast, Cause: v}
	}
	return v.Cells, nil
}

// Display renders v for program output: strings render as their raw
// contents and atoms as bare tokens.
func (v *Value) Display() string {
	switch v.Type {
	case VString:
		return v.Str
	default:
		return v.Debug()
	}
}

// Debug renders v as source text: strings render quoted with embedded
// quotes escaped.
func (v *Value) Debug() string {
	switch v.Type {
	case VQuote:
		return "'" + v.Cells[0].Debug()
	case VAtom:
		return v.Str
	case VInt:
		return strconv.FormatInt(v.Int, 10)
	case VFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case VString:
		var buf bytes.Buffer
		buf.WriteByte('"')
		for i := 0; i < len(v.Str); i++ {
			if v.Str[i] == '"' {
				buf.WriteString(`\"`)
			} else {
				buf.WriteByte(v.Str[i])
			}
		}
		buf.WriteByte('"')
		return buf.String()
	case VLambda:
		return "(lambda " + exprString(v.Cells) + ")"
	case VList:
		return "(" + exprString(v.Cells) + ")"
	case VBuiltin:
		return "<builtin " + v.Str + ">"
	default:
		return "@"
	}
}

func (v *Value) String() string {
	return v.Display()
}

func exprString(cells []*Value) string {
	var buf bytes.Buffer
	for i, c := range cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.Debug())
	}
	return buf.String()
}
