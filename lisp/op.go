package lisp

import "math"

// Binary operations on values.  Unit absorbs every arithmetic operation:
// if either operand is unit the result is unit.  Ints promote to floats
// when mixed with floats.

func binopError(v *Value) error {
	return &Error{Kind: InvalidBinOp, Cause: v}
}

func (v *Value) asFloat() float64 {
	if v.Type == VInt {
		return float64(v.Int)
	}
	return v.Float
}

// Add sums numbers, concatenates strings, and concatenates lists.
func (v *Value) Add(other *Value) (*Value, error) {
	if other.Type == VUnit {
		return other, nil
	}
	switch v.Type {
	case VFloat:
		if !other.IsNumber() {
			return nil, binopError(v)
		}
		return Float(v.Float + other.asFloat()), nil
	case VInt:
		if !other.IsNumber() {
			return nil, binopError(v)
		}
		if other.Type == VFloat {
			return Float(float64(v.Int) + other.Float), nil
		}
		return Int(v.Int + other.Int), nil
	case VString:
		if other.Type != VString {
			return nil, binopError(v)
		}
		return String(v.Str + other.Str), nil
	case VList:
		if other.Type != VList {
			return nil, binopError(v)
		}
		cells := make([]*Value, 0, len(v.Cells)+len(other.Cells))
		cells = append(cells, v.Cells...)
		cells = append(cells, other.Cells...)
		return List(cells), nil
	case VUnit:
		return v, nil
	default:
		return nil, binopError(v)
	}
}

func (v *Value) arith(other *Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (*Value, error) {
	if other.Type == VUnit {
		return other, nil
	}
	if v.Type == VUnit {
		return v, nil
	}
	if !other.IsNumber() {
		return nil, binopError(v)
	}
	switch v.Type {
	case VFloat:
		return Float(floatOp(v.Float, other.asFloat())), nil
	case VInt:
		if other.Type == VFloat {
			return Float(floatOp(float64(v.Int), other.Float)), nil
		}
		return Int(intOp(v.Int, other.Int)), nil
	default:
		return nil, binopError(v)
	}
}

// Sub subtracts other from v.
func (v *Value) Sub(other *Value) (*Value, error) {
	return v.arith(other,
		func(a, b int64) int64 { return a - b },
		func(a, b float64) float64 { return a - b })
}

// Mul multiplies v by other.
func (v *Value) Mul(other *Value) (*Value, error) {
	return v.arith(other,
		func(a, b int64) int64 { return a * b },
		func(a, b float64) float64 { return a * b })
}

// Div divides v by other.
func (v *Value) Div(other *Value) (*Value, error) {
	return v.arith(other,
		func(a, b int64) int64 { return a / b },
		func(a, b float64) float64 { return a / b })
}

// Mod finds the remainder of v and other.  Mixed or floating operands use
// math.Mod (C fmod: truncated division, result takes the sign of v).
func (v *Value) Mod(other *Value) (*Value, error) {
	return v.arith(other,
		func(a, b int64) int64 { return a % b },
		math.Mod)
}

// Less orders numbers, promoting ints to floats as needed.  A non-number
// right operand is InvalidBinOp; a non-number left operand is InvalidOrder.
func (v *Value) Less(other *Value) (bool, error) {
	if !other.IsNumber() {
		return false, binopError(v)
	}
	switch v.Type {
	case VFloat:
		return v.Float < other.asFloat(), nil
	case VInt:
		if other.Type == VFloat {
			return float64(v.Int) < other.Float, nil
		}
		return v.Int < other.Int, nil
	default:
		return false, &Error{Kind: InvalidOrder, Cause: v}
	}
}

// LessEq is derived from Equal and Less.
func (v *Value) LessEq(other *Value) (bool, error) {
	if v.Equal(other) {
		return true, nil
	}
	return v.Less(other)
}

// Greater is the negation of LessEq.
func (v *Value) Greater(other *Value) (bool, error) {
	le, err := v.LessEq(other)
	return !le, err
}

// GreaterEq is the negation of Less.
func (v *Value) GreaterEq(other *Value) (bool, error) {
	lt, err := v.Less(other)
	return !lt, err
}
