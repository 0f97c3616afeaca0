package object

import (
	"math"
	"math/big"

	"github.com/npillmayer/pygo"
	"github.com/npillmayer/pygo/token"
)

// Arith applies one of the arithmetic operators + - * / to two operands.
//
// If either operand is a float, arithmetic is done in floating point,
// otherwise in integers. Integer division yields an int if the divisor
// divides evenly and a float otherwise. A + with a string operand
// concatenates the string forms of the operands.
func Arith(op string, l, r Value) (Value, error) {
	if op == "+" {
		if _, ok := l.(Str); ok && (isNumber(r) || isStr(r)) {
			return Str(l.String() + r.String()), nil
		}
		if _, ok := r.(Str); ok && isNumber(l) {
			return Str(l.String() + r.String()), nil
		}
	}
	if !isNumber(l) || !isNumber(r) {
		return nil, pygo.Errorf(pygo.TypeError, "unsupported operand types for %s: '%s' and '%s'",
			op, TypeName(l), TypeName(r))
	}
	li, lint := l.(Int)
	ri, rint := r.(Int)
	if lint && rint {
		return intArith(op, li, ri)
	}
	return floatArith(op, toFloat(l), toFloat(r))
}

func intArith(op string, a, b Int) (Value, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return nil, pygo.Errorf(pygo.ArithmeticError, "division by zero")
		}
		if a%b == 0 {
			return a / b, nil
		}
		return Float(float64(a) / float64(b)), nil
	}
	return nil, pygo.Errorf(pygo.TypeError, "unknown arithmetic operator %q", op)
}

func floatArith(op string, a, b float64) (Value, error) {
	switch op {
	case "+":
		return Float(a + b), nil
	case "-":
		return Float(a - b), nil
	case "*":
		return Float(a * b), nil
	case "/":
		if b == 0 {
			return nil, pygo.Errorf(pygo.ArithmeticError, "float division by zero")
		}
		return Float(a / b), nil
	}
	return nil, pygo.Errorf(pygo.TypeError, "unknown arithmetic operator %q", op)
}

func isStr(v Value) bool {
	_, ok := v.(Str)
	return ok
}

func toFloat(v Value) float64 {
	switch x := v.(type) {
	case Int:
		return float64(x)
	case Float:
		return float64(x)
	}
	return math.NaN()
}

// Compare applies a comparison operator kind to two operands and returns a
// Bool. Numbers are compared by exact magnitude, so that large integers do
// not lose precision against floats. Equality and inequality work for any
// operands, the ordering operators for numbers only.
func Compare(op pygo.TokType, l, r Value) (Value, error) {
	if isNumber(l) && isNumber(r) {
		c, ok := compareNumbers(l, r)
		if !ok { // NaN is unordered
			return Bool(op == token.NotEq || op == token.NotEqAlt), nil
		}
		switch op {
		case token.Less:
			return Bool(c < 0), nil
		case token.Greater:
			return Bool(c > 0), nil
		case token.LessEq:
			return Bool(c <= 0), nil
		case token.GreaterEq:
			return Bool(c >= 0), nil
		case token.Equals:
			return Bool(c == 0), nil
		case token.NotEq, token.NotEqAlt:
			return Bool(c != 0), nil
		}
		return nil, pygo.Errorf(pygo.TypeError, "%s is not a comparison operator", token.KindName(op))
	}
	switch op {
	case token.Equals:
		return Bool(Equal(l, r)), nil
	case token.NotEq, token.NotEqAlt:
		return Bool(!Equal(l, r)), nil
	}
	return nil, pygo.Errorf(pygo.TypeError, "'%s' not supported between '%s' and '%s'",
		token.KindName(op), TypeName(l), TypeName(r))
}

// compareNumbers compares two numeric values exactly. It returns false if
// either is NaN.
func compareNumbers(l, r Value) (int, bool) {
	if a, ok := l.(Int); ok {
		if b, ok := r.(Int); ok {
			switch {
			case a < b:
				return -1, true
			case a > b:
				return 1, true
			}
			return 0, true
		}
	}
	a, ok := bigFloat(l)
	if !ok {
		return 0, false
	}
	b, ok := bigFloat(r)
	if !ok {
		return 0, false
	}
	return a.Cmp(b), true
}

func bigFloat(v Value) (*big.Float, bool) {
	switch x := v.(type) {
	case Int:
		return new(big.Float).SetInt64(int64(x)), true
	case Float:
		if math.IsNaN(float64(x)) {
			return nil, false
		}
		return new(big.Float).SetFloat64(float64(x)), true
	}
	return nil, false
}
