package object

import (
	"math"
	"strconv"
	"strings"
)

// Value is a runtime value.
type Value interface {
	TypeName() string // int, float, str, …
	String() string   // the str() form of the value
}

// NoneType is the type of None.
type NoneType struct{}

// None is the single value of NoneType.
var None = NoneType{}

func (NoneType) TypeName() string { return "NoneType" }
func (NoneType) String() string   { return "None" }

// Bool is a boolean value.
type Bool bool

func (b Bool) TypeName() string { return "bool" }

func (b Bool) String() string {
	if b {
		return "True"
	}
	return "False"
}

// Int is an integer value.
type Int int64

func (i Int) TypeName() string { return "int" }
func (i Int) String() string   { return strconv.FormatInt(int64(i), 10) }

// Float is a floating point value.
type Float float64

func (f Float) TypeName() string { return "float" }

// String formats f in its shortest form. Integral values keep a trailing
// ".0", large and tiny magnitudes switch to exponent notation.
func (f Float) String() string {
	x := float64(f)
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	if a := math.Abs(x); a >= 1e16 || (a != 0 && a < 1e-4) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Str is a string value.
type Str string

func (s Str) TypeName() string { return "str" }
func (s Str) String() string   { return string(s) }

// Repr returns the form of v used inside container string forms, i.e. with
// strings quoted.
func Repr(v Value) string {
	return repr(v, nil)
}

// repr formats v. onPath holds the containers currently being formatted;
// a container met again on the path is printed as an ellipsis.
func repr(v Value, onPath map[Value]bool) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case Str:
		if strings.ContainsRune(string(x), '\'') && !strings.ContainsRune(string(x), '"') {
			return `"` + string(x) + `"`
		}
		return "'" + strings.ReplaceAll(string(x), "'", `\'`) + "'"
	case *List:
		if onPath[x] {
			return "[...]"
		}
		onPath = enter(onPath, x)
		defer delete(onPath, x)
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range x.Values() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(repr(item, onPath))
		}
		b.WriteByte(']')
		return b.String()
	case *Dict:
		if onPath[x] {
			return "{...}"
		}
		onPath = enter(onPath, x)
		defer delete(onPath, x)
		var b strings.Builder
		b.WriteByte('{')
		first := true
		x.each(func(k, item Value) {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(repr(k, onPath))
			b.WriteString(": ")
			b.WriteString(repr(item, onPath))
		})
		b.WriteByte('}')
		return b.String()
	}
	return v.String()
}

func enter(onPath map[Value]bool, v Value) map[Value]bool {
	if onPath == nil {
		onPath = make(map[Value]bool)
	}
	onPath[v] = true
	return onPath
}

// TypeName returns the type name of v, "NoneType" for nil.
func TypeName(v Value) string {
	if v == nil {
		return None.TypeName()
	}
	return v.TypeName()
}

func isNumber(v Value) bool {
	switch v.(type) {
	case Int, Float:
		return true
	}
	return false
}

// Hashable is a predicate: may v be used as a dict key?
func Hashable(v Value) bool {
	switch v.(type) {
	case NoneType, Bool, Int, Float, Str:
		return true
	}
	return false
}

// Equal implements value equality. Numbers compare by magnitude, lists and
// dicts by content, everything else by identity.
func Equal(a, b Value) bool {
	return equal(a, b, nil)
}

// pair is a pair of containers under comparison.
type pair struct {
	a, b Value
}

// equal compares a and b. A pair of containers met again while comparing
// their contents is taken to be equal.
func equal(a, b Value, comparing map[pair]bool) bool {
	if a == nil {
		a = None
	}
	if b == nil {
		b = None
	}
	if isNumber(a) && isNumber(b) {
		c, ok := compareNumbers(a, b)
		return ok && c == 0
	}
	switch x := a.(type) {
	case *List:
		y, ok := b.(*List)
		if !ok || x.Len() != y.Len() {
			return false
		}
		if x == y || comparing[pair{x, y}] {
			return true
		}
		comparing = compare(comparing, x, y)
		xs, ys := x.Values(), y.Values()
		for i := range xs {
			if !equal(xs[i], ys[i], comparing) {
				return false
			}
		}
		return true
	case *Dict:
		y, ok := b.(*Dict)
		if !ok || x.Len() != y.Len() {
			return false
		}
		if x == y || comparing[pair{x, y}] {
			return true
		}
		comparing = compare(comparing, x, y)
		for _, k := range x.Keys() {
			xv, _ := x.Get(k)
			yv, found := y.Get(k)
			if !found || !equal(xv, yv, comparing) {
				return false
			}
		}
		return true
	}
	return a == b
}

func compare(comparing map[pair]bool, a, b Value) map[pair]bool {
	if comparing == nil {
		comparing = make(map[pair]bool)
	}
	comparing[pair{a, b}] = true
	return comparing
}
