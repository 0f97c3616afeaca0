package pylang

import (
	"bytes"
	"testing"

	"github.com/npillmayer/pygo"
	"github.com/npillmayer/pygo/object"
	"github.com/npillmayer/pygo/runtime"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func run(t *testing.T, src string, opts ...Option) (string, error) {
	var out bytes.Buffer
	intp := NewInterpreter(append(opts, WithOutput(&out))...)
	_, err := intp.Run(src)
	return out.String(), err
}

func TestPrograms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.runtime")
	defer teardown()
	//
	programs := []struct {
		name, src, out string
	}{
		{"assign", "a = 1\nb = 4\nprint(a)\nprint(b)\n", "1\n4\n"},
		{"function", "def add(x, y): return x + y\nprint(add(2, 3))\n", "5\n"},
		{"list", `
a = [1, 2, 3]
a.append(4)
print(len(a))
print(a.__len__())
`, "4\n4\n"},
		{"while", `
i = 1
n = 0
while i <= 3:
    n += 1
    i = i + 1
print(n)
`, "3\n"},
		{"division", "print(7 / 2)\nprint(6 / 3)\nprint(1.5 * 2)\n", "3.5\n2\n3.0\n"},
		{"precedence", "print(1 + 2 * 3 - 4)\nprint(-(2 - 5))\nprint(2 - -1)\n", "3\n3\n3\n"},
		{"strings", "s = 'abc'\nprint(s)\nprint(\"x\" + s.upper())\nprint(s + 1)\n", "abc\nxABC\nabc1\n"},
		{"shadowing", `
x = 1
def f():
    x = 2
    print(x)
f()
print(x)
`, "2\n1\n"},
		{"dynamic scope", `
def g(): return y
def h():
    y = 7
    return g()
print(h())
`, "7\n"},
		{"nested return", `
def first(limit):
    i = 0
    while True:
        if i == limit:
            return i * 10
        i += 1
    return -1
print(first(4))
`, "40\n"},
		{"break", `
i = 0
while i < 10:
    j = 0
    while True:
        j += 1
        if j == 2:
            break
    i += j
print(i)
`, "10\n"},
		{"fall through", "def f():\n    a = 5\nprint(f())\n", "None\n"},
		{"loop fall through", "def f():\n    while True:\n        break\nprint(f())\n", "None\n"},
		{"class", `
class Counter:
    n = 0
    def __init__(self, start):
        self.n = start
    def inc(self):
        self.n += 1
        return self.n
c = Counter(5)
c.inc()
print(c.inc())
print(c.n)
`, "7\n7\n"},
		{"str method", `
class P():
    def __str__(self): return "P!"
class Q():
    x = 0
print(P())
print(Q())
`, "P!\n<Q object>\n"},
		{"subscripts", `
a = [5, 2]
a[1] = 3
print(a)
print(a[1])
`, "[5, 3]\n3\n"},
		{"dict", `
d = dict()
d["k"] = 1
print(d)
print(d.get("x", 0))
`, "{'k': 1}\n0\n"},
		{"late class field", `
class T:
    x = 1
t = T()
T.y = 2
print(t.y)
t.y = 5
print(t.y)
print(T.y)
print(T().y)
`, "2\n5\n2\n2\n"},
		{"cyclic lists", "a = []\nb = [a]\na.append(b)\nprint(a)\nprint(a == a)\n", "[[[...]]]\nTrue\n"},
		{"numeric keys", "d = dict()\nd[1] = 'a'\nprint(d.get(1.0, 'missing'))\nd[2.0] = 'b'\nprint(d[2])\n", "a\nb\n"},
		{"huge literal", "print(1e400)\nprint(-1e400)\n", "inf\n-inf\n"},
		{"comparison", "print(1 == 1.0)\nprint(3 <> 4)\nprint('a' == 'b')\n", "True\nTrue\nFalse\n"},
		{"builtins", "print(int('42') + 1)\nprint(float(2))\nprint(str(10) + '1')\nprint(type(1.5))\n", "43\n2.0\n101\nfloat\n"},
	}
	for _, p := range programs {
		out, err := run(t, p.src)
		if err != nil {
			t.Errorf("%s: %v", p.name, err)
			continue
		}
		if out != p.out {
			t.Errorf("%s: expected output %q, have %q", p.name, p.out, out)
		}
	}
}

func TestRuntimeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.runtime")
	defer teardown()
	//
	programs := []struct {
		src  string
		kind pygo.ErrorKind
	}{
		{"print(1 / 0)", pygo.ArithmeticError},
		{"print(undefined)", pygo.NameError},
		{"def f(x): return x\nf(1, 2)", pygo.ArityError},
		{"def f(x: int): return x\nf('s')", pygo.TypeError},
		{"if 1:\n    print(1)\n", pygo.TypeError},
		{"x = 1\nx()", pygo.TypeError},
		{"a = [1]\na.push(2)", pygo.DispatchError},
		{"a = [1]\nprint(a[3])", pygo.IndexError},
		{"d = dict()\nprint(d['k'])", pygo.KeyError},
		{"print(int('x'))", pygo.ValueError},
		{"print(len(1))", pygo.TypeError},
		{"print('a' < 'b')", pygo.TypeError},
		{"a = [1]\na.pop() = 2", pygo.TypeError},
		{"print(1", pygo.ParseError},
	}
	for _, p := range programs {
		_, err := run(t, p.src)
		if !pygo.IsKind(err, p.kind) {
			t.Errorf("%q: expected %s, have %v", p.src, p.kind, err)
		}
	}
}

func TestRecursionLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.runtime")
	defer teardown()
	//
	var out bytes.Buffer
	intp := NewInterpreter(WithOutput(&out), WithMaxDepth(50))
	_, err := intp.Run("def f(n): return f(n + 1)\nf(1)\n")
	if !pygo.IsKind(err, pygo.RecursionError) {
		t.Fatalf("expected RecursionError, have %v", err)
	}
	// frames have to be unwound after the error
	if _, err = intp.Run("def fac(n):\n    if n <= 1: return 1\n    return n * fac(n - 1)\nprint(fac(10))\n"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "3628800\n" {
		t.Errorf("expected 10! to be printed, have %q", out.String())
	}
}

func TestPersistentGlobals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.runtime")
	defer teardown()
	//
	var out bytes.Buffer
	intp := NewInterpreter(WithOutput(&out))
	if _, err := intp.Run("a = 2\ndef twice(x): return 2 * x\n"); err != nil {
		t.Fatal(err)
	}
	v, err := intp.Run("twice(a + 1)")
	if err != nil {
		t.Fatal(err)
	}
	if v != object.Int(6) {
		t.Errorf("expected 6 as value of the program, have %v", v)
	}
	if a, err := intp.Lookup("a"); err != nil || a != object.Int(2) {
		t.Errorf("expected a = 2, have %v (%v)", a, err)
	}
}

func TestHostFunction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.runtime")
	defer teardown()
	//
	var seen []object.Value
	intp := NewInterpreter(WithBuiltins(false))
	intp.Def("emit", object.NewBuiltin("emit", func(_ *runtime.Scope, args []object.Value) (object.Value, error) {
		seen = append(seen, args...)
		return object.None, nil
	}))
	if _, err := intp.Run("emit(1, 'two')"); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 || seen[1] != object.Str("two") {
		t.Errorf("expected host function to receive 2 arguments, have %v", seen)
	}
	if _, err := intp.Run("print(1)"); !pygo.IsKind(err, pygo.NameError) {
		t.Errorf("expected print to be undefined without built-ins, have %v", err)
	}
}
