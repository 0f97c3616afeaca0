package pylang

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/pygo"
	"github.com/npillmayer/pygo/ast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// shape renders statements as an indented outline, one node per line.
func shape(stmts []ast.Statement) string {
	var b strings.Builder
	for _, item := range ast.LeveledList(stmts) {
		fmt.Fprintf(&b, "%s%s\n", strings.Repeat(".", item.Level), item.Text)
	}
	return b.String()
}

func parseShape(t *testing.T, src string) string {
	stmts, err := Parse(src)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", src, err)
	}
	return shape(stmts)
}

func TestParseExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.parser")
	defer teardown()
	//
	inputs := []struct {
		src, shape string
	}{
		{"x = 1 + 2 * 3", "Var x\n.Logical +\n..Number 1\n..Logical *\n...Number 2\n...Number 3\n"},
		{"x = a - b - c", "Var x\n.Logical -\n..Logical -\n...VarCall a\n...VarCall b\n..VarCall c\n"},
		{"x = (a - b) / 2", "Var x\n.Logical /\n..Logical -\n...VarCall a\n...VarCall b\n..Number 2\n"},
		{"x = -5", "Var x\n.Number -5\n"},
		{"x = 2 - -1.5", "Var x\n.Logical -\n..Number 2\n..Number -1.5\n"},
		{"x = -y", "Var x\n.Logical -\n..Number 0\n..VarCall y\n"},
		{"x", "Var x\n.Const None\n"},
		{"x = a <= 3", "Var x\n.Judgment <=\n..VarCall a\n..Number 3\n"},
		{"x = [1, 'a',]", "Var x\n.List/2\n..Number 1\n..Const \"a\"\n"},
		{"x -= 1", "Var x\n.Logical -\n..VarCall x\n..Number 1\n"},
	}
	for _, in := range inputs {
		if s := parseShape(t, in.src); s != in.shape {
			t.Errorf("%q: expected\n%s\nhave\n%s", in.src, in.shape, s)
		}
	}
}

func TestParseChains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.parser")
	defer teardown()
	//
	inputs := []struct {
		src, shape string
	}{
		{"a.append(9)", "SubCall\n.VarCall a\n.FunCall append/1\n..Number 9\n"},
		{"a.b.c = 2", "SubSet\n.SubCall\n..VarCall a\n..VarCall b\n.VarCall c\n.Number 2\n"},
		{"a.f() = 2", "SubSet\n.VarCall a\n.FunCall f/0\n.Number 2\n"},
		{"a[0] = 1", "SubCall\n.VarCall a\n.FunCall __setitem__/2\n..Number 0\n..Number 1\n"},
		{"o.n += 1", "SubSet\n.VarCall o\n.VarCall n\n.Logical +\n..SubCall\n...VarCall o\n...VarCall n\n..Number 1\n"},
		{"print(add(2, 3))", "FunCall print/1\n.FunCall add/2\n..Number 2\n..Number 3\n"},
	}
	for _, in := range inputs {
		if s := parseShape(t, in.src); s != in.shape {
			t.Errorf("%q: expected\n%s\nhave\n%s", in.src, in.shape, s)
		}
	}
}

func TestParseBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.parser")
	defer teardown()
	//
	src := `
def f(x, y: int):
    while x < y:
        if x == 3:
            return x
        x += 1
    return

class C():
    n = 0
    def get(self): return self.n
`
	expected := `Fun f/2
.Arg x
.Arg y: int
.While
..Judgment <
...VarCall x
...VarCall y
..If
...Judgment ==
....VarCall x
....Number 3
...Return
....VarCall x
..Var x
...Logical +
....VarCall x
....Number 1
.Return
..Const None
Class C
.Var n
..Number 0
.Fun get/1
..Arg self
..Return
...SubCall
....VarCall self
....VarCall n
`
	if s := parseShape(t, src); s != expected {
		t.Errorf("expected\n%s\nhave\n%s", expected, s)
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.parser")
	defer teardown()
	//
	inputs := []string{
		"return 1",
		"while x:\n    def f():\n        break\n",
		"break",
		"x = )",
		"1 = 2",
		"def f(x: number): return x",
		"if x\n    y = 1\n",
		"if x:\ny = 1\n",
		"x = [1, 2",
		"a b",
		"while True:\n    class C:\n        break\n",
		"def f():\n    class C:\n        return 1\n",
	}
	for _, src := range inputs {
		_, err := Parse(src)
		if !pygo.IsKind(err, pygo.ParseError) {
			t.Errorf("%q: expected ParseError, have %v", src, err)
		}
	}
}
