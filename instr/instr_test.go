package instr

import (
	"testing"

	"github.com/npillmayer/pygo"
	"github.com/npillmayer/pygo/object"
	"github.com/npillmayer/pygo/runtime"
	"github.com/npillmayer/pygo/token"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func num(n int64) Instruction { return NewConst(object.Int(n)) }

// recorder is a built-in appending its arguments to a list of calls.
func recorder(calls *[]object.Value) *object.Builtin {
	return object.NewBuiltin("record", func(env *runtime.Scope, args []object.Value) (object.Value, error) {
		*calls = append(*calls, args...)
		return object.None, nil
	})
}

func TestWhileCountsThreeTimes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.instr")
	defer teardown()
	//
	env := runtime.NewRuntimeEnvironment(0).Globals()
	var calls []object.Value
	env.Set("record", recorder(&calls))
	prog := []Instruction{
		NewVar("i", num(1)),
		NewWhile(NewJudgment(token.LessEq, NewVarRef("i"), num(3)), []Instruction{
			NewCall("record", []Instruction{NewVarRef("i")}),
			NewVar("i", NewLogical("+", NewVarRef("i"), num(1))),
		}),
	}
	if _, err := RunBlock(prog, env); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 3 {
		t.Errorf("expected loop body to run 3 times, ran %d times", len(calls))
	}
}

func TestNestedReturn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.instr")
	defer teardown()
	//
	env := runtime.NewRuntimeEnvironment(0).Globals()
	var calls []object.Value
	env.Set("record", recorder(&calls))
	// def f():
	//     while True:
	//         if True:
	//             return 42
	//         record(1)
	//     record(2)
	body := []Instruction{
		NewWhile(NewConst(object.Bool(true)), []Instruction{
			NewIf(NewConst(object.Bool(true)), []Instruction{NewReturn(num(42))}),
			NewCall("record", []Instruction{num(1)}),
		}),
		NewCall("record", []Instruction{num(2)}),
	}
	prog := []Instruction{
		NewFun("f", nil, body),
		NewVar("r", NewCall("f", nil)),
	}
	if _, err := RunBlock(prog, env); err != nil {
		t.Fatal(err)
	}
	if r, _ := env.Lookup("r"); r != object.Int(42) {
		t.Errorf("expected f() to return 42, returned %v", r)
	}
	if len(calls) != 0 {
		t.Errorf("expected no side effects after return, have %v", calls)
	}
}

func TestBreakLeavesInnermostLoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.instr")
	defer teardown()
	//
	env := runtime.NewRuntimeEnvironment(0).Globals()
	var calls []object.Value
	env.Set("record", recorder(&calls))
	// def g():
	//     i = 0
	//     while i < 2:
	//         while True:
	//             break
	//         record(i)
	//         i += 1
	//     return "done"
	body := []Instruction{
		NewVar("i", num(0)),
		NewWhile(NewJudgment(token.Less, NewVarRef("i"), num(2)), []Instruction{
			NewWhile(NewConst(object.Bool(true)), []Instruction{NewBreak()}),
			NewCall("record", []Instruction{NewVarRef("i")}),
			NewVar("i", NewLogical("+", NewVarRef("i"), num(1))),
		}),
		NewReturn(NewConst(object.Str("done"))),
	}
	prog := []Instruction{NewFun("g", nil, body), NewCall("g", nil)}
	out, err := RunBlock(prog, env)
	if err != nil {
		t.Fatal(err)
	}
	if out.Signal != Completed || out.Value != object.Str("done") {
		t.Errorf("expected g() to complete with 'done', have %s %v", out.Signal, out.Value)
	}
	if len(calls) != 2 {
		t.Errorf("expected outer loop to run twice, ran %d times", len(calls))
	}
}

func TestShadowingLeavesCallerUnchanged(t *testing.T) {
	env := runtime.NewRuntimeEnvironment(0).Globals()
	prog := []Instruction{
		NewVar("x", num(1)),
		NewFun("f", nil, []Instruction{
			NewVar("x", num(2)),
			NewReturn(NewVarRef("x")),
		}),
		NewVar("y", NewCall("f", nil)),
	}
	if _, err := RunBlock(prog, env); err != nil {
		t.Fatal(err)
	}
	x, _ := env.Lookup("x")
	y, _ := env.Lookup("y")
	if x != object.Int(1) || y != object.Int(2) {
		t.Errorf("expected x=1 and y=2, have x=%v y=%v", x, y)
	}
}

func TestCallErrors(t *testing.T) {
	env := runtime.NewRuntimeEnvironment(0).Globals()
	add := NewFun("add", []Param{{Name: "a"}, {Name: "b", Type: "int"}}, []Instruction{
		NewReturn(NewLogical("+", NewVarRef("a"), NewVarRef("b"))),
	})
	if _, err := Run(add, env); err != nil {
		t.Fatal(err)
	}
	_, err := Run(NewCall("add", []Instruction{num(1)}), env)
	if !pygo.IsKind(err, pygo.ArityError) {
		t.Errorf("expected ArityError, have %v", err)
	}
	_, err = Run(NewCall("add", []Instruction{num(1), NewConst(object.Str("x"))}), env)
	if !pygo.IsKind(err, pygo.TypeError) {
		t.Errorf("expected TypeError for annotated parameter, have %v", err)
	}
	_, err = Run(NewCall("nope", nil), env)
	if !pygo.IsKind(err, pygo.NameError) {
		t.Errorf("expected NameError, have %v", err)
	}
	_, err = Run(NewIf(num(1), nil), env)
	if !pygo.IsKind(err, pygo.TypeError) {
		t.Errorf("expected TypeError for non-boolean condition, have %v", err)
	}
}

func TestRecursionLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.instr")
	defer teardown()
	//
	env := runtime.NewRuntimeEnvironment(50).Globals()
	prog := []Instruction{
		NewFun("down", nil, []Instruction{NewReturn(NewCall("down", nil))}),
		NewCall("down", nil),
	}
	if _, err := RunBlock(prog, env); !pygo.IsKind(err, pygo.RecursionError) {
		t.Errorf("expected RecursionError, have %v", err)
	}
	if d := env.Runtime().Frames.Depth(); d != 0 {
		t.Errorf("expected all frames to be popped, depth is %d", d)
	}
}

func TestClassDefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.instr")
	defer teardown()
	//
	env := runtime.NewRuntimeEnvironment(0).Globals()
	// class Counter:
	//     n = 0
	//     def __init__(self, start):
	//         self.n = start
	//     def inc(self):
	//         self.n += 1
	//         return self.n
	class := NewClass("Counter", []Instruction{
		NewVar("n", num(0)),
		NewFun("__init__", []Param{{Name: "self"}, {Name: "start"}}, []Instruction{
			NewFieldSet(NewVarRef("self"), "n", false, NewVarRef("start")),
		}),
		NewFun("inc", []Param{{Name: "self"}}, []Instruction{
			NewFieldSet(NewVarRef("self"), "n", false,
				NewLogical("+", NewFieldGet(NewVarRef("self"), "n"), num(1))),
			NewReturn(NewFieldGet(NewVarRef("self"), "n")),
		}),
	})
	prog := []Instruction{
		class,
		NewVar("c", NewCall("Counter", []Instruction{num(10)})),
		NewMethodCall(NewVarRef("c"), "inc", nil),
		NewVar("r", NewMethodCall(NewVarRef("c"), "inc", nil)),
	}
	if _, err := RunBlock(prog, env); err != nil {
		t.Fatal(err)
	}
	if r, _ := env.Lookup("r"); r != object.Int(12) {
		t.Errorf("expected 12, have %v", r)
	}
	_, err := Run(NewFieldSet(NewVarRef("c"), "inc", true, num(1)), env)
	if !pygo.IsKind(err, pygo.TypeError) {
		t.Errorf("expected TypeError assigning to a method call, have %v", err)
	}
	broken := NewClass("B", []Instruction{NewVar("x", num(1)), NewBreak(), NewVar("y", num(2))})
	if _, err := Run(broken, env); !pygo.IsKind(err, pygo.TypeError) {
		t.Errorf("expected TypeError for break in class body, have %v", err)
	}
	if _, err := env.Lookup("B"); err == nil {
		t.Errorf("expected class B not to be bound")
	}
}
