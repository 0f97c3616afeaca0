package object

import (
	"testing"

	"github.com/npillmayer/pygo"
	"github.com/npillmayer/pygo/runtime"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestListMethods(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.object")
	defer teardown()
	//
	env := runtime.NewRuntimeEnvironment(0).Globals()
	l := NewList(Int(1), Int(2), Int(3))
	if _, err := CallMethod(env, l, "append", []Value{Int(9)}); err != nil {
		t.Fatal(err)
	}
	n, err := CallMethod(env, l, "__len__", nil)
	if err != nil || n != Int(4) {
		t.Errorf("expected length 4, have %v (%v)", n, err)
	}
	if v, _ := CallMethod(env, l, "__getitem__", []Value{Int(-1)}); v != Int(9) {
		t.Errorf("expected l[-1] = 9, have %v", v)
	}
	CallMethod(env, l, "insert", []Value{Int(0), Str("a")})
	if l.String() != "['a', 1, 2, 3, 9]" {
		t.Errorf("unexpected list form %s", l.String())
	}
	if v, _ := CallMethod(env, l, "pop", nil); v != Int(9) {
		t.Errorf("expected pop() to return 9, have %v", v)
	}
	if _, err := CallMethod(env, l, "__getitem__", []Value{Int(10)}); !pygo.IsKind(err, pygo.IndexError) {
		t.Errorf("expected IndexError, have %v", err)
	}
	if _, err := CallMethod(env, l, "append", nil); !pygo.IsKind(err, pygo.DispatchError) {
		t.Errorf("expected DispatchError for append(), have %v", err)
	}
}

func TestDictMethods(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.object")
	defer teardown()
	//
	env := runtime.NewRuntimeEnvironment(0).Globals()
	d := NewDict()
	CallMethod(env, d, "__setitem__", []Value{Str("k"), Int(1)})
	CallMethod(env, d, "__setitem__", []Value{Int(2), Str("two")})
	if d.String() != "{'k': 1, 2: 'two'}" {
		t.Errorf("unexpected dict form %s", d.String())
	}
	if v, _ := CallMethod(env, d, "get", []Value{Str("x"), Int(0)}); v != Int(0) {
		t.Errorf("expected default 0, have %v", v)
	}
	if _, err := CallMethod(env, d, "__getitem__", []Value{Str("x")}); !pygo.IsKind(err, pygo.KeyError) {
		t.Errorf("expected KeyError, have %v", err)
	}
	if _, err := CallMethod(env, d, "__setitem__", []Value{NewList(), Int(1)}); !pygo.IsKind(err, pygo.TypeError) {
		t.Errorf("expected TypeError for list key, have %v", err)
	}
	keys, _ := CallMethod(env, d, "keys", nil)
	if keys.String() != "['k', 2]" {
		t.Errorf("expected keys in insertion order, have %s", keys)
	}
}

func TestOverloadWidening(t *testing.T) {
	cands := []method{
		{params: []string{"float"}, fn: func(recv Value, args []Value) (Value, error) {
			return args[0], nil
		}},
	}
	m, argv, ok := resolve(cands, []Value{Int(2)})
	if !ok {
		t.Fatalf("expected int argument to be widened to float")
	}
	if v, _ := m.fn(nil, argv); v != Float(2) {
		t.Errorf("expected widened argument 2.0, have %v", v)
	}
}

type constFn struct{ v Value }

func (c constFn) TypeName() string { return "function" }
func (c constFn) String() string   { return "<const>" }
func (c constFn) Call(env *runtime.Scope, args []Value) (Value, error) {
	if len(args) > 0 {
		if inst, ok := args[0].(*Instance); ok {
			return GetField(inst, "x")
		}
	}
	return c.v, nil
}

func TestClassInstances(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.object")
	defer teardown()
	//
	env := runtime.NewRuntimeEnvironment(0).Globals()
	c := NewClass("Point")
	c.AddField("x", Int(0))
	c.AddField("y", Int(0))
	c.AddMethod("getx", 1, constFn{})
	v, err := c.Call(env, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := v.(*Instance)
	if err := SetField(p, "x", Int(7)); err != nil {
		t.Fatal(err)
	}
	if x, _ := CallMethod(env, p, "getx", nil); x != Int(7) {
		t.Errorf("expected getx() = 7, have %v", x)
	}
	if _, err := CallMethod(env, p, "getx", []Value{Int(1)}); !pygo.IsKind(err, pygo.ArityError) {
		t.Errorf("expected ArityError, have %v", err)
	}
	SetField(p, "color", Str("red"))
	if col, _ := GetField(p, "color"); col != Str("red") {
		t.Errorf("expected dynamic attribute, have %v", col)
	}
	q := c.Instantiate()
	if _, err := GetField(q, "color"); !pygo.IsKind(err, pygo.DispatchError) {
		t.Errorf("expected attribute to be per-instance, have %v", err)
	}
	if y, _ := GetField(q, "y"); y != Int(0) {
		t.Errorf("expected initial value for y, have %v", y)
	}
	if _, err := c.Call(env, []Value{Int(1)}); !pygo.IsKind(err, pygo.ArityError) {
		t.Errorf("expected ArityError for arguments without __init__, have %v", err)
	}
	if p.String() != "<Point object>" {
		t.Errorf("unexpected instance form %s", p)
	}
}

func TestAccessorCache(t *testing.T) {
	c := NewClass("C")
	c.AddField("a", None)
	c.AddField("b", None)
	if i, ok := slotOf(c, "b"); !ok || i != 1 {
		t.Errorf("expected slot 1 for b, have %d", i)
	}
	shape := c.Shape()
	if _, ok := accessors.slots[accessorKey{shape, "b"}]; !ok {
		t.Errorf("expected accessor for b to be cached")
	}
	c.AddField("c", None)
	if c.Shape() == shape {
		t.Errorf("expected shape to change with a new field")
	}
}
