package runtime

import (
	"testing"

	"github.com/npillmayer/pygo"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewSymTab(t *testing.T) {
	symtab := NewSymbolTable()
	if symtab == nil {
		t.Error("no symbol table created")
	}
}

func TestNewSymbol(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if sym == nil {
		t.Error("no symbol created for table")
	}
	sym.UData = 5
	if sym.UData != 5 {
		t.Errorf("UData does not work")
	}
}

func TestResolveOrDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, found := symtab.ResolveOrDefineTag(sym.Name()); !found {
		t.Error("cannot find stored symbol in table")
	}
	if _, found := symtab.ResolveOrDefineTag("other"); found {
		t.Error("did not expect to find a new symbol")
	}
}

func TestDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, old := symtab.DefineTag("new-sym"); old != sym {
		t.Error("symbol should have been replaced")
	}
}

func TestEachInOrder(t *testing.T) {
	symtab := NewSymbolTable()
	for _, n := range []string{"c", "a", "b"} {
		symtab.DefineTag(n)
	}
	symtab.DefineTag("a")
	names := ""
	symtab.Each(func(n string, _ *Tag) { names += n })
	if names != "cab" {
		t.Errorf("expected definition order 'cab', have %q", names)
	}
}

func TestScopeUpsearch(t *testing.T) {
	scopep := NewScope("parent", nil)
	scope := NewScope("current", scopep)
	scopep.DefineTag("new-sym")
	if sym, sc := scope.ResolveTag("new-sym"); sym == nil || sc != scopep {
		t.Errorf("expected to find symbol in parent scope")
	}
}

func TestShadowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.runtime")
	defer teardown()
	//
	rt := NewRuntimeEnvironment(0)
	rt.Globals().Set("x", 1)
	local := NewScope("f", rt.Globals())
	local.Set("x", 2)
	if v, _ := local.Lookup("x"); v != 2 {
		t.Errorf("expected local x to be 2, is %v", v)
	}
	if v, _ := rt.Globals().Lookup("x"); v != 1 {
		t.Errorf("expected global x to be unchanged, is %v", v)
	}
	if local.Runtime() != rt {
		t.Errorf("expected child scope to share the runtime")
	}
}

func TestUndefinedName(t *testing.T) {
	scope := NewScope("current", NewScope("parent", nil))
	_, err := scope.Lookup("nope")
	if !pygo.IsKind(err, pygo.NameError) {
		t.Errorf("expected NameError, have %v", err)
	}
}

func TestFrameDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.runtime")
	defer teardown()
	//
	rt := NewRuntimeEnvironment(2)
	if _, err := rt.Frames.Push("f", rt.Globals()); err != nil {
		t.Fatal(err)
	}
	if _, err := rt.Frames.Push("g", rt.Globals()); err != nil {
		t.Fatal(err)
	}
	if _, err := rt.Frames.Push("h", rt.Globals()); !pygo.IsKind(err, pygo.RecursionError) {
		t.Errorf("expected RecursionError, have %v", err)
	}
	if cf := rt.Frames.Pop(); cf.Name != "g" {
		t.Errorf("expected to pop frame g, popped %s", cf.Name)
	}
	if rt.Frames.Depth() != 1 {
		t.Errorf("expected depth 1, is %d", rt.Frames.Depth())
	}
}
