package instr

import (
	"fmt"

	"github.com/npillmayer/pygo"
	"github.com/npillmayer/pygo/object"
	"github.com/npillmayer/pygo/runtime"
)

// Param is a formal parameter of a function. Type is empty for parameters
// without annotation.
type Param struct {
	Name string
	Type string
}

// Function is a user-defined function. A call without a return statement
// results in None.
//
// A call creates a new scope for the parameters and local variables, which
// encloses into the scope active at the call site. Names not bound locally
// are therefore resolved in the caller's scopes.
type Function struct {
	Name   string
	Params []Param
	Body   []Instruction
}

var _ object.Callable = (*Function)(nil)

func (f *Function) TypeName() string { return "function" }
func (f *Function) String() string   { return fmt.Sprintf("<function %s>", f.Name) }

// Call is part of interface object.Callable.
func (f *Function) Call(env *runtime.Scope, args []object.Value) (object.Value, error) {
	if len(args) != len(f.Params) {
		return nil, pygo.Errorf(pygo.ArityError, "%s() takes %d positional arguments but %d were given",
			f.Name, len(f.Params), len(args))
	}
	for i, p := range f.Params {
		if !accepts(p.Type, args[i]) {
			return nil, pygo.Errorf(pygo.TypeError, "argument %s of %s() must be %s, not %s",
				p.Name, f.Name, p.Type, object.TypeName(args[i]))
		}
	}
	local := runtime.NewScope(f.Name, env)
	if rt := env.Runtime(); rt != nil {
		if _, err := rt.Frames.Push(f.Name, local); err != nil {
			return nil, err
		}
		defer rt.Frames.Pop()
	}
	for i, p := range f.Params {
		local.Set(p.Name, args[i])
	}
	out, err := runBlock(f.Body, local)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("%s() %s with %v", f.Name, out.Signal, out.Value)
	if out.Signal != Returned {
		return object.None, nil
	}
	return out.Value, nil
}

// accepts checks an argument against a parameter annotation.
func accepts(typ string, v object.Value) bool {
	switch typ {
	case "", "object":
		return true
	case "float":
		switch v.(type) {
		case object.Int, object.Float:
			return true
		}
		return false
	}
	return object.TypeName(v) == typ
}

type funInstr struct {
	fn *Function
}

// NewFun creates a function definition. Executing it binds the function to
// its name in the current scope.
func NewFun(name string, params []Param, body []Instruction) Instruction {
	return &funInstr{fn: &Function{Name: name, Params: params, Body: body}}
}

func (ins *funInstr) Exec(env *runtime.Scope) (Outcome, error) {
	env.Set(ins.fn.Name, ins.fn)
	return completed(ins.fn), nil
}

// --- Classes ---------------------------------------------------------------

type classInstr struct {
	name string
	body []Instruction
}

// NewClass creates a class definition. Executing it runs the class body in
// a scope of its own: variables become fields of the class, functions
// become methods. The class is then bound to its name in the current scope.
func NewClass(name string, body []Instruction) Instruction {
	return &classInstr{name: name, body: body}
}

func (ins *classInstr) Exec(env *runtime.Scope) (Outcome, error) {
	cls := object.NewClass(ins.name)
	scope := runtime.NewScope(ins.name, env)
	for _, member := range ins.body {
		out, err := member.Exec(scope)
		if err != nil {
			return Outcome{}, err
		}
		if out.Signal != Completed {
			return Outcome{}, pygo.Errorf(pygo.TypeError, "%s in body of class %s", out.Signal, ins.name)
		}
		switch m := member.(type) {
		case *varInstr:
			cls.AddField(m.name, out.Value)
		case *funInstr:
			cls.AddMethod(m.fn.Name, len(m.fn.Params), m.fn)
		}
	}
	tracer().Debugf("class %s defined", ins.name)
	env.Set(ins.name, cls)
	return completed(cls), nil
}
