package object

import (
	"strings"
	"sync"

	"github.com/npillmayer/pygo"
	"github.com/npillmayer/pygo/runtime"
)

// method is an overload of a built-in method. params holds the type names
// of the parameters, where "object" stands for any type.
type method struct {
	params []string
	fn     func(recv Value, args []Value) (Value, error)
}

// methodTables holds the built-in methods, by receiver type name.
var methodTables map[string]map[string][]method

func init() {
	methodTables = map[string]map[string][]method{
		"list": listMethodTable(),
		"dict": dictMethodTable(),
		"str":  strMethodTable(),
	}
}

// CallMethod invokes method name on recv.
//
// For built-in types the overload is selected in three passes: first
// parameters have to match the argument types exactly, then "object"
// parameters accept any argument, and finally int arguments are widened to
// float parameters. Methods of class instances receive the instance as
// their first argument.
func CallMethod(env *runtime.Scope, recv Value, name string, args []Value) (Value, error) {
	tracer().Debugf("call %s.%s(%s)", TypeName(recv), name, argShapes(args))
	switch r := recv.(type) {
	case *Instance:
		return r.callMethod(env, name, args)
	case *Class:
		if m, ok := r.methods[name]; ok {
			return m.fn.Call(env, args)
		}
		return nil, dispatchError(recv, name, args)
	}
	if table, ok := methodTables[TypeName(recv)]; ok {
		if m, argv, ok := resolve(table[name], args); ok {
			return m.fn(recv, argv)
		}
	}
	if name == "__str__" && len(args) == 0 {
		return Str(recv.String()), nil
	}
	return nil, dispatchError(recv, name, args)
}

const (
	exactTypes = iota
	anyParams
	widening
)

func resolve(cands []method, args []Value) (method, []Value, bool) {
	for pass := exactTypes; pass <= widening; pass++ {
		for _, m := range cands {
			if accepts(m.params, args, pass) {
				if pass == widening {
					return m, widen(m.params, args), true
				}
				return m, args, true
			}
		}
	}
	return method{}, nil, false
}

func accepts(params []string, args []Value, pass int) bool {
	if len(params) != len(args) {
		return false
	}
	for i, p := range params {
		t := TypeName(args[i])
		switch {
		case p == t:
		case pass >= anyParams && p == "object":
		case pass >= widening && p == "float" && t == "int":
		default:
			return false
		}
	}
	return true
}

func widen(params []string, args []Value) []Value {
	argv := make([]Value, len(args))
	for i, a := range args {
		if n, ok := a.(Int); ok && params[i] == "float" {
			argv[i] = Float(n)
		} else {
			argv[i] = a
		}
	}
	return argv
}

// GetField reads attribute name of recv. Reading a method yields a bound
// method.
func GetField(recv Value, name string) (Value, error) {
	switch r := recv.(type) {
	case *Instance:
		if v, ok := r.attr(name); ok {
			return v, nil
		}
		if _, ok := r.class.methods[name]; ok {
			return bind(recv, name), nil
		}
	case *Class:
		if v, ok := r.field(name); ok {
			return v, nil
		}
		if m, ok := r.methods[name]; ok {
			return m.fn, nil
		}
	default:
		if table, ok := methodTables[TypeName(recv)]; ok {
			if _, ok := table[name]; ok {
				return bind(recv, name), nil
			}
		}
	}
	return nil, pygo.Errorf(pygo.DispatchError, "'%s' object has no attribute '%s'", TypeName(recv), name)
}

// SetField writes attribute name of recv. Instances accept attributes not
// declared by their class.
func SetField(recv Value, name string, v Value) error {
	switch r := recv.(type) {
	case *Instance:
		r.setAttr(name, v)
		return nil
	case *Class:
		r.AddField(name, v)
		return nil
	}
	return pygo.Errorf(pygo.DispatchError, "cannot set attribute '%s' of '%s' object", name, TypeName(recv))
}

// --- Accessor cache --------------------------------------------------------

type accessorKey struct {
	shape string
	field string
}

// accessors caches the slot index of a field, by class shape. Fields not
// declared by a class are cached as -1.
var accessors = struct {
	sync.Mutex
	slots map[accessorKey]int
}{slots: make(map[accessorKey]int)}

func slotOf(c *Class, name string) (int, bool) {
	key := accessorKey{shape: c.Shape(), field: name}
	accessors.Lock()
	defer accessors.Unlock()
	if i, ok := accessors.slots[key]; ok {
		return i, i >= 0
	}
	i := -1
	for j, f := range c.fields {
		if f.name == name {
			i = j
			break
		}
	}
	tracer().Debugf("caching accessor %s.%s -> %d", c.Name, name, i)
	accessors.slots[key] = i
	return i, i >= 0
}

// ---------------------------------------------------------------------------

func argShapes(args []Value) string {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = TypeName(a)
	}
	return strings.Join(names, ", ")
}

func dispatchError(recv Value, name string, args []Value) error {
	return pygo.Errorf(pygo.DispatchError, "no method %s(%s) for '%s' object",
		name, argShapes(args), TypeName(recv))
}
