package pylang

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/pygo"
	"github.com/npillmayer/pygo/object"
	"github.com/npillmayer/pygo/runtime"
)

type builtinFn = func(*runtime.Scope, []object.Value) (object.Value, error)

func (intp *Interpreter) loadBuiltins() {
	builtins := map[string]builtinFn{
		"print": intp.print,
		"len":   length,
		"str":   str,
		"int":   integer,
		"float": float,
		"list":  list,
		"dict":  dict,
		"type":  typeName,
	}
	for name, fn := range builtins {
		intp.Def(name, object.NewBuiltin(name, fn))
	}
}

func arity(name string, args []object.Value, min, max int) error {
	if len(args) < min || len(args) > max {
		if min == max {
			return pygo.Errorf(pygo.ArityError, "%s() takes exactly %d arguments (%d given)", name, min, len(args))
		}
		return pygo.Errorf(pygo.ArityError, "%s() takes %d to %d arguments (%d given)", name, min, max, len(args))
	}
	return nil
}

// print writes the string forms of its arguments, followed by a newline.
// Instances may define their string form with a method __str__.
func (intp *Interpreter) print(env *runtime.Scope, args []object.Value) (object.Value, error) {
	var b strings.Builder
	for _, a := range args {
		s, err := object.CallMethod(env, a, "__str__", nil)
		if err != nil {
			return nil, err
		}
		b.WriteString(s.String())
	}
	b.WriteByte('\n')
	_, err := io.WriteString(intp.out, b.String())
	return object.None, err
}

func length(env *runtime.Scope, args []object.Value) (object.Value, error) {
	if err := arity("len", args, 1, 1); err != nil {
		return nil, err
	}
	n, err := object.CallMethod(env, args[0], "__len__", nil)
	if pygo.IsKind(err, pygo.DispatchError) {
		return nil, pygo.Errorf(pygo.TypeError, "object of type '%s' has no len()", object.TypeName(args[0]))
	}
	return n, err
}

func str(env *runtime.Scope, args []object.Value) (object.Value, error) {
	if err := arity("str", args, 0, 1); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return object.Str(""), nil
	}
	return object.CallMethod(env, args[0], "__str__", nil)
}

func integer(env *runtime.Scope, args []object.Value) (object.Value, error) {
	if err := arity("int", args, 0, 1); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return object.Int(0), nil
	}
	switch x := args[0].(type) {
	case object.Int:
		return x, nil
	case object.Bool:
		if x {
			return object.Int(1), nil
		}
		return object.Int(0), nil
	case object.Float:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, pygo.Errorf(pygo.ValueError, "cannot convert %v to int", x)
		}
		return object.Int(math.Trunc(f)), nil
	case object.Str:
		i, err := strconv.ParseInt(strings.TrimSpace(string(x)), 10, 64)
		if err != nil {
			return nil, pygo.Errorf(pygo.ValueError, "invalid literal for int(): %s", object.Repr(x))
		}
		return object.Int(i), nil
	}
	return nil, pygo.Errorf(pygo.TypeError, "int() argument must be a string or a number, not '%s'",
		object.TypeName(args[0]))
}

func float(env *runtime.Scope, args []object.Value) (object.Value, error) {
	if err := arity("float", args, 0, 1); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return object.Float(0), nil
	}
	switch x := args[0].(type) {
	case object.Float:
		return x, nil
	case object.Int:
		return object.Float(x), nil
	case object.Bool:
		if x {
			return object.Float(1), nil
		}
		return object.Float(0), nil
	case object.Str:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(x)), 64)
		if err != nil {
			return nil, pygo.Errorf(pygo.ValueError, "could not convert string to float: %s", object.Repr(x))
		}
		return object.Float(f), nil
	}
	return nil, pygo.Errorf(pygo.TypeError, "float() argument must be a string or a number, not '%s'",
		object.TypeName(args[0]))
}

func list(env *runtime.Scope, args []object.Value) (object.Value, error) {
	if err := arity("list", args, 0, 1); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return object.NewList(), nil
	}
	switch x := args[0].(type) {
	case *object.List:
		return object.NewList(x.Values()...), nil
	case *object.Dict:
		return object.NewList(x.Keys()...), nil
	case object.Str:
		l := object.NewList()
		for _, r := range string(x) {
			l.Append(object.Str(string(r)))
		}
		return l, nil
	}
	return nil, pygo.Errorf(pygo.TypeError, "'%s' object is not iterable", object.TypeName(args[0]))
}

// dict creates an empty dict, copies a dict or builds one from a list of
// key-value pairs.
func dict(env *runtime.Scope, args []object.Value) (object.Value, error) {
	if err := arity("dict", args, 0, 1); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return object.NewDict(), nil
	}
	switch x := args[0].(type) {
	case *object.Dict:
		return x.Copy(), nil
	case *object.List:
		d := object.NewDict()
		for _, item := range x.Values() {
			pair, ok := item.(*object.List)
			if !ok || pair.Len() != 2 {
				return nil, pygo.Errorf(pygo.ValueError, "dict() needs a list of pairs, found %s", object.Repr(item))
			}
			kv := pair.Values()
			if err := d.Put(kv[0], kv[1]); err != nil {
				return nil, err
			}
		}
		return d, nil
	}
	return nil, pygo.Errorf(pygo.TypeError, "cannot convert '%s' object to dict", object.TypeName(args[0]))
}

func typeName(env *runtime.Scope, args []object.Value) (object.Value, error) {
	if err := arity("type", args, 1, 1); err != nil {
		return nil, err
	}
	return object.Str(object.TypeName(args[0])), nil
}
