package object

import (
	"fmt"

	"github.com/npillmayer/pygo/runtime"
)

// Callable is a value which may be invoked with a list of positional
// arguments. env is the scope active at the call site.
type Callable interface {
	Value
	Call(env *runtime.Scope, args []Value) (Value, error)
}

// Builtin is a callable provided by the host.
type Builtin struct {
	Name string
	Fn   func(env *runtime.Scope, args []Value) (Value, error)
}

var _ Callable = (*Builtin)(nil)

// NewBuiltin wraps a Go function as a callable value.
func NewBuiltin(name string, fn func(*runtime.Scope, []Value) (Value, error)) *Builtin {
	return &Builtin{Name: name, Fn: fn}
}

func (b *Builtin) TypeName() string { return "builtin_function_or_method" }
func (b *Builtin) String() string   { return fmt.Sprintf("<built-in function %s>", b.Name) }

// Call is part of interface Callable.
func (b *Builtin) Call(env *runtime.Scope, args []Value) (Value, error) {
	v, err := b.Fn(env, args)
	if v == nil && err == nil {
		v = None
	}
	return v, err
}

// BoundMethod is a method together with the receiver it has been read from.
type BoundMethod struct {
	Self Value
	Name string
	call func(env *runtime.Scope, args []Value) (Value, error)
}

var _ Callable = (*BoundMethod)(nil)

func (m *BoundMethod) TypeName() string { return "method" }

func (m *BoundMethod) String() string {
	return fmt.Sprintf("<bound method %s.%s>", TypeName(m.Self), m.Name)
}

// Call is part of interface Callable.
func (m *BoundMethod) Call(env *runtime.Scope, args []Value) (Value, error) {
	return m.call(env, args)
}

func bind(recv Value, name string) *BoundMethod {
	return &BoundMethod{
		Self: recv,
		Name: name,
		call: func(env *runtime.Scope, args []Value) (Value, error) {
			return CallMethod(env, recv, name, args)
		},
	}
}
