package object

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/pygo"
	"github.com/npillmayer/pygo/runtime"
)

// Class is a user-defined class. Classes are assembled step by step with
// AddField and AddMethod, then instantiated by calling them.
type Class struct {
	Name    string
	fields  []field
	methods map[string]classMethod
	shape   string // empty if invalid
}

type field struct {
	name    string
	initial Value
}

type classMethod struct {
	arity int // including the receiver, < 0 for any
	fn    Callable
}

// layout is what the shape of a class is computed from.
type layout struct {
	Name   string
	Fields []string
}

var _ Callable = (*Class)(nil)

// NewClass creates a class without fields and methods.
func NewClass(name string) *Class {
	return &Class{Name: name, methods: make(map[string]classMethod)}
}

func (c *Class) TypeName() string { return "type" }
func (c *Class) String() string   { return fmt.Sprintf("<class '%s'>", c.Name) }

// AddField declares a field with an initial value for new instances.
// Re-declaring a field replaces its initial value.
func (c *Class) AddField(name string, initial Value) {
	for i := range c.fields {
		if c.fields[i].name == name {
			c.fields[i].initial = initial
			return
		}
	}
	c.fields = append(c.fields, field{name: name, initial: initial})
	c.shape = ""
}

// AddMethod adds a method. arity is the number of parameters including
// the receiver; fn will be called with the instance as its first argument.
func (c *Class) AddMethod(name string, arity int, fn Callable) {
	c.methods[name] = classMethod{arity: arity, fn: fn}
}

// Shape returns a fingerprint of the class's name and field layout.
func (c *Class) Shape() string {
	if c.shape == "" {
		l := layout{Name: c.Name}
		for _, f := range c.fields {
			l.Fields = append(l.Fields, f.name)
		}
		h, err := structhash.Hash(l, 1)
		if err != nil {
			tracer().Errorf("cannot hash layout of class %s: %v", c.Name, err)
			h = fmt.Sprintf("%s%v", c.Name, l.Fields)
		}
		c.shape = h
	}
	return c.shape
}

// field returns the current value of a class-level field.
func (c *Class) field(name string) (Value, bool) {
	for _, f := range c.fields {
		if f.name == name {
			return f.initial, true
		}
	}
	return nil, false
}

// Instantiate creates a new instance, with fields set to their initial
// values. No initializer is run.
func (c *Class) Instantiate() *Instance {
	inst := &Instance{class: c, slots: make([]Value, len(c.fields))}
	for i, f := range c.fields {
		inst.slots[i] = f.initial
	}
	tracer().Debugf("new instance of %s", c.Name)
	return inst
}

// Call instantiates c and runs method __init__ on the new instance, if c
// defines one. It is an ArityError to pass arguments to a class without
// __init__.
func (c *Class) Call(env *runtime.Scope, args []Value) (Value, error) {
	inst := c.Instantiate()
	if _, ok := c.methods["__init__"]; ok {
		if _, err := inst.callMethod(env, "__init__", args); err != nil {
			return nil, err
		}
		return inst, nil
	}
	if len(args) > 0 {
		return nil, pygo.Errorf(pygo.ArityError, "%s() takes no arguments (%d given)", c.Name, len(args))
	}
	return inst, nil
}

// --- Instances -------------------------------------------------------------

// Instance is an object of a user-defined class. Besides the fields declared
// by its class, an instance may carry attributes assigned at run time.
type Instance struct {
	class *Class
	slots []Value
	extra map[string]Value
}

func (inst *Instance) TypeName() string { return inst.class.Name }
func (inst *Instance) String() string   { return fmt.Sprintf("<%s object>", inst.class.Name) }

func (inst *Instance) callMethod(env *runtime.Scope, name string, args []Value) (Value, error) {
	if m, ok := inst.class.methods[name]; ok {
		if m.arity >= 0 && m.arity != len(args)+1 {
			return nil, pygo.Errorf(pygo.ArityError, "%s.%s() takes %d arguments (%d given)",
				inst.class.Name, name, m.arity-1, len(args))
		}
		argv := make([]Value, 0, len(args)+1)
		argv = append(argv, inst)
		argv = append(argv, args...)
		return m.fn.Call(env, argv)
	}
	if v, ok := inst.attr(name); ok {
		if fn, ok := v.(Callable); ok {
			return fn.Call(env, args)
		}
	}
	if name == "__str__" {
		return Str(inst.String()), nil
	}
	return nil, dispatchError(inst, name, args)
}

func (inst *Instance) attr(name string) (Value, bool) {
	if i, ok := slotOf(inst.class, name); ok && i < len(inst.slots) {
		return inst.slots[i], true
	}
	if v, ok := inst.extra[name]; ok {
		return v, true
	}
	return inst.class.field(name) // added to the class after inst was created
}

func (inst *Instance) setAttr(name string, v Value) {
	if i, ok := slotOf(inst.class, name); ok && i < len(inst.slots) {
		inst.slots[i] = v
		return
	}
	if inst.extra == nil {
		inst.extra = make(map[string]Value)
	}
	inst.extra[name] = v
}
