package pylang

import (
	"io"
	"os"

	"github.com/npillmayer/pygo/assembler"
	"github.com/npillmayer/pygo/ast"
	"github.com/npillmayer/pygo/instr"
	"github.com/npillmayer/pygo/object"
	"github.com/npillmayer/pygo/runtime"
)

// Interpreter runs programs. Global variables persist between runs, thus
// an interpreter may be fed a program piece by piece.
type Interpreter struct {
	rt       *runtime.Runtime
	out      io.Writer
	maxDepth int
	builtins bool
}

// Option configures an interpreter.
type Option func(*Interpreter)

// WithOutput sets the writer for print. Default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(intp *Interpreter) {
		if w != nil {
			intp.out = w
		}
	}
}

// WithMaxDepth sets the maximum depth of nested calls.
func WithMaxDepth(depth int) Option {
	return func(intp *Interpreter) {
		intp.maxDepth = depth
	}
}

// WithBuiltins switches the built-in functions on or off. Default is on.
func WithBuiltins(b bool) Option {
	return func(intp *Interpreter) {
		intp.builtins = b
	}
}

// NewInterpreter creates an interpreter with an empty global scope, except
// for the built-ins.
func NewInterpreter(opts ...Option) *Interpreter {
	intp := &Interpreter{out: os.Stdout, maxDepth: runtime.DefaultMaxDepth, builtins: true}
	for _, opt := range opts {
		opt(intp)
	}
	intp.rt = runtime.NewRuntimeEnvironment(intp.maxDepth)
	if intp.builtins {
		intp.loadBuiltins()
	}
	return intp
}

// Def binds a value to a global name, e.g., to inject a host function.
func (intp *Interpreter) Def(name string, v object.Value) {
	intp.rt.Globals().Set(name, v)
}

// Globals returns the global scope.
func (intp *Interpreter) Globals() *runtime.Scope {
	return intp.rt.Globals()
}

// Names returns the names bound in the global scope, in order of first
// definition. Built-ins are included.
func (intp *Interpreter) Names() []string {
	var names []string
	intp.rt.Globals().Tags().Each(func(name string, _ *runtime.Tag) {
		names = append(names, name)
	})
	return names
}

// Lookup returns the value of a global variable.
func (intp *Interpreter) Lookup(name string) (object.Value, error) {
	v, err := intp.rt.Globals().Lookup(name)
	if err != nil {
		return nil, err
	}
	return v.(object.Value), nil
}

// Compile parses a program and lowers it to instructions.
func (intp *Interpreter) Compile(src string) ([]ast.Statement, []instr.Instruction, error) {
	stmts, err := Parse(src)
	if err != nil {
		return nil, nil, err
	}
	code, err := assembler.BuildAll(stmts)
	if err != nil {
		return stmts, nil, err
	}
	return stmts, code, nil
}

// Run parses and executes a program. It returns the value of the last
// top-level statement. The first error terminates the program.
func (intp *Interpreter) Run(src string) (object.Value, error) {
	_, code, err := intp.Compile(src)
	if err != nil {
		return nil, err
	}
	return intp.Execute(code)
}

// Execute runs top-level instructions in order, in the global scope.
func (intp *Interpreter) Execute(code []instr.Instruction) (object.Value, error) {
	out, err := instr.RunBlock(code, intp.rt.Globals())
	if err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	return out.Value, nil
}
