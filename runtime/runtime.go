/*
Package runtime implements the runtime environment of the interpreter,
consisting of scopes, call frames and tags (variable bindings).

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Scopes

Scopes hold symbol tables of tags. Every scope links back to an enclosing
scope; name resolution walks up this chain until the outermost scope, which
holds the global symbols and the built-ins. Binding a name always happens in
the scope at hand, thus a local binding shadows a binding of the same name
further up the chain and leaves it untouched.

Call Frames

Each active function call owns a frame on a stack of call frames. The stack
enforces a maximum call depth.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package runtime

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer, if one is installed, and to
// selector 'pygo.runtime' otherwise.
func T() tracing.Trace {
	if gtrace.SyntaxTracer != nil {
		return gtrace.SyntaxTracer
	}
	return tracing.Select("pygo.runtime")
}

// DefaultMaxDepth is the call depth limit if none is given.
const DefaultMaxDepth = 1000

// Runtime is a type implementing a runtime environment for an interpreter.
type Runtime struct {
	globals *Scope
	Frames  *FrameStack // runtime stack of call frames
}

// NewRuntimeEnvironment constructs a new runtime environment, initialized
// with an empty global scope. maxDepth limits the number of nested calls;
// maxDepth <= 0 selects DefaultMaxDepth.
//
func NewRuntimeEnvironment(maxDepth int) *Runtime {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	rt := &Runtime{}
	rt.globals = NewScope("globals", nil)
	rt.globals.rt = rt
	rt.Frames = &FrameStack{MaxDepth: maxDepth}
	return rt
}

// Globals returns the outermost scope.
func (rt *Runtime) Globals() *Scope {
	return rt.globals
}
