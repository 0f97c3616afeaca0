/*
Package object implements the runtime values of the interpreter.

The set of value types is closed: None, Bool, Int, Float, Str, *List, *Dict,
*Class, *Instance and the callables *Builtin and *BoundMethod. User-defined
functions live in package instr and enter this package through the Callable
interface.

Member access on values is resolved by name at run time through CallMethod,
GetField and SetField. Built-in types carry method tables with typed
overloads; instances of user classes keep their fields in slots, which are
located through an accessor cache keyed by class shape.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package object

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pygo.object'.
func tracer() tracing.Trace {
	return tracing.Select("pygo.object")
}
