/*
Package pylang is the front end of a small interpreter for a Python-like
language.

The language knows assignment, arithmetic and string concatenation,
comparisons, conditionals, loops, functions, simple classes and lists:

    def add(x, y): return x + y

    class Counter:
        n = 0
        def inc(self):
            self.n += 1

    c = Counter()
    i = 1
    while i <= 3:
        c.inc()
        i += 1
    print("count = ", c.n, ", sum = ", add(2, 3))

Source text is tokenized with a lexmachine lexer, followed by a pass which
turns indentation into INDENT and DEDENT tokens. A cursor-driven parser
builds statements (package ast), which are lowered to instructions (package
assembler) and executed (package instr). Interpreter ties these stages
together and provides the built-in functions.

Tracing goes to selector 'pygo.parser'.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pylang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pygo.parser'.
func tracer() tracing.Trace {
	return tracing.Select("pygo.parser")
}
