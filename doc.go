/*
Package pygo is a small interpreter for a restricted, Python-like scripting
language.

Programs are processed in one-shot stages: a lexer produces a stream of
classified tokens, a cursor-driven parser builds a tree of statements, an
assembler lowers every statement into an executable instruction and a
tree-walking executor runs the instructions against a chain of scopes.
Package structure is as follows:

■ token: Package token defines the token kinds shared between lexer and parser.

■ scanner: Package scanner defines the tokenizer interface and an adapter for lexmachine.

■ pylang: Package pylang is the language front end: lexer, parser and the
interpreter pipeline, including the built-in functions.

■ ast, assembler, instr: statements, their lowering and the instruction set.

■ object: Package object implements runtime values and dynamic member dispatch.

■ runtime: Package runtime provides scopes and call frames.

The base package contains data types which are used throughout all the other
packages: tokens, spans and the error taxonomy.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pygo
