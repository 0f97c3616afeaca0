/*
Package pyrepl/main provides an interactive command line tool (PyREPL) for
the scripting language of package pylang. Statements are entered line by
line; a line ending with a colon opens a block, which is finished by an
empty line. Global variables persist for the whole session.

Given a file name as an argument, PyREPL runs the file as a script and
exits.

	pyrepl [-trace Debug] [-init file] [-config file] [-ast] [script]

A configuration file is in YAML format:

	trace: Info        # trace level
	prompt: "py> "     # input prompt
	max-depth: 200     # maximum depth of nested calls
	dump-ast: true     # show the statement tree of every input

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pygo.repl'
func tracer() tracing.Trace {
	return tracing.Select("pygo.repl")
}
