package main

import (
	"strings"
	"unicode"

	"github.com/npillmayer/pygo/pylang"
)

// completer completes the identifier left of the cursor with the names
// bound in the global scope. It is a readline.AutoCompleter.
type completer struct {
	py *pylang.Interpreter
}

// Do returns the missing suffixes of all matching names, and the length of
// the prefix they complete.
func (c completer) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && isIdentRune(line[start-1]) {
		start--
	}
	if start == pos {
		return nil, 0
	}
	prefix := string(line[start:pos])
	var suffixes [][]rune
	for _, name := range c.py.Names() {
		if name != prefix && strings.HasPrefix(name, prefix) {
			suffixes = append(suffixes, []rune(name[len(prefix):]))
		}
	}
	return suffixes, pos - start
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
