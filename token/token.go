/*
Package token defines the token kinds of the language.

The numeric codes are the boundary contract between lexer and parser. They are
fixed: the parser was written against this table, and any lexer feeding the
parser has to produce exactly these codes.

	EOF        -1    end of stream
	INDENT      1    deeper indentation
	DEDENT      2    block end
	STRING      3    "…" or '…'
	NUMBER      4    123, 1.5, 2e10
	break      11
	class      13
	def        15
	False      20
	if         25
	None       31
	return     37
	True       38
	while      41
	NEWLINE    44    statement separator
	NAME       45
	.          54
	*          56
	( )        57 58
	,          59
	:          60
	=          63
	[ ]        64 65
	+ - /      71 72 73
	< > ==     79 80 81
	>= <= <>   82 83 84
	!=         85
	+= -= *=   88 89 90
	/=         92

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package token

import (
	"fmt"

	"github.com/npillmayer/pygo"
)

// Token kinds.
const (
	EOF        pygo.TokType = -1
	Indent     pygo.TokType = 1
	Dedent     pygo.TokType = 2
	String     pygo.TokType = 3
	Number     pygo.TokType = 4
	Break      pygo.TokType = 11
	Class      pygo.TokType = 13
	Def        pygo.TokType = 15
	False      pygo.TokType = 20
	If         pygo.TokType = 25
	None       pygo.TokType = 31
	Return     pygo.TokType = 37
	True       pygo.TokType = 38
	While      pygo.TokType = 41
	Newline    pygo.TokType = 44
	Name       pygo.TokType = 45
	Dot        pygo.TokType = 54
	Star       pygo.TokType = 56
	OpenParen  pygo.TokType = 57
	CloseParen pygo.TokType = 58
	Comma      pygo.TokType = 59
	Colon      pygo.TokType = 60
	Assign     pygo.TokType = 63
	OpenBrack  pygo.TokType = 64
	CloseBrack pygo.TokType = 65
	Plus       pygo.TokType = 71
	Minus      pygo.TokType = 72
	Div        pygo.TokType = 73
	Less       pygo.TokType = 79
	Greater    pygo.TokType = 80
	Equals     pygo.TokType = 81
	GreaterEq  pygo.TokType = 82
	LessEq     pygo.TokType = 83
	NotEqAlt   pygo.TokType = 84 // <>
	NotEq      pygo.TokType = 85
	AddAssign  pygo.TokType = 88
	SubAssign  pygo.TokType = 89
	MulAssign  pygo.TokType = 90
	DivAssign  pygo.TokType = 92
)

var names = map[pygo.TokType]string{
	EOF:        "EOF",
	Indent:     "INDENT",
	Dedent:     "DEDENT",
	String:     "STRING",
	Number:     "NUMBER",
	Break:      "break",
	Class:      "class",
	Def:        "def",
	False:      "False",
	If:         "if",
	None:       "None",
	Return:     "return",
	True:       "True",
	While:      "while",
	Newline:    "NEWLINE",
	Name:       "NAME",
	Dot:        ".",
	Star:       "*",
	OpenParen:  "(",
	CloseParen: ")",
	Comma:      ",",
	Colon:      ":",
	Assign:     "=",
	OpenBrack:  "[",
	CloseBrack: "]",
	Plus:       "+",
	Minus:      "-",
	Div:        "/",
	Less:       "<",
	Greater:    ">",
	Equals:     "==",
	GreaterEq:  ">=",
	LessEq:     "<=",
	NotEqAlt:   "<>",
	NotEq:      "!=",
	AddAssign:  "+=",
	SubAssign:  "-=",
	MulAssign:  "*=",
	DivAssign:  "/=",
}

// Keywords maps reserved words to their kinds.
var Keywords = map[string]pygo.TokType{
	"break":  Break,
	"class":  Class,
	"def":    Def,
	"False":  False,
	"if":     If,
	"None":   None,
	"return": Return,
	"True":   True,
	"while":  While,
}

// Operators lists the lexemes of operators and punctuation, in no particular
// order. Scanners rely on longest match for the multi-character ones.
var Operators = []string{
	".", "*", "(", ")", ",", ":", "=", "[", "]", "+", "-", "/",
	"<", ">", "==", ">=", "<=", "<>", "!=", "+=", "-=", "*=", "/=",
}

var operatorKinds map[string]pygo.TokType

func init() {
	operatorKinds = make(map[string]pygo.TokType, len(Operators))
	for k, n := range names {
		for _, op := range Operators {
			if op == n {
				operatorKinds[op] = k
			}
		}
	}
}

// OperatorKind returns the kind for an operator lexeme.
func OperatorKind(lexeme string) (pygo.TokType, bool) {
	k, ok := operatorKinds[lexeme]
	return k, ok
}

// KindName returns a printable name for a token kind. It is a pygo.TokTypeStringer.
func KindName(k pygo.TokType) string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("<kind %d>", int(k))
}

var _ pygo.TokTypeStringer = KindName

// IsComparison is a predicate for the comparison operator kinds.
func IsComparison(k pygo.TokType) bool {
	switch k {
	case Less, Greater, Equals, GreaterEq, LessEq, NotEqAlt, NotEq:
		return true
	}
	return false
}

// IsCompoundAssign is a predicate for += -= *= /=.
func IsCompoundAssign(k pygo.TokType) bool {
	switch k {
	case AddAssign, SubAssign, MulAssign, DivAssign:
		return true
	}
	return false
}

// CompoundOperator returns the arithmetic operator symbol of a compound
// assignment kind, e.g. "+" for +=.
func CompoundOperator(k pygo.TokType) (string, bool) {
	switch k {
	case AddAssign:
		return "+", true
	case SubAssign:
		return "-", true
	case MulAssign:
		return "*", true
	case DivAssign:
		return "/", true
	}
	return "", false
}
