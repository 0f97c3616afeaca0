package pylang

import (
	"regexp"
)

// LiteralKind classifies the lexeme of a literal.
type LiteralKind int

// Kinds of literals.
const (
	NoLiteral LiteralKind = iota
	IntegerLiteral
	FloatLiteral
	StringLiteral
	BooleanLiteral
)

var integerPattern = regexp.MustCompile(`^[+-]?\d+$`)
var floatPattern = regexp.MustCompile(`^[+-]?(\d+\.\d*|\.\d+|\d+)([eE][+-]?\d+)?$`)

// ClassifyLiteral inspects the lexeme of a literal: digits only make an
// integer, decimal point or exponent a float, enclosing quotes a string and
// True or False a boolean.
func ClassifyLiteral(lexeme string) LiteralKind {
	switch {
	case integerPattern.MatchString(lexeme):
		return IntegerLiteral
	case floatPattern.MatchString(lexeme):
		return FloatLiteral
	case isQuoted(lexeme):
		return StringLiteral
	case lexeme == "True" || lexeme == "False":
		return BooleanLiteral
	}
	return NoLiteral
}

func isQuoted(s string) bool {
	n := len(s)
	return n >= 2 && (s[0] == '"' || s[0] == '\'') && s[n-1] == s[0]
}

// RemoveQuotes strips one quote character from each end of a quoted string.
// Other strings are returned unchanged.
func RemoveQuotes(s string) string {
	if isQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}
