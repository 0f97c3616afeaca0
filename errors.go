package pygo

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fatal errors. None of them is recoverable from within
// an interpreted program; they terminate the run they occur in.
type ErrorKind int

// Error kinds, see Error.
const (
	NoError         ErrorKind = iota
	ParseError                // unexpected token kind at a decision point
	AssemblyError             // statement without a lowering
	ArityError                // argument count mismatch at a call
	TypeError                 // unsupported operand types, non-boolean condition
	NameError                 // identifier not found in the scope chain
	DispatchError             // no matching method or field on a value
	ArithmeticError           // division by zero
	RecursionError            // call depth exceeded
	IndexError                // sequence index out of range
	KeyError                  // dict key not present
	ValueError                // argument of right type but inappropriate value
)

var errorKindNames = [...]string{
	"Error", "ParseError", "AssemblyError", "ArityError", "TypeError",
	"NameError", "DispatchError", "ArithmeticError", "RecursionError",
	"IndexError", "KeyError", "ValueError",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return errorKindNames[k]
}

// Error is the error type for all stages of the interpreter.
// Token is set for errors raised while parsing.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Token Token
}

func (e *Error) Error() string {
	if e.Token != nil {
		return fmt.Sprintf("%s at %s %q: %s", e.Kind, e.Token.Span(), e.Token.Lexeme(), e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Errorf creates a new error of a given kind.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// TokenErrorf creates a new error of a given kind, carrying the offending token.
func TokenErrorf(kind ErrorKind, tok Token, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Token: tok}
}

// KindOf returns the kind of an error, if it is (or wraps) an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}

// IsKind is a predicate: is err an error of kind k?
func IsKind(err error, k ErrorKind) bool {
	return err != nil && KindOf(err) == k
}
