/*
Package scanner defines an interface for scanners to be used with the parser of
package pylang.

The default scanner implementation is an adapter for lexmachine, living in
sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/pygo"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pygo.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("pygo.scanner")
}

// EOF is the token kind for end of input.
const EOF pygo.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() pygo.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// lexmachine scanner and the indentation pass of the language front end.
type DefaultToken struct {
	kind   pygo.TokType
	lexeme string
	Val    interface{}
	Line   int // 1-based input line, 0 if unknown
	span   pygo.Span
}

var _ pygo.Token = DefaultToken{}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ pygo.TokType, lexeme string, span pygo.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// WithKind returns a copy of t with a different kind.
func (t DefaultToken) WithKind(typ pygo.TokType) DefaultToken {
	t.kind = typ
	return t
}

func (t DefaultToken) TokType() pygo.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() pygo.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q>", t.kind, t.lexeme)
}

// --- Scanner options ----------------------------------------------------------

// Option configures a scanner.
type Option func(*Options)

// Options collects scanner settings set via Option.
type Options struct {
	ErrorHandler func(error)
	TabWidth     int
}

// DefaultOptions returns the settings in effect if no option is given.
func DefaultOptions() Options {
	return Options{ErrorHandler: LogError, TabWidth: 8}
}

// ErrorHandler sets an error handler for scanner errors.
func ErrorHandler(h func(error)) Option {
	return func(o *Options) {
		if h == nil {
			h = LogError
		}
		o.ErrorHandler = h
	}
}

// TabWidth sets the column width of a tab character for indentation.
func TabWidth(w int) Option {
	return func(o *Options) {
		if w > 0 {
			o.TabWidth = w
		}
	}
}

// Lexeme is a helper function to receive a string from a token value.
func Lexeme(token interface{}) string {
	switch t := token.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case pygo.Token:
		return t.Lexeme()
	default:
		return fmt.Sprintf("%v", t)
	}
}
