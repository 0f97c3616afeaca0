/*
Package ast defines the statement tree produced by the parser.

Statements form a closed set of node types. Every node owns its children;
nodes are not shared and not changed after the parser has built them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"fmt"

	"github.com/npillmayer/pygo"
	"github.com/npillmayer/pygo/token"
)

// Statement is a node of the statement tree.
type Statement interface {
	fmt.Stringer
	statement()
}

// Var binds the value of an expression to a name. A declaration without
// initializer has a None constant as its value.
type Var struct {
	Name  string
	Value Statement
}

// Fun is a function definition.
type Fun struct {
	Name string
	Args []*Arg
	Body []Statement
}

// Arg is a formal parameter. Type is the annotated type name, if any.
type Arg struct {
	Name string
	Type string
}

// While is a loop.
type While struct {
	Cond Statement
	Body []Statement
}

// If is a conditional.
type If struct {
	Cond Statement
	Body []Statement
}

// Return leaves the current function. Without a value expression, Value is
// a None constant.
type Return struct {
	Value Statement
}

// Break leaves the innermost loop.
type Break struct{}

// FunCall calls a named callable.
type FunCall struct {
	Name string
	Args []Statement
}

// VarCall reads a variable.
type VarCall struct {
	Name string
}

// SubCall accesses a member of a target value. Member is either a *FunCall
// (method call) or a *VarCall (field read).
type SubCall struct {
	Target Statement
	Member Statement
}

// SubSet writes a field of a target value. Member is a *VarCall for a well
// formed program.
type SubSet struct {
	Target Statement
	Member Statement
	Value  Statement
}

// List is a list literal.
type List struct {
	Elements []Statement
}

// Judgment is a comparison.
type Judgment struct {
	Op          pygo.TokType
	Left, Right Statement
}

// Logical is a binary arithmetic operation, Op being one of + - * /.
type Logical struct {
	Op          string
	Left, Right Statement
}

// Number is a numeric literal. Negative is set if the literal has been
// preceded by a unary minus.
type Number struct {
	Lexeme   string
	Float    bool
	Negative bool
}

// ConstKind is the kind of a non-numeric constant.
type ConstKind int

// Kinds of constants.
const (
	StringConst ConstKind = iota
	BoolConst
	NoneConst
)

// Const is a string, boolean or None literal. For strings, Text does not
// contain the enclosing quotes.
type Const struct {
	Kind ConstKind
	Text string
}

// NoneValue returns a None constant.
func NoneValue() *Const {
	return &Const{Kind: NoneConst, Text: "None"}
}

// Class is a class definition. Its body holds Fun nodes for methods and Var
// nodes for fields, in order of appearance.
type Class struct {
	Name string
	Body []Statement
}

func (*Var) statement()      {}
func (*Fun) statement()      {}
func (*Arg) statement()      {}
func (*While) statement()    {}
func (*If) statement()       {}
func (*Return) statement()   {}
func (*Break) statement()    {}
func (*FunCall) statement()  {}
func (*VarCall) statement()  {}
func (*SubCall) statement()  {}
func (*SubSet) statement()   {}
func (*List) statement()     {}
func (*Judgment) statement() {}
func (*Logical) statement()  {}
func (*Number) statement()   {}
func (*Const) statement()    {}
func (*Class) statement()    {}

// --- Stringers -------------------------------------------------------------

func (s *Var) String() string { return fmt.Sprintf("Var %s", s.Name) }
func (s *Fun) String() string { return fmt.Sprintf("Fun %s/%d", s.Name, len(s.Args)) }

func (s *Arg) String() string {
	if s.Type != "" {
		return fmt.Sprintf("Arg %s: %s", s.Name, s.Type)
	}
	return "Arg " + s.Name
}

func (s *While) String() string   { return "While" }
func (s *If) String() string      { return "If" }
func (s *Return) String() string  { return "Return" }
func (s *Break) String() string   { return "Break" }
func (s *FunCall) String() string { return fmt.Sprintf("FunCall %s/%d", s.Name, len(s.Args)) }
func (s *VarCall) String() string { return "VarCall " + s.Name }
func (s *SubCall) String() string { return "SubCall" }
func (s *SubSet) String() string  { return "SubSet" }
func (s *List) String() string    { return fmt.Sprintf("List/%d", len(s.Elements)) }

func (s *Judgment) String() string { return "Judgment " + token.KindName(s.Op) }
func (s *Logical) String() string  { return "Logical " + s.Op }

func (s *Number) String() string {
	if s.Negative {
		return "Number -" + s.Lexeme
	}
	return "Number " + s.Lexeme
}

func (s *Const) String() string {
	if s.Kind == StringConst {
		return fmt.Sprintf("Const %q", s.Text)
	}
	return "Const " + s.Text
}

func (s *Class) String() string { return "Class " + s.Name }
