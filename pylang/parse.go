package pylang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/pygo"
	"github.com/npillmayer/pygo/ast"
	"github.com/npillmayer/pygo/token"
)

// --- Grammar ---------------------------------------------------------------
//
// Program    ::=  { Statement | NEWLINE } EOF
// Statement  ::=  FunDef | ClassDef | If | While | Simple NEWLINE
// Simple     ::=  'return' [ Expr ]  |  'break'
//             |   name ( '=' | '+=' | '-=' | '*=' | '/=' ) Expr
//             |   name                                  // declaration
//             |   Postfix [ ( '=' | '+=' | … ) Expr ]
// FunDef     ::=  'def' name '(' [ Param { ',' Param } ] ')' Block
// Param      ::=  name [ ':' name ]
// ClassDef   ::=  'class' name [ '(' ')' ] Block
// If         ::=  'if' Expr Block
// While      ::=  'while' Expr Block
// Block      ::=  ':' ( Simple NEWLINE | NEWLINE INDENT { Statement } DEDENT )
//
// Expr       ::=  Sum [ CmpOp Sum ]
// Sum        ::=  Term { ( '+' | '-' ) Term }
// Term       ::=  Unary { ( '*' | '/' ) Unary }
// Unary      ::=  '-' Unary  |  Postfix
// Postfix    ::=  Primary { '.' name [ Args ] | '[' Expr ']' }
// Primary    ::=  number | string | 'True' | 'False' | 'None'
//             |   '[' [ Expr { ',' Expr } ] ']'  |  '(' Expr ')'  |  name [ Args ]
// Args       ::=  '(' [ Expr { ',' Expr } ] ')'

// annotations are the type names allowed as parameter annotations.
var annotations = map[string]bool{
	"object": true, "int": true, "float": true, "str": true,
	"bool": true, "list": true, "dict": true,
}

// Parser is a recursive descent parser. It reads tokens by position, with a
// cursor advancing monotonically, and decides on productions by looking at
// the kinds of the tokens at and after the cursor.
type Parser struct {
	tokens     pygo.TokenRetriever
	cursor     uint64
	funDepth   int // nesting of function bodies
	loopDepth  int // nesting of loop bodies within the current function
	subscripts map[*ast.SubCall]bool
}

// NewParser creates a parser for a token stream.
func NewParser(tokens pygo.TokenRetriever) *Parser {
	return &Parser{
		tokens:     tokens,
		subscripts: make(map[*ast.SubCall]bool),
	}
}

// Parse tokenizes and parses a source text.
func Parse(src string) ([]ast.Statement, error) {
	ts, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return NewParser(ts.Retriever()).Program()
}

func (p *Parser) peek(n uint64) pygo.Token {
	return p.tokens(p.cursor + n)
}

func (p *Parser) kind(n uint64) pygo.TokType {
	return p.peek(n).TokType()
}

func (p *Parser) next() pygo.Token {
	tok := p.peek(0)
	if tok.TokType() != token.EOF {
		p.cursor++
	}
	return tok
}

func (p *Parser) expect(k pygo.TokType) (pygo.Token, error) {
	if p.kind(0) != k {
		return nil, p.unexpected("expected %s", token.KindName(k))
	}
	return p.next(), nil
}

func (p *Parser) unexpected(format string, args ...interface{}) error {
	tok := p.peek(0)
	tracer().Errorf("parse error at token %s", token.KindName(tok.TokType()))
	return pygo.TokenErrorf(pygo.ParseError, tok, format, args...)
}

// Program parses statements until the end of the token stream.
func (p *Parser) Program() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for p.kind(0) != token.EOF {
		if p.kind(0) == token.Newline {
			p.next()
			continue
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	tracer().Debugf("parsed %d statements", len(stmts))
	return stmts, nil
}

func (p *Parser) statement() (ast.Statement, error) {
	tracer().Debugf("statement starts with %s", token.KindName(p.kind(0)))
	switch p.kind(0) {
	case token.Def:
		return p.funDeclaration()
	case token.Class:
		return p.classDeclaration()
	case token.If:
		return p.ifDeclaration()
	case token.While:
		return p.whileDeclaration()
	}
	s, err := p.simpleStatement()
	if err != nil {
		return nil, err
	}
	return s, p.endOfStatement()
}

func (p *Parser) endOfStatement() error {
	switch p.kind(0) {
	case token.Newline:
		p.next()
		return nil
	case token.EOF:
		return nil
	}
	return p.unexpected("expected end of statement")
}

func (p *Parser) simpleStatement() (ast.Statement, error) {
	switch p.kind(0) {
	case token.Return:
		if p.funDepth == 0 {
			return nil, p.unexpected("'return' outside function")
		}
		p.next()
		if k := p.kind(0); k == token.Newline || k == token.EOF {
			return &ast.Return{Value: ast.NoneValue()}, nil
		}
		v, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.Return{Value: v}, nil
	case token.Break:
		if p.loopDepth == 0 {
			return nil, p.unexpected("'break' outside loop")
		}
		p.next()
		return &ast.Break{}, nil
	case token.Name:
		switch k := p.kind(1); {
		case k == token.Assign || token.IsCompoundAssign(k):
			return p.varDeclaration()
		case k == token.Newline || k == token.EOF:
			name := p.next()
			return &ast.Var{Name: name.Lexeme(), Value: ast.NoneValue()}, nil
		}
	}
	return p.expressionStatement()
}

// varDeclaration parses name = expr and the compound assignments, which are
// expanded to name = name op expr.
func (p *Parser) varDeclaration() (ast.Statement, error) {
	name := p.next().Lexeme()
	op := p.next()
	v, err := p.expression()
	if err != nil {
		return nil, err
	}
	if arith, ok := token.CompoundOperator(op.TokType()); ok {
		v = &ast.Logical{Op: arith, Left: &ast.VarCall{Name: name}, Right: v}
	}
	return &ast.Var{Name: name, Value: v}, nil
}

// expressionStatement parses an expression, which may be the target of an
// assignment to a field or a subscript.
func (p *Parser) expressionStatement() (ast.Statement, error) {
	start := p.cursor
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	k := p.kind(0)
	if k != token.Assign && !token.IsCompoundAssign(k) {
		return e, nil
	}
	target, ok := e.(*ast.SubCall)
	if !ok {
		return nil, p.unexpected("cannot assign to %v", e)
	}
	op := p.next()
	v, err := p.expression()
	if err != nil {
		return nil, err
	}
	if arith, ok := token.CompoundOperator(op.TokType()); ok {
		// parse the target once more, as the right operand must not share
		// nodes with the assignment target
		end := p.cursor
		p.cursor = start
		left, _ := p.postfix()
		p.cursor = end
		v = &ast.Logical{Op: arith, Left: left, Right: v}
	}
	if p.subscripts[target] {
		index := target.Member.(*ast.FunCall).Args[0]
		return &ast.SubCall{
			Target: target.Target,
			Member: &ast.FunCall{Name: "__setitem__", Args: []ast.Statement{index, v}},
		}, nil
	}
	return &ast.SubSet{Target: target.Target, Member: target.Member, Value: v}, nil
}

// --- Blocks ----------------------------------------------------------------

func (p *Parser) block() ([]ast.Statement, error) {
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	if p.kind(0) != token.Newline { // single line body
		s, err := p.simpleStatement()
		if err != nil {
			return nil, err
		}
		return []ast.Statement{s}, p.endOfStatement()
	}
	p.next()
	if _, err := p.expect(token.Indent); err != nil {
		return nil, err
	}
	var body []ast.Statement
	for p.kind(0) != token.Dedent {
		switch p.kind(0) {
		case token.EOF:
			return nil, p.unexpected("unexpected end of input in block")
		case token.Newline:
			p.next()
			continue
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, s)
	}
	p.next()
	return body, nil
}

func (p *Parser) funDeclaration() (ast.Statement, error) {
	p.next()
	name, err := p.expect(token.Name)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.OpenParen); err != nil {
		return nil, err
	}
	fun := &ast.Fun{Name: name.Lexeme()}
	for p.kind(0) != token.CloseParen {
		if len(fun.Args) > 0 {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
		arg, err := p.parameter()
		if err != nil {
			return nil, err
		}
		fun.Args = append(fun.Args, arg)
	}
	p.next()
	p.funDepth++
	loops := p.loopDepth
	p.loopDepth = 0
	fun.Body, err = p.block()
	p.loopDepth = loops
	p.funDepth--
	if err != nil {
		return nil, err
	}
	return fun, nil
}

func (p *Parser) parameter() (*ast.Arg, error) {
	name, err := p.expect(token.Name)
	if err != nil {
		return nil, err
	}
	arg := &ast.Arg{Name: name.Lexeme()}
	if p.kind(0) == token.Colon {
		p.next()
		if p.kind(0) != token.Name || !annotations[p.peek(0).Lexeme()] {
			return nil, p.unexpected("invalid type annotation")
		}
		arg.Type = p.next().Lexeme()
	}
	return arg, nil
}

func (p *Parser) classDeclaration() (ast.Statement, error) {
	p.next()
	name, err := p.expect(token.Name)
	if err != nil {
		return nil, err
	}
	if p.kind(0) == token.OpenParen {
		p.next()
		if _, err := p.expect(token.CloseParen); err != nil {
			return nil, err
		}
	}
	// a class body is neither part of a function nor of a loop
	funs, loops := p.funDepth, p.loopDepth
	p.funDepth, p.loopDepth = 0, 0
	body, err := p.block()
	p.funDepth, p.loopDepth = funs, loops
	if err != nil {
		return nil, err
	}
	return &ast.Class{Name: name.Lexeme(), Body: body}, nil
}

func (p *Parser) ifDeclaration() (ast.Statement, error) {
	p.next()
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.If{Cond: cond, Body: body}, nil
}

func (p *Parser) whileDeclaration() (ast.Statement, error) {
	p.next()
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.loopDepth++
	body, err := p.block()
	p.loopDepth--
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

// --- Expressions -----------------------------------------------------------

func (p *Parser) expression() (ast.Statement, error) {
	l, err := p.sum()
	if err != nil {
		return nil, err
	}
	if token.IsComparison(p.kind(0)) {
		op := p.next()
		r, err := p.sum()
		if err != nil {
			return nil, err
		}
		return &ast.Judgment{Op: op.TokType(), Left: l, Right: r}, nil
	}
	return l, nil
}

func (p *Parser) sum() (ast.Statement, error) {
	l, err := p.term()
	for err == nil && (p.kind(0) == token.Plus || p.kind(0) == token.Minus) {
		op := p.next()
		var r ast.Statement
		if r, err = p.term(); err == nil {
			l = &ast.Logical{Op: op.Lexeme(), Left: l, Right: r}
		}
	}
	return l, err
}

func (p *Parser) term() (ast.Statement, error) {
	l, err := p.unary()
	for err == nil && (p.kind(0) == token.Star || p.kind(0) == token.Div) {
		op := p.next()
		var r ast.Statement
		if r, err = p.unary(); err == nil {
			l = &ast.Logical{Op: op.Lexeme(), Left: l, Right: r}
		}
	}
	return l, err
}

// unary flips the sign of a number literal directly following a minus. For
// other operands the negation is expressed as a subtraction from 0.
func (p *Parser) unary() (ast.Statement, error) {
	if p.kind(0) != token.Minus {
		return p.postfix()
	}
	p.next()
	if p.kind(0) == token.Number && p.kind(1) != token.Dot && p.kind(1) != token.OpenBrack {
		n, err := p.number()
		if err != nil {
			return nil, err
		}
		n.Negative = !n.Negative
		return n, nil
	}
	e, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &ast.Logical{Op: "-", Left: &ast.Number{Lexeme: "0"}, Right: e}, nil
}

// postfix parses chains of member accesses and subscripts. Each link wraps
// the chain so far as its target.
func (p *Parser) postfix() (ast.Statement, error) {
	e, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.kind(0) {
		case token.Dot:
			p.next()
			if p.kind(0) != token.Name {
				return nil, p.unexpected("expected attribute name")
			}
			member, err := p.varOrMethodCall()
			if err != nil {
				return nil, err
			}
			e = &ast.SubCall{Target: e, Member: member}
		case token.OpenBrack:
			p.next()
			index, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.CloseBrack); err != nil {
				return nil, err
			}
			sub := &ast.SubCall{Target: e, Member: &ast.FunCall{Name: "__getitem__", Args: []ast.Statement{index}}}
			p.subscripts[sub] = true
			e = sub
		default:
			return e, nil
		}
	}
}

func (p *Parser) primary() (ast.Statement, error) {
	switch p.kind(0) {
	case token.Number, token.String, token.True, token.False:
		return p.literal()
	case token.None:
		p.next()
		return ast.NoneValue(), nil
	case token.Name:
		return p.varOrMethodCall()
	case token.OpenBrack:
		p.next()
		elems, err := p.expressionList(token.CloseBrack)
		if err != nil {
			return nil, err
		}
		return &ast.List{Elements: elems}, nil
	case token.OpenParen:
		p.next()
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.CloseParen); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, p.unexpected("unexpected %s", token.KindName(p.kind(0)))
}

// literal classifies the lexeme of a literal token and creates a number
// or a constant for it.
func (p *Parser) literal() (ast.Statement, error) {
	tok := p.next()
	switch ClassifyLiteral(tok.Lexeme()) {
	case IntegerLiteral:
		return &ast.Number{Lexeme: tok.Lexeme()}, nil
	case FloatLiteral:
		return &ast.Number{Lexeme: tok.Lexeme(), Float: true}, nil
	case StringLiteral:
		return &ast.Const{Kind: ast.StringConst, Text: RemoveQuotes(tok.Lexeme())}, nil
	case BooleanLiteral:
		return &ast.Const{Kind: ast.BoolConst, Text: tok.Lexeme()}, nil
	}
	return nil, pygo.TokenErrorf(pygo.ParseError, tok, "malformed literal")
}

func (p *Parser) number() (*ast.Number, error) {
	tok := p.peek(0)
	lit, err := p.literal()
	if err != nil {
		return nil, err
	}
	n, ok := lit.(*ast.Number)
	if !ok {
		return nil, pygo.TokenErrorf(pygo.ParseError, tok, "malformed number")
	}
	return n, nil
}

// varOrMethodCall parses a name, which is a call if followed by an argument
// list.
func (p *Parser) varOrMethodCall() (ast.Statement, error) {
	name := p.next()
	if p.kind(0) != token.OpenParen {
		return &ast.VarCall{Name: name.Lexeme()}, nil
	}
	p.next()
	args, err := p.expressionList(token.CloseParen)
	if err != nil {
		return nil, err
	}
	return &ast.FunCall{Name: name.Lexeme(), Args: args}, nil
}

// expressionList parses comma separated expressions up to and including a
// closing token. A trailing comma is accepted.
func (p *Parser) expressionList(closing pygo.TokType) ([]ast.Statement, error) {
	var list []ast.Statement
	for p.kind(0) != closing {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		list = append(list, e)
		if p.kind(0) != token.Comma {
			break
		}
		p.next()
	}
	if _, err := p.expect(closing); err != nil {
		return nil, err
	}
	return list, nil
}
