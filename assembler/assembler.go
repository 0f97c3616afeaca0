/*
Package assembler lowers statements into instructions.

Lowering is a structural recursion over the statement tree: children are
lowered first, then the instruction for the statement itself is created.
Literal constants are converted to runtime values during lowering.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package assembler

import (
	"errors"
	"strconv"

	"github.com/npillmayer/pygo"
	"github.com/npillmayer/pygo/ast"
	"github.com/npillmayer/pygo/instr"
	"github.com/npillmayer/pygo/object"
)

// BuildAll lowers a list of statements.
func BuildAll(stmts []ast.Statement) ([]instr.Instruction, error) {
	code := make([]instr.Instruction, 0, len(stmts))
	for _, s := range stmts {
		ins, err := Build(s)
		if err != nil {
			return nil, err
		}
		code = append(code, ins)
	}
	return code, nil
}

// Build lowers a single statement into an instruction.
func Build(stmt ast.Statement) (instr.Instruction, error) {
	switch s := stmt.(type) {
	case *ast.Var:
		v, err := Build(s.Value)
		if err != nil {
			return nil, err
		}
		return instr.NewVar(s.Name, v), nil
	case *ast.Fun:
		body, err := BuildAll(s.Body)
		if err != nil {
			return nil, err
		}
		params := make([]instr.Param, len(s.Args))
		for i, a := range s.Args {
			params[i] = param(a)
		}
		return instr.NewFun(s.Name, params, body), nil
	case *ast.While:
		cond, body, err := buildBlock(s.Cond, s.Body)
		if err != nil {
			return nil, err
		}
		return instr.NewWhile(cond, body), nil
	case *ast.If:
		cond, body, err := buildBlock(s.Cond, s.Body)
		if err != nil {
			return nil, err
		}
		return instr.NewIf(cond, body), nil
	case *ast.Return:
		v, err := Build(s.Value)
		if err != nil {
			return nil, err
		}
		return instr.NewReturn(v), nil
	case *ast.Break:
		return instr.NewBreak(), nil
	case *ast.FunCall:
		args, err := BuildAll(s.Args)
		if err != nil {
			return nil, err
		}
		return instr.NewCall(s.Name, args), nil
	case *ast.VarCall:
		return instr.NewVarRef(s.Name), nil
	case *ast.SubCall:
		return buildSubCall(s)
	case *ast.SubSet:
		return buildSubSet(s)
	case *ast.List:
		elems, err := BuildAll(s.Elements)
		if err != nil {
			return nil, err
		}
		return instr.NewList(elems), nil
	case *ast.Judgment:
		if !instr.IsComparison(s.Op) {
			return nil, pygo.Errorf(pygo.AssemblyError, "%v has no comparison operator", s)
		}
		l, r, err := buildOperands(s.Left, s.Right)
		if err != nil {
			return nil, err
		}
		return instr.NewJudgment(s.Op, l, r), nil
	case *ast.Logical:
		switch s.Op {
		case "+", "-", "*", "/":
		default:
			return nil, pygo.Errorf(pygo.AssemblyError, "unknown arithmetic operator %q", s.Op)
		}
		l, r, err := buildOperands(s.Left, s.Right)
		if err != nil {
			return nil, err
		}
		return instr.NewLogical(s.Op, l, r), nil
	case *ast.Number:
		v, err := number(s)
		if err != nil {
			return nil, err
		}
		return instr.NewConst(v), nil
	case *ast.Const:
		return instr.NewConst(constant(s)), nil
	case *ast.Class:
		body, err := BuildAll(s.Body)
		if err != nil {
			return nil, err
		}
		return instr.NewClass(s.Name, body), nil
	}
	return nil, pygo.Errorf(pygo.AssemblyError, "no lowering for statement %T", stmt)
}

func buildBlock(cond ast.Statement, stmts []ast.Statement) (instr.Instruction, []instr.Instruction, error) {
	c, err := Build(cond)
	if err != nil {
		return nil, nil, err
	}
	body, err := BuildAll(stmts)
	return c, body, err
}

func buildOperands(left, right ast.Statement) (instr.Instruction, instr.Instruction, error) {
	l, err := Build(left)
	if err != nil {
		return nil, nil, err
	}
	r, err := Build(right)
	return l, r, err
}

func buildSubCall(s *ast.SubCall) (instr.Instruction, error) {
	target, err := Build(s.Target)
	if err != nil {
		return nil, err
	}
	switch m := s.Member.(type) {
	case *ast.FunCall:
		args, err := BuildAll(m.Args)
		if err != nil {
			return nil, err
		}
		return instr.NewMethodCall(target, m.Name, args), nil
	case *ast.VarCall:
		return instr.NewFieldGet(target, m.Name), nil
	}
	return nil, pygo.Errorf(pygo.AssemblyError, "invalid member %v", s.Member)
}

func buildSubSet(s *ast.SubSet) (instr.Instruction, error) {
	target, value, err := buildOperands(s.Target, s.Value)
	if err != nil {
		return nil, err
	}
	switch m := s.Member.(type) {
	case *ast.FunCall:
		return instr.NewFieldSet(target, m.Name, true, value), nil
	case *ast.VarCall:
		return instr.NewFieldSet(target, m.Name, false, value), nil
	}
	return nil, pygo.Errorf(pygo.AssemblyError, "invalid member %v", s.Member)
}

func param(a *ast.Arg) instr.Param {
	return instr.Param{Name: a.Name, Type: a.Type}
}

func number(n *ast.Number) (object.Value, error) {
	lexeme := n.Lexeme
	if n.Negative {
		lexeme = "-" + lexeme
	}
	if !n.Float {
		i, err := strconv.ParseInt(lexeme, 10, 64)
		if err == nil {
			return object.Int(i), nil
		}
		// integers beyond 64 bit degrade to float
	}
	f, err := strconv.ParseFloat(lexeme, 64)
	if errors.Is(err, strconv.ErrRange) { // f is ±Inf
		return object.Float(f), nil
	}
	if err != nil {
		return nil, pygo.Errorf(pygo.AssemblyError, "malformed number %q", lexeme)
	}
	return object.Float(f), nil
}

func constant(c *ast.Const) object.Value {
	switch c.Kind {
	case ast.StringConst:
		return object.Str(c.Text)
	case ast.BoolConst:
		return object.Bool(c.Text == "True")
	}
	return object.None
}
