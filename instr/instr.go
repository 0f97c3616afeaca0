/*
Package instr implements the executable instructions of the interpreter.

Every statement kind has one instruction type. Instructions do not hold any
run-time state and may be executed any number of times, each time against a
scope given by the caller.

Executing an instruction results in an Outcome. Control flow out of blocks
(return and break) is signalled by the outcome and propagated by ordinary
returns, up to the enclosing loop or function call.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package instr

import (
	"github.com/npillmayer/pygo"
	"github.com/npillmayer/pygo/object"
	"github.com/npillmayer/pygo/runtime"
	"github.com/npillmayer/pygo/token"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pygo.instr'.
func tracer() tracing.Trace {
	return tracing.Select("pygo.instr")
}

// Signal tells how the execution of an instruction ended.
type Signal int

const (
	Completed Signal = iota // normal fall-through
	Returned                // a return statement has been executed
	Broke                   // a break statement has been executed
)

func (s Signal) String() string {
	switch s {
	case Returned:
		return "Returned"
	case Broke:
		return "Broke"
	}
	return "Completed"
}

// Outcome is the result of executing an instruction.
type Outcome struct {
	Signal Signal
	Value  object.Value
}

func completed(v object.Value) Outcome {
	if v == nil {
		v = object.None
	}
	return Outcome{Signal: Completed, Value: v}
}

// Instruction is an executable instruction.
type Instruction interface {
	Exec(env *runtime.Scope) (Outcome, error)
}

// Run executes an instruction and returns its value.
func Run(ins Instruction, env *runtime.Scope) (object.Value, error) {
	out, err := ins.Exec(env)
	if err != nil {
		return nil, err
	}
	return out.Value, nil
}

// runBlock executes a list of instructions in order. It stops at the
// first instruction signalling a return or break and hands this outcome to
// the caller. Otherwise the value of the last instruction is the value of
// the block.
func runBlock(body []Instruction, env *runtime.Scope) (Outcome, error) {
	last := completed(nil)
	for _, ins := range body {
		out, err := ins.Exec(env)
		if err != nil {
			return Outcome{}, err
		}
		if out.Signal != Completed {
			return out, nil
		}
		last = out
	}
	return last, nil
}

// RunBlock executes a list of instructions with block semantics.
func RunBlock(body []Instruction, env *runtime.Scope) (Outcome, error) {
	return runBlock(body, env)
}

func condition(cond Instruction, env *runtime.Scope) (bool, error) {
	v, err := Run(cond, env)
	if err != nil {
		return false, err
	}
	b, ok := v.(object.Bool)
	if !ok {
		return false, pygo.Errorf(pygo.TypeError, "condition must be a boolean, is '%s'", object.TypeName(v))
	}
	return bool(b), nil
}

func evalAll(args []Instruction, env *runtime.Scope) ([]object.Value, error) {
	vals := make([]object.Value, len(args))
	for i, a := range args {
		v, err := Run(a, env)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// --- Variables -------------------------------------------------------------

type varInstr struct {
	name  string
	value Instruction
}

// NewVar creates an instruction binding the value of an expression to a
// name in the current scope.
func NewVar(name string, value Instruction) Instruction {
	return &varInstr{name: name, value: value}
}

func (ins *varInstr) Exec(env *runtime.Scope) (Outcome, error) {
	v, err := Run(ins.value, env)
	if err != nil {
		return Outcome{}, err
	}
	env.Set(ins.name, v)
	return completed(v), nil
}

type varRef struct {
	name string
}

// NewVarRef creates an instruction reading a variable.
func NewVarRef(name string) Instruction {
	return &varRef{name: name}
}

func (ins *varRef) Exec(env *runtime.Scope) (Outcome, error) {
	v, err := env.Lookup(ins.name)
	if err != nil {
		return Outcome{}, err
	}
	val, ok := v.(object.Value)
	if !ok {
		return Outcome{}, pygo.Errorf(pygo.TypeError, "name '%s' is bound to a non-value %T", ins.name, v)
	}
	return completed(val), nil
}

// --- Control flow ----------------------------------------------------------

type ifInstr struct {
	cond Instruction
	body []Instruction
}

// NewIf creates a conditional.
func NewIf(cond Instruction, body []Instruction) Instruction {
	return &ifInstr{cond: cond, body: body}
}

func (ins *ifInstr) Exec(env *runtime.Scope) (Outcome, error) {
	c, err := condition(ins.cond, env)
	if err != nil || !c {
		return completed(nil), err
	}
	return runBlock(ins.body, env)
}

type whileInstr struct {
	cond Instruction
	body []Instruction
}

// NewWhile creates a loop.
func NewWhile(cond Instruction, body []Instruction) Instruction {
	return &whileInstr{cond: cond, body: body}
}

func (ins *whileInstr) Exec(env *runtime.Scope) (Outcome, error) {
	for {
		c, err := condition(ins.cond, env)
		if err != nil {
			return Outcome{}, err
		}
		if !c {
			return completed(nil), nil
		}
		out, err := runBlock(ins.body, env)
		if err != nil {
			return Outcome{}, err
		}
		switch out.Signal {
		case Returned:
			return out, nil
		case Broke:
			tracer().Debugf("break out of loop")
			return completed(nil), nil
		}
	}
}

type returnInstr struct {
	value Instruction
}

// NewReturn creates a return instruction.
func NewReturn(value Instruction) Instruction {
	return &returnInstr{value: value}
}

func (ins *returnInstr) Exec(env *runtime.Scope) (Outcome, error) {
	v, err := Run(ins.value, env)
	if err != nil {
		return Outcome{}, err
	}
	if v == nil {
		v = object.None
	}
	return Outcome{Signal: Returned, Value: v}, nil
}

type breakInstr struct{}

// NewBreak creates a break instruction.
func NewBreak() Instruction {
	return breakInstr{}
}

func (breakInstr) Exec(env *runtime.Scope) (Outcome, error) {
	return Outcome{Signal: Broke, Value: object.None}, nil
}

// --- Calls and members -----------------------------------------------------

type callInstr struct {
	name string
	args []Instruction
}

// NewCall creates an instruction calling a named callable. Arguments are
// evaluated in the caller's scope, from left to right.
func NewCall(name string, args []Instruction) Instruction {
	return &callInstr{name: name, args: args}
}

func (ins *callInstr) Exec(env *runtime.Scope) (Outcome, error) {
	v, err := env.Lookup(ins.name)
	if err != nil {
		return Outcome{}, err
	}
	fn, ok := v.(object.Callable)
	if !ok {
		return Outcome{}, pygo.Errorf(pygo.TypeError, "'%s' object is not callable", object.TypeName(asValue(v)))
	}
	args, err := evalAll(ins.args, env)
	if err != nil {
		return Outcome{}, err
	}
	tracer().Debugf("call %s/%d", ins.name, len(args))
	r, err := fn.Call(env, args)
	if err != nil {
		return Outcome{}, err
	}
	return completed(r), nil
}

func asValue(v interface{}) object.Value {
	if val, ok := v.(object.Value); ok {
		return val
	}
	return nil
}

type subCall struct {
	target Instruction
	member string
	isCall bool
	args   []Instruction
}

// NewMethodCall creates an instruction calling a method on the value of
// target.
func NewMethodCall(target Instruction, method string, args []Instruction) Instruction {
	return &subCall{target: target, member: method, isCall: true, args: args}
}

// NewFieldGet creates an instruction reading a field of the value of target.
func NewFieldGet(target Instruction, field string) Instruction {
	return &subCall{target: target, member: field}
}

func (ins *subCall) Exec(env *runtime.Scope) (Outcome, error) {
	t, err := Run(ins.target, env)
	if err != nil {
		return Outcome{}, err
	}
	var v object.Value
	if ins.isCall {
		args, err := evalAll(ins.args, env)
		if err != nil {
			return Outcome{}, err
		}
		v, err = object.CallMethod(env, t, ins.member, args)
		if err != nil {
			return Outcome{}, err
		}
	} else if v, err = object.GetField(t, ins.member); err != nil {
		return Outcome{}, err
	}
	return completed(v), nil
}

type subSet struct {
	target Instruction
	member string
	isCall bool
	value  Instruction
}

// NewFieldSet creates an instruction writing a field of the value of target.
// If isCall is set, the assignment target is a method call, which makes the
// instruction fail when executed.
func NewFieldSet(target Instruction, field string, isCall bool, value Instruction) Instruction {
	return &subSet{target: target, member: field, isCall: isCall, value: value}
}

func (ins *subSet) Exec(env *runtime.Scope) (Outcome, error) {
	if ins.isCall {
		return Outcome{}, pygo.Errorf(pygo.TypeError, "cannot assign to method call %s()", ins.member)
	}
	v, err := Run(ins.value, env)
	if err != nil {
		return Outcome{}, err
	}
	t, err := Run(ins.target, env)
	if err != nil {
		return Outcome{}, err
	}
	if err := object.SetField(t, ins.member, v); err != nil {
		return Outcome{}, err
	}
	return completed(v), nil
}

// --- Expressions -----------------------------------------------------------

type listInstr struct {
	elements []Instruction
}

// NewList creates an instruction constructing a new list on every
// execution.
func NewList(elements []Instruction) Instruction {
	return &listInstr{elements: elements}
}

func (ins *listInstr) Exec(env *runtime.Scope) (Outcome, error) {
	vals, err := evalAll(ins.elements, env)
	if err != nil {
		return Outcome{}, err
	}
	return completed(object.NewList(vals...)), nil
}

type judgment struct {
	op          pygo.TokType
	left, right Instruction
}

// NewJudgment creates a comparison.
func NewJudgment(op pygo.TokType, left, right Instruction) Instruction {
	return &judgment{op: op, left: left, right: right}
}

func (ins *judgment) Exec(env *runtime.Scope) (Outcome, error) {
	l, err := Run(ins.left, env)
	if err != nil {
		return Outcome{}, err
	}
	r, err := Run(ins.right, env)
	if err != nil {
		return Outcome{}, err
	}
	v, err := object.Compare(ins.op, l, r)
	if err != nil {
		return Outcome{}, err
	}
	return completed(v), nil
}

type logical struct {
	op          string
	left, right Instruction
}

// NewLogical creates an arithmetic operation.
func NewLogical(op string, left, right Instruction) Instruction {
	return &logical{op: op, left: left, right: right}
}

func (ins *logical) Exec(env *runtime.Scope) (Outcome, error) {
	l, err := Run(ins.left, env)
	if err != nil {
		return Outcome{}, err
	}
	r, err := Run(ins.right, env)
	if err != nil {
		return Outcome{}, err
	}
	v, err := object.Arith(ins.op, l, r)
	if err != nil {
		return Outcome{}, err
	}
	return completed(v), nil
}

type constInstr struct {
	value object.Value
}

// NewConst creates an instruction yielding a constant value.
func NewConst(v object.Value) Instruction {
	return constInstr{value: v}
}

func (ins constInstr) Exec(env *runtime.Scope) (Outcome, error) {
	return completed(ins.value), nil
}

// IsComparison is a predicate for operator kinds accepted by NewJudgment.
func IsComparison(op pygo.TokType) bool {
	return token.IsComparison(op)
}
