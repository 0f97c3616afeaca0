package token

import (
	"testing"

	"github.com/npillmayer/pygo"
)

func TestKindTable(t *testing.T) {
	var fixed = map[int]string{
		-1: "EOF", 2: "DEDENT", 3: "STRING", 4: "NUMBER", 44: "NEWLINE", 45: "NAME",
		63: "=", 15: "def", 25: "if", 41: "while", 13: "class", 11: "break",
		37: "return", 31: "None", 54: ".", 57: "(", 58: ")", 59: ",", 60: ":",
		64: "[", 65: "]", 71: "+", 72: "-", 73: "/", 56: "*",
		79: "<", 80: ">", 81: "==", 82: ">=", 83: "<=", 85: "!=",
		88: "+=", 89: "-=", 90: "*=", 92: "/=",
	}
	for code, name := range fixed {
		if n := KindName(pygo.TokType(code)); n != name {
			t.Errorf("expected kind %d to be named %q, is %q", code, name, n)
		}
	}
}

func TestOperatorKinds(t *testing.T) {
	for _, op := range Operators {
		k, ok := OperatorKind(op)
		if !ok {
			t.Errorf("operator %q has no kind", op)
			continue
		}
		if KindName(k) != op {
			t.Errorf("operator %q maps to %s", op, KindName(k))
		}
	}
	if _, ok := OperatorKind("**"); ok {
		t.Errorf("did not expect ** to be an operator")
	}
}

func TestCompound(t *testing.T) {
	if op, ok := CompoundOperator(SubAssign); !ok || op != "-" {
		t.Errorf("expected -= to lower to -, got %q", op)
	}
	if !IsComparison(NotEq) || IsComparison(Assign) {
		t.Errorf("comparison predicate is broken")
	}
}
