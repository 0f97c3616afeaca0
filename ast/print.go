package ast

import (
	"github.com/pterm/pterm"
)

// LeveledList flattens a list of statements into a pterm leveled list,
// suitable for pterm.NewTreeFromLeveledList.
func LeveledList(stmts []Statement) pterm.LeveledList {
	return leveled(stmts, pterm.LeveledList{}, 0)
}

// Tree renders a list of statements as a tree, headed by a root label.
func Tree(label string, stmts []Statement) (string, error) {
	root := pterm.NewTreeFromLeveledList(LeveledList(stmts))
	root.Text = label
	return pterm.DefaultTree.WithRoot(root).Srender()
}

func leveled(stmts []Statement, ll pterm.LeveledList, level int) pterm.LeveledList {
	for _, s := range stmts {
		ll = leveledStmt(s, ll, level)
	}
	return ll
}

func leveledStmt(s Statement, ll pterm.LeveledList, level int) pterm.LeveledList {
	if s == nil {
		return ll
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: s.String()})
	level++
	switch n := s.(type) {
	case *Var:
		ll = leveledStmt(n.Value, ll, level)
	case *Fun:
		for _, a := range n.Args {
			ll = leveledStmt(a, ll, level)
		}
		ll = leveled(n.Body, ll, level)
	case *While:
		ll = leveledStmt(n.Cond, ll, level)
		ll = leveled(n.Body, ll, level)
	case *If:
		ll = leveledStmt(n.Cond, ll, level)
		ll = leveled(n.Body, ll, level)
	case *Return:
		ll = leveledStmt(n.Value, ll, level)
	case *FunCall:
		ll = leveled(n.Args, ll, level)
	case *SubCall:
		ll = leveledStmt(n.Target, ll, level)
		ll = leveledStmt(n.Member, ll, level)
	case *SubSet:
		ll = leveledStmt(n.Target, ll, level)
		ll = leveledStmt(n.Member, ll, level)
		ll = leveledStmt(n.Value, ll, level)
	case *List:
		ll = leveled(n.Elements, ll, level)
	case *Judgment:
		ll = leveledStmt(n.Left, ll, level)
		ll = leveledStmt(n.Right, ll, level)
	case *Logical:
		ll = leveledStmt(n.Left, ll, level)
		ll = leveledStmt(n.Right, ll, level)
	case *Class:
		ll = leveled(n.Body, ll, level)
	}
	return ll
}
