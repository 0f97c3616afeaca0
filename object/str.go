package object

import (
	"strings"
	"unicode/utf8"
)

func strMethodTable() map[string][]method {
	self := func(v Value) string { return string(v.(Str)) }
	arg := func(args []Value, i int) string { return string(args[i].(Str)) }
	return map[string][]method{
		"upper": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			return Str(strings.ToUpper(self(recv))), nil
		}}},
		"lower": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			return Str(strings.ToLower(self(recv))), nil
		}}},
		"strip": {
			{params: nil, fn: func(recv Value, args []Value) (Value, error) {
				return Str(strings.TrimSpace(self(recv))), nil
			}},
			{params: []string{"str"}, fn: func(recv Value, args []Value) (Value, error) {
				return Str(strings.Trim(self(recv), arg(args, 0))), nil
			}},
		},
		"startswith": {{params: []string{"str"}, fn: func(recv Value, args []Value) (Value, error) {
			return Bool(strings.HasPrefix(self(recv), arg(args, 0))), nil
		}}},
		"endswith": {{params: []string{"str"}, fn: func(recv Value, args []Value) (Value, error) {
			return Bool(strings.HasSuffix(self(recv), arg(args, 0))), nil
		}}},
		"replace": {{params: []string{"str", "str"}, fn: func(recv Value, args []Value) (Value, error) {
			return Str(strings.ReplaceAll(self(recv), arg(args, 0), arg(args, 1))), nil
		}}},
		"split": {
			{params: nil, fn: func(recv Value, args []Value) (Value, error) {
				return strList(strings.Fields(self(recv))), nil
			}},
			{params: []string{"str"}, fn: func(recv Value, args []Value) (Value, error) {
				return strList(strings.Split(self(recv), arg(args, 0))), nil
			}},
		},
		"find": {{params: []string{"str"}, fn: func(recv Value, args []Value) (Value, error) {
			s := self(recv)
			i := strings.Index(s, arg(args, 0))
			if i > 0 {
				i = utf8.RuneCountInString(s[:i])
			}
			return Int(i), nil
		}}},
		"__len__": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			return Int(utf8.RuneCountInString(self(recv))), nil
		}}},
		"__contains__": {{params: []string{"str"}, fn: func(recv Value, args []Value) (Value, error) {
			return Bool(strings.Contains(self(recv), arg(args, 0))), nil
		}}},
		"__getitem__": {{params: []string{"int"}, fn: func(recv Value, args []Value) (Value, error) {
			runes := []rune(self(recv))
			l := NewList()
			for _, r := range runes {
				l.Append(Str(string(r)))
			}
			return l.At(args[0].(Int))
		}}},
		"__str__": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			return recv, nil
		}}},
	}
}

func strList(parts []string) *List {
	l := NewList()
	for _, p := range parts {
		l.Append(Str(p))
	}
	return l
}
