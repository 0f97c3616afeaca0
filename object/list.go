package object

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/pygo"
)

// List is a mutable sequence of values.
type List struct {
	items *arraylist.List
}

// NewList creates a list holding vals.
func NewList(vals ...Value) *List {
	l := &List{items: arraylist.New()}
	for _, v := range vals {
		l.items.Add(v)
	}
	return l
}

func (l *List) TypeName() string { return "list" }

func (l *List) String() string {
	return repr(l, nil)
}

// Len returns the number of items in l.
func (l *List) Len() int {
	return l.items.Size()
}

// Values returns the items of l as a slice.
func (l *List) Values() []Value {
	vals := make([]Value, l.items.Size())
	for i, v := range l.items.Values() {
		vals[i] = v.(Value)
	}
	return vals
}

// Append adds v at the end of l.
func (l *List) Append(v Value) {
	l.items.Add(v)
}

// index normalizes a possibly negative index.
func (l *List) index(i Int) (int, error) {
	n := l.items.Size()
	j := int(i)
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, pygo.Errorf(pygo.IndexError, "list index %d out of range", i)
	}
	return j, nil
}

// At returns the item at position i. Negative positions count from the end.
func (l *List) At(i Int) (Value, error) {
	j, err := l.index(i)
	if err != nil {
		return nil, err
	}
	v, _ := l.items.Get(j)
	return v.(Value), nil
}

// SetAt replaces the item at position i.
func (l *List) SetAt(i Int, v Value) error {
	j, err := l.index(i)
	if err != nil {
		return err
	}
	l.items.Remove(j)
	l.items.Insert(j, v)
	return nil
}

// Insert inserts v before position i. Positions beyond either end are
// clamped, like Python does.
func (l *List) Insert(i Int, v Value) {
	n := l.items.Size()
	j := int(i)
	if j < 0 {
		j += n
	}
	if j < 0 {
		j = 0
	} else if j > n {
		j = n
	}
	if j == n {
		l.items.Add(v)
		return
	}
	l.items.Insert(j, v)
}

// Pop removes and returns the item at position i.
func (l *List) Pop(i Int) (Value, error) {
	if l.items.Size() == 0 {
		return nil, pygo.Errorf(pygo.IndexError, "pop from empty list")
	}
	j, err := l.index(i)
	if err != nil {
		return nil, err
	}
	v, _ := l.items.Get(j)
	l.items.Remove(j)
	return v.(Value), nil
}

// IndexOf returns the position of the first item equal to v, or -1.
func (l *List) IndexOf(v Value) int {
	for i, x := range l.Values() {
		if Equal(x, v) {
			return i
		}
	}
	return -1
}

// Remove removes the first item equal to v.
func (l *List) Remove(v Value) error {
	i := l.IndexOf(v)
	if i < 0 {
		return pygo.Errorf(pygo.ValueError, "list.remove(x): x not in list")
	}
	l.items.Remove(i)
	return nil
}

// Clear removes all items.
func (l *List) Clear() {
	l.items.Clear()
}

func listMethodTable() map[string][]method {
	self := func(v Value) *List { return v.(*List) }
	return map[string][]method{
		"append": {{params: []string{"object"}, fn: func(recv Value, args []Value) (Value, error) {
			self(recv).Append(args[0])
			return None, nil
		}}},
		"insert": {{params: []string{"int", "object"}, fn: func(recv Value, args []Value) (Value, error) {
			self(recv).Insert(args[0].(Int), args[1])
			return None, nil
		}}},
		"remove": {{params: []string{"object"}, fn: func(recv Value, args []Value) (Value, error) {
			return None, self(recv).Remove(args[0])
		}}},
		"pop": {
			{params: nil, fn: func(recv Value, args []Value) (Value, error) {
				return self(recv).Pop(-1)
			}},
			{params: []string{"int"}, fn: func(recv Value, args []Value) (Value, error) {
				return self(recv).Pop(args[0].(Int))
			}},
		},
		"index": {{params: []string{"object"}, fn: func(recv Value, args []Value) (Value, error) {
			i := self(recv).IndexOf(args[0])
			if i < 0 {
				return nil, pygo.Errorf(pygo.ValueError, "%s is not in list", Repr(args[0]))
			}
			return Int(i), nil
		}}},
		"count": {{params: []string{"object"}, fn: func(recv Value, args []Value) (Value, error) {
			n := 0
			for _, x := range self(recv).Values() {
				if Equal(x, args[0]) {
					n++
				}
			}
			return Int(n), nil
		}}},
		"clear": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			self(recv).Clear()
			return None, nil
		}}},
		"__getitem__": {{params: []string{"int"}, fn: func(recv Value, args []Value) (Value, error) {
			return self(recv).At(args[0].(Int))
		}}},
		"__setitem__": {{params: []string{"int", "object"}, fn: func(recv Value, args []Value) (Value, error) {
			return None, self(recv).SetAt(args[0].(Int), args[1])
		}}},
		"__len__": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			return Int(self(recv).Len()), nil
		}}},
		"__contains__": {{params: []string{"object"}, fn: func(recv Value, args []Value) (Value, error) {
			return Bool(self(recv).IndexOf(args[0]) >= 0), nil
		}}},
		"__str__": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			return Str(recv.String()), nil
		}}},
	}
}
