package object

import (
	"math"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/pygo"
)

// Dict is a mapping from hashable values to values, remembering insertion
// order.
//
// Keys equal by value share an entry: 1 and 1.0 denote the same key. The
// entry keeps the key it has first been stored with.
type Dict struct {
	m *linkedhashmap.Map // hash key -> *entry
}

type entry struct {
	key, val Value
}

// NewDict creates an empty dict.
func NewDict() *Dict {
	return &Dict{m: linkedhashmap.New()}
}

func (d *Dict) TypeName() string { return "dict" }

func (d *Dict) String() string {
	return repr(d, nil)
}

// hashKey maps floats with an integral value to ints.
func hashKey(k Value) Value {
	if f, ok := k.(Float); ok {
		x := float64(f)
		if x == math.Trunc(x) && x >= math.MinInt64 && x < math.MaxInt64 {
			return Int(x)
		}
	}
	return k
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return d.m.Size()
}

// each calls f for every entry, in insertion order.
func (d *Dict) each(f func(k, v Value)) {
	it := d.m.Iterator()
	for it.Next() {
		e := it.Value().(*entry)
		f(e.key, e.val)
	}
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []Value {
	keys := make([]Value, 0, d.m.Size())
	d.each(func(k, _ Value) { keys = append(keys, k) })
	return keys
}

// Values returns the values in insertion order.
func (d *Dict) Values() []Value {
	vals := make([]Value, 0, d.m.Size())
	d.each(func(_, v Value) { vals = append(vals, v) })
	return vals
}

// Get looks up the value for key k.
func (d *Dict) Get(k Value) (Value, bool) {
	if !Hashable(k) {
		return nil, false
	}
	e, found := d.m.Get(hashKey(k))
	if !found {
		return nil, false
	}
	return e.(*entry).val, true
}

// Put sets the value for key k. Unhashable keys are a TypeError.
func (d *Dict) Put(k, v Value) error {
	if !Hashable(k) {
		return pygo.Errorf(pygo.TypeError, "unhashable type: '%s'", TypeName(k))
	}
	h := hashKey(k)
	if e, found := d.m.Get(h); found {
		e.(*entry).val = v
		return nil
	}
	d.m.Put(h, &entry{key: k, val: v})
	return nil
}

// Delete removes key k. A missing key is a KeyError.
func (d *Dict) Delete(k Value) error {
	if _, found := d.Get(k); !found {
		return pygo.Errorf(pygo.KeyError, "%s", Repr(k))
	}
	d.m.Remove(hashKey(k))
	return nil
}

// Copy returns a shallow copy of d.
func (d *Dict) Copy() *Dict {
	c := NewDict()
	d.each(func(k, v Value) { c.Put(k, v) })
	return c
}

func (d *Dict) item(k Value) (Value, error) {
	v, found := d.Get(k)
	if !found {
		if !Hashable(k) {
			return nil, pygo.Errorf(pygo.TypeError, "unhashable type: '%s'", TypeName(k))
		}
		return nil, pygo.Errorf(pygo.KeyError, "%s", Repr(k))
	}
	return v, nil
}

func dictMethodTable() map[string][]method {
	self := func(v Value) *Dict { return v.(*Dict) }
	return map[string][]method{
		"__getitem__": {{params: []string{"object"}, fn: func(recv Value, args []Value) (Value, error) {
			return self(recv).item(args[0])
		}}},
		"__setitem__": {{params: []string{"object", "object"}, fn: func(recv Value, args []Value) (Value, error) {
			return None, self(recv).Put(args[0], args[1])
		}}},
		"__delitem__": {{params: []string{"object"}, fn: func(recv Value, args []Value) (Value, error) {
			return None, self(recv).Delete(args[0])
		}}},
		"__len__": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			return Int(self(recv).Len()), nil
		}}},
		"__contains__": {{params: []string{"object"}, fn: func(recv Value, args []Value) (Value, error) {
			_, found := self(recv).Get(args[0])
			return Bool(found), nil
		}}},
		"__str__": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			return Str(recv.String()), nil
		}}},
		"keys": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			return NewList(self(recv).Keys()...), nil
		}}},
		"values": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			return NewList(self(recv).Values()...), nil
		}}},
		"items": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			l := NewList()
			self(recv).each(func(k, v Value) { l.Append(NewList(k, v)) })
			return l, nil
		}}},
		"get": {
			{params: []string{"object"}, fn: func(recv Value, args []Value) (Value, error) {
				if v, found := self(recv).Get(args[0]); found {
					return v, nil
				}
				return None, nil
			}},
			{params: []string{"object", "object"}, fn: func(recv Value, args []Value) (Value, error) {
				if v, found := self(recv).Get(args[0]); found {
					return v, nil
				}
				return args[1], nil
			}},
		},
		"setdefault": {
			{params: []string{"object"}, fn: func(recv Value, args []Value) (Value, error) {
				return self(recv).setDefault(args[0], None)
			}},
			{params: []string{"object", "object"}, fn: func(recv Value, args []Value) (Value, error) {
				return self(recv).setDefault(args[0], args[1])
			}},
		},
		"popitem": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			d := self(recv)
			keys := d.Keys()
			if len(keys) == 0 {
				return nil, pygo.Errorf(pygo.KeyError, "popitem(): dictionary is empty")
			}
			k := keys[len(keys)-1]
			v, _ := d.Get(k)
			d.m.Remove(hashKey(k))
			return NewList(k, v), nil
		}}},
		"update": {{params: []string{"dict"}, fn: func(recv Value, args []Value) (Value, error) {
			d := self(recv)
			args[0].(*Dict).each(func(k, v Value) { d.Put(k, v) })
			return None, nil
		}}},
		"clear": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			self(recv).m.Clear()
			return None, nil
		}}},
		"copy": {{params: nil, fn: func(recv Value, args []Value) (Value, error) {
			return self(recv).Copy(), nil
		}}},
	}
}

func (d *Dict) setDefault(k, dflt Value) (Value, error) {
	if v, found := d.Get(k); found {
		return v, nil
	}
	if err := d.Put(k, dflt); err != nil {
		return nil, err
	}
	return dflt, nil
}
