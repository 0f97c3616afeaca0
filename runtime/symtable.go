package runtime

import (
	"fmt"

	"github.com/npillmayer/pygo"
)

// Symbol table for variables. Symbol tables are attached to scopes.
// Scopes are chained from the innermost to the global scope.

// --- Tags -------------------------------------------------------

// Tag is the symbols type to be stored into symbol tables. It may be a
// little surprising this type is not called 'Symbol', but I prefer the
// name 'Tag' because it is less confusing when dealing with parsers
// and grammars: Grammars consist of symbols (within rules), too.
// Thus, symbols are used in the scope of the grammar, tags are used during
// runtime (of the client program).
//
type Tag struct {
	name  string
	UData interface{} // the bound value
}

// NewTag creates a new tag.
func NewTag(nm string) *Tag {
	return &Tag{name: nm}
}

// String is a debug Stringer for symbols.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s'=%v>", s.name, s.UData)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
// Tags are remembered in order of definition.
type SymbolTable struct {
	table map[string]*Tag
	order []string
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{table: make(map[string]*Tag)}
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.table[tagname]
}

// ResolveOrDefineTag finds
// a tag in the table, inserts a new one if not found.
// Returns the tag and a flag, signalling wether the tag
// has already been present.
//
func (t *SymbolTable) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	if tag := t.ResolveTag(tagname); tag != nil {
		return tag, true
	}
	tag, _ := t.DefineTag(tagname)
	return tag, false
}

// DefineTag creates a new tag to store into the symbol table.
// The tag's name may not be empty
// Overwrites existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
//
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	tag := NewTag(tagname)
	old := t.InsertTag(tag)
	return tag, old
}

// InsertTag inserts a pre-created symbol.
func (t *SymbolTable) InsertTag(tag *Tag) *Tag {
	old := t.ResolveTag(tag.name)
	if old == nil {
		t.order = append(t.order, tag.name)
	}
	t.table[tag.name] = tag
	return old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.table)
}

// Each iterates over each tag in the table in order of first definition,
// executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	for _, k := range t.order {
		mapper(k, t.table[k])
	}
}

// === Scopes ================================================================

// Scope is a named scope, which may contain symbol definitions. Scopes link
// back to an enclosing scope, forming a chain.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
	rt     *Runtime
}

// NewScope creates a new scope. It belongs to the same runtime as its parent.
func NewScope(nm string, parent *Scope) *Scope {
	sc := &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
	if parent != nil {
		sc.rt = parent.rt
	}
	return sc
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Runtime returns the runtime environment a scope belongs to.
func (s *Scope) Runtime() *Runtime {
	return s.rt
}

// Tags returns the symbol table of a scope.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// DefineTag defines a tag in the scope. Returns the new tag and the previously
// stored tag under this key, if any.
//
func (s *Scope) DefineTag(tagname string) (*Tag, *Tag) {
	return s.symtab.DefineTag(tagname)
}

// ResolveTag finds a tag. Returns the tag (or nil) and a scope. The scope is
// the scope (of a scope-chain) the tag was found in.
//
func (s *Scope) ResolveTag(tagname string) (*Tag, *Scope) {
	for ; s != nil; s = s.Parent {
		if tag := s.symtab.ResolveTag(tagname); tag != nil {
			return tag, s
		}
	}
	return nil, nil
}

// Set binds a value to a name in this scope, shadowing any binding of the
// same name in enclosing scopes.
func (s *Scope) Set(name string, value interface{}) {
	tag, _ := s.symtab.ResolveOrDefineTag(name)
	tag.UData = value
}

// Lookup returns the value bound to name, searching the scope chain from
// s outwards. A name unbound in all scopes is a NameError.
func (s *Scope) Lookup(name string) (interface{}, error) {
	tag, _ := s.ResolveTag(name)
	if tag == nil {
		return nil, pygo.Errorf(pygo.NameError, "name '%s' is not defined", name)
	}
	return tag.UData, nil
}
