// Package symbols implements the identifier table for Core programs.
//
// Symbols live in an arena and are addressed by stable IDs; AST nodes
// carry an ID rather than a pointer, so the declaration node and every
// use node of an identifier share one record. The table enforces the
// single-declaration rule at declaration time and the declared-before-
// use rule at lookup time.
package symbols

import "fmt"

// ID is a stable index into a Table's arena.
type ID int

// None is the zero value for an unresolved symbol reference.
const None ID = -1

// Symbol is the per-identifier record. Value is meaningful only while
// Initialized is true; Initialized is set by the first assignment or
// read and never reverts.
type Symbol struct {
	Name         string
	DeclaredLine int
	Initialized  bool
	Value        int64
	UseLines     []int
}

// Table maps identifier names to arena-backed Symbol records.
type Table struct {
	arena  []Symbol
	byName map[string]ID
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{
		byName: make(map[string]ID),
	}
}

// Declare adds a new identifier declared on the given source line and
// returns its ID. Declaring a name twice is an error.
func (t *Table) Declare(name string, line int) (ID, error) {
	if _, ok := t.byName[name]; ok {
		return None, fmt.Errorf("identifier %q has already been declared", name)
	}
	id := ID(len(t.arena))
	t.arena = append(t.arena, Symbol{Name: name, DeclaredLine: line})
	t.byName[name] = id
	return id, nil
}

// Lookup resolves a name to its ID. The second result is false when the
// name has not been declared.
func (t *Table) Lookup(name string) (ID, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// Get returns the symbol record for id. The pointer stays valid for the
// lifetime of the table; the arena is never reallocated after parsing.
func (t *Table) Get(id ID) *Symbol {
	return &t.arena[id]
}

// Name returns the name of the symbol with the given ID.
func (t *Table) Name(id ID) string {
	return t.arena[id].Name
}

// RecordUse appends a use line to the symbol's ordered use list.
func (t *Table) RecordUse(id ID, line int) {
	sym := &t.arena[id]
	sym.UseLines = append(sym.UseLines, line)
}

// Assign stores a value and marks the symbol initialized.
func (t *Table) Assign(id ID, value int64) {
	sym := &t.arena[id]
	sym.Value = value
	sym.Initialized = true
}

// Value returns the symbol's current value. The second result is false
// when the symbol has never been assigned or read into.
func (t *Table) Value(id ID) (int64, bool) {
	sym := &t.arena[id]
	if !sym.Initialized {
		return 0, false
	}
	return sym.Value, true
}

// Len returns the number of declared symbols.
func (t *Table) Len() int {
	return len(t.arena)
}

// All returns the declared symbols in declaration order.
func (t *Table) All() []Symbol {
	return t.arena
}
