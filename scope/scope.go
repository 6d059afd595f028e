package scope

import (
	"errors"
	"sort"
	"strings"
)

// ErrPopGlobalScope is the panic value raised when the global table would be popped.
var ErrPopGlobalScope = errors.New("can't pop global symbol table")

// Table holds the symbols declared in one lexical scope.
// The zero value is an empty table ready to use.
type Table struct {
	store map[string]*Symbol
}

// NewTable creates a new, empty table.
func NewTable() *Table {
	return &Table{store: make(map[string]*Symbol)}
}

// Insert takes ownership of sym. It returns false, leaving the table
// unchanged, if sym is nil or its name is already declared in this table.
func (t *Table) Insert(sym *Symbol) bool {
	if sym == nil {
		return false
	}
	if _, ok := t.store[sym.Name()]; ok {
		return false
	}
	if t.store == nil {
		t.store = make(map[string]*Symbol)
	}
	t.store[sym.Name()] = sym
	return true
}

// Lookup finds a symbol declared in this table only.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	sym, ok := t.store[name]
	return sym, ok
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int { return len(t.store) }

// String renders the symbols sorted by name, one per line.
func (t *Table) String() string {
	names := make([]string, 0, len(t.store))
	for name := range t.store {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(t.store[name].String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Manager is a stack of tables implementing nested lexical scopes.
// The bottom table is the permanent global scope. The zero value holds
// only an empty global table.
//
// A Manager is not safe for concurrent use; an evaluation assumes exclusive
// access for its duration.
type Manager struct {
	tables []*Table
}

// NewManager creates a manager holding only the global table.
func NewManager() *Manager {
	return &Manager{tables: []*Table{NewTable()}}
}

// Push opens a new, empty innermost scope.
func (m *Manager) Push() {
	m.init()
	m.tables = append(m.tables, NewTable())
}

// Pop closes the innermost scope, releasing its symbols.
// Popping the global table means the caller's scope bookkeeping is corrupt;
// Pop panics with ErrPopGlobalScope in that case.
func (m *Manager) Pop() {
	if len(m.tables) <= 1 {
		panic(ErrPopGlobalScope)
	}
	m.tables[len(m.tables)-1] = nil
	m.tables = m.tables[:len(m.tables)-1]
}

// Depth returns the number of tables, including the global one.
func (m *Manager) Depth() int {
	m.init()
	return len(m.tables)
}

// Current returns the innermost table.
func (m *Manager) Current() *Table {
	m.init()
	return m.tables[len(m.tables)-1]
}

// Global returns the bottom table.
func (m *Manager) Global() *Table {
	m.init()
	return m.tables[0]
}

func (m *Manager) init() {
	if len(m.tables) == 0 {
		m.tables = []*Table{NewTable()}
	}
}

// AddToCurrentScope inserts sym into the innermost table.
func (m *Manager) AddToCurrentScope(sym *Symbol) bool {
	return m.Current().Insert(sym)
}

// Lookup searches from the innermost table outward; the first match wins.
func (m *Manager) Lookup(name string) (*Symbol, bool) {
	for i := len(m.tables) - 1; i >= 0; i-- {
		if sym, ok := m.tables[i].Lookup(name); ok {
			return sym, true
		}
	}
	return nil, false
}

// DefinedInCurrentScope reports whether name is declared in the innermost table.
func (m *Manager) DefinedInCurrentScope(name string) bool {
	_, ok := m.Current().Lookup(name)
	return ok
}

// String renders every table, innermost first.
func (m *Manager) String() string {
	var b strings.Builder
	for i := len(m.tables) - 1; i >= 0; i-- {
		b.WriteString(m.tables[i].String())
	}
	return b.String()
}
