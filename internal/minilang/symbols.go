package minilang

// SymbolEntry records one declared variable. The language has no blocks or
// functions, so entries live in a single flat table.
type SymbolEntry struct {
	Name        string
	Type        Type
	Line        int
	Initialized bool
}

// SymbolTable tracks the variables declared during one analysis. A name may
// appear at most once; redeclaring is a semantic error, never an overwrite.
type SymbolTable struct {
	entries map[string]*SymbolEntry
	order   []string
}

// NewSymbolTable creates an empty symbol table
func NewSymbolTable() *SymbolTable {
	table := new(SymbolTable)
	table.Reset()
	return table
}

// Declare inserts a new entry with Initialized unset, or fails with a
// redeclaration error when the name is already present.
func (table *SymbolTable) Declare(name string, typ Type, line int) *SemanticError {
	if entry, ok := table.entries[name]; ok {
		return newRedeclarationError(name, entry.Line)
	}
	table.entries[name] = &SymbolEntry{Name: name, Type: typ, Line: line}
	table.order = append(table.order, name)
	return nil
}

// Check fails with a not-declared error when the name has no entry
func (table *SymbolTable) Check(name string) *SemanticError {
	if _, ok := table.entries[name]; !ok {
		return newNotDeclaredError(name)
	}
	return nil
}

// Lookup returns the entry for a name, if any
func (table *SymbolTable) Lookup(name string) (*SymbolEntry, bool) {
	entry, ok := table.entries[name]
	return entry, ok
}

// Snapshot returns the entries in declaration order
func (table *SymbolTable) Snapshot() []*SymbolEntry {
	entries := make([]*SymbolEntry, 0, len(table.order))
	for _, name := range table.order {
		entries = append(entries, table.entries[name])
	}
	return entries
}

// Reset clears the table; it must run before every independent analysis so
// declarations cannot leak across calls.
func (table *SymbolTable) Reset() {
	table.entries = make(map[string]*SymbolEntry)
	table.order = table.order[:0]
}
