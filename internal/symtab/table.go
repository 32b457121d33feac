package symtab

// Table is the full scope tree plus every symbol recorded in it, produced
// by a single Build pass over a Source Unit.
type Table struct {
	scopes []*Scope
	policy Policy
	Root   int
	spans  []scopeSpan
}

// scopeSpan records the byte range a scope-introducing node covers, so a
// caller holding only an *ast.Node (the extraction driver, C7) can recover
// which scope an arbitrary expression belongs to without re-walking the
// tree the way the builder did.
type scopeSpan struct {
	start, end uint32
	id         int
}

func newTable(policy Policy) *Table {
	t := &Table{policy: policy}
	t.Root = t.newScope(NoScope, Program)
	return t
}

// recordSpan associates scope id with the byte range [start, end).
func (t *Table) recordSpan(start, end uint32, id int) {
	t.spans = append(t.spans, scopeSpan{start: start, end: end, id: id})
}

// ScopeAt returns the innermost recorded scope whose span contains
// [start, end), or Root if none does.
func (t *Table) ScopeAt(start, end uint32) int {
	best := t.Root
	bestWidth := ^uint32(0)
	for _, s := range t.spans {
		if start < s.start || end > s.end {
			continue
		}
		width := s.end - s.start
		if width < bestWidth {
			bestWidth = width
			best = s.id
		}
	}
	return best
}

// NewTable builds an empty Table with a single Program scope, for use by
// the context injector's "only" policy where C2 is never run over source.
func NewTable(policy Policy) *Table {
	return newTable(policy)
}

// SetContext installs an externally supplied value (C8) onto name at
// scopeID, declaring the symbol if it doesn't exist. When only is true the
// symbol is marked ContextOnly so file-derived initializers are ignored;
// otherwise the value is appended to ContextValues alongside them.
func (t *Table) SetContext(scopeID int, name, value string, only bool) *Symbol {
	sym := t.declare(scopeID, name)
	if sym == nil {
		return nil
	}
	sym.Unresolved = false
	sym.ContextValues = append(sym.ContextValues, value)
	if only {
		sym.ContextOnly = true
	}
	return sym
}

func (t *Table) newScope(parent int, kind Kind) int {
	id := len(t.scopes)
	t.scopes = append(t.scopes, newScope(id, parent, kind))
	return id
}

func (t *Table) scope(id int) *Scope {
	if id < 0 || id >= len(t.scopes) {
		return nil
	}
	return t.scopes[id]
}

// Lookup walks the parent chain starting at scopeID, returning the first
// symbol bound to name, or nil.
func (t *Table) Lookup(scopeID int, name string) *Symbol {
	for id := scopeID; id != NoScope; {
		s := t.scope(id)
		if s == nil {
			return nil
		}
		if sym := s.own(name); sym != nil {
			return sym
		}
		id = s.Parent
	}
	return nil
}

// declare binds name in scopeID, creating the symbol if it doesn't already
// exist in that exact scope (re-declaration in the same scope reuses the
// existing symbol, per §4.2).
func (t *Table) declare(scopeID int, name string) *Symbol {
	scope := t.scope(scopeID)
	if scope == nil {
		return nil
	}
	if sym, ok := scope.symbols[name]; ok {
		return sym
	}
	sym := &Symbol{Name: name, ScopeID: scopeID}
	scope.symbols[name] = sym
	return sym
}

// declareUnresolved binds name as an unresolved symbol unless it is
// already bound in scopeID.
func (t *Table) declareUnresolved(scopeID int, name string) *Symbol {
	scope := t.scope(scopeID)
	if scope == nil {
		return nil
	}
	if sym, ok := scope.symbols[name]; ok {
		return sym
	}
	sym := newUnresolvedSymbol(name, scopeID)
	scope.symbols[name] = sym
	return sym
}

// nearestHoistTarget returns the scope var declarations in scopeID hoist
// to: the nearest enclosing Function or Program scope.
func (t *Table) nearestHoistTarget(scopeID int) int {
	for id := scopeID; id != NoScope; {
		s := t.scope(id)
		if s == nil {
			return scopeID
		}
		if s.Kind == Function || s.Kind == Program {
			return id
		}
		id = s.Parent
	}
	return scopeID
}

// Policy reports the merge/override policy this table was built with.
func (t *Table) Policy() Policy {
	return t.policy
}
