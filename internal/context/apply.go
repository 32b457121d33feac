package context

import "github.com/corvidscan/jsurlx/internal/symtab"

// Apply installs b's plain bindings onto table's root scope under policy.
// Under Only, table is expected to be an empty symtab.NewTable (C2 was
// never run); under Merge and Override it is the table C2 built from the
// Source Unit.
func Apply(table *symtab.Table, b Bindings, policy Policy) {
	only := policy == Override || policy == Only
	for name, value := range b.Values {
		table.SetContext(table.Root, name, value, only)
	}
}

// OnlyTable builds a standalone Table from b alone, for the "only" policy
// where C2 is never run over the Source Unit at all.
func OnlyTable(b Bindings) *symtab.Table {
	table := symtab.NewTable(symtab.Merge)
	Apply(table, b, Only)
	return table
}
