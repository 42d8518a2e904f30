package resolver

import (
	"barrel/internal/parser"
)

// EntryKind tags an export-table entry so the chain walker can dispatch
// with a plain switch instead of polymorphism.
type EntryKind int

const (
	// EntryLocal points at a declaration in the same file.
	EntryLocal EntryKind = iota
	// EntryForward points at a name in another module.
	EntryForward
)

// ExportEntry is one exported name in a file's export table. Wildcard
// re-exports do not appear as entries themselves; building the table
// expands them into forward entries for every name they contribute.
type ExportEntry struct {
	Name string
	Kind EntryKind

	// Local entries.
	LocalName string // declaration name, may differ from Name via `as`
	Line      int    // declaration line, export-statement line as fallback

	// Forward entries.
	TargetSpecifier string
	TargetName      string
}

// ExportedTypes returns the export table of filePath: every exported name
// mapped to where it comes from. Wildcard re-exports are expanded; locally
// declared and explicitly forwarded names shadow wildcard-contributed ones,
// and the first wildcard source in declaration order wins collisions among
// wildcards. A file that does not exist or cannot be parsed yields an empty
// table.
func (r *Resolver) ExportedTypes(filePath string) map[string]ExportEntry {
	defer r.observe("exports")()
	return r.exportTable(filePath, make(map[string]bool))
}

// exportTable does the real work. visiting guards against wildcard cycles:
// a file re-entered through its own `export *` chain contributes nothing
// the second time.
func (r *Resolver) exportTable(filePath string, visiting map[string]bool) map[string]ExportEntry {
	table := make(map[string]ExportEntry)

	mod := r.loadModule(filePath)
	if mod == nil || visiting[mod.Path] {
		return table
	}
	visiting[mod.Path] = true
	defer delete(visiting, mod.Path)

	var wildcards []parser.Export
	for _, exp := range mod.Exports {
		switch exp.Kind {
		case parser.ExportLocal:
			if _, exists := table[exp.Name]; exists {
				continue // first occurrence is authoritative
			}
			entry := ExportEntry{
				Name:      exp.Name,
				Kind:      EntryLocal,
				LocalName: exp.LocalName,
				Line:      exp.Location.Line,
			}
			if decl := mod.LocalDecl(exp.LocalName); decl != nil {
				entry.Line = decl.Location.Line
			}
			table[exp.Name] = entry

		case parser.ExportDefault:
			if _, exists := table["default"]; exists {
				continue
			}
			entry := ExportEntry{
				Name:      "default",
				Kind:      EntryLocal,
				LocalName: exp.LocalName,
				Line:      exp.Location.Line,
			}
			if decl := mod.LocalDecl(exp.LocalName); exp.LocalName != "" && decl != nil {
				entry.Line = decl.Location.Line
			}
			table["default"] = entry

		case parser.ExportForward:
			if _, exists := table[exp.Name]; exists {
				continue
			}
			table[exp.Name] = ExportEntry{
				Name:            exp.Name,
				Kind:            EntryForward,
				TargetSpecifier: exp.Specifier,
				TargetName:      exp.LocalName,
			}

		case parser.ExportWildcard:
			wildcards = append(wildcards, exp)
		}
	}

	for _, w := range wildcards {
		resolved := r.locator.Resolve(w.Specifier, mod.Path)
		if resolved == nil {
			continue
		}
		inner := r.exportTable(resolved.FilePath, visiting)
		for name := range inner {
			if name == "default" {
				continue // `export *` never forwards the default export
			}
			if _, exists := table[name]; exists {
				continue
			}
			table[name] = ExportEntry{
				Name:            name,
				Kind:            EntryForward,
				TargetSpecifier: w.Specifier,
				TargetName:      name,
			}
		}
	}

	return table
}
