package parser

import (
	"time"
)

// Module is the parsed view of one source file: its import statements,
// export directives and top-level declarations. It carries everything the
// resolver needs; expression-level detail is not retained.
type Module struct {
	Path     string
	Language string
	Imports  []Import
	Exports  []Export
	Decls    []Declaration
	ParsedAt time.Time
}

type Import struct {
	Specifier string // raw module specifier, quotes stripped
	Default   string // local name bound to the default export, if any
	Namespace string // local name for `* as ns`, if any
	Names     []ImportedName
	TypeOnly  bool // `import type { ... }`
	Location  Location
}

type ImportedName struct {
	Name  string // name as exported by the target module
	Alias string // local binding, empty when identical to Name
}

type ExportKind int

const (
	// ExportLocal names a declaration in the same file.
	ExportLocal ExportKind = iota
	// ExportForward re-exports a single name from another module.
	ExportForward
	// ExportWildcard is `export * from '...'`.
	ExportWildcard
	// ExportDefault is the file's default export in any form.
	ExportDefault
)

type Export struct {
	Kind      ExportKind
	Name      string // exported name; empty for wildcards, "default" for defaults
	LocalName string // declaration name (local) or source-side name (forward)
	Specifier string // target module, set for forwards and wildcards
	Location  Location
}

type DeclKind int

const (
	DeclInterface DeclKind = iota
	DeclTypeAlias
	DeclClass
	DeclEnum
	DeclFunction
	DeclVariable
)

// Declaration is a top-level named declaration, exported or not.
type Declaration struct {
	Name     string
	Kind     DeclKind
	Exported bool
	// Refs lists type names referenced inside the declaration body, in
	// first-occurrence order. A recursive declaration references its own
	// name here.
	Refs     []string
	Location Location
}

type Location struct {
	File   string
	Line   int
	Column int
}

// LocalDecl returns the top-level declaration with the given name, or nil.
func (m *Module) LocalDecl(name string) *Declaration {
	for i := range m.Decls {
		if m.Decls[i].Name == name {
			return &m.Decls[i]
		}
	}
	return nil
}
