package resolver

import (
	"fmt"

	"barrel/internal/parser"
	"barrel/internal/shared/observability"
)

type TypeKind int

const (
	// TypeDeclaration is a located defining declaration.
	TypeDeclaration TypeKind = iota
	// TypeReference is a bare name marker, used where resolution stopped
	// short of a declaration or where a declaration refers to itself.
	TypeReference
)

// TypeNode is the normalized representation of a resolved type. The
// resolver locates declarations, it does not evaluate them, so the IR stays
// shallow: a declaration carries its kind, defining line and the type names
// its body references; a reference carries only a name.
type TypeNode struct {
	Kind     TypeKind
	Name     string
	DeclKind parser.DeclKind // meaningful for declarations only
	Line     int
	Refs     []string
}

// ResolvedTypeRef is the outcome of following a named type from a starting
// file to its defining declaration. ReexportChain lists the files traversed
// in order, excluding the defining file. Complete=false means the walk hit
// a cycle or the depth limit; Type then holds a reference marker for the
// point where resolution stopped.
type ResolvedTypeRef struct {
	Type             TypeNode
	DefinitionFile   string
	DefinitionLine   int
	ReexportChain    []string
	Complete         bool
	IncompleteReason string
}

// ResolveTypeRef follows name from fromFile through any number of re-export
// hops to the declaration that defines it. Returns nil when the name is not
// reachable at all; returns an incomplete result when a cycle or the depth
// limit cut the walk short.
func (r *Resolver) ResolveTypeRef(name, fromFile string) *ResolvedTypeRef {
	defer r.observe("typeref")()

	start := r.loadModule(fromFile)
	if start == nil {
		return nil
	}

	// The defining file itself answers from its local declarations, so
	// unexported types are still reachable where they are declared.
	if decl := start.LocalDecl(name); decl != nil {
		observability.ReexportChainLength.Observe(0)
		return declarationRef(decl, start.Path, nil)
	}

	visited := map[string]bool{start.Path: true}
	var chain []string
	currentPath := start.Path
	currentName := name

	for {
		entry, ok := r.exportTable(currentPath, make(map[string]bool))[currentName]
		if !ok {
			return nil
		}

		if entry.Kind == EntryLocal {
			mod := r.loadModule(currentPath)
			if mod == nil {
				return nil
			}
			observability.ReexportChainLength.Observe(float64(len(chain)))
			localName := entry.LocalName
			if localName == "" {
				localName = entry.Name
			}
			if decl := mod.LocalDecl(localName); decl != nil {
				return declarationRef(decl, currentPath, chain)
			}
			// Exported without a named top-level declaration (e.g. an
			// anonymous default). The site still counts as the definition.
			return &ResolvedTypeRef{
				Type:           TypeNode{Kind: TypeDeclaration, Name: currentName, Line: entry.Line},
				DefinitionFile: currentPath,
				DefinitionLine: entry.Line,
				ReexportChain:  chain,
				Complete:       true,
			}
		}

		target := r.locator.Resolve(entry.TargetSpecifier, currentPath)
		if target == nil {
			return nil
		}

		chain = append(chain, currentPath)

		if visited[target.FilePath] {
			observability.ReexportChainLength.Observe(float64(len(chain)))
			return incompleteRef(currentName, chain,
				fmt.Sprintf("circular re-export involving %s", target.FilePath))
		}
		if len(chain) > r.maxDepth {
			observability.ReexportChainLength.Observe(float64(len(chain)))
			return incompleteRef(currentName, chain,
				fmt.Sprintf("max re-export depth %d exceeded", r.maxDepth))
		}

		visited[target.FilePath] = true
		currentPath = target.FilePath
		currentName = entry.TargetName
	}
}

// declarationRef builds a complete result from a located declaration. A
// declaration whose body mentions its own name stays a one-step resolution:
// the self-occurrence is listed in Refs as a reference, never inlined.
func declarationRef(decl *parser.Declaration, filePath string, chain []string) *ResolvedTypeRef {
	return &ResolvedTypeRef{
		Type: TypeNode{
			Kind:     TypeDeclaration,
			Name:     decl.Name,
			DeclKind: decl.Kind,
			Line:     decl.Location.Line,
			Refs:     decl.Refs,
		},
		DefinitionFile: filePath,
		DefinitionLine: decl.Location.Line,
		ReexportChain:  chain,
		Complete:       true,
	}
}

func incompleteRef(name string, chain []string, reason string) *ResolvedTypeRef {
	return &ResolvedTypeRef{
		Type:             TypeNode{Kind: TypeReference, Name: name},
		ReexportChain:    chain,
		Complete:         false,
		IncompleteReason: reason,
	}
}
