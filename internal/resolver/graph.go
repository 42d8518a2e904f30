package resolver

import (
	"sort"
)

// ImportGraphNode is one file in a shallow import tree: its import
// statements with their resolution outcomes, its exported names, and
// beyond depth 1 the same view of each resolved import.
type ImportGraphNode struct {
	FilePath string             `json:"filePath"`
	Imports  []GraphImport      `json:"imports"`
	Exports  []string           `json:"exports"`
	Children []*ImportGraphNode `json:"children,omitempty"`
}

// GraphImport is one import statement. Resolved is empty when the specifier
// could not be located (external package, missing file).
type GraphImport struct {
	Specifier string   `json:"specifier"`
	Resolved  string   `json:"resolved,omitempty"`
	Names     []string `json:"names"`
}

// ImportGraph builds the import tree rooted at filePath. Depth counts
// levels of files: 0 or 1 yields the root only; unresolved imports never
// recurse. The node for a missing file carries its path and nothing else.
func (r *Resolver) ImportGraph(filePath string, depth int) *ImportGraphNode {
	defer r.observe("graph")()
	return r.buildGraphNode(filePath, depth)
}

func (r *Resolver) buildGraphNode(filePath string, depth int) *ImportGraphNode {
	node := &ImportGraphNode{FilePath: filePath}

	mod := r.loadModule(filePath)
	if mod == nil {
		return node
	}
	node.FilePath = mod.Path

	for _, imp := range mod.Imports {
		gi := GraphImport{Specifier: imp.Specifier}
		if resolved := r.locator.Resolve(imp.Specifier, mod.Path); resolved != nil {
			gi.Resolved = resolved.FilePath
		}
		if imp.Default != "" {
			gi.Names = append(gi.Names, imp.Default)
		}
		if imp.Namespace != "" {
			gi.Names = append(gi.Names, "* as "+imp.Namespace)
		}
		for _, n := range imp.Names {
			gi.Names = append(gi.Names, n.Name)
		}
		node.Imports = append(node.Imports, gi)
	}

	table := r.exportTable(mod.Path, make(map[string]bool))
	node.Exports = make([]string, 0, len(table))
	for name := range table {
		node.Exports = append(node.Exports, name)
	}
	sort.Strings(node.Exports)

	if depth > 1 {
		for _, gi := range node.Imports {
			if gi.Resolved == "" {
				continue
			}
			node.Children = append(node.Children, r.buildGraphNode(gi.Resolved, depth-1))
		}
	}

	return node
}
