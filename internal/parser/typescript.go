package parser

import (
	"strings"
	"time"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ModuleExtractor walks the top level of a TypeScript/TSX/JavaScript AST and
// extracts imports, export directives and named declarations. It deliberately
// does not recurse into declaration bodies except for a shallow type-name
// scan; nested scopes cannot contribute module exports.
type ModuleExtractor struct{}

func (e *ModuleExtractor) Extract(root *sitter.Node, source []byte, filePath, lang string) (*Module, error) {
	mod := &Module{
		Path:     filePath,
		Language: lang,
		ParsedAt: time.Now(),
	}
	if root == nil {
		return mod, nil
	}

	count := root.ChildCount()
	for i := uint(0); i < count; i++ {
		node := root.Child(i)
		if node == nil {
			continue
		}
		switch node.Kind() {
		case "import_statement":
			e.extractImport(node, source, mod)
		case "export_statement":
			e.extractExport(node, source, mod)
		default:
			if decl, ok := e.extractDeclaration(node, source, mod.Path, false); ok {
				mod.Decls = append(mod.Decls, decl)
			}
		}
	}

	return mod, nil
}

// extractImport handles every import form:
//
//	import Def from 'm'
//	import * as ns from 'm'
//	import { a, b as c } from 'm'
//	import type { T } from 'm'
//	import 'm'
func (e *ModuleExtractor) extractImport(node *sitter.Node, source []byte, mod *Module) {
	imp := Import{
		Location: location(node, mod.Path),
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		ch := node.Child(i)
		if ch == nil {
			continue
		}
		switch ch.Kind() {
		case "string":
			imp.Specifier = stringText(ch, source)
		case "type":
			imp.TypeOnly = true
		case "import_clause":
			e.extractImportClause(ch, source, &imp)
		}
	}

	if imp.Specifier == "" {
		return
	}
	mod.Imports = append(mod.Imports, imp)
}

func (e *ModuleExtractor) extractImportClause(clause *sitter.Node, source []byte, imp *Import) {
	for i := uint(0); i < clause.ChildCount(); i++ {
		ch := clause.Child(i)
		if ch == nil {
			continue
		}
		switch ch.Kind() {
		case "identifier":
			imp.Default = nodeText(ch, source)
		case "namespace_import":
			// * as ns
			for j := uint(0); j < ch.ChildCount(); j++ {
				if inner := ch.Child(j); inner != nil && inner.Kind() == "identifier" {
					imp.Namespace = nodeText(inner, source)
				}
			}
		case "named_imports":
			for j := uint(0); j < ch.ChildCount(); j++ {
				spec := ch.Child(j)
				if spec == nil || spec.Kind() != "import_specifier" {
					continue
				}
				name := nodeText(spec.ChildByFieldName("name"), source)
				alias := nodeText(spec.ChildByFieldName("alias"), source)
				if name == "" {
					continue
				}
				imp.Names = append(imp.Names, ImportedName{Name: name, Alias: alias})
			}
		}
	}
}

// extractExport handles every export form:
//
//	export interface Foo { ... }        (and the other declaration kinds)
//	export { a, b as c }
//	export { a, b as c } from 'm'
//	export * from 'm'
//	export default ...
func (e *ModuleExtractor) extractExport(node *sitter.Node, source []byte, mod *Module) {
	loc := location(node, mod.Path)

	var specifier string
	var clause *sitter.Node
	isDefault := false
	isWildcard := false

	for i := uint(0); i < node.ChildCount(); i++ {
		ch := node.Child(i)
		if ch == nil {
			continue
		}
		switch ch.Kind() {
		case "string":
			specifier = stringText(ch, source)
		case "export_clause":
			clause = ch
		case "default":
			isDefault = true
		case "*", "namespace_export":
			// `export * as ns from` narrows the wildcard to one binding; we
			// still record it as a wildcard so every target name stays
			// reachable through this file.
			isWildcard = true
		}
	}

	if decl := node.ChildByFieldName("declaration"); decl != nil {
		d, ok := e.extractDeclaration(decl, source, mod.Path, true)
		if ok {
			mod.Decls = append(mod.Decls, d)
		}
		if isDefault {
			mod.Exports = append(mod.Exports, Export{
				Kind:      ExportDefault,
				Name:      "default",
				LocalName: d.Name,
				Location:  loc,
			})
		} else if ok {
			mod.Exports = append(mod.Exports, Export{
				Kind:      ExportLocal,
				Name:      d.Name,
				LocalName: d.Name,
				Location:  loc,
			})
		}
		return
	}

	if isDefault {
		// export default <expression>
		mod.Exports = append(mod.Exports, Export{
			Kind:     ExportDefault,
			Name:     "default",
			Location: loc,
		})
		return
	}

	if isWildcard && specifier != "" {
		mod.Exports = append(mod.Exports, Export{
			Kind:      ExportWildcard,
			Specifier: specifier,
			Location:  loc,
		})
		return
	}

	if clause == nil {
		return
	}
	for j := uint(0); j < clause.ChildCount(); j++ {
		spec := clause.Child(j)
		if spec == nil || spec.Kind() != "export_specifier" {
			continue
		}
		name := nodeText(spec.ChildByFieldName("name"), source)
		alias := nodeText(spec.ChildByFieldName("alias"), source)
		if name == "" {
			continue
		}
		exported := alias
		if exported == "" {
			exported = name
		}
		kind := ExportLocal
		if specifier != "" {
			kind = ExportForward
		}
		mod.Exports = append(mod.Exports, Export{
			Kind:      kind,
			Name:      exported,
			LocalName: name,
			Specifier: specifier,
			Location:  loc,
		})
	}
}

// extractDeclaration classifies one top-level declaration node. Returns
// ok=false for nodes that are not named declarations (expression statements,
// comments and the like).
func (e *ModuleExtractor) extractDeclaration(node *sitter.Node, source []byte, filePath string, exported bool) (Declaration, bool) {
	var kind DeclKind
	switch node.Kind() {
	case "interface_declaration":
		kind = DeclInterface
	case "type_alias_declaration":
		kind = DeclTypeAlias
	case "class_declaration", "abstract_class_declaration":
		kind = DeclClass
	case "enum_declaration":
		kind = DeclEnum
	case "function_declaration", "generator_function_declaration", "function_signature":
		kind = DeclFunction
	case "lexical_declaration", "variable_declaration":
		return e.extractVariable(node, source, filePath, exported)
	case "ambient_declaration":
		// declare ...: unwrap and classify the inner declaration.
		for i := uint(0); i < node.ChildCount(); i++ {
			if inner := node.Child(i); inner != nil && inner.Kind() != "declare" {
				if d, ok := e.extractDeclaration(inner, source, filePath, exported); ok {
					return d, true
				}
			}
		}
		return Declaration{}, false
	default:
		return Declaration{}, false
	}

	nameNode := node.ChildByFieldName("name")
	name := nodeText(nameNode, source)
	if name == "" {
		return Declaration{}, false
	}

	return Declaration{
		Name:     name,
		Kind:     kind,
		Exported: exported,
		Refs:     collectTypeRefs(node, nameNode, source),
		Location: location(node, filePath),
	}, true
}

// extractVariable handles `const x = ...` / `let` / `var` declarations; only
// the first declarator names the declaration.
func (e *ModuleExtractor) extractVariable(node *sitter.Node, source []byte, filePath string, exported bool) (Declaration, bool) {
	for i := uint(0); i < node.ChildCount(); i++ {
		ch := node.Child(i)
		if ch == nil || ch.Kind() != "variable_declarator" {
			continue
		}
		nameNode := ch.ChildByFieldName("name")
		name := nodeText(nameNode, source)
		if name == "" {
			continue
		}
		return Declaration{
			Name:     name,
			Kind:     DeclVariable,
			Exported: exported,
			Refs:     collectTypeRefs(node, nameNode, source),
			Location: location(node, filePath),
		}, true
	}
	return Declaration{}, false
}

// collectTypeRefs gathers type names referenced anywhere inside a declaration
// body, first occurrence first. The declaration's own name node is skipped so
// that only genuine uses (including recursive self-uses in the body) appear.
func collectTypeRefs(node, nameNode *sitter.Node, source []byte) []string {
	var refs []string
	seen := make(map[string]bool)

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if n.Kind() == "type_identifier" && (nameNode == nil || n.StartByte() != nameNode.StartByte()) {
			name := nodeText(n, source)
			if name != "" && !seen[name] {
				seen[name] = true
				refs = append(refs, name)
			}
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			walk(n.Child(i))
		}
	}
	walk(node)

	return refs
}

// stringText unwraps a string literal node to its contents.
func stringText(node *sitter.Node, source []byte) string {
	return strings.Trim(nodeText(node, source), "\"'`")
}

// nodeText returns the source bytes spanned by a node as a trimmed string.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	start := node.StartByte()
	end := node.EndByte()
	if start >= end || end > uint(len(source)) {
		return ""
	}
	return strings.TrimSpace(string(source[start:end]))
}

func location(node *sitter.Node, filePath string) Location {
	return Location{
		File:   filePath,
		Line:   int(node.StartPosition().Row) + 1,
		Column: int(node.StartPosition().Column) + 1,
	}
}
