package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// GrammarLoader owns the tree-sitter grammars for the module languages we
// resolve across. Grammars are loaded once and shared by all parsers.
type GrammarLoader struct {
	languages map[string]*sitter.Language
}

func NewGrammarLoader() *GrammarLoader {
	return &GrammarLoader{
		languages: map[string]*sitter.Language{
			"typescript": sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()),
			"tsx":        sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()),
			"javascript": sitter.NewLanguage(tree_sitter_javascript.Language()),
		},
	}
}

// Language returns the grammar for a language ID, or nil when unsupported.
func (gl *GrammarLoader) Language(lang string) *sitter.Language {
	return gl.languages[lang]
}
