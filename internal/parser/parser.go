package parser

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// SourceExtensions lists the file extensions we treat as module sources, in
// resolution probe order.
var SourceExtensions = []string{".ts", ".tsx", ".js", ".jsx"}

// IndexBasenames lists the directory-index fallbacks, in probe order.
var IndexBasenames = []string{"index.ts", "index.tsx", "index.js", "index.jsx"}

type Parser struct {
	loader    *GrammarLoader
	extractor *ModuleExtractor
}

func NewParser(loader *GrammarLoader) *Parser {
	return &Parser{
		loader:    loader,
		extractor: &ModuleExtractor{},
	}
}

// ParseFile parses content as the language implied by path's extension and
// extracts the module's imports, exports and declarations. Unsupported
// extensions and parser failures yield an error; the caller decides whether
// that degrades to an empty module.
func (p *Parser) ParseFile(path string, content []byte) (*Module, error) {
	lang := DetectLanguage(path)
	if lang == "" {
		return nil, fmt.Errorf("unsupported source extension: %s", path)
	}

	grammar := p.loader.Language(lang)
	if grammar == nil {
		return nil, fmt.Errorf("grammar not loaded: %s", lang)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, fmt.Errorf("parse failed: %s", path)
	}
	defer tree.Close()

	return p.extractor.Extract(tree.RootNode(), content, path, lang)
}

// DetectLanguage maps a file path to a grammar ID, or "" when the extension
// is not a supported module source.
func DetectLanguage(path string) string {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return ""
	}
	switch strings.ToLower(path[idx:]) {
	case ".ts":
		return "typescript"
	case ".tsx":
		return "tsx"
	case ".js", ".jsx":
		return "javascript"
	}
	return ""
}
