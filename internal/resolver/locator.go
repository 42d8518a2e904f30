package resolver

import (
	"path/filepath"
	"strings"

	"barrel/internal/parser"
	"barrel/internal/shared/util"
)

// ResolvedImport is the outcome of resolving one module specifier: the
// absolute path of the file it names plus the specifier as written.
type ResolvedImport struct {
	FilePath          string
	OriginalSpecifier string
}

// locator maps module specifiers to files on disk. Relative specifiers
// resolve against the importing file, everything else goes through the
// configured base directory and alias patterns. Bare package names and URL
// schemes are unresolvable on purpose; external packages are out of scope.
type locator struct {
	matcher *aliasMatcher
	baseDir string
}

func (l *locator) Resolve(specifier, fromFile string) *ResolvedImport {
	if specifier == "" || fromFile == "" {
		return nil
	}
	if util.HasURLScheme(specifier) {
		return nil
	}
	// No speculative resolution from files that do not exist.
	if !util.FileExists(fromFile) {
		return nil
	}

	if util.IsRelativeSpecifier(specifier) {
		if found := probe(filepath.Join(filepath.Dir(fromFile), specifier)); found != "" {
			return &ResolvedImport{FilePath: found, OriginalSpecifier: specifier}
		}
		return nil
	}

	var candidates []string
	if l.baseDir != "" {
		candidates = append(candidates, filepath.Join(l.baseDir, specifier))
	}
	candidates = append(candidates, l.matcher.Candidates(specifier)...)

	for _, candidate := range candidates {
		if found := probe(candidate); found != "" {
			return &ResolvedImport{FilePath: found, OriginalSpecifier: specifier}
		}
	}
	return nil
}

// probe checks a candidate path against the filesystem. A candidate that
// already carries a source extension must exist as written; otherwise each
// supported extension is tried, then the directory-index fallbacks. First
// existing file wins.
func probe(candidate string) string {
	if hasSourceExtension(candidate) {
		if util.FileExists(candidate) {
			return mustAbs(candidate)
		}
		return ""
	}
	for _, ext := range parser.SourceExtensions {
		if p := candidate + ext; util.FileExists(p) {
			return mustAbs(p)
		}
	}
	for _, index := range parser.IndexBasenames {
		if p := filepath.Join(candidate, index); util.FileExists(p) {
			return mustAbs(p)
		}
	}
	return ""
}

func hasSourceExtension(path string) bool {
	for _, ext := range parser.SourceExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func mustAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
