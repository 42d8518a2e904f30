package resolver

import (
	"path/filepath"
	"strings"

	"barrel/internal/config"
)

// aliasMatcher turns non-relative specifiers into on-disk candidate paths
// using the configured alias patterns. Patterns are tried in configuration
// order; all matches contribute candidates.
type aliasMatcher struct {
	patterns []config.Mapping
	baseDir  string
}

func newAliasMatcher(mappings []config.Mapping, baseDir string) *aliasMatcher {
	return &aliasMatcher{patterns: mappings, baseDir: baseDir}
}

// Candidates returns candidate paths for specifier in configuration order.
// An exact pattern matches only an identical specifier; a wildcard pattern
// matches when the specifier carries the pattern's literal prefix and
// suffix, and the captured middle is substituted into each target's "*".
// No match yields nil; the caller treats that as "not aliased".
func (m *aliasMatcher) Candidates(specifier string) []string {
	var out []string
	for _, p := range m.patterns {
		star := strings.Index(p.Pattern, "*")

		if star < 0 {
			if specifier != p.Pattern {
				continue
			}
			for _, target := range p.Targets {
				out = append(out, m.join(target))
			}
			continue
		}

		prefix := p.Pattern[:star]
		suffix := p.Pattern[star+1:]
		if len(specifier) < len(prefix)+len(suffix) ||
			!strings.HasPrefix(specifier, prefix) ||
			!strings.HasSuffix(specifier, suffix) {
			continue
		}
		captured := specifier[len(prefix) : len(specifier)-len(suffix)]
		for _, target := range p.Targets {
			out = append(out, m.join(strings.Replace(target, "*", captured, 1)))
		}
	}
	return out
}

func (m *aliasMatcher) join(target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(m.baseDir, target)
}
