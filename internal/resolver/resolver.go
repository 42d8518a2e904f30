package resolver

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"barrel/internal/cache"
	"barrel/internal/config"
	"barrel/internal/parser"
	"barrel/internal/shared/observability"
)

// Options configures one resolver instance. The zero value is usable:
// relative-only resolution, depth 10, cache of 200 parsed files.
type Options struct {
	// PathMappingConfigPath points at a tsconfig-style JSON file. A missing
	// or malformed file is not an error; the resolver falls back to
	// relative-only resolution.
	PathMappingConfigPath string
	MaxReexportDepth      int
	MaxCacheSize          int
	// IncludeNodeModules is reserved. External packages are never resolved.
	IncludeNodeModules bool
	// PathMappings is an inline alias table, tried before any mappings
	// loaded from PathMappingConfigPath.
	PathMappings []config.Mapping
	// BaseDir anchors non-relative specifiers and relative alias targets.
	// Defaults to the mapping config's baseUrl when one is loaded.
	BaseDir string
}

// Resolver locates project-local modules and follows exported types across
// re-export chains. One instance owns one file cache; instances are
// independent and single-goroutine by design, except that the cache itself
// is safe to invalidate from a watcher goroutine.
type Resolver struct {
	parser   *parser.Parser
	cache    *cache.FileCache
	locator  *locator
	maxDepth int
}

func New(opts Options) *Resolver {
	if opts.MaxReexportDepth <= 0 {
		opts.MaxReexportDepth = 10
	}
	if opts.MaxCacheSize <= 0 {
		opts.MaxCacheSize = 200
	}

	mappings := opts.PathMappings
	baseDir := opts.BaseDir
	if opts.PathMappingConfigPath != "" {
		loaded, loadedBase, err := config.LoadMappings(opts.PathMappingConfigPath)
		if err != nil {
			slog.Debug("path mapping config unusable, using relative resolution",
				"path", opts.PathMappingConfigPath, "error", err)
		} else {
			mappings = append(mappings, loaded...)
			if baseDir == "" {
				baseDir = loadedBase
			}
		}
	}

	return &Resolver{
		parser:   parser.NewParser(parser.NewGrammarLoader()),
		cache:    cache.New(opts.MaxCacheSize),
		locator:  &locator{matcher: newAliasMatcher(mappings, baseDir), baseDir: baseDir},
		maxDepth: opts.MaxReexportDepth,
	}
}

// Resolve maps a module specifier as written in fromFile to the file it
// names. Returns nil for anything that is not a project-local module: bare
// package names, URL schemes, missing files.
func (r *Resolver) Resolve(specifier, fromFile string) *ResolvedImport {
	defer r.observe("resolve")()
	return r.locator.Resolve(specifier, fromFile)
}

// Invalidate drops one file from the cache, forcing a re-parse on next use.
func (r *Resolver) Invalidate(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	r.cache.Invalidate(path)
}

// ClearCache empties the parsed-file cache and resets its counters.
func (r *Resolver) ClearCache() {
	r.cache.Clear()
}

// CacheStats returns a snapshot of cache behaviour.
func (r *Resolver) CacheStats() cache.Stats {
	return r.cache.GetStats()
}

// loadModule returns the parsed module for path, from cache when the
// on-disk modification time still matches. Every failure mode (missing
// file, unreadable file, unsupported or unparsable source) returns nil;
// "cannot load" is an expected answer here, not an error.
func (r *Resolver) loadModule(path string) *parser.Module {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return nil
	}

	if entry, ok := r.cache.Get(abs); ok && entry.MTime.Equal(info.ModTime()) {
		return entry.Module
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return nil
	}

	start := time.Now()
	mod, err := r.parser.ParseFile(abs, content)
	observability.ParsingDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		slog.Debug("parse failed, treating as empty module", "path", abs, "error", err)
		mod = &parser.Module{Path: abs, ParsedAt: time.Now()}
	}

	r.cache.Set(abs, &cache.Entry{
		Module:   mod,
		MTime:    info.ModTime(),
		CachedAt: time.Now(),
	})
	return mod
}

// observe times one public operation; use as `defer r.observe("resolve")()`.
func (r *Resolver) observe(operation string) func() {
	start := time.Now()
	return func() {
		observability.ResolutionDuration.WithLabelValues(operation).
			Observe(time.Since(start).Seconds())
	}
}
