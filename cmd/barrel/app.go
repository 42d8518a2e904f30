package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"barrel/internal/config"
	"barrel/internal/resolver"
	"barrel/internal/watcher"
)

var (
	pathStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true)
	resolvedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	unresolvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
)

type App struct {
	cfg *config.Config
	res *resolver.Resolver
}

func NewApp(cfg *config.Config) *App {
	tsconfig := cfg.TSConfig
	if tsconfig != "" && !filepath.IsAbs(tsconfig) {
		tsconfig = filepath.Join(cfg.Root, tsconfig)
	}

	res := resolver.New(resolver.Options{
		PathMappingConfigPath: tsconfig,
		MaxReexportDepth:      cfg.MaxReexportDepth,
		MaxCacheSize:          cfg.MaxCacheSize,
		IncludeNodeModules:    cfg.IncludeNodeModules,
		PathMappings:          cfg.Mappings,
		BaseDir:               cfg.Root,
	})

	return &App{cfg: cfg, res: res}
}

// RunResolve resolves one specifier and prints the result. Exit status 1
// means "unresolved", matching grep-style conventions for scripting.
func (a *App) RunResolve(specifier, fromFile string) int {
	resolved := a.res.Resolve(specifier, fromFile)
	if resolved == nil {
		fmt.Printf("%s %s\n", unresolvedStyle.Render("unresolved"), specifier)
		return 1
	}
	fmt.Printf("%s %s %s\n",
		resolvedStyle.Render("resolved"), specifier,
		pathStyle.Render(resolved.FilePath))
	return 0
}

// RunTypeRef follows a named type to its defining declaration and prints
// the definition site and the chain of files traversed.
func (a *App) RunTypeRef(name, fromFile string) int {
	ref := a.res.ResolveTypeRef(name, fromFile)
	if ref == nil {
		fmt.Printf("%s %s\n", unresolvedStyle.Render("not found"), name)
		return 1
	}

	if ref.Complete {
		fmt.Printf("%s %s %s\n", resolvedStyle.Render("defined"), name,
			pathStyle.Render(fmt.Sprintf("%s:%d", ref.DefinitionFile, ref.DefinitionLine)))
	} else {
		fmt.Printf("%s %s (%s)\n", unresolvedStyle.Render("incomplete"), name, ref.IncompleteReason)
	}
	for i, hop := range ref.ReexportChain {
		fmt.Printf("  %s %s\n", dimStyle.Render(fmt.Sprintf("%d.", i+1)), hop)
	}
	if len(ref.Type.Refs) > 0 {
		fmt.Printf("  %s %s\n", dimStyle.Render("references:"), strings.Join(ref.Type.Refs, ", "))
	}
	return 0
}

// RunGraph prints the import tree of a file.
func (a *App) RunGraph(filePath string, depth int) int {
	node := a.res.ImportGraph(filePath, depth)
	a.printGraphNode(node, 0)
	return 0
}

func (a *App) printGraphNode(node *resolver.ImportGraphNode, indent int) {
	pad := strings.Repeat("  ", indent)
	fmt.Printf("%s%s\n", pad, pathStyle.Render(node.FilePath))

	if len(node.Exports) > 0 {
		fmt.Printf("%s  %s %s\n", pad, dimStyle.Render("exports:"), strings.Join(node.Exports, ", "))
	}

	children := node.Children
	for _, imp := range node.Imports {
		marker := resolvedStyle.Render("->")
		target := imp.Resolved
		if target == "" {
			marker = unresolvedStyle.Render("x ")
			target = "(unresolved)"
		}
		names := ""
		if len(imp.Names) > 0 {
			names = dimStyle.Render(" {" + strings.Join(imp.Names, ", ") + "}")
		}
		fmt.Printf("%s  %s %s%s %s\n", pad, marker, imp.Specifier, names, target)
	}
	for _, child := range children {
		a.printGraphNode(child, indent+1)
	}
}

// RunWatch keeps the resolver's cache in sync with the tree under the
// configured root. With the UI enabled, invalidations and cache stats are
// shown live; otherwise they are logged.
func (a *App) RunWatch(withUI bool) error {
	var program *tea.Program
	if withUI {
		program = tea.NewProgram(initialModel(a.cfg.Root, a.res.CacheStats()), tea.WithAltScreen())
	}

	onChange := func(paths []string) {
		for _, path := range paths {
			a.res.Invalidate(path)
		}
		slog.Debug("invalidated changed files", "count", len(paths))
		if program != nil {
			program.Send(updateMsg{paths: paths, stats: a.res.CacheStats()})
		}
	}

	w, err := watcher.New(
		a.cfg.Watch.Debounce,
		a.cfg.Watch.EventsPerSecond,
		a.cfg.Watch.Burst,
		a.cfg.Exclude.Dirs,
		a.cfg.Exclude.Files,
		onChange,
	)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Watch(a.cfg.Root); err != nil {
		return err
	}

	if program == nil {
		slog.Info("watching", "root", a.cfg.Root)
		select {} // run until interrupted
	}

	_, err = program.Run()
	return err
}
