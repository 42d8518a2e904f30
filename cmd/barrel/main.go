package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"barrel/internal/config"
)

var (
	configPath = flag.String("config", "./barrel.toml", "Path to config file")
	resolveArg = flag.String("resolve", "", "Resolve a module specifier (requires --from)")
	typeArg    = flag.String("type", "", "Resolve a named type to its defining declaration (requires --from)")
	graphArg   = flag.String("graph", "", "Print the import graph of a file")
	fromArg    = flag.String("from", "", "File the specifier or type name appears in")
	depthArg   = flag.Int("depth", 1, "Import graph depth")
	watch      = flag.Bool("watch", false, "Watch the project root and keep the cache fresh")
	once       = flag.Bool("once", false, "With --watch: run without the terminal UI")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "0.3.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("barrel v%s\n", VERSION)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}

	output := os.Stderr
	if *watch && !*once {
		// In UI mode, divert logs so they don't corrupt the TUI.
		logPath := filepath.Join(os.TempDir(), "barrel.log")
		if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600); err == nil {
			output = f
		} else {
			fmt.Fprintf(os.Stderr, "warning: failed to open log file %s: %v\n", logPath, err)
		}
	}

	logger := slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		// A missing config is fine for one-shot queries; resolution just
		// runs without aliases.
		slog.Debug("config not loaded, using defaults", "path", *configPath, "error", err)
		cfg = defaultConfig()
	}

	app := NewApp(cfg)

	switch {
	case *resolveArg != "":
		requireFrom()
		os.Exit(app.RunResolve(*resolveArg, *fromArg))
	case *typeArg != "":
		requireFrom()
		os.Exit(app.RunTypeRef(*typeArg, *fromArg))
	case *graphArg != "":
		os.Exit(app.RunGraph(*graphArg, *depthArg))
	case *watch:
		if err := app.RunWatch(!*once); err != nil {
			slog.Error("watch failed", "error", err)
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func requireFrom() {
	if *fromArg == "" {
		fmt.Fprintln(os.Stderr, "--from <file> is required")
		os.Exit(2)
	}
}

func defaultConfig() *config.Config {
	cfg, err := config.Load(os.DevNull)
	if err != nil {
		// os.DevNull reads as an empty TOML document; Load only fills
		// defaults. Reaching this means the platform has no null device.
		return &config.Config{Root: ".", MaxReexportDepth: 10, MaxCacheSize: 200}
	}
	return cfg
}
