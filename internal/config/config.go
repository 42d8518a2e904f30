package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Root               string    `toml:"root"`
	TSConfig           string    `toml:"tsconfig"`
	MaxReexportDepth   int       `toml:"max_reexport_depth"`
	MaxCacheSize       int       `toml:"max_cache_size"`
	IncludeNodeModules bool      `toml:"include_node_modules"`
	Mappings           []Mapping `toml:"mappings"`
	Watch              Watch     `toml:"watch"`
	Exclude            Exclude   `toml:"exclude"`
}

// Mapping is one path-alias pattern in configuration order. Patterns are
// either exact ("models") or single-wildcard ("@/*"); each target may carry
// a matching "*" that receives the captured suffix.
type Mapping struct {
	Pattern string   `toml:"pattern"`
	Targets []string `toml:"targets"`
}

type Watch struct {
	Debounce        time.Duration `toml:"debounce"`
	EventsPerSecond float64       `toml:"events_per_second"`
	Burst           int           `toml:"burst"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.MaxReexportDepth == 0 {
		cfg.MaxReexportDepth = 10
	}
	if cfg.MaxCacheSize == 0 {
		cfg.MaxCacheSize = 200
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Watch.EventsPerSecond == 0 {
		cfg.Watch.EventsPerSecond = 50
	}
	if cfg.Watch.Burst == 0 {
		cfg.Watch.Burst = 100
	}
	if len(cfg.Exclude.Dirs) == 0 {
		cfg.Exclude.Dirs = []string{"node_modules", ".git", "dist", "build"}
	}

	return &cfg, nil
}
