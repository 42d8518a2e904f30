package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// tsconfigFile mirrors the slice of a tsconfig.json we care about. The
// "paths" object is kept raw so its key order can be preserved; a plain map
// would shuffle the alias patterns and change match priority.
type tsconfigFile struct {
	CompilerOptions struct {
		BaseURL string          `json:"baseUrl"`
		Paths   json.RawMessage `json:"paths"`
	} `json:"compilerOptions"`
}

// LoadMappings reads alias mappings from a tsconfig-style JSON file. The
// returned baseDir is the config's baseUrl resolved against the config
// file's directory ("" when no baseUrl is set). Callers treat any error as
// "no mappings": a broken config degrades resolution, it never fails it.
func LoadMappings(path string) ([]Mapping, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	var tc tsconfigFile
	if err := json.Unmarshal(data, &tc); err != nil {
		return nil, "", fmt.Errorf("parse %s: %w", path, err)
	}

	baseDir := ""
	if tc.CompilerOptions.BaseURL != "" {
		baseDir = filepath.Join(filepath.Dir(path), tc.CompilerOptions.BaseURL)
	}

	mappings, err := decodePathsOrdered(tc.CompilerOptions.Paths)
	if err != nil {
		return nil, "", fmt.Errorf("parse %s: %w", path, err)
	}

	return mappings, baseDir, nil
}

// decodePathsOrdered decodes the "paths" object preserving declaration
// order, which json.Unmarshal into a map would lose.
func decodePathsOrdered(raw json.RawMessage) ([]Mapping, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("paths: expected object, got %v", tok)
	}

	var mappings []Mapping
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		pattern, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("paths: expected string key, got %v", keyTok)
		}

		var targets []string
		if err := dec.Decode(&targets); err != nil {
			return nil, err
		}
		mappings = append(mappings, Mapping{Pattern: pattern, Targets: targets})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return mappings, nil
}
