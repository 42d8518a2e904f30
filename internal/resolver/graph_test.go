package resolver

import (
	"path/filepath"
	"testing"
)

func graphFixture(t *testing.T) string {
	return writeTree(t, map[string]string{
		"app.ts": `import { User } from './models';
import express from 'express';
export interface AppState { user: User }
`,
		"models.ts": `import { Id } from './ids';
export interface User { id: Id }
`,
		"ids.ts": "export type Id = string;",
	})
}

func TestImportGraphShallow(t *testing.T) {
	root := graphFixture(t)
	r := New(Options{})

	node := r.ImportGraph(filepath.Join(root, "app.ts"), 1)

	if node.FilePath != filepath.Join(root, "app.ts") {
		t.Errorf("root path = %s", node.FilePath)
	}
	if len(node.Imports) != 2 {
		t.Fatalf("expected 2 imports, got %+v", node.Imports)
	}

	local := node.Imports[0]
	if local.Specifier != "./models" || local.Resolved != filepath.Join(root, "models.ts") {
		t.Errorf("local import wrong: %+v", local)
	}
	if len(local.Names) != 1 || local.Names[0] != "User" {
		t.Errorf("imported names wrong: %v", local.Names)
	}

	external := node.Imports[1]
	if external.Specifier != "express" || external.Resolved != "" {
		t.Errorf("external import should stay unresolved: %+v", external)
	}

	if len(node.Exports) != 1 || node.Exports[0] != "AppState" {
		t.Errorf("exports = %v", node.Exports)
	}
	if len(node.Children) != 0 {
		t.Errorf("depth 1 should have no children: %d", len(node.Children))
	}
}

func TestImportGraphDepth(t *testing.T) {
	root := graphFixture(t)
	r := New(Options{})

	node := r.ImportGraph(filepath.Join(root, "app.ts"), 3)

	// Only the resolved import recurses.
	if len(node.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(node.Children))
	}
	models := node.Children[0]
	if models.FilePath != filepath.Join(root, "models.ts") {
		t.Errorf("child path = %s", models.FilePath)
	}
	if len(models.Children) != 1 || models.Children[0].FilePath != filepath.Join(root, "ids.ts") {
		t.Errorf("grandchild wrong: %+v", models.Children)
	}
	if len(models.Children[0].Children) != 0 {
		t.Error("leaf should have no children")
	}
}

func TestImportGraphDepthZero(t *testing.T) {
	root := graphFixture(t)
	r := New(Options{})

	if node := r.ImportGraph(filepath.Join(root, "app.ts"), 0); len(node.Children) != 0 {
		t.Errorf("depth 0 should have no children: %+v", node.Children)
	}
}

func TestImportGraphMissingFile(t *testing.T) {
	r := New(Options{})

	node := r.ImportGraph("/not/a/real/file.ts", 2)
	if node == nil {
		t.Fatal("graph of a missing file should still return a node")
	}
	if len(node.Imports) != 0 || len(node.Exports) != 0 || len(node.Children) != 0 {
		t.Errorf("missing file should yield an empty node: %+v", node)
	}
}
