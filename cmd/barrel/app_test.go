package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"app.ts":          "import { User } from '@/models';\nexport interface State { user: User }\n",
		"models/index.ts": "export * from './user';\n",
		"models/user.ts":  "export interface User { id: string }\n",
		"tsconfig.json":   `{"compilerOptions": {"baseUrl": ".", "paths": {"@/*": ["./*"]}}}`,
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func fixtureApp(t *testing.T) (*App, string) {
	t.Helper()
	root := fixtureProject(t)

	cfg := defaultConfig()
	cfg.Root = root
	cfg.TSConfig = "tsconfig.json"
	return NewApp(cfg), root
}

func TestRunResolve(t *testing.T) {
	app, root := fixtureApp(t)
	from := filepath.Join(root, "app.ts")

	assert.Equal(t, 0, app.RunResolve("@/models", from))
	assert.Equal(t, 0, app.RunResolve("./models/user", from))
	assert.Equal(t, 1, app.RunResolve("react", from), "bare specifiers stay unresolved")
	assert.Equal(t, 1, app.RunResolve("./nope", from))
}

func TestRunTypeRef(t *testing.T) {
	app, root := fixtureApp(t)
	from := filepath.Join(root, "app.ts")

	assert.Equal(t, 0, app.RunTypeRef("State", from))
	assert.Equal(t, 1, app.RunTypeRef("Ghost", from))

	// Through the alias and the barrel to the defining file.
	ref := app.res.ResolveTypeRef("User", filepath.Join(root, "models", "index.ts"))
	require.NotNil(t, ref)
	assert.True(t, ref.Complete)
	assert.Equal(t, filepath.Join(root, "models", "user.ts"), ref.DefinitionFile)
}

func TestRunGraph(t *testing.T) {
	app, root := fixtureApp(t)

	assert.Equal(t, 0, app.RunGraph(filepath.Join(root, "app.ts"), 2))
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, 10, cfg.MaxReexportDepth)
	assert.Equal(t, 200, cfg.MaxCacheSize)
}

func TestNewAppWithoutTSConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Root = t.TempDir()

	app := NewApp(cfg)
	require.NotNil(t, app)
	assert.Equal(t, 1, app.RunResolve("@/models", filepath.Join(cfg.Root, "missing.ts")))
}
